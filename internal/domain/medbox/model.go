package medbox

import "time"

const (
	DefaultWeightGrams = 500.0
	StatusConnected    = "Connected"

	// DropThresholdGrams: una caída mayor sugiere que se retiró una pastilla.
	DropThresholdGrams = 5.0
)

// MedBox es el pastillero inteligente. Hay una sola fila.
type MedBox struct {
	ID                 int64
	CurrentWeightGrams float64
	LastWeightGrams    float64
	Status             string
	LastUpdated        time.Time
}

// Drop devuelve cuántos gramos bajó en la última lectura (negativo si subió).
func (m MedBox) Drop() float64 {
	return m.LastWeightGrams - m.CurrentWeightGrams
}
