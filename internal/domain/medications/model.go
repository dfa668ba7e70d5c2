package medications

import (
	"strings"
	"time"
)

// TimeLayout es el formato "HH:MM" 24h de la hora de toma.
const TimeLayout = "15:04"

const DefaultFrequency = "Daily"

// Medication es una medicación programada una vez al día a la hora Time.
type Medication struct {
	ID int64

	Name      string
	Dosage    string
	Frequency string

	// Time es "HH:MM". El scheduler lo compara como string (orden lexicográfico == orden horario).
	Time string

	// QRData es el payload crudo escaneado de la caja, si existió.
	QRData string

	CreatedAt time.Time
}

// ValidTime reporta si s es una hora "HH:MM" válida en 24h.
func ValidTime(s string) bool {
	s = strings.TrimSpace(s)
	if len(s) != len(TimeLayout) {
		return false
	}
	_, err := time.Parse(TimeLayout, s)
	return err == nil
}
