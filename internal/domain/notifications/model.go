package notifications

import "time"

type Category string

const (
	CategoryInfo           Category = "info"
	CategoryUrgent         Category = "urgent"
	CategoryRecommendation Category = "recommendation"
)

func (c Category) Valid() bool {
	switch c {
	case CategoryInfo, CategoryUrgent, CategoryRecommendation:
		return true
	default:
		return false
	}
}

// Source distingue las dos familias de ids: las del scheduler son efímeras (ms del reloj)
// y las de la IA son ids de la base. Pueden colisionar entre sí, por eso el feed usa (Source, ID).
type Source string

const (
	SourceScheduler Source = "scheduler"
	SourceAI        Source = "ai"
)

// LatestLimit es cuántas notificaciones persistidas devuelve la API.
const LatestLimit = 20

type Notification struct {
	ID       int64
	Source   Source
	Title    string
	Body     string
	Category Category
	Read     bool

	// MedicationID solo para recordatorios del scheduler.
	MedicationID *int64

	Timestamp time.Time
}

// RequiresAck: las urgentes se muestran hasta que el paciente las confirma.
func (n Notification) RequiresAck() bool {
	return n.Category == CategoryUrgent && !n.Read
}
