package doselogs

import "time"

type Status string

const (
	StatusTaken  Status = "taken"
	StatusMissed Status = "missed"
)

func (s Status) Valid() bool {
	return s == StatusTaken || s == StatusMissed
}

const DefaultMood = "Normal"

// Entry es un registro de toma. Append-only: nunca se edita ni se borra.
type Entry struct {
	ID int64

	// MedicationID es una referencia débil; nil = registro general sin medicación.
	MedicationID *int64

	Status Status
	Mood   string
	Notes  string

	Timestamp time.Time
}

// EntryView es el Entry unido (LEFT JOIN) con el nombre de la medicación.
type EntryView struct {
	Entry

	MedicationName string

	// Orphaned: apunta a una medicación que ya no existe.
	Orphaned bool
}
