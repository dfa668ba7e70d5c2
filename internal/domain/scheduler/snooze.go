package scheduler

import "time"

// SnoozeState vive solo en el proceso; se pierde al reiniciar.
type SnoozeState struct {
	Until        *time.Time
	Disclaimer   string
	MedicationID *int64
}

// ApplySnooze devuelve un snooze con until = now + minutes.
func ApplySnooze(minutes int, now time.Time) SnoozeState {
	until := now.Add(time.Duration(minutes) * time.Minute)
	return SnoozeState{Until: &until}
}

// Active: mientras now < until se suprime todo aviso, sin importar la categoría.
func (s SnoozeState) Active(now time.Time) bool {
	return s.Until != nil && now.Before(*s.Until)
}
