package scheduler

import (
	"fmt"
	"time"

	"medisafe-companion/internal/domain/medications"
	"medisafe-companion/internal/domain/notifications"
)

const (
	ReminderWindow = time.Minute
	UrgentAfter    = 15 * time.Minute
	UrgentWindow   = time.Minute
)

type Kind string

const (
	KindReminder Kind = "reminder"
	KindUrgent   Kind = "urgent"
)

// Event es un aviso calculado por el scheduler para una toma.
type Event struct {
	Kind       Kind
	Medication medications.Medication
	Scheduled  time.Time
	Late       time.Duration
}

func (e Event) Category() notifications.Category {
	if e.Kind == KindUrgent {
		return notifications.CategoryUrgent
	}
	return notifications.CategoryInfo
}

func (e Event) Title() string {
	if e.Kind == KindUrgent {
		return "URGENT CLINICAL ALERT"
	}
	return "Medication Reminder"
}

func (e Event) Body() string {
	if e.Kind == KindUrgent {
		return fmt.Sprintf("CRITICAL: You missed your %s dose %d minutes ago. Please take it immediately.",
			e.Medication.Name, int(e.Late/time.Minute))
	}
	return fmt.Sprintf("It's time for your %s.", e.Medication.Name)
}

// Notification arma la notificación efímera (sin id: la asigna el feed).
func (e Event) Notification(now time.Time) notifications.Notification {
	medID := e.Medication.ID
	return notifications.Notification{
		Title:        e.Title(),
		Body:         e.Body(),
		Category:     e.Category(),
		MedicationID: &medID,
		Timestamp:    now,
	}
}

// EvaluateReminder es la regla por ventanas: 0 < diff < 1 min => recordatorio info;
// 15 <= diff < 16 min => urgente. Nada si está deshabilitado o hay snooze activo.
// Runner usa la versión con estado (Tracker), que no depende de la cadencia del tick.
func EvaluateReminder(dose medications.Medication, now time.Time, snooze SnoozeState, enabled bool) (Event, bool) {
	if !enabled || snooze.Active(now) {
		return Event{}, false
	}

	at, ok := ScheduledInstant(dose.Time, now)
	if !ok {
		return Event{}, false
	}
	diff := now.Sub(at)

	switch {
	case diff > 0 && diff < ReminderWindow:
		return Event{Kind: KindReminder, Medication: dose, Scheduled: at, Late: diff}, true
	case diff >= UrgentAfter && diff < UrgentAfter+UrgentWindow:
		return Event{Kind: KindUrgent, Medication: dose, Scheduled: at, Late: diff}, true
	default:
		return Event{}, false
	}
}
