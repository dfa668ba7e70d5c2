package scheduler

import (
	"context"
	"strconv"
	"sync"
	"time"

	"medisafe-companion/internal/domain/doselogs"
)

// DayLayout identifica la instancia diaria de una toma.
const DayLayout = "2006-01-02"

// DoseState de una toma en un día: Pending -> ReminderFired -> (UrgentFired | Taken | Missed).
type DoseState string

const (
	StatePending       DoseState = "pending"
	StateReminderFired DoseState = "reminder_fired"
	StateUrgentFired   DoseState = "urgent_fired"
	StateTaken         DoseState = "taken"
	StateMissed        DoseState = "missed"
)

func (s DoseState) Terminal() bool {
	return s == StateTaken || s == StateMissed
}

// InstanceKey es (medicación, día calendario).
type InstanceKey struct {
	MedicationID int64
	Day          string
}

func KeyFor(medicationID int64, at time.Time) InstanceKey {
	return InstanceKey{MedicationID: medicationID, Day: at.Format(DayLayout)}
}

func (k InstanceKey) String() string {
	return k.Day + ":" + strconv.FormatInt(k.MedicationID, 10)
}

// Slot es cada marca que se puede fijar una sola vez por instancia.
type Slot string

const (
	SlotReminder Slot = "reminder"
	SlotUrgent   Slot = "urgent"
	SlotOutcome  Slot = "outcome"
)

// FiredStore guarda las marcas por instancia. SetOnce es atómico: solo el primero gana.
// (true, err) significa que la marca quedó escrita pero algo posterior falló.
// Hay versión en memoria y en redis (sobrevive reinicios y varias réplicas).
type FiredStore interface {
	SetOnce(ctx context.Context, key InstanceKey, slot Slot, value string) (bool, error)
	Load(ctx context.Context, key InstanceKey) (map[Slot]string, error)
}

// Tracker deriva el DoseState de las marcas y las fija.
type Tracker struct {
	store FiredStore
	loc   *time.Location
}

func NewTracker(store FiredStore, loc *time.Location) *Tracker {
	if store == nil {
		store = NewMemoryFiredStore()
	}
	if loc == nil {
		loc = time.Local
	}
	return &Tracker{store: store, loc: loc}
}

func (t *Tracker) State(ctx context.Context, key InstanceKey) (DoseState, error) {
	marks, err := t.store.Load(ctx, key)
	if err != nil {
		return StatePending, err
	}
	return stateFromMarks(marks), nil
}

func (t *Tracker) MarkReminder(ctx context.Context, key InstanceKey) (bool, error) {
	return t.store.SetOnce(ctx, key, SlotReminder, "1")
}

func (t *Tracker) MarkUrgent(ctx context.Context, key InstanceKey) (bool, error) {
	return t.store.SetOnce(ctx, key, SlotUrgent, "1")
}

// MarkOutcome cierra la instancia. El primer Taken/Missed del día manda.
func (t *Tracker) MarkOutcome(ctx context.Context, key InstanceKey, status doselogs.Status) (bool, error) {
	return t.store.SetOnce(ctx, key, SlotOutcome, string(status))
}

// OnDoseLogged implementa doselogs.Observer: un registro con medicación cierra
// la instancia de ese día. Los registros generales (sin medicación) se ignoran.
func (t *Tracker) OnDoseLogged(ctx context.Context, e doselogs.Entry) error {
	if e.MedicationID == nil {
		return nil
	}
	_, err := t.MarkOutcome(ctx, KeyFor(*e.MedicationID, e.Timestamp.In(t.loc)), e.Status)
	return err
}

func stateFromMarks(marks map[Slot]string) DoseState {
	switch marks[SlotOutcome] {
	case string(doselogs.StatusTaken):
		return StateTaken
	case string(doselogs.StatusMissed):
		return StateMissed
	}
	if marks[SlotUrgent] != "" {
		return StateUrgentFired
	}
	if marks[SlotReminder] != "" {
		return StateReminderFired
	}
	return StatePending
}

// MemoryFiredStore es el FiredStore por defecto. Descarta días de más de Retention.
type MemoryFiredStore struct {
	mu        sync.Mutex
	marks     map[InstanceKey]map[Slot]string
	Retention time.Duration
}

func NewMemoryFiredStore() *MemoryFiredStore {
	return &MemoryFiredStore{
		marks:     map[InstanceKey]map[Slot]string{},
		Retention: 48 * time.Hour,
	}
}

func (s *MemoryFiredStore) SetOnce(_ context.Context, key InstanceKey, slot Slot, value string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.prune(key.Day)

	m, ok := s.marks[key]
	if !ok {
		m = map[Slot]string{}
		s.marks[key] = m
	}
	if _, exists := m[slot]; exists {
		return false, nil
	}
	m[slot] = value
	return true, nil
}

func (s *MemoryFiredStore) Load(_ context.Context, key InstanceKey) (map[Slot]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := map[Slot]string{}
	for k, v := range s.marks[key] {
		out[k] = v
	}
	return out, nil
}

func (s *MemoryFiredStore) prune(day string) {
	cur, err := time.Parse(DayLayout, day)
	if err != nil || s.Retention <= 0 {
		return
	}
	cutoff := cur.Add(-s.Retention).Format(DayLayout)
	for k := range s.marks {
		if k.Day < cutoff {
			delete(s.marks, k)
		}
	}
}
