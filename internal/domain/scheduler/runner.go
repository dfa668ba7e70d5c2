package scheduler

import (
	"context"
	"sync"
	"time"

	"medisafe-companion/internal/domain/medications"
	"medisafe-companion/internal/domain/notifications"
	"medisafe-companion/internal/domain/settings"
	"medisafe-companion/internal/platform/logger"
)

const (
	DefaultTickInterval = 60 * time.Second
	DefaultCatchUpLimit = 60 * time.Minute
)

type MedicationLister interface {
	List(ctx context.Context) ([]medications.Medication, error)
}

type SettingsReader interface {
	Get(ctx context.Context) (settings.Settings, error)
}

// Publisher recibe los avisos efímeros (el Feed).
type Publisher interface {
	Push(n notifications.Notification) notifications.Notification
}

type Config struct {
	TickInterval time.Duration

	// CatchUpLimit: pasado este retraso ya no se avisa (la toma se da por perdida para avisos).
	CatchUpLimit time.Duration

	Location *time.Location
}

// Runner es el loop de recordatorios. Es dueño del snooze y del último tick;
// no hay estado global.
type Runner struct {
	meds     MedicationLister
	settings SettingsReader
	tracker  *Tracker
	feed     Publisher
	log      logger.Logger
	cfg      Config

	now func() time.Time

	mu       sync.Mutex
	snooze   SnoozeState
	lastTick time.Time
}

func NewRunner(meds MedicationLister, st SettingsReader, tracker *Tracker, feed Publisher, log logger.Logger, cfg Config) *Runner {
	if cfg.TickInterval <= 0 {
		cfg.TickInterval = DefaultTickInterval
	}
	if cfg.CatchUpLimit <= UrgentAfter {
		cfg.CatchUpLimit = DefaultCatchUpLimit
	}
	if cfg.Location == nil {
		cfg.Location = time.Local
	}
	if tracker == nil {
		tracker = NewTracker(nil, cfg.Location)
	}
	if log == nil {
		log = logger.Nop()
	}
	return &Runner{
		meds:     meds,
		settings: st,
		tracker:  tracker,
		feed:     feed,
		log:      log.With(map[string]any{"component": "scheduler"}),
		cfg:      cfg,
		now:      time.Now,
	}
}

func (r *Runner) Tracker() *Tracker { return r.tracker }

func (r *Runner) Now() time.Time { return r.now().In(r.cfg.Location) }

// Start corre Tick cada TickInterval hasta que ctx termina.
func (r *Runner) Start(ctx context.Context) {
	t := time.NewTicker(r.cfg.TickInterval)
	defer t.Stop()

	r.Tick(ctx)
	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			r.Tick(ctx)
		}
	}
}

// Tick evalúa la instancia de hoy de cada medicación y publica los avisos que correspondan.
// Cada aviso sale una sola vez por (medicación, día) aunque se salteen o repitan ticks.
// Los errores de colaboradores se loguean; el próximo tick vuelve a intentar.
func (r *Runner) Tick(ctx context.Context) []Event {
	now := r.Now()

	r.mu.Lock()
	r.lastTick = now
	snoozed := r.snooze.Active(now)
	if r.snooze.Until != nil && !snoozed {
		r.snooze = SnoozeState{}
	}
	r.mu.Unlock()

	if snoozed {
		return nil
	}

	st, err := r.settings.Get(ctx)
	if err != nil {
		r.log.Warn("scheduler settings read failed", map[string]any{"err": err})
		return nil
	}
	if !st.NotificationsEnabled {
		return nil
	}

	meds, err := r.meds.List(ctx)
	if err != nil {
		r.log.Warn("scheduler medication list failed", map[string]any{"err": err})
		return nil
	}

	var fired []Event
	for _, m := range meds {
		ev, ok, err := r.evaluate(ctx, m, now)
		if err != nil {
			r.log.Warn("scheduler evaluate failed", map[string]any{"medication_id": m.ID, "err": err})
		}
		if !ok {
			continue
		}
		fired = append(fired, ev)
		if r.feed != nil {
			r.feed.Push(ev.Notification(now))
		}
		r.log.Info("dose notification fired", map[string]any{
			"medication_id": m.ID,
			"kind":          string(ev.Kind),
			"late_minutes":  int(ev.Late / time.Minute),
		})
	}
	return fired
}

func (r *Runner) evaluate(ctx context.Context, m medications.Medication, now time.Time) (Event, bool, error) {
	at, ok := ScheduledInstant(m.Time, now)
	if !ok {
		return Event{}, false, nil
	}
	diff := now.Sub(at)
	if diff <= 0 || diff >= r.cfg.CatchUpLimit {
		return Event{}, false, nil
	}
	// dada de alta después de la hora: empieza mañana
	if !m.CreatedAt.IsZero() && m.CreatedAt.After(at) {
		return Event{}, false, nil
	}

	key := KeyFor(m.ID, at)
	state, err := r.tracker.State(ctx, key)
	if err != nil {
		return Event{}, false, err
	}
	if state.Terminal() {
		return Event{}, false, nil
	}

	if diff >= UrgentAfter {
		if state == StateUrgentFired {
			return Event{}, false, nil
		}
		set, err := r.tracker.MarkUrgent(ctx, key)
		if !set {
			return Event{}, false, err
		}
		// la marca quedó escrita: el aviso sale aunque haya error (p.ej. el TTL)
		return Event{Kind: KindUrgent, Medication: m, Scheduled: at, Late: diff}, true, err
	}

	if state != StatePending {
		return Event{}, false, nil
	}
	set, err := r.tracker.MarkReminder(ctx, key)
	if !set {
		return Event{}, false, err
	}
	return Event{Kind: KindReminder, Medication: m, Scheduled: at, Late: diff}, true, err
}

// Snooze suprime todos los avisos durante minutes.
func (r *Runner) Snooze(minutes int, medicationID *int64, disclaimer string) SnoozeState {
	s := ApplySnooze(minutes, r.Now())
	s.MedicationID = medicationID
	s.Disclaimer = disclaimer

	r.mu.Lock()
	r.snooze = s
	r.mu.Unlock()

	r.log.Info("reminders snoozed", map[string]any{"minutes": minutes, "until": *s.Until})
	return s
}

// SnoozeState devuelve el snooze vigente (vacío si expiró).
func (r *Runner) SnoozeState() SnoozeState {
	now := r.Now()

	r.mu.Lock()
	defer r.mu.Unlock()
	if !r.snooze.Active(now) {
		r.snooze = SnoozeState{}
	}
	return r.snooze
}

func (r *Runner) ClearSnooze() {
	r.mu.Lock()
	r.snooze = SnoozeState{}
	r.mu.Unlock()
}

func (r *Runner) LastTick() time.Time {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.lastTick
}

// NextDose es la próxima toma con su estado para el día en que cae.
type NextDose struct {
	Medication medications.Medication
	Scheduled  time.Time
	State      DoseState
}

func (r *Runner) NextDose(ctx context.Context) (NextDose, bool, error) {
	meds, err := r.meds.List(ctx)
	if err != nil {
		return NextDose{}, false, err
	}
	now := r.Now()

	m, ok := SelectNextDose(meds, now)
	if !ok {
		return NextDose{}, false, nil
	}

	at, _ := ScheduledInstant(m.Time, now)
	if !at.After(now) {
		// ya pasaron todas las de hoy: la próxima es mañana
		at = at.AddDate(0, 0, 1)
	}

	state, err := r.tracker.State(ctx, KeyFor(m.ID, at))
	if err != nil {
		r.log.Warn("next dose state read failed", map[string]any{"medication_id": m.ID, "err": err})
		state = StatePending
	}
	return NextDose{Medication: m, Scheduled: at, State: state}, true, nil
}

// DueDose es la toma que corresponde registrar ahora: la más atrasada de hoy que sigue
// abierta dentro de CatchUpLimit; si no hay ninguna, la próxima.
func (r *Runner) DueDose(ctx context.Context) (NextDose, bool, error) {
	meds, err := r.meds.List(ctx)
	if err != nil {
		return NextDose{}, false, err
	}
	now := r.Now()

	var (
		best  NextDose
		found bool
	)
	for _, m := range meds {
		at, ok := ScheduledInstant(m.Time, now)
		if !ok {
			continue
		}
		diff := now.Sub(at)
		if diff < 0 || diff >= r.cfg.CatchUpLimit {
			continue
		}
		state, err := r.tracker.State(ctx, KeyFor(m.ID, at))
		if err != nil || state.Terminal() {
			continue
		}
		if !found || at.Before(best.Scheduled) {
			best = NextDose{Medication: m, Scheduled: at, State: state}
			found = true
		}
	}
	if found {
		return best, true, nil
	}
	return r.NextDose(ctx)
}
