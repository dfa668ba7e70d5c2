package doselogs

import (
	"context"
	"errors"
	"strings"
	"time"

	"medisafe-companion/internal/platform/logger"
)

var (
	ErrInvalidInput  = errors.New("invalid input")
	ErrInvalidStatus = errors.New("status must be taken or missed")
)

// Observer recibe cada registro recién creado (scheduler, sync MinHealth).
// Un error del observer se loguea; nunca invalida el registro ya persistido.
type Observer interface {
	OnDoseLogged(ctx context.Context, e Entry) error
}

type Service struct {
	repo      Repository
	log       logger.Logger
	observers []Observer
	now       func() time.Time
}

func NewService(repo Repository, log logger.Logger, observers ...Observer) *Service {
	if log == nil {
		log = logger.Nop()
	}
	return &Service{
		repo:      repo,
		log:       log.With(map[string]any{"component": "doselogs"}),
		observers: observers,
		now:       time.Now,
	}
}

// AddObserver registra un observer más (el router los conecta después de construir todo).
func (s *Service) AddObserver(o Observer) {
	if o != nil {
		s.observers = append(s.observers, o)
	}
}

type CreateInput struct {
	MedicationID *int64
	Status       Status
	Mood         string
	Notes        string
}

func (s *Service) Create(ctx context.Context, in CreateInput) (Entry, error) {
	st := Status(strings.ToLower(strings.TrimSpace(string(in.Status))))
	if !st.Valid() {
		return Entry{}, ErrInvalidStatus
	}
	if in.MedicationID != nil && *in.MedicationID <= 0 {
		return Entry{}, ErrInvalidInput
	}

	mood := strings.TrimSpace(in.Mood)
	if mood == "" {
		mood = DefaultMood
	}

	e := Entry{
		MedicationID: in.MedicationID,
		Status:       st,
		Mood:         mood,
		Notes:        strings.TrimSpace(in.Notes),
		Timestamp:    s.now(),
	}

	id, err := s.repo.Create(ctx, e)
	if err != nil {
		return Entry{}, err
	}
	e.ID = id

	for _, o := range s.observers {
		if err := o.OnDoseLogged(ctx, e); err != nil {
			s.log.Warn("dose log observer failed", map[string]any{"log_id": e.ID, "err": err})
		}
	}

	return e, nil
}

func (s *Service) List(ctx context.Context, limit int) ([]EntryView, error) {
	return s.repo.List(ctx, limit)
}

// Adherence compara el porcentaje de tomas de hoy con el histórico.
func (s *Service) Adherence(ctx context.Context) (Adherence, error) {
	items, err := s.repo.List(ctx, 0)
	if err != nil {
		return Adherence{}, err
	}
	return CompareAdherence(items, s.now()), nil
}
