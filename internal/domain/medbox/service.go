package medbox

import (
	"context"
	"errors"
	"math"
	"strconv"
	"sync"
	"time"

	"medisafe-companion/internal/domain/notifications"
	"medisafe-companion/internal/platform/logger"
	"medisafe-companion/internal/ports/storage"
)

var ErrInvalidWeight = errors.New("weight must be a non-negative number")

// Notifier persiste el aviso de cambio de peso.
type Notifier interface {
	Create(ctx context.Context, in notifications.CreateInput) (notifications.Notification, error)
}

type Service struct {
	repo     Repository
	notifier Notifier
	log      logger.Logger
	now      func() time.Time

	// serializa lectura+escritura: el simulador, MQTT y la API pueden llegar a la vez
	mu sync.Mutex
}

func NewService(repo Repository, notifier Notifier, log logger.Logger) *Service {
	if log == nil {
		log = logger.Nop()
	}
	return &Service{
		repo:     repo,
		notifier: notifier,
		log:      log.With(map[string]any{"component": "medbox"}),
		now:      time.Now,
	}
}

// Get devuelve el pastillero, creándolo con 500 g si no existe.
func (s *Service) Get(ctx context.Context) (MedBox, error) {
	m, err := s.repo.Get(ctx)
	if err == nil {
		return m, nil
	}
	if !errors.Is(err, storage.ErrNotFound) {
		return MedBox{}, err
	}

	m = MedBox{
		CurrentWeightGrams: DefaultWeightGrams,
		LastWeightGrams:    DefaultWeightGrams,
		Status:             StatusConnected,
		LastUpdated:        s.now(),
	}
	id, err := s.repo.Create(ctx, m)
	if err != nil {
		return MedBox{}, err
	}
	m.ID = id
	return m, nil
}

// RecordWeight registra una lectura: last <- current, current <- w.
// Si el peso cayó más de DropThresholdGrams crea una notificación info. No marca la toma:
// eso solo ocurre con un registro explícito o una verificación por cámara.
func (s *Service) RecordWeight(ctx context.Context, w float64, source string) (MedBox, error) {
	if math.IsNaN(w) || math.IsInf(w, 0) || w < 0 {
		return MedBox{}, ErrInvalidWeight
	}

	s.mu.Lock()
	m, err := s.Get(ctx)
	if err != nil {
		s.mu.Unlock()
		return MedBox{}, err
	}

	m.LastWeightGrams = m.CurrentWeightGrams
	m.CurrentWeightGrams = w
	m.Status = StatusConnected
	m.LastUpdated = s.now()

	err = s.repo.Update(ctx, m)
	s.mu.Unlock()
	if err != nil {
		return MedBox{}, err
	}

	if m.Drop() > DropThresholdGrams {
		s.log.Info("medbox weight drop", map[string]any{
			"source": source,
			"from_g": m.LastWeightGrams,
			"to_g":   m.CurrentWeightGrams,
			"drop_g": m.Drop(),
		})
		if s.notifier != nil {
			_, nerr := s.notifier.Create(ctx, notifications.CreateInput{
				Title:    "MedBox Weight Change",
				Body:     "Detected weight change: " + strconv.FormatFloat(w, 'f', -1, 64) + "g. Verifying dose...",
				Category: notifications.CategoryInfo,
			})
			if nerr != nil {
				s.log.Warn("medbox notification failed", map[string]any{"err": nerr})
			}
		}
	}

	return m, nil
}
