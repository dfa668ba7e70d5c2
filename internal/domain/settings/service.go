package settings

import (
	"context"
	"errors"
	"strings"

	"medisafe-companion/internal/ports/storage"
)

var (
	ErrInvalidSnooze = errors.New("snooze_duration_minutes must be between 1 and 240 minutes")
	ErrInvalidInput  = errors.New("invalid input")
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Get devuelve la configuración, creándola con Defaults() si no existe.
func (s *Service) Get(ctx context.Context) (Settings, error) {
	st, err := s.repo.Get(ctx)
	if err == nil {
		return st, nil
	}
	if !errors.Is(err, storage.ErrNotFound) {
		return Settings{}, err
	}

	st = Defaults()
	id, err := s.repo.Create(ctx, st)
	if err != nil {
		return Settings{}, err
	}
	st.ID = id
	return st, nil
}

// Update reemplaza todos los campos.
func (s *Service) Update(ctx context.Context, in Settings) (Settings, error) {
	if in.SnoozeDurationMinutes < MinSnoozeMinutes || in.SnoozeDurationMinutes > MaxSnoozeMinutes {
		return Settings{}, ErrInvalidSnooze
	}
	medboxID := strings.TrimSpace(in.MedBoxID)
	if medboxID == "" {
		return Settings{}, ErrInvalidInput
	}

	cur, err := s.Get(ctx)
	if err != nil {
		return Settings{}, err
	}

	in.ID = cur.ID
	in.MedBoxID = medboxID
	if err := s.repo.Update(ctx, in); err != nil {
		return Settings{}, err
	}
	return in, nil
}
