package profile

import (
	"context"
	"errors"
	"strings"

	"medisafe-companion/internal/ports/storage"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Get devuelve el perfil, creándolo con valores por defecto si no existe.
func (s *Service) Get(ctx context.Context) (Profile, error) {
	p, err := s.repo.Get(ctx)
	if err == nil {
		return p, nil
	}
	if !errors.Is(err, storage.ErrNotFound) {
		return Profile{}, err
	}

	p = Profile{Name: DefaultName, Condition: DefaultCondition}
	id, err := s.repo.Create(ctx, p)
	if err != nil {
		return Profile{}, err
	}
	p.ID = id
	return p, nil
}

type UpdateInput struct {
	Name        string
	Condition   string
	DoctorNotes string
}

// Update reemplaza todos los campos (no es PATCH).
func (s *Service) Update(ctx context.Context, in UpdateInput) (Profile, error) {
	p, err := s.Get(ctx)
	if err != nil {
		return Profile{}, err
	}

	p.Name = strings.TrimSpace(in.Name)
	p.Condition = strings.TrimSpace(in.Condition)
	p.DoctorNotes = strings.TrimSpace(in.DoctorNotes)

	if err := s.repo.Update(ctx, p); err != nil {
		return Profile{}, err
	}
	return p, nil
}
