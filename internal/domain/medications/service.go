package medications

import (
	"context"
	"errors"
	"strings"
	"time"

	"medisafe-companion/internal/ports/storage"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrInvalidTime  = errors.New("time must be HH:MM (24h)")
	ErrNotFound     = errors.New("medication not found")
)

type Service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) *Service {
	return &Service{
		repo: repo,
		now:  time.Now,
	}
}

type CreateInput struct {
	Name      string
	Dosage    string
	Frequency string
	Time      string
	QRData    string
}

func (s *Service) Create(ctx context.Context, in CreateInput) (Medication, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return Medication{}, ErrInvalidInput
	}
	t := strings.TrimSpace(in.Time)
	if !ValidTime(t) {
		return Medication{}, ErrInvalidTime
	}

	freq := strings.TrimSpace(in.Frequency)
	if freq == "" {
		freq = DefaultFrequency
	}

	m := Medication{
		Name:      name,
		Dosage:    strings.TrimSpace(in.Dosage),
		Frequency: freq,
		Time:      t,
		QRData:    strings.TrimSpace(in.QRData),
		CreatedAt: s.now(),
	}

	id, err := s.repo.Create(ctx, m)
	if err != nil {
		return Medication{}, err
	}
	m.ID = id
	return m, nil
}

func (s *Service) GetByID(ctx context.Context, id int64) (Medication, error) {
	if id <= 0 {
		return Medication{}, ErrNotFound
	}
	m, err := s.repo.GetByID(ctx, id)
	if errors.Is(err, storage.ErrNotFound) {
		return Medication{}, ErrNotFound
	}
	return m, err
}

func (s *Service) List(ctx context.Context) ([]Medication, error) {
	return s.repo.List(ctx)
}

// Delete borra la medicación. No toca los logs: quedan huérfanos a propósito.
func (s *Service) Delete(ctx context.Context, id int64) error {
	if id <= 0 {
		return ErrNotFound
	}
	err := s.repo.Delete(ctx, id)
	if errors.Is(err, storage.ErrNotFound) {
		return ErrNotFound
	}
	return err
}

// DraftFromQR arma el borrador que el formulario precarga tras escanear un QR.
// No persiste nada.
func DraftFromQR(payload string) (CreateInput, error) {
	payload = strings.TrimSpace(payload)
	if payload == "" {
		return CreateInput{}, ErrInvalidInput
	}
	return CreateInput{
		Name:      payload,
		Dosage:    "As per label",
		Frequency: DefaultFrequency,
		Time:      "08:00",
		QRData:    payload,
	}, nil
}
