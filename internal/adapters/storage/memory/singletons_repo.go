package memory

import (
	"context"
	"sync"

	"medisafe-companion/internal/domain/medbox"
	"medisafe-companion/internal/domain/profile"
	"medisafe-companion/internal/domain/settings"
	"medisafe-companion/internal/ports/storage"
)

// singleton guarda la única fila de profile, medbox y settings.
type singleton[T any] struct {
	mu  sync.RWMutex
	row *T
}

func (s *singleton[T]) get() (T, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var zero T
	if s.row == nil {
		return zero, storage.ErrNotFound
	}
	return *s.row, nil
}

// create con INSERT OR IGNORE: si ya existe, conserva la fila vigente.
func (s *singleton[T]) create(v T) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.row == nil {
		s.row = &v
	}
}

func (s *singleton[T]) update(v T) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.row == nil {
		return storage.ErrNotFound
	}
	s.row = &v
	return nil
}

type ProfileRepo struct{ s singleton[profile.Profile] }

func NewProfileRepo() *ProfileRepo { return &ProfileRepo{} }

func (r *ProfileRepo) Get(ctx context.Context) (profile.Profile, error) { return r.s.get() }

func (r *ProfileRepo) Create(ctx context.Context, p profile.Profile) (int64, error) {
	p.ID = 1
	r.s.create(p)
	return 1, nil
}

func (r *ProfileRepo) Update(ctx context.Context, p profile.Profile) error {
	p.ID = 1
	return r.s.update(p)
}

type MedBoxRepo struct{ s singleton[medbox.MedBox] }

func NewMedBoxRepo() *MedBoxRepo { return &MedBoxRepo{} }

func (r *MedBoxRepo) Get(ctx context.Context) (medbox.MedBox, error) { return r.s.get() }

func (r *MedBoxRepo) Create(ctx context.Context, m medbox.MedBox) (int64, error) {
	m.ID = 1
	r.s.create(m)
	return 1, nil
}

func (r *MedBoxRepo) Update(ctx context.Context, m medbox.MedBox) error {
	m.ID = 1
	return r.s.update(m)
}

type SettingsRepo struct{ s singleton[settings.Settings] }

func NewSettingsRepo() *SettingsRepo { return &SettingsRepo{} }

func (r *SettingsRepo) Get(ctx context.Context) (settings.Settings, error) { return r.s.get() }

func (r *SettingsRepo) Create(ctx context.Context, st settings.Settings) (int64, error) {
	st.ID = 1
	r.s.create(st)
	return 1, nil
}

func (r *SettingsRepo) Update(ctx context.Context, st settings.Settings) error {
	st.ID = 1
	return r.s.update(st)
}
