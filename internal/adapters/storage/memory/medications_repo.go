package memory

import (
	"context"
	"sort"
	"sync"

	"medisafe-companion/internal/domain/medications"
	"medisafe-companion/internal/ports/storage"
)

type MedicationRepo struct {
	mu     sync.RWMutex
	nextID int64
	byID   map[int64]medications.Medication
}

func NewMedicationRepo() *MedicationRepo {
	return &MedicationRepo{
		byID: make(map[int64]medications.Medication),
	}
}

func (r *MedicationRepo) Create(ctx context.Context, m medications.Medication) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.nextID++
	m.ID = r.nextID
	r.byID[m.ID] = m
	return m.ID, nil
}

func (r *MedicationRepo) GetByID(ctx context.Context, id int64) (medications.Medication, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	m, ok := r.byID[id]
	if !ok {
		return medications.Medication{}, storage.ErrNotFound
	}
	return m, nil
}

func (r *MedicationRepo) List(ctx context.Context) ([]medications.Medication, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]medications.Medication, 0, len(r.byID))
	for _, m := range r.byID {
		out = append(out, m)
	}

	// mismo orden que el SELECT ... ORDER BY id
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

// Delete no toca los registros de toma (quedan huérfanos).
func (r *MedicationRepo) Delete(ctx context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byID[id]; !ok {
		return storage.ErrNotFound
	}
	delete(r.byID, id)
	return nil
}

func (r *MedicationRepo) name(id int64) (string, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	m, ok := r.byID[id]
	return m.Name, ok
}
