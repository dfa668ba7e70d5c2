package memory

import (
	"context"
	"sort"
	"sync"

	"medisafe-companion/internal/domain/doselogs"
)

type DoseLogRepo struct {
	mu    sync.RWMutex
	items []doselogs.Entry
	meds  *MedicationRepo
}

// NewDoseLogRepo necesita el repo de medicaciones para resolver nombre y huérfanos.
func NewDoseLogRepo(meds *MedicationRepo) *DoseLogRepo {
	return &DoseLogRepo{meds: meds}
}

func (r *DoseLogRepo) Create(ctx context.Context, e doselogs.Entry) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	e.ID = int64(len(r.items) + 1)
	if e.MedicationID != nil {
		id := *e.MedicationID
		e.MedicationID = &id
	}
	r.items = append(r.items, e)
	return e.ID, nil
}

// List devuelve los más nuevos primero (timestamp, después id).
func (r *DoseLogRepo) List(ctx context.Context, limit int) ([]doselogs.EntryView, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]doselogs.EntryView, 0, len(r.items))
	for i := len(r.items) - 1; i >= 0; i-- {
		e := r.items[i]
		v := doselogs.EntryView{Entry: e}
		if e.MedicationID != nil && r.meds != nil {
			if name, ok := r.meds.name(*e.MedicationID); ok {
				v.MedicationName = name
			} else {
				v.Orphaned = true
			}
		}
		out = append(out, v)
	}

	sortNewestFirst(out)
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func sortNewestFirst(items []doselogs.EntryView) {
	sort.SliceStable(items, func(i, j int) bool {
		if items[i].Timestamp.Equal(items[j].Timestamp) {
			return items[i].ID > items[j].ID
		}
		return items[i].Timestamp.After(items[j].Timestamp)
	})
}
