package memory

import (
	"context"
	"sort"
	"sync"

	"medisafe-companion/internal/domain/notifications"
	"medisafe-companion/internal/ports/storage"
)

type NotificationRepo struct {
	mu    sync.RWMutex
	items []notifications.Notification
}

func NewNotificationRepo() *NotificationRepo {
	return &NotificationRepo{}
}

func (r *NotificationRepo) Create(ctx context.Context, n notifications.Notification) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	n.ID = int64(len(r.items) + 1)
	n.Source = notifications.SourceAI
	r.items = append(r.items, n)
	return n.ID, nil
}

func (r *NotificationRepo) ListLatest(ctx context.Context, limit int) ([]notifications.Notification, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]notifications.Notification, 0, len(r.items))
	for i := len(r.items) - 1; i >= 0; i-- {
		out = append(out, r.items[i])
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Timestamp.Equal(out[j].Timestamp) {
			return out[i].ID > out[j].ID
		}
		return out[i].Timestamp.After(out[j].Timestamp)
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (r *NotificationRepo) MarkRead(ctx context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if id <= 0 || id > int64(len(r.items)) {
		return storage.ErrNotFound
	}
	r.items[id-1].Read = true
	return nil
}
