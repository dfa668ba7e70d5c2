package notifications

import "context"

// Repository solo guarda las notificaciones de origen IA (y las del pastillero).
type Repository interface {
	Create(ctx context.Context, n Notification) (int64, error)
	ListLatest(ctx context.Context, limit int) ([]Notification, error)
	MarkRead(ctx context.Context, id int64) error
}
