package doselogs

import "context"

type Repository interface {
	Create(ctx context.Context, e Entry) (int64, error)

	// List devuelve los registros más recientes primero. limit <= 0 => todos.
	List(ctx context.Context, limit int) ([]EntryView, error)
}
