package settings

import "context"

// Repository de la fila única. Get devuelve storage.ErrNotFound si aún no existe.
type Repository interface {
	Get(ctx context.Context) (Settings, error)
	Create(ctx context.Context, s Settings) (int64, error)
	Update(ctx context.Context, s Settings) error
}
