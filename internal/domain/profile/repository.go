package profile

import "context"

// Repository de la fila única. Get devuelve storage.ErrNotFound si aún no existe.
type Repository interface {
	Get(ctx context.Context) (Profile, error)
	Create(ctx context.Context, p Profile) (int64, error)
	Update(ctx context.Context, p Profile) error
}
