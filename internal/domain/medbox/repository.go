package medbox

import "context"

// Repository de la fila única. Get devuelve storage.ErrNotFound si aún no existe.
type Repository interface {
	Get(ctx context.Context) (MedBox, error)
	Create(ctx context.Context, m MedBox) (int64, error)
	Update(ctx context.Context, m MedBox) error
}
