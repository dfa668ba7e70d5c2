package medications

import "context"

type Repository interface {
	Create(ctx context.Context, m Medication) (int64, error)
	GetByID(ctx context.Context, id int64) (Medication, error)
	List(ctx context.Context) ([]Medication, error)
	Delete(ctx context.Context, id int64) error
}
