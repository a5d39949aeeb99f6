package interfaces

import (
	"context"

	"cityfuture/internal/domain/entities"
)

// IMaterialRepository abstracts persistence for material stock.
//
// DecrementQuantity must be conditional: it only applies when the stored
// quantity covers the requested amount, and reports whether it did. That is
// the storage-side half of atomic material reservation.

type IMaterialRepository interface {
	Create(ctx context.Context, m entities.Material) (entities.Material, error)
	GetByID(ctx context.Context, id string) (entities.Material, error)
	GetByCode(ctx context.Context, code string) (entities.Material, error)
	GetByName(ctx context.Context, name string) (entities.Material, error)
	GetAll(ctx context.Context) ([]entities.Material, error)
	Update(ctx context.Context, m entities.Material) (entities.Material, error)
	Delete(ctx context.Context, id string) error
	DecrementQuantity(ctx context.Context, code string, amount int) (bool, error)
	IncrementQuantity(ctx context.Context, code string, amount int) error
}
