package product

import (
	"context"

	domain "casaromana/internal/domain/product"
)

// Store persists catalog products.
type Store interface {
	GetByID(ctx context.Context, id string) (domain.Product, error)
	Save(ctx context.Context, value domain.Product) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, order string) ([]domain.Product, error)
}
