package contact

import (
	"context"

	domain "casaromana/internal/domain/contact"
)

// Store persists contact messages.
type Store interface {
	GetByID(ctx context.Context, id string) (domain.Message, error)
	Save(ctx context.Context, value domain.Message) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, order string) ([]domain.Message, error)
}
