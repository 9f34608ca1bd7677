package inquiry

import (
	"context"

	domain "casaromana/internal/domain/inquiry"
)

// Store persists product inquiries. Inquiries are immutable once created;
// the back office may only delete them.
type Store interface {
	GetByID(ctx context.Context, id string) (domain.Inquiry, error)
	Save(ctx context.Context, value domain.Inquiry) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, order string) ([]domain.Inquiry, error)
}
