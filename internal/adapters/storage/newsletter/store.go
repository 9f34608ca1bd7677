package newsletter

import (
	"context"

	domain "casaromana/internal/domain/newsletter"
)

// Store persists newsletter subscribers.
type Store interface {
	Save(ctx context.Context, value domain.Subscriber) error
	List(ctx context.Context, order string) ([]domain.Subscriber, error)
}
