package application

import (
	"context"

	domain "casaromana/internal/domain/application"
)

// Store persists membership applications. There is deliberately no Delete:
// applications are only ever created by the join form and re-statused by
// the back office.
type Store interface {
	GetByID(ctx context.Context, id string) (domain.Application, error)
	Save(ctx context.Context, value domain.Application) error
	UpdateStatus(ctx context.Context, id, status string) error
	List(ctx context.Context, order string) ([]domain.Application, error)
}
