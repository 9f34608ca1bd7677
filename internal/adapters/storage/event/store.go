package event

import (
	"context"

	domain "casaromana/internal/domain/event"
)

// Store persists events.
type Store interface {
	GetByID(ctx context.Context, id string) (domain.Event, error)
	Save(ctx context.Context, value domain.Event) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, order string) ([]domain.Event, error)
}

// RegistrationStore persists event registrations.
type RegistrationStore interface {
	Save(ctx context.Context, value domain.Registration) error
	ListByEvent(ctx context.Context, eventID string) ([]domain.Registration, error)
}
