package orchestrators

import (
	"context"
	"log/slog"
	"time"

	eventDomain "casaromana/internal/domain/event"
	"casaromana/internal/forms"
)

// RegistrationStore defines the store interface needed by RegisterEvent.
type RegistrationStore interface {
	Save(ctx context.Context, r eventDomain.Registration) error
}

// EventStoreForRegistration defines the event lookup used to reject
// registrations for events that no longer exist.
type EventStoreForRegistration interface {
	GetByID(ctx context.Context, id string) (eventDomain.Event, error)
}

// RegisterEventInput carries the raw event registration fields.
type RegisterEventInput struct {
	EventID             string
	FirstName           string
	LastName            string
	Email               string
	Phone               string
	NumberOfAttendees   int
	SpecialRequirements string
	AgreeToTerms        bool
}

// RegisterEventDeps holds dependencies for RegisterEvent.
type RegisterEventDeps struct {
	RegistrationStore RegistrationStore
	EventStore        EventStoreForRegistration
	GenerateID        func() string
	Now               func() time.Time
}

// ExecuteRegisterEvent validates and stores an event registration.
// PRE: input carries the raw form fields
// POST: On success exactly one registration row references an existing event
func ExecuteRegisterEvent(ctx context.Context, input RegisterEventInput, deps RegisterEventDeps) SubmitState {
	if fe := forms.Validate(forms.EventRegistration{
		EventID:             input.EventID,
		FirstName:           input.FirstName,
		LastName:            input.LastName,
		Email:               input.Email,
		Phone:               input.Phone,
		NumberOfAttendees:   input.NumberOfAttendees,
		SpecialRequirements: input.SpecialRequirements,
		AgreeToTerms:        input.AgreeToTerms,
	}); fe != nil {
		return submitInvalid(fe)
	}

	if _, err := deps.EventStore.GetByID(ctx, input.EventID); err != nil {
		slog.Info("registration_unknown_event", "event_id", input.EventID)
		return submitFailed(ErrMsgGeneric)
	}

	r := eventDomain.Registration{
		ID:                  deps.GenerateID(),
		EventID:             input.EventID,
		FirstName:           input.FirstName,
		LastName:            input.LastName,
		Email:               input.Email,
		Phone:               forms.NormalizePhone(input.Phone),
		NumberOfAttendees:   input.NumberOfAttendees,
		SpecialRequirements: input.SpecialRequirements,
		CreatedAt:           deps.Now(),
	}
	if err := deps.RegistrationStore.Save(ctx, r); err != nil {
		slog.Error("registration_insert_failed", "error", err)
		return submitFailed(ErrMsgGeneric)
	}

	slog.Info("event_registered", "id", r.ID, "event_id", r.EventID, "attendees", r.NumberOfAttendees)
	return submitOK()
}
