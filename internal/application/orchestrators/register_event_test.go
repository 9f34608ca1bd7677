package orchestrators

import (
	"context"
	"errors"
	"testing"

	eventDomain "casaromana/internal/domain/event"
)

type mockRegistrationStore struct {
	saved   []eventDomain.Registration
	saveErr error
}

// Save implements RegistrationStore for testing.
func (m *mockRegistrationStore) Save(_ context.Context, r eventDomain.Registration) error {
	if m.saveErr != nil {
		return m.saveErr
	}
	m.saved = append(m.saved, r)
	return nil
}

type mockEventLookup struct {
	events map[string]eventDomain.Event
}

// GetByID implements EventStoreForRegistration for testing.
func (m *mockEventLookup) GetByID(_ context.Context, id string) (eventDomain.Event, error) {
	e, ok := m.events[id]
	if !ok {
		return eventDomain.Event{}, errors.New("event not found")
	}
	return e, nil
}

func validRegistration() RegisterEventInput {
	return RegisterEventInput{
		EventID:           "ev-1",
		FirstName:         "Ana",
		LastName:          "Pop",
		Email:             "ana@example.com",
		Phone:             "+47 12 34 56 78",
		NumberOfAttendees: 2,
		AgreeToTerms:      true,
	}
}

// TestExecuteRegisterEvent_Valid tests a registration for an existing event.
func TestExecuteRegisterEvent_Valid(t *testing.T) {
	store := &mockRegistrationStore{}
	events := &mockEventLookup{events: map[string]eventDomain.Event{
		"ev-1": {ID: "ev-1", Title: "Mărțișor workshop"},
	}}
	state := ExecuteRegisterEvent(context.Background(), validRegistration(), RegisterEventDeps{
		RegistrationStore: store,
		EventStore:        events,
		GenerateID:        fixedID,
		Now:               fixedNow,
	})
	if !state.Success {
		t.Fatalf("expected success, got %+v", state)
	}
	if len(store.saved) != 1 {
		t.Fatalf("expected one insert, got %d", len(store.saved))
	}
	if got := store.saved[0].Phone; got != "+4712345678" {
		t.Errorf("expected normalized phone, got %q", got)
	}
}

// TestExecuteRegisterEvent_UnknownEvent tests a registration for a deleted
// event is rejected without a write.
func TestExecuteRegisterEvent_UnknownEvent(t *testing.T) {
	store := &mockRegistrationStore{}
	events := &mockEventLookup{events: map[string]eventDomain.Event{}}
	state := ExecuteRegisterEvent(context.Background(), validRegistration(), RegisterEventDeps{
		RegistrationStore: store,
		EventStore:        events,
		GenerateID:        fixedID,
		Now:               fixedNow,
	})
	if state.Success {
		t.Fatal("expected failure")
	}
	if len(store.saved) != 0 {
		t.Errorf("unknown event must not insert, got %d inserts", len(store.saved))
	}
}

// TestExecuteRegisterEvent_AttendeeBounds tests the 1..10 attendee range.
func TestExecuteRegisterEvent_AttendeeBounds(t *testing.T) {
	events := &mockEventLookup{events: map[string]eventDomain.Event{
		"ev-1": {ID: "ev-1", Title: "Mărțișor workshop"},
	}}
	for _, n := range []int{0, 11} {
		store := &mockRegistrationStore{}
		input := validRegistration()
		input.NumberOfAttendees = n
		state := ExecuteRegisterEvent(context.Background(), input, RegisterEventDeps{
			RegistrationStore: store,
			EventStore:        events,
			GenerateID:        fixedID,
			Now:               fixedNow,
		})
		if state.Success {
			t.Errorf("attendees=%d: expected failure", n)
		}
		if len(store.saved) != 0 {
			t.Errorf("attendees=%d: expected no insert, got %d", n, len(store.saved))
		}
	}
}

// TestExecuteRegisterEvent_TermsNotAccepted tests that an unticked terms
// checkbox fails validation before any lookup or write happens.
func TestExecuteRegisterEvent_TermsNotAccepted(t *testing.T) {
	store := &mockRegistrationStore{}
	events := &mockEventLookup{events: map[string]eventDomain.Event{
		"ev-1": {ID: "ev-1", Title: "Mărțișor workshop"},
	}}
	input := validRegistration()
	input.AgreeToTerms = false
	state := ExecuteRegisterEvent(context.Background(), input, RegisterEventDeps{
		RegistrationStore: store,
		EventStore:        events,
		GenerateID:        fixedID,
		Now:               fixedNow,
	})
	if state.Success {
		t.Fatal("expected failure")
	}
	if got := state.FieldErrors["agreeToTerms"]; len(got) != 1 || got[0] != "You must agree to the terms and conditions" {
		t.Errorf("agreeToTerms errors = %v", got)
	}
	if len(store.saved) != 0 {
		t.Errorf("terms failure must not insert, got %d inserts", len(store.saved))
	}
}
