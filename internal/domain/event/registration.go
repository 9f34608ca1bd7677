package event

import (
	"errors"
	"strings"
	"time"
)

// Attendee bounds for a single registration.
const (
	MinAttendees = 1
	MaxAttendees = 10
)

// Registration is a sign-up for an event submitted from the events page.
type Registration struct {
	ID                  string
	EventID             string
	FirstName           string
	LastName            string
	Email               string
	Phone               string
	NumberOfAttendees   int
	SpecialRequirements string // optional
	CreatedAt           time.Time
}

// Validate checks if the Registration has valid data.
// PRE: Registration struct is initialized
// POST: Returns error if validation fails, nil otherwise
func (r *Registration) Validate() error {
	if r.EventID == "" {
		return errors.New("registration must reference an event")
	}
	if strings.TrimSpace(r.FirstName) == "" || strings.TrimSpace(r.LastName) == "" {
		return errors.New("first and last name cannot be empty")
	}
	if !strings.Contains(r.Email, "@") {
		return errors.New("email must be valid")
	}
	if r.NumberOfAttendees < MinAttendees || r.NumberOfAttendees > MaxAttendees {
		return errors.New("number of attendees must be between 1 and 10")
	}
	if len(r.SpecialRequirements) > 500 {
		return errors.New("special requirements cannot exceed 500 characters")
	}
	return nil
}
