package event

import (
	"errors"
	"strings"
	"time"
)

// Max length constants for user-editable fields.
const (
	MaxTitleLength       = 200
	MaxDescriptionLength = 2000
)

// Domain errors
var (
	ErrEmptyTitle = errors.New("event title cannot be empty")
)

// Event is a calendar entry shown on the public events page. Day, Date and
// Time are free-form display strings (the site shows them verbatim in the
// visitor's locale), all optional, as is the image.
type Event struct {
	ID          string
	Title       string
	Description string // optional
	Day         string // optional, e.g. "Saturday"
	Date        string // optional, e.g. "14. juni"
	Time        string // optional, e.g. "17:00 - 20:00"
	ImageURL    string // optional
	CreatedAt   time.Time
}

// Validate checks if the Event has valid data.
// PRE: Event struct is initialized
// POST: Returns error if validation fails, nil otherwise
func (e *Event) Validate() error {
	if strings.TrimSpace(e.Title) == "" {
		return ErrEmptyTitle
	}
	if len(e.Title) > MaxTitleLength {
		return errors.New("event title cannot exceed 200 characters")
	}
	if len(e.Description) > MaxDescriptionLength {
		return errors.New("event description cannot exceed 2000 characters")
	}
	return nil
}

// HasImage returns true if the event has an uploaded image.
// INVARIANT: ImageURL field is not mutated
func (e *Event) HasImage() bool {
	return e.ImageURL != ""
}
