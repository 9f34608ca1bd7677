package contact

import (
	"errors"
	"strings"
	"time"
)

// Max length constants for user-editable fields.
const (
	MaxNameLength    = 100
	MaxSubjectLength = 200
	MaxMessageLength = 2000
)

// Domain errors
var (
	ErrEmptyName    = errors.New("name cannot be empty")
	ErrInvalidEmail = errors.New("email must be valid")
	ErrEmptyMessage = errors.New("message cannot be empty")
)

// Message is a contact-form submission. Subject is optional; everything
// else is required by the public form.
type Message struct {
	ID        string
	Name      string
	Email     string
	Subject   string // optional
	Message   string
	CreatedAt time.Time
}

// Validate checks if the Message has valid data.
// PRE: Message struct is initialized
// POST: Returns error if validation fails, nil otherwise
func (m *Message) Validate() error {
	if strings.TrimSpace(m.Name) == "" {
		return ErrEmptyName
	}
	if !strings.Contains(m.Email, "@") {
		return ErrInvalidEmail
	}
	if strings.TrimSpace(m.Message) == "" {
		return ErrEmptyMessage
	}
	if len(m.Subject) > MaxSubjectLength {
		return errors.New("subject cannot exceed 200 characters")
	}
	if len(m.Message) > MaxMessageLength {
		return errors.New("message cannot exceed 2000 characters")
	}
	return nil
}
