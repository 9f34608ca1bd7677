package application

import (
	"errors"
	"strings"
	"time"
)

// Max length constants for user-editable fields.
const (
	MaxNameLength    = 50
	MaxMessageLength = 2000
)

// Status constants for a membership application.
const (
	StatusPending  = "pending"
	StatusApproved = "approved"
	StatusPaid     = "paid"
	StatusRejected = "rejected"
)

// ValidStatuses contains all valid application status values.
var ValidStatuses = []string{StatusPending, StatusApproved, StatusPaid, StatusRejected}

// Domain errors
var (
	ErrInvalidStatus = errors.New("status must be 'pending', 'approved', 'paid' or 'rejected'")
	ErrEmptyName     = errors.New("first and last name cannot be empty")
	ErrInvalidEmail  = errors.New("email must be valid")
)

// Application holds state for a membership application submitted via the
// public join form. Applications are never deleted; only their status moves.
type Application struct {
	ID        string
	FirstName string
	LastName  string
	Email     string
	Phone     string // optional, empty means not provided
	Message   string // optional
	Status    string
	CreatedAt time.Time
}

// ValidStatus reports whether s is one of the four allowed status values.
func ValidStatus(s string) bool {
	for _, v := range ValidStatuses {
		if s == v {
			return true
		}
	}
	return false
}

// Validate checks if the Application has valid data.
// PRE: Application struct is initialized
// POST: Returns error if validation fails, nil otherwise
// INVARIANT: Status is always one of ValidStatuses
func (a *Application) Validate() error {
	if strings.TrimSpace(a.FirstName) == "" || strings.TrimSpace(a.LastName) == "" {
		return ErrEmptyName
	}
	if len(a.FirstName) > MaxNameLength || len(a.LastName) > MaxNameLength {
		return errors.New("name cannot exceed 50 characters")
	}
	if !strings.Contains(a.Email, "@") {
		return ErrInvalidEmail
	}
	if len(a.Message) > MaxMessageLength {
		return errors.New("message cannot exceed 2000 characters")
	}
	if !ValidStatus(a.Status) {
		return ErrInvalidStatus
	}
	return nil
}

// IsPending returns true if the application has not been triaged yet.
// INVARIANT: Status field is not mutated
func (a *Application) IsPending() bool {
	return a.Status == StatusPending
}

// ChangeStatus moves the application to a new status.
// PRE: newStatus is one of ValidStatuses
// POST: Status is updated
func (a *Application) ChangeStatus(newStatus string) error {
	if !ValidStatus(newStatus) {
		return ErrInvalidStatus
	}
	a.Status = newStatus
	return nil
}
