package newsletter

import (
	"errors"
	"strings"
	"time"
)

// Subscriber is a newsletter signup from the public site footer.
type Subscriber struct {
	ID        string
	Email     string
	Name      string // optional
	CreatedAt time.Time
}

// Validate checks if the Subscriber has valid data.
func (s *Subscriber) Validate() error {
	if !strings.Contains(s.Email, "@") {
		return errors.New("subscriber email must be valid")
	}
	return nil
}
