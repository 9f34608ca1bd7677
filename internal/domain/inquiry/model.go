package inquiry

import (
	"errors"
	"strings"
	"time"
)

// Domain errors
var (
	ErrEmptyCustomerName = errors.New("customer name cannot be empty")
	ErrInvalidEmail      = errors.New("customer email must be valid")
)

// Inquiry is a customer question about a store product. ProductID and
// ProductName are a denormalized snapshot taken at submission time: the
// inquiry keeps the name even if the product is later renamed or deleted.
type Inquiry struct {
	ID            string
	ProductID     string // optional snapshot, empty when the product field was not set
	ProductName   string // optional snapshot
	CustomerName  string
	CustomerEmail string
	Message       string // optional
	Phone         string // optional
	Address       string // optional
	PostalCode    string // optional
	City          string // optional
	CreatedAt     time.Time
}

// Validate checks if the Inquiry has valid data.
// PRE: Inquiry struct is initialized
// POST: Returns error if validation fails, nil otherwise
func (i *Inquiry) Validate() error {
	if strings.TrimSpace(i.CustomerName) == "" {
		return ErrEmptyCustomerName
	}
	if !strings.Contains(i.CustomerEmail, "@") {
		return ErrInvalidEmail
	}
	return nil
}
