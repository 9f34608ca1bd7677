package product

import (
	"errors"
	"strings"
	"time"
)

// Max length constants for user-editable fields.
const (
	MaxNameLength        = 100
	MaxDescriptionLength = 2000
)

// Domain errors
var (
	ErrEmptyName     = errors.New("product name cannot be empty")
	ErrNegativePrice = errors.New("price cannot be negative")
)

// Product is a catalog item sold through the store page. The image is held
// in object storage; ImageURL is the public address, empty when no image
// was ever uploaded.
type Product struct {
	ID          string
	Name        string
	Description string // optional
	Price       float64
	ImageURL    string // optional
	CreatedAt   time.Time
}

// Validate checks if the Product has valid data.
// PRE: Product struct is initialized
// POST: Returns error if validation fails, nil otherwise
func (p *Product) Validate() error {
	if strings.TrimSpace(p.Name) == "" {
		return ErrEmptyName
	}
	if len(p.Name) > MaxNameLength {
		return errors.New("product name cannot exceed 100 characters")
	}
	if len(p.Description) > MaxDescriptionLength {
		return errors.New("product description cannot exceed 2000 characters")
	}
	if p.Price < 0 {
		return ErrNegativePrice
	}
	return nil
}

// HasImage returns true if the product has an uploaded image.
// INVARIANT: ImageURL field is not mutated
func (p *Product) HasImage() bool {
	return p.ImageURL != ""
}
