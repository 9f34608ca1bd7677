package forms

import "strings"

// One schema struct per submission type. The `form` tag is the HTML input
// name (also the key in FieldErrors); the `validate` tag carries the rules.
// Optional fields use omitempty so an empty string is treated as absent and
// never fails a pattern rule.

// Contact is the public contact form.
type Contact struct {
	Name    string `form:"name" validate:"required,min=2,max=100"`
	Email   string `form:"email" validate:"required,email"`
	Phone   string `form:"phone" validate:"omitempty,phone"`
	Subject string `form:"subject" validate:"omitempty,min=3,max=200"`
	Message string `form:"message" validate:"required,min=10,max=2000"`
}

// Membership is the public join form. Only name and email are required to
// apply; the extended fields are validated when provided.
type Membership struct {
	FirstName      string `form:"firstName" validate:"required,min=2,max=50"`
	LastName       string `form:"lastName" validate:"required,min=2,max=50"`
	Email          string `form:"email" validate:"required,email"`
	Phone          string `form:"phone" validate:"omitempty,phone"`
	Address        string `form:"address" validate:"omitempty,min=5,max=200"`
	PostalCode     string `form:"postalCode" validate:"omitempty,nopostal"`
	City           string `form:"city" validate:"omitempty,min=2,max=100"`
	MembershipType string `form:"membershipType" validate:"omitempty,oneof=individual family"`
	Message        string `form:"message" validate:"omitempty,max=2000"`
}

// Inquiry is the store page product-inquiry form.
type Inquiry struct {
	Name       string `form:"name" validate:"required,min=2,max=100"`
	Email      string `form:"email" validate:"required,email"`
	Message    string `form:"message" validate:"omitempty,max=2000"`
	Phone      string `form:"phone" validate:"omitempty,phone"`
	Address    string `form:"address" validate:"omitempty,max=200"`
	PostalCode string `form:"postalCode" validate:"omitempty,nopostal"`
	City       string `form:"city" validate:"omitempty,max=100"`
}

// Newsletter is the footer newsletter signup.
type Newsletter struct {
	Email string `form:"email" validate:"required,email"`
	Name  string `form:"name" validate:"omitempty,min=2"`
}

// EventRegistration is the events page sign-up form.
type EventRegistration struct {
	EventID             string `form:"eventId" validate:"required"`
	FirstName           string `form:"firstName" validate:"required,min=2,max=50"`
	LastName            string `form:"lastName" validate:"required,min=2,max=50"`
	Email               string `form:"email" validate:"required,email"`
	Phone               string `form:"phone" validate:"required,phone"`
	NumberOfAttendees   int    `form:"numberOfAttendees" validate:"min=1,max=10"`
	SpecialRequirements string `form:"specialRequirements" validate:"omitempty,max=500"`
	AgreeToTerms        bool   `form:"agreeToTerms" validate:"required"`
}

// ProductForm is the admin product create/edit form.
type ProductForm struct {
	Name        string  `form:"productName" validate:"required,min=2,max=100"`
	Description string  `form:"productDescription" validate:"omitempty,max=2000"`
	Price       float64 `form:"productPrice" validate:"gte=0"`
}

// EventForm is the admin event create/edit form.
type EventForm struct {
	Title       string `form:"title" validate:"required,min=2,max=200"`
	Description string `form:"description" validate:"omitempty,max=2000"`
	Day         string `form:"day" validate:"omitempty,max=50"`
	Date        string `form:"date" validate:"omitempty,max=50"`
	Time        string `form:"time" validate:"omitempty,max=50"`
}

// NormalizePhone strips spaces from a phone value so storage matches what
// the phone rule validated.
func NormalizePhone(phone string) string {
	return strings.ReplaceAll(phone, " ", "")
}
