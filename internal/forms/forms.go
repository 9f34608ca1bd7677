// Package forms is the validation layer for every public and admin form.
// Each submission type has a declarative schema struct; Validate returns
// either nil or a field-level error map the templates render inline.
package forms

import (
	"fmt"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

// FieldErrors maps a form field name to the validation messages for that
// field. A nil FieldErrors means the submission passed validation.
type FieldErrors map[string][]string

// Has reports whether the named field failed validation.
func (fe FieldErrors) Has(field string) bool {
	return len(fe[field]) > 0
}

// First returns the first message for a field, or "" if the field is valid.
func (fe FieldErrors) First(field string) string {
	if msgs := fe[field]; len(msgs) > 0 {
		return msgs[0]
	}
	return ""
}

var (
	phonePattern  = regexp.MustCompile(`^\+?\d{8,15}$`)
	postalPattern = regexp.MustCompile(`^\d{4}$`)
)

// validate is the shared validator instance. Field names in errors come from
// the `form` tag so they match the HTML input names.
var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("form"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	// phone: optional leading +, 8-15 digits; spaces in user input are ignored
	must(v.RegisterValidation("phone", func(fl validator.FieldLevel) bool {
		return phonePattern.MatchString(strings.ReplaceAll(fl.Field().String(), " ", ""))
	}))
	// nopostal: four-digit Norwegian postal code
	must(v.RegisterValidation("nopostal", func(fl validator.FieldLevel) bool {
		return postalPattern.MatchString(fl.Field().String())
	}))
	return v
}

func must(err error) {
	if err != nil {
		panic(err)
	}
}

// Validate runs a schema struct through the shared validator and converts
// the result into a FieldErrors map. It is a pure function of its input.
// POST: Returns nil when the form is valid
func Validate(form any) FieldErrors {
	err := validate.Struct(form)
	if err == nil {
		return nil
	}
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		// Non-validation errors (bad schema struct) are a programming bug.
		panic(err)
	}
	fe := make(FieldErrors)
	for _, v := range verrs {
		field := v.Field()
		fe[field] = append(fe[field], messageFor(field, v))
	}
	return fe
}

// fieldLabels holds the human-readable label per form field name, used to
// compose validation messages.
var fieldLabels = map[string]string{
	"name":                "Name",
	"email":               "Email",
	"phone":               "Phone number",
	"subject":             "Subject",
	"message":             "Message",
	"firstName":           "First name",
	"lastName":            "Last name",
	"address":             "Address",
	"postalCode":          "Postal code",
	"city":                "City",
	"membershipType":      "Membership type",
	"eventId":             "Event",
	"numberOfAttendees":   "Number of attendees",
	"specialRequirements": "Special requirements",
	"productName":         "Product name",
	"productPrice":        "Price",
	"productDescription":  "Description",
	"title":               "Title",
	"description":         "Description",
}

// messageFor maps a failed rule to its user-facing message. The strings
// deliberately mirror the ones the site has always shown.
func messageFor(field string, v validator.FieldError) string {
	label := fieldLabels[field]
	if label == "" {
		label = field
	}
	switch v.Tag() {
	case "required":
		if field == "agreeToTerms" {
			return "You must agree to the terms and conditions"
		}
		return fmt.Sprintf("%s is required", label)
	case "min":
		if v.Kind() == reflect.String {
			return fmt.Sprintf("%s must be at least %s characters", label, v.Param())
		}
		return fmt.Sprintf("At least %s attendee required", v.Param())
	case "max":
		if v.Kind() == reflect.String {
			return fmt.Sprintf("%s must be less than %s characters", label, v.Param())
		}
		return fmt.Sprintf("Maximum %s attendees per registration", v.Param())
	case "email":
		return "Please enter a valid email address"
	case "phone":
		return "Please enter a valid phone number"
	case "nopostal":
		return "Please enter a valid Norwegian postal code"
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", label, strings.ReplaceAll(v.Param(), " ", ", "))
	case "gte":
		return fmt.Sprintf("%s cannot be negative", label)
	}
	return fmt.Sprintf("%s is invalid", label)
}
