package application_test

import (
	"strings"
	"testing"

	"casaromana/internal/domain/application"
)

// TestApplication_Validate tests validation of Application.
func TestApplication_Validate(t *testing.T) {
	valid := application.Application{
		ID:        "1",
		FirstName: "Ana",
		LastName:  "Pop",
		Email:     "ana@example.com",
		Status:    application.StatusPending,
	}

	tests := []struct {
		name    string
		mutate  func(*application.Application)
		wantErr bool
	}{
		{"valid", func(a *application.Application) {}, false},
		{"empty first name", func(a *application.Application) { a.FirstName = " " }, true},
		{"empty last name", func(a *application.Application) { a.LastName = "" }, true},
		{"name too long", func(a *application.Application) { a.FirstName = strings.Repeat("a", 51) }, true},
		{"email without at sign", func(a *application.Application) { a.Email = "not-an-email" }, true},
		{"message too long", func(a *application.Application) { a.Message = strings.Repeat("x", 2001) }, true},
		{"unknown status", func(a *application.Application) { a.Status = "archived" }, true},
		{"empty status", func(a *application.Application) { a.Status = "" }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := valid
			tt.mutate(&a)
			err := a.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

// TestValidStatus tests the status enum check.
func TestValidStatus(t *testing.T) {
	for _, s := range application.ValidStatuses {
		if !application.ValidStatus(s) {
			t.Errorf("ValidStatus(%q) = false, want true", s)
		}
	}
	for _, s := range []string{"", "Pending", "archived", "paid "} {
		if application.ValidStatus(s) {
			t.Errorf("ValidStatus(%q) = true, want false", s)
		}
	}
}

// TestApplication_IsPending tests the pending check.
func TestApplication_IsPending(t *testing.T) {
	a := application.Application{Status: application.StatusPending}
	if !a.IsPending() {
		t.Error("pending application reported as not pending")
	}
	a.Status = application.StatusPaid
	if a.IsPending() {
		t.Error("paid application reported as pending")
	}
}
