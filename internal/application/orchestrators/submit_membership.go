package orchestrators

import (
	"context"
	"fmt"
	"html"
	"log/slog"
	"time"

	"casaromana/internal/adapters/email"
	"casaromana/internal/adapters/storage"
	applicationDomain "casaromana/internal/domain/application"
	"casaromana/internal/forms"
)

// ApplicationStore defines the store interface needed by SubmitMembership.
type ApplicationStore interface {
	Save(ctx context.Context, a applicationDomain.Application) error
}

// SubmitMembershipInput carries the raw join form fields.
type SubmitMembershipInput struct {
	FirstName      string
	LastName       string
	Email          string
	Phone          string
	Address        string
	PostalCode     string
	City           string
	MembershipType string
	Message        string
}

// SubmitMembershipDeps holds dependencies for SubmitMembership.
type SubmitMembershipDeps struct {
	ApplicationStore ApplicationStore
	Sender           email.Sender // optional admin notification
	NotifyTo         string
	GenerateID       func() string
	Now              func() time.Time
}

// ExecuteSubmitMembership validates a membership application and persists it
// with status pending.
// PRE: input carries the raw form fields
// POST: On success exactly one application row exists with status=pending;
// a duplicate email maps to the dedicated duplicate message and writes nothing
func ExecuteSubmitMembership(ctx context.Context, input SubmitMembershipInput, deps SubmitMembershipDeps) SubmitState {
	if fe := forms.Validate(forms.Membership{
		FirstName:      input.FirstName,
		LastName:       input.LastName,
		Email:          input.Email,
		Phone:          input.Phone,
		Address:        input.Address,
		PostalCode:     input.PostalCode,
		City:           input.City,
		MembershipType: input.MembershipType,
		Message:        input.Message,
	}); fe != nil {
		return submitInvalid(fe)
	}

	a := applicationDomain.Application{
		ID:        deps.GenerateID(),
		FirstName: input.FirstName,
		LastName:  input.LastName,
		Email:     input.Email,
		Phone:     forms.NormalizePhone(input.Phone),
		Message:   input.Message,
		Status:    applicationDomain.StatusPending,
		CreatedAt: deps.Now(),
	}
	if err := deps.ApplicationStore.Save(ctx, a); err != nil {
		if storage.IsUniqueViolation(err) {
			slog.Info("application_duplicate_email", "email", input.Email)
			return submitFailed(ErrMsgDuplicateEmail)
		}
		slog.Error("application_insert_failed", "error", err)
		return submitFailed(ErrMsgGeneric)
	}

	notifyAdmin(ctx, deps.Sender, deps.NotifyTo,
		"New membership application: "+a.FirstName+" "+a.LastName,
		fmt.Sprintf("<p><strong>%s %s</strong> (%s) applied for membership.</p>",
			html.EscapeString(a.FirstName), html.EscapeString(a.LastName), html.EscapeString(a.Email)))

	slog.Info("application_submitted", "id", a.ID)
	return submitOK()
}
