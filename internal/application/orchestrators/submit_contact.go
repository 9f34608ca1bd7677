package orchestrators

import (
	"context"
	"fmt"
	"html"
	"log/slog"
	"time"

	"casaromana/internal/adapters/email"
	contactDomain "casaromana/internal/domain/contact"
	"casaromana/internal/forms"
)

// ContactStore defines the store interface needed by SubmitContact.
type ContactStore interface {
	Save(ctx context.Context, m contactDomain.Message) error
}

// SubmitContactInput carries the raw contact form fields.
type SubmitContactInput struct {
	Name    string
	Email   string
	Phone   string
	Subject string
	Message string
}

// SubmitContactDeps holds dependencies for SubmitContact.
type SubmitContactDeps struct {
	ContactStore ContactStore
	Sender       email.Sender // optional admin notification
	NotifyTo     string
	GenerateID   func() string
	Now          func() time.Time
}

// ExecuteSubmitContact validates a contact submission and persists it.
// PRE: input carries the raw form fields
// POST: On validation failure no store call is made; on success exactly one
// message is inserted
func ExecuteSubmitContact(ctx context.Context, input SubmitContactInput, deps SubmitContactDeps) SubmitState {
	if fe := forms.Validate(forms.Contact{
		Name:    input.Name,
		Email:   input.Email,
		Phone:   input.Phone,
		Subject: input.Subject,
		Message: input.Message,
	}); fe != nil {
		return submitInvalid(fe)
	}

	m := contactDomain.Message{
		ID:        deps.GenerateID(),
		Name:      input.Name,
		Email:     input.Email,
		Subject:   input.Subject,
		Message:   input.Message,
		CreatedAt: deps.Now(),
	}
	if err := deps.ContactStore.Save(ctx, m); err != nil {
		slog.Error("contact_insert_failed", "error", err)
		return submitFailed(ErrMsgGeneric)
	}

	notifyAdmin(ctx, deps.Sender, deps.NotifyTo,
		"New contact message: "+m.Name,
		fmt.Sprintf("<p><strong>%s</strong> (%s) wrote:</p><p>%s</p>",
			html.EscapeString(m.Name), html.EscapeString(m.Email), html.EscapeString(m.Message)))

	slog.Info("contact_submitted", "id", m.ID)
	return submitOK()
}

// notifyAdmin sends a best-effort notification. Delivery failures are logged
// and never fail the submission that triggered them.
func notifyAdmin(ctx context.Context, sender email.Sender, to, subject, body string) {
	if sender == nil || to == "" {
		return
	}
	_, err := sender.Send(ctx, email.SendRequest{
		To:      []string{to},
		Subject: subject,
		HTML:    body,
	})
	if err != nil {
		slog.Error("admin_notify_failed", "subject", subject, "error", err)
	}
}
