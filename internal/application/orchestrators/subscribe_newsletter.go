package orchestrators

import (
	"context"
	"log/slog"
	"time"

	"casaromana/internal/adapters/storage"
	newsletterDomain "casaromana/internal/domain/newsletter"
	"casaromana/internal/forms"
)

// NewsletterStore defines the store interface needed by SubscribeNewsletter.
type NewsletterStore interface {
	Save(ctx context.Context, s newsletterDomain.Subscriber) error
}

// SubscribeNewsletterInput carries the raw footer signup fields.
type SubscribeNewsletterInput struct {
	Email string
	Name  string
}

// SubscribeNewsletterDeps holds dependencies for SubscribeNewsletter.
type SubscribeNewsletterDeps struct {
	NewsletterStore NewsletterStore
	GenerateID      func() string
	Now             func() time.Time
}

// ExecuteSubscribeNewsletter validates and stores a newsletter signup.
// Re-subscribing an address that is already on the list reports success
// without inserting a second row.
func ExecuteSubscribeNewsletter(ctx context.Context, input SubscribeNewsletterInput, deps SubscribeNewsletterDeps) SubmitState {
	if fe := forms.Validate(forms.Newsletter{Email: input.Email, Name: input.Name}); fe != nil {
		return submitInvalid(fe)
	}

	sub := newsletterDomain.Subscriber{
		ID:        deps.GenerateID(),
		Email:     input.Email,
		Name:      input.Name,
		CreatedAt: deps.Now(),
	}
	if err := deps.NewsletterStore.Save(ctx, sub); err != nil {
		if storage.IsUniqueViolation(err) {
			return submitOK()
		}
		slog.Error("newsletter_insert_failed", "error", err)
		return submitFailed(ErrMsgGeneric)
	}

	slog.Info("newsletter_subscribed", "id", sub.ID)
	return submitOK()
}
