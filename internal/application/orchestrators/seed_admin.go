package orchestrators

import (
	"context"
	"log/slog"
	"time"

	"casaromana/internal/domain/account"

	"github.com/google/uuid"
)

// AccountStoreForSeed defines the store interface needed by SeedAdmin.
type AccountStoreForSeed interface {
	Count(ctx context.Context) (int, error)
	Save(ctx context.Context, a account.Account) error
}

// SeedAdminDeps holds dependencies for SeedAdmin.
type SeedAdminDeps struct {
	AccountStore AccountStoreForSeed
}

// ExecuteSeedAdmin creates the initial admin account when no accounts exist
// yet. Subsequent startups are no-ops.
// PRE: email and password are configured
// POST: At least one account exists
func ExecuteSeedAdmin(ctx context.Context, email, password string, deps SeedAdminDeps) error {
	n, err := deps.AccountStore.Count(ctx)
	if err != nil {
		return err
	}
	if n > 0 {
		return nil
	}

	acct := account.Account{
		ID:        uuid.New().String(),
		Email:     email,
		CreatedAt: time.Now(),
	}
	if err := acct.SetPassword(password); err != nil {
		return err
	}
	if err := acct.Validate(); err != nil {
		return err
	}
	if err := deps.AccountStore.Save(ctx, acct); err != nil {
		return err
	}

	slog.Info("admin_seeded", "email", email)
	return nil
}
