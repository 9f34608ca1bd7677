package orchestrators

import (
	"context"
	"log/slog"

	applicationDomain "casaromana/internal/domain/application"
)

// ApplicationStoreForStatus defines the store interface needed by ChangeStatus.
type ApplicationStoreForStatus interface {
	UpdateStatus(ctx context.Context, id, status string) error
}

// ChangeStatusDeps holds dependencies for ChangeStatus.
type ChangeStatusDeps struct {
	ApplicationStore ApplicationStoreForStatus
}

// ExecuteChangeStatus moves one membership application to a new status.
// PRE: newStatus is one of the four allowed values
// POST: Exactly one backend update is issued; on error nothing changed
func ExecuteChangeStatus(ctx context.Context, id, newStatus string, deps ChangeStatusDeps) error {
	if !applicationDomain.ValidStatus(newStatus) {
		return applicationDomain.ErrInvalidStatus
	}
	if err := deps.ApplicationStore.UpdateStatus(ctx, id, newStatus); err != nil {
		slog.Error("status_change_failed", "id", id, "status", newStatus, "error", err)
		return err
	}
	slog.Info("status_changed", "id", id, "status", newStatus)
	return nil
}
