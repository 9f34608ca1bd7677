package orchestrators

import (
	"context"
	"log/slog"
)

// Deleter is the store shape shared by every admin delete action. There is
// deliberately no deleter for membership applications.
type Deleter interface {
	Delete(ctx context.Context, id string) error
}

// ExecuteDeleteRecord removes one record from a collection.
// PRE: id is non-empty
// POST: One backend delete is issued; on error nothing changed
func ExecuteDeleteRecord(ctx context.Context, collection, id string, store Deleter) error {
	if err := store.Delete(ctx, id); err != nil {
		slog.Error("delete_failed", "collection", collection, "id", id, "error", err)
		return err
	}
	slog.Info("record_deleted", "collection", collection, "id", id)
	return nil
}
