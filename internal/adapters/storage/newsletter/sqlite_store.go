package newsletter

import (
	"context"
	"database/sql"
	"time"

	"casaromana/internal/adapters/storage"
	domain "casaromana/internal/domain/newsletter"
)

const timeLayout = "2006-01-02T15:04:05Z07:00"

// SQLiteStore implements Store using SQLite.
type SQLiteStore struct {
	db storage.SQLDB
}

// NewSQLiteStore creates a new SQLiteStore.
func NewSQLiteStore(db storage.SQLDB) *SQLiteStore {
	return &SQLiteStore{db: db}
}

// Save inserts a subscriber. The email column is UNIQUE; re-subscribing the
// same address surfaces as a unique violation for the caller to absorb.
func (s *SQLiteStore) Save(ctx context.Context, sub domain.Subscriber) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO newsletter_subscribers (id, email, name, created_at) VALUES (?, ?, ?, ?)`,
		sub.ID, sub.Email, nullableString(sub.Name), sub.CreatedAt.UTC().Format(timeLayout))
	return err
}

// List returns all subscribers ordered by signup time.
func (s *SQLiteStore) List(ctx context.Context, order string) ([]domain.Subscriber, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, email, name, created_at FROM newsletter_subscribers `+storage.CreatedAtOrder(order))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var subs []domain.Subscriber
	for rows.Next() {
		var sub domain.Subscriber
		var name sql.NullString
		var createdAt string
		if err := rows.Scan(&sub.ID, &sub.Email, &name, &createdAt); err != nil {
			return nil, err
		}
		sub.Name = name.String
		if t, err := time.Parse(timeLayout, createdAt); err == nil {
			sub.CreatedAt = t
		}
		subs = append(subs, sub)
	}
	return subs, rows.Err()
}

func nullableString(s string) any {
	if s == "" {
		return nil
	}
	return s
}
