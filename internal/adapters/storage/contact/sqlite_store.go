package contact

import (
	"context"
	"database/sql"
	"time"

	"casaromana/internal/adapters/storage"
	domain "casaromana/internal/domain/contact"
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

const messageColumns = `id, name, email, subject, message, created_at`

// GetByID retrieves a contact message by ID.
// PRE: id is non-empty
// POST: Returns the entity or an error if not found
func (s *SQLiteStore) GetByID(ctx context.Context, id string) (domain.Message, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT `+messageColumns+` FROM contact_messages WHERE id = ?`, id)
	var m domain.Message
	var subject sql.NullString
	var createdAt string
	if err := row.Scan(&m.ID, &m.Name, &m.Email, &subject, &m.Message, &createdAt); err != nil {
		return domain.Message{}, err
	}
	m.Subject = subject.String
	m.CreatedAt = parseTime(createdAt)
	return m, nil
}

// Save inserts a contact message.
// PRE: entity has been validated
// POST: Entity is persisted
func (s *SQLiteStore) Save(ctx context.Context, m domain.Message) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO contact_messages (id, name, email, subject, message, created_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		m.ID, m.Name, m.Email, nullableString(m.Subject), m.Message,
		m.CreatedAt.UTC().Format(timeLayout))
	return err
}

// Delete removes a contact message by ID.
// PRE: id is non-empty
// POST: Entity with given id is removed
func (s *SQLiteStore) Delete(ctx context.Context, id string) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM contact_messages WHERE id = ?`, id)
	return err
}

// List returns all contact messages ordered by creation time.
// POST: Returns messages in the requested created_at order
func (s *SQLiteStore) List(ctx context.Context, order string) ([]domain.Message, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT `+messageColumns+` FROM contact_messages `+storage.CreatedAtOrder(order))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var messages []domain.Message
	for rows.Next() {
		var m domain.Message
		var subject sql.NullString
		var createdAt string
		if err := rows.Scan(&m.ID, &m.Name, &m.Email, &subject, &m.Message, &createdAt); err != nil {
			return nil, err
		}
		m.Subject = subject.String
		m.CreatedAt = parseTime(createdAt)
		messages = append(messages, m)
	}
	return messages, rows.Err()
}

func parseTime(s string) time.Time {
	t, err := time.Parse(timeLayout, s)
	if err != nil {
		return time.Time{}
	}
	return t
}

func nullableString(s string) any {
	if s == "" {
		return nil
	}
	return s
}
