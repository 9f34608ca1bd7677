package application

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"casaromana/internal/adapters/storage"
	domain "casaromana/internal/domain/application"
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

const applicationColumns = `id, first_name, last_name, email, phone, message, status, created_at`

// GetByID retrieves an application by ID.
// PRE: id is non-empty
// POST: Returns the entity or an error if not found
func (s *SQLiteStore) GetByID(ctx context.Context, id string) (domain.Application, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT `+applicationColumns+` FROM membership_applications WHERE id = ?`, id)
	return scanApplication(row)
}

// Save inserts or updates an application.
// PRE: entity has been validated
// POST: Entity is persisted (insert or update)
func (s *SQLiteStore) Save(ctx context.Context, a domain.Application) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO membership_applications (id, first_name, last_name, email, phone, message, status, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		 ON CONFLICT(id) DO UPDATE SET
		   first_name=excluded.first_name, last_name=excluded.last_name, email=excluded.email,
		   phone=excluded.phone, message=excluded.message, status=excluded.status`,
		a.ID, a.FirstName, a.LastName, a.Email,
		nullableString(a.Phone), nullableString(a.Message),
		a.Status, a.CreatedAt.UTC().Format(timeLayout))
	return err
}

// UpdateStatus sets only the status field of one application.
// PRE: status is one of the four allowed values
// POST: Exactly the named row's status is changed
func (s *SQLiteStore) UpdateStatus(ctx context.Context, id, status string) error {
	if !domain.ValidStatus(status) {
		return domain.ErrInvalidStatus
	}
	res, err := s.db.ExecContext(ctx,
		`UPDATE membership_applications SET status = ? WHERE id = ?`, status, id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("application not found: %s", id)
	}
	return nil
}

// List returns all applications ordered by creation time.
// POST: Returns applications in the requested created_at order
func (s *SQLiteStore) List(ctx context.Context, order string) ([]domain.Application, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT `+applicationColumns+` FROM membership_applications `+storage.CreatedAtOrder(order))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var apps []domain.Application
	for rows.Next() {
		a, err := scanApplicationRows(rows)
		if err != nil {
			return nil, err
		}
		apps = append(apps, a)
	}
	return apps, rows.Err()
}

func scanApplication(row *sql.Row) (domain.Application, error) {
	var a domain.Application
	var phone, message sql.NullString
	var createdAt string
	err := row.Scan(&a.ID, &a.FirstName, &a.LastName, &a.Email, &phone, &message, &a.Status, &createdAt)
	if err != nil {
		return domain.Application{}, err
	}
	a.Phone = phone.String
	a.Message = message.String
	a.CreatedAt = parseTime(createdAt)
	return a, nil
}

func scanApplicationRows(rows *sql.Rows) (domain.Application, error) {
	var a domain.Application
	var phone, message sql.NullString
	var createdAt string
	err := rows.Scan(&a.ID, &a.FirstName, &a.LastName, &a.Email, &phone, &message, &a.Status, &createdAt)
	if err != nil {
		return domain.Application{}, err
	}
	a.Phone = phone.String
	a.Message = message.String
	a.CreatedAt = parseTime(createdAt)
	return a, nil
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
