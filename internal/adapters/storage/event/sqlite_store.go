package event

import (
	"context"
	"database/sql"
	"time"

	"casaromana/internal/adapters/storage"
	domain "casaromana/internal/domain/event"
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

// "time" is quoted because it is also a SQL function name.
const eventColumns = `id, title, description, day, date, "time", image_url, created_at`

// GetByID retrieves an event by ID.
// PRE: id is non-empty
// POST: Returns the entity or an error if not found
func (s *SQLiteStore) GetByID(ctx context.Context, id string) (domain.Event, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT `+eventColumns+` FROM events WHERE id = ?`, id)
	var e domain.Event
	var description, day, date, timeOfDay, imageURL sql.NullString
	var createdAt string
	err := row.Scan(&e.ID, &e.Title, &description, &day, &date, &timeOfDay, &imageURL, &createdAt)
	if err != nil {
		return domain.Event{}, err
	}
	e.Description = description.String
	e.Day = day.String
	e.Date = date.String
	e.Time = timeOfDay.String
	e.ImageURL = imageURL.String
	e.CreatedAt = parseTime(createdAt)
	return e, nil
}

// Save inserts or updates an event.
// PRE: entity has been validated
// POST: Entity is persisted (insert or update)
func (s *SQLiteStore) Save(ctx context.Context, e domain.Event) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO events (id, title, description, day, date, "time", image_url, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		 ON CONFLICT(id) DO UPDATE SET
		   title=excluded.title, description=excluded.description, day=excluded.day,
		   date=excluded.date, "time"=excluded."time", image_url=excluded.image_url`,
		e.ID, e.Title, nullableString(e.Description), nullableString(e.Day),
		nullableString(e.Date), nullableString(e.Time), nullableString(e.ImageURL),
		e.CreatedAt.UTC().Format(timeLayout))
	return err
}

// Delete removes an event by ID.
// PRE: id is non-empty
// POST: Entity with given id is removed
func (s *SQLiteStore) Delete(ctx context.Context, id string) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM events WHERE id = ?`, id)
	return err
}

// List returns all events ordered by creation time.
// POST: Returns events in the requested created_at order
func (s *SQLiteStore) List(ctx context.Context, order string) ([]domain.Event, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT `+eventColumns+` FROM events `+storage.CreatedAtOrder(order))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var events []domain.Event
	for rows.Next() {
		var e domain.Event
		var description, day, date, timeOfDay, imageURL sql.NullString
		var createdAt string
		err := rows.Scan(&e.ID, &e.Title, &description, &day, &date, &timeOfDay, &imageURL, &createdAt)
		if err != nil {
			return nil, err
		}
		e.Description = description.String
		e.Day = day.String
		e.Date = date.String
		e.Time = timeOfDay.String
		e.ImageURL = imageURL.String
		e.CreatedAt = parseTime(createdAt)
		events = append(events, e)
	}
	return events, rows.Err()
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
