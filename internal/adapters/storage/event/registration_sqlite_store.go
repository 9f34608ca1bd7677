package event

import (
	"context"
	"database/sql"

	"casaromana/internal/adapters/storage"
	domain "casaromana/internal/domain/event"
)

// RegistrationSQLiteStore implements RegistrationStore using SQLite.
type RegistrationSQLiteStore struct {
	db storage.SQLDB
}

// NewRegistrationSQLiteStore creates a new RegistrationSQLiteStore.
func NewRegistrationSQLiteStore(db storage.SQLDB) *RegistrationSQLiteStore {
	return &RegistrationSQLiteStore{db: db}
}

// Save inserts a registration.
// PRE: entity has been validated
// POST: Entity is persisted
func (s *RegistrationSQLiteStore) Save(ctx context.Context, r domain.Registration) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO event_registrations (id, event_id, first_name, last_name, email, phone,
		   number_of_attendees, special_requirements, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		r.ID, r.EventID, r.FirstName, r.LastName, r.Email, r.Phone,
		r.NumberOfAttendees, nullableString(r.SpecialRequirements),
		r.CreatedAt.UTC().Format(timeLayout))
	return err
}

// ListByEvent returns registrations for one event, oldest first.
// PRE: eventID is non-empty
// POST: Returns matching registrations ordered by created_at ascending
func (s *RegistrationSQLiteStore) ListByEvent(ctx context.Context, eventID string) ([]domain.Registration, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, event_id, first_name, last_name, email, phone,
		   number_of_attendees, special_requirements, created_at
		 FROM event_registrations WHERE event_id = ? ORDER BY created_at ASC`, eventID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var regs []domain.Registration
	for rows.Next() {
		var r domain.Registration
		var special sql.NullString
		var createdAt string
		err := rows.Scan(&r.ID, &r.EventID, &r.FirstName, &r.LastName, &r.Email, &r.Phone,
			&r.NumberOfAttendees, &special, &createdAt)
		if err != nil {
			return nil, err
		}
		r.SpecialRequirements = special.String
		r.CreatedAt = parseTime(createdAt)
		regs = append(regs, r)
	}
	return regs, rows.Err()
}
