package storage

import (
	"database/sql"
	"fmt"
	"strings"
)

// List ordering by creation time. Every collection listing in the app
// orders on created_at one way or the other.
const (
	OrderAsc  = "asc"
	OrderDesc = "desc"
)

// CreatedAtOrder returns the ORDER BY fragment for a list order, defaulting
// to descending for unrecognized values.
func CreatedAtOrder(order string) string {
	if strings.EqualFold(order, OrderAsc) {
		return "ORDER BY created_at ASC"
	}
	return "ORDER BY created_at DESC"
}

// IsUniqueViolation reports whether err is a SQLite unique-constraint
// failure. Used to map duplicate-email inserts to a distinct user error.
func IsUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}

// InitDB initializes the database schema.
// PRE: db is a valid database connection
// POST: All tables are created, WAL mode enabled
func InitDB(db *sql.DB) error {
	// Enable WAL mode for better concurrency
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		return fmt.Errorf("failed to enable WAL mode: %w", err)
	}
	// Enable foreign key enforcement
	if _, err := db.Exec("PRAGMA foreign_keys=ON"); err != nil {
		return fmt.Errorf("failed to enable foreign keys: %w", err)
	}

	// Create tables
	schema := `
	CREATE TABLE IF NOT EXISTS accounts (
		id TEXT PRIMARY KEY,
		email TEXT NOT NULL UNIQUE,
		password_hash TEXT NOT NULL DEFAULT '',
		created_at TEXT NOT NULL,
		failed_logins INTEGER NOT NULL DEFAULT 0,
		locked_until TEXT
	);

	CREATE TABLE IF NOT EXISTS membership_applications (
		id TEXT PRIMARY KEY,
		first_name TEXT NOT NULL,
		last_name TEXT NOT NULL,
		email TEXT NOT NULL UNIQUE,
		phone TEXT,
		message TEXT,
		status TEXT NOT NULL DEFAULT 'pending',
		created_at TEXT NOT NULL
	);

	CREATE TABLE IF NOT EXISTS products (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		description TEXT,
		price REAL NOT NULL DEFAULT 0,
		image_url TEXT,
		created_at TEXT NOT NULL
	);

	CREATE TABLE IF NOT EXISTS product_inquiries (
		id TEXT PRIMARY KEY,
		product_id TEXT,
		product_name TEXT,
		customer_name TEXT NOT NULL,
		customer_email TEXT NOT NULL,
		message TEXT,
		phone TEXT,
		address TEXT,
		postal_code TEXT,
		city TEXT,
		created_at TEXT NOT NULL
	);

	CREATE TABLE IF NOT EXISTS contact_messages (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		email TEXT NOT NULL,
		subject TEXT,
		message TEXT NOT NULL,
		created_at TEXT NOT NULL
	);

	CREATE TABLE IF NOT EXISTS events (
		id TEXT PRIMARY KEY,
		title TEXT NOT NULL,
		description TEXT,
		day TEXT,
		date TEXT,
		time TEXT,
		image_url TEXT,
		created_at TEXT NOT NULL
	);

	CREATE TABLE IF NOT EXISTS event_registrations (
		id TEXT PRIMARY KEY,
		event_id TEXT NOT NULL,
		first_name TEXT NOT NULL,
		last_name TEXT NOT NULL,
		email TEXT NOT NULL,
		phone TEXT NOT NULL,
		number_of_attendees INTEGER NOT NULL DEFAULT 1,
		special_requirements TEXT,
		created_at TEXT NOT NULL
	);

	CREATE TABLE IF NOT EXISTS newsletter_subscribers (
		id TEXT PRIMARY KEY,
		email TEXT NOT NULL UNIQUE,
		name TEXT,
		created_at TEXT NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_applications_created ON membership_applications(created_at);
	CREATE INDEX IF NOT EXISTS idx_products_created ON products(created_at);
	CREATE INDEX IF NOT EXISTS idx_inquiries_created ON product_inquiries(created_at);
	CREATE INDEX IF NOT EXISTS idx_contacts_created ON contact_messages(created_at);
	CREATE INDEX IF NOT EXISTS idx_events_created ON events(created_at);
	CREATE INDEX IF NOT EXISTS idx_registrations_event ON event_registrations(event_id);
	`

	if _, err := db.Exec(schema); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}
	return nil
}
