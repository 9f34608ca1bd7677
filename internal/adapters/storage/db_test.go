package storage

import (
	"database/sql"
	"sort"
	"testing"

	_ "modernc.org/sqlite"
)

// openTestDB creates an in-memory SQLite database for testing.
func openTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("failed to open test db: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

// getTableNames returns sorted table names from sqlite_master, excluding internal tables.
func getTableNames(t *testing.T, db *sql.DB) []string {
	t.Helper()
	rows, err := db.Query("SELECT name FROM sqlite_master WHERE type='table' AND name NOT LIKE 'sqlite_%' ORDER BY name")
	if err != nil {
		t.Fatalf("failed to query sqlite_master: %v", err)
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			t.Fatalf("failed to scan table name: %v", err)
		}
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// expectedTables is the sorted list of tables InitDB creates.
var expectedTables = []string{
	"accounts",
	"contact_messages",
	"event_registrations",
	"events",
	"membership_applications",
	"newsletter_subscribers",
	"product_inquiries",
	"products",
}

// TestInitDB_CreatesAllTables verifies the schema contains every collection.
func TestInitDB_CreatesAllTables(t *testing.T) {
	db := openTestDB(t)
	if err := InitDB(db); err != nil {
		t.Fatalf("InitDB failed: %v", err)
	}
	got := getTableNames(t, db)
	if len(got) != len(expectedTables) {
		t.Fatalf("expected %d tables, got %d: %v", len(expectedTables), len(got), got)
	}
	for i, name := range expectedTables {
		if got[i] != name {
			t.Errorf("table %d: expected %s, got %s", i, name, got[i])
		}
	}
}

// TestInitDB_Idempotent verifies InitDB can run repeatedly.
func TestInitDB_Idempotent(t *testing.T) {
	db := openTestDB(t)
	for i := 0; i < 3; i++ {
		if err := InitDB(db); err != nil {
			t.Fatalf("InitDB run %d failed: %v", i, err)
		}
	}
}

// TestIsUniqueViolation verifies duplicate-key detection against a real
// duplicate insert.
func TestIsUniqueViolation(t *testing.T) {
	db := openTestDB(t)
	if err := InitDB(db); err != nil {
		t.Fatalf("InitDB failed: %v", err)
	}
	const ins = `INSERT INTO membership_applications
		(id, first_name, last_name, email, status, created_at)
		VALUES (?, 'Ana', 'Pop', ?, 'pending', '2026-01-01T00:00:00Z')`
	if _, err := db.Exec(ins, "a1", "ana@example.com"); err != nil {
		t.Fatalf("first insert failed: %v", err)
	}
	_, err := db.Exec(ins, "a2", "ana@example.com")
	if err == nil {
		t.Fatal("expected duplicate email insert to fail")
	}
	if !IsUniqueViolation(err) {
		t.Errorf("expected IsUniqueViolation to detect %v", err)
	}
	if IsUniqueViolation(nil) {
		t.Error("nil must not be a unique violation")
	}
}

// TestCreatedAtOrder covers both orders and the fallback.
func TestCreatedAtOrder(t *testing.T) {
	if got := CreatedAtOrder(OrderAsc); got != "ORDER BY created_at ASC" {
		t.Errorf("asc: got %q", got)
	}
	if got := CreatedAtOrder(OrderDesc); got != "ORDER BY created_at DESC" {
		t.Errorf("desc: got %q", got)
	}
	if got := CreatedAtOrder("sideways"); got != "ORDER BY created_at DESC" {
		t.Errorf("fallback: got %q", got)
	}
}
