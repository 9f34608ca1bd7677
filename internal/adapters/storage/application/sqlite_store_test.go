package application

import (
	"context"
	"database/sql"
	"testing"
	"time"

	_ "modernc.org/sqlite"

	"casaromana/internal/adapters/storage"
	domain "casaromana/internal/domain/application"
)

func newTestStore(t *testing.T) *SQLiteStore {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	if err := storage.InitDB(db); err != nil {
		t.Fatalf("init db: %v", err)
	}
	return NewSQLiteStore(db)
}

func seedApplication(t *testing.T, s *SQLiteStore, id, email string, created time.Time) {
	t.Helper()
	err := s.Save(context.Background(), domain.Application{
		ID:        id,
		FirstName: "Ana",
		LastName:  "Pop",
		Email:     email,
		Status:    domain.StatusPending,
		CreatedAt: created,
	})
	if err != nil {
		t.Fatalf("seed %s: %v", id, err)
	}
}

// TestList_OrderAndIdempotence verifies created_at ordering both ways and
// that repeated listing without writes returns the same records in the same
// order.
func TestList_OrderAndIdempotence(t *testing.T) {
	s := newTestStore(t)
	base := time.Date(2026, 5, 1, 10, 0, 0, 0, time.UTC)
	seedApplication(t, s, "a1", "first@example.com", base)
	seedApplication(t, s, "a2", "second@example.com", base.Add(time.Hour))
	seedApplication(t, s, "a3", "third@example.com", base.Add(2*time.Hour))

	desc, err := s.List(context.Background(), storage.OrderDesc)
	if err != nil {
		t.Fatalf("list desc: %v", err)
	}
	if len(desc) != 3 || desc[0].ID != "a3" || desc[2].ID != "a1" {
		t.Errorf("unexpected desc order: %v", ids(desc))
	}

	asc, err := s.List(context.Background(), storage.OrderAsc)
	if err != nil {
		t.Fatalf("list asc: %v", err)
	}
	if len(asc) != 3 || asc[0].ID != "a1" || asc[2].ID != "a3" {
		t.Errorf("unexpected asc order: %v", ids(asc))
	}

	again, err := s.List(context.Background(), storage.OrderDesc)
	if err != nil {
		t.Fatalf("second list: %v", err)
	}
	for i := range desc {
		if desc[i].ID != again[i].ID {
			t.Fatalf("listing is not stable: %v vs %v", ids(desc), ids(again))
		}
	}
}

// TestSave_DuplicateEmail verifies the unique email constraint surfaces as a
// detectable violation.
func TestSave_DuplicateEmail(t *testing.T) {
	s := newTestStore(t)
	now := time.Now().UTC()
	seedApplication(t, s, "a1", "ana@example.com", now)

	err := s.Save(context.Background(), domain.Application{
		ID: "a2", FirstName: "Alt", LastName: "Pop",
		Email: "ana@example.com", Status: domain.StatusPending, CreatedAt: now,
	})
	if err == nil {
		t.Fatal("expected duplicate email to fail")
	}
	if !storage.IsUniqueViolation(err) {
		t.Errorf("expected unique violation, got %v", err)
	}

	all, err := s.List(context.Background(), storage.OrderDesc)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(all) != 1 {
		t.Errorf("expected exactly one record to survive, got %d", len(all))
	}
}

// TestUpdateStatus verifies only the named row changes, and that invalid
// statuses and unknown ids are rejected.
func TestUpdateStatus(t *testing.T) {
	s := newTestStore(t)
	now := time.Now().UTC()
	seedApplication(t, s, "a1", "one@example.com", now)
	seedApplication(t, s, "a2", "two@example.com", now)

	if err := s.UpdateStatus(context.Background(), "a1", domain.StatusApproved); err != nil {
		t.Fatalf("update status: %v", err)
	}

	a1, err := s.GetByID(context.Background(), "a1")
	if err != nil {
		t.Fatalf("get a1: %v", err)
	}
	if a1.Status != domain.StatusApproved {
		t.Errorf("a1 status = %s, want approved", a1.Status)
	}
	a2, err := s.GetByID(context.Background(), "a2")
	if err != nil {
		t.Fatalf("get a2: %v", err)
	}
	if a2.Status != domain.StatusPending {
		t.Errorf("a2 status must be untouched, got %s", a2.Status)
	}

	if err := s.UpdateStatus(context.Background(), "a1", "vip"); err != domain.ErrInvalidStatus {
		t.Errorf("expected ErrInvalidStatus, got %v", err)
	}
	if err := s.UpdateStatus(context.Background(), "missing", domain.StatusPaid); err == nil {
		t.Error("expected error for unknown id")
	}
}

// TestSave_OptionalFieldsRoundTrip verifies empty optional fields stay empty
// and populated ones survive.
func TestSave_OptionalFieldsRoundTrip(t *testing.T) {
	s := newTestStore(t)
	now := time.Date(2026, 5, 1, 10, 0, 0, 0, time.UTC)
	err := s.Save(context.Background(), domain.Application{
		ID: "a1", FirstName: "Ana", LastName: "Pop", Email: "ana@example.com",
		Phone: "+4791234567", Status: domain.StatusPending, CreatedAt: now,
	})
	if err != nil {
		t.Fatalf("save: %v", err)
	}

	got, err := s.GetByID(context.Background(), "a1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Phone != "+4791234567" {
		t.Errorf("phone = %q", got.Phone)
	}
	if got.Message != "" {
		t.Errorf("message must be empty, got %q", got.Message)
	}
	if !got.CreatedAt.Equal(now) {
		t.Errorf("created_at = %v, want %v", got.CreatedAt, now)
	}
}

func ids(apps []domain.Application) []string {
	out := make([]string, len(apps))
	for i, a := range apps {
		out[i] = a.ID
	}
	return out
}
