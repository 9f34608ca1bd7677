package orchestrators

import (
	"context"
	"errors"
	"testing"

	inquiryDomain "casaromana/internal/domain/inquiry"
	productDomain "casaromana/internal/domain/product"
)

type mockInquiryStore struct {
	saved   []inquiryDomain.Inquiry
	saveErr error
}

// Save implements InquiryStore for testing.
func (m *mockInquiryStore) Save(_ context.Context, i inquiryDomain.Inquiry) error {
	if m.saveErr != nil {
		return m.saveErr
	}
	m.saved = append(m.saved, i)
	return nil
}

type mockProductLookup struct {
	products map[string]productDomain.Product
}

// GetByID implements ProductStoreForInquiry for testing.
func (m *mockProductLookup) GetByID(_ context.Context, id string) (productDomain.Product, error) {
	p, ok := m.products[id]
	if !ok {
		return productDomain.Product{}, errors.New("product not found")
	}
	return p, nil
}

// TestExecuteSubmitInquiry_SnapshotsProductName tests that the current
// product name is copied onto the inquiry.
func TestExecuteSubmitInquiry_SnapshotsProductName(t *testing.T) {
	store := &mockInquiryStore{}
	products := &mockProductLookup{products: map[string]productDomain.Product{
		"prod-1": {ID: "prod-1", Name: "Ie tradițională"},
	}}
	state := ExecuteSubmitInquiry(context.Background(), SubmitInquiryInput{
		ProductID: "prod-1",
		Name:      "Ana Pop",
		Email:     "ana@example.com",
	}, SubmitInquiryDeps{InquiryStore: store, ProductStore: products, GenerateID: fixedID, Now: fixedNow})

	if !state.Success {
		t.Fatalf("expected success, got %+v", state)
	}
	if len(store.saved) != 1 {
		t.Fatalf("expected one insert, got %d", len(store.saved))
	}
	if got := store.saved[0].ProductName; got != "Ie tradițională" {
		t.Errorf("expected product name snapshot, got %q", got)
	}
}

// TestExecuteSubmitInquiry_MissingProduct tests that a dangling product ID
// still stores the inquiry, just without a snapshot.
func TestExecuteSubmitInquiry_MissingProduct(t *testing.T) {
	store := &mockInquiryStore{}
	products := &mockProductLookup{products: map[string]productDomain.Product{}}
	state := ExecuteSubmitInquiry(context.Background(), SubmitInquiryInput{
		ProductID: "gone",
		Name:      "Ana Pop",
		Email:     "ana@example.com",
	}, SubmitInquiryDeps{InquiryStore: store, ProductStore: products, GenerateID: fixedID, Now: fixedNow})

	if !state.Success {
		t.Fatalf("expected success, got %+v", state)
	}
	if got := store.saved[0].ProductName; got != "" {
		t.Errorf("expected no snapshot for missing product, got %q", got)
	}
	if got := store.saved[0].ProductID; got != "gone" {
		t.Errorf("expected product id preserved, got %q", got)
	}
}

// TestExecuteSubmitInquiry_InvalidSkipsStore tests that validation failure
// never reaches the store.
func TestExecuteSubmitInquiry_InvalidSkipsStore(t *testing.T) {
	store := &mockInquiryStore{}
	state := ExecuteSubmitInquiry(context.Background(), SubmitInquiryInput{
		Name:  "Ana Pop",
		Email: "not-an-email",
	}, SubmitInquiryDeps{InquiryStore: store, ProductStore: &mockProductLookup{}, GenerateID: fixedID, Now: fixedNow})

	if state.Success {
		t.Fatal("expected failure")
	}
	if len(store.saved) != 0 {
		t.Errorf("validation failure must not insert, got %d inserts", len(store.saved))
	}
}
