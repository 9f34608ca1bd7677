package orchestrators

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	productDomain "casaromana/internal/domain/product"
)

type mockProductSaveStore struct {
	products map[string]productDomain.Product
	saved    []productDomain.Product
	saveErr  error
}

func newMockProductSaveStore(existing ...productDomain.Product) *mockProductSaveStore {
	m := &mockProductSaveStore{products: make(map[string]productDomain.Product)}
	for _, p := range existing {
		m.products[p.ID] = p
	}
	return m
}

// GetByID implements ProductStoreForSave for testing.
func (m *mockProductSaveStore) GetByID(_ context.Context, id string) (productDomain.Product, error) {
	p, ok := m.products[id]
	if !ok {
		return productDomain.Product{}, errors.New("product not found")
	}
	return p, nil
}

// Save implements ProductStoreForSave for testing.
func (m *mockProductSaveStore) Save(_ context.Context, p productDomain.Product) error {
	if m.saveErr != nil {
		return m.saveErr
	}
	m.saved = append(m.saved, p)
	m.products[p.ID] = p
	return nil
}

type mockUploader struct {
	uploaded  []string
	deleted   []string
	uploadErr error
	deleteErr error
}

// Upload implements upload.Uploader for testing.
func (m *mockUploader) Upload(_ context.Context, name string, _ io.Reader) (string, error) {
	if m.uploadErr != nil {
		return "", m.uploadErr
	}
	m.uploaded = append(m.uploaded, name)
	return "https://cdn.test/" + name, nil
}

// Delete implements upload.Uploader for testing.
func (m *mockUploader) Delete(_ context.Context, name string) error {
	if m.deleteErr != nil {
		return m.deleteErr
	}
	m.deleted = append(m.deleted, name)
	return nil
}

// TestExecuteSaveProduct_CreateWithImage tests that a create with a staged
// file uploads first and persists the returned URL.
func TestExecuteSaveProduct_CreateWithImage(t *testing.T) {
	store := newMockProductSaveStore()
	up := &mockUploader{}
	p, state := ExecuteSaveProduct(context.Background(), SaveProductInput{
		Name:          "Ie tradițională",
		Description:   "Hand-embroidered blouse",
		Price:         890,
		ImageFilename: "blouse.JPG",
		Image:         strings.NewReader("fake-image-bytes"),
	}, SaveProductDeps{ProductStore: store, Uploader: up, GenerateID: fixedID, Now: fixedNow})

	if !state.Success {
		t.Fatalf("expected success, got %+v", state)
	}
	if len(up.uploaded) != 1 {
		t.Fatalf("expected one upload, got %d", len(up.uploaded))
	}
	if !strings.HasSuffix(up.uploaded[0], ".jpg") {
		t.Errorf("expected lowercased extension, got %q", up.uploaded[0])
	}
	if p.ImageURL != "https://cdn.test/"+up.uploaded[0] {
		t.Errorf("expected uploaded URL on product, got %q", p.ImageURL)
	}
	if len(store.saved) != 1 {
		t.Fatalf("expected one save, got %d", len(store.saved))
	}
}

// TestExecuteSaveProduct_UploadFailureAborts tests that a failed upload
// prevents any record write.
func TestExecuteSaveProduct_UploadFailureAborts(t *testing.T) {
	store := newMockProductSaveStore()
	up := &mockUploader{uploadErr: errors.New("cloud down")}
	_, state := ExecuteSaveProduct(context.Background(), SaveProductInput{
		Name:          "Ie tradițională",
		Description:   "Hand-embroidered blouse",
		Price:         890,
		ImageFilename: "blouse.jpg",
		Image:         strings.NewReader("fake-image-bytes"),
	}, SaveProductDeps{ProductStore: store, Uploader: up, GenerateID: fixedID, Now: fixedNow})

	if state.Success {
		t.Fatal("expected failure")
	}
	if state.Error != ErrMsgGeneric {
		t.Errorf("expected generic error, got %q", state.Error)
	}
	if len(store.saved) != 0 {
		t.Errorf("upload failure must not write the record, got %d saves", len(store.saved))
	}
}

// TestExecuteSaveProduct_EditKeepsImage tests that an edit without a staged
// file preserves the existing image URL and creation time.
func TestExecuteSaveProduct_EditKeepsImage(t *testing.T) {
	created := time.Date(2026, 1, 15, 9, 0, 0, 0, time.UTC)
	store := newMockProductSaveStore(productDomain.Product{
		ID:        "prod-1",
		Name:      "Ie tradițională",
		Price:     890,
		ImageURL:  "https://cdn.test/original.jpg",
		CreatedAt: created,
	})
	up := &mockUploader{}
	p, state := ExecuteSaveProduct(context.Background(), SaveProductInput{
		ID:          "prod-1",
		Name:        "Ie tradițională",
		Description: "Updated description",
		Price:       950,
	}, SaveProductDeps{ProductStore: store, Uploader: up, GenerateID: fixedID, Now: fixedNow})

	if !state.Success {
		t.Fatalf("expected success, got %+v", state)
	}
	if p.ImageURL != "https://cdn.test/original.jpg" {
		t.Errorf("edit without file must keep image, got %q", p.ImageURL)
	}
	if !p.CreatedAt.Equal(created) {
		t.Errorf("edit must keep creation time, got %v", p.CreatedAt)
	}
	if len(up.uploaded) != 0 {
		t.Errorf("no file staged, expected no uploads, got %d", len(up.uploaded))
	}
}

// TestExecuteSaveProduct_CompensatesFailedWrite tests that a record write
// failure after a successful upload deletes the uploaded file.
func TestExecuteSaveProduct_CompensatesFailedWrite(t *testing.T) {
	store := newMockProductSaveStore()
	store.saveErr = errors.New("db down")
	up := &mockUploader{}
	_, state := ExecuteSaveProduct(context.Background(), SaveProductInput{
		Name:          "Ie tradițională",
		Description:   "Hand-embroidered blouse",
		Price:         890,
		ImageFilename: "blouse.jpg",
		Image:         strings.NewReader("fake-image-bytes"),
	}, SaveProductDeps{ProductStore: store, Uploader: up, GenerateID: fixedID, Now: fixedNow})

	if state.Success {
		t.Fatal("expected failure")
	}
	if len(up.uploaded) != 1 {
		t.Fatalf("expected one upload, got %d", len(up.uploaded))
	}
	if len(up.deleted) != 1 || up.deleted[0] != up.uploaded[0] {
		t.Errorf("expected uploaded file to be deleted, uploads=%v deletes=%v", up.uploaded, up.deleted)
	}
}

// TestExecuteSaveProduct_InvalidSkipsUploadAndStore tests that validation
// failure blocks both the upload and the record write.
func TestExecuteSaveProduct_InvalidSkipsUploadAndStore(t *testing.T) {
	store := newMockProductSaveStore()
	up := &mockUploader{}
	_, state := ExecuteSaveProduct(context.Background(), SaveProductInput{
		Name:  "X",
		Price: -1,
		Image: strings.NewReader("fake-image-bytes"),
	}, SaveProductDeps{ProductStore: store, Uploader: up, GenerateID: fixedID, Now: fixedNow})

	if state.Success {
		t.Fatal("expected failure")
	}
	if len(up.uploaded) != 0 || len(store.saved) != 0 {
		t.Errorf("invalid input must not upload or save, uploads=%d saves=%d", len(up.uploaded), len(store.saved))
	}
}
