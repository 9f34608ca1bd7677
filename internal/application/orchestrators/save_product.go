package orchestrators

import (
	"context"
	"io"
	"log/slog"
	"time"

	"casaromana/internal/adapters/upload"
	productDomain "casaromana/internal/domain/product"
	"casaromana/internal/forms"
)

// ProductStoreForSave defines the store interface needed by SaveProduct.
type ProductStoreForSave interface {
	GetByID(ctx context.Context, id string) (productDomain.Product, error)
	Save(ctx context.Context, p productDomain.Product) error
}

// SaveProductInput carries the raw admin product form. ID empty means
// create; Image nil means no file was staged.
type SaveProductInput struct {
	ID            string
	Name          string
	Description   string
	Price         float64
	ImageFilename string
	Image         io.Reader
}

// SaveProductDeps holds dependencies for SaveProduct.
type SaveProductDeps struct {
	ProductStore ProductStoreForSave
	Uploader     upload.Uploader
	GenerateID   func() string
	Now          func() time.Time
}

// ExecuteSaveProduct creates or edits a product, uploading a staged image
// first. Upload failure aborts the whole operation before any record write.
// If the record write fails after a successful upload, the upload is deleted
// so no orphaned file remains.
// PRE: input carries the raw admin form fields
// POST: On edit without a staged file, ImageURL is unchanged; with one, it
// equals the freshly uploaded URL
func ExecuteSaveProduct(ctx context.Context, input SaveProductInput, deps SaveProductDeps) (productDomain.Product, SubmitState) {
	if fe := forms.Validate(forms.ProductForm{
		Name:        input.Name,
		Description: input.Description,
		Price:       input.Price,
	}); fe != nil {
		return productDomain.Product{}, submitInvalid(fe)
	}

	p := productDomain.Product{
		ID:          input.ID,
		Name:        input.Name,
		Description: input.Description,
		Price:       input.Price,
		CreatedAt:   deps.Now(),
	}
	if input.ID == "" {
		p.ID = deps.GenerateID()
	} else {
		existing, err := deps.ProductStore.GetByID(ctx, input.ID)
		if err != nil {
			slog.Error("product_lookup_failed", "id", input.ID, "error", err)
			return productDomain.Product{}, submitFailed(ErrMsgGeneric)
		}
		// An edit without a staged file keeps the current image.
		p.ImageURL = existing.ImageURL
		p.CreatedAt = existing.CreatedAt
	}

	var uploadedName string
	if input.Image != nil {
		name := upload.GenerateName(input.ImageFilename)
		url, err := deps.Uploader.Upload(ctx, name, input.Image)
		if err != nil {
			slog.Error("product_image_upload_failed", "error", err)
			return productDomain.Product{}, submitFailed(ErrMsgGeneric)
		}
		uploadedName = name
		p.ImageURL = url
	}

	if err := p.Validate(); err != nil {
		return productDomain.Product{}, submitFailed(err.Error())
	}

	if err := deps.ProductStore.Save(ctx, p); err != nil {
		slog.Error("product_save_failed", "id", p.ID, "error", err)
		// Compensate the upload so the store and object storage agree.
		if uploadedName != "" {
			if derr := deps.Uploader.Delete(ctx, uploadedName); derr != nil {
				slog.Error("product_image_compensation_failed", "name", uploadedName, "error", derr)
			}
		}
		return productDomain.Product{}, submitFailed(ErrMsgGeneric)
	}

	slog.Info("product_saved", "id", p.ID, "has_image", p.HasImage())
	return p, submitOK()
}
