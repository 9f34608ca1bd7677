package orchestrators

import (
	"context"
	"log/slog"
	"time"

	inquiryDomain "casaromana/internal/domain/inquiry"
	productDomain "casaromana/internal/domain/product"
	"casaromana/internal/forms"
)

// InquiryStore defines the store interface needed by SubmitInquiry.
type InquiryStore interface {
	Save(ctx context.Context, i inquiryDomain.Inquiry) error
}

// ProductStoreForInquiry defines the product lookup needed to snapshot the
// product name onto the inquiry.
type ProductStoreForInquiry interface {
	GetByID(ctx context.Context, id string) (productDomain.Product, error)
}

// SubmitInquiryInput carries the raw inquiry form fields.
type SubmitInquiryInput struct {
	ProductID  string
	Name       string
	Email      string
	Message    string
	Phone      string
	Address    string
	PostalCode string
	City       string
}

// SubmitInquiryDeps holds dependencies for SubmitInquiry.
type SubmitInquiryDeps struct {
	InquiryStore InquiryStore
	ProductStore ProductStoreForInquiry
	GenerateID   func() string
	Now          func() time.Time
}

// ExecuteSubmitInquiry validates a product inquiry and persists it with a
// denormalized snapshot of the product name, so the inquiry stays readable
// after the product is deleted or renamed.
// PRE: input carries the raw form fields
// POST: On success exactly one inquiry row is inserted
func ExecuteSubmitInquiry(ctx context.Context, input SubmitInquiryInput, deps SubmitInquiryDeps) SubmitState {
	if fe := forms.Validate(forms.Inquiry{
		Name:       input.Name,
		Email:      input.Email,
		Message:    input.Message,
		Phone:      input.Phone,
		Address:    input.Address,
		PostalCode: input.PostalCode,
		City:       input.City,
	}); fe != nil {
		return submitInvalid(fe)
	}

	i := inquiryDomain.Inquiry{
		ID:            deps.GenerateID(),
		ProductID:     input.ProductID,
		CustomerName:  input.Name,
		CustomerEmail: input.Email,
		Message:       input.Message,
		Phone:         forms.NormalizePhone(input.Phone),
		Address:       input.Address,
		PostalCode:    input.PostalCode,
		City:          input.City,
		CreatedAt:     deps.Now(),
	}

	// Snapshot the current product name. A missing product is not an
	// error; the inquiry simply carries no snapshot.
	if input.ProductID != "" {
		if p, err := deps.ProductStore.GetByID(ctx, input.ProductID); err == nil {
			i.ProductName = p.Name
		}
	}

	if err := deps.InquiryStore.Save(ctx, i); err != nil {
		slog.Error("inquiry_insert_failed", "error", err)
		return submitFailed(ErrMsgGeneric)
	}

	slog.Info("inquiry_submitted", "id", i.ID, "product_id", i.ProductID)
	return submitOK()
}
