package orchestrators

import (
	"context"
	"io"
	"log/slog"
	"time"

	"casaromana/internal/adapters/upload"
	eventDomain "casaromana/internal/domain/event"
	"casaromana/internal/forms"
)

// EventStoreForSave defines the store interface needed by SaveEvent.
type EventStoreForSave interface {
	GetByID(ctx context.Context, id string) (eventDomain.Event, error)
	Save(ctx context.Context, e eventDomain.Event) error
}

// SaveEventInput carries the raw admin event form. ID empty means create;
// Image nil means no file was staged.
type SaveEventInput struct {
	ID            string
	Title         string
	Description   string
	Day           string
	Date          string
	Time          string
	ImageFilename string
	Image         io.Reader
}

// SaveEventDeps holds dependencies for SaveEvent.
type SaveEventDeps struct {
	EventStore EventStoreForSave
	Uploader   upload.Uploader
	GenerateID func() string
	Now        func() time.Time
}

// ExecuteSaveEvent creates or edits an event with the same upload-then-write
// sequencing as products: upload failure aborts before any record write, and
// a failed write after a successful upload deletes the upload again.
// PRE: input carries the raw admin form fields
// POST: An event created with no staged file has no image URL
func ExecuteSaveEvent(ctx context.Context, input SaveEventInput, deps SaveEventDeps) (eventDomain.Event, SubmitState) {
	if fe := forms.Validate(forms.EventForm{
		Title:       input.Title,
		Description: input.Description,
		Day:         input.Day,
		Date:        input.Date,
		Time:        input.Time,
	}); fe != nil {
		return eventDomain.Event{}, submitInvalid(fe)
	}

	e := eventDomain.Event{
		ID:          input.ID,
		Title:       input.Title,
		Description: input.Description,
		Day:         input.Day,
		Date:        input.Date,
		Time:        input.Time,
		CreatedAt:   deps.Now(),
	}
	if input.ID == "" {
		e.ID = deps.GenerateID()
	} else {
		existing, err := deps.EventStore.GetByID(ctx, input.ID)
		if err != nil {
			slog.Error("event_lookup_failed", "id", input.ID, "error", err)
			return eventDomain.Event{}, submitFailed(ErrMsgGeneric)
		}
		// An edit without a staged file keeps the current image.
		e.ImageURL = existing.ImageURL
		e.CreatedAt = existing.CreatedAt
	}

	var uploadedName string
	if input.Image != nil {
		name := upload.GenerateName(input.ImageFilename)
		url, err := deps.Uploader.Upload(ctx, name, input.Image)
		if err != nil {
			slog.Error("event_image_upload_failed", "error", err)
			return eventDomain.Event{}, submitFailed(ErrMsgGeneric)
		}
		uploadedName = name
		e.ImageURL = url
	}

	if err := e.Validate(); err != nil {
		return eventDomain.Event{}, submitFailed(err.Error())
	}

	if err := deps.EventStore.Save(ctx, e); err != nil {
		slog.Error("event_save_failed", "id", e.ID, "error", err)
		if uploadedName != "" {
			if derr := deps.Uploader.Delete(ctx, uploadedName); derr != nil {
				slog.Error("event_image_compensation_failed", "name", uploadedName, "error", derr)
			}
		}
		return eventDomain.Event{}, submitFailed(ErrMsgGeneric)
	}

	slog.Info("event_saved", "id", e.ID, "has_image", e.HasImage())
	return e, submitOK()
}
