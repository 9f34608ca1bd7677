package upload

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

// CloudinaryUploader stores images in a Cloudinary folder ("bucket").
type CloudinaryUploader struct {
	cld    *cloudinary.Cloudinary
	folder string
}

// NewCloudinaryUploader creates an uploader from a cloudinary:// URL.
// PRE: cloudinaryURL is a valid CLOUDINARY_URL credential string
// POST: Returns a ready-to-use uploader targeting folder
func NewCloudinaryUploader(cloudinaryURL, folder string) (*CloudinaryUploader, error) {
	cld, err := cloudinary.NewFromURL(cloudinaryURL)
	if err != nil {
		return nil, fmt.Errorf("cloudinary init: %w", err)
	}
	return &CloudinaryUploader{cld: cld, folder: folder}, nil
}

// Upload sends the file to Cloudinary and returns its public URL.
// PRE: name was produced by GenerateName
// POST: File is stored; returned URL is publicly addressable
func (u *CloudinaryUploader) Upload(ctx context.Context, name string, file io.Reader) (string, error) {
	res, err := u.cld.Upload.Upload(ctx, file, uploader.UploadParams{
		PublicID: u.publicID(name),
	})
	if err != nil {
		slog.Error("upload_failed", "backend", "cloudinary", "name", name, "error", err)
		return "", fmt.Errorf("cloudinary upload: %w", err)
	}
	slog.Info("upload_ok", "backend", "cloudinary", "name", name, "url", res.SecureURL)
	return res.SecureURL, nil
}

// Delete removes a previously uploaded file. Used to compensate a failed
// record write after a successful upload.
// PRE: name was previously passed to Upload
// POST: File no longer exists in the folder
func (u *CloudinaryUploader) Delete(ctx context.Context, name string) error {
	_, err := u.cld.Upload.Destroy(ctx, uploader.DestroyParams{PublicID: u.publicID(name)})
	if err != nil {
		slog.Error("upload_delete_failed", "backend", "cloudinary", "name", name, "error", err)
		return fmt.Errorf("cloudinary destroy: %w", err)
	}
	return nil
}

// publicID is the object name without its extension, namespaced by folder;
// Cloudinary derives the delivery format itself.
func (u *CloudinaryUploader) publicID(name string) string {
	base := strings.TrimSuffix(name, filepath.Ext(name))
	if u.folder == "" {
		return base
	}
	return u.folder + "/" + base
}
