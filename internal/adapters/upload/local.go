package upload

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

// LocalUploader stores images on the local filesystem and serves them under
// a URL prefix. It is the development default when Cloudinary credentials
// are not configured.
type LocalUploader struct {
	dir       string
	urlPrefix string
}

// NewLocalUploader creates an uploader writing into dir; files become
// reachable under urlPrefix (e.g. "/uploads").
// POST: dir exists
func NewLocalUploader(dir, urlPrefix string) (*LocalUploader, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}
	return &LocalUploader{dir: dir, urlPrefix: strings.TrimSuffix(urlPrefix, "/")}, nil
}

// Dir returns the storage directory, for wiring the static file route.
func (u *LocalUploader) Dir() string {
	return u.dir
}

// Upload writes the file to disk and returns its public URL path.
// PRE: name was produced by GenerateName (no path separators)
// POST: File exists on disk; returned URL resolves via the uploads route
func (u *LocalUploader) Upload(ctx context.Context, name string, file io.Reader) (string, error) {
	// GenerateName output never contains separators; reject anything else.
	if name != filepath.Base(name) {
		return "", fmt.Errorf("invalid upload name: %s", name)
	}
	dst, err := os.Create(filepath.Join(u.dir, name))
	if err != nil {
		return "", fmt.Errorf("create upload file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, file); err != nil {
		os.Remove(dst.Name())
		return "", fmt.Errorf("write upload file: %w", err)
	}
	slog.Info("upload_ok", "backend", "local", "name", name)
	return u.urlPrefix + "/" + name, nil
}

// Delete removes a stored file.
// PRE: name was previously passed to Upload
// POST: File no longer exists on disk
func (u *LocalUploader) Delete(ctx context.Context, name string) error {
	if name != filepath.Base(name) {
		return fmt.Errorf("invalid upload name: %s", name)
	}
	if err := os.Remove(filepath.Join(u.dir, name)); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("delete upload file: %w", err)
	}
	return nil
}
