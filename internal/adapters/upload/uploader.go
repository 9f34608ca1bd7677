// Package upload stores product and event images and hands back publicly
// addressable URLs.
package upload

import (
	"context"
	"io"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// Uploader writes an image to object storage under a given name and returns
// its public URL. Delete exists so a failed record write after a successful
// upload can be compensated instead of orphaning the file.
type Uploader interface {
	Upload(ctx context.Context, name string, file io.Reader) (string, error)
	Delete(ctx context.Context, name string) error
}

// GenerateName builds a collision-resistant object name from a random UUID,
// preserving the original file extension so content types survive.
// POST: Two concurrent uploads of the same filename never collide
func GenerateName(originalFilename string) string {
	ext := strings.ToLower(filepath.Ext(originalFilename))
	return uuid.New().String() + ext
}
