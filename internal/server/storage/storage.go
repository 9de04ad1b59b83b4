// Package storage provides the blob-store contract for uploaded files
// (resume PDFs and project images) plus local-disk and S3 implementations.
package storage

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"github.com/dmitrijs2005/portfolio/internal/common"
	"github.com/google/uuid"
)

// Kind describes a category of uploads with its own directory, size limit
// and accepted content types.
type Kind struct {
	Name         string
	MaxSize      int64
	ContentTypes []string
}

var (
	KindResume = Kind{
		Name:         "resume",
		MaxSize:      5 * 1024 * 1024,
		ContentTypes: []string{"application/pdf"},
	}
	KindProjectImage = Kind{
		Name:         "projects",
		MaxSize:      2 * 1024 * 1024,
		ContentTypes: []string{"image/jpeg", "image/jpg", "image/png", "image/webp"},
	}
)

// Accepts reports whether the kind allows the given content type.
func (k Kind) Accepts(contentType string) bool {
	for _, ct := range k.ContentTypes {
		if strings.EqualFold(ct, contentType) {
			return true
		}
	}
	return false
}

// BlobStore stores uploaded files.
//
// Save validates contentType and size against the kind, stores the blob and
// returns its storage key plus a URL the public site can use immediately.
// URL resolves a previously returned key (for local storage a stable path,
// for S3 a short-lived presigned GET). Delete is best-effort cleanup.
type BlobStore interface {
	Save(ctx context.Context, kind Kind, originalName, contentType string, size int64, r io.Reader) (key string, url string, err error)
	URL(ctx context.Context, key string) (string, error)
	Delete(ctx context.Context, key string) error
}

// validate rejects uploads the kind does not accept.
func validate(kind Kind, contentType string, size int64) error {
	if !kind.Accepts(contentType) {
		return fmt.Errorf("%w: content type %q not allowed for %s uploads", common.ErrorValidation, contentType, kind.Name)
	}
	if size <= 0 || size > kind.MaxSize {
		return fmt.Errorf("%w: file size %d exceeds %d byte limit", common.ErrorValidation, size, kind.MaxSize)
	}
	return nil
}

// newKey builds a unique storage key: <kind>/<kind>-<unixmilli>-<uuid><ext>.
func newKey(kind Kind, originalName string) string {
	ext := strings.ToLower(filepath.Ext(originalName))
	return fmt.Sprintf("%s/%s-%d-%s%s", kind.Name, kind.Name, time.Now().UnixMilli(), uuid.New(), ext)
}
