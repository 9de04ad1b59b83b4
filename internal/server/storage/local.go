package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/dmitrijs2005/portfolio/internal/common"
)

// LocalStore writes blobs under a root directory and serves them from the
// /uploads static route.
type LocalStore struct {
	root string
}

func NewLocalStore(root string) (*LocalStore, error) {
	for _, kind := range []Kind{KindResume, KindProjectImage} {
		if err := os.MkdirAll(filepath.Join(root, kind.Name), 0o755); err != nil {
			return nil, fmt.Errorf("upload dir error: %w", err)
		}
	}
	return &LocalStore{root: root}, nil
}

// Root returns the directory the store writes under.
func (s *LocalStore) Root() string {
	return s.root
}

func (s *LocalStore) Save(ctx context.Context, kind Kind, originalName, contentType string, size int64, r io.Reader) (string, string, error) {
	if err := validate(kind, contentType, size); err != nil {
		return "", "", err
	}

	key := newKey(kind, originalName)

	f, err := os.Create(filepath.Join(s.root, filepath.FromSlash(key)))
	if err != nil {
		return "", "", fmt.Errorf("file create error: %w", err)
	}
	defer f.Close()

	// the declared size is validated above, but the stream itself may be
	// longer than claimed
	n, err := io.Copy(f, io.LimitReader(r, kind.MaxSize+1))
	if err != nil {
		_ = os.Remove(f.Name())
		return "", "", fmt.Errorf("file write error: %w", err)
	}
	if n > kind.MaxSize {
		_ = os.Remove(f.Name())
		return "", "", fmt.Errorf("%w: file size %d exceeds %d byte limit", common.ErrorValidation, n, kind.MaxSize)
	}

	url, _ := s.URL(ctx, key)
	return key, url, nil
}

func (s *LocalStore) URL(_ context.Context, key string) (string, error) {
	return "/uploads/" + strings.TrimPrefix(key, "/"), nil
}

func (s *LocalStore) Delete(_ context.Context, key string) error {
	err := os.Remove(filepath.Join(s.root, filepath.FromSlash(key)))
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("file delete error: %w", err)
	}
	return nil
}
