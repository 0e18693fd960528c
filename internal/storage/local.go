package storage

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
)

// LocalImageStore keeps images in a directory on the local filesystem.
type LocalImageStore struct {
	dir string
}

// Ensure LocalImageStore implements ImageStore
var _ ImageStore = (*LocalImageStore)(nil)

// NewLocalImageStore creates a store rooted at dir. The directory is created on first write.
func NewLocalImageStore(dir string) *LocalImageStore {
	return &LocalImageStore{dir: dir}
}

// Dir returns the directory images are written to.
func (s *LocalImageStore) Dir() string {
	return s.dir
}

// Store writes r to <dir>/<generated name> and returns /uploads/<generated name>.
func (s *LocalImageStore) Store(ctx context.Context, filename string, r io.Reader) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if err := os.MkdirAll(s.dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create upload directory: %w", err)
	}

	name := GenerateName(filename)
	fullPath := filepath.Join(s.dir, name)

	f, err := os.OpenFile(fullPath, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0644)
	if err != nil {
		return "", fmt.Errorf("failed to create image file: %w", err)
	}
	if _, err := io.Copy(f, r); err != nil {
		_ = f.Close()
		_ = os.Remove(fullPath)
		return "", fmt.Errorf("failed to write image file: %w", err)
	}
	if err := f.Close(); err != nil {
		_ = os.Remove(fullPath)
		return "", fmt.Errorf("failed to close image file: %w", err)
	}

	log.Printf("[ImageStore] Stored image %s", fullPath)
	return URLPrefix + name, nil
}

// Delete removes the file behind url.
func (s *LocalImageStore) Delete(ctx context.Context, url string) error {
	name, err := NameFromURL(url)
	if err != nil {
		return err
	}
	if err := os.Remove(filepath.Join(s.dir, name)); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to delete image file: %w", err)
	}
	log.Printf("[ImageStore] Deleted image %s", name)
	return nil
}
