// Package storage persists uploaded recipe images under generated unique names.
//
// Every backend hands out URLs of the form /uploads/<name>. Stored images are
// never garbage-collected: an image replaced by a recipe update, or left
// behind by a recipe delete, stays where it was written.
package storage

import (
	"context"
	"errors"
	"io"
	"path"
	"strings"

	"github.com/google/uuid"
)

// URLPrefix is the path prefix of every image URL handed out by a store.
const URLPrefix = "/uploads/"

// ErrInvalidImageURL is returned when a URL was not produced by a store.
var ErrInvalidImageURL = errors.New("invalid image url")

// ImageStore persists image blobs and returns the URL they can be fetched from.
type ImageStore interface {
	// Store writes the content of r under a new unique name derived from filename.
	Store(ctx context.Context, filename string, r io.Reader) (string, error)
	// Delete removes a previously stored image. Missing images are not an error.
	Delete(ctx context.Context, url string) error
}

// GenerateName combines a random token with the client supplied filename.
// Any directory components of filename are dropped.
func GenerateName(filename string) string {
	base := path.Base(strings.ReplaceAll(filename, "\\", "/"))
	if base == "." || base == "/" || base == ".." || base == "" {
		base = "image"
	}
	return uuid.New().String() + "_" + base
}

// NameFromURL extracts the stored name from an image URL.
func NameFromURL(url string) (string, error) {
	if !strings.HasPrefix(url, URLPrefix) {
		return "", ErrInvalidImageURL
	}
	name := strings.TrimPrefix(url, URLPrefix)
	if !validName(name) {
		return "", ErrInvalidImageURL
	}
	return name, nil
}

func validName(name string) bool {
	return name != "" && name != "." && name != ".." && !strings.ContainsAny(name, "/\\")
}
