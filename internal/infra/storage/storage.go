package storage

import (
	"context"
	"errors"
	"io"
	"path"
	"strings"

	"github.com/google/uuid"
	"github.com/gosimple/slug"
)

const (
	FolderRecipes  = "recipes"
	FolderProfiles = "profiles"
)

var ErrInvalidPath = errors.New("invalid storage path")

// Storage persists uploaded files and returns the path clients use to
// fetch them.
type Storage interface {
	Save(ctx context.Context, key string, r io.Reader, size int64, contentType string) (string, error)
	Delete(ctx context.Context, publicPath string) error
}

// NewKey builds "<folder>/<slug>-<uuid><ext>" from a client file name.
func NewKey(folder, filename, ext string) string {
	base := strings.TrimSuffix(path.Base(strings.ReplaceAll(filename, "\\", "/")), path.Ext(filename))
	s := slug.Make(base)
	if s == "" {
		s = "image"
	}
	if len(s) > 60 {
		s = strings.Trim(s[:60], "-")
	}
	return path.Join(folder, s+"-"+uuid.NewString()+ext)
}

// cleanKey rejects keys that would escape the storage root.
func cleanKey(key string) (string, error) {
	key = strings.TrimPrefix(strings.ReplaceAll(key, "\\", "/"), "/")
	if key == "" {
		return "", ErrInvalidPath
	}
	for _, part := range strings.Split(key, "/") {
		if part == ".." || part == "." || part == "" {
			return "", ErrInvalidPath
		}
	}
	return key, nil
}
