package upload

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"

	"github.com/BruksfildServices01/recipe-nest/internal/httperr"
	"github.com/BruksfildServices01/recipe-nest/internal/imaging"
	"github.com/BruksfildServices01/recipe-nest/internal/infra/storage"
)

// File is an uploaded file as received from the client.
type File struct {
	Name string
	Body io.Reader
}

type ImageNormalizer interface {
	Normalize(r io.Reader) ([]byte, error)
}

// Uploader normalizes images and hands them to storage.
type Uploader struct {
	images ImageNormalizer
	store  storage.Storage
}

func NewUploader(images ImageNormalizer, store storage.Storage) *Uploader {
	return &Uploader{images: images, store: store}
}

func ErrInvalidImage(field string) error {
	return httperr.Validation("invalid_image", "File must be a JPEG, PNG, GIF or WebP image.").
		WithField(field, "must be an image")
}

// StoreImage returns the public path of the stored image.
func (u *Uploader) StoreImage(ctx context.Context, folder, field string, f File) (string, error) {
	data, err := u.images.Normalize(f.Body)
	if err != nil {
		if errors.Is(err, imaging.ErrUnsupported) {
			return "", ErrInvalidImage(field)
		}
		return "", err
	}

	key := storage.NewKey(folder, f.Name, imaging.Extension)
	return u.store.Save(ctx, key, bytes.NewReader(data), int64(len(data)), imaging.ContentType)
}

// Remove deletes a stored file, logging instead of failing.
func (u *Uploader) Remove(ctx context.Context, path *string) {
	if path == nil || *path == "" {
		return
	}
	if err := u.store.Delete(ctx, *path); err != nil {
		slog.Warn("failed to delete stored file", "path", *path, "error", err)
	}
}
