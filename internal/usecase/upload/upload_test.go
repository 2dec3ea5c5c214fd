package upload

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/png"
	"strings"
	"testing"

	"github.com/BruksfildServices01/recipe-nest/internal/httperr"
	"github.com/BruksfildServices01/recipe-nest/internal/imaging"
	"github.com/BruksfildServices01/recipe-nest/internal/infra/storage"
)

func TestStoreImage(t *testing.T) {
	store, err := storage.NewLocalStorage(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	u := NewUploader(imaging.NewProcessor(100), store)

	var buf bytes.Buffer
	if err := png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, 10, 10))); err != nil {
		t.Fatal(err)
	}

	p, err := u.StoreImage(context.Background(), storage.FolderProfiles, "image", File{Name: "Me.png", Body: &buf})
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(p, "/uploads/profiles/me-") || !strings.HasSuffix(p, ".webp") {
		t.Fatalf("unexpected path %q", p)
	}

	u.Remove(context.Background(), &p)
	u.Remove(context.Background(), nil)
}

func TestStoreImageRejectsText(t *testing.T) {
	store, _ := storage.NewLocalStorage(t.TempDir())
	u := NewUploader(imaging.NewProcessor(100), store)

	_, err := u.StoreImage(context.Background(), storage.FolderRecipes, "Image", File{Name: "a.txt", Body: strings.NewReader("just some text here")})
	if !httperr.IsBusiness(err, "invalid_image") {
		t.Fatalf("expected invalid_image, got %v", err)
	}
	var be httperr.BusinessError
	if !errors.As(err, &be) || be.Fields["Image"] == "" {
		t.Fatalf("field not reported: %+v", be)
	}
}
