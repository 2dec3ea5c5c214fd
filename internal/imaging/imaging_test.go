package imaging

import (
	"bytes"
	"encoding/binary"
	"errors"
	"hash/crc32"
	"image"
	"image/color"
	"image/png"
	"strings"
	"testing"

	"github.com/chai2010/webp"
)

func pngBytes(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x += 10 {
		img.Set(x, 0, color.RGBA{R: 200, A: 255})
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatal(err)
	}
	return buf.Bytes()
}

func TestNormalizeDownscales(t *testing.T) {
	p := NewProcessor(1200)
	out, err := p.Normalize(bytes.NewReader(pngBytes(t, 2000, 1000)))
	if err != nil {
		t.Fatalf("normalize: %v", err)
	}

	cfg, err := webp.DecodeConfig(bytes.NewReader(out))
	if err != nil {
		t.Fatalf("output is not webp: %v", err)
	}
	if cfg.Width != 1200 || cfg.Height != 600 {
		t.Fatalf("unexpected size %dx%d", cfg.Width, cfg.Height)
	}
}

func TestNormalizeKeepsSmallImages(t *testing.T) {
	p := NewProcessor(1200)
	out, err := p.Normalize(bytes.NewReader(pngBytes(t, 300, 200)))
	if err != nil {
		t.Fatal(err)
	}
	cfg, err := webp.DecodeConfig(bytes.NewReader(out))
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Width != 300 || cfg.Height != 200 {
		t.Fatalf("small image resized to %dx%d", cfg.Width, cfg.Height)
	}
}

func TestNormalizeRejectsNonImages(t *testing.T) {
	p := NewProcessor(0)
	cases := map[string][]byte{
		"text":      []byte(strings.Repeat("hello world ", 20)),
		"empty":     nil,
		"pdf":       []byte("%PDF-1.4\n%..."),
		"truncated": pngBytes(t, 10, 10)[:40],
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			if _, err := p.Normalize(bytes.NewReader(body)); !errors.Is(err, ErrUnsupported) {
				t.Fatalf("expected ErrUnsupported, got %v", err)
			}
		})
	}
}

// withDimensions rewrites the IHDR chunk of a PNG so its header claims w x h.
func withDimensions(t *testing.T, src []byte, w, h uint32) []byte {
	t.Helper()
	out := append([]byte(nil), src...)
	// 8-byte signature, 4-byte length, "IHDR", then width and height.
	if string(out[12:16]) != "IHDR" {
		t.Fatal("unexpected png layout")
	}
	binary.BigEndian.PutUint32(out[16:20], w)
	binary.BigEndian.PutUint32(out[20:24], h)
	binary.BigEndian.PutUint32(out[29:33], crc32.ChecksumIEEE(out[12:29]))
	return out
}

func TestNormalizeRejectsHugeDimensions(t *testing.T) {
	body := withDimensions(t, pngBytes(t, 4, 4), 8000, 8000)

	_, err := NewProcessor(0).Normalize(bytes.NewReader(body))
	if !errors.Is(err, ErrUnsupported) || !strings.Contains(err.Error(), "exceeds") {
		t.Fatalf("expected pixel limit error, got %v", err)
	}
}

func TestNormalizeHonorsMaxPixels(t *testing.T) {
	p := NewProcessor(0)
	p.MaxPixels = 50 * 50

	if _, err := p.Normalize(bytes.NewReader(pngBytes(t, 60, 60))); !errors.Is(err, ErrUnsupported) {
		t.Fatalf("expected ErrUnsupported over the limit, got %v", err)
	}
	if _, err := p.Normalize(bytes.NewReader(pngBytes(t, 50, 50))); err != nil {
		t.Fatalf("image at the limit rejected: %v", err)
	}
}
