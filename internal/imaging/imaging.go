// Package imaging validates uploaded pictures and re-encodes them as WebP.
package imaging

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"net/http"

	"github.com/chai2010/webp"
	"golang.org/x/image/draw"
)

const (
	ContentType = "image/webp"
	Extension   = ".webp"

	DefaultMaxWidth  = 1200
	DefaultMaxPixels = 40_000_000
	DefaultQuality   = 80
	sniffLen         = 512
)

var ErrUnsupported = errors.New("unsupported image format")

var allowed = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/gif":  true,
	"image/webp": true,
}

// Processor re-encodes uploads. MaxPixels bounds width*height as read from
// the image header, before any pixel data is decoded.
type Processor struct {
	MaxWidth  int
	MaxPixels int
	Quality   float32
}

func NewProcessor(maxWidth int) *Processor {
	if maxWidth <= 0 {
		maxWidth = DefaultMaxWidth
	}
	return &Processor{MaxWidth: maxWidth, MaxPixels: DefaultMaxPixels, Quality: DefaultQuality}
}

// Normalize sniffs the content type from the bytes, decodes the image,
// downscales it to MaxWidth keeping the aspect ratio and returns WebP bytes.
// The caller bounds the size of r.
func (p *Processor) Normalize(r io.Reader) ([]byte, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	head := data
	if len(head) > sniffLen {
		head = head[:sniffLen]
	}
	if !allowed[http.DetectContentType(head)] {
		return nil, ErrUnsupported
	}

	cfg, _, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnsupported, err)
	}
	if err := p.checkDimensions(cfg.Width, cfg.Height); err != nil {
		return nil, err
	}

	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnsupported, err)
	}

	img = p.resize(img)

	var buf bytes.Buffer
	if err := webp.Encode(&buf, img, &webp.Options{Quality: p.Quality}); err != nil {
		return nil, fmt.Errorf("encode webp: %w", err)
	}
	return buf.Bytes(), nil
}

func (p *Processor) checkDimensions(width, height int) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("%w: empty image", ErrUnsupported)
	}
	limit := p.MaxPixels
	if limit <= 0 {
		limit = DefaultMaxPixels
	}
	if int64(width)*int64(height) > int64(limit) {
		return fmt.Errorf("%w: %dx%d exceeds %d pixels", ErrUnsupported, width, height, limit)
	}
	return nil
}

func (p *Processor) resize(img image.Image) image.Image {
	b := img.Bounds()
	width, height := b.Dx(), b.Dy()
	if p.MaxWidth <= 0 || width <= p.MaxWidth {
		return img
	}

	newHeight := height * p.MaxWidth / width
	if newHeight < 1 {
		newHeight = 1
	}

	dst := image.NewRGBA(image.Rect(0, 0, p.MaxWidth, newHeight))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, b, draw.Over, nil)
	return dst
}
