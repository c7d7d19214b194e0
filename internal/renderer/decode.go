package renderer

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	"github.com/disintegration/imaging"
	"github.com/sunthewhat/easy-cred-api/internal/layout"
	_ "golang.org/x/image/webp"
)

// DefaultMaxPixels bounds the native resolution of a background, about
// 8000x5000. Every final render allocates a canvas of that size.
const DefaultMaxPixels = 40_000_000

var (
	ErrEmptyImage    = errors.New("background image has no pixels")
	ErrTooManyPixels = errors.New("background image resolution is too large")
)

// DecodeBackground decodes with the default pixel budget.
func DecodeBackground(b []byte) (image.Image, layout.Size, error) {
	return DecodeBackgroundLimit(b, DefaultMaxPixels)
}

// DecodeBackgroundLimit decodes png, jpeg, gif or webp bytes, applying any
// EXIF orientation so the native size matches what the author saw. The
// header is checked against maxPixels before any pixel data is decoded; a
// non-positive maxPixels means DefaultMaxPixels.
func DecodeBackgroundLimit(b []byte, maxPixels int) (image.Image, layout.Size, error) {
	if maxPixels <= 0 {
		maxPixels = DefaultMaxPixels
	}
	cfg, _, err := image.DecodeConfig(bytes.NewReader(b))
	if err != nil {
		return nil, layout.Size{}, err
	}
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return nil, layout.Size{}, ErrEmptyImage
	}
	if int64(cfg.Width)*int64(cfg.Height) > int64(maxPixels) {
		return nil, layout.Size{}, fmt.Errorf("%w: %dx%d exceeds %d pixels", ErrTooManyPixels, cfg.Width, cfg.Height, maxPixels)
	}

	img, err := imaging.Decode(bytes.NewReader(b), imaging.AutoOrientation(true))
	if err != nil {
		return nil, layout.Size{}, err
	}
	bounds := img.Bounds()
	if bounds.Dx() == 0 || bounds.Dy() == 0 {
		return nil, layout.Size{}, ErrEmptyImage
	}
	return img, layout.Size{Width: float64(bounds.Dx()), Height: float64(bounds.Dy())}, nil
}
