package renderer

import (
	"bytes"
	"context"
	"image"
	"log/slog"
	"math"

	"github.com/disintegration/imaging"
	"github.com/sunthewhat/easy-cred-api/internal/layout"
)

const (
	FormatPNG  = "png"
	FormatJPEG = "jpeg"
)

type Options struct {
	// Width and Height fix the final surface. Zero means native resolution;
	// one zero side is derived from the image aspect ratio.
	Width          int
	Height         int
	Format         string
	JPEGQuality    int
	ThumbnailWidth int
	// MaxPixels bounds background resolution; zero means DefaultMaxPixels.
	MaxPixels int
}

// Artifact is an encoded raster plus the geometry used to produce it.
type Artifact struct {
	Data        []byte
	ContentType string
	Extension   string
	Width       int
	Height      int
	Placements  []layout.Placement
}

// Renderer drives both backends over the shared compositor.
type Renderer struct {
	fonts FaceSource
	opts  Options
}

func New(fonts FaceSource, opts Options) *Renderer {
	if opts.Format != FormatJPEG {
		opts.Format = FormatPNG
	}
	if opts.JPEGQuality <= 0 || opts.JPEGQuality > 100 {
		opts.JPEGQuality = 90
	}
	if opts.ThumbnailWidth <= 0 {
		opts.ThumbnailWidth = 480
	}
	return &Renderer{fonts: fonts, opts: opts}
}

// RenderFinal produces the persisted artifact. Every placeholder must have
// a bound value. The template is only read.
func (r *Renderer) RenderFinal(ctx context.Context, doc layout.Document, background image.Image, data map[string]string) (*Artifact, error) {
	if doc.Native.Empty() {
		return nil, layout.ErrUndefinedTransform
	}
	w, h := surfaceSize(doc.Native, r.opts.Width, r.opts.Height)
	c := NewRasterCanvas(w, h, r.fonts)
	defer c.Close()

	placements, err := layout.Compose(c, doc, background, layout.BoundText(data))
	if err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	encoded, contentType, err := c.Encode(r.opts.Format, r.opts.JPEGQuality)
	if err != nil {
		return nil, err
	}
	slog.Debug("Renderer RenderFinal", "width", w, "height", h, "bytes", len(encoded), "placeholders", len(placements))
	return &Artifact{
		Data:        encoded,
		ContentType: contentType,
		Extension:   extensionFor(r.opts.Format),
		Width:       w,
		Height:      h,
		Placements:  placements,
	}, nil
}

// RenderPreview draws on the preview backend at an arbitrary surface size,
// showing labels for keys without data.
func (r *Renderer) RenderPreview(ctx context.Context, doc layout.Document, background image.Image, data map[string]string, width, height int) (*Artifact, error) {
	if doc.Native.Empty() {
		return nil, layout.ErrUndefinedTransform
	}
	if width <= 0 || height <= 0 {
		width, height = surfaceSize(doc.Native, width, height)
	}
	c := NewPreviewCanvas(width, height, r.fonts)
	defer c.Close()

	placements, err := layout.Compose(c, doc, background, layout.LabelText(data))
	if err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, c.Image(), imaging.PNG); err != nil {
		return nil, err
	}
	return &Artifact{
		Data:        buf.Bytes(),
		ContentType: "image/png",
		Extension:   "png",
		Width:       width,
		Height:      height,
		Placements:  placements,
	}, nil
}

// Thumbnail renders a small labelled preview as JPEG.
func (r *Renderer) Thumbnail(ctx context.Context, doc layout.Document, background image.Image) (*Artifact, error) {
	if doc.Native.Empty() {
		return nil, layout.ErrUndefinedTransform
	}
	w, h := surfaceSize(doc.Native, r.opts.ThumbnailWidth, 0)
	c := NewPreviewCanvas(w, h, r.fonts)
	defer c.Close()

	if _, err := layout.Compose(c, doc, background, layout.LabelText(nil)); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, c.Image(), imaging.JPEG, imaging.JPEGQuality(80)); err != nil {
		return nil, err
	}
	return &Artifact{Data: buf.Bytes(), ContentType: "image/jpeg", Extension: "jpg", Width: w, Height: h}, nil
}

func surfaceSize(native layout.Size, width, height int) (int, int) {
	switch {
	case width > 0 && height > 0:
		return width, height
	case width > 0:
		return width, max(1, int(math.Round(float64(width)*native.Height/native.Width)))
	case height > 0:
		return max(1, int(math.Round(float64(height)*native.Width/native.Height))), height
	default:
		return int(math.Round(native.Width)), int(math.Round(native.Height))
	}
}

func extensionFor(format string) string {
	if format == FormatJPEG {
		return "jpg"
	}
	return "png"
}
