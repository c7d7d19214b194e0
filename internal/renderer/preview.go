package renderer

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	"github.com/disintegration/imaging"
	"github.com/sunthewhat/easy-cred-api/internal/layout"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

var (
	previewBackdrop  = color.NRGBA{R: 0xf3, G: 0xf4, B: 0xf6, A: 0xff}
	selectionOutline = color.NRGBA{R: 0x25, G: 0x63, B: 0xeb, A: 0xff}
	elementOutline   = color.NRGBA{R: 0x94, G: 0xa3, B: 0xb8, A: 0xff}
)

const handleSize = 8

// PreviewCanvas is the interactive-side backend. It paints with imaging and
// x/image/font directly instead of gg, and can draw editing chrome.
type PreviewCanvas struct {
	img   *image.NRGBA
	faces *faceCache
}

var _ layout.Canvas = (*PreviewCanvas)(nil)

func NewPreviewCanvas(width, height int, fonts FaceSource) *PreviewCanvas {
	return &PreviewCanvas{
		img:   imaging.New(width, height, previewBackdrop),
		faces: newFaceCache(fonts),
	}
}

func (c *PreviewCanvas) Bounds() layout.Size {
	return layout.Size{Width: float64(c.img.Bounds().Dx()), Height: float64(c.img.Bounds().Dy())}
}

func (c *PreviewCanvas) DrawImage(img image.Image, dst layout.Box) error {
	w := max(1, int(math.Round(dst.Width)))
	h := max(1, int(math.Round(dst.Height)))
	scaled := imaging.Resize(img, w, h, imaging.Lanczos)
	c.img = imaging.Overlay(c.img, scaled, image.Pt(int(math.Round(dst.X)), int(math.Round(dst.Y))), 1.0)
	return nil
}

func (c *PreviewCanvas) MeasureText(text string, face layout.Face) (float64, error) {
	f, err := c.faces.get(face)
	if err != nil {
		return 0, err
	}
	return fromFixed(font.MeasureString(f, text)), nil
}

func (c *PreviewCanvas) DrawText(p layout.Placement, fill color.Color) error {
	f, err := c.faces.get(p.Face)
	if err != nil {
		return err
	}
	d := &font.Drawer{
		Dst:  c.img,
		Src:  image.NewUniform(fill),
		Face: f,
		Dot:  fixed.Point26_6{X: toFixed(p.Origin.X), Y: toFixed(p.Origin.Y)},
	}
	d.DrawString(p.Text)
	return nil
}

// DrawOutline strokes a one pixel rectangle around box.
func (c *PreviewCanvas) DrawOutline(box layout.Box, stroke color.Color) {
	r := rectOf(box)
	src := image.NewUniform(stroke)
	edges := []image.Rectangle{
		image.Rect(r.Min.X, r.Min.Y, r.Max.X, r.Min.Y+1),
		image.Rect(r.Min.X, r.Max.Y-1, r.Max.X, r.Max.Y),
		image.Rect(r.Min.X, r.Min.Y, r.Min.X+1, r.Max.Y),
		image.Rect(r.Max.X-1, r.Min.Y, r.Max.X, r.Max.Y),
	}
	for _, e := range edges {
		draw.Draw(c.img, e, src, image.Point{}, draw.Over)
	}
}

// DrawHandles paints the resize handles at the corners of box.
func (c *PreviewCanvas) DrawHandles(box layout.Box, fill color.Color) {
	r := rectOf(box)
	src := image.NewUniform(fill)
	half := handleSize / 2
	for _, pt := range []image.Point{r.Min, {r.Max.X, r.Min.Y}, {r.Min.X, r.Max.Y}, r.Max} {
		draw.Draw(c.img, image.Rect(pt.X-half, pt.Y-half, pt.X+half, pt.Y+half), src, image.Point{}, draw.Over)
	}
}

func (c *PreviewCanvas) Image() *image.NRGBA {
	return c.img
}

func (c *PreviewCanvas) Close() {
	c.faces.close()
}

func rectOf(b layout.Box) image.Rectangle {
	return image.Rect(
		int(math.Round(b.X)),
		int(math.Round(b.Y)),
		int(math.Round(b.X+b.Width)),
		int(math.Round(b.Y+b.Height)),
	)
}

func toFixed(v float64) fixed.Int26_6 {
	return fixed.Int26_6(math.Round(v * 64))
}

func fromFixed(v fixed.Int26_6) float64 {
	return float64(v) / 64
}
