package renderer

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"math"

	"github.com/disintegration/imaging"
	"github.com/fogleman/gg"
	"github.com/sunthewhat/easy-cred-api/internal/layout"
	xdraw "golang.org/x/image/draw"
)

// RasterCanvas is the final-output backend: a flat gg context with no
// interactive state.
type RasterCanvas struct {
	img   *image.RGBA
	dc    *gg.Context
	faces *faceCache
}

var _ layout.Canvas = (*RasterCanvas)(nil)

func NewRasterCanvas(width, height int, fonts FaceSource) *RasterCanvas {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	dc := gg.NewContextForRGBA(img)
	dc.SetColor(color.White)
	dc.Clear()
	return &RasterCanvas{img: img, dc: dc, faces: newFaceCache(fonts)}
}

func (c *RasterCanvas) Bounds() layout.Size {
	return layout.Size{Width: float64(c.img.Bounds().Dx()), Height: float64(c.img.Bounds().Dy())}
}

func (c *RasterCanvas) DrawImage(img image.Image, dst layout.Box) error {
	rect := image.Rect(
		int(math.Round(dst.X)),
		int(math.Round(dst.Y)),
		int(math.Round(dst.X+dst.Width)),
		int(math.Round(dst.Y+dst.Height)),
	)
	if rect.Empty() {
		return fmt.Errorf("background scaled to an empty rectangle")
	}
	xdraw.CatmullRom.Scale(c.img, rect, img, img.Bounds(), xdraw.Over, nil)
	return nil
}

func (c *RasterCanvas) MeasureText(text string, face layout.Face) (float64, error) {
	f, err := c.faces.get(face)
	if err != nil {
		return 0, err
	}
	c.dc.SetFontFace(f)
	w, _ := c.dc.MeasureString(text)
	return w, nil
}

func (c *RasterCanvas) DrawText(p layout.Placement, fill color.Color) error {
	f, err := c.faces.get(p.Face)
	if err != nil {
		return err
	}
	c.dc.SetFontFace(f)
	c.dc.SetColor(fill)
	c.dc.DrawString(p.Text, p.Origin.X, p.Origin.Y)
	return nil
}

func (c *RasterCanvas) Image() image.Image {
	return c.img
}

// Encode flattens the canvas into png or jpeg bytes.
func (c *RasterCanvas) Encode(format string, quality int) ([]byte, string, error) {
	var buf bytes.Buffer
	switch format {
	case FormatJPEG:
		if err := imaging.Encode(&buf, c.img, imaging.JPEG, imaging.JPEGQuality(quality)); err != nil {
			return nil, "", err
		}
		return buf.Bytes(), "image/jpeg", nil
	default:
		if err := c.dc.EncodePNG(&buf); err != nil {
			return nil, "", err
		}
		return buf.Bytes(), "image/png", nil
	}
}

func (c *RasterCanvas) Close() {
	c.faces.close()
}
