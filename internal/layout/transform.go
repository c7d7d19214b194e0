package layout

import (
	"errors"
	"math"
)

// ErrUndefinedTransform is returned while either side has no area yet,
// e.g. before the background image is loaded. Callers defer rendering.
var ErrUndefinedTransform = errors.New("layout: transform undefined for zero-sized image or surface")

type Point struct {
	X, Y float64
}

type Size struct {
	Width, Height float64
}

func (s Size) Empty() bool {
	return s.Width <= 0 || s.Height <= 0
}

type Box struct {
	X, Y, Width, Height float64
}

func (b Box) Contains(p Point) bool {
	return p.X >= b.X && p.X <= b.X+b.Width && p.Y >= b.Y && p.Y <= b.Y+b.Height
}

// Transform maps native image space onto a surface with one uniform
// scale, centering the scaled image.
type Transform struct {
	Scale   float64
	OffsetX float64
	OffsetY float64
}

func NewTransform(native, surface Size) (Transform, error) {
	if native.Empty() || surface.Empty() {
		return Transform{}, ErrUndefinedTransform
	}
	scale := math.Min(surface.Width/native.Width, surface.Height/native.Height)
	return Transform{
		Scale:   scale,
		OffsetX: (surface.Width - native.Width*scale) / 2,
		OffsetY: (surface.Height - native.Height*scale) / 2,
	}, nil
}

func (t Transform) Forward(p Point) Point {
	return Point{X: t.OffsetX + p.X*t.Scale, Y: t.OffsetY + p.Y*t.Scale}
}

func (t Transform) Inverse(p Point) Point {
	return Point{X: (p.X - t.OffsetX) / t.Scale, Y: (p.Y - t.OffsetY) / t.Scale}
}

// Length scales a native distance such as a font size or stroke width.
func (t Transform) Length(v float64) float64 {
	return v * t.Scale
}

// Box maps a native box to surface space.
func (t Transform) Box(b Box) Box {
	origin := t.Forward(Point{X: b.X, Y: b.Y})
	return Box{X: origin.X, Y: origin.Y, Width: t.Length(b.Width), Height: t.Length(b.Height)}
}

// InverseBox maps a surface box back to native space.
func (t Transform) InverseBox(b Box) Box {
	origin := t.Inverse(Point{X: b.X, Y: b.Y})
	return Box{X: origin.X, Y: origin.Y, Width: b.Width / t.Scale, Height: b.Height / t.Scale}
}

// Image is the surface rectangle occupied by the whole background.
func (t Transform) Image(native Size) Box {
	return t.Box(Box{Width: native.Width, Height: native.Height})
}
