package layout

import (
	"golang.org/x/text/unicode/norm"
)

// Face identifies a font at a concrete surface size.
type Face struct {
	Family string
	Style  FontStyle
	Size   float64
}

// Measurer is the backend capability the layout engine relies on.
type Measurer interface {
	MeasureText(text string, face Face) (float64, error)
}

// Placement is the computed geometry for one placeholder on one surface.
type Placement struct {
	Key      string
	Text     string
	Box      Box
	Face     Face
	Align    Align
	Width    float64
	Origin   Point
	Overflow bool
}

// Midpoint is the horizontal center of the drawn string.
func (p Placement) Midpoint() float64 {
	return p.Origin.X + p.Width/2
}

func HorizontalOrigin(box Box, measured float64, align Align) float64 {
	switch align {
	case AlignCenter:
		return box.X + (box.Width-measured)/2
	case AlignRight:
		return box.X + box.Width - measured
	default:
		return box.X
	}
}

// Baseline approximates vertical centering from the font size alone.
func Baseline(box Box, fontSize float64) float64 {
	return box.Y + (box.Height-fontSize)/2 + fontSize
}

// Place measures text and computes its draw origin inside box. Text wider
// than the box is still placed; Overflow records it.
func Place(m Measurer, box Box, text string, face Face, align Align) (Placement, error) {
	text = norm.NFC.String(text)
	width, err := m.MeasureText(text, face)
	if err != nil {
		return Placement{}, err
	}
	return Placement{
		Text:     text,
		Box:      box,
		Face:     face,
		Align:    align,
		Width:    width,
		Origin:   Point{X: HorizontalOrigin(box, width, align), Y: Baseline(box, face.Size)},
		Overflow: width > box.Width,
	}, nil
}
