package layout

import (
	"image"
	"image/color"
	"strings"

	"github.com/sunthewhat/easy-cred-api/internal/apperror"
)

// Canvas is the drawing strategy a render backend supplies. Everything
// geometric happens in Compose; a Canvas only measures and paints.
type Canvas interface {
	Measurer
	Bounds() Size
	DrawImage(img image.Image, dst Box) error
	DrawText(p Placement, fill color.Color) error
}

// Document is the part of a template the compositor needs.
type Document struct {
	Native       Size
	Placeholders []Placeholder
}

// TextFunc resolves the string drawn for a placeholder.
type TextFunc func(p Placeholder) (string, error)

// BoundText requires a non-empty value for every placeholder.
func BoundText(data map[string]string) TextFunc {
	return func(p Placeholder) (string, error) {
		v := data[p.Key]
		if strings.TrimSpace(v) == "" {
			return "", apperror.Validation(p.Key, "Missing data for placeholder %s", p.Key)
		}
		return v, nil
	}
}

// LabelText shows bound values where present and labels otherwise.
func LabelText(data map[string]string) TextFunc {
	return func(p Placeholder) (string, error) {
		if v := data[p.Key]; strings.TrimSpace(v) != "" {
			return v, nil
		}
		return p.Label, nil
	}
}

// Compose draws background then text for every placeholder, in order, and
// returns the placements used.
func Compose(c Canvas, doc Document, background image.Image, text TextFunc) ([]Placement, error) {
	t, err := NewTransform(doc.Native, c.Bounds())
	if err != nil {
		return nil, err
	}
	if background != nil {
		if err := c.DrawImage(background, t.Image(doc.Native)); err != nil {
			return nil, err
		}
	}
	placements := make([]Placement, 0, len(doc.Placeholders))
	for _, ph := range doc.Placeholders {
		s, err := text(ph)
		if err != nil {
			return nil, err
		}
		fill, err := ParseColor(ph.Fill)
		if err != nil {
			return nil, apperror.Validation(ph.Key, "placeholder %q: %s", ph.Key, err)
		}
		face := Face{Family: ph.FontFamily, Style: ph.FontStyle, Size: t.Length(float64(ph.FontSize))}
		p, err := Place(c, t.Box(ph.Box()), s, face, ph.Align)
		if err != nil {
			return nil, err
		}
		p.Key = ph.Key
		if err := c.DrawText(p, fill); err != nil {
			return nil, err
		}
		placements = append(placements, p)
	}
	return placements, nil
}
