package layout

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/sunthewhat/easy-cred-api/internal/apperror"
)

const (
	DefaultWidth      = 150
	DefaultHeight     = 50
	DefaultFontSize   = 20
	DefaultFontFamily = "Arial"
	DefaultFill       = "black"
)

type Align string

const (
	AlignLeft   Align = "left"
	AlignCenter Align = "center"
	AlignRight  Align = "right"
)

func (a Align) Valid() bool {
	return a == AlignLeft || a == AlignCenter || a == AlignRight
}

type Weight string

const (
	WeightNormal Weight = "normal"
	WeightBold   Weight = "bold"
)

type Slant string

const (
	SlantNormal Slant = "normal"
	SlantItalic Slant = "italic"
)

// FontStyle travels on the wire as "<weight> <slant>", e.g. "bold italic".
type FontStyle struct {
	Weight Weight
	Slant  Slant
}

var StyleNormal = FontStyle{Weight: WeightNormal, Slant: SlantNormal}

func ParseFontStyle(s string) (FontStyle, error) {
	style := StyleNormal
	for _, token := range strings.Fields(strings.ToLower(s)) {
		switch token {
		case "normal":
		case "bold":
			style.Weight = WeightBold
		case "italic":
			style.Slant = SlantItalic
		default:
			return StyleNormal, fmt.Errorf("unknown font style %q", token)
		}
	}
	return style, nil
}

func (s FontStyle) Bold() bool   { return s.Weight == WeightBold }
func (s FontStyle) Italic() bool { return s.Slant == SlantItalic }

func (s FontStyle) String() string {
	switch {
	case s.Bold() && s.Italic():
		return "bold italic"
	case s.Bold():
		return "bold"
	case s.Italic():
		return "italic"
	default:
		return "normal"
	}
}

func (s FontStyle) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

func (s *FontStyle) UnmarshalJSON(b []byte) error {
	var raw string
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	parsed, err := ParseFontStyle(raw)
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// Placeholder is one positioned text field, in native image pixels.
type Placeholder struct {
	Key        string    `json:"key"`
	Label      string    `json:"label"`
	X          float64   `json:"x"`
	Y          float64   `json:"y"`
	Width      float64   `json:"width"`
	Height     float64   `json:"height"`
	FontSize   int       `json:"fontSize"`
	FontFamily string    `json:"fontFamily"`
	FontStyle  FontStyle `json:"fontStyle"`
	Align      Align     `json:"align"`
	Fill       string    `json:"fill"`
}

func (p Placeholder) Box() Box {
	return Box{X: p.X, Y: p.Y, Width: p.Width, Height: p.Height}
}

// Spec is the inverse of Build: building the result yields p again.
func (p Placeholder) Spec() PlaceholderSpec {
	style := p.FontStyle.String()
	align := string(p.Align)
	return PlaceholderSpec{
		Key:        p.Key,
		Label:      &p.Label,
		X:          p.X,
		Y:          p.Y,
		Width:      &p.Width,
		Height:     &p.Height,
		FontSize:   &p.FontSize,
		FontFamily: &p.FontFamily,
		FontStyle:  &style,
		Align:      &align,
		Fill:       &p.Fill,
	}
}

// PlaceholderSpec is the loosely specified form accepted from clients.
// Nil fields take their defaults in Build.
type PlaceholderSpec struct {
	Key        string   `json:"key" validate:"required"`
	Label      *string  `json:"label"`
	X          float64  `json:"x"`
	Y          float64  `json:"y"`
	Width      *float64 `json:"width"`
	Height     *float64 `json:"height"`
	FontSize   *int     `json:"fontSize"`
	FontFamily *string  `json:"fontFamily"`
	FontStyle  *string  `json:"fontStyle"`
	Align      *string  `json:"align"`
	Fill       *string  `json:"fill"`
}

// Build fills defaults. index is the 0-based position used for the
// generated label.
func (s PlaceholderSpec) Build(index int) (Placeholder, error) {
	p := Placeholder{
		Key:        strings.TrimSpace(s.Key),
		Label:      fmt.Sprintf("Placeholder %d", index+1),
		X:          s.X,
		Y:          s.Y,
		Width:      DefaultWidth,
		Height:     DefaultHeight,
		FontSize:   DefaultFontSize,
		FontFamily: DefaultFontFamily,
		FontStyle:  StyleNormal,
		Align:      AlignLeft,
		Fill:       DefaultFill,
	}
	if s.Label != nil && strings.TrimSpace(*s.Label) != "" {
		p.Label = *s.Label
	}
	if s.Width != nil {
		p.Width = *s.Width
	}
	if s.Height != nil {
		p.Height = *s.Height
	}
	if s.FontSize != nil {
		p.FontSize = *s.FontSize
	}
	if s.FontFamily != nil && strings.TrimSpace(*s.FontFamily) != "" {
		p.FontFamily = strings.TrimSpace(*s.FontFamily)
	}
	if s.FontStyle != nil {
		style, err := ParseFontStyle(*s.FontStyle)
		if err != nil {
			return p, apperror.Validation(fieldName(index, "fontStyle"), "placeholder %q: %s", p.Key, err)
		}
		p.FontStyle = style
	}
	if s.Align != nil && *s.Align != "" {
		p.Align = Align(strings.ToLower(*s.Align))
	}
	if s.Fill != nil && *s.Fill != "" {
		p.Fill = *s.Fill
	}
	return p, nil
}

// BuildAll converts specs in order, failing on the first malformed entry.
func BuildAll(specs []PlaceholderSpec) ([]Placeholder, error) {
	out := make([]Placeholder, 0, len(specs))
	for i, s := range specs {
		p, err := s.Build(i)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, nil
}

// FontResolver reports whether a family/style can be measured and drawn.
type FontResolver interface {
	Resolve(family string, style FontStyle) error
}

// Validate checks a template's placeholder list. fonts may be nil to skip
// font resolution.
func Validate(placeholders []Placeholder, fonts FontResolver) error {
	if len(placeholders) == 0 {
		return apperror.Validation("placeholders", "template must contain at least one placeholder")
	}
	seen := make(map[string]int, len(placeholders))
	for i, p := range placeholders {
		if p.Key == "" {
			return apperror.Validation(fieldName(i, "key"), "placeholder %d has no key", i+1)
		}
		if first, dup := seen[p.Key]; dup {
			return apperror.Validation(fieldName(i, "key"), "duplicate placeholder key %q (also at position %d)", p.Key, first+1)
		}
		seen[p.Key] = i
		if p.X < 0 || p.Y < 0 {
			return apperror.Validation(fieldName(i, "position"), "placeholder %q must have a non-negative position", p.Key)
		}
		if p.Width <= 0 || p.Height <= 0 {
			return apperror.Validation(fieldName(i, "size"), "placeholder %q must have positive width and height", p.Key)
		}
		if p.FontSize <= 0 {
			return apperror.Validation(fieldName(i, "fontSize"), "placeholder %q must have a positive font size", p.Key)
		}
		if !p.Align.Valid() {
			return apperror.Validation(fieldName(i, "align"), "placeholder %q has unknown align %q", p.Key, p.Align)
		}
		if _, err := ParseColor(p.Fill); err != nil {
			return apperror.Validation(fieldName(i, "fill"), "placeholder %q: %s", p.Key, err)
		}
		if fonts != nil {
			if err := fonts.Resolve(p.FontFamily, p.FontStyle); err != nil {
				return apperror.Validation(fieldName(i, "fontFamily"), "placeholder %q: font family %q is not available", p.Key, p.FontFamily)
			}
		}
	}
	return nil
}

func fieldName(index int, field string) string {
	return fmt.Sprintf("placeholders[%d].%s", index, field)
}
