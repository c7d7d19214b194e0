package renderer

import (
	"errors"
	"fmt"
	"image"
	"math"
	"slices"

	"github.com/sunthewhat/easy-cred-api/internal/layout"
)

var (
	ErrNoSuchElement   = errors.New("no placeholder with that key")
	ErrDuplicateKey    = errors.New("placeholder key already on stage")
	ErrInvalidGeometry = errors.New("placeholder size must stay positive")
)

// Stage is the mutable editing surface. Elements are stored in native
// coordinates; pointer input arrives in surface coordinates and goes
// through the inverse transform.
type Stage struct {
	native   layout.Size
	surface  layout.Size
	t        layout.Transform
	elements []layout.Placeholder
	selected string
}

func NewStage(native, surface layout.Size) (*Stage, error) {
	surface = wholePixels(surface)
	t, err := layout.NewTransform(native, surface)
	if err != nil {
		return nil, err
	}
	return &Stage{native: native, surface: surface, t: t}, nil
}

// SetSurface follows a container resize. Element geometry is unchanged.
func (s *Stage) SetSurface(surface layout.Size) error {
	surface = wholePixels(surface)
	t, err := layout.NewTransform(s.native, surface)
	if err != nil {
		return err
	}
	s.surface, s.t = surface, t
	return nil
}

// wholePixels rounds a container size to the canvas Render allocates, so
// hit testing and drawing share one transform.
func wholePixels(s layout.Size) layout.Size {
	return layout.Size{Width: math.Round(s.Width), Height: math.Round(s.Height)}
}

func (s *Stage) Native() layout.Size         { return s.native }
func (s *Stage) Surface() layout.Size        { return s.surface }
func (s *Stage) Transform() layout.Transform { return s.t }

func (s *Stage) Placeholders() []layout.Placeholder {
	return slices.Clone(s.elements)
}

func (s *Stage) Len() int {
	return len(s.elements)
}

func (s *Stage) Add(p layout.Placeholder) error {
	if s.index(p.Key) >= 0 {
		return fmt.Errorf("%w: %q", ErrDuplicateKey, p.Key)
	}
	if p.Width <= 0 || p.Height <= 0 || p.FontSize <= 0 {
		return ErrInvalidGeometry
	}
	s.elements = append(s.elements, p)
	return nil
}

// DropAt adds p with its top-left at a surface point.
func (s *Stage) DropAt(p layout.Placeholder, at layout.Point) error {
	n := s.t.Inverse(at)
	p.X, p.Y = n.X, n.Y
	return s.Add(p)
}

// HitTest returns the topmost element under a surface point.
func (s *Stage) HitTest(at layout.Point) (string, bool) {
	for i := len(s.elements) - 1; i >= 0; i-- {
		if s.t.Box(s.elements[i].Box()).Contains(at) {
			return s.elements[i].Key, true
		}
	}
	return "", false
}

func (s *Stage) Select(key string) error {
	if s.index(key) < 0 {
		return fmt.Errorf("%w: %q", ErrNoSuchElement, key)
	}
	s.selected = key
	return nil
}

func (s *Stage) Deselect() {
	s.selected = ""
}

func (s *Stage) Selected() (string, bool) {
	return s.selected, s.selected != ""
}

// DragTo moves an element so its top-left sits at a surface point.
func (s *Stage) DragTo(key string, at layout.Point) error {
	i := s.index(key)
	if i < 0 {
		return fmt.Errorf("%w: %q", ErrNoSuchElement, key)
	}
	n := s.t.Inverse(at)
	s.elements[i].X, s.elements[i].Y = n.X, n.Y
	return nil
}

// TransformBy applies the scale factors reported by a resize handle.
func (s *Stage) TransformBy(key string, scaleX, scaleY float64) error {
	i := s.index(key)
	if i < 0 {
		return fmt.Errorf("%w: %q", ErrNoSuchElement, key)
	}
	if scaleX <= 0 || scaleY <= 0 {
		return ErrInvalidGeometry
	}
	s.elements[i].Width *= scaleX
	s.elements[i].Height *= scaleY
	return nil
}

// Update applies fn to a copy of the element and keeps it only if the
// result is still well formed.
func (s *Stage) Update(key string, fn func(p *layout.Placeholder)) error {
	i := s.index(key)
	if i < 0 {
		return fmt.Errorf("%w: %q", ErrNoSuchElement, key)
	}
	next := s.elements[i]
	fn(&next)
	if next.Width <= 0 || next.Height <= 0 || next.FontSize <= 0 {
		return ErrInvalidGeometry
	}
	if next.Key != key && s.index(next.Key) >= 0 {
		return fmt.Errorf("%w: %q", ErrDuplicateKey, next.Key)
	}
	s.elements[i] = next
	if s.selected == key {
		s.selected = next.Key
	}
	return nil
}

func (s *Stage) Remove(key string) error {
	i := s.index(key)
	if i < 0 {
		return fmt.Errorf("%w: %q", ErrNoSuchElement, key)
	}
	s.elements = slices.Delete(s.elements, i, i+1)
	if s.selected == key {
		s.selected = ""
	}
	return nil
}

// Render paints the stage at its current surface size with labels for
// unbound keys, element outlines and handles on the selection.
func (s *Stage) Render(fonts FaceSource, background image.Image, data map[string]string) (*image.NRGBA, []layout.Placement, error) {
	c := NewPreviewCanvas(int(s.surface.Width), int(s.surface.Height), fonts)
	defer c.Close()

	doc := layout.Document{Native: s.native, Placeholders: s.elements}
	placements, err := layout.Compose(c, doc, background, layout.LabelText(data))
	if err != nil {
		return nil, nil, err
	}
	for _, p := range placements {
		if p.Key == s.selected {
			c.DrawOutline(p.Box, selectionOutline)
			c.DrawHandles(p.Box, selectionOutline)
			continue
		}
		c.DrawOutline(p.Box, elementOutline)
	}
	return c.Image(), placements, nil
}

func (s *Stage) index(key string) int {
	return slices.IndexFunc(s.elements, func(p layout.Placeholder) bool { return p.Key == key })
}
