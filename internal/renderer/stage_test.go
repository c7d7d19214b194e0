package renderer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/sunthewhat/easy-cred-api/internal/layout"
)

func newStage(t *testing.T) *Stage {
	t.Helper()
	s, err := NewStage(layout.Size{Width: 800, Height: 600}, layout.Size{Width: 400, Height: 300})
	require.NoError(t, err)
	return s
}

func TestStage_DropUsesInverseTransform(t *testing.T) {
	s := newStage(t)
	require.NoError(t, s.DropAt(placeholder("name", 0, 0, 300, 50, layout.AlignCenter), layout.Point{X: 50, Y: 50}))

	p := s.Placeholders()[0]
	assert.InDelta(t, 100, p.X, 1e-9)
	assert.InDelta(t, 100, p.Y, 1e-9)
}

func TestStage_HitTestPrefersTopmost(t *testing.T) {
	s := newStage(t)
	require.NoError(t, s.Add(placeholder("below", 100, 100, 300, 50, layout.AlignLeft)))
	require.NoError(t, s.Add(placeholder("above", 200, 100, 300, 50, layout.AlignLeft)))

	key, ok := s.HitTest(layout.Point{X: 120, Y: 60})
	require.True(t, ok)
	assert.Equal(t, "above", key)

	key, ok = s.HitTest(layout.Point{X: 60, Y: 60})
	require.True(t, ok)
	assert.Equal(t, "below", key)

	_, ok = s.HitTest(layout.Point{X: 5, Y: 5})
	assert.False(t, ok)
}

func TestStage_DragAndResize(t *testing.T) {
	s := newStage(t)
	require.NoError(t, s.Add(placeholder("name", 100, 100, 300, 50, layout.AlignCenter)))

	require.NoError(t, s.DragTo("name", layout.Point{X: 100, Y: 25}))
	require.NoError(t, s.TransformBy("name", 2, 1.5))

	p := s.Placeholders()[0]
	assert.InDelta(t, 200, p.X, 1e-9)
	assert.InDelta(t, 50, p.Y, 1e-9)
	assert.InDelta(t, 600, p.Width, 1e-9)
	assert.InDelta(t, 75, p.Height, 1e-9)

	assert.ErrorIs(t, s.TransformBy("name", 0, 1), ErrInvalidGeometry)
	assert.ErrorIs(t, s.DragTo("missing", layout.Point{}), ErrNoSuchElement)
}

func TestStage_SurfaceResizeKeepsNativeGeometry(t *testing.T) {
	s := newStage(t)
	require.NoError(t, s.Add(placeholder("name", 100, 100, 300, 50, layout.AlignCenter)))
	before := s.Placeholders()

	require.NoError(t, s.SetSurface(layout.Size{Width: 1600, Height: 1200}))
	assert.Equal(t, before, s.Placeholders())
	assert.InDelta(t, 2, s.Transform().Scale, 1e-9)

	assert.ErrorIs(t, s.SetSurface(layout.Size{}), layout.ErrUndefinedTransform)
}

func TestStage_UpdateAndRemove(t *testing.T) {
	s := newStage(t)
	require.NoError(t, s.Add(placeholder("a", 0, 0, 100, 20, layout.AlignLeft)))
	require.NoError(t, s.Add(placeholder("b", 0, 40, 100, 20, layout.AlignLeft)))
	require.NoError(t, s.Select("a"))

	require.NoError(t, s.Update("a", func(p *layout.Placeholder) {
		p.Key = "title"
		p.FontSize = 48
		p.FontStyle = layout.FontStyle{Weight: layout.WeightBold, Slant: layout.SlantNormal}
	}))
	selected, ok := s.Selected()
	require.True(t, ok)
	assert.Equal(t, "title", selected)

	assert.ErrorIs(t, s.Update("title", func(p *layout.Placeholder) { p.Key = "b" }), ErrDuplicateKey)
	assert.ErrorIs(t, s.Update("title", func(p *layout.Placeholder) { p.FontSize = 0 }), ErrInvalidGeometry)
	assert.ErrorIs(t, s.Add(placeholder("b", 0, 0, 10, 10, layout.AlignLeft)), ErrDuplicateKey)

	require.NoError(t, s.Remove("title"))
	_, ok = s.Selected()
	assert.False(t, ok)
	assert.Equal(t, 1, s.Len())
}

func TestStage_RenderDrawsSelection(t *testing.T) {
	s := newStage(t)
	require.NoError(t, s.Add(placeholder("name", 100, 100, 300, 50, layout.AlignCenter)))
	require.NoError(t, s.Select("name"))

	img, placements, err := s.Render(newRegistry(t), nil, map[string]string{"name": "Ada Lovelace"})
	require.NoError(t, err)

	assert.Equal(t, 400, img.Bounds().Dx())
	require.Len(t, placements, 1)
	assert.Equal(t, "Ada Lovelace", placements[0].Text)
	assert.InDelta(t, 10, placements[0].Face.Size, 1e-9)
	assert.InDelta(t, 50+75, placements[0].Midpoint(), 1.0)
	assert.Equal(t, selectionOutline, img.NRGBAAt(50, 50))
}

func TestStage_FractionalSurfaceDrawsWhereItHits(t *testing.T) {
	s, err := NewStage(layout.Size{Width: 1600, Height: 1200}, layout.Size{Width: 800.6, Height: 600.4})
	require.NoError(t, err)
	assert.Equal(t, layout.Size{Width: 801, Height: 600}, s.Surface())

	require.NoError(t, s.Add(placeholder("name", 10, 10, 4, 4, layout.AlignLeft)))
	img, placements, err := s.Render(newRegistry(t), nil, map[string]string{"name": "A"})
	require.NoError(t, err)

	assert.Equal(t, 801, img.Bounds().Dx())
	assert.Equal(t, 600, img.Bounds().Dy())
	require.Len(t, placements, 1)
	drawn := placements[0].Box
	assert.Equal(t, s.Transform().Box(s.Placeholders()[0].Box()), drawn)

	key, ok := s.HitTest(layout.Point{X: drawn.X + drawn.Width/2, Y: drawn.Y + drawn.Height/2})
	require.True(t, ok)
	assert.Equal(t, "name", key)

	require.NoError(t, s.SetSurface(layout.Size{Width: 400.4, Height: 299.6}))
	assert.Equal(t, layout.Size{Width: 400, Height: 300}, s.Surface())
}
