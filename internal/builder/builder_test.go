package builder

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/sunthewhat/easy-cred-api/internal/apperror"
	"github.com/sunthewhat/easy-cred-api/internal/fonts"
	"github.com/sunthewhat/easy-cred-api/internal/issuance"
	"github.com/sunthewhat/easy-cred-api/internal/layout"
	"github.com/sunthewhat/easy-cred-api/internal/renderer"
	"github.com/sunthewhat/easy-cred-api/type/shared/model"
)

func whitePNG(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for i := range img.Pix {
		img.Pix[i] = 0xff
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func ptr[T any](v T) *T { return &v }

func loaded(t *testing.T, saver Saver) *Builder {
	t.Helper()
	b := New(saver, "org-1", 400, 300)
	require.NoError(t, b.LoadImage(whitePNG(t, 800, 600)))
	return b
}

func TestBuilder_Transitions(t *testing.T) {
	saver := &issuance.MockService{
		CreateTemplateFunc: func(ctx context.Context, ownerID string, in issuance.TemplateInput) (*model.Template, error) {
			return &model.Template{ID: "tmpl-1", OwnerID: ownerID, Name: in.Name}, nil
		},
	}
	b := New(saver, "org-1", 400, 300)
	assert.Equal(t, StateEmpty, b.State())
	assert.ErrorIs(t, b.Add(layout.PlaceholderSpec{Key: "name"}), ErrInvalidTransition)

	require.NoError(t, b.LoadImage(whitePNG(t, 800, 600)))
	assert.Equal(t, StateImageLoaded, b.State())
	assert.ErrorIs(t, b.LoadImage(whitePNG(t, 10, 10)), ErrInvalidTransition)

	require.NoError(t, b.SetName("Course completion"))
	require.NoError(t, b.Add(layout.PlaceholderSpec{Key: "name", X: 100, Y: 100}))
	assert.Equal(t, StateEditing, b.State())

	tmpl, err := b.Save(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "tmpl-1", tmpl.ID)
	assert.Equal(t, StateSaved, b.State())
	assert.Same(t, tmpl, b.Saved())
	assert.ErrorIs(t, b.Move("name", layout.Point{}), ErrInvalidTransition)

	b.Reset()
	assert.Equal(t, StateEmpty, b.State())
	assert.Empty(t, b.Placeholders())
	assert.Empty(t, b.Name())
}

func TestBuilder_SaveValidates(t *testing.T) {
	called := false
	saver := &issuance.MockService{
		CreateTemplateFunc: func(ctx context.Context, ownerID string, in issuance.TemplateInput) (*model.Template, error) {
			called = true
			return &model.Template{ID: "tmpl-1"}, nil
		},
	}
	b := loaded(t, saver)

	_, err := b.Save(context.Background())
	assert.Equal(t, "name", apperror.FieldOf(err))

	require.NoError(t, b.SetName("Untitled"))
	_, err = b.Save(context.Background())
	assert.Equal(t, "placeholders", apperror.FieldOf(err))
	assert.False(t, called)
	assert.Equal(t, StateImageLoaded, b.State())
}

func TestBuilder_SaveFailureKeepsEdits(t *testing.T) {
	saver := &issuance.MockService{
		CreateTemplateFunc: func(ctx context.Context, ownerID string, in issuance.TemplateInput) (*model.Template, error) {
			return nil, apperror.Persistence(errors.New("timeout"), "Failed to save template")
		},
	}
	b := loaded(t, saver)
	require.NoError(t, b.SetName("Course"))
	require.NoError(t, b.Add(layout.PlaceholderSpec{Key: "name"}))

	_, err := b.Save(context.Background())
	assert.ErrorIs(t, err, apperror.ErrPersistence)
	assert.Equal(t, StateEditing, b.State())
	assert.Len(t, b.Placeholders(), 1)
}

func TestBuilder_SurfaceEditsLandInNativeSpace(t *testing.T) {
	var submitted issuance.TemplateInput
	saver := &issuance.MockService{
		CreateTemplateFunc: func(ctx context.Context, ownerID string, in issuance.TemplateInput) (*model.Template, error) {
			submitted = in
			return &model.Template{ID: "tmpl-1"}, nil
		},
	}
	b := loaded(t, saver)
	require.NoError(t, b.SetName("Course"))

	// surface is half of native, so surface (50, 50) is native (100, 100)
	require.NoError(t, b.AddAt(layout.PlaceholderSpec{Key: "name", Width: ptr(300.0)}, layout.Point{X: 50, Y: 50}))
	require.NoError(t, b.AddAt(layout.PlaceholderSpec{Key: "course"}, layout.Point{X: 50, Y: 150}))

	key, ok, err := b.Select(layout.Point{X: 60, Y: 55})
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "name", key)

	require.NoError(t, b.Move("name", layout.Point{X: 100, Y: 25}))
	require.NoError(t, b.Resize("name", 1, 2))
	require.NoError(t, b.Restyle("course", func(p *layout.Placeholder) {
		p.Align = layout.AlignRight
		p.FontStyle = layout.FontStyle{Weight: layout.WeightBold, Slant: layout.SlantNormal}
	}))

	// resizing the view must not move anything in native space
	require.NoError(t, b.SetSurface(1600, 1200))

	_, err = b.Save(context.Background())
	require.NoError(t, err)

	require.Len(t, submitted.Placeholders, 2)
	name, err := submitted.Placeholders[0].Build(0)
	require.NoError(t, err)
	assert.InDelta(t, 200, name.X, 1e-9)
	assert.InDelta(t, 50, name.Y, 1e-9)
	assert.InDelta(t, 300, name.Width, 1e-9)
	assert.InDelta(t, 100, name.Height, 1e-9)
	assert.Equal(t, "Placeholder 1", name.Label)

	course, err := submitted.Placeholders[1].Build(1)
	require.NoError(t, err)
	assert.Equal(t, layout.AlignRight, course.Align)
	assert.True(t, course.FontStyle.Bold())
	assert.Equal(t, "Placeholder 2", course.Label)
	assert.NotEmpty(t, submitted.Background)
}

func TestBuilder_RemoveAndDuplicate(t *testing.T) {
	b := loaded(t, &issuance.MockService{})
	require.NoError(t, b.Add(layout.PlaceholderSpec{Key: "name"}))
	assert.ErrorIs(t, b.Add(layout.PlaceholderSpec{Key: "name"}), renderer.ErrDuplicateKey)
	require.NoError(t, b.Remove("name"))
	assert.ErrorIs(t, b.Remove("name"), renderer.ErrNoSuchElement)
	assert.Empty(t, b.Placeholders())
}

func TestBuilder_Render(t *testing.T) {
	reg, err := fonts.NewRegistry(fonts.Config{Family: "Arial"})
	require.NoError(t, err)

	b := New(&issuance.MockService{}, "org-1", 400, 300)
	_, _, err = b.Render(reg, nil)
	assert.ErrorIs(t, err, layout.ErrUndefinedTransform)

	require.NoError(t, b.LoadImage(whitePNG(t, 800, 600)))
	require.NoError(t, b.Add(layout.PlaceholderSpec{Key: "name", X: 100, Y: 100, Width: ptr(300.0), Label: ptr("Recipient")}))

	img, placements, err := b.Render(reg, nil)
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 400, 300), img.Bounds())
	require.Len(t, placements, 1)
	assert.Equal(t, "Recipient", placements[0].Text)
	assert.InDelta(t, 10, placements[0].Face.Size, 1e-9)
}
