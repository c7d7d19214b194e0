package layout

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTransform(t *testing.T) {
	tests := []struct {
		name    string
		native  Size
		surface Size
		want    Transform
		wantErr error
	}{
		{
			name:    "same size is identity",
			native:  Size{800, 600},
			surface: Size{800, 600},
			want:    Transform{Scale: 1},
		},
		{
			name:    "wider surface letterboxes horizontally",
			native:  Size{800, 600},
			surface: Size{1000, 600},
			want:    Transform{Scale: 1, OffsetX: 100},
		},
		{
			name:    "taller surface letterboxes vertically",
			native:  Size{800, 600},
			surface: Size{400, 600},
			want:    Transform{Scale: 0.5, OffsetY: 150},
		},
		{
			name:    "upscale",
			native:  Size{400, 300},
			surface: Size{1200, 900},
			want:    Transform{Scale: 3},
		},
		{
			name:    "image not loaded",
			native:  Size{0, 600},
			surface: Size{800, 600},
			wantErr: ErrUndefinedTransform,
		},
		{
			name:    "surface not sized",
			native:  Size{800, 600},
			surface: Size{800, 0},
			wantErr: ErrUndefinedTransform,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NewTransform(tt.native, tt.surface)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.InDelta(t, tt.want.Scale, got.Scale, 1e-9)
			assert.InDelta(t, tt.want.OffsetX, got.OffsetX, 1e-9)
			assert.InDelta(t, tt.want.OffsetY, got.OffsetY, 1e-9)
		})
	}
}

func TestTransform_RoundTrip(t *testing.T) {
	natives := []Size{{800, 600}, {2480, 3508}, {1, 1}, {333, 777}}
	surfaces := []Size{{800, 600}, {1024, 768}, {375, 812}, {97, 1301}}
	points := []Point{{0, 0}, {100, 100}, {799.5, 12.25}, {1e4, 3.3}}

	for _, n := range natives {
		for _, s := range surfaces {
			tr, err := NewTransform(n, s)
			require.NoError(t, err)
			for _, p := range points {
				back := tr.Inverse(tr.Forward(p))
				assert.InDelta(t, p.X, back.X, 1e-9)
				assert.InDelta(t, p.Y, back.Y, 1e-9)
			}
		}
	}
}

func TestTransform_BoxKeepsPositiveSize(t *testing.T) {
	tr, err := NewTransform(Size{800, 600}, Size{123, 457})
	require.NoError(t, err)

	b := tr.Box(Box{X: 100, Y: 100, Width: 300, Height: 50})
	assert.Greater(t, b.Width, 0.0)
	assert.Greater(t, b.Height, 0.0)
	assert.InDelta(t, 300.0/50.0, b.Width/b.Height, 1e-9, "uniform scale keeps aspect")

	back := tr.InverseBox(b)
	assert.InDelta(t, 100, back.X, 1e-9)
	assert.InDelta(t, 300, back.Width, 1e-9)
}

func TestTransform_ImageFitsSurface(t *testing.T) {
	tr, err := NewTransform(Size{800, 600}, Size{500, 500})
	require.NoError(t, err)

	img := tr.Image(Size{800, 600})
	assert.InDelta(t, 0, img.X, 1e-9)
	assert.InDelta(t, 500, img.Width, 1e-9)
	assert.InDelta(t, 375, img.Height, 1e-9)
	assert.InDelta(t, 62.5, img.Y, 1e-9)
}
