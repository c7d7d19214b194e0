// Package builder is the template authoring session: load a background,
// lay out placeholders on a resizable surface, then save once.
//
// A session is held by an interactive client embedding this module, not by
// the HTTP API. Stateless clients use POST /api/template/preview for drafts
// and POST /api/template to save; both end in the same engine calls a
// session makes.
package builder

import (
	"context"
	"errors"
	"fmt"
	"image"
	"log/slog"
	"strings"

	"github.com/sunthewhat/easy-cred-api/internal/apperror"
	"github.com/sunthewhat/easy-cred-api/internal/issuance"
	"github.com/sunthewhat/easy-cred-api/internal/layout"
	"github.com/sunthewhat/easy-cred-api/internal/renderer"
	"github.com/sunthewhat/easy-cred-api/type/shared/model"
)

type State int

const (
	StateEmpty State = iota
	StateImageLoaded
	StateEditing
	StateSaved
)

func (s State) String() string {
	switch s {
	case StateEmpty:
		return "empty"
	case StateImageLoaded:
		return "image-loaded"
	case StateEditing:
		return "editing"
	case StateSaved:
		return "saved"
	}
	return fmt.Sprintf("State(%d)", int(s))
}

var ErrInvalidTransition = errors.New("builder: operation not allowed in current state")

// Saver persists a finished template.
type Saver interface {
	CreateTemplate(ctx context.Context, ownerID string, in issuance.TemplateInput) (*model.Template, error)
}

// Builder is not safe for concurrent use; it belongs to one session.
type Builder struct {
	saver   Saver
	ownerID string
	surface layout.Size

	state      State
	name       string
	background []byte
	bgImage    image.Image
	stage      *renderer.Stage
	added      int
	saved      *model.Template
}

func New(saver Saver, ownerID string, surfaceW int, surfaceH int) *Builder {
	return &Builder{
		saver:   saver,
		ownerID: ownerID,
		surface: layout.Size{Width: float64(surfaceW), Height: float64(surfaceH)},
	}
}

func (b *Builder) State() State {
	return b.state
}

func (b *Builder) Name() string {
	return b.name
}

// Saved returns the persisted template once in StateSaved.
func (b *Builder) Saved() *model.Template {
	return b.saved
}

func (b *Builder) Placeholders() []layout.Placeholder {
	if b.stage == nil {
		return nil
	}
	return b.stage.Placeholders()
}

// Stage exposes hit testing and selection state to the caller.
func (b *Builder) Stage() *renderer.Stage {
	return b.stage
}

// LoadImage fixes the native resolution for the rest of the session.
func (b *Builder) LoadImage(background []byte) error {
	if b.state != StateEmpty {
		return fmt.Errorf("%w: load image in %s", ErrInvalidTransition, b.state)
	}
	img, native, err := renderer.DecodeBackground(background)
	if err != nil {
		return apperror.Render(err, "Background image could not be decoded")
	}
	stage, err := renderer.NewStage(native, b.surface)
	if err != nil {
		return err
	}
	b.background, b.bgImage, b.stage = background, img, stage
	b.state = StateImageLoaded
	return nil
}

// SetSurface follows a container resize.
func (b *Builder) SetSurface(width int, height int) error {
	b.surface = layout.Size{Width: float64(width), Height: float64(height)}
	if b.stage == nil {
		return nil
	}
	return b.stage.SetSurface(b.surface)
}

func (b *Builder) SetName(name string) error {
	if err := b.editable(); err != nil {
		return err
	}
	b.name = name
	return nil
}

// Add places a new placeholder at its native position.
func (b *Builder) Add(spec layout.PlaceholderSpec) error {
	return b.add(spec, nil)
}

// AddAt places a new placeholder with its top-left at a surface point.
func (b *Builder) AddAt(spec layout.PlaceholderSpec, at layout.Point) error {
	return b.add(spec, &at)
}

func (b *Builder) add(spec layout.PlaceholderSpec, at *layout.Point) error {
	if err := b.editable(); err != nil {
		return err
	}
	p, err := spec.Build(b.added)
	if err != nil {
		return err
	}
	if at != nil {
		err = b.stage.DropAt(p, *at)
	} else {
		err = b.stage.Add(p)
	}
	if err != nil {
		return err
	}
	b.added++
	b.state = StateEditing
	return nil
}

// Move drags a placeholder so its top-left lands on a surface point.
func (b *Builder) Move(key string, at layout.Point) error {
	return b.edit(func() error { return b.stage.DragTo(key, at) })
}

func (b *Builder) Resize(key string, scaleX float64, scaleY float64) error {
	return b.edit(func() error { return b.stage.TransformBy(key, scaleX, scaleY) })
}

func (b *Builder) Restyle(key string, fn func(p *layout.Placeholder)) error {
	return b.edit(func() error { return b.stage.Update(key, fn) })
}

func (b *Builder) Remove(key string) error {
	return b.edit(func() error { return b.stage.Remove(key) })
}

// Select picks the topmost placeholder under a surface point, or clears
// the selection when there is none.
func (b *Builder) Select(at layout.Point) (string, bool, error) {
	if err := b.editable(); err != nil {
		return "", false, err
	}
	key, ok := b.stage.HitTest(at)
	if !ok {
		b.stage.Deselect()
		return "", false, nil
	}
	return key, true, b.stage.Select(key)
}

func (b *Builder) edit(op func() error) error {
	if err := b.editable(); err != nil {
		return err
	}
	if err := op(); err != nil {
		return err
	}
	b.state = StateEditing
	return nil
}

// Render draws the session on the preview backend.
func (b *Builder) Render(fonts renderer.FaceSource, data map[string]string) (*image.NRGBA, []layout.Placement, error) {
	if b.stage == nil {
		return nil, nil, layout.ErrUndefinedTransform
	}
	return b.stage.Render(fonts, b.bgImage, data)
}

// Save submits the template. On failure the session stays editable.
func (b *Builder) Save(ctx context.Context) (*model.Template, error) {
	if err := b.editable(); err != nil {
		return nil, err
	}
	if strings.TrimSpace(b.name) == "" {
		return nil, apperror.Validation("name", "Template name is required")
	}
	placeholders := b.stage.Placeholders()
	if len(placeholders) == 0 {
		return nil, apperror.Validation("placeholders", "template must contain at least one placeholder")
	}

	specs := make([]layout.PlaceholderSpec, len(placeholders))
	for i, p := range placeholders {
		specs[i] = p.Spec()
	}
	tmpl, err := b.saver.CreateTemplate(ctx, b.ownerID, issuance.TemplateInput{
		Name:         b.name,
		Background:   b.background,
		Placeholders: specs,
	})
	if err != nil {
		return nil, err
	}

	b.saved = tmpl
	b.state = StateSaved
	slog.Info("Builder Save", "template_id", tmpl.ID, "owner_id", b.ownerID)
	return tmpl, nil
}

// Reset discards everything, including unsaved edits.
func (b *Builder) Reset() {
	*b = Builder{saver: b.saver, ownerID: b.ownerID, surface: b.surface}
}

func (b *Builder) editable() error {
	if b.state != StateImageLoaded && b.state != StateEditing {
		return fmt.Errorf("%w: edit in %s", ErrInvalidTransition, b.state)
	}
	return nil
}
