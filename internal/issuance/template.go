package issuance

import (
	"context"
	"errors"
	"fmt"
	"image"
	"log/slog"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"github.com/sunthewhat/easy-cred-api/internal/apperror"
	"github.com/sunthewhat/easy-cred-api/internal/layout"
	"github.com/sunthewhat/easy-cred-api/internal/renderer"
	"github.com/sunthewhat/easy-cred-api/type/shared/model"
)

// TemplateInput carries a new template. Exactly one of Background and
// BackgroundURL is expected; Background wins when both are set.
type TemplateInput struct {
	Name          string
	Background    []byte
	BackgroundURL string
	Placeholders  []layout.PlaceholderSpec
}

// CreateTemplate validates the layout, stores the background and writes the
// template record. A thumbnail is attempted afterwards and never fails the
// call.
func (e *Engine) CreateTemplate(ctx context.Context, ownerID string, in TemplateInput) (*model.Template, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, apperror.Validation("name", "Template name is required")
	}
	placeholders, err := layout.BuildAll(in.Placeholders)
	if err != nil {
		return nil, err
	}
	if err := layout.Validate(placeholders, e.deps.Fonts); err != nil {
		return nil, err
	}

	background, err := e.backgroundBytes(ctx, in)
	if err != nil {
		return nil, err
	}
	bgImage, native, err := e.decodeBackground(background)
	if err != nil {
		return nil, err
	}

	templateID := e.cfg.NewID()
	contentType := mimetype.Detect(background).String()
	backgroundRef, err := e.deps.Blobs.Put(ctx, e.cfg.ResourceBucket, fmt.Sprintf("backgrounds/%s", templateID), background, contentType)
	if err != nil {
		return nil, apperror.Persistence(err, "Failed to store background image")
	}

	tmpl := &model.Template{
		ID:            templateID,
		OwnerID:       ownerID,
		Name:          name,
		BackgroundRef: backgroundRef,
		NativeWidth:   int(native.Width),
		NativeHeight:  int(native.Height),
		Placeholders:  placeholders,
		CreatedAt:     e.cfg.Now(),
	}
	if err := e.deps.Templates.Create(ctx, tmpl); err != nil {
		e.removeBlob(ctx, backgroundRef)
		return nil, apperror.Persistence(err, "Failed to save template")
	}

	if thumb, err := e.renderer.Thumbnail(ctx, tmpl.Document(), bgImage); err != nil {
		slog.Warn("Issuance CreateTemplate thumbnail render failed", "error", err, "template_id", templateID)
	} else if ref, err := e.deps.Blobs.Put(ctx, e.cfg.ResourceBucket, fmt.Sprintf("thumbnails/%s.%s", templateID, thumb.Extension), thumb.Data, thumb.ContentType); err != nil {
		slog.Warn("Issuance CreateTemplate thumbnail upload failed", "error", err, "template_id", templateID)
	} else if err := e.deps.Templates.SetThumbnail(ctx, templateID, ref); err != nil {
		slog.Warn("Issuance CreateTemplate thumbnail link failed", "error", err, "template_id", templateID)
		e.removeBlob(ctx, ref)
	} else {
		tmpl.ThumbnailRef = ref
	}

	slog.Info("Issuance CreateTemplate", "template_id", templateID, "owner_id", ownerID, "placeholders", len(placeholders), "native_width", tmpl.NativeWidth, "native_height", tmpl.NativeHeight)
	return tmpl, nil
}

func (e *Engine) backgroundBytes(ctx context.Context, in TemplateInput) ([]byte, error) {
	if len(in.Background) > 0 {
		return in.Background, nil
	}
	if in.BackgroundURL == "" {
		return nil, apperror.Validation("file", "Background image is required")
	}
	if e.deps.Fetcher == nil {
		return nil, apperror.Validation("fileUrl", "Remote background images are not supported")
	}
	b, err := e.deps.Fetcher.Fetch(ctx, in.BackgroundURL)
	if err != nil {
		return nil, apperror.Render(err, "Background image could not be downloaded")
	}
	return b, nil
}

func (e *Engine) ListTemplates(ctx context.Context, ownerID string) ([]*model.Template, error) {
	templates, err := e.deps.Templates.GetByOwner(ctx, ownerID)
	if err != nil {
		return nil, apperror.Persistence(err, "Failed to list templates")
	}
	if templates == nil {
		templates = []*model.Template{}
	}
	return templates, nil
}

// GetTemplate hides templates of other organizations behind NotFound.
func (e *Engine) GetTemplate(ctx context.Context, ownerID string, templateID string) (*model.Template, error) {
	tmpl, err := e.deps.Templates.GetById(ctx, templateID)
	if err != nil {
		return nil, apperror.Persistence(err, "Failed to load template")
	}
	if tmpl == nil || tmpl.OwnerID != ownerID {
		return nil, apperror.NotFound("Template not found")
	}
	return tmpl, nil
}

// PreviewTemplate renders a stored template on the preview backend. Zero
// width or height follows the native aspect ratio.
func (e *Engine) PreviewTemplate(ctx context.Context, ownerID string, templateID string, width int, height int) ([]byte, error) {
	if err := checkPreviewSize(width, height); err != nil {
		return nil, err
	}
	tmpl, err := e.GetTemplate(ctx, ownerID, templateID)
	if err != nil {
		return nil, err
	}
	bg, err := e.loadBackground(ctx, tmpl)
	if err != nil {
		return nil, err
	}
	artifact, err := e.renderer.RenderPreview(ctx, tmpl.Document(), bg, nil, width, height)
	if err != nil {
		return nil, renderFailure(err)
	}
	return artifact.Data, nil
}

// PreviewDraft renders placeholders that have not been saved yet.
func (e *Engine) PreviewDraft(ctx context.Context, background []byte, placeholders []layout.Placeholder, width int, height int) ([]byte, error) {
	if err := checkPreviewSize(width, height); err != nil {
		return nil, err
	}
	if len(background) == 0 {
		return nil, apperror.Validation("file", "Background image is required")
	}
	if err := layout.Validate(placeholders, e.deps.Fonts); err != nil {
		return nil, err
	}
	bg, native, err := e.decodeBackground(background)
	if err != nil {
		return nil, err
	}
	doc := layout.Document{Native: native, Placeholders: placeholders}
	artifact, err := e.renderer.RenderPreview(ctx, doc, bg, nil, width, height)
	if err != nil {
		return nil, renderFailure(err)
	}
	return artifact.Data, nil
}

// Thumbnail returns the stored thumbnail of an owned template.
func (e *Engine) Thumbnail(ctx context.Context, ownerID string, templateID string) ([]byte, error) {
	tmpl, err := e.GetTemplate(ctx, ownerID, templateID)
	if err != nil {
		return nil, err
	}
	if tmpl.ThumbnailRef == "" {
		return nil, apperror.NotFound("Thumbnail not available")
	}
	b, err := e.deps.Blobs.Get(ctx, tmpl.ThumbnailRef)
	if err != nil {
		return nil, apperror.Persistence(err, "Failed to load thumbnail")
	}
	return b, nil
}

func (e *Engine) loadBackground(ctx context.Context, tmpl *model.Template) (image.Image, error) {
	b, err := e.deps.Blobs.Get(ctx, tmpl.BackgroundRef)
	if err != nil {
		return nil, apperror.Persistence(err, "Failed to load background image")
	}
	bg, _, err := e.decodeBackground(b)
	if err != nil {
		return nil, err
	}
	return bg, nil
}

func (e *Engine) decodeBackground(b []byte) (image.Image, layout.Size, error) {
	img, native, err := renderer.DecodeBackgroundLimit(b, e.cfg.Render.MaxPixels)
	if errors.Is(err, renderer.ErrTooManyPixels) {
		return nil, native, apperror.Validation("file", "Background image resolution is too large")
	}
	if err != nil {
		return nil, native, apperror.Render(err, "Background image could not be decoded")
	}
	return img, native, nil
}

func checkPreviewSize(width int, height int) error {
	if width < 0 || height < 0 || width > maxPreviewSide || height > maxPreviewSide {
		return apperror.Validation("size", "Preview size must be between 0 and %d", maxPreviewSide)
	}
	return nil
}

// renderFailure keeps taxonomy errors and cancellations as they are and
// files everything else under RenderError.
func renderFailure(err error) error {
	var appErr *apperror.Error
	if errors.As(err, &appErr) || errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return err
	}
	return apperror.Render(err, "Rendering failed")
}

func (e *Engine) removeBlob(ctx context.Context, ref string) {
	if err := e.deps.Blobs.Remove(context.WithoutCancel(ctx), ref); err != nil {
		slog.Error("Issuance cleanup failed", "error", err, "ref", ref)
	}
}
