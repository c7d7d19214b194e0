package template_controller

import (
	"github.com/gofiber/fiber/v2"
	"github.com/sunthewhat/easy-cred-api/api/middleware"
	"github.com/sunthewhat/easy-cred-api/common/util"
	"github.com/sunthewhat/easy-cred-api/internal/apperror"
	"github.com/sunthewhat/easy-cred-api/internal/layout"
	"github.com/sunthewhat/easy-cred-api/type/payload"
	"github.com/sunthewhat/easy-cred-api/type/response"
)

// defaultPreviewWidth with a zero height keeps the template's aspect ratio.
const defaultPreviewWidth = 800

// Preview renders a stored template at ?width=&height= with labels in place
// of recipient data.
func (tc *TemplateController) Preview(c *fiber.Ctx) error {
	organizationId, ok := middleware.GetOrganizationFromContext(c)
	if !ok {
		return apperror.Auth("Organization not authenticated")
	}

	width := c.QueryInt("width", defaultPreviewWidth)
	height := c.QueryInt("height", 0)

	img, err := tc.service.PreviewTemplate(c.UserContext(), organizationId, c.Params("id"), width, height)
	if err != nil {
		return err
	}

	return response.SendBlob(c, "image/png", img)
}

// PreviewDraft renders placeholders that have not been saved yet.
func (tc *TemplateController) PreviewDraft(c *fiber.Ctx) error {
	if _, ok := middleware.GetOrganizationFromContext(c); !ok {
		return apperror.Auth("Organization not authenticated")
	}

	body := new(payload.PreviewDraftPayload)
	if err := c.BodyParser(body); err != nil {
		return response.SendFailed(c, "Failed to parse body")
	}
	if err := util.ValidatePayload(body); err != nil {
		return err
	}

	background, err := decodeFile(body.File)
	if err != nil {
		return err
	}
	placeholders, err := layout.BuildAll(body.Placeholders)
	if err != nil {
		return err
	}

	img, err := tc.service.PreviewDraft(c.UserContext(), background, placeholders, body.Width, body.Height)
	if err != nil {
		return err
	}

	return response.SendBlob(c, "image/png", img)
}

func (tc *TemplateController) Thumbnail(c *fiber.Ctx) error {
	organizationId, ok := middleware.GetOrganizationFromContext(c)
	if !ok {
		return apperror.Auth("Organization not authenticated")
	}

	img, err := tc.service.Thumbnail(c.UserContext(), organizationId, c.Params("id"))
	if err != nil {
		return err
	}

	return response.SendBlob(c, "image/jpeg", img)
}
