package template_controller

import (
	"log/slog"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/sunthewhat/easy-cred-api/api/middleware"
	"github.com/sunthewhat/easy-cred-api/common/util"
	"github.com/sunthewhat/easy-cred-api/internal/apperror"
	"github.com/sunthewhat/easy-cred-api/internal/issuance"
	"github.com/sunthewhat/easy-cred-api/type/payload"
	"github.com/sunthewhat/easy-cred-api/type/response"
)

func (tc *TemplateController) Create(c *fiber.Ctx) error {
	organizationId, ok := middleware.GetOrganizationFromContext(c)
	if !ok {
		return apperror.Auth("Organization not authenticated")
	}

	var (
		body       *payload.CreateTemplatePayload
		background []byte
		err        error
	)
	if strings.HasPrefix(c.Get(fiber.HeaderContentType), fiber.MIMEMultipartForm) {
		body, background, err = parseCreateForm(c)
		if err != nil {
			return err
		}
	} else {
		body = new(payload.CreateTemplatePayload)
		if err := c.BodyParser(body); err != nil {
			return response.SendFailed(c, "Failed to parse body")
		}
		background, err = decodeFile(body.File)
		if err != nil {
			return err
		}
	}

	if err := util.ValidatePayload(body); err != nil {
		return err
	}

	tmpl, err := tc.service.CreateTemplate(c.UserContext(), organizationId, issuance.TemplateInput{
		Name:          body.Name,
		Background:    background,
		BackgroundURL: body.FileURL,
		Placeholders:  body.Placeholders,
	})
	if err != nil {
		return err
	}

	slog.Info("Template Create controller", "template_id", tmpl.ID, "organization_id", organizationId)
	return response.SendCreated(c, "Template created", tmpl)
}
