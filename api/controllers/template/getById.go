package template_controller

import (
	"github.com/gofiber/fiber/v2"
	"github.com/sunthewhat/easy-cred-api/api/middleware"
	"github.com/sunthewhat/easy-cred-api/internal/apperror"
	"github.com/sunthewhat/easy-cred-api/type/response"
)

func (tc *TemplateController) GetById(c *fiber.Ctx) error {
	organizationId, ok := middleware.GetOrganizationFromContext(c)
	if !ok {
		return apperror.Auth("Organization not authenticated")
	}

	tmpl, err := tc.service.GetTemplate(c.UserContext(), organizationId, c.Params("id"))
	if err != nil {
		return err
	}

	return response.SendSuccess(c, "Template fetched", tmpl)
}
