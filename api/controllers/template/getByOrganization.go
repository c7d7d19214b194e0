package template_controller

import (
	"github.com/gofiber/fiber/v2"
	"github.com/sunthewhat/easy-cred-api/api/middleware"
	"github.com/sunthewhat/easy-cred-api/internal/apperror"
	"github.com/sunthewhat/easy-cred-api/type/response"
)

func (tc *TemplateController) GetByOrganization(c *fiber.Ctx) error {
	organizationId, ok := middleware.GetOrganizationFromContext(c)
	if !ok {
		return apperror.Auth("Organization not authenticated")
	}

	templates, err := tc.service.ListTemplates(c.UserContext(), organizationId)
	if err != nil {
		return err
	}

	return response.SendSuccess(c, "Templates fetched", templates)
}
