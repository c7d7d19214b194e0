package organization_controller

import (
	"github.com/gofiber/fiber/v2"
	"github.com/sunthewhat/easy-cred-api/api/middleware"
	"github.com/sunthewhat/easy-cred-api/internal/apperror"
	"github.com/sunthewhat/easy-cred-api/internal/issuance"
	"github.com/sunthewhat/easy-cred-api/type/response"
)

type OrganizationController struct {
	service issuance.IService
}

func NewOrganizationController(service issuance.IService) *OrganizationController {
	return &OrganizationController{service: service}
}

func (oc *OrganizationController) Dashboard(c *fiber.Ctx) error {
	organizationId, ok := middleware.GetOrganizationFromContext(c)
	if !ok {
		return apperror.Auth("Organization not authenticated")
	}

	stats, err := oc.service.Dashboard(c.UserContext(), organizationId)
	if err != nil {
		return err
	}

	return response.SendSuccess(c, "Dashboard fetched", stats)
}
