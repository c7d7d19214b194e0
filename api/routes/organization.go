package routes

import (
	"github.com/gofiber/fiber/v2"
	organization_controller "github.com/sunthewhat/easy-cred-api/api/controllers/organization"
	"github.com/sunthewhat/easy-cred-api/api/middleware"
)

func SetupOrganizationRoutes(router fiber.Router, deps Dependencies) {
	organizationCtrl := organization_controller.NewOrganizationController(deps.Service)

	organizationGroup := router.Group("organization")

	organizationGroup.Use(middleware.Jwt(deps.JWTSecret))

	organizationGroup.Get("dashboard", organizationCtrl.Dashboard)
}
