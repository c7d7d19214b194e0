package routes

import (
	"github.com/gofiber/fiber/v2"
	organizationmodel "github.com/sunthewhat/easy-cred-api/api/model/organizationModel"
	"github.com/sunthewhat/easy-cred-api/internal/issuance"
)

// Dependencies are the collaborators every controller is built from.
type Dependencies struct {
	Service       issuance.IService
	Organizations organizationmodel.IOrganizationRepository
	JWTSecret     string
}

func Init(router fiber.Router, deps Dependencies) {
	api := router.Group("api")

	publicGroup := api.Group("public")
	SetupAuthRoutes(publicGroup, deps)
	SetupPublicCredentialRoutes(publicGroup, deps)

	SetupTemplateRoutes(api, deps)
	SetupCredentialRoutes(api, deps)
	SetupOrganizationRoutes(api, deps)
}
