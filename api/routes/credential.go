package routes

import (
	"github.com/gofiber/fiber/v2"
	credential_controller "github.com/sunthewhat/easy-cred-api/api/controllers/credential"
	"github.com/sunthewhat/easy-cred-api/api/middleware"
)

func SetupCredentialRoutes(router fiber.Router, deps Dependencies) {
	credentialCtrl := credential_controller.NewCredentialController(deps.Service)

	credentialGroup := router.Group("credential")

	credentialGroup.Use(middleware.Jwt(deps.JWTSecret))

	credentialGroup.Get("", credentialCtrl.GetByOrganization)
	credentialGroup.Post("", credentialCtrl.Issue)
	credentialGroup.Get("recipient", credentialCtrl.GetByRecipient)
	credentialGroup.Get(":id", credentialCtrl.GetById)
	credentialGroup.Put(":id/revoke", credentialCtrl.Revoke)
}

// SetupPublicCredentialRoutes serves the verification surface without auth.
func SetupPublicCredentialRoutes(router fiber.Router, deps Dependencies) {
	credentialCtrl := credential_controller.NewCredentialController(deps.Service)

	publicGroup := router.Group("credential")

	publicGroup.Get(":id", credentialCtrl.Verify)
	publicGroup.Get(":id/artifact", credentialCtrl.Artifact)
	publicGroup.Get(":id/pdf", credentialCtrl.PDF)
}
