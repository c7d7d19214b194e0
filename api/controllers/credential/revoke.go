package credential_controller

import (
	"github.com/gofiber/fiber/v2"
	"github.com/sunthewhat/easy-cred-api/api/middleware"
	"github.com/sunthewhat/easy-cred-api/internal/apperror"
	"github.com/sunthewhat/easy-cred-api/type/response"
)

// Revoke is idempotent: revoking twice succeeds both times.
func (cc *CredentialController) Revoke(c *fiber.Ctx) error {
	organizationId, ok := middleware.GetOrganizationFromContext(c)
	if !ok {
		return apperror.Auth("Organization not authenticated")
	}

	cred, err := cc.service.RevokeCredential(c.UserContext(), organizationId, c.Params("id"))
	if err != nil {
		return err
	}

	return response.SendSuccess(c, "Credential revoked successfully", cred)
}
