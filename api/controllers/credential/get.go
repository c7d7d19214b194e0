package credential_controller

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/sunthewhat/easy-cred-api/api/middleware"
	"github.com/sunthewhat/easy-cred-api/internal/apperror"
	"github.com/sunthewhat/easy-cred-api/type/response"
)

func (cc *CredentialController) GetByOrganization(c *fiber.Ctx) error {
	organizationId, ok := middleware.GetOrganizationFromContext(c)
	if !ok {
		return apperror.Auth("Organization not authenticated")
	}

	creds, err := cc.service.ListCredentials(c.UserContext(), organizationId)
	if err != nil {
		return err
	}

	return response.SendSuccess(c, "Credentials fetched", creds)
}

func (cc *CredentialController) GetById(c *fiber.Ctx) error {
	organizationId, ok := middleware.GetOrganizationFromContext(c)
	if !ok {
		return apperror.Auth("Organization not authenticated")
	}

	cred, err := cc.service.GetCredential(c.UserContext(), organizationId, c.Params("id"))
	if err != nil {
		return err
	}

	return response.SendSuccess(c, "Credential fetched", cred)
}

// GetByRecipient lists ids of credentials the caller issued to ?email=.
func (cc *CredentialController) GetByRecipient(c *fiber.Ctx) error {
	organizationId, ok := middleware.GetOrganizationFromContext(c)
	if !ok {
		return apperror.Auth("Organization not authenticated")
	}

	email := strings.TrimSpace(c.Query("email"))
	if email == "" {
		return apperror.Validation("email", "email is required")
	}

	ids, err := cc.service.RecipientCredentials(c.UserContext(), organizationId, email)
	if err != nil {
		return err
	}

	return response.SendSuccess(c, "Credentials fetched", fiber.Map{
		"email":       email,
		"credentials": ids,
	})
}
