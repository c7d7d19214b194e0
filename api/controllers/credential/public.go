package credential_controller

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/sunthewhat/easy-cred-api/type/response"
)

// Verify answers 404 with {valid:false} for absent or revoked credentials.
func (cc *CredentialController) Verify(c *fiber.Ctx) error {
	result, err := cc.service.VerifyCredential(c.UserContext(), c.Params("id"))
	if err != nil {
		return err
	}
	if !result.Valid {
		return response.SendNotFound(c, "Credential is not valid", result)
	}

	return response.SendSuccess(c, "Credential is valid", result)
}

func (cc *CredentialController) Artifact(c *fiber.Ctx) error {
	b, contentType, err := cc.service.Artifact(c.UserContext(), c.Params("id"))
	if err != nil {
		return err
	}

	return response.SendBlob(c, contentType, b)
}

func (cc *CredentialController) PDF(c *fiber.Ctx) error {
	id := c.Params("id")
	b, err := cc.service.ExportPDF(c.UserContext(), id)
	if err != nil {
		return err
	}

	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`inline; filename="credential-%s.pdf"`, id))
	return response.SendBlob(c, "application/pdf", b)
}
