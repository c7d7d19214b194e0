package credential_controller

import (
	"log/slog"

	"github.com/gofiber/fiber/v2"
	"github.com/sunthewhat/easy-cred-api/api/middleware"
	"github.com/sunthewhat/easy-cred-api/common/util"
	"github.com/sunthewhat/easy-cred-api/internal/apperror"
	"github.com/sunthewhat/easy-cred-api/internal/issuance"
	"github.com/sunthewhat/easy-cred-api/type/payload"
	"github.com/sunthewhat/easy-cred-api/type/response"
)

func (cc *CredentialController) Issue(c *fiber.Ctx) error {
	organizationId, ok := middleware.GetOrganizationFromContext(c)
	if !ok {
		return apperror.Auth("Organization not authenticated")
	}

	body := new(payload.IssueCredentialPayload)
	if err := c.BodyParser(body); err != nil {
		return response.SendFailed(c, "Failed to parse body")
	}
	if err := util.ValidatePayload(body); err != nil {
		return err
	}

	result, err := cc.service.IssueCredential(c.UserContext(), organizationId, issuance.IssueInput{
		TemplateID: body.TemplateID,
		Recipient:  body.Recipient,
		Data:       body.Data,
	})
	if err != nil {
		return err
	}

	slog.Info("Credential Issue controller", "credential_id", result.CredentialID, "template_id", body.TemplateID)
	return response.SendCreated(c, "Credential issued", result)
}
