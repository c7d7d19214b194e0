package auth_controller

import (
	"log/slog"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/sunthewhat/easy-cred-api/common/util"
	"github.com/sunthewhat/easy-cred-api/internal/apperror"
	"github.com/sunthewhat/easy-cred-api/type/payload"
	"github.com/sunthewhat/easy-cred-api/type/response"
	"github.com/sunthewhat/easy-cred-api/type/shared/model"
)

func (ac *AuthController) Register(c *fiber.Ctx) error {
	body := new(payload.RegisterPayload)

	if err := c.BodyParser(body); err != nil {
		return response.SendFailed(c, "Failed to parse body")
	}

	if err := util.ValidatePayload(body); err != nil {
		return err
	}

	email := strings.ToLower(strings.TrimSpace(body.Email))

	existing, err := ac.organizationRepo.GetByEmail(c.UserContext(), email)
	if err != nil {
		return apperror.Persistence(err, "Failed to check organization")
	}
	if existing != nil {
		return apperror.Validation("email", "Organization already exists")
	}

	hashedPassword, err := util.HashPassword(body.Password)
	if err != nil {
		slog.Error("Auth Register password hashing failed", "error", err)
		return response.SendError(c, "Password hashing failed")
	}

	org := &model.Organization{
		ID:       ac.newID(),
		Name:     strings.TrimSpace(body.Name),
		Email:    email,
		Password: hashedPassword,
	}
	if err := ac.organizationRepo.Create(c.UserContext(), org); err != nil {
		return apperror.Persistence(err, "Failed to create organization")
	}

	slog.Info("Auth Register successful", "organization_id", org.ID)
	return response.SendCreated(c, "Organization Registered", fiber.Map{
		"id":    org.ID,
		"name":  org.Name,
		"email": org.Email,
	})
}
