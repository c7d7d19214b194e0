package auth_controller

import (
	"log/slog"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/sunthewhat/easy-cred-api/common/util"
	"github.com/sunthewhat/easy-cred-api/internal/apperror"
	"github.com/sunthewhat/easy-cred-api/type/payload"
	"github.com/sunthewhat/easy-cred-api/type/response"
)

func (ac *AuthController) Login(c *fiber.Ctx) error {
	body := new(payload.LoginPayload)

	if err := c.BodyParser(body); err != nil {
		return response.SendFailed(c, "Failed to parse body")
	}

	if err := util.ValidatePayload(body); err != nil {
		return err
	}

	email := strings.ToLower(strings.TrimSpace(body.Email))

	org, err := ac.organizationRepo.GetByEmail(c.UserContext(), email)
	if err != nil {
		return apperror.Persistence(err, "Failed to load organization")
	}
	if org == nil || !util.CheckPassword(body.Password, org.Password) {
		slog.Warn("Auth Login failed", "email", email)
		return apperror.Auth("Incorrect email or password")
	}

	authToken, err := util.GenerateAuthToken(org.ID, ac.jwtSecret)
	if err != nil {
		slog.Error("Auth Login JWT generation failed", "error", err, "organization_id", org.ID)
		return response.SendError(c, "Failed to generate JWT Token")
	}

	slog.Info("Auth Login successful", "organization_id", org.ID)
	return response.SendSuccess(c, "Login Successfully", fiber.Map{
		"token": authToken,
		"name":  org.Name,
	})
}
