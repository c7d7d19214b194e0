package middleware

import (
	"log/slog"

	"github.com/gofiber/fiber/v2"
	jwtware "github.com/gofiber/jwt/v3"
	"github.com/golang-jwt/jwt/v4"
	"github.com/sunthewhat/easy-cred-api/internal/apperror"
	"github.com/sunthewhat/easy-cred-api/type/shared"
)

// Jwt authenticates the calling organization and stores its id under
// "organization_id".
func Jwt(secret string) fiber.Handler {
	conf := jwtware.Config{
		SigningKey:  []byte(secret),
		TokenLookup: "header:Authorization",
		AuthScheme:  "Bearer",
		ContextKey:  "auth",
		Claims:      new(shared.OrganizationClaims),
		SuccessHandler: func(c *fiber.Ctx) error {
			token, ok := c.Locals("auth").(*jwt.Token)
			if !ok {
				return apperror.Auth("JWT validation failure")
			}
			claims, ok := token.Claims.(*shared.OrganizationClaims)
			if !ok || claims.OrganizationId == nil || *claims.OrganizationId == "" {
				return apperror.Auth("JWT validation failure")
			}
			c.Locals("organization_id", *claims.OrganizationId)
			return c.Next()
		},
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			slog.Warn("Jwt validation failed", "error", err, "path", c.Path(), "ip", c.IP())
			return apperror.Auth("JWT validation failure")
		},
	}
	return jwtware.New(conf)
}
