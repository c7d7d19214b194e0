package middleware

import (
	"github.com/gofiber/fiber/v2"
)

// GetOrganizationFromContext extracts the caller's organization id set by Jwt.
func GetOrganizationFromContext(c *fiber.Ctx) (string, bool) {
	if orgID := c.Locals("organization_id"); orgID != nil {
		if id, ok := orgID.(string); ok && id != "" {
			return id, true
		}
	}
	return "", false
}
