package shared

import "github.com/golang-jwt/jwt/v4"

type OrganizationClaims struct {
	OrganizationId *string `json:"organizationId"`
	jwt.RegisteredClaims
}
