package util

import (
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/sunthewhat/easy-cred-api/type/shared"
)

const authTokenTTL = time.Hour * 24 * 2

// GenerateAuthToken signs an organization session token.
func GenerateAuthToken(organizationId string, secret string) (string, error) {
	now := time.Now()

	claims := &shared.OrganizationClaims{
		OrganizationId: &organizationId,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(authTokenTTL)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	return token.SignedString([]byte(secret))
}
