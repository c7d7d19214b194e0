package auth_controller

import (
	"github.com/google/uuid"
	organizationmodel "github.com/sunthewhat/easy-cred-api/api/model/organizationModel"
)

// AuthController handles organization registration and login
type AuthController struct {
	organizationRepo organizationmodel.IOrganizationRepository
	jwtSecret        string
	newID            func() string
}

func NewAuthController(organizationRepo organizationmodel.IOrganizationRepository, jwtSecret string) *AuthController {
	return &AuthController{
		organizationRepo: organizationRepo,
		jwtSecret:        jwtSecret,
		newID:            uuid.NewString,
	}
}
