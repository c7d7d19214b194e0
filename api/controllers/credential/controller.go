package credential_controller

import "github.com/sunthewhat/easy-cred-api/internal/issuance"

// CredentialController handles issuance, revocation and the public
// verification surface
type CredentialController struct {
	service issuance.IService
}

func NewCredentialController(service issuance.IService) *CredentialController {
	return &CredentialController{service: service}
}
