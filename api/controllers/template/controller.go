package template_controller

import "github.com/sunthewhat/easy-cred-api/internal/issuance"

// TemplateController serves template authoring, listing and previews
type TemplateController struct {
	service issuance.IService
}

func NewTemplateController(service issuance.IService) *TemplateController {
	return &TemplateController{service: service}
}
