package payload

type IssueCredentialPayload struct {
	TemplateID string            `json:"templateId" validate:"required"`
	Recipient  string            `json:"recipient" validate:"required"`
	Data       map[string]string `json:"data"`
}
