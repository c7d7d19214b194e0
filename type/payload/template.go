package payload

import "github.com/sunthewhat/easy-cred-api/internal/layout"

// CreateTemplatePayload carries the background either inline in File
// (base64 or a data URL) or as a remote FileURL.
type CreateTemplatePayload struct {
	Name         string                   `json:"name" validate:"required,max=200"`
	File         string                   `json:"file"`
	FileURL      string                   `json:"fileUrl" validate:"omitempty,url"`
	Placeholders []layout.PlaceholderSpec `json:"placeholders"`
}

type PreviewDraftPayload struct {
	File         string                   `json:"file" validate:"required"`
	Placeholders []layout.PlaceholderSpec `json:"placeholders"`
	Width        int                      `json:"width" validate:"min=0"`
	Height       int                      `json:"height" validate:"min=0"`
}
