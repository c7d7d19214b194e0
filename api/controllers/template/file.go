package template_controller

import (
	"encoding/base64"
	"encoding/json"
	"io"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/sunthewhat/easy-cred-api/internal/apperror"
	"github.com/sunthewhat/easy-cred-api/internal/layout"
	"github.com/sunthewhat/easy-cred-api/type/payload"
)

const maxUploadBytes = 15 * 1024 * 1024

// decodeFile accepts raw base64 or a data URL ("data:image/png;base64,...").
func decodeFile(s string) ([]byte, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	if strings.HasPrefix(s, "data:") {
		_, encoded, ok := strings.Cut(s, ",")
		if !ok {
			return nil, apperror.Validation("file", "Malformed data URL")
		}
		s = encoded
	}
	b, err := base64.StdEncoding.DecodeString(s)
	if err != nil {
		return nil, apperror.Validation("file", "File must be base64 encoded")
	}
	if len(b) > maxUploadBytes {
		return nil, apperror.Validation("file", "File size too large (15MB max)")
	}
	return b, nil
}

// parseCreateForm reads a multipart create request: "name", "fileUrl",
// "placeholders" (JSON array) and an optional "image" file part.
func parseCreateForm(c *fiber.Ctx) (*payload.CreateTemplatePayload, []byte, error) {
	body := &payload.CreateTemplatePayload{
		Name:    c.FormValue("name"),
		FileURL: c.FormValue("fileUrl"),
	}
	if raw := c.FormValue("placeholders"); raw != "" {
		var specs []layout.PlaceholderSpec
		if err := json.Unmarshal([]byte(raw), &specs); err != nil {
			return nil, nil, apperror.Validation("placeholders", "Placeholders must be a JSON array")
		}
		body.Placeholders = specs
	}

	fh, err := c.FormFile("image")
	if err != nil {
		return body, nil, nil
	}
	if fh.Size > maxUploadBytes {
		return nil, nil, apperror.Validation("file", "File size too large (15MB max)")
	}
	f, err := fh.Open()
	if err != nil {
		return nil, nil, apperror.Validation("file", "Failed to read uploaded file")
	}
	defer f.Close()
	b, err := io.ReadAll(f)
	if err != nil {
		return nil, nil, apperror.Validation("file", "Failed to read uploaded file")
	}
	return body, b, nil
}
