package handler_test

import (
	"encoding/json"
	"errors"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/sunthewhat/easy-cred-api/api/handler"
	"github.com/sunthewhat/easy-cred-api/internal/apperror"
)

func TestHandleError(t *testing.T) {
	tests := []struct {
		name           string
		err            error
		wantStatusCode int
		wantMessage    string
		wantField      any
	}{
		{
			name:           "validation names the field",
			err:            apperror.Validation("name", "Missing data for placeholder name"),
			wantStatusCode: fiber.StatusBadRequest,
			wantMessage:    "Missing data for placeholder name",
			wantField:      "name",
		},
		{
			name:           "not found",
			err:            apperror.NotFound("Template not found"),
			wantStatusCode: fiber.StatusNotFound,
			wantMessage:    "Template not found",
		},
		{
			name:           "auth",
			err:            apperror.Auth("JWT validation failure"),
			wantStatusCode: fiber.StatusUnauthorized,
			wantMessage:    "JWT validation failure",
		},
		{
			name:           "render hides the cause",
			err:            apperror.Render(errors.New("decode bucket/backgrounds/x: bad header"), "Rendering failed"),
			wantStatusCode: fiber.StatusUnprocessableEntity,
			wantMessage:    "Rendering failed",
		},
		{
			name:           "persistence",
			err:            apperror.Persistence(errors.New("pq: connection refused"), "Failed to save credential"),
			wantStatusCode: fiber.StatusInternalServerError,
			wantMessage:    "Failed to save credential",
		},
		{
			name:           "untyped error",
			err:            errors.New("boom"),
			wantStatusCode: fiber.StatusInternalServerError,
			wantMessage:    "Internal error",
		},
		{
			name:           "fiber error keeps its code",
			err:            fiber.NewError(fiber.StatusMethodNotAllowed, "Method Not Allowed"),
			wantStatusCode: fiber.StatusMethodNotAllowed,
			wantMessage:    "Method Not Allowed",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := fiber.New(fiber.Config{ErrorHandler: handler.HandleError})
			app.Get("/", func(c *fiber.Ctx) error { return tt.err })

			resp, err := app.Test(httptest.NewRequest("GET", "/", nil))
			require.NoError(t, err)
			assert.Equal(t, tt.wantStatusCode, resp.StatusCode)

			body, err := io.ReadAll(resp.Body)
			require.NoError(t, err)
			var response map[string]any
			require.NoError(t, json.Unmarshal(body, &response))
			assert.Equal(t, false, response["success"])
			assert.Equal(t, tt.wantMessage, response["message"])
			assert.Equal(t, tt.wantField, response["field"])
		})
	}
}

func TestHandleNotFound(t *testing.T) {
	app := fiber.New()
	app.Use(handler.HandleNotFound)

	resp, err := app.Test(httptest.NewRequest("GET", "/api/unknown", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "GET /api/unknown not found")
}
