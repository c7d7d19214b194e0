package organization_controller_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	organization_controller "github.com/sunthewhat/easy-cred-api/api/controllers/organization"
	"github.com/sunthewhat/easy-cred-api/api/handler"
	"github.com/sunthewhat/easy-cred-api/internal/apperror"
	"github.com/sunthewhat/easy-cred-api/internal/issuance"
)

func TestOrganizationController_Dashboard(t *testing.T) {
	tests := []struct {
		name           string
		setupContext   func(c *fiber.Ctx)
		setupMock      func() *issuance.MockService
		wantStatusCode int
		checkResponse  func(t *testing.T, response map[string]any)
	}{
		{
			name: "successful dashboard",
			setupContext: func(c *fiber.Ctx) {
				c.Locals("organization_id", "org-1")
			},
			setupMock: func() *issuance.MockService {
				return &issuance.MockService{
					DashboardFunc: func(ctx context.Context, ownerID string) (*issuance.DashboardStats, error) {
						return &issuance.DashboardStats{Name: "Analytical Society", Email: "society@example.com", TotalTemplates: 3, TotalCredentialsIssued: 1, RecentTemplates: 2}, nil
					},
				}
			},
			wantStatusCode: fiber.StatusOK,
			checkResponse: func(t *testing.T, response map[string]any) {
				data := response["data"].(map[string]any)
				assert.Equal(t, "Analytical Society", data["name"])
				assert.Equal(t, "society@example.com", data["email"])
				assert.Equal(t, float64(3), data["totalTemplates"])
				assert.Equal(t, float64(1), data["totalCredentialsIssued"])
				assert.Equal(t, float64(2), data["recentTemplates"])
			},
		},
		{
			name:         "unauthenticated",
			setupContext: func(c *fiber.Ctx) {},
			setupMock: func() *issuance.MockService {
				return &issuance.MockService{}
			},
			wantStatusCode: fiber.StatusUnauthorized,
		},
		{
			name: "storage failure",
			setupContext: func(c *fiber.Ctx) {
				c.Locals("organization_id", "org-1")
			},
			setupMock: func() *issuance.MockService {
				return &issuance.MockService{
					DashboardFunc: func(ctx context.Context, ownerID string) (*issuance.DashboardStats, error) {
						return nil, apperror.Persistence(errors.New("connection refused"), "Failed to load dashboard")
					},
				}
			},
			wantStatusCode: fiber.StatusInternalServerError,
			checkResponse: func(t *testing.T, response map[string]any) {
				assert.Equal(t, "Failed to load dashboard", response["message"])
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := fiber.New(fiber.Config{ErrorHandler: handler.HandleError})
			oc := organization_controller.NewOrganizationController(tt.setupMock())
			app.Get("/dashboard", func(c *fiber.Ctx) error {
				tt.setupContext(c)
				return oc.Dashboard(c)
			})

			resp, err := app.Test(httptest.NewRequest("GET", "/dashboard", nil))
			require.NoError(t, err)
			assert.Equal(t, tt.wantStatusCode, resp.StatusCode)

			body, err := io.ReadAll(resp.Body)
			require.NoError(t, err)
			var response map[string]any
			require.NoError(t, json.Unmarshal(body, &response))
			if tt.checkResponse != nil {
				tt.checkResponse(t, response)
			}
		})
	}
}
