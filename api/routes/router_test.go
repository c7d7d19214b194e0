package routes_test

import (
	"context"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/sunthewhat/easy-cred-api/api/handler"
	organizationmodel "github.com/sunthewhat/easy-cred-api/api/model/organizationModel"
	"github.com/sunthewhat/easy-cred-api/api/routes"
	"github.com/sunthewhat/easy-cred-api/common/util"
	"github.com/sunthewhat/easy-cred-api/internal/issuance"
	"github.com/sunthewhat/easy-cred-api/type/shared/model"
)

func TestInit_Protection(t *testing.T) {
	svc := &issuance.MockService{
		ListTemplatesFunc: func(ctx context.Context, ownerID string) ([]*model.Template, error) {
			return []*model.Template{}, nil
		},
		VerifyCredentialFunc: func(ctx context.Context, credentialID string) (*issuance.VerificationResult, error) {
			return &issuance.VerificationResult{Valid: true, IssuerName: "Analytical Society"}, nil
		},
		DashboardFunc: func(ctx context.Context, ownerID string) (*issuance.DashboardStats, error) {
			return &issuance.DashboardStats{}, nil
		},
	}

	app := fiber.New(fiber.Config{ErrorHandler: handler.HandleError, StrictRouting: true})
	routes.Init(app, routes.Dependencies{
		Service:       svc,
		Organizations: organizationmodel.NewMockOrganizationRepository(),
		JWTSecret:     "secret",
	})

	token, err := util.GenerateAuthToken("org-1", "secret")
	require.NoError(t, err)

	tests := []struct {
		name           string
		method         string
		path           string
		authorized     bool
		wantStatusCode int
	}{
		{"templates need a token", "GET", "/api/template", false, fiber.StatusUnauthorized},
		{"templates with token", "GET", "/api/template", true, fiber.StatusOK},
		{"dashboard needs a token", "GET", "/api/organization/dashboard", false, fiber.StatusUnauthorized},
		{"dashboard with token", "GET", "/api/organization/dashboard", true, fiber.StatusOK},
		{"credentials need a token", "GET", "/api/credential", false, fiber.StatusUnauthorized},
		{"verification is public", "GET", "/api/public/credential/cred-1", false, fiber.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.path, nil)
			if tt.authorized {
				req.Header.Set("Authorization", "Bearer "+token)
			}
			resp, err := app.Test(req)
			require.NoError(t, err)
			assert.Equal(t, tt.wantStatusCode, resp.StatusCode)
		})
	}
}
