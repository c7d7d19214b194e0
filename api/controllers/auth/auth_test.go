package auth_controller_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	auth_controller "github.com/sunthewhat/easy-cred-api/api/controllers/auth"
	"github.com/sunthewhat/easy-cred-api/api/handler"
	organizationmodel "github.com/sunthewhat/easy-cred-api/api/model/organizationModel"
	"github.com/sunthewhat/easy-cred-api/common/util"
	"github.com/sunthewhat/easy-cred-api/type/payload"
	"github.com/sunthewhat/easy-cred-api/type/shared/model"
)

func doRequest(t *testing.T, app *fiber.App, path string, requestBody any) (int, map[string]any) {
	t.Helper()

	var bodyReader io.Reader
	if str, ok := requestBody.(string); ok {
		bodyReader = bytes.NewBufferString(str)
	} else {
		bodyBytes, err := json.Marshal(requestBody)
		if err != nil {
			t.Fatalf("Failed to marshal request body: %v", err)
		}
		bodyReader = bytes.NewBuffer(bodyBytes)
	}

	req := httptest.NewRequest("POST", path, bodyReader)
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("Failed to execute request: %v", err)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("Failed to read response body: %v", err)
	}
	var response map[string]any
	if err := json.Unmarshal(body, &response); err != nil {
		t.Fatalf("Failed to unmarshal response: %v", err)
	}
	return resp.StatusCode, response
}

func TestAuthController_Register(t *testing.T) {
	tests := []struct {
		name           string
		requestBody    any
		setupMock      func() *organizationmodel.MockOrganizationRepository
		wantStatusCode int
		checkResponse  func(t *testing.T, response map[string]any)
	}{
		{
			name: "successful register",
			requestBody: payload.RegisterPayload{
				Name:     "Analytical Society",
				Email:    "Board@Example.com",
				Password: "securepassword",
			},
			setupMock: func() *organizationmodel.MockOrganizationRepository {
				mock := organizationmodel.NewMockOrganizationRepository()
				mock.CreateFunc = func(ctx context.Context, org *model.Organization) error {
					if org.Email != "board@example.com" {
						t.Errorf("Expected normalized email, got %v", org.Email)
					}
					if !util.CheckPassword("securepassword", org.Password) {
						t.Error("Expected stored password to be a bcrypt hash of the input")
					}
					return nil
				}
				return mock
			},
			wantStatusCode: fiber.StatusCreated,
			checkResponse: func(t *testing.T, response map[string]any) {
				data, ok := response["data"].(map[string]any)
				if !ok {
					t.Fatal("Expected data to be a map")
				}
				if data["email"] != "board@example.com" {
					t.Errorf("Expected email='board@example.com', got %v", data["email"])
				}
				if _, leaked := data["password"]; leaked {
					t.Error("Password must not be returned")
				}
			},
		},
		{
			name:        "invalid request body - malformed JSON",
			requestBody: "invalid json",
			setupMock: func() *organizationmodel.MockOrganizationRepository {
				return organizationmodel.NewMockOrganizationRepository()
			},
			wantStatusCode: fiber.StatusBadRequest,
		},
		{
			name: "validation error - short password",
			requestBody: payload.RegisterPayload{
				Name:     "Analytical Society",
				Email:    "board@example.com",
				Password: "short",
			},
			setupMock: func() *organizationmodel.MockOrganizationRepository {
				return organizationmodel.NewMockOrganizationRepository()
			},
			wantStatusCode: fiber.StatusBadRequest,
			checkResponse: func(t *testing.T, response map[string]any) {
				if response["field"] != "password" {
					t.Errorf("Expected field='password', got %v", response["field"])
				}
			},
		},
		{
			name: "duplicate email",
			requestBody: payload.RegisterPayload{
				Name:     "Analytical Society",
				Email:    "board@example.com",
				Password: "securepassword",
			},
			setupMock: func() *organizationmodel.MockOrganizationRepository {
				mock := organizationmodel.NewMockOrganizationRepository()
				mock.GetByEmailFunc = func(ctx context.Context, email string) (*model.Organization, error) {
					return &model.Organization{ID: "org-1", Email: email}, nil
				}
				return mock
			},
			wantStatusCode: fiber.StatusBadRequest,
			checkResponse: func(t *testing.T, response map[string]any) {
				if response["message"] != "Organization already exists" {
					t.Errorf("Expected duplicate message, got %v", response["message"])
				}
			},
		},
		{
			name: "create fails",
			requestBody: payload.RegisterPayload{
				Name:     "Analytical Society",
				Email:    "board@example.com",
				Password: "securepassword",
			},
			setupMock: func() *organizationmodel.MockOrganizationRepository {
				mock := organizationmodel.NewMockOrganizationRepository()
				mock.CreateFunc = func(ctx context.Context, org *model.Organization) error {
					return errors.New("database error")
				}
				return mock
			},
			wantStatusCode: fiber.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := fiber.New(fiber.Config{ErrorHandler: handler.HandleError})
			ac := auth_controller.NewAuthController(tt.setupMock(), "secret")
			app.Post("/register", ac.Register)

			status, response := doRequest(t, app, "/register", tt.requestBody)
			if status != tt.wantStatusCode {
				t.Errorf("Expected status code %d, got %d", tt.wantStatusCode, status)
			}
			if tt.checkResponse != nil {
				tt.checkResponse(t, response)
			}
		})
	}
}

func TestAuthController_Login(t *testing.T) {
	hashed, err := util.HashPassword("securepassword")
	if err != nil {
		t.Fatalf("Failed to hash password: %v", err)
	}
	stored := &model.Organization{ID: "org-1", Name: "Analytical Society", Email: "board@example.com", Password: hashed}

	tests := []struct {
		name           string
		requestBody    any
		wantStatusCode int
		wantToken      bool
	}{
		{
			name:           "successful login",
			requestBody:    payload.LoginPayload{Email: "BOARD@example.com", Password: "securepassword"},
			wantStatusCode: fiber.StatusOK,
			wantToken:      true,
		},
		{
			name:           "wrong password",
			requestBody:    payload.LoginPayload{Email: "board@example.com", Password: "nope"},
			wantStatusCode: fiber.StatusUnauthorized,
		},
		{
			name:           "unknown organization",
			requestBody:    payload.LoginPayload{Email: "nobody@example.com", Password: "securepassword"},
			wantStatusCode: fiber.StatusUnauthorized,
		},
		{
			name:           "validation error - missing email",
			requestBody:    payload.LoginPayload{Password: "securepassword"},
			wantStatusCode: fiber.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock := organizationmodel.NewMockOrganizationRepository()
			mock.GetByEmailFunc = func(ctx context.Context, email string) (*model.Organization, error) {
				if email == stored.Email {
					return stored, nil
				}
				return nil, nil
			}

			app := fiber.New(fiber.Config{ErrorHandler: handler.HandleError})
			ac := auth_controller.NewAuthController(mock, "secret")
			app.Post("/login", ac.Login)

			status, response := doRequest(t, app, "/login", tt.requestBody)
			if status != tt.wantStatusCode {
				t.Errorf("Expected status code %d, got %d", tt.wantStatusCode, status)
			}
			data, _ := response["data"].(map[string]any)
			if tt.wantToken {
				if token, _ := data["token"].(string); token == "" {
					t.Error("Expected a token in the response")
				}
			} else if data != nil {
				t.Errorf("Expected no data, got %v", data)
			}
		})
	}
}
