package issuance

import (
	"context"

	"github.com/sunthewhat/easy-cred-api/internal/layout"
	"github.com/sunthewhat/easy-cred-api/type/shared/model"
)

// IService is what the HTTP controllers need from the engine.
type IService interface {
	CreateTemplate(ctx context.Context, ownerID string, in TemplateInput) (*model.Template, error)
	ListTemplates(ctx context.Context, ownerID string) ([]*model.Template, error)
	GetTemplate(ctx context.Context, ownerID string, templateID string) (*model.Template, error)
	PreviewTemplate(ctx context.Context, ownerID string, templateID string, width int, height int) ([]byte, error)
	PreviewDraft(ctx context.Context, background []byte, placeholders []layout.Placeholder, width int, height int) ([]byte, error)
	Thumbnail(ctx context.Context, ownerID string, templateID string) ([]byte, error)
	IssueCredential(ctx context.Context, ownerID string, in IssueInput) (*IssueResult, error)
	RevokeCredential(ctx context.Context, ownerID string, credentialID string) (*model.Credential, error)
	VerifyCredential(ctx context.Context, credentialID string) (*VerificationResult, error)
	GetCredential(ctx context.Context, ownerID string, credentialID string) (*model.Credential, error)
	ListCredentials(ctx context.Context, ownerID string) ([]*model.Credential, error)
	RecipientCredentials(ctx context.Context, ownerID string, email string) ([]string, error)
	Artifact(ctx context.Context, credentialID string) ([]byte, string, error)
	ExportPDF(ctx context.Context, credentialID string) ([]byte, error)
	Dashboard(ctx context.Context, ownerID string) (*DashboardStats, error)
}

var _ IService = (*Engine)(nil)

// MockService is a mock implementation for testing
type MockService struct {
	CreateTemplateFunc       func(ctx context.Context, ownerID string, in TemplateInput) (*model.Template, error)
	ListTemplatesFunc        func(ctx context.Context, ownerID string) ([]*model.Template, error)
	GetTemplateFunc          func(ctx context.Context, ownerID string, templateID string) (*model.Template, error)
	PreviewTemplateFunc      func(ctx context.Context, ownerID string, templateID string, width int, height int) ([]byte, error)
	PreviewDraftFunc         func(ctx context.Context, background []byte, placeholders []layout.Placeholder, width int, height int) ([]byte, error)
	ThumbnailFunc            func(ctx context.Context, ownerID string, templateID string) ([]byte, error)
	IssueCredentialFunc      func(ctx context.Context, ownerID string, in IssueInput) (*IssueResult, error)
	RevokeCredentialFunc     func(ctx context.Context, ownerID string, credentialID string) (*model.Credential, error)
	VerifyCredentialFunc     func(ctx context.Context, credentialID string) (*VerificationResult, error)
	GetCredentialFunc        func(ctx context.Context, ownerID string, credentialID string) (*model.Credential, error)
	ListCredentialsFunc      func(ctx context.Context, ownerID string) ([]*model.Credential, error)
	RecipientCredentialsFunc func(ctx context.Context, ownerID string, email string) ([]string, error)
	ArtifactFunc             func(ctx context.Context, credentialID string) ([]byte, string, error)
	ExportPDFFunc            func(ctx context.Context, credentialID string) ([]byte, error)
	DashboardFunc            func(ctx context.Context, ownerID string) (*DashboardStats, error)
}

var _ IService = (*MockService)(nil)

func (m *MockService) CreateTemplate(ctx context.Context, ownerID string, in TemplateInput) (*model.Template, error) {
	if m.CreateTemplateFunc != nil {
		return m.CreateTemplateFunc(ctx, ownerID, in)
	}
	return nil, nil
}

func (m *MockService) ListTemplates(ctx context.Context, ownerID string) ([]*model.Template, error) {
	if m.ListTemplatesFunc != nil {
		return m.ListTemplatesFunc(ctx, ownerID)
	}
	return nil, nil
}

func (m *MockService) GetTemplate(ctx context.Context, ownerID string, templateID string) (*model.Template, error) {
	if m.GetTemplateFunc != nil {
		return m.GetTemplateFunc(ctx, ownerID, templateID)
	}
	return nil, nil
}

func (m *MockService) PreviewTemplate(ctx context.Context, ownerID string, templateID string, width int, height int) ([]byte, error) {
	if m.PreviewTemplateFunc != nil {
		return m.PreviewTemplateFunc(ctx, ownerID, templateID, width, height)
	}
	return nil, nil
}

func (m *MockService) PreviewDraft(ctx context.Context, background []byte, placeholders []layout.Placeholder, width int, height int) ([]byte, error) {
	if m.PreviewDraftFunc != nil {
		return m.PreviewDraftFunc(ctx, background, placeholders, width, height)
	}
	return nil, nil
}

func (m *MockService) Thumbnail(ctx context.Context, ownerID string, templateID string) ([]byte, error) {
	if m.ThumbnailFunc != nil {
		return m.ThumbnailFunc(ctx, ownerID, templateID)
	}
	return nil, nil
}

func (m *MockService) IssueCredential(ctx context.Context, ownerID string, in IssueInput) (*IssueResult, error) {
	if m.IssueCredentialFunc != nil {
		return m.IssueCredentialFunc(ctx, ownerID, in)
	}
	return nil, nil
}

func (m *MockService) RevokeCredential(ctx context.Context, ownerID string, credentialID string) (*model.Credential, error) {
	if m.RevokeCredentialFunc != nil {
		return m.RevokeCredentialFunc(ctx, ownerID, credentialID)
	}
	return nil, nil
}

func (m *MockService) VerifyCredential(ctx context.Context, credentialID string) (*VerificationResult, error) {
	if m.VerifyCredentialFunc != nil {
		return m.VerifyCredentialFunc(ctx, credentialID)
	}
	return nil, nil
}

func (m *MockService) GetCredential(ctx context.Context, ownerID string, credentialID string) (*model.Credential, error) {
	if m.GetCredentialFunc != nil {
		return m.GetCredentialFunc(ctx, ownerID, credentialID)
	}
	return nil, nil
}

func (m *MockService) ListCredentials(ctx context.Context, ownerID string) ([]*model.Credential, error) {
	if m.ListCredentialsFunc != nil {
		return m.ListCredentialsFunc(ctx, ownerID)
	}
	return nil, nil
}

func (m *MockService) RecipientCredentials(ctx context.Context, ownerID string, email string) ([]string, error) {
	if m.RecipientCredentialsFunc != nil {
		return m.RecipientCredentialsFunc(ctx, ownerID, email)
	}
	return nil, nil
}

func (m *MockService) Artifact(ctx context.Context, credentialID string) ([]byte, string, error) {
	if m.ArtifactFunc != nil {
		return m.ArtifactFunc(ctx, credentialID)
	}
	return nil, "", nil
}

func (m *MockService) ExportPDF(ctx context.Context, credentialID string) ([]byte, error) {
	if m.ExportPDFFunc != nil {
		return m.ExportPDFFunc(ctx, credentialID)
	}
	return nil, nil
}

func (m *MockService) Dashboard(ctx context.Context, ownerID string) (*DashboardStats, error) {
	if m.DashboardFunc != nil {
		return m.DashboardFunc(ctx, ownerID)
	}
	return nil, nil
}
