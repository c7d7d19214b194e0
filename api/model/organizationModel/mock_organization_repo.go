package organizationmodel

import (
	"context"

	"github.com/sunthewhat/easy-cred-api/type/shared/model"
)

// IOrganizationRepository defines the interface for organization repository operations
type IOrganizationRepository interface {
	Create(ctx context.Context, org *model.Organization) error
	GetById(ctx context.Context, organizationId string) (*model.Organization, error)
	GetByEmail(ctx context.Context, email string) (*model.Organization, error)
	AppendCredential(ctx context.Context, organizationId string, credentialId string) error
	GetCredentialIds(ctx context.Context, organizationId string) ([]string, error)
}

var _ IOrganizationRepository = (*OrganizationRepository)(nil)

// MockOrganizationRepository is a mock implementation for testing
type MockOrganizationRepository struct {
	CreateFunc           func(ctx context.Context, org *model.Organization) error
	GetByIdFunc          func(ctx context.Context, organizationId string) (*model.Organization, error)
	GetByEmailFunc       func(ctx context.Context, email string) (*model.Organization, error)
	AppendCredentialFunc func(ctx context.Context, organizationId string, credentialId string) error
	GetCredentialIdsFunc func(ctx context.Context, organizationId string) ([]string, error)
}

var _ IOrganizationRepository = (*MockOrganizationRepository)(nil)

func NewMockOrganizationRepository() *MockOrganizationRepository {
	return &MockOrganizationRepository{}
}

func (m *MockOrganizationRepository) Create(ctx context.Context, org *model.Organization) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, org)
	}
	return nil
}

func (m *MockOrganizationRepository) GetById(ctx context.Context, organizationId string) (*model.Organization, error) {
	if m.GetByIdFunc != nil {
		return m.GetByIdFunc(ctx, organizationId)
	}
	return nil, nil
}

func (m *MockOrganizationRepository) GetByEmail(ctx context.Context, email string) (*model.Organization, error) {
	if m.GetByEmailFunc != nil {
		return m.GetByEmailFunc(ctx, email)
	}
	return nil, nil
}

func (m *MockOrganizationRepository) AppendCredential(ctx context.Context, organizationId string, credentialId string) error {
	if m.AppendCredentialFunc != nil {
		return m.AppendCredentialFunc(ctx, organizationId, credentialId)
	}
	return nil
}

func (m *MockOrganizationRepository) GetCredentialIds(ctx context.Context, organizationId string) ([]string, error) {
	if m.GetCredentialIdsFunc != nil {
		return m.GetCredentialIdsFunc(ctx, organizationId)
	}
	return nil, nil
}
