package credentialmodel

import (
	"context"

	"github.com/sunthewhat/easy-cred-api/type/shared/model"
)

// ICredentialRepository defines the interface for credential repository operations
type ICredentialRepository interface {
	Create(ctx context.Context, cred *model.Credential) error
	GetById(ctx context.Context, credentialId string) (*model.Credential, error)
	GetByOwner(ctx context.Context, ownerId string) ([]*model.Credential, error)
	GetIdsByRecipient(ctx context.Context, recipientId string, ownerId string) ([]string, error)
	Revoke(ctx context.Context, credentialId string) (*model.Credential, error)
	CountActiveByOwner(ctx context.Context, ownerId string) (int64, error)
}

var _ ICredentialRepository = (*CredentialRepository)(nil)

// MockCredentialRepository is a mock implementation for testing
type MockCredentialRepository struct {
	CreateFunc             func(ctx context.Context, cred *model.Credential) error
	GetByIdFunc            func(ctx context.Context, credentialId string) (*model.Credential, error)
	GetByOwnerFunc         func(ctx context.Context, ownerId string) ([]*model.Credential, error)
	GetIdsByRecipientFunc  func(ctx context.Context, recipientId string, ownerId string) ([]string, error)
	RevokeFunc             func(ctx context.Context, credentialId string) (*model.Credential, error)
	CountActiveByOwnerFunc func(ctx context.Context, ownerId string) (int64, error)
}

var _ ICredentialRepository = (*MockCredentialRepository)(nil)

func NewMockCredentialRepository() *MockCredentialRepository {
	return &MockCredentialRepository{}
}

func (m *MockCredentialRepository) Create(ctx context.Context, cred *model.Credential) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, cred)
	}
	return nil
}

func (m *MockCredentialRepository) GetById(ctx context.Context, credentialId string) (*model.Credential, error) {
	if m.GetByIdFunc != nil {
		return m.GetByIdFunc(ctx, credentialId)
	}
	return nil, nil
}

func (m *MockCredentialRepository) GetByOwner(ctx context.Context, ownerId string) ([]*model.Credential, error) {
	if m.GetByOwnerFunc != nil {
		return m.GetByOwnerFunc(ctx, ownerId)
	}
	return nil, nil
}

func (m *MockCredentialRepository) GetIdsByRecipient(ctx context.Context, recipientId string, ownerId string) ([]string, error) {
	if m.GetIdsByRecipientFunc != nil {
		return m.GetIdsByRecipientFunc(ctx, recipientId, ownerId)
	}
	return nil, nil
}

func (m *MockCredentialRepository) Revoke(ctx context.Context, credentialId string) (*model.Credential, error) {
	if m.RevokeFunc != nil {
		return m.RevokeFunc(ctx, credentialId)
	}
	return nil, nil
}

func (m *MockCredentialRepository) CountActiveByOwner(ctx context.Context, ownerId string) (int64, error) {
	if m.CountActiveByOwnerFunc != nil {
		return m.CountActiveByOwnerFunc(ctx, ownerId)
	}
	return 0, nil
}
