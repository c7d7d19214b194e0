package recipientmodel

import (
	"context"

	"github.com/sunthewhat/easy-cred-api/type/shared/model"
)

// IRecipientRepository defines the interface for recipient repository operations
type IRecipientRepository interface {
	Resolve(ctx context.Context, email string) (*model.Recipient, error)
	GetByEmail(ctx context.Context, email string) (*model.Recipient, error)
	AppendCredential(ctx context.Context, recipientId string, credentialId string) error
}

var _ IRecipientRepository = (*RecipientRepository)(nil)

// MockRecipientRepository is a mock implementation for testing
type MockRecipientRepository struct {
	ResolveFunc          func(ctx context.Context, email string) (*model.Recipient, error)
	GetByEmailFunc       func(ctx context.Context, email string) (*model.Recipient, error)
	AppendCredentialFunc func(ctx context.Context, recipientId string, credentialId string) error
}

var _ IRecipientRepository = (*MockRecipientRepository)(nil)

func NewMockRecipientRepository() *MockRecipientRepository {
	return &MockRecipientRepository{}
}

func (m *MockRecipientRepository) Resolve(ctx context.Context, email string) (*model.Recipient, error) {
	if m.ResolveFunc != nil {
		return m.ResolveFunc(ctx, email)
	}
	return nil, nil
}

func (m *MockRecipientRepository) GetByEmail(ctx context.Context, email string) (*model.Recipient, error) {
	if m.GetByEmailFunc != nil {
		return m.GetByEmailFunc(ctx, email)
	}
	return nil, nil
}

func (m *MockRecipientRepository) AppendCredential(ctx context.Context, recipientId string, credentialId string) error {
	if m.AppendCredentialFunc != nil {
		return m.AppendCredentialFunc(ctx, recipientId, credentialId)
	}
	return nil
}
