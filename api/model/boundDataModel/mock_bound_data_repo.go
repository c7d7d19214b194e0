package bounddatamodel

import "context"

// IBoundDataRepository defines the interface for bound data operations
type IBoundDataRepository interface {
	Put(ctx context.Context, templateId string, credentialId string, data map[string]string) error
	Get(ctx context.Context, templateId string, credentialId string) (map[string]string, error)
	Delete(ctx context.Context, templateId string, credentialId string) error
}

var _ IBoundDataRepository = (*BoundDataRepository)(nil)

type MockBoundDataRepository struct {
	PutFunc    func(ctx context.Context, templateId string, credentialId string, data map[string]string) error
	GetFunc    func(ctx context.Context, templateId string, credentialId string) (map[string]string, error)
	DeleteFunc func(ctx context.Context, templateId string, credentialId string) error
}

var _ IBoundDataRepository = (*MockBoundDataRepository)(nil)

func NewMockBoundDataRepository() *MockBoundDataRepository {
	return &MockBoundDataRepository{}
}

func (m *MockBoundDataRepository) Put(ctx context.Context, templateId string, credentialId string, data map[string]string) error {
	if m.PutFunc != nil {
		return m.PutFunc(ctx, templateId, credentialId, data)
	}
	return nil
}

func (m *MockBoundDataRepository) Get(ctx context.Context, templateId string, credentialId string) (map[string]string, error) {
	if m.GetFunc != nil {
		return m.GetFunc(ctx, templateId, credentialId)
	}
	return nil, nil
}

func (m *MockBoundDataRepository) Delete(ctx context.Context, templateId string, credentialId string) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, templateId, credentialId)
	}
	return nil
}
