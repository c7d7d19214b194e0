package templatemodel

import (
	"context"
	"time"

	"github.com/sunthewhat/easy-cred-api/type/shared/model"
)

// ITemplateRepository defines the interface for template repository operations
type ITemplateRepository interface {
	Create(ctx context.Context, tmpl *model.Template) error
	GetById(ctx context.Context, templateId string) (*model.Template, error)
	GetByOwner(ctx context.Context, ownerId string) ([]*model.Template, error)
	SetThumbnail(ctx context.Context, templateId string, thumbnailRef string) error
	CountByOwner(ctx context.Context, ownerId string, since time.Time) (int64, error)
}

// Ensure TemplateRepository implements ITemplateRepository
var _ ITemplateRepository = (*TemplateRepository)(nil)

// MockTemplateRepository is a mock implementation for testing
type MockTemplateRepository struct {
	CreateFunc       func(ctx context.Context, tmpl *model.Template) error
	GetByIdFunc      func(ctx context.Context, templateId string) (*model.Template, error)
	GetByOwnerFunc   func(ctx context.Context, ownerId string) ([]*model.Template, error)
	SetThumbnailFunc func(ctx context.Context, templateId string, thumbnailRef string) error
	CountByOwnerFunc func(ctx context.Context, ownerId string, since time.Time) (int64, error)
}

// Ensure MockTemplateRepository implements ITemplateRepository
var _ ITemplateRepository = (*MockTemplateRepository)(nil)

func NewMockTemplateRepository() *MockTemplateRepository {
	return &MockTemplateRepository{}
}

func (m *MockTemplateRepository) Create(ctx context.Context, tmpl *model.Template) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, tmpl)
	}
	return nil
}

func (m *MockTemplateRepository) GetById(ctx context.Context, templateId string) (*model.Template, error) {
	if m.GetByIdFunc != nil {
		return m.GetByIdFunc(ctx, templateId)
	}
	return nil, nil
}

func (m *MockTemplateRepository) GetByOwner(ctx context.Context, ownerId string) ([]*model.Template, error) {
	if m.GetByOwnerFunc != nil {
		return m.GetByOwnerFunc(ctx, ownerId)
	}
	return nil, nil
}

func (m *MockTemplateRepository) SetThumbnail(ctx context.Context, templateId string, thumbnailRef string) error {
	if m.SetThumbnailFunc != nil {
		return m.SetThumbnailFunc(ctx, templateId, thumbnailRef)
	}
	return nil
}

func (m *MockTemplateRepository) CountByOwner(ctx context.Context, ownerId string, since time.Time) (int64, error) {
	if m.CountByOwnerFunc != nil {
		return m.CountByOwnerFunc(ctx, ownerId, since)
	}
	return 0, nil
}
