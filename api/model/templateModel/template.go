package templatemodel

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/sunthewhat/easy-cred-api/type/shared/model"
	"gorm.io/gorm"
)

// TemplateRepository stores templates in PostgreSQL. Templates are never
// updated after creation except for the thumbnail reference.
type TemplateRepository struct {
	db *gorm.DB
}

func NewTemplateRepository(db *gorm.DB) *TemplateRepository {
	return &TemplateRepository{db: db}
}

func (r *TemplateRepository) Create(ctx context.Context, tmpl *model.Template) error {
	if err := r.db.WithContext(ctx).Create(tmpl).Error; err != nil {
		slog.Error("Template Create", "error", err, "template_id", tmpl.ID, "owner_id", tmpl.OwnerID)
		return err
	}
	return nil
}

func (r *TemplateRepository) GetById(ctx context.Context, templateId string) (*model.Template, error) {
	var tmpl model.Template
	if err := r.db.WithContext(ctx).Where("id = ?", templateId).First(&tmpl).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		slog.Error("Template GetById", "error", err, "template_id", templateId)
		return nil, err
	}
	return &tmpl, nil
}

func (r *TemplateRepository) GetByOwner(ctx context.Context, ownerId string) ([]*model.Template, error) {
	var templates []*model.Template
	if err := r.db.WithContext(ctx).
		Where("owner_id = ?", ownerId).
		Order("created_at DESC").
		Find(&templates).Error; err != nil {
		slog.Error("Template GetByOwner", "error", err, "owner_id", ownerId)
		return nil, err
	}
	return templates, nil
}

func (r *TemplateRepository) SetThumbnail(ctx context.Context, templateId string, thumbnailRef string) error {
	result := r.db.WithContext(ctx).
		Model(&model.Template{}).
		Where("id = ?", templateId).
		Update("thumbnail_ref", thumbnailRef)
	if result.Error != nil {
		slog.Error("Template SetThumbnail", "error", result.Error, "template_id", templateId)
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// CountByOwner counts the owner's templates, only those created at or
// after since when it is non-zero.
func (r *TemplateRepository) CountByOwner(ctx context.Context, ownerId string, since time.Time) (int64, error) {
	var count int64
	query := r.db.WithContext(ctx).Model(&model.Template{}).Where("owner_id = ?", ownerId)
	if !since.IsZero() {
		query = query.Where("created_at >= ?", since)
	}
	if err := query.Count(&count).Error; err != nil {
		slog.Error("Template CountByOwner", "error", err, "owner_id", ownerId)
		return 0, err
	}
	return count, nil
}
