package organizationmodel

import (
	"context"
	"errors"
	"log/slog"

	"github.com/sunthewhat/easy-cred-api/type/shared/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type OrganizationRepository struct {
	db *gorm.DB
}

func NewOrganizationRepository(db *gorm.DB) *OrganizationRepository {
	return &OrganizationRepository{db: db}
}

func (r *OrganizationRepository) Create(ctx context.Context, org *model.Organization) error {
	if err := r.db.WithContext(ctx).Create(org).Error; err != nil {
		slog.Error("Organization Create", "error", err, "email", org.Email)
		return err
	}
	return nil
}

func (r *OrganizationRepository) GetById(ctx context.Context, organizationId string) (*model.Organization, error) {
	var org model.Organization
	if err := r.db.WithContext(ctx).Where("id = ?", organizationId).First(&org).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		slog.Error("Organization GetById", "error", err, "organization_id", organizationId)
		return nil, err
	}
	return &org, nil
}

func (r *OrganizationRepository) GetByEmail(ctx context.Context, email string) (*model.Organization, error) {
	var org model.Organization
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&org).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		slog.Error("Organization GetByEmail", "error", err, "email", email)
		return nil, err
	}
	return &org, nil
}

// AppendCredential adds the credential to the organization's list. The
// insert is a single statement and re-appending is a no-op.
func (r *OrganizationRepository) AppendCredential(ctx context.Context, organizationId string, credentialId string) error {
	entry := &model.OrganizationCredential{OrganizationID: organizationId, CredentialID: credentialId}
	if err := r.db.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(entry).Error; err != nil {
		slog.Error("Organization AppendCredential", "error", err, "organization_id", organizationId, "credential_id", credentialId)
		return err
	}
	return nil
}

func (r *OrganizationRepository) GetCredentialIds(ctx context.Context, organizationId string) ([]string, error) {
	ids := []string{}
	if err := r.db.WithContext(ctx).
		Model(&model.OrganizationCredential{}).
		Where("organization_id = ?", organizationId).
		Order("created_at ASC").
		Pluck("credential_id", &ids).Error; err != nil {
		slog.Error("Organization GetCredentialIds", "error", err, "organization_id", organizationId)
		return nil, err
	}
	return ids, nil
}
