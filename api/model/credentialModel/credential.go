package credentialmodel

import (
	"context"
	"errors"
	"log/slog"

	"github.com/sunthewhat/easy-cred-api/type/shared/model"
	"gorm.io/gorm"
)

type CredentialRepository struct {
	db *gorm.DB
}

func NewCredentialRepository(db *gorm.DB) *CredentialRepository {
	return &CredentialRepository{db: db}
}

func (r *CredentialRepository) Create(ctx context.Context, cred *model.Credential) error {
	if err := r.db.WithContext(ctx).Create(cred).Error; err != nil {
		slog.Error("Credential Create", "error", err, "credential_id", cred.ID, "template_id", cred.TemplateID)
		return err
	}
	return nil
}

func (r *CredentialRepository) GetById(ctx context.Context, credentialId string) (*model.Credential, error) {
	var cred model.Credential
	if err := r.db.WithContext(ctx).Where("id = ?", credentialId).First(&cred).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		slog.Error("Credential GetById", "error", err, "credential_id", credentialId)
		return nil, err
	}
	return &cred, nil
}

func (r *CredentialRepository) GetByOwner(ctx context.Context, ownerId string) ([]*model.Credential, error) {
	var creds []*model.Credential
	if err := r.db.WithContext(ctx).
		Where("owner_id = ?", ownerId).
		Order("created_at DESC").
		Find(&creds).Error; err != nil {
		slog.Error("Credential GetByOwner", "error", err, "owner_id", ownerId)
		return nil, err
	}
	return creds, nil
}

// GetIdsByRecipient returns the ids of credentials the owner issued to the
// recipient, oldest first.
func (r *CredentialRepository) GetIdsByRecipient(ctx context.Context, recipientId string, ownerId string) ([]string, error) {
	ids := []string{}
	if err := r.db.WithContext(ctx).
		Model(&model.Credential{}).
		Where("recipient_id = ? AND owner_id = ?", recipientId, ownerId).
		Order("created_at ASC").
		Pluck("id", &ids).Error; err != nil {
		slog.Error("Credential GetIdsByRecipient", "error", err, "recipient_id", recipientId, "owner_id", ownerId)
		return nil, err
	}
	return ids, nil
}

// Revoke sets is_revoked and returns the updated row. Revoking twice is
// not an error. Returns (nil, nil) when the credential does not exist.
func (r *CredentialRepository) Revoke(ctx context.Context, credentialId string) (*model.Credential, error) {
	result := r.db.WithContext(ctx).
		Model(&model.Credential{}).
		Where("id = ?", credentialId).
		Update("is_revoked", true)
	if result.Error != nil {
		slog.Error("Credential Revoke", "error", result.Error, "credential_id", credentialId)
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, nil
	}
	return r.GetById(ctx, credentialId)
}

func (r *CredentialRepository) CountActiveByOwner(ctx context.Context, ownerId string) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&model.Credential{}).
		Where("owner_id = ? AND is_revoked = ?", ownerId, false).
		Count(&count).Error; err != nil {
		slog.Error("Credential CountActiveByOwner", "error", err, "owner_id", ownerId)
		return 0, err
	}
	return count, nil
}
