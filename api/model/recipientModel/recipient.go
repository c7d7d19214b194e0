package recipientmodel

import (
	"context"
	"errors"
	"log/slog"

	"github.com/google/uuid"
	"github.com/sunthewhat/easy-cred-api/type/shared/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type RecipientRepository struct {
	db *gorm.DB
}

func NewRecipientRepository(db *gorm.DB) *RecipientRepository {
	return &RecipientRepository{db: db}
}

// Resolve returns the recipient with the given email, creating it first
// when absent. Concurrent callers with the same email get the same row.
func (r *RecipientRepository) Resolve(ctx context.Context, email string) (*model.Recipient, error) {
	db := r.db.WithContext(ctx)
	candidate := &model.Recipient{ID: uuid.NewString(), Email: email}
	if err := db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "email"}},
		DoNothing: true,
	}).Create(candidate).Error; err != nil {
		slog.Error("Recipient Resolve create", "error", err, "email", email)
		return nil, err
	}

	var recipient model.Recipient
	if err := db.Where("email = ?", email).First(&recipient).Error; err != nil {
		slog.Error("Recipient Resolve find", "error", err, "email", email)
		return nil, err
	}
	return &recipient, nil
}

func (r *RecipientRepository) GetByEmail(ctx context.Context, email string) (*model.Recipient, error) {
	var recipient model.Recipient
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&recipient).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		slog.Error("Recipient GetByEmail", "error", err, "email", email)
		return nil, err
	}
	return &recipient, nil
}

func (r *RecipientRepository) AppendCredential(ctx context.Context, recipientId string, credentialId string) error {
	entry := &model.RecipientCredential{RecipientID: recipientId, CredentialID: credentialId}
	if err := r.db.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(entry).Error; err != nil {
		slog.Error("Recipient AppendCredential", "error", err, "recipient_id", recipientId, "credential_id", credentialId)
		return err
	}
	return nil
}
