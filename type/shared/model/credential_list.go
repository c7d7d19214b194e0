package model

import "time"

const (
	TableNameOrganizationCredential = "organization_credential"
	TableNameRecipientCredential    = "recipient_credential"
)

// OrganizationCredential is one entry of an organization's credential list.
// The composite key makes re-adding an entry a no-op.
type OrganizationCredential struct {
	OrganizationID string    `gorm:"column:organization_id;primaryKey" json:"organization_id"`
	CredentialID   string    `gorm:"column:credential_id;primaryKey" json:"credential_id"`
	CreatedAt      time.Time `gorm:"column:created_at;not null;autoCreateTime" json:"created_at"`
}

func (*OrganizationCredential) TableName() string {
	return TableNameOrganizationCredential
}

type RecipientCredential struct {
	RecipientID  string    `gorm:"column:recipient_id;primaryKey" json:"recipient_id"`
	CredentialID string    `gorm:"column:credential_id;primaryKey" json:"credential_id"`
	CreatedAt    time.Time `gorm:"column:created_at;not null;autoCreateTime" json:"created_at"`
}

func (*RecipientCredential) TableName() string {
	return TableNameRecipientCredential
}
