package model

import "time"

const TableNameCredential = "credential"

// Credential is written once per successful issuance. Only IsRevoked
// changes afterwards, and only from false to true.
type Credential struct {
	ID          string    `gorm:"column:id;primaryKey" json:"id"`
	TemplateID  string    `gorm:"column:template_id;not null;index" json:"template_id"`
	OwnerID     string    `gorm:"column:owner_id;not null;index" json:"owner_id"`
	RecipientID string    `gorm:"column:recipient_id;not null;index" json:"recipient_id"`
	IssueDate   time.Time `gorm:"column:issue_date;not null" json:"issue_date"`
	ArtifactRef string    `gorm:"column:artifact_ref;not null" json:"-"`
	IsRevoked   bool      `gorm:"column:is_revoked;not null;default:false" json:"is_revoked"`
	CreatedAt   time.Time `gorm:"column:created_at;not null;autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time `gorm:"column:updated_at;not null;autoUpdateTime" json:"updated_at"`
}

func (*Credential) TableName() string {
	return TableNameCredential
}
