package model

import "time"

const TableNameRecipient = "recipient"

type Recipient struct {
	ID        string    `gorm:"column:id;primaryKey" json:"id"`
	Email     string    `gorm:"column:email;not null;uniqueIndex" json:"email"`
	CreatedAt time.Time `gorm:"column:created_at;not null;autoCreateTime" json:"created_at"`
}

func (*Recipient) TableName() string {
	return TableNameRecipient
}
