package model

import (
	"time"

	"github.com/sunthewhat/easy-cred-api/internal/layout"
	"gorm.io/datatypes"
)

const TableNameTemplate = "template"

// Template is immutable once created. NativeWidth/NativeHeight are the
// background's pixel size at upload and the frame for every placeholder.
type Template struct {
	ID            string                                  `gorm:"column:id;primaryKey" json:"id"`
	OwnerID       string                                  `gorm:"column:owner_id;not null;index" json:"owner_id"`
	Name          string                                  `gorm:"column:name;not null" json:"name"`
	BackgroundRef string                                  `gorm:"column:background_ref;not null" json:"-"`
	NativeWidth   int                                     `gorm:"column:native_width;not null" json:"native_width"`
	NativeHeight  int                                     `gorm:"column:native_height;not null" json:"native_height"`
	Placeholders  datatypes.JSONSlice[layout.Placeholder] `gorm:"column:placeholders;type:jsonb;not null" json:"placeholders"`
	ThumbnailRef  string                                  `gorm:"column:thumbnail_ref" json:"-"`
	CreatedAt     time.Time                               `gorm:"column:created_at;not null;autoCreateTime" json:"created_at"`
}

func (*Template) TableName() string {
	return TableNameTemplate
}

// Document is the layout view of the template.
func (t *Template) Document() layout.Document {
	return layout.Document{
		Native:       layout.Size{Width: float64(t.NativeWidth), Height: float64(t.NativeHeight)},
		Placeholders: t.Placeholders,
	}
}
