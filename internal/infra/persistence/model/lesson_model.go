package model

import (
	"time"

	"github.com/google/uuid"
)

// LessonModel mirrors the 'prompts' table. Referenced ids are stored as given.
type LessonModel struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID        string    `gorm:"type:varchar(64);not null;index:idx_prompts_user_created,priority:1"`
	CategoryID    string    `gorm:"type:varchar(64);not null"`
	SubCategoryID string    `gorm:"type:varchar(64);not null"`
	Prompt        string    `gorm:"type:text;not null"`
	Response      string    `gorm:"type:text;not null"`
	CreatedAt     time.Time `gorm:"not null;index;index:idx_prompts_user_created,priority:2"`
}

// TableName explicitly sets the table name for GORM.
func (LessonModel) TableName() string {
	return "prompts"
}

// All returns every model managed by the store, in migration order.
func All() []any {
	return []any{
		&UserModel{},
		&CategoryModel{},
		&SubCategoryModel{},
		&LessonModel{},
	}
}
