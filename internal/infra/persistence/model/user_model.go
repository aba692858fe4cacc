// Package model contains the GORM persistence models of the PostgreSQL record store.
package model

import (
	"time"

	"github.com/google/uuid"
)

// UserModel mirrors the 'users' table. IDs are UUIDv7 generated by the application.
// IDNumber is NULL on legacy records so the unique index only covers real values.
type UserModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name      string    `gorm:"type:varchar(50);not null;index:idx_users_name_phone,priority:1"`
	Phone     string    `gorm:"type:varchar(15);not null;uniqueIndex:uniq_users_phone;index:idx_users_name_phone,priority:2"`
	IDNumber  *string   `gorm:"type:varchar(12);uniqueIndex:uniq_users_id_number"`
	CreatedAt time.Time `gorm:"not null;index"`
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}
