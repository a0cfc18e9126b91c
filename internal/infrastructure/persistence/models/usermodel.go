package models

import "time"

// UserModel represents the database persistence model for storefront users.
type UserModel struct {
	ID           uint   `gorm:"primarykey"`
	Email        string `gorm:"size:255;not null;uniqueIndex"`
	PasswordHash string `gorm:"size:255;not null"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName specifies the table name for GORM
func (UserModel) TableName() string {
	return "users"
}
