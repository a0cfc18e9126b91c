package models

import "time"

// CaptchaSessionModel represents the database persistence model for CAPTCHA
// challenge sessions.
type CaptchaSessionModel struct {
	ID                string  `gorm:"primarykey;size:64"`
	SolutionIndex     int     `gorm:"not null"`
	IPAddress         string  `gorm:"size:45"`
	Attempts          int     `gorm:"not null;default:0"`
	Verified          bool    `gorm:"not null;default:false"`
	VerificationToken *string `gorm:"size:128;index"`
	VerifiedAt        *time.Time
	CreatedAt         time.Time `gorm:"not null"`
	ExpiresAt         time.Time `gorm:"not null;index"`
}

// TableName specifies the table name for GORM
func (CaptchaSessionModel) TableName() string {
	return "captcha_sessions"
}
