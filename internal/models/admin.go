package models

import "time"

// Admin is the single credential record of the application. The username is
// the primary key; exactly one row exists for the fixed admin identity.
type Admin struct {
	Username       string `gorm:"primaryKey;size:64"`
	PasswordDigest string `gorm:"size:64;not null"` // lowercase hex sha256, never plaintext
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
