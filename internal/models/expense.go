package models

import "time"

// Expense represents a miscellaneous society transaction. The sign of
// AmountPaise encodes direction: positive is income, negative is an outlay.
type Expense struct {
	ID          uint      `gorm:"primaryKey"`
	Date        time.Time `gorm:"index;not null"`
	Description string    `gorm:"size:255;not null"`
	AmountPaise int64     `gorm:"not null"` // signed, in paise
	CreatedAt   time.Time
}
