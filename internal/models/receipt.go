package models

import "time"

// Payment methods accepted on a receipt.
const (
	PaymentCash   = "Cash"
	PaymentCheque = "Cheque"
	PaymentOnline = "Online"
)

// ValidPaymentMethod reports whether m is one of the accepted payment methods.
func ValidPaymentMethod(m string) bool {
	return m == PaymentCash || m == PaymentCheque || m == PaymentOnline
}

// Receipt represents a maintenance payment collected from a resident.
// Amounts are stored in paise to avoid float error, e.g. 12.34 = 1234.
type Receipt struct {
	ID            uint      `gorm:"primaryKey"`
	ReceiptNo     string    `gorm:"size:32;uniqueIndex;not null"`
	Name          string    `gorm:"size:128;not null"` // payer (resident) name
	BlockNumber   string    `gorm:"size:32;not null"`
	AmountPaise   int64     `gorm:"not null"` // non-negative
	Date          time.Time `gorm:"index;not null"`
	ForMonth      string    `gorm:"size:16;not null"` // YYYY-MM period label
	PaymentMethod string    `gorm:"size:16;not null"` // Cash / Cheque / Online
	CreatedAt     time.Time
}
