package service

import (
	"errors"
	"fmt"
	"time"

	"society-manager/internal/models"
	"society-manager/internal/store"
	"society-manager/internal/util"

	"gorm.io/gorm"
)

// receiptSeqWidth is the zero-padded width of the receipt number sequence,
// e.g. prefix "NSM-" and sequence 4 give "NSM-0004".
const receiptSeqWidth = 4

// Receipts provides typed operations over the receipts collection. Receipts
// are created once and never updated or deleted.
type Receipts struct {
	store  *store.Store
	prefix string
}

func NewReceipts(s *store.Store, prefix string) *Receipts {
	return &Receipts{store: s, prefix: prefix}
}

// ReceiptInput carries the caller-supplied fields of a new receipt. The
// receipt number and storage key are assigned by Create.
type ReceiptInput struct {
	Name          string
	BlockNumber   string
	AmountPaise   int64
	Date          time.Time
	ForMonth      string // YYYY-MM
	PaymentMethod string
}

func (in *ReceiptInput) validate() error {
	if in.Name == "" {
		return fmt.Errorf("%w: payer name is empty", ErrInvalidInput)
	}
	if in.BlockNumber == "" {
		return fmt.Errorf("%w: block number is empty", ErrInvalidInput)
	}
	if in.AmountPaise < 0 {
		return fmt.Errorf("%w: amount must not be negative", ErrInvalidInput)
	}
	if in.Date.IsZero() {
		return fmt.Errorf("%w: date is empty", ErrInvalidInput)
	}
	if err := util.ValidateMonth(in.ForMonth); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	if !models.ValidPaymentMethod(in.PaymentMethod) {
		return fmt.Errorf("%w: unknown payment method %q", ErrInvalidInput, in.PaymentMethod)
	}
	return nil
}

// List returns all receipts, most recently created first.
func (r *Receipts) List() ([]models.Receipt, error) {
	db, err := r.store.DB()
	if err != nil {
		return nil, err
	}
	var receipts []models.Receipt
	if err := db.Order("id DESC").Find(&receipts).Error; err != nil {
		return nil, fmt.Errorf("list receipts: %w", err)
	}
	return receipts, nil
}

// Get returns the receipt for an exact key, or nil if absent.
func (r *Receipts) Get(id uint) (*models.Receipt, error) {
	db, err := r.store.DB()
	if err != nil {
		return nil, err
	}
	var receipt models.Receipt
	err = db.First(&receipt, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get receipt: %w", err)
	}
	return &receipt, nil
}

// Create stores a new receipt with the next receipt number in sequence.
//
// The number is derived from the current count without any lock spanning the
// subsequent insert, so two near-simultaneous creates can derive the same
// number; the unique index then rejects the second writer with
// ErrDuplicateReceiptNo. The losing submission is not retried.
func (r *Receipts) Create(in ReceiptInput) (*models.Receipt, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}

	db, err := r.store.DB()
	if err != nil {
		return nil, err
	}

	var count int64
	if err := db.Model(&models.Receipt{}).Count(&count).Error; err != nil {
		return nil, fmt.Errorf("count receipts: %w", err)
	}

	receipt := models.Receipt{
		ReceiptNo:     fmt.Sprintf("%s%0*d", r.prefix, receiptSeqWidth, count+1),
		Name:          in.Name,
		BlockNumber:   in.BlockNumber,
		AmountPaise:   in.AmountPaise,
		Date:          in.Date,
		ForMonth:      in.ForMonth,
		PaymentMethod: in.PaymentMethod,
	}
	if err := db.Create(&receipt).Error; err != nil {
		if errors.Is(store.Translate(err), store.ErrConstraintViolation) {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateReceiptNo, receipt.ReceiptNo)
		}
		return nil, fmt.Errorf("create receipt: %w", err)
	}
	return &receipt, nil
}
