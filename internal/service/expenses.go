package service

import (
	"fmt"
	"time"

	"society-manager/internal/models"
	"society-manager/internal/store"
	"society-manager/internal/util"
)

// Direction of an expense entry.
type Direction string

const (
	DirectionIncome Direction = "income"
	DirectionOutlay Direction = "outlay"
)

// Expenses provides typed operations over the expenses collection. Entries
// are created once and never updated or deleted.
type Expenses struct {
	store *store.Store
}

func NewExpenses(s *store.Store) *Expenses {
	return &Expenses{store: s}
}

// ExpenseInput carries the caller-supplied fields of a new entry. AmountPaise
// is the magnitude; the direction decides the stored sign.
type ExpenseInput struct {
	Date        time.Time
	Description string
	AmountPaise int64
}

// Summary is the aggregate view of the expenses collection, all in paise.
type Summary struct {
	IncomePaise  int64
	ExpensePaise int64 // magnitude of all outlays
	NetPaise     int64
}

// List returns all entries, most recently created first.
func (e *Expenses) List() ([]models.Expense, error) {
	db, err := e.store.DB()
	if err != nil {
		return nil, err
	}
	var expenses []models.Expense
	if err := db.Order("id DESC").Find(&expenses).Error; err != nil {
		return nil, fmt.Errorf("list expenses: %w", err)
	}
	return expenses, nil
}

// Create stores a new entry; income keeps the amount positive, outlay negates
// it.
func (e *Expenses) Create(in ExpenseInput, dir Direction) (*models.Expense, error) {
	if err := util.ValidateDescription(in.Description); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	if in.Date.IsZero() {
		return nil, fmt.Errorf("%w: date is empty", ErrInvalidInput)
	}
	if in.AmountPaise < 0 {
		return nil, fmt.Errorf("%w: amount magnitude must not be negative", ErrInvalidInput)
	}

	amount := in.AmountPaise
	switch dir {
	case DirectionIncome:
	case DirectionOutlay:
		amount = -amount
	default:
		return nil, fmt.Errorf("%w: unknown direction %q", ErrInvalidInput, dir)
	}

	db, err := e.store.DB()
	if err != nil {
		return nil, err
	}

	expense := models.Expense{
		Date:        in.Date,
		Description: in.Description,
		AmountPaise: amount,
	}
	if err := db.Create(&expense).Error; err != nil {
		return nil, fmt.Errorf("create expense: %w", err)
	}
	return &expense, nil
}

// Summarize totals the collection: income, outlays and the net balance shown
// to the user.
func (e *Expenses) Summarize() (Summary, error) {
	db, err := e.store.DB()
	if err != nil {
		return Summary{}, err
	}

	var s Summary
	row := db.Model(&models.Expense{}).Select(
		"COALESCE(SUM(CASE WHEN amount_paise > 0 THEN amount_paise ELSE 0 END), 0)," +
			"COALESCE(SUM(CASE WHEN amount_paise < 0 THEN -amount_paise ELSE 0 END), 0)," +
			"COALESCE(SUM(amount_paise), 0)").Row()
	if err := row.Scan(&s.IncomePaise, &s.ExpensePaise, &s.NetPaise); err != nil {
		return Summary{}, fmt.Errorf("summarize expenses: %w", err)
	}
	return s, nil
}
