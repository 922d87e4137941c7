package handler

import (
	"errors"
	"net/http"
	"time"

	"society-manager/internal/models"
	"society-manager/internal/service"
	"society-manager/internal/util"

	"github.com/gin-gonic/gin"
)

// ExpenseHandler serves the expenses collection.
type ExpenseHandler struct {
	Expenses *service.Expenses
}

func NewExpenseHandler(expenses *service.Expenses) *ExpenseHandler {
	return &ExpenseHandler{Expenses: expenses}
}

type createExpenseReq struct {
	Date        string `json:"date" binding:"required"`
	Description string `json:"description" binding:"required,max=255"`
	Amount      string `json:"amount" binding:"required"`
	Direction   string `json:"direction" binding:"required,oneof=income outlay"`
}

type expenseResp struct {
	ID          uint      `json:"id"`
	Date        string    `json:"date"`
	Description string    `json:"description"`
	AmountPaise int64     `json:"amount_paise"`
	Amount      string    `json:"amount"`
	CreatedAt   time.Time `json:"created_at"`
}

func toExpenseResp(e *models.Expense) expenseResp {
	return expenseResp{
		ID:          e.ID,
		Date:        e.Date.Format("2006-01-02"),
		Description: e.Description,
		AmountPaise: e.AmountPaise,
		Amount:      util.FormatPaise(e.AmountPaise),
		CreatedAt:   e.CreatedAt,
	}
}

// ListExpenses returns all entries, newest first.
func (h *ExpenseHandler) ListExpenses(c *gin.Context) {
	expenses, err := h.Expenses.List()
	if err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "query expenses failed")
		return
	}

	list := make([]expenseResp, 0, len(expenses))
	for i := range expenses {
		list = append(list, toExpenseResp(&expenses[i]))
	}
	util.Success(c, util.Response{"expenses": list})
}

// CreateExpense stores one entry; direction decides the stored sign.
func (h *ExpenseHandler) CreateExpense(c *gin.Context) {
	var req createExpenseReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "invalid parameters")
		return
	}

	amountPaise, err := util.ParsePaise(req.Amount)
	if err != nil || amountPaise < 0 {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "invalid amount")
		return
	}
	date, err := util.ParseDate(req.Date)
	if err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "invalid date")
		return
	}

	expense, err := h.Expenses.Create(service.ExpenseInput{
		Date:        date,
		Description: req.Description,
		AmountPaise: amountPaise,
	}, service.Direction(req.Direction))
	if errors.Is(err, service.ErrInvalidInput) {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "invalid parameters")
		return
	}
	if err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "create expense failed")
		return
	}

	util.Success(c, util.Response{"expense": toExpenseResp(expense)})
}

// GetSummary returns income, expense and net balance totals.
func (h *ExpenseHandler) GetSummary(c *gin.Context) {
	summary, err := h.Expenses.Summarize()
	if err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "summarize expenses failed")
		return
	}

	util.Success(c, util.Response{
		"summary": gin.H{
			"income_paise":  summary.IncomePaise,
			"income":        util.FormatPaise(summary.IncomePaise),
			"expense_paise": summary.ExpensePaise,
			"expense":       util.FormatPaise(summary.ExpensePaise),
			"net_paise":     summary.NetPaise,
			"net":           util.FormatPaise(summary.NetPaise),
		},
	})
}
