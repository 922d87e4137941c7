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

// ReceiptHandler serves the receipts collection.
type ReceiptHandler struct {
	Receipts *service.Receipts
}

func NewReceiptHandler(receipts *service.Receipts) *ReceiptHandler {
	return &ReceiptHandler{Receipts: receipts}
}

type createReceiptReq struct {
	Name          string `json:"name" binding:"required,max=128"`
	BlockNumber   string `json:"block_number" binding:"required,max=32"`
	Amount        string `json:"amount" binding:"required"`
	Date          string `json:"date" binding:"required"`
	ForMonth      string `json:"for_month" binding:"required"`
	PaymentMethod string `json:"payment_method" binding:"required,oneof=Cash Cheque Online"`
}

type receiptResp struct {
	ID            uint      `json:"id"`
	ReceiptNo     string    `json:"receipt_no"`
	Name          string    `json:"name"`
	BlockNumber   string    `json:"block_number"`
	AmountPaise   int64     `json:"amount_paise"`
	Amount        string    `json:"amount"`
	Date          string    `json:"date"`
	ForMonth      string    `json:"for_month"`
	PaymentMethod string    `json:"payment_method"`
	CreatedAt     time.Time `json:"created_at"`
}

func toReceiptResp(r *models.Receipt) receiptResp {
	return receiptResp{
		ID:            r.ID,
		ReceiptNo:     r.ReceiptNo,
		Name:          r.Name,
		BlockNumber:   r.BlockNumber,
		AmountPaise:   r.AmountPaise,
		Amount:        util.FormatPaise(r.AmountPaise),
		Date:          r.Date.Format("2006-01-02"),
		ForMonth:      r.ForMonth,
		PaymentMethod: r.PaymentMethod,
		CreatedAt:     r.CreatedAt,
	}
}

// ListReceipts returns all receipts, newest first.
func (h *ReceiptHandler) ListReceipts(c *gin.Context) {
	receipts, err := h.Receipts.List()
	if err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "query receipts failed")
		return
	}

	list := make([]receiptResp, 0, len(receipts))
	for i := range receipts {
		list = append(list, toReceiptResp(&receipts[i]))
	}
	util.Success(c, util.Response{"receipts": list})
}

// CreateReceipt stores a new receipt with the next number in sequence. A
// duplicate receipt number (the known create race) comes back as 409 and is
// not retried.
func (h *ReceiptHandler) CreateReceipt(c *gin.Context) {
	var req createReceiptReq
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

	receipt, err := h.Receipts.Create(service.ReceiptInput{
		Name:          req.Name,
		BlockNumber:   req.BlockNumber,
		AmountPaise:   amountPaise,
		Date:          date,
		ForMonth:      req.ForMonth,
		PaymentMethod: req.PaymentMethod,
	})
	if errors.Is(err, service.ErrDuplicateReceiptNo) {
		util.Error(c, http.StatusConflict, util.CodeConflict, "receipt number already taken, please submit again")
		return
	}
	if errors.Is(err, service.ErrInvalidInput) {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "invalid parameters")
		return
	}
	if err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "create receipt failed")
		return
	}

	util.Success(c, util.Response{"receipt": toReceiptResp(receipt)})
}
