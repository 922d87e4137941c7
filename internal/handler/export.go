package handler

import (
	"bytes"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"society-manager/internal/export"
	"society-manager/internal/service"
	"society-manager/internal/util"

	"github.com/gin-gonic/gin"
)

// ExportHandler renders receipts and expense reports for download. Documents
// are rendered fully into memory before any response byte is written, so a
// failed render never leaves a partial file with the client.
type ExportHandler struct {
	Receipts    *service.Receipts
	Expenses    *service.Expenses
	Settings    *service.SettingsService
	SocietyName string
}

func NewExportHandler(receipts *service.Receipts, expenses *service.Expenses,
	settings *service.SettingsService, societyName string) *ExportHandler {
	return &ExportHandler{
		Receipts:    receipts,
		Expenses:    expenses,
		Settings:    settings,
		SocietyName: societyName,
	}
}

func sendAttachment(c *gin.Context, contentType, fileName string, body []byte) {
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", fileName))
	c.Data(http.StatusOK, contentType, body)
}

// ReceiptPDF renders one receipt as PDF, named by its receipt number.
func (h *ExportHandler) ReceiptPDF(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "invalid receipt id")
		return
	}

	receipt, err := h.Receipts.Get(uint(id))
	if err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "query receipt failed")
		return
	}
	if receipt == nil {
		util.Error(c, http.StatusNotFound, util.CodeNotFound, "receipt not found")
		return
	}

	settings, err := h.Settings.Load()
	if err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "load settings failed")
		return
	}

	var buf bytes.Buffer
	if err := export.ReceiptPDF(&buf, *receipt, *settings, h.SocietyName); err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "receipt export is unavailable")
		return
	}
	sendAttachment(c, "application/pdf", receipt.ReceiptNo+".pdf", buf.Bytes())
}

// ReceiptsPDF renders the tabulated all-receipts report.
func (h *ExportHandler) ReceiptsPDF(c *gin.Context) {
	receipts, err := h.Receipts.List()
	if err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "query receipts failed")
		return
	}

	var buf bytes.Buffer
	if err := export.ReceiptsPDF(&buf, receipts, h.SocietyName); err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "receipt export is unavailable")
		return
	}
	sendAttachment(c, "application/pdf",
		fmt.Sprintf("receipts_%s.pdf", time.Now().Format("20060102")), buf.Bytes())
}

// ReceiptsXLSX renders all receipts as a spreadsheet.
func (h *ExportHandler) ReceiptsXLSX(c *gin.Context) {
	receipts, err := h.Receipts.List()
	if err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "query receipts failed")
		return
	}

	var buf bytes.Buffer
	if err := export.ReceiptsXLSX(&buf, receipts); err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "spreadsheet export is unavailable")
		return
	}
	sendAttachment(c,
		"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
		fmt.Sprintf("receipts_%s.xlsx", time.Now().Format("20060102")), buf.Bytes())
}

// ReceiptsCSV renders all receipts as CSV.
func (h *ExportHandler) ReceiptsCSV(c *gin.Context) {
	receipts, err := h.Receipts.List()
	if err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "query receipts failed")
		return
	}

	var buf bytes.Buffer
	if err := export.ReceiptsCSV(&buf, receipts); err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "csv export is unavailable")
		return
	}
	sendAttachment(c, "text/csv; charset=utf-8",
		fmt.Sprintf("receipts_%s.csv", time.Now().Format("20060102")), buf.Bytes())
}

// ExpensesPDF renders the expense report with the income/expense/net summary.
func (h *ExportHandler) ExpensesPDF(c *gin.Context) {
	expenses, err := h.Expenses.List()
	if err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "query expenses failed")
		return
	}
	summary, err := h.Expenses.Summarize()
	if err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "summarize expenses failed")
		return
	}

	var buf bytes.Buffer
	if err := export.ExpensesPDF(&buf, expenses, summary, h.SocietyName); err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "expense export is unavailable")
		return
	}
	sendAttachment(c, "application/pdf",
		fmt.Sprintf("expenses_%s.pdf", time.Now().Format("20060102")), buf.Bytes())
}
