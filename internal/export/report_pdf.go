package export

import (
	"fmt"
	"io"

	"society-manager/internal/models"
	"society-manager/internal/service"

	"github.com/go-pdf/fpdf"
)

// ReceiptsPDF renders every receipt as one tabulated A4 report with a
// grand-total footer row.
func ReceiptsPDF(w io.Writer, receipts []models.Receipt, societyName string) error {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(10, 12, 10)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 14)
	pdf.CellFormat(0, 8, societyName, "", 1, "C", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(0, 5, "All Receipts", "", 1, "C", false, 0, "")
	pdf.Ln(3)

	headers := []string{"Receipt No", "Name", "Block", "For Month", "Method", "Date", "Amount"}
	widths := []float64{28, 46, 18, 22, 20, 24, 32}

	pdf.SetFont("Helvetica", "B", 9)
	pdf.SetFillColor(230, 230, 230)
	for i, h := range headers {
		pdf.CellFormat(widths[i], 7, h, "1", 0, "C", true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 9)
	var total int64
	for _, r := range receipts {
		cells := []string{
			r.ReceiptNo, r.Name, r.BlockNumber, r.ForMonth,
			r.PaymentMethod, r.Date.Format("02-01-2006"), money(r.AmountPaise),
		}
		for i, cell := range cells {
			align := "L"
			if i == len(cells)-1 {
				align = "R"
			}
			pdf.CellFormat(widths[i], 6, cell, "1", 0, align, false, 0, "")
		}
		pdf.Ln(-1)
		total += r.AmountPaise
	}

	// grand total footer row
	pdf.SetFont("Helvetica", "B", 9)
	var labelW float64
	for _, wd := range widths[:len(widths)-1] {
		labelW += wd
	}
	pdf.CellFormat(labelW, 7, "Grand Total", "1", 0, "R", false, 0, "")
	pdf.CellFormat(widths[len(widths)-1], 7, money(total), "1", 1, "R", false, 0, "")

	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("%w: %v", ErrExportUnavailable, err)
	}
	return nil
}

// ExpensesPDF renders the expense report: income amounts green, outlays red,
// with income/expense/net-balance summary lines.
func ExpensesPDF(w io.Writer, expenses []models.Expense, summary service.Summary, societyName string) error {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(10, 12, 10)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 14)
	pdf.CellFormat(0, 8, societyName, "", 1, "C", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(0, 5, "Expense Report", "", 1, "C", false, 0, "")
	pdf.Ln(3)

	headers := []string{"Date", "Description", "Amount"}
	widths := []float64{28, 122, 40}

	pdf.SetFont("Helvetica", "B", 9)
	pdf.SetFillColor(230, 230, 230)
	for i, h := range headers {
		pdf.CellFormat(widths[i], 7, h, "1", 0, "C", true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 9)
	for _, e := range expenses {
		pdf.SetTextColor(0, 0, 0)
		pdf.CellFormat(widths[0], 6, e.Date.Format("02-01-2006"), "1", 0, "L", false, 0, "")
		pdf.CellFormat(widths[1], 6, e.Description, "1", 0, "L", false, 0, "")
		if e.AmountPaise >= 0 {
			pdf.SetTextColor(0, 128, 0)
		} else {
			pdf.SetTextColor(192, 0, 0)
		}
		pdf.CellFormat(widths[2], 6, money(e.AmountPaise), "1", 1, "R", false, 0, "")
	}
	pdf.SetTextColor(0, 0, 0)
	pdf.Ln(4)

	// summary lines
	pdf.SetFont("Helvetica", "B", 10)
	lines := []struct {
		label string
		paise int64
	}{
		{"Total Income", summary.IncomePaise},
		{"Total Expense", summary.ExpensePaise},
		{"Net Balance", summary.NetPaise},
	}
	for _, line := range lines {
		pdf.CellFormat(150, 6, line.label, "", 0, "R", false, 0, "")
		pdf.CellFormat(40, 6, money(line.paise), "", 1, "R", false, 0, "")
	}

	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("%w: %v", ErrExportUnavailable, err)
	}
	return nil
}
