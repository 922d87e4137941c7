package export

import (
	"encoding/csv"
	"fmt"
	"io"

	"society-manager/internal/models"

	"github.com/xuri/excelize/v2"
)

var sheetHeaders = []string{"Receipt No", "Name", "Block", "For Month", "Payment Method", "Date", "Amount"}

// ReceiptsXLSX writes all receipts as an XLSX workbook with the same columns
// as the PDF report, plus a grand-total row.
func ReceiptsXLSX(w io.Writer, receipts []models.Receipt) error {
	f := excelize.NewFile()
	sheetName := "Receipts"
	index, err := f.NewSheet(sheetName)
	if err != nil {
		return fmt.Errorf("%w: new sheet: %v", ErrExportUnavailable, err)
	}
	f.SetActiveSheet(index)

	for i, h := range sheetHeaders {
		cell := fmt.Sprintf("%c1", 'A'+i)
		f.SetCellValue(sheetName, cell, h)
	}

	var total int64
	for idx, r := range receipts {
		row := idx + 2
		f.SetCellValue(sheetName, fmt.Sprintf("A%d", row), r.ReceiptNo)
		f.SetCellValue(sheetName, fmt.Sprintf("B%d", row), r.Name)
		f.SetCellValue(sheetName, fmt.Sprintf("C%d", row), r.BlockNumber)
		f.SetCellValue(sheetName, fmt.Sprintf("D%d", row), r.ForMonth)
		f.SetCellValue(sheetName, fmt.Sprintf("E%d", row), r.PaymentMethod)
		f.SetCellValue(sheetName, fmt.Sprintf("F%d", row), r.Date.Format("2006-01-02"))
		f.SetCellValue(sheetName, fmt.Sprintf("G%d", row), money(r.AmountPaise))
		total += r.AmountPaise
	}

	totalRow := len(receipts) + 2
	f.SetCellValue(sheetName, fmt.Sprintf("F%d", totalRow), "Grand Total")
	f.SetCellValue(sheetName, fmt.Sprintf("G%d", totalRow), money(total))

	f.SetColWidth(sheetName, "A", "A", 14)
	f.SetColWidth(sheetName, "B", "B", 24)
	f.SetColWidth(sheetName, "C", "C", 10)
	f.SetColWidth(sheetName, "D", "D", 12)
	f.SetColWidth(sheetName, "E", "E", 16)
	f.SetColWidth(sheetName, "F", "F", 12)
	f.SetColWidth(sheetName, "G", "G", 12)

	if err := f.Write(w); err != nil {
		return fmt.Errorf("%w: write workbook: %v", ErrExportUnavailable, err)
	}
	return nil
}

// ReceiptsCSV writes all receipts as UTF-8 CSV with a BOM so spreadsheet
// tools pick up the encoding.
func ReceiptsCSV(w io.Writer, receipts []models.Receipt) error {
	if _, err := w.Write([]byte{0xEF, 0xBB, 0xBF}); err != nil {
		return fmt.Errorf("%w: %v", ErrExportUnavailable, err)
	}

	writer := csv.NewWriter(w)
	if err := writer.Write(sheetHeaders); err != nil {
		return fmt.Errorf("%w: %v", ErrExportUnavailable, err)
	}
	for _, r := range receipts {
		rec := []string{
			r.ReceiptNo, r.Name, r.BlockNumber, r.ForMonth,
			r.PaymentMethod, r.Date.Format("2006-01-02"), money(r.AmountPaise),
		}
		if err := writer.Write(rec); err != nil {
			return fmt.Errorf("%w: %v", ErrExportUnavailable, err)
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("%w: %v", ErrExportUnavailable, err)
	}
	return nil
}
