package export

import (
	"bytes"
	"fmt"
	"io"

	"society-manager/internal/models"

	"github.com/go-pdf/fpdf"
)

// ReceiptPDF renders a single receipt as an A5 landscape PDF, including the
// active signature from settings. The suggested file name is
// "<receipt_no>.pdf".
func ReceiptPDF(w io.Writer, receipt models.Receipt, settings models.Settings, societyName string) error {
	pdf := fpdf.New("L", "mm", "A5", "")
	pdf.SetMargins(12, 12, 12)
	pdf.AddPage()

	// header
	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(0, 9, societyName, "", 1, "C", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(0, 5, "Maintenance Receipt", "", 1, "C", false, 0, "")
	pdf.Ln(3)

	pdf.SetFont("Helvetica", "B", 10)
	pdf.CellFormat(95, 6, "Receipt No: "+receipt.ReceiptNo, "", 0, "L", false, 0, "")
	pdf.CellFormat(0, 6, "Date: "+receipt.Date.Format("02-01-2006"), "", 1, "R", false, 0, "")
	pdf.Ln(2)

	// field table
	rows := [][2]string{
		{"Received From", receipt.Name},
		{"Block / Unit", receipt.BlockNumber},
		{"For Month", receipt.ForMonth},
		{"Payment Method", receipt.PaymentMethod},
		{"Amount", "Rs. " + money(receipt.AmountPaise)},
	}
	pdf.SetFont("Helvetica", "", 10)
	for _, row := range rows {
		pdf.SetFont("Helvetica", "B", 10)
		pdf.CellFormat(50, 8, row[0], "1", 0, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 10)
		pdf.CellFormat(0, 8, row[1], "1", 1, "L", false, 0, "")
	}

	if err := drawSignature(pdf, settings); err != nil {
		return err
	}

	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("%w: %v", ErrExportUnavailable, err)
	}
	return nil
}

// drawSignature places the active signature bottom-right with the admin name
// beneath it.
func drawSignature(pdf *fpdf.Fpdf, settings models.Settings) error {
	sig, err := settings.Signature()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrExportUnavailable, err)
	}

	pageW, pageH := pdf.GetPageSize()
	x := pageW - 72
	y := pageH - 40

	switch {
	case sig.Type == models.SignatureTyped:
		pdf.SetXY(x, y)
		pdf.SetFont("Helvetica", "I", 14)
		pdf.CellFormat(60, 10, sig.Text, "", 1, "C", false, 0, "")
	case len(sig.Image) > 0:
		tp := imageType(sig.Image)
		if tp == "" {
			return fmt.Errorf("%w: unsupported signature image encoding", ErrExportUnavailable)
		}
		name := "signature-" + sig.Type
		pdf.RegisterImageOptionsReader(name,
			fpdf.ImageOptions{ImageType: tp}, bytes.NewReader(sig.Image))
		pdf.ImageOptions(name, x+10, y-2, 40, 14, false,
			fpdf.ImageOptions{ImageType: tp}, 0, "")
	}

	pdf.SetXY(x, y+12)
	pdf.SetFont("Helvetica", "", 9)
	pdf.CellFormat(60, 5, settings.AdminName, "T", 1, "C", false, 0, "")
	if pdf.Err() {
		return fmt.Errorf("%w: %v", ErrExportUnavailable, pdf.Error())
	}
	return nil
}
