// Package pdf renders invoice documents. It is the only place that
// knows about page layout; callers hand it an invoice and get bytes.
package pdf

import (
	"bytes"
	"fmt"

	"github.com/go-pdf/fpdf"

	"teamboard/internal/models"
)

// Renderer produces a paginated document for an invoice.
type Renderer interface {
	RenderInvoice(invoice *models.Invoice) ([]byte, error)
}

// companyAddress appears in the document header.
var companyAddress = []string{
	"Team Dashboard",
	"255 S Orange Avenue",
	"Suite 104 #2397",
	"Orlando, FL, 23801",
}

// defaultNote is the placeholder the client shows when no note was set;
// it is not worth a notes block.
const defaultNote = "No additional notes provided."

type invoiceRenderer struct{}

// NewRenderer creates the default A4 invoice renderer.
func NewRenderer() Renderer {
	return &invoiceRenderer{}
}

// RenderInvoice lays out the header, the itemized table with a computed
// total row, and an optional notes block.
func (r *invoiceRenderer) RenderInvoice(invoice *models.Invoice) ([]byte, error) {
	doc := fpdf.New("P", "mm", "A4", "")
	doc.SetAutoPageBreak(true, 20)
	doc.AddPage()

	doc.SetFont("Helvetica", "B", 18)
	doc.CellFormat(0, 10, companyAddress[0], "", 1, "L", false, 0, "")
	doc.SetFont("Helvetica", "", 10)
	for _, line := range companyAddress[1:] {
		doc.CellFormat(0, 5, line, "", 1, "L", false, 0, "")
	}
	doc.Ln(8)

	doc.CellFormat(0, 6, fmt.Sprintf("From: %s", invoice.FromAddress), "", 1, "L", false, 0, "")
	doc.Ln(4)

	doc.SetFont("Helvetica", "B", 14)
	doc.CellFormat(0, 8, fmt.Sprintf("Invoice #%d", invoice.ID), "", 1, "L", false, 0, "")
	doc.SetFont("Helvetica", "", 10)
	doc.CellFormat(0, 6, fmt.Sprintf("Date: %s", invoice.Date), "", 1, "L", false, 0, "")
	doc.Ln(6)

	colWidths := []float64{90, 25, 30, 30}
	headers := []string{"Description", "Quantity", "Price", "Amount"}

	doc.SetFont("Helvetica", "B", 11)
	doc.SetFillColor(128, 128, 128)
	doc.SetTextColor(255, 255, 255)
	for i, header := range headers {
		doc.CellFormat(colWidths[i], 8, header, "1", 0, "C", true, 0, "")
	}
	doc.Ln(-1)

	doc.SetFont("Helvetica", "", 10)
	doc.SetTextColor(0, 0, 0)
	for _, item := range invoice.Items {
		doc.CellFormat(colWidths[0], 7, item.Name, "1", 0, "L", false, 0, "")
		doc.CellFormat(colWidths[1], 7, fmt.Sprintf("%d", item.Quantity), "1", 0, "R", false, 0, "")
		doc.CellFormat(colWidths[2], 7, FormatCents(item.Price), "1", 0, "R", false, 0, "")
		doc.CellFormat(colWidths[3], 7, FormatCents(item.Amount()), "1", 0, "R", false, 0, "")
		doc.Ln(-1)
	}

	doc.SetFont("Helvetica", "B", 10)
	doc.SetFillColor(245, 245, 220)
	doc.CellFormat(colWidths[0]+colWidths[1], 8, "", "1", 0, "L", true, 0, "")
	doc.CellFormat(colWidths[2], 8, "Total", "1", 0, "R", true, 0, "")
	doc.CellFormat(colWidths[3], 8, FormatCents(invoice.Total()), "1", 1, "R", true, 0, "")

	if invoice.Note != "" && invoice.Note != defaultNote {
		doc.Ln(8)
		doc.SetFont("Helvetica", "B", 12)
		doc.CellFormat(0, 7, "Notes:", "", 1, "L", false, 0, "")
		doc.SetFont("Helvetica", "", 10)
		doc.MultiCell(0, 5, invoice.Note, "", "L", false)
	}

	var buf bytes.Buffer
	if err := doc.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render invoice %d: %w", invoice.ID, err)
	}
	return buf.Bytes(), nil
}

// FormatCents formats a cent amount as a dollar string like "$25.50".
func FormatCents(cents int64) string {
	sign := ""
	if cents < 0 {
		sign = "-"
		cents = -cents
	}
	return fmt.Sprintf("%s$%d.%02d", sign, cents/100, cents%100)
}
