package document

import (
	"bytes"
	"context"
	"fmt"

	"github.com/go-pdf/fpdf"
	"github.com/sangkips/receipt-api/internal/domain/entity"
	"github.com/sangkips/receipt-api/pkg/money"
)

// Ticket geometry in millimetres (80mm roll paper).
const (
	pdfPageWidth  = 80.0
	pdfMargin     = 5.0
	pdfLineHeight = 5.0
	pdfQtyWidth   = 10.0
	pdfAmtWidth   = 20.0
)

// PDFGenerator renders receipts as a single column PDF ticket
type PDFGenerator struct{}

// NewPDFGenerator creates a PDF generator
func NewPDFGenerator() *PDFGenerator {
	return &PDFGenerator{}
}

func (g *PDFGenerator) Generate(ctx context.Context, req *entity.DocumentRequest) (*entity.Document, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// Enough room for header, totals and one row per line; overflow breaks onto a new page.
	height := 95.0 + float64(len(req.Lines))*pdfLineHeight*2
	pdf := fpdf.NewCustom(&fpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "mm",
		Size:           fpdf.SizeType{Wd: pdfPageWidth, Ht: height},
	})
	pdf.SetMargins(pdfMargin, pdfMargin, pdfMargin)
	pdf.SetAutoPageBreak(true, pdfMargin)
	pdf.SetTitle("Receipt "+req.Number, true)
	pdf.SetCreationDate(req.IssuedAt)
	pdf.AddPage()

	// Core fonts are cp1252; translate so accented names print correctly.
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	contentWidth := pdfPageWidth - 2*pdfMargin
	descWidth := contentWidth - pdfQtyWidth - pdfAmtWidth

	pdf.SetFont("Helvetica", "B", 12)
	pdf.CellFormat(contentWidth, 7, tr(req.Header.StoreName), "", 1, "C", false, 0, "")
	pdf.SetFont("Helvetica", "", 8)
	if req.Header.Address != "" {
		pdf.CellFormat(contentWidth, 4, tr(req.Header.Address), "", 1, "C", false, 0, "")
	}
	if req.Header.Phone != "" {
		pdf.CellFormat(contentWidth, 4, tr(req.Header.Phone), "", 1, "C", false, 0, "")
	}
	separator(pdf)

	keyValue(pdf, "Receipt:", req.Number, contentWidth)
	keyValue(pdf, "Date:", req.IssuedAt.Format(dateLayout), contentWidth)
	keyValue(pdf, "Customer:", tr(customerLabel(req)), contentWidth)
	separator(pdf)

	pdf.SetFont("Helvetica", "B", 8)
	pdf.CellFormat(pdfQtyWidth, pdfLineHeight, "Qty", "", 0, "L", false, 0, "")
	pdf.CellFormat(descWidth, pdfLineHeight, fmt.Sprintf("Products (%d)", len(req.Lines)), "", 0, "L", false, 0, "")
	pdf.CellFormat(pdfAmtWidth, pdfLineHeight, "Amount", "", 1, "R", false, 0, "")
	pdf.SetFont("Helvetica", "", 8)

	for _, line := range req.Lines {
		desc := tr(line.Description)
		if parts := pdf.SplitText(desc, descWidth); len(parts) > 0 {
			desc = parts[0]
		}
		pdf.CellFormat(pdfQtyWidth, pdfLineHeight, fmt.Sprintf("%dx", line.Quantity), "", 0, "L", false, 0, "")
		pdf.CellFormat(descWidth, pdfLineHeight, desc, "", 0, "L", false, 0, "")
		pdf.CellFormat(pdfAmtWidth, pdfLineHeight, money.Format(money.LineTotal(line.Quantity, line.UnitPrice)), "", 1, "R", false, 0, "")
		if line.Quantity > 1 {
			pdf.CellFormat(contentWidth, 4, fmt.Sprintf("    @ %s each", money.Format(line.UnitPrice)), "", 1, "L", false, 0, "")
		}
	}
	separator(pdf)

	keyValue(pdf, "Subtotal:", money.Format(req.Subtotal()), contentWidth)
	keyValue(pdf, "Discount:", "-"+money.Format(req.Sale.Discount), contentWidth)
	pdf.SetFont("Helvetica", "B", 10)
	keyValue(pdf, "TOTAL:", money.Format(req.Sale.Total), contentWidth)

	pdf.SetFont("Helvetica", "", 8)
	pdf.Ln(3)
	pdf.CellFormat(contentWidth, 4, "Thank you for your purchase!", "", 1, "C", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("document: failed to render pdf: %w", err)
	}

	return &entity.Document{
		FileName:    fileName(req, "pdf"),
		ContentType: "application/pdf",
		Content:     buf.Bytes(),
	}, nil
}

func keyValue(pdf *fpdf.Fpdf, key, value string, width float64) {
	half := width / 2
	pdf.CellFormat(half, pdfLineHeight, key, "", 0, "L", false, 0, "")
	pdf.CellFormat(half, pdfLineHeight, value, "", 1, "R", false, 0, "")
}

func separator(pdf *fpdf.Fpdf) {
	y := pdf.GetY() + 1
	pdf.Line(pdfMargin, y, pdfPageWidth-pdfMargin, y)
	pdf.Ln(2)
}
