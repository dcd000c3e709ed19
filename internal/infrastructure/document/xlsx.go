package document

import (
	"context"
	"fmt"

	"github.com/sangkips/receipt-api/internal/domain/entity"
	"github.com/sangkips/receipt-api/pkg/money"
	"github.com/xuri/excelize/v2"
)

const xlsxSheet = "Receipt"

// XLSXGenerator renders receipts as a one sheet workbook
type XLSXGenerator struct{}

// NewXLSXGenerator creates an XLSX generator
func NewXLSXGenerator() *XLSXGenerator {
	return &XLSXGenerator{}
}

func (g *XLSXGenerator) Generate(ctx context.Context, req *entity.DocumentRequest) (*entity.Document, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", xlsxSheet); err != nil {
		return nil, fmt.Errorf("document: failed to name sheet: %w", err)
	}

	w := &sheetWriter{f: f, next: 1}
	w.row(req.Header.StoreName)
	if req.Header.Address != "" {
		w.row(req.Header.Address)
	}
	if req.Header.Phone != "" {
		w.row(req.Header.Phone)
	}
	w.skip()
	w.row("Receipt", req.Number)
	w.row("Date", req.IssuedAt.Format(dateLayout))
	w.row("Customer", customerLabel(req))
	w.skip()

	headerRow := w.next
	w.row("Qty", "Description", "Unit Price", "Total")
	firstItemRow := w.next
	for _, line := range req.Lines {
		w.row(line.Quantity, line.Description, line.UnitPrice, money.LineTotal(line.Quantity, line.UnitPrice))
	}
	w.skip()
	w.row(nil, nil, "Subtotal", req.Subtotal())
	w.row(nil, nil, "Discount", req.Sale.Discount)
	totalRow := w.next
	w.row(nil, nil, "TOTAL", req.Sale.Total)
	if w.err != nil {
		return nil, fmt.Errorf("document: failed to write cells: %w", w.err)
	}

	if err := styleSheet(f, headerRow, firstItemRow, totalRow); err != nil {
		return nil, err
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("document: failed to render xlsx: %w", err)
	}

	return &entity.Document{
		FileName:    fileName(req, "xlsx"),
		ContentType: "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
		Content:     buf.Bytes(),
	}, nil
}

func styleSheet(f *excelize.File, headerRow, firstItemRow, totalRow int) error {
	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return fmt.Errorf("document: failed to create style: %w", err)
	}
	amount, err := f.NewStyle(&excelize.Style{NumFmt: 2}) // 0.00
	if err != nil {
		return fmt.Errorf("document: failed to create style: %w", err)
	}
	boldAmount, err := f.NewStyle(&excelize.Style{NumFmt: 2, Font: &excelize.Font{Bold: true}})
	if err != nil {
		return fmt.Errorf("document: failed to create style: %w", err)
	}

	steps := []func() error{
		func() error { return f.SetColWidth(xlsxSheet, "A", "A", 12) },
		func() error { return f.SetColWidth(xlsxSheet, "B", "B", 40) },
		func() error { return f.SetColWidth(xlsxSheet, "C", "D", 14) },
		func() error { return f.SetCellStyle(xlsxSheet, "A1", "A1", bold) },
		func() error { return f.SetCellStyle(xlsxSheet, cell(1, headerRow), cell(4, headerRow), bold) },
		func() error { return f.SetCellStyle(xlsxSheet, cell(3, firstItemRow), cell(4, totalRow), amount) },
		func() error { return f.SetCellStyle(xlsxSheet, cell(3, totalRow), cell(4, totalRow), boldAmount) },
	}
	for _, step := range steps {
		if err := step(); err != nil {
			return fmt.Errorf("document: failed to style sheet: %w", err)
		}
	}
	return nil
}

// sheetWriter appends rows to the receipt sheet and keeps the first error
type sheetWriter struct {
	f    *excelize.File
	next int
	err  error
}

func (w *sheetWriter) row(values ...interface{}) {
	for i, v := range values {
		if v == nil || w.err != nil {
			continue
		}
		w.err = w.f.SetCellValue(xlsxSheet, cell(i+1, w.next), v)
	}
	w.next++
}

func (w *sheetWriter) skip() {
	w.next++
}

func cell(col, row int) string {
	name, _ := excelize.CoordinatesToCellName(col, row)
	return name
}
