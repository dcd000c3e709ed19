// Package document renders receipts into portable files.
package document

import (
	"context"
	"fmt"
	"strings"

	"github.com/sangkips/receipt-api/internal/domain/entity"
	"github.com/sangkips/receipt-api/pkg/utils"
)

// Supported output formats
const (
	FormatPDF    = "pdf"
	FormatXLSX   = "xlsx"
	FormatText   = "text"
	FormatESCPOS = "escpos"
)

// Generator renders a document request into a file
type Generator interface {
	Generate(ctx context.Context, req *entity.DocumentRequest) (*entity.Document, error)
}

// New returns the generator for the given format
func New(format string) (Generator, error) {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case FormatPDF, "":
		return NewPDFGenerator(), nil
	case FormatXLSX:
		return NewXLSXGenerator(), nil
	case FormatText, "txt":
		return NewTextGenerator(0), nil
	case FormatESCPOS:
		return NewESCPOSGenerator(0), nil
	default:
		return nil, fmt.Errorf("document: unknown format %q (use pdf, xlsx, text or escpos)", format)
	}
}

// fileName builds e.g. "tiendas-sac-r-1a2b3c4d.pdf"
func fileName(req *entity.DocumentRequest, ext string) string {
	base := utils.Slugify(req.Header.StoreName + " " + req.Number)
	if base == "" {
		base = "receipt"
	}
	return base + "." + ext
}

func customerLabel(req *entity.DocumentRequest) string {
	if req.Sale.CustomerName == "" {
		return entity.DefaultCustomerLabel
	}
	return req.Sale.CustomerName
}
