package document

import (
	"context"

	"github.com/sangkips/receipt-api/internal/domain/entity"
	"github.com/sangkips/receipt-api/pkg/money"
	"github.com/sangkips/receipt-api/pkg/printer"
)

const dateLayout = "2006-01-02 15:04"

// TextGenerator renders a fixed width plain text receipt
type TextGenerator struct {
	width int
}

// NewTextGenerator creates a text generator; width <= 0 means 80mm paper
func NewTextGenerator(width int) *TextGenerator {
	if width <= 0 {
		width = printer.Width80mm
	}
	return &TextGenerator{width: width}
}

func (g *TextGenerator) Generate(ctx context.Context, req *entity.DocumentRequest) (*entity.Document, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	doc := layoutTicket(printer.NewPlainDocument(g.width), req)
	return &entity.Document{
		FileName:    fileName(req, "txt"),
		ContentType: "text/plain; charset=utf-8",
		Content:     doc.Bytes(),
	}, nil
}

// ESCPOSGenerator renders the raw byte stream a thermal printer accepts
type ESCPOSGenerator struct {
	width int
}

// NewESCPOSGenerator creates an ESC/POS generator; width <= 0 means 58mm paper
func NewESCPOSGenerator(width int) *ESCPOSGenerator {
	if width <= 0 {
		width = printer.Width58mm
	}
	return &ESCPOSGenerator{width: width}
}

func (g *ESCPOSGenerator) Generate(ctx context.Context, req *entity.DocumentRequest) (*entity.Document, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	doc := layoutTicket(printer.NewDocument(g.width), req)
	doc.FeedLines(3).PartialCut()
	return &entity.Document{
		FileName:    fileName(req, "bin"),
		ContentType: "application/octet-stream",
		Content:     doc.Bytes(),
	}, nil
}

func layoutTicket(doc *printer.Document, req *entity.DocumentRequest) *printer.Document {
	// Header
	doc.SetAlign(printer.AlignCenter).
		SetBold(true).
		SetFontSize(printer.FontDouble).
		Text(req.Header.StoreName).
		SetFontSize(printer.FontNormal).
		SetBold(false)

	if req.Header.Address != "" {
		doc.Text(req.Header.Address)
	}
	if req.Header.Phone != "" {
		doc.Text(req.Header.Phone)
	}

	doc.SetAlign(printer.AlignLeft).
		Separator('-')

	doc.KeyValue("Receipt:", req.Number).
		KeyValue("Date:", req.IssuedAt.Format(dateLayout)).
		KeyValue("Customer:", customerLabel(req)).
		Separator('-')

	for _, line := range req.Lines {
		doc.ItemLine(line.Quantity, line.Description, money.Format(money.LineTotal(line.Quantity, line.UnitPrice)))
		if line.Quantity > 1 {
			doc.TextF("  @ %s each", money.Format(line.UnitPrice))
		}
	}

	doc.Separator('-')

	doc.KeyValue("Subtotal:", money.Format(req.Subtotal())).
		KeyValue("Discount:", "-"+money.Format(req.Sale.Discount)).
		SetBold(true).
		KeyValue("TOTAL:", money.Format(req.Sale.Total)).
		SetBold(false).
		Separator('-')

	doc.SetAlign(printer.AlignCenter).
		LineFeed().
		Text("Thank you for your purchase!").
		SetAlign(printer.AlignLeft)

	return doc
}
