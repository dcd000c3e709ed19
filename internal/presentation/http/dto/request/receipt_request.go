package request

import "github.com/sangkips/receipt-api/internal/domain/entity"

// ExportReceiptRequest is the request body for exporting a receipt
type ExportReceiptRequest struct {
	Sale   *entity.SalePayload `json:"sale" binding:"required"`
	Action string              `json:"action" binding:"required"`
}
