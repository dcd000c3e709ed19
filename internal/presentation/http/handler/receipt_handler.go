package handler

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sangkips/receipt-api/internal/application/service"
	"github.com/sangkips/receipt-api/internal/domain/entity"
	"github.com/sangkips/receipt-api/internal/domain/enum"
	"github.com/sangkips/receipt-api/internal/presentation/http/dto/request"
	"github.com/sangkips/receipt-api/internal/presentation/http/dto/response"
	"go.uber.org/zap"
)

// ReceiptHandler handles receipt summary, preview and export requests.
type ReceiptHandler struct {
	receiptService *service.ReceiptService
	logger         *zap.Logger
}

// NewReceiptHandler creates a new receipt handler.
func NewReceiptHandler(receiptService *service.ReceiptService, logger *zap.Logger) *ReceiptHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ReceiptHandler{receiptService: receiptService, logger: logger}
}

// Summary returns the sale summary for a payload.
func (h *ReceiptHandler) Summary(c *gin.Context) {
	var payload entity.SalePayload
	if !bindJSON(c, &payload) {
		return
	}

	summary, err := h.receiptService.Summarize(c.Request.Context(), &payload)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Sale summary built", summary)
}

// Preview returns the receipt as it would be rendered.
func (h *ReceiptHandler) Preview(c *gin.Context) {
	var payload entity.SalePayload
	if !bindJSON(c, &payload) {
		return
	}

	receipt, err := h.receiptService.Preview(c.Request.Context(), &payload)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Receipt preview built", receipt)
}

// Export runs an export action. A generated document is returned as a download.
func (h *ReceiptHandler) Export(c *gin.Context) {
	var req request.ExportReceiptRequest
	if !bindJSON(c, &req) {
		return
	}

	outcome, err := h.receiptService.Export(c.Request.Context(), req.Sale, req.Action)
	if err != nil {
		response.Error(c, err)
		return
	}

	h.logger.Info("receipt export finished",
		zap.String("subject", GetSubject(c)),
		zap.String("action", outcome.Action.String()),
		zap.String("result", outcome.Result.String()))

	switch outcome.Result {
	case enum.ExportResultGenerated:
		doc := outcome.Document
		c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", doc.FileName))
		c.Header("X-Export-State", outcome.State.String())
		c.Data(http.StatusOK, doc.ContentType, doc.Content)
	case enum.ExportResultNotImplemented:
		response.OK(c, fmt.Sprintf("Export action %q is not available yet", outcome.Action), outcome)
	default:
		message := "Export failed"
		if outcome.Alert != nil {
			message = outcome.Alert.Message
		}
		response.Failure(c, http.StatusBadGateway, message, outcome)
	}
}
