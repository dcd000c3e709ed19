package service

import (
	"context"
	"fmt"
	"time"

	"github.com/sangkips/receipt-api/internal/domain/entity"
	"github.com/sangkips/receipt-api/internal/domain/enum"
	"github.com/sangkips/receipt-api/pkg/apperror"
	"github.com/sangkips/receipt-api/pkg/utils"
	"go.uber.org/zap"
)

// ReceiptServiceConfig holds the receipt presentation settings
type ReceiptServiceConfig struct {
	Header           entity.ReceiptHeader
	FallbackCustomer string
}

// ReceiptService turns sale payloads into summaries, previews and exported documents.
// Every call resolves its data from scratch; nothing is cached between calls.
type ReceiptService struct {
	resolver  *ReferenceResolver
	generator DocumentGenerator
	notifier  Notifier
	cfg       ReceiptServiceConfig
	logger    *zap.Logger
}

// NewReceiptService creates a new receipt service
func NewReceiptService(
	resolver *ReferenceResolver,
	generator DocumentGenerator,
	notifier Notifier,
	cfg ReceiptServiceConfig,
	logger *zap.Logger,
) *ReceiptService {
	if cfg.FallbackCustomer == "" {
		cfg.FallbackCustomer = entity.DefaultCustomerLabel
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ReceiptService{
		resolver:  resolver,
		generator: generator,
		notifier:  notifier,
		cfg:       cfg,
		logger:    logger,
	}
}

// Summarize resolves the payload references and builds the sale summary
func (s *ReceiptService) Summarize(ctx context.Context, payload *entity.SalePayload) (*entity.SaleSummary, error) {
	if payload == nil {
		return nil, apperror.NewBadRequestError("Sale payload is required")
	}

	resolution := s.resolver.Resolve(ctx, payload.CustomerRef, payload.ProductRefs())
	if len(resolution.Failures) > 0 {
		s.logger.Debug("summary built with degraded references", zap.Int("failures", len(resolution.Failures)))
	}

	lineItems := ReconcileLineItems(payload.Items, resolution.Products)
	totals := CalculateTotals(payload.Total, payload.Discount)
	return BuildSummary(resolution.Customer, totals, lineItems, s.cfg.FallbackCustomer), nil
}

// Preview builds the receipt as it would be printed, without exporting it
func (s *ReceiptService) Preview(ctx context.Context, payload *entity.SalePayload) (*entity.Receipt, error) {
	summary, err := s.Summarize(ctx, payload)
	if err != nil {
		return nil, err
	}
	return entity.NewReceipt(summary, s.cfg.Header, utils.GenerateReceiptNo(receiptNoPrefix), time.Now()), nil
}

// Export builds a fresh summary and dispatches the requested action on it
func (s *ReceiptService) Export(ctx context.Context, payload *entity.SalePayload, action string) (*ExportOutcome, error) {
	parsed, ok := enum.ParseExportAction(action)
	if !ok {
		return nil, apperror.NewBadRequestError(fmt.Sprintf("Unsupported export action %q (use document, email, print or share)", action))
	}

	summary, err := s.Summarize(ctx, payload)
	if err != nil {
		return nil, err
	}

	dispatcher := NewExportDispatcher(s.generator, s.notifier, s.cfg.Header, s.logger)
	return dispatcher.Dispatch(ctx, parsed, summary)
}
