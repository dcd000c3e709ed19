package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/sangkips/receipt-api/internal/domain/entity"
	"github.com/sangkips/receipt-api/internal/domain/enum"
	"github.com/sangkips/receipt-api/pkg/apperror"
	"github.com/sangkips/receipt-api/pkg/utils"
	"go.uber.org/zap"
)

const receiptNoPrefix = "R"

// ErrExportInProgress is returned when a dispatch starts while another one is running
var ErrExportInProgress = apperror.NewConflictError("An export is already in progress")

var errNoGenerator = errors.New("no document generator configured")

// DocumentGenerator renders a receipt into a portable document
type DocumentGenerator interface {
	Generate(ctx context.Context, req *entity.DocumentRequest) (*entity.Document, error)
}

// Notifier delivers alerts to the user. Implementations must not block.
type Notifier interface {
	Notify(ctx context.Context, alert entity.Alert)
}

// ExportOutcome describes how a dispatch ended
type ExportOutcome struct {
	Action   enum.ExportAction `json:"action"`
	State    enum.ExportState  `json:"state"`
	Result   enum.ExportResult `json:"result"`
	Document *entity.Document  `json:"document,omitempty"`
	Alert    *entity.Alert     `json:"alert,omitempty"`
}

// ExportDispatcher routes an export action to its handler and tracks the
// idle -> dispatching -> completed|failed lifecycle.
type ExportDispatcher struct {
	mu    sync.Mutex
	state enum.ExportState

	generator DocumentGenerator
	notifier  Notifier
	header    entity.ReceiptHeader
	logger    *zap.Logger

	now           func() time.Time
	receiptNumber func() string
}

// NewExportDispatcher creates a dispatcher in the idle state
func NewExportDispatcher(generator DocumentGenerator, notifier Notifier, header entity.ReceiptHeader, logger *zap.Logger) *ExportDispatcher {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ExportDispatcher{
		state:     enum.ExportStateIdle,
		generator: generator,
		notifier:  notifier,
		header:    header,
		logger:    logger,
		now:       time.Now,
		receiptNumber: func() string {
			return utils.GenerateReceiptNo(receiptNoPrefix)
		},
	}
}

// State returns the current lifecycle state
func (d *ExportDispatcher) State() enum.ExportState {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.state
}

// Dispatch runs the export action for the summary. Only an invalid action or
// a concurrent dispatch produce an error; a failing document generator ends in
// the failed state with an alert on the outcome.
func (d *ExportDispatcher) Dispatch(ctx context.Context, action enum.ExportAction, summary *entity.SaleSummary) (*ExportOutcome, error) {
	if !action.IsValid() {
		return nil, apperror.NewBadRequestError(fmt.Sprintf("Unsupported export action %q", action))
	}
	if summary == nil {
		return nil, apperror.NewBadRequestError("Sale summary is required")
	}
	if !d.begin() {
		return nil, ErrExportInProgress
	}

	switch action {
	case enum.ExportDocument:
		return d.exportDocument(ctx, summary), nil
	default:
		// email, print and share have no transport yet
		d.finish(enum.ExportStateCompleted)
		d.logger.Info("export action not implemented", zap.String("action", action.String()))
		return &ExportOutcome{
			Action: action,
			State:  enum.ExportStateCompleted,
			Result: enum.ExportResultNotImplemented,
		}, nil
	}
}

func (d *ExportDispatcher) exportDocument(ctx context.Context, summary *entity.SaleSummary) *ExportOutcome {
	req := entity.NewDocumentRequest(summary, d.header, d.receiptNumber(), d.now())

	doc, err := d.generate(ctx, req)
	if err != nil {
		d.finish(enum.ExportStateFailed)
		d.logger.Error("document generation failed",
			zap.String("receipt_no", req.Number),
			zap.Error(err))

		alert := entity.Alert{
			Title:   "Error",
			Message: "The receipt could not be generated. Please try again.",
			Action:  enum.ExportDocument.String(),
			At:      d.now(),
		}
		if d.notifier != nil {
			d.notifier.Notify(ctx, alert)
		}
		return &ExportOutcome{
			Action: enum.ExportDocument,
			State:  enum.ExportStateFailed,
			Result: enum.ExportResultFailed,
			Alert:  &alert,
		}
	}

	d.finish(enum.ExportStateCompleted)
	d.logger.Info("receipt document generated",
		zap.String("receipt_no", req.Number),
		zap.String("file", doc.FileName),
		zap.Int("bytes", len(doc.Content)))

	return &ExportOutcome{
		Action:   enum.ExportDocument,
		State:    enum.ExportStateCompleted,
		Result:   enum.ExportResultGenerated,
		Document: doc,
	}
}

// generate calls the generator and turns a panic into an error so a broken
// renderer cannot take the process down.
func (d *ExportDispatcher) generate(ctx context.Context, req *entity.DocumentRequest) (doc *entity.Document, err error) {
	if d.generator == nil {
		return nil, errNoGenerator
	}

	defer func() {
		if r := recover(); r != nil {
			doc = nil
			err = fmt.Errorf("document generator panicked: %v", r)
		}
	}()

	doc, err = d.generator.Generate(ctx, req)
	if err == nil && doc == nil {
		err = errors.New("document generator returned no document")
	}
	return doc, err
}

func (d *ExportDispatcher) begin() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.state == enum.ExportStateDispatching {
		return false
	}
	d.state = enum.ExportStateDispatching
	return true
}

func (d *ExportDispatcher) finish(state enum.ExportState) {
	d.mu.Lock()
	d.state = state
	d.mu.Unlock()
}
