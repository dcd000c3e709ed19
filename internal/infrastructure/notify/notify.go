// Package notify delivers export alerts without ever blocking the dispatcher.
package notify

import (
	"context"

	"github.com/sangkips/receipt-api/internal/domain/entity"
	"go.uber.org/zap"
)

// LogNotifier writes alerts to the log
type LogNotifier struct {
	logger *zap.Logger
}

// NewLogNotifier creates a notifier backed by logger
func NewLogNotifier(logger *zap.Logger) *LogNotifier {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &LogNotifier{logger: logger}
}

func (n *LogNotifier) Notify(_ context.Context, alert entity.Alert) {
	n.logger.Warn("user alert",
		zap.String("title", alert.Title),
		zap.String("message", alert.Message),
		zap.String("action", alert.Action),
		zap.Time("at", alert.At))
}

// ChannelNotifier queues alerts on a buffered channel for a consumer (UI, SSE, CLI).
// When the buffer is full the alert is dropped.
type ChannelNotifier struct {
	alerts chan entity.Alert
	logger *zap.Logger
}

// NewChannelNotifier creates a notifier with room for size pending alerts
func NewChannelNotifier(size int, logger *zap.Logger) *ChannelNotifier {
	if size < 1 {
		size = 1
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ChannelNotifier{
		alerts: make(chan entity.Alert, size),
		logger: logger,
	}
}

func (n *ChannelNotifier) Notify(_ context.Context, alert entity.Alert) {
	select {
	case n.alerts <- alert:
	default:
		n.logger.Warn("alert buffer full, dropping alert", zap.String("title", alert.Title))
	}
}

// Alerts returns the receive side of the queue
func (n *ChannelNotifier) Alerts() <-chan entity.Alert {
	return n.alerts
}

// Multi fans an alert out to several notifiers in order
type Multi []interface {
	Notify(ctx context.Context, alert entity.Alert)
}

func (m Multi) Notify(ctx context.Context, alert entity.Alert) {
	for _, n := range m {
		n.Notify(ctx, alert)
	}
}
