// Package app wires the receipt service from configuration. The HTTP server and
// the CLI build their dependencies through it.
package app

import (
	"context"
	"fmt"

	"github.com/sangkips/receipt-api/internal/application/service"
	"github.com/sangkips/receipt-api/internal/config"
	"github.com/sangkips/receipt-api/internal/domain/entity"
	"github.com/sangkips/receipt-api/internal/infrastructure/document"
	"github.com/sangkips/receipt-api/internal/infrastructure/notify"
	"github.com/sangkips/receipt-api/internal/infrastructure/store"
	"go.uber.org/zap"
)

// App holds the wired receipt service and the resources behind it
type App struct {
	Receipts *service.ReceiptService
	Store    *store.Store
	// Alerts is nil unless Options.CollectAlerts is set
	Alerts *notify.ChannelNotifier
}

// Options overrides parts of the configuration for a single run
type Options struct {
	// Format overrides RECEIPT_DOCUMENT_FORMAT when set
	Format string
	// CollectAlerts queues user alerts on App.Alerts in addition to logging them
	CollectAlerts bool
}

// New opens the store and builds the receipt service
func New(ctx context.Context, cfg *config.Config, logger *zap.Logger, opts Options) (*App, error) {
	format := cfg.Receipt.DocumentFormat
	if opts.Format != "" {
		format = opts.Format
	}
	generator, err := document.New(format)
	if err != nil {
		return nil, err
	}

	st, err := store.Open(ctx, cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}

	var alerts *notify.ChannelNotifier
	notifier := notify.Multi{notify.NewLogNotifier(logger)}
	if opts.CollectAlerts {
		alerts = notify.NewChannelNotifier(16, logger)
		notifier = append(notifier, alerts)
	}

	resolver := service.NewReferenceResolver(st.Customers, st.Products, logger)
	receipts := service.NewReceiptService(resolver, generator, notifier, ReceiptServiceConfig(&cfg.Receipt), logger)

	return &App{
		Receipts: receipts,
		Store:    st,
		Alerts:   alerts,
	}, nil
}

// Close releases the store
func (a *App) Close() error {
	return a.Store.Close()
}

// ReceiptServiceConfig maps the receipt section of the configuration
func ReceiptServiceConfig(cfg *config.ReceiptConfig) service.ReceiptServiceConfig {
	return service.ReceiptServiceConfig{
		Header: entity.ReceiptHeader{
			StoreName: cfg.StoreName,
			Address:   cfg.StoreAddress,
			Phone:     cfg.StorePhone,
		},
		FallbackCustomer: cfg.FallbackCustomer,
	}
}
