// Package cli implements the receiptctl command line tool.
//
//	receiptctl
//	├── render   build a receipt and run an export action
//	├── summary  print the sale summary as JSON
//	└── version  print build information
package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/sangkips/receipt-api/internal/app"
	"github.com/sangkips/receipt-api/internal/config"
	"github.com/sangkips/receipt-api/pkg/logger"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// globalFlags are shared by every subcommand
type globalFlags struct {
	envFile string
	verbose bool
}

// NewRootCommand builds the receiptctl command tree
func NewRootCommand() *cobra.Command {
	flags := &globalFlags{}

	root := &cobra.Command{
		Use:   "receiptctl",
		Short: "Build sale receipts and export them from the command line",
		Long: `receiptctl resolves a sale payload against the configured store, prints the
sale summary or exports the receipt as a document.

Example Usage:
  receiptctl summary --payload sale.yaml
  receiptctl render --payload sale.json --format xlsx --out receipt.xlsx
  DB_DRIVER=sqlite DB_SEED=true receiptctl render --payload sale.yaml`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	root.PersistentFlags().StringVar(&flags.envFile, "env-file", ".env", "Path to the .env configuration file")
	root.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Enable verbose logging")

	root.AddCommand(
		newRenderCommand(flags),
		newSummaryCommand(flags),
		newVersionCommand(),
	)
	return root
}

// Execute runs the root command and exits non-zero on failure
func Execute() {
	if err := NewRootCommand().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// openApp loads configuration and wires the receipt service for one command
func openApp(ctx context.Context, flags *globalFlags, opts app.Options) (*app.App, *zap.Logger, error) {
	cfg := config.LoadFile(flags.envFile)

	log, err := logger.New(cfg.App.Env, flags.verbose)
	if err != nil {
		return nil, nil, fmt.Errorf("build logger: %w", err)
	}
	if !flags.verbose {
		log = log.WithOptions(zap.IncreaseLevel(zap.WarnLevel))
	}

	application, err := app.New(ctx, cfg, log, opts)
	if err != nil {
		_ = log.Sync()
		return nil, nil, err
	}
	return application, log, nil
}
