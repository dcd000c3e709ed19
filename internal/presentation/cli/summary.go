package cli

import (
	"encoding/json"

	"github.com/sangkips/receipt-api/internal/app"
	"github.com/spf13/cobra"
)

func newSummaryCommand(flags *globalFlags) *cobra.Command {
	var payloadPath string

	cmd := &cobra.Command{
		Use:   "summary",
		Short: "Print the sale summary for a payload as JSON",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			payload, err := readPayload(payloadPath, cmd.InOrStdin())
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			application, log, err := openApp(ctx, flags, app.Options{})
			if err != nil {
				return err
			}
			defer func() {
				_ = application.Close()
				_ = log.Sync()
			}()

			summary, err := application.Receipts.Summarize(ctx, payload)
			if err != nil {
				return err
			}

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(summary)
		},
	}

	cmd.Flags().StringVarP(&payloadPath, "payload", "p", "", "Sale payload file (YAML or JSON, - for stdin)")
	_ = cmd.MarkFlagRequired("payload")
	return cmd
}
