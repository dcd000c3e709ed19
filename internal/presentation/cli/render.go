package cli

import (
	"fmt"
	"os"

	"github.com/sangkips/receipt-api/internal/app"
	"github.com/sangkips/receipt-api/internal/domain/enum"
	"github.com/spf13/cobra"
)

type renderFlags struct {
	payload string
	action  string
	format  string
	out     string
}

func newRenderCommand(flags *globalFlags) *cobra.Command {
	rf := &renderFlags{}

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Build the receipt for a payload and run an export action",
		Long: `render resolves the payload, builds the sale summary and dispatches the
export action. The document action writes the generated file to --out
(default: the generated file name in the current directory, - for stdout).
email, print and share are accepted but not available yet.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			payload, err := readPayload(rf.payload, cmd.InOrStdin())
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			application, log, err := openApp(ctx, flags, app.Options{Format: rf.format, CollectAlerts: true})
			if err != nil {
				return err
			}
			defer func() {
				_ = application.Close()
				_ = log.Sync()
			}()

			outcome, err := application.Receipts.Export(ctx, payload, rf.action)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			switch outcome.Result {
			case enum.ExportResultGenerated:
				doc := outcome.Document
				if rf.out == "-" {
					_, err := out.Write(doc.Content)
					return err
				}
				target := rf.out
				if target == "" {
					target = doc.FileName
				}
				if err := os.WriteFile(target, doc.Content, 0o644); err != nil {
					return fmt.Errorf("write document: %w", err)
				}
				fmt.Fprintf(out, "Wrote %s (%d bytes)\n", target, len(doc.Content))
				return nil
			case enum.ExportResultNotImplemented:
				fmt.Fprintf(out, "Export action %q is not available yet\n", outcome.Action)
				return nil
			default:
				select {
				case alert := <-application.Alerts.Alerts():
					return fmt.Errorf("%s: %s", alert.Title, alert.Message)
				default:
					return fmt.Errorf("export %s failed", outcome.Action)
				}
			}
		},
	}

	cmd.Flags().StringVarP(&rf.payload, "payload", "p", "", "Sale payload file (YAML or JSON, - for stdin)")
	cmd.Flags().StringVarP(&rf.action, "action", "a", enum.ExportDocument.String(), "Export action: document, email, print or share")
	cmd.Flags().StringVarP(&rf.format, "format", "f", "", "Document format: pdf, xlsx, text or escpos (default from RECEIPT_DOCUMENT_FORMAT)")
	cmd.Flags().StringVarP(&rf.out, "out", "o", "", "Output file for the document, - for stdout")
	_ = cmd.MarkFlagRequired("payload")
	return cmd
}
