// Package fetch provides the fetch command.
package fetch

import (
	"github.com/spf13/cobra"

	"github.com/agentstation/jettonmap/cmd/application"
	"github.com/agentstation/jettonmap/internal/cmd/output"
	"github.com/agentstation/jettonmap/pkg/logging"
)

// NewCommand creates the fetch command.
func NewCommand(app application.Application) *cobra.Command {
	return &cobra.Command{
		Use:   "fetch <address>",
		Short: "Show what TON Center reports for a jetton master",
		Args:  cobra.ExactArgs(1),
		Example: `  jettonmap fetch EQBynBO23ywHy_CgarY9NK9FTz0yDsG82PtcbSTQgGoXwiuA
  jettonmap fetch 0:729c13b6df2c07cbf0a06ab63d34af454f3d320ec1bcd8fb5c6d24d0806a17c2 -o yaml`,
		RunE: func(cmd *cobra.Command, args []string) error {
			source, err := app.Source()
			if err != nil {
				return err
			}

			logger := app.Logger()
			ctx := logging.WithLogger(cmd.Context(), logger)
			att, err := source.Fetch(ctx, args[0])
			if err != nil {
				return err
			}
			if !att.IsJetton {
				logger.Warn().Str("address", args[0]).Msg("Address is not a jetton master")
			}

			return output.Write(cmd.OutOrStdout(), app.OutputFormat(), output.NewAttestation(att))
		},
	}
}
