// Package verify provides the verify command.
package verify

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/agentstation/jettonmap/cmd/application"
	"github.com/agentstation/jettonmap/internal/cmd/output"
	pipeline "github.com/agentstation/jettonmap/internal/verify"
	"github.com/agentstation/jettonmap/pkg/errors"
	"github.com/agentstation/jettonmap/pkg/logging"
)

// ErrFailed is returned when a run does not succeed.
var ErrFailed = errors.New("verification failed")

// NewCommand creates the verify command.
func NewCommand(app application.Application) *cobra.Command {
	var (
		dryRun bool
		strict bool
		mode   string
	)

	cmd := &cobra.Command{
		Use:   "verify [files...]",
		Short: "Validate description files and update the aggregate",
		Long: `Verify checks each description file against TON Center.

With no arguments every file in the jettons directory is checked. Arguments
outside the jettons directory, or without its extension, are skipped. The
aggregate is written only when every checked file passes.`,
		Example: `  jettonmap verify                       # Check every description file
  jettonmap verify jettons/foo.yaml      # Check one file
  jettonmap verify --dry-run -o json     # Report without writing`,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := []pipeline.Option{pipeline.WithDryRun(dryRun)}
			if cmd.Flags().Changed("mode") {
				opts = append(opts, pipeline.WithMode(pipeline.Mode(mode)))
			}
			if cmd.Flags().Changed("strict") {
				opts = append(opts, pipeline.WithStrict(strict))
			}

			v, err := app.Verifier(opts...)
			if err != nil {
				return err
			}

			ctx := logging.WithLogger(cmd.Context(), app.Logger())
			report, err := v.Run(ctx, args)
			if err != nil {
				return err
			}

			if err := output.Write(cmd.OutOrStdout(), app.OutputFormat(), output.NewResults(report)); err != nil {
				return err
			}
			return result(report)
		},
	}

	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "validate and merge without writing the aggregate")
	cmd.Flags().BoolVar(&strict, "strict", true, "also compare name, symbol and decimals")
	cmd.Flags().StringVar(&mode, "mode", string(pipeline.ModeMerge), "aggregate mode: merge or replace")

	return cmd
}

func result(report *pipeline.Report) error {
	if report.Success() {
		return nil
	}
	if failed := len(report.Failed()); failed > 0 {
		return fmt.Errorf("%w: %d of %d files failed", ErrFailed, failed, len(report.Results))
	}
	return fmt.Errorf("%w: no valid jettons found", ErrFailed)
}
