// Package list provides the list command.
package list

import (
	"github.com/spf13/cobra"

	"github.com/agentstation/jettonmap/cmd/application"
	"github.com/agentstation/jettonmap/internal/cmd/output"
	"github.com/agentstation/jettonmap/pkg/jettons"
)

// NewCommand creates the list command.
func NewCommand(app application.Application) *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Short:   "Print the aggregated jettons",
		Aliases: []string{"ls"},
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			collection, err := jettons.ReadCollection(app.OutputFile())
			if err != nil {
				return err
			}
			app.Logger().Debug().
				Str("file", app.OutputFile()).
				Int("count", collection.Len()).
				Msg("Loaded aggregate")

			return output.Write(cmd.OutOrStdout(), app.OutputFormat(), output.Records(collection.Records()))
		},
	}
}
