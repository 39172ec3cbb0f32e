package app

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// Execute runs the CLI with args.
func (a *App) Execute(ctx context.Context, args []string) error {
	rootCmd := a.createRootCommand()
	rootCmd.SetArgs(args)
	return rootCmd.ExecuteContext(ctx)
}

func (a *App) createRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:     "jettonmap",
		Short:   "Jetton registry validator",
		Version: a.version,
		Long: `Jettonmap validates jetton description files against TON Center and
maintains the aggregated jettons.json catalog.

Each description file in the jettons directory is checked against the
jetton master contract it names. Only when every file passes are the
records merged into the catalog.`,
		PersistentPreRunE: a.setupCommand,
		SilenceUsage:      true,
		SilenceErrors:     true,
	}

	flags := rootCmd.PersistentFlags()
	flags.String("config", "", "config file (default is ./.jettonmap.yaml or $HOME/.jettonmap.yaml)")
	flags.BoolP("verbose", "v", false, "verbose output (shortcut for --log-level=debug)")
	flags.BoolP("quiet", "q", false, "minimal output (shortcut for --log-level=warn)")
	flags.Bool("no-color", false, "disable colored output")
	flags.StringP("format", "o", "", "output format: table, json, yaml")
	flags.String("log-level", "", "log level: trace, debug, info, warn, error (overrides -v/-q)")

	rootCmd.SetVersionTemplate("jettonmap {{.Version}}\n")

	a.registerCommands(rootCmd)
	return rootCmd
}

// setupCommand reloads configuration when --config is given and applies
// the global flags before any command runs.
func (a *App) setupCommand(cmd *cobra.Command, _ []string) error {
	if path := mustGetString(cmd, "config"); path != "" {
		config, err := LoadConfig(path)
		if err != nil {
			return err
		}
		a.config = config
		a.mu.Lock()
		a.source = nil
		a.mu.Unlock()
	}

	a.config.UpdateFromFlags(
		mustGetBool(cmd, "verbose"),
		mustGetBool(cmd, "quiet"),
		mustGetBool(cmd, "no-color"),
		mustGetString(cmd, "format"),
		mustGetString(cmd, "log-level"),
	)

	return a.openLogger()
}

// ExitOnError prints err to standard output and exits with status 1.
func ExitOnError(err error) {
	if err != nil {
		reportError(err)
		os.Exit(1)
	}
}

func reportError(err error) {
	_, _ = fmt.Fprintln(diagnostics, "Error: "+err.Error())
}

func mustGetBool(cmd *cobra.Command, name string) bool {
	val, err := cmd.Flags().GetBool(name)
	if err != nil {
		panic("programming error: failed to get flag " + name + ": " + err.Error())
	}
	return val
}

func mustGetString(cmd *cobra.Command, name string) string {
	val, err := cmd.Flags().GetString(name)
	if err != nil {
		panic("programming error: failed to get flag " + name + ": " + err.Error())
	}
	return val
}
