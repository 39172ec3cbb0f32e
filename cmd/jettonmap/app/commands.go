package app

import (
	"github.com/spf13/cobra"

	"github.com/agentstation/jettonmap/cmd/jettonmap/cmd/fetch"
	"github.com/agentstation/jettonmap/cmd/jettonmap/cmd/list"
	"github.com/agentstation/jettonmap/cmd/jettonmap/cmd/verify"
	"github.com/agentstation/jettonmap/cmd/jettonmap/cmd/version"
)

func (a *App) registerCommands(rootCmd *cobra.Command) {
	rootCmd.AddCommand(verify.NewCommand(a))
	rootCmd.AddCommand(fetch.NewCommand(a))
	rootCmd.AddCommand(list.NewCommand(a))
	rootCmd.AddCommand(version.NewCommand(a))
}
