package main

import (
	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "parky-api",
		Short: "National parks and trails REST API",
		Long: `parky-api serves a versioned REST API for national parks and their trails.
Configuration is read from config.yaml, a .env file and PARKY_* environment variables.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(newServeCmd(), newMigrateCmd(), newAdminCmd())
	return root
}
