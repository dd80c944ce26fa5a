package main

import (
	"os"

	"github.com/spf13/cobra"

	configcli "backoffice/internal/interfaces/cli/config"
	"backoffice/internal/interfaces/cli/migrate"
	"backoffice/internal/interfaces/cli/server"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "backoffice",
		Short: "Back-office administration API",
		Long:  `Back-office administration API with built-in server, migration tools and configuration commands.`,
	}

	rootCmd.AddCommand(
		server.NewCommand(),
		migrate.NewCommand(),
		configcli.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
