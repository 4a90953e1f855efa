package main

import (
	"github.com/spf13/cobra"

	"space-catalog/shipyard/internal/config"
	"space-catalog/shipyard/internal/errors"
	"space-catalog/shipyard/internal/logging"
)

var (
	configPath string
	cfg        *config.Config
)

var rootCmd = &cobra.Command{
	Use:   "shipyard",
	Short: "Shipyard - ship catalog service",
	Long: `Shipyard stores ship records and serves filtered, sorted and paged
queries over them.

Examples:
  shipyard serve                   # Run the HTTP API
  shipyard migrate                 # Create or update the ships table
  shipyard token --subject ops     # Mint a bearer token for write routes`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		loaded, err := config.Load(configPath)
		if err != nil {
			return err
		}
		if err := logging.Init(loaded.AppEnv); err != nil {
			return errors.Wrap(err, "failed to initialize logger")
		}
		cfg = loaded
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = logging.Close()
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "config file (default: shipyard.toml in . or config/)")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(migrateCmd)
	rootCmd.AddCommand(tokenCmd)
}
