// Package cmd implements the CLI commands for pokepack-tracker.
package cmd

import (
	"github.com/spf13/cobra"
)

var (
	cfgFile string
	apiURL  string
)

var rootCmd = &cobra.Command{
	Use:   "pokepack-tracker",
	Short: "Track Pokemon sealed product prices",
	Long:  "A service that tracks TCGPlayer prices for Pokemon sealed products (booster boxes, elite trainer boxes, bundles), classifies them against reference prices, and sends Discord alerts when prices drop below your targets.",
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "config.yaml", "config file path")
	rootCmd.PersistentFlags().
		StringVar(&apiURL, "api-url", "http://localhost:8080", "API server URL")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// Root exposes the command tree for documentation generators.
func Root() *cobra.Command {
	return rootCmd
}
