package cmd

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "comicmarketd",
	Short: "Pricing and market-limits engine for the comic trading platform",
	Long: `Comicmarketd prices comic-collectible instruments and checks orders
against the platform's market limits.

It provides tools for:
  - Serving the pricing HTTP API
  - Quoting adjusted fair values from grade, age and signature attributes
  - Computing market-maker bid/ask spreads
  - Checking proposed orders against size and balance limits
  - Journaling price updates and order checks`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}
