package cmd

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/gregorydgoyins/comicmarket/market"
)

var pricesCmd = &cobra.Command{
	Use:   "prices",
	Short: "List the seeded price book",
	Long: `Print every cataloged instrument with its category and base price.

Example:
  comicmarketd prices`,
	RunE: runPrices,
}

func init() {
	rootCmd.AddCommand(pricesCmd)
}

func runPrices(cmd *cobra.Command, args []string) error {
	book := market.NewPriceBook(market.SeedPrices())
	prices := book.AllPrices()

	symbols := make([]string, 0, len(prices))
	for sym := range prices {
		symbols = append(symbols, sym)
	}
	sort.Strings(symbols)

	fmt.Printf("%-10s %-10s %-35s %12s\n", "SYMBOL", "CATEGORY", "NAME", "PRICE (CC)")
	for _, sym := range symbols {
		meta := market.Instruments[sym]
		fmt.Printf("%-10s %-10s %-35s %12.2f\n", sym, meta.Category, meta.Name, prices[sym])
	}
	return nil
}
