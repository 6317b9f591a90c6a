package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gregorydgoyins/comicmarket/market"
	"github.com/gregorydgoyins/comicmarket/valuation"
)

var (
	quoteConfigPath string
	quoteGrade      string
	quoteAge        string
	quoteSigs       []string
)

var quoteCmd = &cobra.Command{
	Use:   "quote SYMBOL",
	Short: "Quote an adjusted fair value for an instrument",
	Long: `Compute the adjusted fair value, spread and bid/ask for a symbol
from its catalog base price and the supplied attributes.

Examples:
  comicmarketd quote ASM300 --grade 9.8 --age silver --sig VERIFIED
  comicmarketd quote AF15 --grade RAW --age golden`,
	Args: cobra.ExactArgs(1),
	RunE: runQuote,
}

func init() {
	rootCmd.AddCommand(quoteCmd)
	quoteCmd.Flags().StringVarP(&quoteConfigPath, "config", "c", "", "path to config file")
	quoteCmd.Flags().StringVarP(&quoteGrade, "grade", "g", "RAW", "condition grade (10.0 .. 1.0 or RAW)")
	quoteCmd.Flags().StringVarP(&quoteAge, "age", "a", "modern", "age bracket (golden, silver, bronze, copper, modern)")
	quoteCmd.Flags().StringSliceVarP(&quoteSigs, "sig", "s", nil, "signature tags (repeatable)")
}

func runQuote(cmd *cobra.Command, args []string) error {
	symbol := args[0]

	cfg, err := loadOrDefault(quoteConfigPath)
	if err != nil {
		return err
	}

	book := market.NewPriceBook(market.SeedPrices())
	engine := valuation.NewEngine(cfg.Tables(), cfg.SpreadParams())

	base, err := book.Price(symbol)
	if err != nil {
		return err
	}

	sigs := make([]valuation.SignatureTag, 0, len(quoteSigs))
	for _, s := range quoteSigs {
		sigs = append(sigs, valuation.SignatureTag(s))
	}

	q, err := engine.QuoteFor(base, valuation.Grade(quoteGrade),
		valuation.AgeBracket(quoteAge), sigs)
	if err != nil {
		return err
	}

	fmt.Printf("%s\n", symbol)
	fmt.Printf("  Base:     %.2f CC\n", q.Base)
	fmt.Printf("  Adjusted: %.2f CC\n", q.Adjusted)
	fmt.Printf("  Spread:   %.3f\n", q.Spread)
	fmt.Printf("  Bid/Ask:  %.2f / %.2f CC\n", q.Bid, q.Ask)
	return nil
}
