package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gregorydgoyins/comicmarket/risk"
)

var (
	checkConfigPath string
	checkQuantity   float64
	checkPrice      float64
	checkBalance    float64
)

var checkCmd = &cobra.Command{
	Use:   "check SYMBOL",
	Short: "Check a proposed order against market limits",
	Long: `Evaluate a proposed order against the platform's order-size limit
and an available balance. The check reports violations; it does not
place anything.

Example:
  comicmarketd check ASM300 --quantity 100 --price 2500 --balance 500000`,
	Args: cobra.ExactArgs(1),
	RunE: runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)
	checkCmd.Flags().StringVarP(&checkConfigPath, "config", "c", "", "path to config file")
	checkCmd.Flags().Float64VarP(&checkQuantity, "quantity", "q", 0, "order quantity (required)")
	checkCmd.Flags().Float64VarP(&checkPrice, "price", "p", 0, "order price in CC (required)")
	checkCmd.Flags().Float64VarP(&checkBalance, "balance", "b", 0, "available balance in CC (defaults to configured starting balance)")
	checkCmd.MarkFlagRequired("quantity")
	checkCmd.MarkFlagRequired("price")
}

func runCheck(cmd *cobra.Command, args []string) error {
	symbol := args[0]

	cfg, err := loadOrDefault(checkConfigPath)
	if err != nil {
		return err
	}
	if checkQuantity <= 0 || checkPrice <= 0 {
		return fmt.Errorf("quantity and price must be positive")
	}

	balance := checkBalance
	if balance == 0 {
		balance = cfg.Market.StartingBalance
	}

	d := risk.CheckOrder(risk.Order{
		Symbol:   symbol,
		Quantity: checkQuantity,
		Price:    checkPrice,
	}, cfg.Market.Limits, balance)

	fmt.Printf("%s x %.0f @ %.2f CC = %.2f CC\n", symbol, checkQuantity, checkPrice, d.OrderValue)
	if d.Allowed() {
		fmt.Println("✓ Order within limits")
		return nil
	}
	for _, v := range d.Violations {
		fmt.Printf("✗ %s: %s\n", v.Code, v.Msg)
	}
	return nil
}
