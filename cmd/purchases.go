package cmd

import (
	"fmt"

	"github.com/qbudget/qbudget/internal/cli"

	"github.com/spf13/cobra"
)

var purchasesCmd = &cobra.Command{
	Use:   "purchases",
	Short: "Purchases and inventory schedule",
	RunE:  runPurchases,
}

func init() {
	rootCmd.AddCommand(purchasesCmd)
}

func runPurchases(_ *cobra.Command, _ []string) error {
	res, err := runPipeline()
	if err != nil {
		return err
	}
	if len(res.Purchases) == 0 {
		fmt.Println("\n  No quarters found in the input file.")
		return nil
	}

	rows := make([][]string, 0, len(res.Purchases))
	for _, p := range res.Purchases {
		rows = append(rows, []string{
			p.Label,
			cli.FormatUnits(p.SalesUnits),
			cli.FormatUnits(p.BeginningInventory),
			cli.FormatUnits(p.DesiredEndingInventory),
			cli.FormatUnits(p.PurchasesUnits),
			cli.FormatMoney(p.CostPerUnit),
			cli.FormatMoney(p.PurchasesCost),
		})
	}

	fmt.Println()
	fmt.Print(cli.RenderTable(cli.Table{
		Title:   "Purchases and Inventory",
		Headers: []string{"Quarter", "Sales Units", "Begin Inv", "End Inv", "Purchases", "Cost/Unit", "Cost"},
		Rows:    rows,
	}))
	return nil
}
