package cmd

import (
	"fmt"

	"github.com/qbudget/qbudget/internal/cli"

	"github.com/spf13/cobra"
)

var balanceCmd = &cobra.Command{
	Use:   "balance",
	Short: "Quarterly balance sheet",
	RunE:  runBalance,
}

func init() {
	rootCmd.AddCommand(balanceCmd)
}

func runBalance(_ *cobra.Command, _ []string) error {
	res, err := runPipeline()
	if err != nil {
		return err
	}
	if len(res.Balance) == 0 {
		fmt.Println("\n  No quarters found in the input file.")
		return nil
	}

	rows := make([][]string, 0, len(res.Balance))
	for _, b := range res.Balance {
		rows = append(rows, []string{
			b.Label,
			cli.FormatMoney(b.Cash),
			cli.FormatMoney(b.Inventory),
			cli.FormatMoney(b.Receivables),
			cli.FormatMoney(b.TotalAssets),
			cli.FormatMoney(b.ExternalFinancing),
			cli.FormatMoney(b.Equity),
			cli.FormatMoney(b.WorkingCapital),
		})
	}

	fmt.Println()
	fmt.Print(cli.RenderTable(cli.Table{
		Title:   "Balance Sheet",
		Headers: []string{"Quarter", "Cash", "Inventory", "Receivables", "Assets", "Financing", "Equity", "Working Cap"},
		Rows:    rows,
	}))
	return nil
}
