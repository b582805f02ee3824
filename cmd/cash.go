package cmd

import (
	"fmt"

	"github.com/qbudget/qbudget/internal/cli"

	"github.com/spf13/cobra"
)

var cashCmd = &cobra.Command{
	Use:   "cash",
	Short: "Quarterly cash budget",
	RunE:  runCash,
}

func init() {
	rootCmd.AddCommand(cashCmd)
}

func runCash(_ *cobra.Command, _ []string) error {
	res, err := runPipeline()
	if err != nil {
		return err
	}
	if len(res.CashBudget) == 0 {
		fmt.Println("\n  No quarters found in the input file.")
		return nil
	}

	rows := make([][]string, 0, len(res.CashBudget))
	for _, c := range res.CashBudget {
		rows = append(rows, []string{
			c.Label,
			cli.FormatMoney(c.BeginningCash),
			cli.FormatMoney(c.Collections),
			cli.FormatMoney(c.Disbursements),
			cli.FormatMoney(c.EndingCash),
		})
	}

	fmt.Println()
	fmt.Print(cli.RenderTable(cli.Table{
		Title:   "Cash Budget",
		Headers: []string{"Quarter", "Beginning", "Collections", "Disbursements", "Ending"},
		Rows:    rows,
	}))

	printShortfalls(res.CashBudget)
	return nil
}
