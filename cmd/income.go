package cmd

import (
	"fmt"

	"github.com/qbudget/qbudget/internal/cli"
	"github.com/qbudget/qbudget/internal/model"

	"github.com/spf13/cobra"
)

var incomeCmd = &cobra.Command{
	Use:   "income",
	Short: "Quarterly income statement",
	RunE:  runIncome,
}

func init() {
	rootCmd.AddCommand(incomeCmd)
}

func runIncome(_ *cobra.Command, _ []string) error {
	res, err := runPipeline()
	if err != nil {
		return err
	}
	if len(res.Income) == 0 {
		fmt.Println("\n  No quarters found in the input file.")
		return nil
	}

	rows := make([][]string, 0, len(res.Income)+2)
	for _, l := range res.Income {
		rows = append(rows, incomeRow(l))
	}
	rows = append(rows, []string{"---"})
	rows = append(rows, incomeRow(model.IncomeTotals(res.Income)))

	fmt.Println()
	fmt.Print(cli.RenderTable(cli.Table{
		Title:   "Income Statement",
		Headers: []string{"Quarter", "Revenue", "COGS", "Gross Profit"},
		Rows:    rows,
	}))
	return nil
}

func incomeRow(l model.IncomeLine) []string {
	return []string{
		l.Label,
		cli.FormatMoney(l.TotalRevenue),
		cli.FormatMoney(l.TotalCOGS),
		cli.FormatMoney(l.GrossProfit),
	}
}
