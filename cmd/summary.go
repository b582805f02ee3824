package cmd

import (
	"fmt"

	"github.com/qbudget/qbudget/internal/cli"
	"github.com/qbudget/qbudget/internal/model"

	"github.com/spf13/cobra"
)

var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Headline figures across all schedules",
	RunE:  runSummary,
}

func init() {
	rootCmd.AddCommand(summaryCmd)
}

func runSummary(_ *cobra.Command, _ []string) error {
	res, err := runPipeline()
	if err != nil {
		return err
	}

	n := len(res.Periods)
	if n == 0 {
		fmt.Println("\n  No quarters found in the input file.")
		return nil
	}

	totals := model.IncomeTotals(res.Income)
	final := res.Balance[n-1]
	finalCash := res.CashBudget[n-1]

	fmt.Println()
	fmt.Println(cli.RenderTitle(fmt.Sprintf("MASTER BUDGET  %d quarters", n)))
	fmt.Println()

	cashSeries := make([]float64, n)
	for i, c := range res.CashBudget {
		cashSeries[i] = c.EndingCash
	}

	rows := [][]string{
		{"Total Revenue", cli.FormatMoney(totals.TotalRevenue)},
		{"Total COGS", cli.FormatMoney(totals.TotalCOGS)},
		{"Gross Profit", cli.FormatMoney(totals.GrossProfit)},
		{"---"},
		{"Final Ending Cash", cli.FormatMoney(finalCash.EndingCash)},
		{"Cash Trend", cli.RenderSparkline(cashSeries)},
		{"---"},
		{"Total Assets", cli.FormatMoney(final.TotalAssets)},
		{"External Financing", cli.FormatMoney(final.ExternalFinancing)},
		{"Equity", cli.FormatMoney(final.Equity)},
		{"Working Capital", cli.FormatMoney(final.WorkingCapital)},
	}

	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"Figure", "Value"},
		Rows:    rows,
	}))

	printShortfalls(res.CashBudget)

	fmt.Println()
	fmt.Println("  Run `qbudget cash`, `qbudget income`, or `qbudget balance` for full schedules.")
	return nil
}

// printShortfalls warns about every quarter whose ending cash is negative.
func printShortfalls(cash []model.CashLine) {
	for _, c := range cash {
		if c.EndingCash < 0 {
			fmt.Println(cli.RenderWarning(fmt.Sprintf(
				"%s ends with a cash shortfall of %s", c.Label, cli.FormatMoney(-c.EndingCash))))
		}
	}
}
