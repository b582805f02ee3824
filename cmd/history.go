package cmd

import (
	"fmt"

	"github.com/qbudget/qbudget/internal/cli"
	"github.com/qbudget/qbudget/internal/store"

	"github.com/spf13/cobra"
)

var flagHistoryLimit int

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List recent budget runs",
	RunE:  runHistory,
}

func init() {
	historyCmd.Flags().IntVarP(&flagHistoryLimit, "limit", "n", 10, "Maximum runs to show")
	rootCmd.AddCommand(historyCmd)
}

func runHistory(_ *cobra.Command, _ []string) error {
	h, err := store.Open(store.DefaultPath())
	if err != nil {
		return err
	}
	defer h.Close()

	runs, err := h.Recent(flagHistoryLimit)
	if err != nil {
		return err
	}

	if len(runs) == 0 {
		fmt.Println("\n  No recorded runs yet.")
		fmt.Println("  Run `qbudget summary` with an input file first.")
		return nil
	}

	rows := make([][]string, 0, len(runs))
	for _, r := range runs {
		rows = append(rows, []string{
			r.RunAt.Local().Format("2006-01-02 15:04"),
			r.InputPath,
			fmt.Sprintf("%d", r.PeriodCount),
			cli.FormatMoney(r.TotalRevenue),
			cli.FormatMoney(r.FinalCash),
			cli.FormatMoney(r.FinalAssets),
		})
	}

	fmt.Println()
	fmt.Print(cli.RenderTable(cli.Table{
		Title:   "Run History",
		Headers: []string{"When", "Input", "Quarters", "Revenue", "Final Cash", "Assets"},
		Rows:    rows,
	}))
	return nil
}
