package cmd

import (
	"fmt"

	"github.com/qbudget/qbudget/internal/cli"
	"github.com/qbudget/qbudget/internal/input"

	"github.com/spf13/cobra"
)

var sampleCmd = &cobra.Command{
	Use:   "sample [path]",
	Short: "Write a sample sales forecast CSV",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runSample,
}

func init() {
	rootCmd.AddCommand(sampleCmd)
}

func runSample(_ *cobra.Command, args []string) error {
	path := "sales_sample.csv"
	if len(args) == 1 {
		path = args[0]
	}

	if err := input.WriteSample(path); err != nil {
		return err
	}

	rows := make([][]string, 0, 4)
	for _, p := range input.Sample() {
		rows = append(rows, []string{
			p.Label,
			cli.FormatUnits(p.SalesUnits),
			cli.FormatMoney(p.UnitPrice),
		})
	}

	fmt.Printf("  Wrote %s\n\n", path)
	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"Quarter", "Sales Units", "Unit Price"},
		Rows:    rows,
	}))
	fmt.Println()
	fmt.Printf("  Try: qbudget summary --input %s\n", path)
	return nil
}
