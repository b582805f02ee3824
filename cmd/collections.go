package cmd

import (
	"fmt"

	"github.com/qbudget/qbudget/internal/cli"

	"github.com/spf13/cobra"
)

var collectionsCmd = &cobra.Command{
	Use:   "collections",
	Short: "Revenue and cash collections schedule",
	RunE:  runCollections,
}

func init() {
	rootCmd.AddCommand(collectionsCmd)
}

func runCollections(_ *cobra.Command, _ []string) error {
	res, err := runPipeline()
	if err != nil {
		return err
	}
	if len(res.Collections) == 0 {
		fmt.Println("\n  No quarters found in the input file.")
		return nil
	}

	rows := make([][]string, 0, len(res.Collections))
	for _, c := range res.Collections {
		rows = append(rows, []string{
			c.Label,
			cli.FormatMoney(c.SalesRevenue),
			cli.FormatMoney(c.Collections),
		})
	}

	fmt.Println()
	fmt.Print(cli.RenderTable(cli.Table{
		Title:   "Sales and Collections",
		Headers: []string{"Quarter", "Revenue", "Collections"},
		Rows:    rows,
	}))
	return nil
}
