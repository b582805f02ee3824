package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/qbudget/qbudget/internal/export"

	"github.com/spf13/cobra"
)

var flagExportCSV bool

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export all schedules to an Excel workbook",
	RunE:  runExport,
}

func init() {
	exportCmd.Flags().BoolVar(&flagExportCSV, "csv", false, "Also write one CSV file per schedule")
	rootCmd.AddCommand(exportCmd)
}

func runExport(_ *cobra.Command, _ []string) error {
	res, err := runPipeline()
	if err != nil {
		return err
	}

	sheets := export.Sheets(res)
	path, err := export.WriteWorkbook(sheets, flagOutputDir)
	if err != nil {
		return err
	}
	fmt.Printf("  Wrote %s\n", path)

	if flagExportCSV {
		for _, sheet := range sheets {
			csvPath := filepath.Join(flagOutputDir, csvFileName(sheet.Name))
			if err := export.WriteCSV(sheet, csvPath); err != nil {
				return err
			}
			fmt.Printf("  Wrote %s\n", csvPath)
		}
	}

	if !flagQuiet {
		abs, err := filepath.Abs(flagOutputDir)
		if err == nil {
			fmt.Fprintf(os.Stderr, "  Reports are in %s\n", abs)
		}
	}
	return nil
}

func csvFileName(sheetName string) string {
	return strings.ReplaceAll(strings.ToLower(sheetName), " ", "_") + ".csv"
}
