package export

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/xuri/excelize/v2"
)

// WriteWorkbook writes every non-empty sheet into one timestamped .xlsx
// under outputDir and returns the file path. Directory creation is retried
// once before the error surfaces.
func WriteWorkbook(sheets []Sheet, outputDir string) (string, error) {
	if len(sheets) == 0 {
		return "", fmt.Errorf("no schedules to export")
	}

	if err := ensureDir(outputDir); err != nil {
		return "", err
	}

	f := excelize.NewFile()
	defer f.Close()

	for i, sheet := range sheets {
		if i == 0 {
			// Rename the default sheet instead of leaving it empty.
			if err := f.SetSheetName(f.GetSheetName(0), sheet.Name); err != nil {
				return "", fmt.Errorf("naming sheet %q: %w", sheet.Name, err)
			}
		} else {
			if _, err := f.NewSheet(sheet.Name); err != nil {
				return "", fmt.Errorf("creating sheet %q: %w", sheet.Name, err)
			}
		}

		header := make([]interface{}, len(sheet.Headers))
		for j, h := range sheet.Headers {
			header[j] = h
		}
		if err := f.SetSheetRow(sheet.Name, "A1", &header); err != nil {
			return "", fmt.Errorf("writing header of %q: %w", sheet.Name, err)
		}

		for r, row := range sheet.Rows {
			cell, err := excelize.CoordinatesToCellName(1, r+2)
			if err != nil {
				return "", fmt.Errorf("addressing row %d of %q: %w", r+2, sheet.Name, err)
			}
			if err := f.SetSheetRow(sheet.Name, cell, &row); err != nil {
				return "", fmt.Errorf("writing row %d of %q: %w", r+2, sheet.Name, err)
			}
		}
	}

	path := filepath.Join(outputDir, fmt.Sprintf("budget_reports_%s.xlsx", time.Now().Format("20060102_150405")))
	if err := f.SaveAs(path); err != nil {
		return "", fmt.Errorf("saving workbook: %w", err)
	}
	return path, nil
}

func ensureDir(dir string) error {
	err := os.MkdirAll(dir, 0o755)
	if err == nil {
		return nil
	}
	if retryErr := os.MkdirAll(dir, 0o755); retryErr == nil {
		return nil
	}
	return fmt.Errorf("creating output dir %s: %w", dir, err)
}
