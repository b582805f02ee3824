package export

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
)

// WriteCSV writes a single sheet as a CSV file at path.
func WriteCSV(sheet Sheet, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(sheet.Headers); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	for _, row := range sheet.Rows {
		record := make([]string, len(row))
		for i, cell := range row {
			switch v := cell.(type) {
			case string:
				record[i] = v
			case float64:
				record[i] = strconv.FormatFloat(v, 'f', -1, 64)
			default:
				record[i] = fmt.Sprint(v)
			}
		}
		if err := w.Write(record); err != nil {
			return fmt.Errorf("writing row: %w", err)
		}
	}

	w.Flush()
	return w.Error()
}
