package input

import (
	"fmt"
	"os"

	"github.com/qbudget/qbudget/internal/model"
)

// Sample returns the canonical four-quarter demo table.
func Sample() []model.Period {
	return []model.Period{
		{Label: "Q1", SalesUnits: 10000, UnitPrice: 20},
		{Label: "Q2", SalesUnits: 12000, UnitPrice: 20},
		{Label: "Q3", SalesUnits: 15000, UnitPrice: 20},
		{Label: "Q4", SalesUnits: 13000, UnitPrice: 20},
	}
}

// WriteSample writes the demo table as a starter CSV.
func WriteSample(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating sample file: %w", err)
	}
	defer f.Close()

	df := toDataFrame(Sample())
	if err := df.WriteCSV(f); err != nil {
		return fmt.Errorf("writing sample CSV: %w", err)
	}
	return nil
}
