// Package input loads and validates the quarterly sales table.
package input

import (
	"fmt"
	"math"
	"os"
	"strings"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"

	"github.com/qbudget/qbudget/internal/model"
)

// requiredColumns must all be present in the input CSV.
var requiredColumns = []string{"quarter", "sales_units", "unit_price"}

// Load reads a CSV file into an ordered period sequence. The row order of
// the file defines the recurrence chain, so it is preserved as-is.
func Load(path string) ([]model.Period, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening input file: %w", err)
	}
	defer f.Close()

	df := dataframe.ReadCSV(f, dataframe.DetectTypes(true), dataframe.HasHeader(true))
	if df.Error() != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, df.Error())
	}
	return FromDataFrame(df)
}

// FromDataFrame validates a dataframe and converts it to periods. Missing
// columns and non-positive or non-numeric values are rejected with errors
// naming the offending column or row.
func FromDataFrame(df dataframe.DataFrame) ([]model.Period, error) {
	if missing := missingColumns(df); len(missing) > 0 {
		return nil, &model.ValidationError{
			Field:  strings.Join(missing, ", "),
			Reason: "required column(s) missing",
		}
	}

	quarters := df.Col("quarter")
	units := df.Col("sales_units")
	prices := df.Col("unit_price")

	periods := make([]model.Period, 0, df.Nrow())
	for i := 0; i < df.Nrow(); i++ {
		u := units.Elem(i).Float()
		p := prices.Elem(i).Float()

		if math.IsNaN(u) || math.IsInf(u, 0) {
			return nil, rowError("sales_units", i, "must be numeric")
		}
		if math.IsNaN(p) || math.IsInf(p, 0) {
			return nil, rowError("unit_price", i, "must be numeric")
		}
		if u <= 0 {
			return nil, rowError("sales_units", i, "must be a positive number")
		}
		if p <= 0 {
			return nil, rowError("unit_price", i, "must be a positive number")
		}

		periods = append(periods, model.Period{
			Label:      quarters.Elem(i).String(),
			SalesUnits: u,
			UnitPrice:  p,
		})
	}
	return periods, nil
}

func missingColumns(df dataframe.DataFrame) []string {
	present := make(map[string]bool, len(df.Names()))
	for _, name := range df.Names() {
		present[name] = true
	}
	var missing []string
	for _, col := range requiredColumns {
		if !present[col] {
			missing = append(missing, col)
		}
	}
	return missing
}

func rowError(column string, row int, reason string) error {
	return &model.ValidationError{
		Field:  column,
		Reason: fmt.Sprintf("row %d %s", row+1, reason),
	}
}

// toDataFrame builds a dataframe from periods, used by the sample writer.
func toDataFrame(periods []model.Period) dataframe.DataFrame {
	labels := make([]string, len(periods))
	units := make([]float64, len(periods))
	prices := make([]float64, len(periods))
	for i, p := range periods {
		labels[i] = p.Label
		units[i] = p.SalesUnits
		prices[i] = p.UnitPrice
	}
	return dataframe.New(
		series.New(labels, series.String, "quarter"),
		series.New(units, series.Float, "sales_units"),
		series.New(prices, series.Float, "unit_price"),
	)
}
