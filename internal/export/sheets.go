// Package export writes computed schedules to Excel workbooks and CSV files.
package export

import (
	"github.com/qbudget/qbudget/internal/engine"
)

// Sheet is one rectangular report table: a header row of column names plus
// numeric rows. The first cell of each row is the period label.
type Sheet struct {
	Name    string
	Headers []string
	Rows    [][]interface{}
}

// Report sheet names, also used as workbook sheet titles.
const (
	SheetCashBudget      = "Cash Budget"
	SheetIncomeStatement = "Income Statement"
	SheetBalanceSheet    = "Balance Sheet"
)

// Sheets converts a pipeline result into the three named report tables.
// Empty tables are omitted so an exporter never writes a headers-only sheet.
func Sheets(res *engine.Result) []Sheet {
	var sheets []Sheet

	if len(res.CashBudget) > 0 {
		s := Sheet{
			Name:    SheetCashBudget,
			Headers: []string{"quarter", "collections", "disbursements", "beginning_cash", "ending_cash"},
		}
		for _, l := range res.CashBudget {
			s.Rows = append(s.Rows, []interface{}{l.Label, l.Collections, l.Disbursements, l.BeginningCash, l.EndingCash})
		}
		sheets = append(sheets, s)
	}

	if len(res.Income) > 0 {
		s := Sheet{
			Name:    SheetIncomeStatement,
			Headers: []string{"quarter", "total_revenue", "total_cogs", "gross_profit"},
		}
		for _, l := range res.Income {
			s.Rows = append(s.Rows, []interface{}{l.Label, l.TotalRevenue, l.TotalCOGS, l.GrossProfit})
		}
		sheets = append(sheets, s)
	}

	if len(res.Balance) > 0 {
		s := Sheet{
			Name:    SheetBalanceSheet,
			Headers: []string{"quarter", "cash", "inventory", "receivables", "total_assets", "external_financing", "equity", "working_capital", "liabilities_equity"},
		}
		for _, l := range res.Balance {
			s.Rows = append(s.Rows, []interface{}{l.Label, l.Cash, l.Inventory, l.Receivables, l.TotalAssets, l.ExternalFinancing, l.Equity, l.WorkingCapital, l.LiabilitiesEquity})
		}
		sheets = append(sheets, s)
	}

	return sheets
}
