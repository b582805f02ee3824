package engine

import (
	"github.com/qbudget/qbudget/internal/model"
	"github.com/qbudget/qbudget/internal/policy"
)

// ComputeIncomeStatement builds a per-period income statement. COGS is the
// policy cost ratio applied to revenue. Annual totals are available through
// model.IncomeTotals; the per-period table is the authoritative shape.
func ComputeIncomeStatement(revenue []model.RevenueLine, pol policy.Policy) []model.IncomeLine {
	lines := make([]model.IncomeLine, 0, len(revenue))
	for _, r := range revenue {
		cogs := r.SalesRevenue * pol.CostRatio
		lines = append(lines, model.IncomeLine{
			Label:        r.Label,
			TotalRevenue: r.SalesRevenue,
			TotalCOGS:    cogs,
			GrossProfit:  r.SalesRevenue - cogs,
		})
	}
	return lines
}

// ComputeBalanceSheet builds the per-period balance sheet.
//
// Receivables carry the uncollected revenue balance forward: the prior
// balance, plus this period's newly uncollected share, minus what was
// collected this period out of last period's sales. Equity is the plug that
// balances the sheet, so liabilities+equity equals total assets exactly.
// The working-capital line is total assets over the turnover ratio, defined
// as zero when the turnover is zero.
func ComputeBalanceSheet(cash []model.CashLine, purchases []model.PurchasesLine, revenue []model.RevenueLine, pol policy.Policy) ([]model.BalanceLine, error) {
	if len(cash) != len(purchases) || len(cash) != len(revenue) {
		return nil, ErrTableMismatch
	}

	lines := make([]model.BalanceLine, 0, len(cash))
	prevReceivables := 0.0
	for i, r := range revenue {
		uncollected := r.SalesRevenue * (1 - pol.CollectCurrent)
		receivables := uncollected
		if i > 0 {
			receivables = prevReceivables + uncollected -
				revenue[i-1].SalesRevenue*pol.CollectNext
		}
		prevReceivables = receivables

		// Inventory is valued at cost, not at sale price.
		inventory := purchases[i].DesiredEndingInventory * purchases[i].CostPerUnit

		assets := cash[i].EndingCash + inventory + receivables
		financing := assets * pol.ExternalFinancingRatio

		workingCapital := 0.0
		if pol.WorkingCapitalTurnover != 0 {
			workingCapital = assets / pol.WorkingCapitalTurnover
		}

		equity := assets - financing
		lines = append(lines, model.BalanceLine{
			Label:             r.Label,
			Cash:              cash[i].EndingCash,
			Inventory:         inventory,
			Receivables:       receivables,
			TotalAssets:       assets,
			ExternalFinancing: financing,
			Equity:            equity,
			WorkingCapital:    workingCapital,
			LiabilitiesEquity: financing + equity,
		})
	}
	return lines, nil
}
