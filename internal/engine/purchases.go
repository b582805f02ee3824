package engine

import (
	"github.com/qbudget/qbudget/internal/model"
	"github.com/qbudget/qbudget/internal/policy"
)

// ComputePurchases builds the purchases and inventory schedule.
//
// Desired ending inventory targets a fraction of the NEXT period's unit
// sales. The last period has no successor, so it reuses its own unit sales
// as the stand-in; that is the defined boundary policy. Beginning inventory
// rolls forward from the prior period's desired ending inventory (zero for
// the first period). Purchases may go negative when beginning inventory
// already covers the requirement; that is an inventory drawdown, kept as-is.
func ComputePurchases(periods []model.Period, pol policy.Policy) []model.PurchasesLine {
	lines := make([]model.PurchasesLine, 0, len(periods))
	for i, p := range periods {
		nextUnits := p.SalesUnits
		if i < len(periods)-1 {
			nextUnits = periods[i+1].SalesUnits
		}
		desired := nextUnits * pol.EndingInventoryPct

		beginning := 0.0
		if i > 0 {
			beginning = lines[i-1].DesiredEndingInventory
		}

		units := p.SalesUnits + desired - beginning
		costPerUnit := p.UnitPrice * pol.CostRatio

		lines = append(lines, model.PurchasesLine{
			Label:                  p.Label,
			SalesUnits:             p.SalesUnits,
			DesiredEndingInventory: desired,
			BeginningInventory:     beginning,
			PurchasesUnits:         units,
			CostPerUnit:            costPerUnit,
			PurchasesCost:          units * costPerUnit,
		})
	}
	return lines
}
