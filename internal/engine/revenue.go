package engine

import (
	"github.com/qbudget/qbudget/internal/model"
	"github.com/qbudget/qbudget/internal/policy"
)

// ComputeRevenue builds the revenue schedule: revenue[i] = units[i] * price[i].
// An empty input is a valid degenerate case and returns an empty table.
func ComputeRevenue(periods []model.Period) []model.RevenueLine {
	lines := make([]model.RevenueLine, 0, len(periods))
	for _, p := range periods {
		lines = append(lines, model.RevenueLine{
			Label:        p.Label,
			SalesUnits:   p.SalesUnits,
			UnitPrice:    p.UnitPrice,
			SalesRevenue: p.Revenue(),
		})
	}
	return lines
}

// ComputeCollections builds the cash inflow schedule. Collections are a
// two-tap weighted sum over revenue: the current period's share plus the
// uncollected share of the previous period. The first period has no
// predecessor, so its carry-in is exactly zero.
func ComputeCollections(revenue []model.RevenueLine, pol policy.Policy) []model.CollectionsLine {
	lines := make([]model.CollectionsLine, 0, len(revenue))
	for i, r := range revenue {
		collected := r.SalesRevenue * pol.CollectCurrent
		if i > 0 {
			collected += revenue[i-1].SalesRevenue * pol.CollectNext
		}
		lines = append(lines, model.CollectionsLine{
			Label:        r.Label,
			SalesRevenue: r.SalesRevenue,
			Collections:  collected,
		})
	}
	return lines
}
