// Package policy holds the budgeting policy ratios and their persistence.
package policy

import "github.com/qbudget/qbudget/internal/model"

// Policy is the fixed set of ratios and amounts driving the budget engine.
// It replaces a loosely keyed settings map: fields are named, validated once,
// and passed to the engine by value so a running computation always sees a
// consistent snapshot.
type Policy struct {
	CollectCurrent         float64 // fraction of revenue collected in the same period
	CollectNext            float64 // fraction collected in the following period
	PayCurrent             float64 // fraction of purchases paid in the same period
	PayNext                float64 // fraction paid in the following period
	EndingInventoryPct     float64 // target ending inventory as fraction of next period's unit sales
	ExternalFinancingRatio float64 // external financing as fraction of total assets
	WorkingCapitalTurnover float64 // total assets / working capital; 0 means no working-capital line
	BeginningCash          float64 // opening cash balance for the first period
	CostRatio              float64 // cost per unit as fraction of selling price
}

// Default returns the stock policy values.
func Default() Policy {
	return Policy{
		CollectCurrent:         0.6,
		CollectNext:            0.4,
		PayCurrent:             0.5,
		PayNext:                0.5,
		EndingInventoryPct:     0.2,
		ExternalFinancingRatio: 0.3,
		WorkingCapitalTurnover: 2.0,
		BeginningCash:          100000,
		CostRatio:              0.6,
	}
}

// Validate checks every field against its allowed range. Ratios live in
// [0,1], turnover must not be negative, beginning cash may be any sign.
func (p Policy) Validate() error {
	ratios := []struct {
		name  string
		value float64
	}{
		{"sales_collection_current", p.CollectCurrent},
		{"sales_collection_next", p.CollectNext},
		{"purchases_payment_current", p.PayCurrent},
		{"purchases_payment_next", p.PayNext},
		{"ending_inventory_pct", p.EndingInventoryPct},
		{"external_financing_ratio", p.ExternalFinancingRatio},
	}
	for _, r := range ratios {
		if r.value < 0 || r.value > 1 {
			return &model.ValidationError{Field: r.name, Reason: "must be between 0 and 1"}
		}
	}
	if p.WorkingCapitalTurnover < 0 {
		return &model.ValidationError{Field: "working_capital_turnover", Reason: "must not be negative"}
	}
	if p.CostRatio <= 0 || p.CostRatio > 1 {
		return &model.ValidationError{Field: "cost_ratio", Reason: "must be greater than 0 and at most 1"}
	}
	return nil
}
