// Package engine implements the master-budget calculation pipeline.
//
// Five stages run in order over the period series: revenue, collections,
// purchases/inventory, cash budget, and the two statements. Every stage is a
// pure function producing a fresh table; nothing is mutated after creation.
// Most quantities are recurrences on the previous period, so each stage
// scans strictly in order.
package engine

import (
	"errors"

	"github.com/qbudget/qbudget/internal/model"
	"github.com/qbudget/qbudget/internal/policy"
)

// ErrTableMismatch is returned when stage inputs that must be index-aligned
// have different lengths.
var ErrTableMismatch = errors.New("engine: input tables have mismatched lengths")

// Result holds every derived table from one pipeline run plus the policy
// snapshot that produced it.
type Result struct {
	Periods     []model.Period
	Revenue     []model.RevenueLine
	Collections []model.CollectionsLine
	Purchases   []model.PurchasesLine
	CashBudget  []model.CashLine
	Income      []model.IncomeLine
	Balance     []model.BalanceLine
	Policy      policy.Policy
}

// Run executes the full pipeline. The policy is copied in by value, so a
// caller mutating its own policy concurrently cannot tear a running
// computation. An empty period slice yields an empty (but valid) Result.
func Run(periods []model.Period, pol policy.Policy) (*Result, error) {
	if err := pol.Validate(); err != nil {
		return nil, err
	}

	revenue := ComputeRevenue(periods)
	collections := ComputeCollections(revenue, pol)
	purchases := ComputePurchases(periods, pol)

	cash, err := ComputeCashBudget(collections, purchases, pol)
	if err != nil {
		return nil, err
	}

	income := ComputeIncomeStatement(revenue, pol)
	balance, err := ComputeBalanceSheet(cash, purchases, revenue, pol)
	if err != nil {
		return nil, err
	}

	return &Result{
		Periods:     periods,
		Revenue:     revenue,
		Collections: collections,
		Purchases:   purchases,
		CashBudget:  cash,
		Income:      income,
		Balance:     balance,
		Policy:      pol,
	}, nil
}
