package engine

import (
	"testing"

	"github.com/qbudget/qbudget/internal/model"
)

func TestComputeIncomeStatement_Totals(t *testing.T) {
	res, err := Run(demoPeriods(), demoPolicy())
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	totals := model.IncomeTotals(res.Income)
	if !approxEqual(totals.TotalRevenue, 1000000) {
		t.Fatalf("annual revenue = %.2f, want 1000000", totals.TotalRevenue)
	}
	if !approxEqual(totals.TotalCOGS, 600000) {
		t.Fatalf("annual COGS = %.2f, want 600000", totals.TotalCOGS)
	}
	if !approxEqual(totals.GrossProfit, totals.TotalRevenue-totals.TotalCOGS) {
		t.Fatal("gross profit must equal revenue minus COGS")
	}
}

func TestBalanceSheet_ReceivablesRecurrence(t *testing.T) {
	res, err := Run(demoPeriods(), demoPolicy())
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	pol := res.Policy

	prev := 0.0
	for i, l := range res.Balance {
		uncollected := res.Revenue[i].SalesRevenue * (1 - pol.CollectCurrent)
		want := uncollected
		if i > 0 {
			want = prev + uncollected - res.Revenue[i-1].SalesRevenue*pol.CollectNext
		}
		if !approxEqual(l.Receivables, want) {
			t.Fatalf("receivables[%d] = %.4f, want %.4f", i, l.Receivables, want)
		}
		prev = l.Receivables
	}
}

func TestComputeCashBudget_NegativeBalanceIsReportable(t *testing.T) {
	// Heavy purchasing against thin collections drives cash below zero.
	periods := []model.Period{
		{Label: "Q1", SalesUnits: 1000, UnitPrice: 10},
		{Label: "Q2", SalesUnits: 1000, UnitPrice: 10},
	}
	pol := demoPolicy()
	pol.CollectCurrent = 0.1
	pol.CollectNext = 0.1
	pol.BeginningCash = 0

	res, err := Run(periods, pol)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if res.CashBudget[0].EndingCash >= 0 {
		t.Fatalf("ending_cash[0] = %.4f, expected a shortfall", res.CashBudget[0].EndingCash)
	}
}
