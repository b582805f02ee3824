package engine

import (
	"math"
	"testing"

	"github.com/qbudget/qbudget/internal/model"
	"github.com/qbudget/qbudget/internal/policy"
)

const eps = 1e-6

func approxEqual(a, b float64) bool {
	return math.Abs(a-b) <= eps*math.Max(1, math.Max(math.Abs(a), math.Abs(b)))
}

func checkSeries(t *testing.T, name string, got, want []float64) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("%s: got %d periods, want %d", name, len(got), len(want))
	}
	for i := range want {
		if !approxEqual(got[i], want[i]) {
			t.Fatalf("%s[%d] = %.4f, want %.4f", name, i, got[i], want[i])
		}
	}
}

// demoPeriods is the canonical four-quarter scenario with every expected
// figure derivable by hand from the stage formulas.
func demoPeriods() []model.Period {
	return []model.Period{
		{Label: "Q1", SalesUnits: 10000, UnitPrice: 20},
		{Label: "Q2", SalesUnits: 12000, UnitPrice: 20},
		{Label: "Q3", SalesUnits: 15000, UnitPrice: 20},
		{Label: "Q4", SalesUnits: 13000, UnitPrice: 20},
	}
}

func demoPolicy() policy.Policy {
	return policy.Policy{
		CollectCurrent:         0.7,
		CollectNext:            0.3,
		PayCurrent:             0.6,
		PayNext:                0.4,
		EndingInventoryPct:     0.2,
		ExternalFinancingRatio: 0.1,
		WorkingCapitalTurnover: 2.0,
		BeginningCash:          0,
		CostRatio:              0.6,
	}
}

func TestRun_DemoScenario(t *testing.T) {
	res, err := Run(demoPeriods(), demoPolicy())
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	revenue := make([]float64, len(res.Revenue))
	for i, l := range res.Revenue {
		revenue[i] = l.SalesRevenue
	}
	checkSeries(t, "sales_revenue", revenue, []float64{200000, 240000, 300000, 260000})

	collections := make([]float64, len(res.Collections))
	for i, l := range res.Collections {
		collections[i] = l.Collections
	}
	checkSeries(t, "collections", collections, []float64{140000, 228000, 282000, 272000})

	desired := make([]float64, len(res.Purchases))
	beginning := make([]float64, len(res.Purchases))
	units := make([]float64, len(res.Purchases))
	cost := make([]float64, len(res.Purchases))
	for i, l := range res.Purchases {
		desired[i] = l.DesiredEndingInventory
		beginning[i] = l.BeginningInventory
		units[i] = l.PurchasesUnits
		cost[i] = l.PurchasesCost
	}
	checkSeries(t, "desired_ending_inventory", desired, []float64{2400, 3000, 2600, 2600})
	checkSeries(t, "beginning_inventory", beginning, []float64{0, 2400, 3000, 2600})
	checkSeries(t, "purchases_units", units, []float64{12400, 12600, 14600, 13000})
	checkSeries(t, "purchases_cost", cost, []float64{148800, 151200, 175200, 156000})

	disbursements := make([]float64, len(res.CashBudget))
	ending := make([]float64, len(res.CashBudget))
	for i, l := range res.CashBudget {
		disbursements[i] = l.Disbursements
		ending[i] = l.EndingCash
	}
	checkSeries(t, "disbursements", disbursements, []float64{89280, 150240, 165600, 163680})
	checkSeries(t, "ending_cash", ending, []float64{50720, 128480, 244880, 353200})

	gross := make([]float64, len(res.Income))
	for i, l := range res.Income {
		gross[i] = l.GrossProfit
	}
	checkSeries(t, "gross_profit", gross, []float64{80000, 96000, 120000, 104000})

	receivables := make([]float64, len(res.Balance))
	assets := make([]float64, len(res.Balance))
	wc := make([]float64, len(res.Balance))
	for i, l := range res.Balance {
		receivables[i] = l.Receivables
		assets[i] = l.TotalAssets
		wc[i] = l.WorkingCapital
	}
	checkSeries(t, "receivables", receivables, []float64{60000, 72000, 90000, 78000})
	checkSeries(t, "total_assets", assets, []float64{139520, 236480, 366080, 462400})
	checkSeries(t, "working_capital", wc, []float64{69760, 118240, 183040, 231200})
}

func TestBalanceSheet_AccountingIdentity(t *testing.T) {
	res, err := Run(demoPeriods(), demoPolicy())
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	for i, l := range res.Balance {
		if !approxEqual(l.LiabilitiesEquity, l.TotalAssets) {
			t.Fatalf("period %d: liabilities+equity = %.4f, total assets = %.4f", i, l.LiabilitiesEquity, l.TotalAssets)
		}
		if !approxEqual(l.ExternalFinancing+l.Equity, l.TotalAssets) {
			t.Fatalf("period %d: equity plug does not balance", i)
		}
	}
}

func TestCashBudget_Recurrence(t *testing.T) {
	res, err := Run(demoPeriods(), demoPolicy())
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	cash := res.CashBudget

	first := res.Policy.BeginningCash + cash[0].Collections - cash[0].Disbursements
	if !approxEqual(cash[0].EndingCash, first) {
		t.Fatalf("ending_cash[0] = %.4f, want %.4f", cash[0].EndingCash, first)
	}
	for i := 1; i < len(cash); i++ {
		want := cash[i-1].EndingCash + cash[i].Collections - cash[i].Disbursements
		if !approxEqual(cash[i].EndingCash, want) {
			t.Fatalf("ending_cash[%d] = %.4f, want %.4f", i, cash[i].EndingCash, want)
		}
	}
}

func TestRun_SinglePeriodBoundary(t *testing.T) {
	periods := []model.Period{{Label: "Q1", SalesUnits: 5000, UnitPrice: 10}}
	pol := demoPolicy()

	res, err := Run(periods, pol)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	if got := res.Purchases[0].BeginningInventory; got != 0 {
		t.Fatalf("beginning_inventory[0] = %.4f, want 0", got)
	}
	// With no successor the last period targets its own unit sales.
	if got, want := res.Purchases[0].DesiredEndingInventory, 5000*pol.EndingInventoryPct; !approxEqual(got, want) {
		t.Fatalf("desired_ending_inventory[0] = %.4f, want %.4f", got, want)
	}
	wantRecv := 50000 * (1 - pol.CollectCurrent)
	if got := res.Balance[0].Receivables; !approxEqual(got, wantRecv) {
		t.Fatalf("receivables[0] = %.4f, want %.4f", got, wantRecv)
	}
}

func TestRun_EmptyInputIsNoOp(t *testing.T) {
	res, err := Run(nil, demoPolicy())
	if err != nil {
		t.Fatalf("Run on empty input: %v", err)
	}
	if len(res.Revenue) != 0 || len(res.Collections) != 0 || len(res.Purchases) != 0 ||
		len(res.CashBudget) != 0 || len(res.Income) != 0 || len(res.Balance) != 0 {
		t.Fatal("empty input must produce empty tables")
	}
}

func TestRun_Deterministic(t *testing.T) {
	first, err := Run(demoPeriods(), demoPolicy())
	if err != nil {
		t.Fatalf("first Run: %v", err)
	}
	second, err := Run(demoPeriods(), demoPolicy())
	if err != nil {
		t.Fatalf("second Run: %v", err)
	}

	for i := range first.Balance {
		if first.Balance[i] != second.Balance[i] {
			t.Fatalf("period %d: runs differ: %+v vs %+v", i, first.Balance[i], second.Balance[i])
		}
	}
	for i := range first.CashBudget {
		if first.CashBudget[i] != second.CashBudget[i] {
			t.Fatalf("period %d: cash budgets differ", i)
		}
	}
}

func TestRun_ZeroTurnoverIsNotAnError(t *testing.T) {
	pol := demoPolicy()
	pol.WorkingCapitalTurnover = 0

	res, err := Run(demoPeriods(), pol)
	if err != nil {
		t.Fatalf("Run with zero turnover: %v", err)
	}
	for i, l := range res.Balance {
		if l.WorkingCapital != 0 {
			t.Fatalf("working_capital[%d] = %.4f, want 0 under zero turnover", i, l.WorkingCapital)
		}
	}
}

func TestRun_RejectsInvalidPolicy(t *testing.T) {
	pol := demoPolicy()
	pol.CollectCurrent = 1.5

	if _, err := Run(demoPeriods(), pol); err == nil {
		t.Fatal("expected validation error for ratio above 1")
	}
}

func TestComputePurchases_AllowsDrawdown(t *testing.T) {
	// A collapse in sales leaves beginning inventory above the requirement;
	// purchases must go negative rather than clamp.
	periods := []model.Period{
		{Label: "Q1", SalesUnits: 10000, UnitPrice: 20},
		{Label: "Q2", SalesUnits: 100, UnitPrice: 20},
	}
	pol := demoPolicy()
	pol.EndingInventoryPct = 1.0

	lines := ComputePurchases(periods, pol)
	if lines[1].PurchasesUnits >= 0 {
		t.Fatalf("purchases_units[1] = %.4f, expected a negative drawdown", lines[1].PurchasesUnits)
	}
}

func TestComputeCashBudget_MismatchedTables(t *testing.T) {
	collections := []model.CollectionsLine{{Label: "Q1"}, {Label: "Q2"}}
	purchases := []model.PurchasesLine{{Label: "Q1"}}

	if _, err := ComputeCashBudget(collections, purchases, demoPolicy()); err != ErrTableMismatch {
		t.Fatalf("err = %v, want ErrTableMismatch", err)
	}
}
