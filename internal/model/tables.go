package model

// RevenueLine is one period of the revenue schedule.
type RevenueLine struct {
	Label        string
	SalesUnits   float64
	UnitPrice    float64
	SalesRevenue float64
}

// CollectionsLine is one period of the cash collections schedule.
type CollectionsLine struct {
	Label        string
	SalesRevenue float64
	Collections  float64
}

// PurchasesLine is one period of the purchases and inventory schedule.
// PurchasesUnits may be negative when beginning inventory exceeds the
// period's requirement; that is an inventory drawdown, not an error.
type PurchasesLine struct {
	Label                  string
	SalesUnits             float64
	DesiredEndingInventory float64
	BeginningInventory     float64
	PurchasesUnits         float64
	CostPerUnit            float64
	PurchasesCost          float64
}

// CashLine is one period of the cash budget. EndingCash is a running
// balance and may go negative (a reportable shortfall).
type CashLine struct {
	Label         string
	Collections   float64
	Disbursements float64
	BeginningCash float64
	EndingCash    float64
}

// IncomeLine is one period of the income statement.
type IncomeLine struct {
	Label        string
	TotalRevenue float64
	TotalCOGS    float64
	GrossProfit  float64
}

// BalanceLine is one period of the balance sheet. LiabilitiesEquity is
// identically TotalAssets by construction; the equity plug guarantees it.
type BalanceLine struct {
	Label             string
	Cash              float64
	Inventory         float64
	Receivables       float64
	TotalAssets       float64
	ExternalFinancing float64
	Equity            float64
	WorkingCapital    float64
	LiabilitiesEquity float64
}

// IncomeTotals sums an income statement into annual figures.
func IncomeTotals(lines []IncomeLine) IncomeLine {
	total := IncomeLine{Label: "Year"}
	for _, l := range lines {
		total.TotalRevenue += l.TotalRevenue
		total.TotalCOGS += l.TotalCOGS
		total.GrossProfit += l.GrossProfit
	}
	return total
}
