// Package model defines the plain data types shared across the qbudget pipeline.
package model

// Period is one accounting interval in the budgeted series. The slice order
// defines the recurrence chain: every roll-forward quantity in the engine
// depends on the previous element.
type Period struct {
	Label      string  // display-only, never used in arithmetic
	SalesUnits float64 // units expected to sell this period
	UnitPrice  float64 // selling price per unit
}

// Revenue returns units times price for the period.
func (p Period) Revenue() float64 {
	return p.SalesUnits * p.UnitPrice
}
