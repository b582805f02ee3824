package engine

import (
	"github.com/qbudget/qbudget/internal/model"
	"github.com/qbudget/qbudget/internal/policy"
)

// ComputeCashBudget builds the rolling cash balance from collections and
// purchase disbursements. Ending cash is the critical recurrence of the
// whole pipeline: period i reads period i-1's ending balance, so the scan
// must stay strictly in order. A negative ending balance is a valid result;
// it signals a cash shortfall rather than an error.
func ComputeCashBudget(collections []model.CollectionsLine, purchases []model.PurchasesLine, pol policy.Policy) ([]model.CashLine, error) {
	if len(collections) != len(purchases) {
		return nil, ErrTableMismatch
	}

	lines := make([]model.CashLine, 0, len(collections))
	for i, c := range collections {
		disbursed := purchases[i].PurchasesCost * pol.PayCurrent
		if i > 0 {
			disbursed += purchases[i-1].PurchasesCost * pol.PayNext
		}

		beginning := pol.BeginningCash
		if i > 0 {
			beginning = lines[i-1].EndingCash
		}

		lines = append(lines, model.CashLine{
			Label:         c.Label,
			Collections:   c.Collections,
			Disbursements: disbursed,
			BeginningCash: beginning,
			EndingCash:    beginning + c.Collections - disbursed,
		})
	}
	return lines, nil
}
