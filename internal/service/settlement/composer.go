package settlement

import "github.com/vitalfit/vitalfit-backend-go/internal/domain/settlement"

// ComposeSettlement folds the pieces of a trainer's monthly pay into
// the final figure:
//
//	total = baseSalary + sessionCommissionTotal + monthlyCommission + bonusTotal
//
// When no commission tier matched, MonthlyCommission is zero and
// TierResolved carries that fact through to the caller; the composer
// never substitutes a default rate. CarryoverFromPrev was already
// folded into total revenue upstream and is recorded here untouched.
func ComposeSettlement(in settlement.ComposeInput) settlement.Result {
	monthlyCommission := in.MonthlyCommission
	if !in.TierResolved {
		monthlyCommission = 0
	}

	return settlement.Result{
		BaseSalary:             in.BaseSalary,
		SessionCommissionTotal: in.SessionCommissionTotal,
		MonthlyCommission:      monthlyCommission,
		BonusTotal:             in.BonusTotal,
		CarryoverFromPrev:      in.CarryoverFromPrev,
		TotalSettlement:        in.BaseSalary + in.SessionCommissionTotal + monthlyCommission + in.BonusTotal,
		TierResolved:           in.TierResolved,
	}
}
