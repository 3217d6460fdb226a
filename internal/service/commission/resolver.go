package commission

import "github.com/vitalfit/vitalfit-backend-go/internal/domain/commission"

// ResolveTier selects the single commission tier applying to a
// trainer's total monthly revenue, position and center.
//
// Candidates are active tiers whose bracket contains totalRevenue and
// whose scope matches (nil tier scope fields are wildcards). Among
// candidates the tie-break is deterministic: highest MinRevenue first,
// then most specific scope (center+position over center-only over
// position-only over generic), then lowest ID.
//
// Returns commission.ErrNoMatchingTier when nothing applies; callers
// treat that as an explicit "no rate" outcome, not a failure.
func ResolveTier(totalRevenue int64, positionID string, centerID *string, tiers []commission.Tier) (commission.Tier, error) {
	var best commission.Tier
	found := false

	for _, t := range tiers {
		if !t.IsActive || !t.Contains(totalRevenue) || !t.AppliesTo(positionID, centerID) {
			continue
		}
		if !found || tierLess(best, t) {
			best = t
			found = true
		}
	}

	if !found {
		return commission.Tier{}, commission.ErrNoMatchingTier
	}
	return best, nil
}

// tierLess reports whether b beats a under the tie-break ordering.
func tierLess(a, b commission.Tier) bool {
	if a.MinRevenue != b.MinRevenue {
		return b.MinRevenue > a.MinRevenue
	}
	sa, sb := scopeRank(a), scopeRank(b)
	if sa != sb {
		return sb > sa
	}
	return b.ID < a.ID
}

// scopeRank orders tiers by specificity: both scope fields set beats
// center-only, which beats position-only, which beats fully generic.
func scopeRank(t commission.Tier) int {
	switch {
	case t.CenterID != nil && t.PositionID != nil:
		return 3
	case t.CenterID != nil:
		return 2
	case t.PositionID != nil:
		return 1
	default:
		return 0
	}
}
