package commission

import "time"

// Tier is a commission-rate bracket. A tier applies when a trainer's
// total monthly revenue falls within [MinRevenue, MaxRevenue]
// (MaxRevenue nil = unbounded). Nil CenterID/PositionID means the tier
// applies to every center/position.
type Tier struct {
	ID                   string
	MinRevenue           int64
	MaxRevenue           *int64
	CommissionPerSession int64
	MonthlyCommission    int64
	CenterID             *string
	PositionID           *string
	EffectiveDate        time.Time
	Description          *string
	IsActive             bool
	CreatedAt            time.Time
	UpdatedAt            time.Time

	// Joined fields
	PositionName *string
	CenterName   *string
}

// Contains reports whether totalRevenue falls within the tier's bracket.
// Both bounds are inclusive.
func (t Tier) Contains(totalRevenue int64) bool {
	if totalRevenue < t.MinRevenue {
		return false
	}
	if t.MaxRevenue != nil && totalRevenue > *t.MaxRevenue {
		return false
	}
	return true
}

// AppliesTo reports whether the tier's scope matches the given position
// and center. A nil scope field matches everything.
func (t Tier) AppliesTo(positionID string, centerID *string) bool {
	if t.PositionID != nil && *t.PositionID != positionID {
		return false
	}
	if t.CenterID != nil {
		if centerID == nil || *t.CenterID != *centerID {
			return false
		}
	}
	return true
}
