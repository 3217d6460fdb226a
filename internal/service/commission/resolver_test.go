package commission

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vitalfit/vitalfit-backend-go/internal/domain/commission"
)

func int64Ptr(v int64) *int64 { return &v }
func strPtr(s string) *string { return &s }

func tier(id string, min int64, max *int64) commission.Tier {
	return commission.Tier{
		ID:                   id,
		MinRevenue:           min,
		MaxRevenue:           max,
		CommissionPerSession: 10_000,
		MonthlyCommission:    100_000,
		IsActive:             true,
	}
}

func TestResolveTier_BoundaryInclusive(t *testing.T) {
	low := tier("low", 3_000_000, int64Ptr(3_999_999))
	high := tier("high", 4_000_000, int64Ptr(4_999_999))
	tiers := []commission.Tier{low, high}

	got, err := ResolveTier(3_999_999, "pos-1", nil, tiers)
	require.NoError(t, err)
	assert.Equal(t, "low", got.ID)

	got, err = ResolveTier(4_000_000, "pos-1", nil, tiers)
	require.NoError(t, err)
	assert.Equal(t, "high", got.ID)
}

func TestResolveTier_UnboundedMax(t *testing.T) {
	open := tier("open", 5_000_000, nil)

	got, err := ResolveTier(99_000_000, "pos-1", nil, []commission.Tier{open})
	require.NoError(t, err)
	assert.Equal(t, "open", got.ID)
}

func TestResolveTier_NoMatch(t *testing.T) {
	tiers := []commission.Tier{
		tier("a", 3_000_000, int64Ptr(3_999_999)),
		tier("b", 4_000_000, nil),
	}

	_, err := ResolveTier(1_000, "pos-1", nil, tiers)
	assert.ErrorIs(t, err, commission.ErrNoMatchingTier)
}

func TestResolveTier_SkipsInactive(t *testing.T) {
	inactive := tier("inactive", 3_000_000, nil)
	inactive.IsActive = false

	_, err := ResolveTier(3_500_000, "pos-1", nil, []commission.Tier{inactive})
	assert.ErrorIs(t, err, commission.ErrNoMatchingTier)
}

func TestResolveTier_ScopeFiltering(t *testing.T) {
	mine := tier("mine", 3_000_000, nil)
	mine.PositionID = strPtr("pos-1")
	other := tier("other", 3_000_000, nil)
	other.PositionID = strPtr("pos-2")

	got, err := ResolveTier(3_500_000, "pos-1", nil, []commission.Tier{other, mine})
	require.NoError(t, err)
	assert.Equal(t, "mine", got.ID)
}

func TestResolveTier_CenterScope(t *testing.T) {
	scoped := tier("scoped", 3_000_000, nil)
	scoped.CenterID = strPtr("center-1")

	// A center-scoped tier never matches a trainer without that center.
	_, err := ResolveTier(3_500_000, "pos-1", nil, []commission.Tier{scoped})
	assert.ErrorIs(t, err, commission.ErrNoMatchingTier)

	_, err = ResolveTier(3_500_000, "pos-1", strPtr("center-2"), []commission.Tier{scoped})
	assert.ErrorIs(t, err, commission.ErrNoMatchingTier)

	got, err := ResolveTier(3_500_000, "pos-1", strPtr("center-1"), []commission.Tier{scoped})
	require.NoError(t, err)
	assert.Equal(t, "scoped", got.ID)
}

func TestResolveTier_PrefersHighestFloor(t *testing.T) {
	// Overlapping brackets: the higher floor wins.
	wide := tier("wide", 0, nil)
	narrow := tier("narrow", 4_000_000, nil)

	got, err := ResolveTier(4_500_000, "pos-1", nil, []commission.Tier{wide, narrow})
	require.NoError(t, err)
	assert.Equal(t, "narrow", got.ID)
}

func TestResolveTier_TieBreakBySpecificity(t *testing.T) {
	centerID := strPtr("center-1")

	generic := tier("generic", 3_000_000, nil)
	positionOnly := tier("position-only", 3_000_000, nil)
	positionOnly.PositionID = strPtr("pos-1")
	centerOnly := tier("center-only", 3_000_000, nil)
	centerOnly.CenterID = centerID
	full := tier("full", 3_000_000, nil)
	full.CenterID = centerID
	full.PositionID = strPtr("pos-1")

	tests := []struct {
		name  string
		tiers []commission.Tier
		want  string
	}{
		{"full scope beats all", []commission.Tier{generic, positionOnly, centerOnly, full}, "full"},
		{"center beats position", []commission.Tier{generic, positionOnly, centerOnly}, "center-only"},
		{"position beats generic", []commission.Tier{generic, positionOnly}, "position-only"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ResolveTier(3_500_000, "pos-1", centerID, tt.tiers)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.ID)
		})
	}
}

func TestResolveTier_TieBreakByID(t *testing.T) {
	a := tier("aaa", 3_000_000, nil)
	b := tier("bbb", 3_000_000, nil)

	got, err := ResolveTier(3_500_000, "pos-1", nil, []commission.Tier{b, a})
	require.NoError(t, err)
	assert.Equal(t, "aaa", got.ID)
}
