package settlement

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vitalfit/vitalfit-backend-go/internal/domain/settlement"
)

func TestComposeSettlement_SumsAllComponents(t *testing.T) {
	result := ComposeSettlement(settlement.ComposeInput{
		BaseSalary:             2_000_000,
		SessionCommissionTotal: 450_000,
		MonthlyCommission:      300_000,
		TierResolved:           true,
		BonusTotal:             100_000,
		CarryoverFromPrev:      50_000,
	})

	assert.Equal(t, int64(2_850_000), result.TotalSettlement)
	assert.True(t, result.TierResolved)
	// Carryover is traceability only, never added to the total.
	assert.Equal(t, int64(50_000), result.CarryoverFromPrev)
}

func TestComposeSettlement_UnresolvedTierZeroesCommission(t *testing.T) {
	result := ComposeSettlement(settlement.ComposeInput{
		BaseSalary:             2_000_000,
		SessionCommissionTotal: 0,
		MonthlyCommission:      300_000,
		TierResolved:           false,
		BonusTotal:             100_000,
	})

	assert.Equal(t, int64(2_100_000), result.TotalSettlement)
	assert.Zero(t, result.MonthlyCommission)
	assert.False(t, result.TierResolved)
}

func TestComposeSettlement_ZeroInputs(t *testing.T) {
	result := ComposeSettlement(settlement.ComposeInput{TierResolved: true})

	assert.Zero(t, result.TotalSettlement)
}
