package settlement

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vitalfit/vitalfit-backend-go/internal/domain/bonus"
	"github.com/vitalfit/vitalfit-backend-go/internal/domain/payment"
	"github.com/vitalfit/vitalfit-backend-go/internal/domain/settlement"
)

func dailyRule(threshold, amount int64) bonus.Rule {
	return bonus.Rule{
		ID:               "rule-daily",
		Name:             "daily target",
		TargetType:       bonus.TargetDaily,
		ThresholdAmount:  threshold,
		AchievementCount: 1,
		BonusAmount:      amount,
	}
}

func weeklyRule(threshold int64, count int, amount int64, before11 bool) bonus.Rule {
	return bonus.Rule{
		ID:               "rule-weekly",
		Name:             "weekly target",
		TargetType:       bonus.TargetWeekly,
		ThresholdAmount:  threshold,
		AchievementCount: count,
		BonusAmount:      amount,
		Before11Days:     before11,
	}
}

func TestEvaluateBonuses_DailyTriggersOnceRegardlessOfExcess(t *testing.T) {
	rule := dailyRule(3_000_000, 100_000)

	for _, dayRevenue := range []int64{3_000_000, 3_000_000_000} {
		buckets := AggregateRevenue([]payment.Record{pay("2024-07-05", dayRevenue)}, 2024, 7)
		eval := EvaluateBonuses(buckets, []bonus.Rule{rule}, 2024, 7)

		assert.Equal(t, int64(100_000), eval.TotalBonus)
		require.Len(t, eval.Details, 1)
		assert.Equal(t, "rule-daily", eval.Details[0].RuleID)
	}
}

func TestEvaluateBonuses_DailyNotTriggeredBelowThreshold(t *testing.T) {
	buckets := AggregateRevenue([]payment.Record{pay("2024-07-05", 2_999_999)}, 2024, 7)

	eval := EvaluateBonuses(buckets, []bonus.Rule{dailyRule(3_000_000, 100_000)}, 2024, 7)

	assert.Zero(t, eval.TotalBonus)
	assert.Empty(t, eval.Details)
}

func TestEvaluateBonuses_WeeklyAchievementCount(t *testing.T) {
	// Two windows clear 5M, a third does not.
	payments := []payment.Record{
		pay("2024-07-02", 5_000_000),
		pay("2024-07-09", 5_500_000),
		pay("2024-07-16", 4_000_000),
	}
	buckets := AggregateRevenue(payments, 2024, 7)

	satisfied := EvaluateBonuses(buckets, []bonus.Rule{weeklyRule(5_000_000, 2, 200_000, false)}, 2024, 7)
	assert.Equal(t, int64(200_000), satisfied.TotalBonus)

	unsatisfied := EvaluateBonuses(buckets, []bonus.Rule{weeklyRule(5_000_000, 3, 200_000, false)}, 2024, 7)
	assert.Zero(t, unsatisfied.TotalBonus)
}

func TestEvaluateBonuses_Before11DaysRestriction(t *testing.T) {
	// Windows start on days 1, 8, 15, 22, 29: only the first two start
	// on or before the 11th. Weeks 2 and 3 clear the threshold, week 1
	// does not, so the restricted qualifying count is 1.
	payments := []payment.Record{
		pay("2024-07-02", 1_000_000),
		pay("2024-07-09", 5_000_000),
		pay("2024-07-16", 5_000_000),
	}
	buckets := AggregateRevenue(payments, 2024, 7)
	rule := weeklyRule(5_000_000, 2, 300_000, true)

	eval := EvaluateBonuses(buckets, []bonus.Rule{rule}, 2024, 7)
	assert.Zero(t, eval.TotalBonus)

	// With week 1 also clearing the threshold both restricted windows
	// qualify and the rule triggers.
	payments = append(payments, pay("2024-07-03", 4_000_000))
	buckets = AggregateRevenue(payments, 2024, 7)

	eval = EvaluateBonuses(buckets, []bonus.Rule{rule}, 2024, 7)
	assert.Equal(t, int64(300_000), eval.TotalBonus)
}

func TestEvaluateBonuses_RulesAreAdditive(t *testing.T) {
	payments := []payment.Record{
		pay("2024-07-05", 4_000_000),
		pay("2024-07-09", 6_000_000),
	}
	buckets := AggregateRevenue(payments, 2024, 7)
	rules := []bonus.Rule{
		dailyRule(3_000_000, 100_000),
		weeklyRule(4_000_000, 2, 200_000, false),
	}

	eval := EvaluateBonuses(buckets, rules, 2024, 7)

	assert.Equal(t, int64(300_000), eval.TotalBonus)
	require.Len(t, eval.Details, 2)
	// Details preserve rule input order.
	assert.Equal(t, "rule-daily", eval.Details[0].RuleID)
	assert.Equal(t, "rule-weekly", eval.Details[1].RuleID)
}

func TestEvaluateBonuses_EmptyRules(t *testing.T) {
	buckets := AggregateRevenue([]payment.Record{pay("2024-07-05", 10_000_000)}, 2024, 7)

	eval := EvaluateBonuses(buckets, nil, 2024, 7)

	assert.Zero(t, eval.TotalBonus)
	assert.Empty(t, eval.Details)
}

func TestEvaluateBonuses_Deterministic(t *testing.T) {
	payments := []payment.Record{
		pay("2024-07-05", 4_000_000),
		pay("2024-07-09", 6_000_000),
		pay("2024-07-23", 2_000_000),
	}
	rules := []bonus.Rule{
		dailyRule(3_000_000, 100_000),
		weeklyRule(4_000_000, 2, 200_000, false),
		weeklyRule(5_000_000, 1, 50_000, true),
	}

	run := func() settlement.BonusEvaluation {
		return EvaluateBonuses(AggregateRevenue(payments, 2024, 7), rules, 2024, 7)
	}

	assert.Equal(t, run(), run())
}
