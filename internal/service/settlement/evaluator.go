package settlement

import (
	"github.com/vitalfit/vitalfit-backend-go/internal/domain/bonus"
	"github.com/vitalfit/vitalfit-backend-go/internal/domain/settlement"
)

// before11DaysCutoff is the last calendar day a weekly window may start
// on to count toward a before_11days rule.
const before11DaysCutoff = 11

// EvaluateBonuses checks every bonus rule against a month's revenue
// buckets and sums the payouts of the ones that trigger. Rules are
// independent and additive: a trainer can earn several bonuses in the
// same month, and each triggered rule contributes its BonusAmount
// exactly once no matter how far a threshold was exceeded.
//
// Daily rules trigger when any single day's revenue meets the
// threshold. Weekly rules count qualifying windows and trigger when
// that count reaches AchievementCount; with Before11Days set, only
// windows starting on or before the 11th are counted.
func EvaluateBonuses(buckets settlement.RevenueBuckets, rules []bonus.Rule, year, month int) settlement.BonusEvaluation {
	eval := settlement.BonusEvaluation{}

	for _, rule := range rules {
		triggered := false

		switch rule.TargetType {
		case bonus.TargetDaily:
			for _, revenue := range buckets.Daily {
				if revenue >= rule.ThresholdAmount {
					triggered = true
					break
				}
			}
		case bonus.TargetWeekly:
			qualifying := 0
			for window := 1; window <= buckets.WindowCount; window++ {
				if rule.Before11Days && windowStartDay(window) > before11DaysCutoff {
					continue
				}
				if buckets.Weekly[window] >= rule.ThresholdAmount {
					qualifying++
				}
			}
			triggered = qualifying >= rule.AchievementCount
		}

		if !triggered {
			continue
		}

		eval.TotalBonus += rule.BonusAmount
		eval.Details = append(eval.Details, settlement.BonusAward{
			RuleID:           rule.ID,
			RuleName:         rule.Name,
			TargetType:       string(rule.TargetType),
			ThresholdAmount:  rule.ThresholdAmount,
			AchievementCount: rule.AchievementCount,
			Before11Days:     rule.Before11Days,
			BonusAmount:      rule.BonusAmount,
		})
	}

	return eval
}
