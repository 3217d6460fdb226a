package settlement

import "time"

// Status enum for the settlement approval workflow. Transitions are
// stored, not orchestrated: draft -> confirmed -> paid.
type Status string

const (
	StatusDraft     Status = "draft"
	StatusConfirmed Status = "confirmed"
	StatusPaid      Status = "paid"
)

// MonthlySettlement is the persisted settlement record for one trainer
// and one calendar month. Unique on (user_id, settlement_year,
// settlement_month); the database constraint is what prevents two
// concurrent settlement runs from racing.
type MonthlySettlement struct {
	ID                string
	UserID            string
	CenterID          string
	SettlementYear    int
	SettlementMonth   int
	ActualRevenue     int64
	CarryoverFromPrev int64
	TotalRevenue      int64
	SettlementRevenue int64
	RemainingAmount   int64
	BaseSalary        int64
	RegularPTCount    int
	FreePTCount       int
	PTCommissionTotal int64
	MonthlyCommission int64
	Bonus             int64
	TotalSettlement   int64
	Status            Status
	Notes             *string
	CreatedAt         time.Time
	UpdatedAt         time.Time

	// Joined fields
	TrainerName *string
	CenterName  *string
}

// ========== DERIVED CALCULATION TYPES ==========
// Ephemeral values produced by the settlement calculator; never
// persisted directly (the MonthlySettlement row is what persists).

// RevenueBuckets groups one month of payments into daily and weekly
// revenue totals. Daily keys are ISO dates (YYYY-MM-DD); weekly keys
// are 1-based indexes of consecutive 7-day windows anchored at the
// first day of the month.
type RevenueBuckets struct {
	Daily  map[string]int64
	Weekly map[int]int64
	// WindowCount is ceil(daysInMonth/7); the last window may extend
	// past the end of the month and naturally underfills.
	WindowCount int
}

// BonusAward records one triggered bonus rule.
type BonusAward struct {
	RuleID           string `json:"rule_id"`
	RuleName         string `json:"rule_name"`
	TargetType       string `json:"target_type"`
	ThresholdAmount  int64  `json:"threshold_amount"`
	AchievementCount int    `json:"achievement_count"`
	Before11Days     bool   `json:"before_11days"`
	BonusAmount      int64  `json:"bonus_amount"`
}

// BonusEvaluation is the cumulative result of evaluating every bonus
// rule against a month's revenue buckets. Rules are additive, never
// exclusive: Details holds one entry per triggered rule, in rule input
// order.
type BonusEvaluation struct {
	TotalBonus int64
	Details    []BonusAward
}

// ComposeInput carries everything the composer folds into the final
// settlement figure. SessionCommissionTotal is regular PT count times
// the resolved tier's per-session rate, computed by the caller.
type ComposeInput struct {
	BaseSalary             int64
	SessionCommissionTotal int64
	// MonthlyCommission comes from the resolved tier; zero when no tier
	// matched. TierResolved distinguishes "no tier" from "tier with a
	// zero commission".
	MonthlyCommission int64
	TierResolved      bool
	BonusTotal        int64
	// CarryoverFromPrev is recorded for traceability only; it was
	// already folded into total revenue upstream.
	CarryoverFromPrev int64
}

// Result is the composed settlement figure.
type Result struct {
	BaseSalary             int64
	SessionCommissionTotal int64
	MonthlyCommission      int64
	BonusTotal             int64
	CarryoverFromPrev      int64
	TotalSettlement        int64
	// TierResolved is false when no commission tier matched the
	// trainer's revenue; pay was composed without commission and the
	// caller must surface that, not treat it as an ordinary zero.
	TierResolved bool
}
