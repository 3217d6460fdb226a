package bonus

import "time"

// TargetType enum: which revenue bucket a rule is evaluated against.
type TargetType string

const (
	TargetDaily  TargetType = "daily"
	TargetWeekly TargetType = "weekly"
)

// Rule is a bonus rule, e.g. "weekly 5M twice before the 11th".
// Rules are static configuration, read-only during evaluation.
type Rule struct {
	ID              string
	Name            string
	TargetType      TargetType
	ThresholdAmount int64
	// AchievementCount is how many qualifying buckets are needed to
	// trigger the award. Only weekly rules compare against it; daily
	// rules trigger on any single qualifying day.
	AchievementCount int
	BonusAmount      int64
	// Before11Days restricts weekly qualification to windows starting on
	// or before the 11th calendar day of the month.
	Before11Days bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
