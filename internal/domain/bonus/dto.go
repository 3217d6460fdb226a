package bonus

import (
	"github.com/vitalfit/vitalfit-backend-go/internal/pkg/validator"
)

type CreateRuleRequest struct {
	Name             string `json:"name"`
	TargetType       string `json:"target_type"` // "daily" or "weekly"
	ThresholdAmount  int64  `json:"threshold_amount"`
	AchievementCount int    `json:"achievement_count"`
	BonusAmount      int64  `json:"bonus_amount"`
	Before11Days     bool   `json:"before_11days"`
}

func (r *CreateRuleRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "is required"})
	} else if len(r.Name) > 100 {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "must not exceed 100 characters"})
	}
	if r.TargetType != string(TargetDaily) && r.TargetType != string(TargetWeekly) {
		errs = append(errs, validator.ValidationError{Field: "target_type", Message: "must be 'daily' or 'weekly'"})
	}
	if r.ThresholdAmount <= 0 {
		errs = append(errs, validator.ValidationError{Field: "threshold_amount", Message: "must be positive"})
	}
	if r.AchievementCount < 1 {
		errs = append(errs, validator.ValidationError{Field: "achievement_count", Message: "must be at least 1"})
	}
	if r.BonusAmount <= 0 {
		errs = append(errs, validator.ValidationError{Field: "bonus_amount", Message: "must be positive"})
	}
	if r.Before11Days && r.TargetType == string(TargetDaily) {
		errs = append(errs, validator.ValidationError{Field: "before_11days", Message: "only applies to weekly rules"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateRuleRequest struct {
	ID               string
	Name             *string `json:"name,omitempty"`
	ThresholdAmount  *int64  `json:"threshold_amount,omitempty"`
	AchievementCount *int    `json:"achievement_count,omitempty"`
	BonusAmount      *int64  `json:"bonus_amount,omitempty"`
	Before11Days     *bool   `json:"before_11days,omitempty"`
}

type RuleResponse struct {
	ID               string `json:"id"`
	Name             string `json:"name"`
	TargetType       string `json:"target_type"`
	ThresholdAmount  int64  `json:"threshold_amount"`
	AchievementCount int    `json:"achievement_count"`
	BonusAmount      int64  `json:"bonus_amount"`
	Before11Days     bool   `json:"before_11days"`
}
