package commission

import (
	"github.com/vitalfit/vitalfit-backend-go/internal/pkg/validator"
)

type CreateTierRequest struct {
	MinRevenue           int64   `json:"min_revenue"`
	MaxRevenue           *int64  `json:"max_revenue,omitempty"`
	CommissionPerSession int64   `json:"commission_per_session"`
	MonthlyCommission    int64   `json:"monthly_commission"`
	CenterID             *string `json:"center_id,omitempty"`
	PositionID           *string `json:"position_id,omitempty"`
	EffectiveDate        string  `json:"effective_date"` // YYYY-MM-DD
	Description          *string `json:"description,omitempty"`
}

func (r *CreateTierRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.MinRevenue < 0 {
		errs = append(errs, validator.ValidationError{Field: "min_revenue", Message: "must be non-negative"})
	}
	if r.MaxRevenue != nil && *r.MaxRevenue < r.MinRevenue {
		errs = append(errs, validator.ValidationError{Field: "max_revenue", Message: "must be >= min_revenue"})
	}
	if r.CommissionPerSession < 0 {
		errs = append(errs, validator.ValidationError{Field: "commission_per_session", Message: "must be non-negative"})
	}
	if r.MonthlyCommission < 0 {
		errs = append(errs, validator.ValidationError{Field: "monthly_commission", Message: "must be non-negative"})
	}
	if _, ok := validator.IsValidDate(r.EffectiveDate); !ok {
		errs = append(errs, validator.ValidationError{Field: "effective_date", Message: "must be YYYY-MM-DD"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateTierRequest struct {
	ID                   string
	MinRevenue           *int64  `json:"min_revenue,omitempty"`
	MaxRevenue           *int64  `json:"max_revenue,omitempty"`
	CommissionPerSession *int64  `json:"commission_per_session,omitempty"`
	MonthlyCommission    *int64  `json:"monthly_commission,omitempty"`
	Description          *string `json:"description,omitempty"`
	IsActive             *bool   `json:"is_active,omitempty"`
}

type TierResponse struct {
	ID                   string  `json:"id"`
	MinRevenue           int64   `json:"min_revenue"`
	MaxRevenue           *int64  `json:"max_revenue,omitempty"`
	CommissionPerSession int64   `json:"commission_per_session"`
	MonthlyCommission    int64   `json:"monthly_commission"`
	CenterID             *string `json:"center_id,omitempty"`
	CenterName           *string `json:"center_name,omitempty"`
	PositionID           *string `json:"position_id,omitempty"`
	PositionName         *string `json:"position_name,omitempty"`
	EffectiveDate        string  `json:"effective_date"`
	Description          *string `json:"description,omitempty"`
	IsActive             bool    `json:"is_active"`
}

type TierFilter struct {
	PositionID *string
	CenterID   *string
	IsActive   *bool
}

// ResolveTierQuery carries the by-revenue lookup parameters.
type ResolveTierQuery struct {
	TotalRevenue int64
	PositionID   string
	CenterID     *string
}
