package settlement

import (
	"time"

	"github.com/vitalfit/vitalfit-backend-go/internal/pkg/validator"
)

// GenerateSettlementRequest asks for a settlement run for one trainer
// and month. Regeneration over an existing draft is allowed; the row
// is upserted on (user_id, year, month).
type GenerateSettlementRequest struct {
	UserID string `json:"user_id"`
	Year   int    `json:"year"`
	Month  int    `json:"month"`
}

func (r *GenerateSettlementRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.UserID) {
		errs = append(errs, validator.ValidationError{Field: "user_id", Message: "user_id is required"})
	}
	if !validator.IsValidYearMonth(r.Year, r.Month) {
		errs = append(errs, validator.ValidationError{Field: "year", Message: "invalid settlement period"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// UpdateStatusRequest advances a settlement through the approval
// workflow.
type UpdateStatusRequest struct {
	ID     string `json:"-"`
	Status string `json:"status"`
}

func (r *UpdateStatusRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsInSlice(r.Status, []string{string(StatusDraft), string(StatusConfirmed), string(StatusPaid)}) {
		errs = append(errs, validator.ValidationError{Field: "status", Message: "status must be one of: draft, confirmed, paid"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// UpdateNotesRequest amends the free-form memo on a settlement.
type UpdateNotesRequest struct {
	ID    string  `json:"-"`
	Notes *string `json:"notes"`
}

// ListSettlementsQuery filters the settlement list.
type ListSettlementsQuery struct {
	Year     int
	Month    int
	CenterID *string
	UserID   *string
	Status   *string
}

// SettlementResponse is the API shape of a settlement row.
type SettlementResponse struct {
	ID                string    `json:"id"`
	UserID            string    `json:"user_id"`
	TrainerName       *string   `json:"trainer_name,omitempty"`
	CenterID          string    `json:"center_id"`
	CenterName        *string   `json:"center_name,omitempty"`
	SettlementYear    int       `json:"settlement_year"`
	SettlementMonth   int       `json:"settlement_month"`
	ActualRevenue     int64     `json:"actual_revenue"`
	CarryoverFromPrev int64     `json:"carryover_from_prev"`
	TotalRevenue      int64     `json:"total_revenue"`
	SettlementRevenue int64     `json:"settlement_revenue"`
	RemainingAmount   int64     `json:"remaining_amount"`
	BaseSalary        int64     `json:"base_salary"`
	RegularPTCount    int       `json:"regular_pt_count"`
	FreePTCount       int       `json:"free_pt_count"`
	PTCommissionTotal int64     `json:"pt_commission_total"`
	MonthlyCommission int64     `json:"monthly_commission"`
	Bonus             int64     `json:"bonus"`
	TotalSettlement   int64     `json:"total_settlement"`
	Status            Status    `json:"status"`
	TierResolved      bool      `json:"tier_resolved"`
	Notes             *string   `json:"notes,omitempty"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

// BonusCalculationResponse is the preview payload for the bonus
// calculation endpoint: the month's buckets plus every triggered rule,
// without writing anything.
type BonusCalculationResponse struct {
	UserID        string           `json:"user_id"`
	Year          int              `json:"year"`
	Month         int              `json:"month"`
	DailyRevenue  map[string]int64 `json:"daily_revenue"`
	WeeklyRevenue map[int]int64    `json:"weekly_revenue"`
	TotalBonus    int64            `json:"total_bonus"`
	Details       []BonusAward     `json:"details"`
}

func toResponse(s MonthlySettlement, tierResolved bool) SettlementResponse {
	return SettlementResponse{
		ID:                s.ID,
		UserID:            s.UserID,
		TrainerName:       s.TrainerName,
		CenterID:          s.CenterID,
		CenterName:        s.CenterName,
		SettlementYear:    s.SettlementYear,
		SettlementMonth:   s.SettlementMonth,
		ActualRevenue:     s.ActualRevenue,
		CarryoverFromPrev: s.CarryoverFromPrev,
		TotalRevenue:      s.TotalRevenue,
		SettlementRevenue: s.SettlementRevenue,
		RemainingAmount:   s.RemainingAmount,
		BaseSalary:        s.BaseSalary,
		RegularPTCount:    s.RegularPTCount,
		FreePTCount:       s.FreePTCount,
		PTCommissionTotal: s.PTCommissionTotal,
		MonthlyCommission: s.MonthlyCommission,
		Bonus:             s.Bonus,
		TotalSettlement:   s.TotalSettlement,
		Status:            s.Status,
		TierResolved:      tierResolved,
		Notes:             s.Notes,
		CreatedAt:         s.CreatedAt,
		UpdatedAt:         s.UpdatedAt,
	}
}

// ToResponse converts an entity to its API shape. A persisted row with
// zero monthly commission is assumed tier-resolved unless the caller
// knows otherwise.
func ToResponse(s MonthlySettlement) SettlementResponse {
	return toResponse(s, true)
}

// ToResponseWithTier converts an entity carrying the resolver outcome.
func ToResponseWithTier(s MonthlySettlement, tierResolved bool) SettlementResponse {
	return toResponse(s, tierResolved)
}
