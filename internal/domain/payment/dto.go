package payment

import (
	"github.com/vitalfit/vitalfit-backend-go/internal/pkg/validator"
)

type CreatePaymentRequest struct {
	MemberID      string  `json:"member_id"`
	TrainerID     string  `json:"trainer_id"`
	CenterID      string  `json:"center_id"`
	PaymentAmount int64   `json:"payment_amount"`
	SessionCount  int     `json:"session_count"`
	SessionPrice  int64   `json:"session_price"`
	PaymentDate   string  `json:"payment_date"` // YYYY-MM-DD
	PaymentMethod string  `json:"payment_method"`
	Notes         *string `json:"notes,omitempty"`
}

func (r *CreatePaymentRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.MemberID) {
		errs = append(errs, validator.ValidationError{Field: "member_id", Message: "is required"})
	}
	if validator.IsEmpty(r.TrainerID) {
		errs = append(errs, validator.ValidationError{Field: "trainer_id", Message: "is required"})
	}
	if validator.IsEmpty(r.CenterID) {
		errs = append(errs, validator.ValidationError{Field: "center_id", Message: "is required"})
	}
	if r.PaymentAmount <= 0 {
		errs = append(errs, validator.ValidationError{Field: "payment_amount", Message: "must be positive"})
	}
	if r.SessionCount < 0 {
		errs = append(errs, validator.ValidationError{Field: "session_count", Message: "must be non-negative"})
	}
	if r.SessionPrice < 0 {
		errs = append(errs, validator.ValidationError{Field: "session_price", Message: "must be non-negative"})
	}
	if _, ok := validator.IsValidDate(r.PaymentDate); !ok {
		errs = append(errs, validator.ValidationError{Field: "payment_date", Message: "must be YYYY-MM-DD"})
	}
	if validator.IsEmpty(r.PaymentMethod) {
		errs = append(errs, validator.ValidationError{Field: "payment_method", Message: "is required"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type PaymentResponse struct {
	ID            string  `json:"id"`
	MemberID      string  `json:"member_id"`
	MemberName    string  `json:"member_name"`
	TrainerID     string  `json:"trainer_id"`
	CenterID      string  `json:"center_id"`
	PaymentAmount int64   `json:"payment_amount"`
	SessionCount  int     `json:"session_count"`
	SessionPrice  int64   `json:"session_price"`
	PaymentDate   string  `json:"payment_date"`
	PaymentMethod string  `json:"payment_method"`
	Notes         *string `json:"notes,omitempty"`
}

// CarryoverResponse reports the previous month's carried-over revenue
// for a trainer, used as an input to the next settlement.
type CarryoverResponse struct {
	CarryoverAmount int64 `json:"carryover_amount"`
	PrevYear        int   `json:"prev_year"`
	PrevMonth       int   `json:"prev_month"`
}

// TrainerSalaryResponse resolves a trainer's base salary from the
// position directory.
type TrainerSalaryResponse struct {
	TrainerID    string `json:"trainer_id"`
	TrainerName  string `json:"trainer_name"`
	PositionName string `json:"position_name"`
	BaseSalary   int64  `json:"base_salary"`
}
