package ptsession

import (
	"time"

	"github.com/vitalfit/vitalfit-backend-go/internal/pkg/validator"
)

type CreateSessionRequest struct {
	MemberID       string  `json:"member_id"`
	TrainerID      string  `json:"trainer_id"`
	SessionType    string  `json:"session_type"`
	SessionDate    string  `json:"session_date"`
	SignatureData  *string `json:"signature_data"`
	IdempotencyKey *string `json:"idempotency_key"`
	Notes          *string `json:"notes"`
}

func (r *CreateSessionRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.MemberID) {
		errs = append(errs, validator.ValidationError{
			Field:   "member_id",
			Message: "member_id is required",
		})
	}
	if validator.IsEmpty(r.TrainerID) {
		errs = append(errs, validator.ValidationError{
			Field:   "trainer_id",
			Message: "trainer_id is required",
		})
	}
	if !validator.IsInSlice(r.SessionType, []string{string(TypeRegular), string(TypeFree)}) {
		errs = append(errs, validator.ValidationError{
			Field:   "session_type",
			Message: "session_type must be one of: regular, free",
		})
	}
	if validator.IsEmpty(r.SessionDate) {
		errs = append(errs, validator.ValidationError{
			Field:   "session_date",
			Message: "session_date is required",
		})
	} else if _, ok := validator.IsValidDate(r.SessionDate); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "session_date",
			Message: "session_date must be in YYYY-MM-DD format",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type ListSessionsQuery struct {
	MemberID  *string
	TrainerID *string
	CenterID  *string
	Year      int
	Month     int
}

type SessionResponse struct {
	ID            string      `json:"id"`
	MemberID      string      `json:"member_id"`
	MemberName    *string     `json:"member_name,omitempty"`
	TrainerID     string      `json:"trainer_id"`
	TrainerName   *string     `json:"trainer_name,omitempty"`
	CenterID      string      `json:"center_id"`
	SessionType   SessionType `json:"session_type"`
	SessionDate   string      `json:"session_date"`
	Signed        bool        `json:"signed"`
	SignatureTime *time.Time  `json:"signature_time,omitempty"`
	Notes         *string     `json:"notes,omitempty"`
	CreatedAt     time.Time   `json:"created_at"`
}

func ToResponse(s Session) SessionResponse {
	return SessionResponse{
		ID:            s.ID,
		MemberID:      s.MemberID,
		MemberName:    s.MemberName,
		TrainerID:     s.TrainerID,
		TrainerName:   s.TrainerName,
		CenterID:      s.CenterID,
		SessionType:   s.SessionType,
		SessionDate:   s.SessionDate.Format(time.DateOnly),
		Signed:        s.SignatureData != nil,
		SignatureTime: s.SignatureTime,
		Notes:         s.Notes,
		CreatedAt:     s.CreatedAt,
	}
}
