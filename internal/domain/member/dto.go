package member

import (
	"time"

	"github.com/vitalfit/vitalfit-backend-go/internal/pkg/validator"
)

type CreateMemberRequest struct {
	Name          string  `json:"name"`
	Phone         string  `json:"phone"`
	CenterID      string  `json:"center_id"`
	TrainerID     *string `json:"trainer_id"`
	JoinDate      string  `json:"join_date"`
	ExpireDate    *string `json:"expire_date"`
	TotalSessions int     `json:"total_sessions"`
	FreeSessions  int     `json:"free_sessions"`
	Memo          *string `json:"memo"`
}

func (r *CreateMemberRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	}
	if validator.IsEmpty(r.Phone) {
		errs = append(errs, validator.ValidationError{
			Field:   "phone",
			Message: "phone is required",
		})
	} else if !validator.IsValidPhoneNumber(r.Phone) {
		errs = append(errs, validator.ValidationError{
			Field:   "phone",
			Message: "phone must be a valid mobile number",
		})
	}
	if validator.IsEmpty(r.CenterID) {
		errs = append(errs, validator.ValidationError{
			Field:   "center_id",
			Message: "center_id is required",
		})
	}
	if validator.IsEmpty(r.JoinDate) {
		errs = append(errs, validator.ValidationError{
			Field:   "join_date",
			Message: "join_date is required",
		})
	} else if _, ok := validator.IsValidDate(r.JoinDate); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "join_date",
			Message: "join_date must be in YYYY-MM-DD format",
		})
	}
	if r.ExpireDate != nil {
		if _, ok := validator.IsValidDate(*r.ExpireDate); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "expire_date",
				Message: "expire_date must be in YYYY-MM-DD format",
			})
		}
	}
	if r.TotalSessions < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "total_sessions",
			Message: "total_sessions must not be negative",
		})
	}
	if r.FreeSessions < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "free_sessions",
			Message: "free_sessions must not be negative",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateMemberRequest struct {
	ID            string  `json:"-"`
	Name          *string `json:"name"`
	Phone         *string `json:"phone"`
	TrainerID     *string `json:"trainer_id"`
	ExpireDate    *string `json:"expire_date"`
	TotalSessions *int    `json:"total_sessions"`
	FreeSessions  *int    `json:"free_sessions"`
	Memo          *string `json:"memo"`
	Status        *string `json:"status"`
}

func (r *UpdateMemberRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Phone != nil && !validator.IsValidPhoneNumber(*r.Phone) {
		errs = append(errs, validator.ValidationError{
			Field:   "phone",
			Message: "phone must be a valid mobile number",
		})
	}
	if r.ExpireDate != nil {
		if _, ok := validator.IsValidDate(*r.ExpireDate); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "expire_date",
				Message: "expire_date must be in YYYY-MM-DD format",
			})
		}
	}
	if r.Status != nil && !validator.IsInSlice(*r.Status, []string{
		string(StatusActive), string(StatusInactive), string(StatusExpired), string(StatusWithdrawn),
	}) {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status must be one of: active, inactive, expired, withdrawn",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type ListMembersQuery struct {
	CenterID  *string
	TrainerID *string
	Status    *string
	Search    *string
}

type MemberResponse struct {
	ID                string       `json:"id"`
	Name              string       `json:"name"`
	Phone             string       `json:"phone"`
	CenterID          string       `json:"center_id"`
	CenterName        *string      `json:"center_name,omitempty"`
	TrainerID         *string      `json:"trainer_id,omitempty"`
	TrainerName       *string      `json:"trainer_name,omitempty"`
	JoinDate          string       `json:"join_date"`
	ExpireDate        *string      `json:"expire_date,omitempty"`
	TotalSessions     int          `json:"total_sessions"`
	UsedSessions      int          `json:"used_sessions"`
	RemainingSessions int          `json:"remaining_sessions"`
	FreeSessions      int          `json:"free_sessions"`
	Memo              *string      `json:"memo,omitempty"`
	Status            MemberStatus `json:"status"`
	CreatedAt         time.Time    `json:"created_at"`
}

func ToResponse(m Member) MemberResponse {
	var expireDate *string
	if m.ExpireDate != nil {
		d := m.ExpireDate.Format(time.DateOnly)
		expireDate = &d
	}
	return MemberResponse{
		ID:                m.ID,
		Name:              m.Name,
		Phone:             m.Phone,
		CenterID:          m.CenterID,
		CenterName:        m.CenterName,
		TrainerID:         m.TrainerID,
		TrainerName:       m.TrainerName,
		JoinDate:          m.JoinDate.Format(time.DateOnly),
		ExpireDate:        expireDate,
		TotalSessions:     m.TotalSessions,
		UsedSessions:      m.UsedSessions,
		RemainingSessions: m.RemainingSessions(),
		FreeSessions:      m.FreeSessions,
		Memo:              m.Memo,
		Status:            m.Status,
		CreatedAt:         m.CreatedAt,
	}
}
