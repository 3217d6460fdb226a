package team

import "github.com/vitalfit/vitalfit-backend-go/internal/pkg/validator"

type CreateTeamRequest struct {
	Name     string  `json:"name"`
	CenterID string  `json:"center_id"`
	LeaderID *string `json:"leader_id"`
}

func (r *CreateTeamRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	} else if len(r.Name) > 100 {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name must not exceed 100 characters",
		})
	}
	if validator.IsEmpty(r.CenterID) {
		errs = append(errs, validator.ValidationError{
			Field:   "center_id",
			Message: "center_id is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type UpdateTeamRequest struct {
	ID       string  `json:"-"`
	Name     *string `json:"name"`
	LeaderID *string `json:"leader_id"`
	IsActive *bool   `json:"is_active"`
}

func (r *UpdateTeamRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Name != nil && validator.IsEmpty(*r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name must not be empty",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type TeamResponse struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	CenterID    string  `json:"center_id"`
	CenterName  *string `json:"center_name,omitempty"`
	LeaderID    *string `json:"leader_id,omitempty"`
	LeaderName  *string `json:"leader_name,omitempty"`
	MemberCount *int    `json:"member_count,omitempty"`
	IsActive    bool    `json:"is_active"`
}

func ToResponse(t Team) TeamResponse {
	return TeamResponse{
		ID:          t.ID,
		Name:        t.Name,
		CenterID:    t.CenterID,
		CenterName:  t.CenterName,
		LeaderID:    t.LeaderID,
		LeaderName:  t.LeaderName,
		MemberCount: t.MemberCount,
		IsActive:    t.IsActive,
	}
}
