package user

import (
	"time"

	"github.com/vitalfit/vitalfit-backend-go/internal/pkg/validator"
)

type CreateUserRequest struct {
	Name       string  `json:"name"`
	Email      string  `json:"email"`
	Password   string  `json:"password"`
	Phone      *string `json:"phone"`
	Role       string  `json:"role"`
	PositionID *string `json:"position_id"`
	TeamID     *string `json:"team_id"`
	CenterID   string  `json:"center_id"`
	JoinDate   string  `json:"join_date"`
	Nickname   *string `json:"nickname"`
	License    *string `json:"license"`
	Experience *string `json:"experience"`
	Education  *string `json:"education"`
	Instagram  *string `json:"instagram"`
	Shift      *string `json:"shift"`
}

func (r *CreateUserRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	}
	if len(r.Name) > 100 {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name must not exceed 100 characters",
		})
	}
	if validator.IsEmpty(r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "email is required",
		})
	} else if !validator.IsValidEmail(r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "email must be a valid email address",
		})
	}
	if len(r.Password) < 8 {
		errs = append(errs, validator.ValidationError{
			Field:   "password",
			Message: "password must be at least 8 characters long",
		})
	}
	if r.Phone != nil && !validator.IsValidPhoneNumber(*r.Phone) {
		errs = append(errs, validator.ValidationError{
			Field:   "phone",
			Message: "phone must be a valid mobile number",
		})
	}
	if !validator.IsInSlice(r.Role, []string{
		string(RoleAdmin), string(RoleCenterManager), string(RoleTeamLeader), string(RoleTeamMember),
	}) {
		errs = append(errs, validator.ValidationError{
			Field:   "role",
			Message: "role must be one of: admin, center_manager, team_leader, team_member",
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

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateUserRequest struct {
	ID         string  `json:"-"`
	Name       *string `json:"name"`
	Phone      *string `json:"phone"`
	Role       *string `json:"role"`
	PositionID *string `json:"position_id"`
	TeamID     *string `json:"team_id"`
	CenterID   *string `json:"center_id"`
	Status     *string `json:"status"`
	LeaveDate  *string `json:"leave_date"`
	Nickname   *string `json:"nickname"`
	License    *string `json:"license"`
	Experience *string `json:"experience"`
	Education  *string `json:"education"`
	Instagram  *string `json:"instagram"`
	Shift      *string `json:"shift"`
}

func (r *UpdateUserRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Role != nil && !validator.IsInSlice(*r.Role, []string{
		string(RoleAdmin), string(RoleCenterManager), string(RoleTeamLeader), string(RoleTeamMember),
	}) {
		errs = append(errs, validator.ValidationError{
			Field:   "role",
			Message: "role must be one of: admin, center_manager, team_leader, team_member",
		})
	}
	if r.Status != nil && !validator.IsInSlice(*r.Status, []string{
		string(StatusActive), string(StatusInactive), string(StatusRetired),
	}) {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status must be one of: active, inactive, retired",
		})
	}
	if r.LeaveDate != nil {
		if _, ok := validator.IsValidDate(*r.LeaveDate); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "leave_date",
				Message: "leave_date must be in YYYY-MM-DD format",
			})
		}
	}
	if r.Phone != nil && !validator.IsValidPhoneNumber(*r.Phone) {
		errs = append(errs, validator.ValidationError{
			Field:   "phone",
			Message: "phone must be a valid mobile number",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type ChangePasswordRequest struct {
	UserID          string `json:"-"`
	CurrentPassword string `json:"current_password"`
	NewPassword     string `json:"new_password"`
}

func (r *ChangePasswordRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.CurrentPassword) {
		errs = append(errs, validator.ValidationError{
			Field:   "current_password",
			Message: "current_password is required",
		})
	}
	if len(r.NewPassword) < 8 {
		errs = append(errs, validator.ValidationError{
			Field:   "new_password",
			Message: "new_password must be at least 8 characters long",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type ListUsersQuery struct {
	CenterID *string
	TeamID   *string
	Role     *string
	Status   *string
	Search   *string
}

type UserResponse struct {
	ID              string     `json:"id"`
	Name            string     `json:"name"`
	Email           string     `json:"email"`
	Phone           *string    `json:"phone,omitempty"`
	Role            Role       `json:"role"`
	PositionID      *string    `json:"position_id,omitempty"`
	PositionName    *string    `json:"position_name,omitempty"`
	TeamID          *string    `json:"team_id,omitempty"`
	TeamName        *string    `json:"team_name,omitempty"`
	CenterID        string     `json:"center_id"`
	CenterName      *string    `json:"center_name,omitempty"`
	JoinDate        string     `json:"join_date"`
	LeaveDate       *string    `json:"leave_date,omitempty"`
	Status          UserStatus `json:"status"`
	ProfileImageURL *string    `json:"profile_image_url,omitempty"`
	Nickname        *string    `json:"nickname,omitempty"`
	License         *string    `json:"license,omitempty"`
	Experience      *string    `json:"experience,omitempty"`
	Education       *string    `json:"education,omitempty"`
	Instagram       *string    `json:"instagram,omitempty"`
	Shift           *string    `json:"shift,omitempty"`
	LastLoginAt     *time.Time `json:"last_login_at,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
}

// ToResponse converts an entity to its API shape. profileImageURL is
// resolved by the service layer from the stored path.
func ToResponse(u User, profileImageURL *string) UserResponse {
	var leaveDate *string
	if u.LeaveDate != nil {
		d := u.LeaveDate.Format("2006-01-02")
		leaveDate = &d
	}
	return UserResponse{
		ID:              u.ID,
		Name:            u.Name,
		Email:           u.Email,
		Phone:           u.Phone,
		Role:            u.Role,
		PositionID:      u.PositionID,
		PositionName:    u.PositionName,
		TeamID:          u.TeamID,
		TeamName:        u.TeamName,
		CenterID:        u.CenterID,
		CenterName:      u.CenterName,
		JoinDate:        u.JoinDate.Format("2006-01-02"),
		LeaveDate:       leaveDate,
		Status:          u.Status,
		ProfileImageURL: profileImageURL,
		Nickname:        u.Nickname,
		License:         u.License,
		Experience:      u.Experience,
		Education:       u.Education,
		Instagram:       u.Instagram,
		Shift:           u.Shift,
		LastLoginAt:     u.LastLoginAt,
		CreatedAt:       u.CreatedAt,
	}
}
