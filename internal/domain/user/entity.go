package user

import "time"

type Role string

const (
	RoleAdmin         Role = "admin"          // Head office admin - full access
	RoleCenterManager Role = "center_manager" // Manages one center
	RoleTeamLeader    Role = "team_leader"    // Leads a trainer team
	RoleTeamMember    Role = "team_member"    // Regular trainer
)

type UserStatus string

const (
	StatusActive   UserStatus = "active"
	StatusInactive UserStatus = "inactive"
	StatusRetired  UserStatus = "retired"
)

type User struct {
	ID               string
	Name             string
	Email            string
	PasswordHash     string
	Phone            *string
	Role             Role
	PositionID       *string
	TeamID           *string
	CenterID         string
	JoinDate         time.Time
	LeaveDate        *time.Time
	Status           UserStatus
	ProfileImagePath *string
	Nickname         *string
	License          *string
	Experience       *string
	Education        *string
	Instagram        *string
	Shift            *string
	LastLoginAt      *time.Time
	LoginAttempts    int
	IsLocked         bool
	CreatedAt        time.Time
	UpdatedAt        time.Time

	// DTO / Join
	PositionName *string
	TeamName     *string
	CenterName   *string
}

// IsAdmin checks if user is a head office admin
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// IsManager checks if user manages a center or the whole company
func (u *User) IsManager() bool {
	return u.Role == RoleAdmin || u.Role == RoleCenterManager
}

// IsTrainer checks if user delivers PT sessions
func (u *User) IsTrainer() bool {
	return u.Role == RoleTeamLeader || u.Role == RoleTeamMember
}

// CanManageCenter checks if user can manage the given center
func (u *User) CanManageCenter(centerID string) bool {
	if u.Role == RoleAdmin {
		return true
	}
	return u.Role == RoleCenterManager && u.CenterID == centerID
}
