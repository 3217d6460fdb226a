package team

import "time"

type Team struct {
	ID        string
	Name      string
	CenterID  string
	LeaderID  *string
	IsActive  bool
	CreatedAt time.Time
	UpdatedAt time.Time

	// DTO / Join
	CenterName  *string
	LeaderName  *string
	MemberCount *int
}
