package member

import "time"

type MemberStatus string

const (
	StatusActive    MemberStatus = "active"
	StatusInactive  MemberStatus = "inactive"
	StatusExpired   MemberStatus = "expired"
	StatusWithdrawn MemberStatus = "withdrawn"
)

// Member is a gym customer holding a PT session package. Session
// counters are denormalized here and adjusted as sessions are logged.
type Member struct {
	ID            string
	Name          string
	Phone         string
	CenterID      string
	TrainerID     *string
	JoinDate      time.Time
	ExpireDate    *time.Time
	TotalSessions int
	UsedSessions  int
	FreeSessions  int
	Memo          *string
	Status        MemberStatus
	CreatedAt     time.Time
	UpdatedAt     time.Time

	// DTO / Join
	TrainerName *string
	CenterName  *string
}

// RemainingSessions returns paid sessions left on the package.
func (m *Member) RemainingSessions() int {
	remaining := m.TotalSessions - m.UsedSessions
	if remaining < 0 {
		return 0
	}
	return remaining
}

// IsExpired checks if the membership has passed its expiry date.
func (m *Member) IsExpired(now time.Time) bool {
	return m.ExpireDate != nil && m.ExpireDate.Before(now)
}
