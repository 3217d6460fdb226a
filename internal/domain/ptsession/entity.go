package ptsession

import "time"

type SessionType string

const (
	TypeRegular SessionType = "regular"
	TypeFree    SessionType = "free"
)

// Session is one delivered PT session. Regular sessions consume the
// member's paid package and feed commission counts; free sessions only
// consume the free allowance. IdempotencyKey is unique so a retried
// mobile submission cannot double-log.
type Session struct {
	ID             string
	MemberID       string
	TrainerID      string
	CenterID       string
	SessionType    SessionType
	SessionDate    time.Time
	SignatureData  *string
	SignatureTime  *time.Time
	IdempotencyKey *string
	Notes          *string
	CreatedAt      time.Time
	UpdatedAt      time.Time

	// DTO / Join
	MemberName  *string
	TrainerName *string
}

// MonthlyCounts holds one trainer's session tallies for a month.
type MonthlyCounts struct {
	Regular int
	Free    int
}
