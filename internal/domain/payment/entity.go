package payment

import "time"

// Record is a single payment ledger row. Amounts are KRW (integer won).
// Records are immutable facts: created when a member pays, never mutated.
type Record struct {
	ID            string
	MemberID      string
	TrainerID     string
	CenterID      string
	PaymentAmount int64
	SessionCount  int
	SessionPrice  int64
	PaymentDate   time.Time
	PaymentMethod string
	Notes         *string
	CreatedAt     time.Time
	UpdatedAt     time.Time

	// Joined fields
	MemberName *string
}
