package member

import "context"

// MemberRepository defines persistence for members
type MemberRepository interface {
	Create(ctx context.Context, m *Member) error
	GetByID(ctx context.Context, id string) (Member, error)
	List(ctx context.Context, q ListMembersQuery) ([]Member, error)
	Update(ctx context.Context, m *Member) error
	// AdjustSessions atomically bumps the used or free session counter.
	AdjustSessions(ctx context.Context, id string, usedDelta, freeDelta int) error
	// ExpireOverdue marks active members past their expire_date as
	// expired and returns how many rows changed.
	ExpireOverdue(ctx context.Context) (int64, error)
	Delete(ctx context.Context, id string) error
}
