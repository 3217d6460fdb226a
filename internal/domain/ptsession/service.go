package ptsession

import "context"

// SessionService defines business logic for PT sessions
type SessionService interface {
	// CreateSession logs a delivered session and consumes one unit from
	// the member's package. A repeated idempotency key returns the
	// already-logged session instead of a duplicate.
	CreateSession(ctx context.Context, req CreateSessionRequest) (SessionResponse, error)
	GetSession(ctx context.Context, id string) (SessionResponse, error)
	ListSessions(ctx context.Context, q ListSessionsQuery) ([]SessionResponse, error)
	CountByTrainerMonth(ctx context.Context, trainerID string, year, month int) (MonthlyCounts, error)
	DeleteSession(ctx context.Context, id string) error
}
