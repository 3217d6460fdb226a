package ptsession

import "context"

// SessionRepository defines persistence for PT sessions
type SessionRepository interface {
	Create(ctx context.Context, s *Session) error
	GetByID(ctx context.Context, id string) (Session, error)
	GetByIdempotencyKey(ctx context.Context, key string) (Session, error)
	List(ctx context.Context, q ListSessionsQuery) ([]Session, error)
	// CountByTrainerMonth tallies regular and free sessions for one
	// trainer in one calendar month.
	CountByTrainerMonth(ctx context.Context, trainerID string, year, month int) (MonthlyCounts, error)
	Delete(ctx context.Context, id string) error
}
