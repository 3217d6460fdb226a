package settlement

import "context"

// SettlementRepository defines persistence for monthly settlements
type SettlementRepository interface {
	// Upsert inserts or replaces the row keyed (user_id, year, month).
	Upsert(ctx context.Context, s *MonthlySettlement) error
	GetByID(ctx context.Context, id string) (MonthlySettlement, error)
	GetByUserPeriod(ctx context.Context, userID string, year, month int) (MonthlySettlement, error)
	List(ctx context.Context, q ListSettlementsQuery) ([]MonthlySettlement, error)
	UpdateStatus(ctx context.Context, id string, status Status) error
	UpdateNotes(ctx context.Context, id string, notes *string) error
	Delete(ctx context.Context, id string) error
}
