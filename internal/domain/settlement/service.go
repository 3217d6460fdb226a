package settlement

import "context"

// SettlementService defines business logic for monthly settlements
type SettlementService interface {
	// Generate recomputes and upserts the settlement for one trainer
	// and month from that month's payments, sessions, commission tiers
	// and bonus rules.
	Generate(ctx context.Context, req GenerateSettlementRequest) (SettlementResponse, error)
	GetByID(ctx context.Context, id string) (SettlementResponse, error)
	GetByUserPeriod(ctx context.Context, userID string, year, month int) (SettlementResponse, error)
	List(ctx context.Context, q ListSettlementsQuery) ([]SettlementResponse, error)
	UpdateStatus(ctx context.Context, req UpdateStatusRequest) error
	UpdateNotes(ctx context.Context, req UpdateNotesRequest) error
	Delete(ctx context.Context, id string) error

	// CalculateBonus previews the bonus evaluation for a trainer and
	// month without persisting anything.
	CalculateBonus(ctx context.Context, userID string, year, month int) (BonusCalculationResponse, error)
}
