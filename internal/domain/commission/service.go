package commission

import "context"

// TierService defines business logic for commission-rate tiers
type TierService interface {
	CreateTier(ctx context.Context, req CreateTierRequest) (TierResponse, error)
	GetTier(ctx context.Context, id string) (TierResponse, error)
	ListTiers(ctx context.Context, filter TierFilter) ([]TierResponse, error)
	UpdateTier(ctx context.Context, req UpdateTierRequest) error
	DeleteTier(ctx context.Context, id string) error

	// ResolveByRevenue selects the single best-matching tier for a
	// trainer's total monthly revenue. Returns ErrNoMatchingTier when no
	// active bracket contains the revenue for the given scope.
	ResolveByRevenue(ctx context.Context, q ResolveTierQuery) (TierResponse, error)
}
