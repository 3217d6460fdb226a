package commission

import "context"

type TierRepository interface {
	Create(ctx context.Context, tier Tier) (Tier, error)
	GetByID(ctx context.Context, id string) (Tier, error)
	// List returns tiers matching the filter, ordered by min_revenue ASC.
	List(ctx context.Context, filter TierFilter) ([]Tier, error)
	// ListActive returns every active tier; scope filtering and bracket
	// selection are done in memory by the resolver.
	ListActive(ctx context.Context) ([]Tier, error)
	Update(ctx context.Context, req UpdateTierRequest) error
	Delete(ctx context.Context, id string) error
}
