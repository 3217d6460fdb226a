package dashboard

import "context"

// DashboardRepository gathers aggregate counts. Implementations may
// run the count queries concurrently.
type DashboardRepository interface {
	GetCounts(ctx context.Context, year, month int) (RawCounts, error)
	ListCenterSummaries(ctx context.Context, year, month int) ([]CenterSummary, error)
}
