package dashboard

import "context"

// DashboardService defines business logic for the admin dashboard
type DashboardService interface {
	GetStats(ctx context.Context, year, month int) (Stats, error)
}
