package postgresql

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/vitalfit/vitalfit-backend-go/internal/domain/dashboard"
	"github.com/vitalfit/vitalfit-backend-go/internal/pkg/database"
)

type dashboardRepository struct {
	db *database.DB
}

func NewDashboardRepository(db *database.DB) dashboard.DashboardRepository {
	return &dashboardRepository{db: db}
}

// GetCounts runs the five aggregate queries concurrently; they are
// independent reads against the pool.
func (r *dashboardRepository) GetCounts(ctx context.Context, year, month int) (dashboard.RawCounts, error) {
	var counts dashboard.RawCounts

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		return r.db.Pool.QueryRow(gctx,
			`SELECT COUNT(*) FROM users WHERE status = 'active'`,
		).Scan(&counts.TotalUsers)
	})
	g.Go(func() error {
		return r.db.Pool.QueryRow(gctx,
			`SELECT COUNT(*) FROM centers WHERE is_active = TRUE`,
		).Scan(&counts.TotalCenters)
	})
	g.Go(func() error {
		return r.db.Pool.QueryRow(gctx,
			`SELECT COUNT(*) FROM members WHERE status = 'active'`,
		).Scan(&counts.TotalMembers)
	})
	g.Go(func() error {
		return r.db.Pool.QueryRow(gctx, `
			SELECT COALESCE(SUM(payment_amount), 0) FROM payments
			WHERE payment_date >= make_date($1, $2, 1)
			  AND payment_date < make_date($1, $2, 1) + INTERVAL '1 month'`,
			year, month,
		).Scan(&counts.MonthRevenue)
	})
	g.Go(func() error {
		return r.db.Pool.QueryRow(gctx, `
			SELECT COUNT(*) FROM pt_sessions
			WHERE session_date >= make_date($1, $2, 1)
			  AND session_date < make_date($1, $2, 1) + INTERVAL '1 month'`,
			year, month,
		).Scan(&counts.MonthSessions)
	})

	if err := g.Wait(); err != nil {
		return dashboard.RawCounts{}, fmt.Errorf("failed to gather dashboard counts: %w", err)
	}
	return counts, nil
}

func (r *dashboardRepository) ListCenterSummaries(ctx context.Context, year, month int) ([]dashboard.CenterSummary, error) {
	query := `
		SELECT c.id, c.name,
			(SELECT COUNT(*) FROM users u WHERE u.center_id = c.id AND u.status = 'active') AS total_users,
			(SELECT COUNT(*) FROM members m WHERE m.center_id = c.id AND m.status = 'active') AS total_members,
			COALESCE((
				SELECT SUM(p.payment_amount) FROM payments p
				WHERE p.center_id = c.id
				  AND p.payment_date >= make_date($1, $2, 1)
				  AND p.payment_date < make_date($1, $2, 1) + INTERVAL '1 month'
			), 0) AS month_revenue
		FROM centers c
		WHERE c.is_active = TRUE
		ORDER BY c.name
	`

	rows, err := r.db.Pool.Query(ctx, query, year, month)
	if err != nil {
		return nil, fmt.Errorf("failed to list center summaries: %w", err)
	}
	defer rows.Close()

	var summaries []dashboard.CenterSummary
	for rows.Next() {
		var s dashboard.CenterSummary
		if err := rows.Scan(&s.CenterID, &s.CenterName, &s.TotalUsers, &s.TotalMembers, &s.MonthRevenue); err != nil {
			return nil, fmt.Errorf("failed to scan center summary: %w", err)
		}
		summaries = append(summaries, s)
	}
	return summaries, rows.Err()
}
