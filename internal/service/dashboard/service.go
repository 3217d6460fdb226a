package dashboard

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/vitalfit/vitalfit-backend-go/internal/domain/dashboard"
)

type DashboardServiceImpl struct {
	dashboardRepo dashboard.DashboardRepository
}

func NewDashboardService(dashboardRepo dashboard.DashboardRepository) dashboard.DashboardService {
	return &DashboardServiceImpl{dashboardRepo: dashboardRepo}
}

func (s *DashboardServiceImpl) GetStats(ctx context.Context, year, month int) (dashboard.Stats, error) {
	current, err := s.dashboardRepo.GetCounts(ctx, year, month)
	if err != nil {
		return dashboard.Stats{}, fmt.Errorf("failed to load dashboard counts: %w", err)
	}

	prevYear, prevMonth := year, month-1
	if prevMonth == 0 {
		prevYear, prevMonth = year-1, 12
	}
	previous, err := s.dashboardRepo.GetCounts(ctx, prevYear, prevMonth)
	if err != nil {
		return dashboard.Stats{}, fmt.Errorf("failed to load previous month counts: %w", err)
	}

	centers, err := s.dashboardRepo.ListCenterSummaries(ctx, year, month)
	if err != nil {
		return dashboard.Stats{}, fmt.Errorf("failed to load center summaries: %w", err)
	}

	return dashboard.Stats{
		TotalUsers:           metric(current.TotalUsers, previous.TotalUsers),
		TotalCenters:         metric(current.TotalCenters, previous.TotalCenters),
		TotalMembers:         metric(current.TotalMembers, previous.TotalMembers),
		CurrentMonthRevenue:  metric(current.MonthRevenue, previous.MonthRevenue),
		CurrentMonthSessions: metric(current.MonthSessions, previous.MonthSessions),
		Centers:              centers,
	}, nil
}

// metric derives the month-over-month percent change. A zero previous
// value reports a flat 0% increase rather than dividing by zero.
func metric(current, previous int64) dashboard.Metric {
	m := dashboard.Metric{
		Value:      current,
		Change:     "0.00",
		ChangeType: dashboard.ChangeIncrease,
	}
	if previous == 0 {
		return m
	}

	change := decimal.NewFromInt(current - previous).
		Div(decimal.NewFromInt(previous)).
		Mul(decimal.NewFromInt(100)).
		Round(2)

	if change.IsNegative() {
		m.ChangeType = dashboard.ChangeDecrease
		change = change.Abs()
	}
	m.Change = change.StringFixed(2)
	return m
}
