package dashboard

// Metric is one headline figure with its month-over-month movement.
// Change is a percentage with two decimal places rendered as a string
// so the frontend never re-rounds it.
type Metric struct {
	Value      int64  `json:"value"`
	Change     string `json:"change"`
	ChangeType string `json:"change_type"`
}

const (
	ChangeIncrease = "increase"
	ChangeDecrease = "decrease"
)

// CenterSummary is one row of the per-center breakdown.
type CenterSummary struct {
	CenterID     string `json:"center_id"`
	CenterName   string `json:"center_name"`
	TotalUsers   int    `json:"total_users"`
	TotalMembers int    `json:"total_members"`
	MonthRevenue int64  `json:"month_revenue"`
}

// Stats is the admin dashboard payload.
type Stats struct {
	TotalUsers           Metric          `json:"total_users"`
	TotalCenters         Metric          `json:"total_centers"`
	TotalMembers         Metric          `json:"total_members"`
	CurrentMonthRevenue  Metric          `json:"current_month_revenue"`
	CurrentMonthSessions Metric          `json:"current_month_sessions"`
	Centers              []CenterSummary `json:"centers"`
}

// RawCounts is what the repository gathers in one pass for a given
// month; the service derives Metrics from current and previous months.
type RawCounts struct {
	TotalUsers    int64
	TotalCenters  int64
	TotalMembers  int64
	MonthRevenue  int64
	MonthSessions int64
}
