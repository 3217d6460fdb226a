package settlement

import (
	"time"

	"github.com/vitalfit/vitalfit-backend-go/internal/domain/payment"
	"github.com/vitalfit/vitalfit-backend-go/internal/domain/settlement"
)

// AggregateRevenue groups one trainer's payments for a calendar month
// into daily and weekly revenue buckets. Payments are expected to be
// pre-filtered to the target month by the repository's range query.
//
// Weekly buckets are consecutive 7-day windows anchored at day 1 of
// the month, not Mon-Sun calendar weeks: window k covers days
// [1+7(k-1), 7k]. The last window may run past the end of the month
// and underfills naturally. Window count is ceil(daysInMonth/7).
func AggregateRevenue(payments []payment.Record, year, month int) settlement.RevenueBuckets {
	daysInMonth := time.Date(year, time.Month(month)+1, 0, 0, 0, 0, 0, time.UTC).Day()
	windowCount := (daysInMonth + 6) / 7

	buckets := settlement.RevenueBuckets{
		Daily:       make(map[string]int64),
		Weekly:      make(map[int]int64),
		WindowCount: windowCount,
	}

	for _, p := range payments {
		day := p.PaymentDate.Day()
		if p.PaymentDate.Year() != year || p.PaymentDate.Month() != time.Month(month) {
			continue
		}

		dateKey := p.PaymentDate.Format(time.DateOnly)
		buckets.Daily[dateKey] += p.PaymentAmount

		window := (day-1)/7 + 1
		buckets.Weekly[window] += p.PaymentAmount
	}

	return buckets
}

// windowStartDay returns the calendar day a weekly window begins on.
func windowStartDay(window int) int {
	return 1 + 7*(window-1)
}
