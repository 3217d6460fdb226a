package settlement

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vitalfit/vitalfit-backend-go/internal/domain/payment"
)

func pay(date string, amount int64) payment.Record {
	d, err := time.Parse(time.DateOnly, date)
	if err != nil {
		panic(err)
	}
	return payment.Record{PaymentDate: d, PaymentAmount: amount}
}

func TestAggregateRevenue_DailyBuckets(t *testing.T) {
	payments := []payment.Record{
		pay("2024-07-05", 100),
		pay("2024-07-05", 50),
		pay("2024-07-06", 20),
	}

	buckets := AggregateRevenue(payments, 2024, 7)

	assert.Equal(t, int64(150), buckets.Daily["2024-07-05"])
	assert.Equal(t, int64(20), buckets.Daily["2024-07-06"])
	assert.Len(t, buckets.Daily, 2)
}

func TestAggregateRevenue_WeeklyWindows(t *testing.T) {
	// July 2024 has 31 days: windows 1-7, 8-14, 15-21, 22-28, 29-31.
	buckets := AggregateRevenue([]payment.Record{pay("2024-07-29", 500)}, 2024, 7)

	assert.Equal(t, 5, buckets.WindowCount)
	assert.Equal(t, int64(500), buckets.Weekly[5])
	for window := 1; window <= 4; window++ {
		assert.Zero(t, buckets.Weekly[window])
	}
}

func TestAggregateRevenue_WindowBoundaries(t *testing.T) {
	payments := []payment.Record{
		pay("2024-07-07", 100), // last day of window 1
		pay("2024-07-08", 200), // first day of window 2
	}

	buckets := AggregateRevenue(payments, 2024, 7)

	assert.Equal(t, int64(100), buckets.Weekly[1])
	assert.Equal(t, int64(200), buckets.Weekly[2])
}

func TestAggregateRevenue_EmptyPayments(t *testing.T) {
	buckets := AggregateRevenue(nil, 2024, 7)

	assert.Empty(t, buckets.Daily)
	assert.Empty(t, buckets.Weekly)
	assert.Equal(t, 5, buckets.WindowCount)
}

func TestAggregateRevenue_WindowCountPerMonth(t *testing.T) {
	tests := []struct {
		name  string
		year  int
		month int
		want  int
	}{
		{"february non-leap", 2023, 2, 4},
		{"february leap", 2024, 2, 5},
		{"thirty days", 2024, 6, 5},
		{"thirty one days", 2024, 7, 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buckets := AggregateRevenue(nil, tt.year, tt.month)
			assert.Equal(t, tt.want, buckets.WindowCount)
		})
	}
}

func TestAggregateRevenue_IgnoresOutOfMonthPayments(t *testing.T) {
	payments := []payment.Record{
		pay("2024-06-30", 999),
		pay("2024-07-01", 100),
	}

	buckets := AggregateRevenue(payments, 2024, 7)

	require.Len(t, buckets.Daily, 1)
	assert.Equal(t, int64(100), buckets.Daily["2024-07-01"])
}

func TestAggregateRevenue_Deterministic(t *testing.T) {
	payments := []payment.Record{
		pay("2024-07-03", 1_000_000),
		pay("2024-07-10", 2_000_000),
		pay("2024-07-10", 500_000),
	}

	first := AggregateRevenue(payments, 2024, 7)
	second := AggregateRevenue(payments, 2024, 7)

	assert.Equal(t, first, second)
}
