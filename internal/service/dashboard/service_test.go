package dashboard

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vitalfit/vitalfit-backend-go/internal/domain/dashboard"
)

func TestMetric_PercentChange(t *testing.T) {
	tests := []struct {
		name       string
		current    int64
		previous   int64
		wantChange string
		wantType   string
	}{
		{"growth", 150, 100, "50.00", dashboard.ChangeIncrease},
		{"decline", 75, 100, "25.00", dashboard.ChangeDecrease},
		{"flat", 100, 100, "0.00", dashboard.ChangeIncrease},
		{"no previous data", 100, 0, "0.00", dashboard.ChangeIncrease},
		{"fractional", 1, 3, "66.67", dashboard.ChangeDecrease},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := metric(tt.current, tt.previous)
			assert.Equal(t, tt.current, m.Value)
			assert.Equal(t, tt.wantChange, m.Change)
			assert.Equal(t, tt.wantType, m.ChangeType)
		})
	}
}
