package wizard

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTripLengthDays(t *testing.T) {
	tests := []struct {
		start, end string
		want       int
	}{
		{"2025-01-10", "2025-01-10", 1},
		{"2025-01-10", "2025-01-12", 3},
		{"2024-02-28", "2024-03-01", 3},
		{"2025-01-12", "2025-01-10", 0},
		{"", "2025-01-10", 0},
		{"2025-01-10", "", 0},
		{"10/01/2025", "2025-01-12", 0},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, TripLengthDays(tt.start, tt.end), "%s..%s", tt.start, tt.end)
	}
}

func TestPerDayBudget(t *testing.T) {
	assert.Equal(t, 100.0, PerDayBudget(300, 3))
	assert.Equal(t, 0.0, PerDayBudget(300, 0))
}

func TestBudgetTier(t *testing.T) {
	tests := []struct {
		perDay float64
		want   string
	}{
		{0, "Budget Traveler"},
		{49.99, "Budget Traveler"},
		{50, "Moderate Traveler"},
		{99.99, "Moderate Traveler"},
		{100, "Comfort Traveler"},
		{199.99, "Comfort Traveler"},
		{200, "Luxury Traveler"},
		{5000, "Luxury Traveler"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, BudgetTier(tt.perDay), "perDay=%v", tt.perDay)
	}
}
