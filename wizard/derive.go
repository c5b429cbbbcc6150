package wizard

import (
	"math"
	"time"
)

const dateLayout = "2006-01-02"

// TripLengthDays counts both the first and the last day. It is 0 when either
// date is missing or unparsable, or when the end precedes the start.
func TripLengthDays(start, end string) int {
	if start == "" || end == "" {
		return 0
	}
	s, err := time.Parse(dateLayout, start)
	if err != nil {
		return 0
	}
	e, err := time.Parse(dateLayout, end)
	if err != nil {
		return 0
	}
	diff := e.Sub(s).Hours() / 24
	if diff < 0 {
		return 0
	}
	return int(math.Ceil(diff)) + 1
}

// PerDayBudget is 0 for a zero-length trip.
func PerDayBudget(budget float64, days int) float64 {
	if days <= 0 {
		return 0
	}
	return budget / float64(days)
}

// BudgetTier buckets a per-day budget.
func BudgetTier(perDay float64) string {
	switch {
	case perDay < 50:
		return "Budget Traveler"
	case perDay < 100:
		return "Moderate Traveler"
	case perDay < 200:
		return "Comfort Traveler"
	default:
		return "Luxury Traveler"
	}
}
