package wizard

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"tripai/models"
)

// MinInterests is how many interests must be picked before generating.
const MinInterests = 3

// Form holds the values as typed. Numbers stay strings until submission.
type Form struct {
	Destination   string
	StartDate     string
	EndDate       string
	Budget        string
	Travelers     int
	Interests     []string
	Accommodation string
	TravelStyle   string
}

func NewForm() Form {
	return Form{
		Travelers:     1,
		Interests:     []string{},
		Accommodation: models.AccommodationMidRange,
		TravelStyle:   models.StyleBalanced,
	}
}

// CanContinue reports whether step one is complete.
func (f *Form) CanContinue() bool {
	return f.Destination != "" && f.StartDate != "" && f.EndDate != "" && f.Budget != ""
}

// CanGenerate reports whether enough interests are selected.
func (f *Form) CanGenerate() bool {
	return len(f.Interests) >= MinInterests
}

// ToggleInterest adds id when absent and removes it when present, keeping
// the selection order of the rest.
func (f *Form) ToggleInterest(id string) {
	for i, v := range f.Interests {
		if v == id {
			f.Interests = append(f.Interests[:i:i], f.Interests[i+1:]...)
			return
		}
	}
	f.Interests = append(f.Interests, id)
}

func (f *Form) HasInterest(id string) bool {
	for _, v := range f.Interests {
		if v == id {
			return true
		}
	}
	return false
}

func (f *Form) TripLength() int {
	return TripLengthDays(f.StartDate, f.EndDate)
}

func (f *Form) budget() (float64, bool) {
	v, err := strconv.ParseFloat(strings.TrimSpace(f.Budget), 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

func (f *Form) PerDay() float64 {
	b, ok := f.budget()
	if !ok {
		return 0
	}
	return PerDayBudget(b, f.TripLength())
}

// BudgetCategory is empty until both a budget and a trip length exist.
func (f *Form) BudgetCategory() string {
	if f.Budget == "" || f.TripLength() == 0 {
		return ""
	}
	return BudgetTier(f.PerDay())
}

// Request converts the form into the gateway payload.
func (f *Form) Request() (models.TripRequest, error) {
	b, ok := f.budget()
	if !ok {
		return models.TripRequest{}, errors.Errorf("budget %q is not a number", f.Budget)
	}
	travelers := f.Travelers
	interests := make([]string, len(f.Interests))
	copy(interests, f.Interests)
	return models.TripRequest{
		Destination:   f.Destination,
		StartDate:     f.StartDate,
		EndDate:       f.EndDate,
		Budget:        &b,
		Travelers:     &travelers,
		Interests:     interests,
		Accommodation: f.Accommodation,
		TravelStyle:   f.TravelStyle,
	}, nil
}
