package models

// Accommodation tiers offered by the planner.
const (
	AccommodationBudget   = "budget"
	AccommodationMidRange = "mid-range"
	AccommodationLuxury   = "luxury"
)

// Travel styles offered by the planner.
const (
	StyleRelaxed  = "relaxed"
	StyleBalanced = "balanced"
	StylePacked   = "packed"
)

// TripRequest is the payload the planner sends to the generation gateway.
// Budget and Travelers are pointers so an absent field can be told apart
// from a zero value.
type TripRequest struct {
	Destination   string   `json:"destination" bson:"destination"`
	StartDate     string   `json:"startDate" bson:"startDate"`
	EndDate       string   `json:"endDate" bson:"endDate"`
	Budget        *float64 `json:"budget" bson:"budget"`
	Travelers     *int     `json:"travelers" bson:"travelers"`
	Interests     []string `json:"interests" bson:"interests"`
	Accommodation string   `json:"accommodation,omitempty" bson:"accommodation,omitempty"`
	TravelStyle   string   `json:"travelStyle,omitempty" bson:"travelStyle,omitempty"`
}

// Itinerary is the day-by-day plan produced by the completion API.
type Itinerary struct {
	Destination        string        `json:"destination" bson:"destination"`
	TotalDays          int           `json:"totalDays" bson:"totalDays"`
	PerDayBudget       float64       `json:"perDayBudget,omitempty" bson:"perDayBudget,omitempty"`
	Summary            string        `json:"summary,omitempty" bson:"summary,omitempty"`
	Days               []DaySchedule `json:"days" bson:"days"`
	EstimatedTotalCost float64       `json:"estimatedTotalCost,omitempty" bson:"estimatedTotalCost,omitempty"`
}

type DaySchedule struct {
	Day        int        `json:"day" bson:"day"`
	Date       string     `json:"date,omitempty" bson:"date,omitempty"`
	Activities []Activity `json:"activities" bson:"activities"`
	DailyCost  float64    `json:"dailyCost,omitempty" bson:"dailyCost,omitempty"`
}

type Activity struct {
	Name        string      `json:"activity" bson:"activity"`
	Description string      `json:"description,omitempty" bson:"description,omitempty"`
	Category    string      `json:"category,omitempty" bson:"category,omitempty"`
	Time        string      `json:"time,omitempty" bson:"time,omitempty"`
	Coordinates *LatLon     `json:"coordinates,omitempty" bson:"coordinates,omitempty"`
	Address     string      `json:"address,omitempty" bson:"address,omitempty"`
	TimeSlot    *TimeWindow `json:"time_slot,omitempty" bson:"time_slot,omitempty"`
	Cost        float64     `json:"cost,omitempty" bson:"cost,omitempty"`
}

type TimeWindow struct {
	Start string `json:"start_time" bson:"start_time"`
	End   string `json:"end_time" bson:"end_time"`
}

// StoredTrip is what the trip store keeps between generation and export.
type StoredTrip struct {
	ID        string      `json:"id"`
	Request   TripRequest `json:"request"`
	Itinerary Itinerary   `json:"itinerary"`
}
