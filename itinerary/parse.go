package itinerary

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"tripai/models"
)

// ErrMalformed matches every *ParseError.
var ErrMalformed = errors.New("malformed itinerary")

// ParseError explains why completion text could not become an Itinerary.
type ParseError struct {
	Reason string
	Err    error
}

func (e *ParseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("malformed itinerary: %s: %v", e.Reason, e.Err)
	}
	return "malformed itinerary: " + e.Reason
}

func (e *ParseError) Unwrap() error { return e.Err }

func (e *ParseError) Is(target error) bool { return target == ErrMalformed }

// number accepts JSON numbers and numeric strings such as "₹1,200" or "45".
type number float64

func (n *number) UnmarshalJSON(data []byte) error {
	s := strings.TrimSpace(string(data))
	if s == "null" || s == `""` {
		return nil
	}
	if strings.HasPrefix(s, `"`) {
		var str string
		if err := json.Unmarshal(data, &str); err != nil {
			return err
		}
		s = strings.Map(func(r rune) rune {
			if (r >= '0' && r <= '9') || r == '.' || r == '-' {
				return r
			}
			return -1
		}, str)
		if s == "" {
			return nil
		}
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return err
	}
	*n = number(v)
	return nil
}

type rawItinerary struct {
	Destination        string   `json:"destination"`
	TotalDays          number   `json:"totalDays"`
	PerDayBudget       number   `json:"perDayBudget"`
	PerDay             number   `json:"perDay"`
	Summary            string   `json:"summary"`
	Suggestion         string   `json:"suggestion"`
	Overview           string   `json:"overview"`
	Days               []rawDay `json:"days"`
	Itinerary          []rawDay `json:"itinerary"`
	EstimatedTotalCost number   `json:"estimatedTotalCost"`
}

type rawDay struct {
	Day        number        `json:"day"`
	Date       string        `json:"date"`
	Activities []rawActivity `json:"activities"`
	Plan       []rawActivity `json:"plan"`
	Schedule   []rawActivity `json:"schedule"`
	Morning    []rawActivity `json:"morning"`
	Afternoon  []rawActivity `json:"afternoon"`
	Evening    []rawActivity `json:"evening"`
	DailyCost  number        `json:"dailyCost"`
}

type rawActivity struct {
	Activity    string             `json:"activity"`
	Name        string             `json:"name"`
	Details     string             `json:"details"`
	Description string             `json:"description"`
	Category    string             `json:"category"`
	Time        string             `json:"time"`
	Lat         *number            `json:"lat"`
	Lon         *number            `json:"lon"`
	Lng         *number            `json:"lng"`
	Coordinates *models.LatLon     `json:"coordinates"`
	Address     string             `json:"address"`
	TimeSlot    *models.TimeWindow `json:"time_slot"`
	Cost        number             `json:"cost"`
}

// Parse turns completion text into an Itinerary. It tolerates markdown
// fences, prose around the JSON object and the key spellings used by the
// different prompt revisions. It does not check that the number of days
// matches totalDays, that costs add up, or where coordinates lie.
func Parse(raw string) (*models.Itinerary, error) {
	body, ok := extractObject(raw)
	if !ok {
		return nil, &ParseError{Reason: "no JSON object in completion"}
	}

	var in rawItinerary
	if err := json.Unmarshal([]byte(body), &in); err != nil {
		return nil, &ParseError{Reason: "decode", Err: err}
	}

	days := in.Days
	if len(days) == 0 {
		days = in.Itinerary
	}
	if len(days) == 0 {
		return nil, &ParseError{Reason: "no days"}
	}

	out := &models.Itinerary{
		Destination:        in.Destination,
		TotalDays:          int(in.TotalDays),
		PerDayBudget:       float64(firstNonZero(in.PerDayBudget, in.PerDay)),
		Summary:            firstNonEmpty(in.Summary, in.Suggestion, in.Overview),
		EstimatedTotalCost: float64(in.EstimatedTotalCost),
		Days:               make([]models.DaySchedule, 0, len(days)),
	}

	for i, d := range days {
		day := models.DaySchedule{
			Day:       int(d.Day),
			Date:      d.Date,
			DailyCost: float64(d.DailyCost),
		}
		if day.Day == 0 {
			day.Day = i + 1
		}

		for j, a := range d.collect() {
			act := a.toModel()
			if act.Name == "" {
				return nil, &ParseError{Reason: fmt.Sprintf("day %d activity %d has no name", day.Day, j+1)}
			}
			day.Activities = append(day.Activities, act)
		}
		if day.Activities == nil {
			day.Activities = []models.Activity{}
		}
		out.Days = append(out.Days, day)
	}
	return out, nil
}

// collect flattens whichever activity list the model used. Slot-based days
// keep morning, afternoon, evening order.
func (d rawDay) collect() []rawActivity {
	switch {
	case len(d.Activities) > 0:
		return d.Activities
	case len(d.Plan) > 0:
		return d.Plan
	case len(d.Schedule) > 0:
		return d.Schedule
	}

	var out []rawActivity
	for _, slot := range []struct {
		name string
		acts []rawActivity
	}{{"Morning", d.Morning}, {"Afternoon", d.Afternoon}, {"Evening", d.Evening}} {
		for _, a := range slot.acts {
			if a.Time == "" {
				a.Time = slot.name
			}
			out = append(out, a)
		}
	}
	return out
}

func (a rawActivity) toModel() models.Activity {
	act := models.Activity{
		Name:        strings.TrimSpace(firstNonEmpty(a.Activity, a.Name)),
		Description: firstNonEmpty(a.Description, a.Details),
		Category:    a.Category,
		Time:        a.Time,
		Address:     a.Address,
		TimeSlot:    a.TimeSlot,
		Cost:        float64(a.Cost),
	}

	lon := a.Lon
	if lon == nil {
		lon = a.Lng
	}
	switch {
	case a.Coordinates != nil:
		c := *a.Coordinates
		act.Coordinates = &c
	case a.Lat != nil && lon != nil:
		act.Coordinates = &models.LatLon{Lat: float64(*a.Lat), Lon: float64(*lon)}
	}
	return act
}

func extractObject(raw string) (string, bool) {
	start := strings.IndexByte(raw, '{')
	end := strings.LastIndexByte(raw, '}')
	if start < 0 || end <= start {
		return "", false
	}
	return raw[start : end+1], true
}

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}

func firstNonZero(vals ...number) number {
	for _, v := range vals {
		if v != 0 {
			return v
		}
	}
	return 0
}

// DayPoints returns the stops of one day that carry usable coordinates, in
// schedule order, for the map and router.
func DayPoints(it *models.Itinerary, day int) []models.RoutePoint {
	if it == nil {
		return nil
	}
	var points []models.RoutePoint
	for _, d := range it.Days {
		if d.Day != day {
			continue
		}
		for _, a := range d.Activities {
			if a.Coordinates == nil || a.Coordinates.Lat == 0 || a.Coordinates.Lon == 0 {
				continue
			}
			points = append(points, models.RoutePoint{
				Name: a.Name,
				Lat:  a.Coordinates.Lat,
				Lon:  a.Coordinates.Lon,
			})
		}
	}
	return points
}
