package gateway

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"tripai/itinerary"
	"tripai/llm"
	"tripai/metrics"
	"tripai/models"
)

var (
	// ErrMissingFields means a required trip parameter was absent.
	ErrMissingFields = errors.New("missing required fields")
	// ErrInvalidFields means a parameter was present but unusable.
	ErrInvalidFields = errors.New("invalid fields")
	// ErrUpstream wraps every completion API failure.
	ErrUpstream = errors.New("AI trip generation failed")
)

const dateLayout = "2006-01-02"

// Validate checks the request before any network call is made.
func Validate(req models.TripRequest) error {
	if strings.TrimSpace(req.Destination) == "" || req.StartDate == "" || req.EndDate == "" ||
		req.Budget == nil || req.Travelers == nil {
		return ErrMissingFields
	}

	if *req.Budget < 0 {
		return errors.Wrap(ErrInvalidFields, "budget must not be negative")
	}
	if *req.Travelers < 1 {
		return errors.Wrap(ErrInvalidFields, "travelers must be at least 1")
	}
	start, err := time.Parse(dateLayout, req.StartDate)
	if err != nil {
		return errors.Wrap(ErrInvalidFields, "startDate must be YYYY-MM-DD")
	}
	end, err := time.Parse(dateLayout, req.EndDate)
	if err != nil {
		return errors.Wrap(ErrInvalidFields, "endDate must be YYYY-MM-DD")
	}
	if end.Before(start) {
		return errors.Wrap(ErrInvalidFields, "endDate is before startDate")
	}

	switch req.Accommodation {
	case "", models.AccommodationBudget, models.AccommodationMidRange, models.AccommodationLuxury:
	default:
		return errors.Wrapf(ErrInvalidFields, "unknown accommodation %q", req.Accommodation)
	}
	switch req.TravelStyle {
	case "", models.StyleRelaxed, models.StyleBalanced, models.StylePacked:
	default:
		return errors.Wrapf(ErrInvalidFields, "unknown travel style %q", req.TravelStyle)
	}
	return nil
}

const targetShape = `{
  "destination": "...",
  "totalDays": 0,
  "perDayBudget": 0,
  "summary": "...",
  "days": [
    {
      "day": 1,
      "date": "YYYY-MM-DD",
      "activities": [
        {
          "activity": "...",
          "description": "...",
          "category": "Museum",
          "time": "9:00 AM",
          "time_slot": {"start_time": "09:00", "end_time": "11:00"},
          "address": "...",
          "lat": 0.0,
          "lon": 0.0,
          "cost": 0
        }
      ],
      "dailyCost": 0
    }
  ],
  "estimatedTotalCost": 0
}`

// BuildPrompt embeds every request field and the JSON shape the planner
// expects back. Call Validate first.
func BuildPrompt(req models.TripRequest) string {
	interests := "general travel"
	if len(req.Interests) > 0 {
		labels := make([]string, 0, len(req.Interests))
		for _, id := range req.Interests {
			labels = append(labels, models.InterestLabel(id))
		}
		interests = strings.Join(labels, ", ")
	}
	accommodation := req.Accommodation
	if accommodation == "" {
		accommodation = models.AccommodationMidRange
	}
	style := req.TravelStyle
	if style == "" {
		style = models.StyleBalanced
	}

	var b strings.Builder
	b.WriteString("You are an expert AI travel planner.\n")
	fmt.Fprintf(&b, "Plan a detailed trip for %d travelers to %s\n", *req.Travelers, req.Destination)
	fmt.Fprintf(&b, "from %s to %s with a total budget of $%.2f.\n", req.StartDate, req.EndDate, *req.Budget)
	fmt.Fprintf(&b, "Focus on interests: %s.\n", interests)
	fmt.Fprintf(&b, "Preferred accommodation: %s. Travel style: %s.\n\n", accommodation, style)
	b.WriteString("For each day:\n")
	b.WriteString("- Suggest 3-5 main activities or places to visit with approximate timings\n")
	b.WriteString("- Include meal recommendations (breakfast, lunch, dinner)\n")
	b.WriteString("- Mention the estimated cost per day\n")
	b.WriteString("- Give each place a category and its latitude and longitude\n")
	fmt.Fprintf(&b, "- Keep the total cost under $%.2f\n\n", *req.Budget)
	b.WriteString("Return only JSON in exactly this structure:\n")
	b.WriteString(targetShape)
	b.WriteString("\n")
	return b.String()
}

// Result is what a successful generation hands back to the caller.
type Result struct {
	Plan      string
	Itinerary *models.Itinerary
	TripID    string
}

type Service struct {
	completer   llm.Completer
	store       itinerary.Store
	temperature float32
	metrics     *metrics.Metrics
	logger      *zap.Logger
}

func NewService(completer llm.Completer, store itinerary.Store, temperature float32, m *metrics.Metrics, logger *zap.Logger) *Service {
	return &Service{
		completer:   completer,
		store:       store,
		temperature: temperature,
		metrics:     m,
		logger:      logger,
	}
}

// Generate validates the request, sends one prompt and returns the completion
// verbatim. The structured itinerary is best effort: a completion that does
// not parse is still a success.
func (s *Service) Generate(ctx context.Context, req models.TripRequest) (*Result, error) {
	if err := Validate(req); err != nil {
		return nil, err
	}

	text, err := s.completer.Complete(ctx, BuildPrompt(req), s.temperature)
	if err != nil {
		s.metrics.LLMCall("error")
		return nil, errors.Wrapf(ErrUpstream, "completion: %v", err)
	}
	s.metrics.LLMCall("ok")

	res := &Result{Plan: text}
	it, err := itinerary.Parse(text)
	if err != nil {
		s.logger.Warn("completion is not a structured itinerary",
			zap.String("destination", req.Destination),
			zap.Error(err),
		)
		return res, nil
	}
	res.Itinerary = it

	if s.store == nil {
		return res, nil
	}
	id := uuid.NewString()
	if err := s.store.Save(ctx, models.StoredTrip{ID: id, Request: req, Itinerary: *it}); err != nil {
		s.logger.Warn("could not keep trip for export", zap.Error(err))
		return res, nil
	}
	res.TripID = id
	return res, nil
}
