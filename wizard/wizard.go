package wizard

import (
	"context"

	"github.com/pkg/errors"

	"tripai/itinerary"
	"tripai/models"
)

type State int

const (
	CollectingBasics State = iota
	CollectingPreferences
	Submitting
	Results
)

func (s State) String() string {
	switch s {
	case CollectingBasics:
		return "CollectingBasics"
	case CollectingPreferences:
		return "CollectingPreferences"
	case Submitting:
		return "Submitting"
	case Results:
		return "Results"
	}
	return "Unknown"
}

// ErrNotAllowed is returned when a transition's guard does not hold.
var ErrNotAllowed = errors.New("transition not allowed")

// GatewayResponse is the generation endpoint's success envelope.
type GatewayResponse struct {
	Success   bool              `json:"success"`
	Plan      string            `json:"plan"`
	Itinerary *models.Itinerary `json:"itinerary,omitempty"`
	TripID    string            `json:"tripId,omitempty"`
	Message   string            `json:"message,omitempty"`
}

// Gateway submits a trip request for generation.
type Gateway interface {
	GenerateTrip(ctx context.Context, req models.TripRequest) (*GatewayResponse, error)
}

// Wizard owns one planning session. It is not safe for concurrent use.
type Wizard struct {
	state     State
	form      Form
	itinerary *models.Itinerary
	plan      string
	tripID    string
	errMsg    string
}

func New() *Wizard {
	return &Wizard{state: CollectingBasics, form: NewForm()}
}

func (w *Wizard) State() State { return w.state }

// Form returns the session's form for editing in place.
func (w *Wizard) Form() *Form { return &w.form }

func (w *Wizard) Itinerary() *models.Itinerary { return w.itinerary }

func (w *Wizard) Plan() string { return w.plan }

func (w *Wizard) TripID() string { return w.tripID }

// Err is the message of the last failed submission, shown as an alert.
func (w *Wizard) Err() string { return w.errMsg }

// DismissError clears the alert.
func (w *Wizard) DismissError() { w.errMsg = "" }

// Next advances from the basics step.
func (w *Wizard) Next() error {
	if w.state != CollectingBasics || !w.form.CanContinue() {
		return ErrNotAllowed
	}
	w.state = CollectingPreferences
	return nil
}

// Back returns to the basics step keeping every entered value.
func (w *Wizard) Back() error {
	if w.state != CollectingPreferences {
		return ErrNotAllowed
	}
	w.state = CollectingBasics
	return nil
}

// Submit sends the form to the gateway. On failure the error is kept for
// display and the wizard returns to CollectingPreferences with the form
// untouched.
func (w *Wizard) Submit(ctx context.Context, gw Gateway) error {
	if w.state != CollectingPreferences || !w.form.CanContinue() || !w.form.CanGenerate() {
		return ErrNotAllowed
	}
	w.errMsg = ""

	req, err := w.form.Request()
	if err != nil {
		return w.fail(err)
	}

	w.state = Submitting
	resp, err := gw.GenerateTrip(ctx, req)
	if err != nil {
		return w.fail(err)
	}

	it := resp.Itinerary
	if it == nil {
		it, err = itinerary.Parse(resp.Plan)
		if err != nil {
			return w.fail(err)
		}
	}

	w.itinerary = it
	w.plan = resp.Plan
	w.tripID = resp.TripID
	w.state = Results
	return nil
}

func (w *Wizard) fail(err error) error {
	w.errMsg = err.Error()
	w.state = CollectingPreferences
	return err
}

// Restart begins a new plan from scratch.
func (w *Wizard) Restart() {
	*w = *New()
}
