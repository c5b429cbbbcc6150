package wizard

import (
	"context"
	"encoding/json"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/pkg/errors"

	"tripai/models"
)

// HTTPGateway calls POST /api/ai/generate-trip on a TripAI backend.
type HTTPGateway struct {
	client *resty.Client
}

func NewHTTPGateway(baseURL string) *HTTPGateway {
	c := resty.New().
		SetBaseURL(baseURL).
		SetHeader("Content-Type", "application/json").
		SetTimeout(2 * time.Minute)
	return &HTTPGateway{client: c}
}

func (g *HTTPGateway) GenerateTrip(ctx context.Context, req models.TripRequest) (*GatewayResponse, error) {
	resp, err := g.client.R().
		SetContext(ctx).
		SetBody(&req).
		Post("/api/ai/generate-trip")
	if err != nil {
		return nil, errors.Wrap(err, "generate trip request")
	}

	var out GatewayResponse
	if err := json.Unmarshal(resp.Body(), &out); err != nil {
		if resp.IsError() {
			return nil, errors.Errorf("generate trip: status %d", resp.StatusCode())
		}
		return nil, errors.Wrap(err, "decode generate trip response")
	}
	if resp.IsError() || !out.Success {
		msg := out.Message
		if msg == "" {
			msg = "Failed to generate trip plan"
		}
		return nil, errors.New(msg)
	}
	return &out, nil
}
