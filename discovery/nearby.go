package discovery

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"tripai/models"
)

// NewNearbyQuery builds the request body. Radius is given in kilometres;
// the category "all" or "" searches every category.
func NewNearbyQuery(at models.LatLon, radiusKm float64, category string) models.NearbyQuery {
	q := models.NearbyQuery{Lat: at.Lat, Lon: at.Lon, Radius: int(radiusKm * 1000)}
	if category != "" && category != "all" {
		q.Category = &category
	}
	return q
}

// NearbyClient searches places through whichever backend the prober finds.
type NearbyClient struct {
	prober *Prober
	client *resty.Client
	logger *zap.Logger
}

func NewNearbyClient(prober *Prober, timeout time.Duration, logger *zap.Logger) *NearbyClient {
	c := resty.New().
		SetHeader("Content-Type", "application/json").
		SetTimeout(timeout)
	return &NearbyClient{prober: prober, client: c, logger: logger}
}

// Search returns live places, or the sample dataset when the backend is
// unreachable or answers with anything but a success payload.
func (c *NearbyClient) Search(ctx context.Context, q models.NearbyQuery) Result[[]models.Place] {
	res := Fetch(ctx, func(ctx context.Context) ([]models.Place, error) {
		return c.search(ctx, q)
	}, SamplePlaces())
	if res.UsingMockData {
		c.logger.Warn("nearby search fell back to sample data", zap.String("error", res.Error))
	}
	return res
}

func (c *NearbyClient) search(ctx context.Context, q models.NearbyQuery) ([]models.Place, error) {
	base, err := c.prober.Probe(ctx)
	if err != nil {
		return nil, err
	}

	resp, err := c.client.R().SetContext(ctx).SetBody(&q).Post(base + "/api/nearby")
	if err != nil {
		return nil, errors.Wrap(err, "nearby request")
	}
	if !resp.IsSuccess() {
		return nil, errors.Errorf("server returned %d", resp.StatusCode())
	}

	var body models.NearbyResponse
	if err := json.Unmarshal(resp.Body(), &body); err != nil {
		return nil, errors.Wrap(err, "decode nearby response")
	}
	if body.Status != "success" || body.Places == nil {
		if body.Error != "" {
			return nil, errors.New(body.Error)
		}
		return nil, errors.New("invalid response format")
	}
	if body.UsingMockData {
		return nil, errors.New(firstNonEmpty(body.Note, "server served sample data"))
	}
	return body.Places, nil
}

// SearchAround locates the caller first. Without a position it skips the
// network and serves the sample data around DefaultLocation.
func (c *NearbyClient) SearchAround(ctx context.Context, loc Locator, radiusKm float64, category string) (models.LatLon, Result[[]models.Place]) {
	at, err := loc.Locate(ctx)
	if err != nil {
		c.logger.Info("location unavailable, using default", zap.Error(err))
		return DefaultLocation, Result[[]models.Place]{
			Data:          SamplePlaces(),
			UsingMockData: true,
			Error:         "location unavailable: " + err.Error(),
		}
	}
	return at, c.Search(ctx, NewNearbyQuery(at, radiusKm, category))
}

// FilterPlaces keeps places whose name contains search (case-insensitive)
// and whose category matches, "all" matching everything.
func FilterPlaces(places []models.Place, search, category string) []models.Place {
	search = strings.ToLower(strings.TrimSpace(search))
	out := make([]models.Place, 0, len(places))
	for _, p := range places {
		if search != "" && !strings.Contains(strings.ToLower(p.Name), search) {
			continue
		}
		if category != "" && category != "all" && p.Category != category {
			continue
		}
		out = append(out, p)
	}
	return out
}
