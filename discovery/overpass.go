package discovery

import (
	"context"
	"encoding/json"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/pkg/errors"

	"tripai/models"
)

// Element is one OpenStreetMap node or way from an Overpass answer. Ways
// carry their position in Center when queried with "out center".
type Element struct {
	Type   string            `json:"type"`
	ID     int64             `json:"id"`
	Lat    *float64          `json:"lat"`
	Lon    *float64          `json:"lon"`
	Center *models.LatLon    `json:"center"`
	Tags   map[string]string `json:"tags"`
}

// Position returns the element's coordinates, if it has any.
func (e Element) Position() (models.LatLon, bool) {
	if e.Lat != nil && e.Lon != nil {
		return models.LatLon{Lat: *e.Lat, Lon: *e.Lon}, true
	}
	if e.Center != nil {
		return *e.Center, true
	}
	return models.LatLon{}, false
}

type overpassResponse struct {
	Elements []Element `json:"elements"`
}

// OverpassClient runs Overpass QL queries.
type OverpassClient struct {
	client *resty.Client
	url    string
}

func NewOverpassClient(url string, timeout time.Duration) *OverpassClient {
	return &OverpassClient{client: resty.New().SetTimeout(timeout), url: url}
}

func (c *OverpassClient) Query(ctx context.Context, query string) ([]Element, error) {
	resp, err := c.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "text/plain").
		SetBody(query).
		Post(c.url)
	if err != nil {
		return nil, errors.Wrap(err, "overpass request")
	}
	if !resp.IsSuccess() {
		return nil, errors.Errorf("overpass status %d", resp.StatusCode())
	}

	var out overpassResponse
	if err := json.Unmarshal(resp.Body(), &out); err != nil {
		return nil, errors.Wrap(err, "decode overpass response")
	}
	return out.Elements, nil
}
