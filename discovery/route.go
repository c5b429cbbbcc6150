package discovery

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/pkg/errors"

	"tripai/models"
)

const (
	earthRadiusKm = 6371.0
	// estimateSpeedKmh is the assumed average speed of a city drive.
	estimateSpeedKmh = 30.0
)

type osrmLeg struct {
	Distance float64 `json:"distance"`
	Duration float64 `json:"duration"`
}

type osrmResponse struct {
	Code   string `json:"code"`
	Routes []struct {
		Distance float64   `json:"distance"`
		Duration float64   `json:"duration"`
		Legs     []osrmLeg `json:"legs"`
	} `json:"routes"`
}

type RouteClient struct {
	client *resty.Client
}

func NewRouteClient(baseURL string, timeout time.Duration) *RouteClient {
	return &RouteClient{client: resty.New().SetBaseURL(baseURL).SetTimeout(timeout)}
}

// Calculate routes through the points in order. Fewer than two points
// produce no route and no error. When OSRM fails the straight-line
// estimate is returned as mock data.
func (c *RouteClient) Calculate(ctx context.Context, points []models.RoutePoint) Result[*models.Route] {
	if len(points) < 2 {
		return Live[*models.Route](nil)
	}
	return Fetch(ctx, func(ctx context.Context) (*models.Route, error) {
		return c.calculate(ctx, points)
	}, EstimateRoute(points))
}

func (c *RouteClient) calculate(ctx context.Context, points []models.RoutePoint) (*models.Route, error) {
	coords := make([]string, len(points))
	for i, p := range points {
		coords[i] = strconv.FormatFloat(p.Lon, 'f', -1, 64) + "," + strconv.FormatFloat(p.Lat, 'f', -1, 64)
	}

	resp, err := c.client.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{"overview": "false", "steps": "true"}).
		Get("/route/v1/driving/" + strings.Join(coords, ";"))
	if err != nil {
		return nil, errors.Wrap(err, "route request")
	}
	if !resp.IsSuccess() {
		return nil, errors.Errorf("route status %d", resp.StatusCode())
	}

	var body osrmResponse
	if err := json.Unmarshal(resp.Body(), &body); err != nil {
		return nil, errors.Wrap(err, "decode route")
	}
	if len(body.Routes) == 0 {
		return nil, errors.New("no route found")
	}

	r := body.Routes[0]
	return buildRoute(points, r.Distance, r.Duration, r.Legs), nil
}

// buildRoute emits one step per point; the step after the last leg has
// no distance.
func buildRoute(points []models.RoutePoint, distance, duration float64, legs []osrmLeg) *models.Route {
	route := &models.Route{
		TotalDistance: formatKm(distance),
		TotalDuration: formatMinutes(duration),
		Steps:         make([]models.RouteStep, len(points)),
	}
	for i, p := range points {
		step := models.RouteStep{Instruction: p.Name, Distance: "N/A", Duration: "N/A"}
		if i < len(legs) {
			step.Distance = formatKm(legs[i].Distance)
			step.Duration = formatMinutes(legs[i].Duration)
		}
		route.Steps[i] = step
	}
	return route
}

// EstimateRoute joins the points with great-circle legs at a fixed speed.
func EstimateRoute(points []models.RoutePoint) *models.Route {
	if len(points) < 2 {
		return nil
	}
	legs := make([]osrmLeg, 0, len(points)-1)
	var distance, duration float64
	for i := 1; i < len(points); i++ {
		metres := haversineKm(points[i-1], points[i]) * 1000
		seconds := metres / (estimateSpeedKmh * 1000 / 3600)
		legs = append(legs, osrmLeg{Distance: metres, Duration: seconds})
		distance += metres
		duration += seconds
	}
	return buildRoute(points, distance, duration, legs)
}

func haversineKm(a, b models.RoutePoint) float64 {
	rad := math.Pi / 180
	dLat := (b.Lat - a.Lat) * rad
	dLon := (b.Lon - a.Lon) * rad
	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(a.Lat*rad)*math.Cos(b.Lat*rad)*math.Sin(dLon/2)*math.Sin(dLon/2)
	return 2 * earthRadiusKm * math.Asin(math.Sqrt(h))
}

func formatKm(metres float64) string {
	return fmt.Sprintf("%.1f km", metres/1000)
}

func formatMinutes(seconds float64) string {
	return fmt.Sprintf("%d min", int(math.Round(seconds/60)))
}
