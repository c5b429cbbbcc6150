package discovery

import (
	"context"
	"encoding/json"
	"math"
	"strconv"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/pkg/errors"

	"tripai/models"
)

// FallbackWeather is shown when Open-Meteo cannot be reached.
var FallbackWeather = models.Weather{Temperature: 28, Description: "Sunny", Humidity: 65, Icon: "☀️"}

var weatherIcons = map[int]string{
	0:  "☀️",
	1:  "🌤️",
	2:  "⛅",
	3:  "☁️",
	45: "🌫️",
	61: "🌦️",
	80: "🌧️",
}

// WeatherIcon maps a WMO weather code to an icon.
func WeatherIcon(code int) string {
	if icon, ok := weatherIcons[code]; ok {
		return icon
	}
	return "🌤️"
}

type forecastResponse struct {
	Current *struct {
		Temperature float64 `json:"temperature_2m"`
		Humidity    float64 `json:"relative_humidity_2m"`
		WeatherCode int     `json:"weather_code"`
	} `json:"current"`
}

type WeatherClient struct {
	client *resty.Client
}

func NewWeatherClient(baseURL string, timeout time.Duration) *WeatherClient {
	return &WeatherClient{client: resty.New().SetBaseURL(baseURL).SetTimeout(timeout)}
}

// Current returns present conditions at a point.
func (c *WeatherClient) Current(ctx context.Context, lat, lon float64) Result[models.Weather] {
	return Fetch(ctx, func(ctx context.Context) (models.Weather, error) {
		return c.current(ctx, lat, lon)
	}, FallbackWeather)
}

func (c *WeatherClient) current(ctx context.Context, lat, lon float64) (models.Weather, error) {
	resp, err := c.client.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"latitude":  strconv.FormatFloat(lat, 'f', -1, 64),
			"longitude": strconv.FormatFloat(lon, 'f', -1, 64),
			"current":   "temperature_2m,relative_humidity_2m,weather_code",
			"timezone":  "auto",
		}).
		Get("/v1/forecast")
	if err != nil {
		return models.Weather{}, errors.Wrap(err, "weather request")
	}
	if !resp.IsSuccess() {
		return models.Weather{}, errors.Errorf("weather status %d", resp.StatusCode())
	}

	var body forecastResponse
	if err := json.Unmarshal(resp.Body(), &body); err != nil {
		return models.Weather{}, errors.Wrap(err, "decode weather")
	}
	if body.Current == nil {
		return models.Weather{}, errors.New("weather response has no current conditions")
	}
	return models.Weather{
		Temperature: int(math.Round(body.Current.Temperature)),
		Description: "Current conditions",
		Humidity:    int(math.Round(body.Current.Humidity)),
		Icon:        WeatherIcon(body.Current.WeatherCode),
	}, nil
}
