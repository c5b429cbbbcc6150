package maps

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"tripai/discovery"
	"tripai/metrics"
	"tripai/models"
)

type envelope[T any] struct {
	Data          T      `json:"data"`
	UsingMockData bool   `json:"usingMockData"`
	Error         string `json:"error"`
}

func newHandler(t *testing.T, upstream http.HandlerFunc) (*Handler, *metrics.Metrics) {
	t.Helper()
	srv := httptest.NewServer(upstream)
	t.Cleanup(srv.Close)

	m := metrics.New()
	h := NewHandler(
		discovery.NewWeatherClient(srv.URL, time.Second),
		discovery.NewRouteClient(srv.URL, time.Second),
		discovery.NewAmenityClient(discovery.NewOverpassClient(srv.URL, time.Second)),
		m, zap.NewNop(),
	)
	return h, m
}

func failing(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusServiceUnavailable)
}

func TestGetMapConfig(t *testing.T) {
	h, _ := newHandler(t, failing)
	rec := httptest.NewRecorder()
	h.GetMapConfig(rec, httptest.NewRequest(http.MethodGet, "/api/map/config", nil), nil)

	var cfg Config
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &cfg))
	assert.Equal(t, [2]float64{12.9716, 77.5946}, cfg.Center)
	assert.Equal(t, "orange", cfg.Markers["Restaurant"])
	assert.Equal(t, "blue", cfg.DefaultMarker)
	assert.Contains(t, cfg.TileURL, "tile.openstreetmap.org")
}

func TestGetWeatherFallback(t *testing.T) {
	h, m := newHandler(t, failing)
	rec := httptest.NewRecorder()
	h.GetWeather(rec, httptest.NewRequest(http.MethodGet, "/api/map/weather?lat=1&lon=2", nil), nil)

	var got envelope[models.Weather]
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.True(t, got.UsingMockData)
	assert.Equal(t, discovery.FallbackWeather, got.Data)
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Fallbacks.WithLabelValues("weather")))
}

func TestCalculateRoute(t *testing.T) {
	t.Run("from itinerary day", func(t *testing.T) {
		h, _ := newHandler(t, func(w http.ResponseWriter, r *http.Request) {
			assert.True(t, strings.HasPrefix(r.URL.Path, "/route/v1/driving/"))
			_, _ = w.Write([]byte(`{"code":"Ok","routes":[{"distance":2000,"duration":600,"legs":[{"distance":2000,"duration":600}]}]}`))
		})
		body := `{"day":2,"itinerary":{"days":[
			{"day":1,"activities":[{"activity":"A","coordinates":{"lat":1,"lon":1}}]},
			{"day":2,"activities":[{"activity":"B","coordinates":{"lat":12.9,"lon":77.5}},{"activity":"C","coordinates":{"lat":12.95,"lon":77.6}}]}]}}`

		rec := httptest.NewRecorder()
		h.CalculateRoute(rec, httptest.NewRequest(http.MethodPost, "/api/map/route", strings.NewReader(body)), nil)

		var got envelope[*models.Route]
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
		assert.False(t, got.UsingMockData)
		require.NotNil(t, got.Data)
		assert.Equal(t, "2.0 km", got.Data.TotalDistance)
		assert.Equal(t, "10 min", got.Data.TotalDuration)
		require.Len(t, got.Data.Steps, 2)
		assert.Equal(t, "B", got.Data.Steps[0].Instruction)
	})

	t.Run("single point has no route", func(t *testing.T) {
		h, _ := newHandler(t, failing)
		rec := httptest.NewRecorder()
		body := `{"points":[{"name":"Only","lat":1,"lon":2}]}`
		h.CalculateRoute(rec, httptest.NewRequest(http.MethodPost, "/api/map/route", strings.NewReader(body)), nil)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"data":null,"usingMockData":false}`, rec.Body.String())
	})

	t.Run("bad body", func(t *testing.T) {
		h, _ := newHandler(t, failing)
		rec := httptest.NewRecorder()
		h.CalculateRoute(rec, httptest.NewRequest(http.MethodPost, "/api/map/route", strings.NewReader("[")), nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestGetAmenities(t *testing.T) {
	h, m := newHandler(t, failing)

	rec := httptest.NewRecorder()
	h.GetAmenities(rec, httptest.NewRequest(http.MethodGet, "/api/map/amenities?type=restaurant", nil), nil)
	var got envelope[[]models.Amenity]
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.True(t, got.UsingMockData)
	assert.Len(t, got.Data, 2)
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Fallbacks.WithLabelValues("amenities")))

	rec = httptest.NewRecorder()
	h.GetAmenities(rec, httptest.NewRequest(http.MethodGet, "/api/map/amenities?type=zoo", nil), nil)
	assert.JSONEq(t, `{"data":[],"usingMockData":false}`, rec.Body.String())
}
