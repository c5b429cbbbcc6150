package maps

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"go.uber.org/zap"

	"tripai/discovery"
	"tripai/itinerary"
	"tripai/metrics"
	"tripai/middleware"
	"tripai/models"
	"tripai/utils"
)

// DefaultCenter is where the map opens when no itinerary is loaded.
var DefaultCenter = models.LatLon{Lat: 12.9716, Lon: 77.5946}

// Config is what the map view needs before it can draw anything.
type Config struct {
	TileURL       string            `json:"tileUrl"`
	Attribution   string            `json:"attribution"`
	Center        [2]float64        `json:"center"`
	Zoom          int               `json:"zoom"`
	Markers       map[string]string `json:"markers"`
	DefaultMarker string            `json:"defaultMarker"`
	MarkerIconURL string            `json:"markerIconUrl"`
	AmenityTypes  []string          `json:"amenityTypes"`
}

type Handler struct {
	weather   *discovery.WeatherClient
	routes    *discovery.RouteClient
	amenities *discovery.AmenityClient
	metrics   *metrics.Metrics
	logger    *zap.Logger
}

func NewHandler(weather *discovery.WeatherClient, routes *discovery.RouteClient, amenities *discovery.AmenityClient, m *metrics.Metrics, logger *zap.Logger) *Handler {
	return &Handler{weather: weather, routes: routes, amenities: amenities, metrics: m, logger: logger}
}

// GET /api/map/config
func (h *Handler) GetMapConfig(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	utils.RespondWithJSON(w, http.StatusOK, Config{
		TileURL:       "https://{s}.tile.openstreetmap.org/{z}/{x}/{y}.png",
		Attribution:   `&copy; <a href="https://www.openstreetmap.org/copyright">OpenStreetMap</a> contributors`,
		Center:        [2]float64{DefaultCenter.Lat, DefaultCenter.Lon},
		Zoom:          13,
		Markers:       discovery.MarkerTable(),
		DefaultMarker: discovery.DefaultMarkerColor,
		MarkerIconURL: discovery.MarkerIconURL("{color}"),
		AmenityTypes:  []string{"restaurant", "atm", "hospital", "pharmacy"},
	})
}

// GET /api/map/weather?lat=&lon=
func (h *Handler) GetWeather(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	lat := utils.QueryFloat(r, "lat", DefaultCenter.Lat)
	lon := utils.QueryFloat(r, "lon", DefaultCenter.Lon)

	res := h.weather.Current(r.Context(), lat, lon)
	h.observe(r.Context(), "weather", res.UsingMockData, res.Error)
	utils.RespondWithJSON(w, http.StatusOK, res)
}

type routeInput struct {
	Points    []models.RoutePoint `json:"points"`
	Itinerary *models.Itinerary   `json:"itinerary"`
	Day       int                 `json:"day"`
}

// POST /api/map/route takes either explicit points or an itinerary and a
// day number.
func (h *Handler) CalculateRoute(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var in routeInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	points := in.Points
	if len(points) == 0 && in.Itinerary != nil {
		day := in.Day
		if day == 0 {
			day = 1
		}
		points = itinerary.DayPoints(in.Itinerary, day)
	}

	res := h.routes.Calculate(r.Context(), points)
	h.observe(r.Context(), "osrm", res.UsingMockData, res.Error)
	utils.RespondWithJSON(w, http.StatusOK, res)
}

// GET /api/map/amenities?type=&lat=&lon=
func (h *Handler) GetAmenities(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	kind := r.URL.Query().Get("type")
	lat := utils.QueryFloat(r, "lat", DefaultCenter.Lat)
	lon := utils.QueryFloat(r, "lon", DefaultCenter.Lon)

	res := h.amenities.Find(r.Context(), kind, lat, lon)
	h.observe(r.Context(), "amenities", res.UsingMockData, res.Error)
	if res.Data == nil {
		res.Data = []models.Amenity{}
	}
	utils.RespondWithJSON(w, http.StatusOK, res)
}

func (h *Handler) observe(ctx context.Context, source string, mock bool, errMsg string) {
	if !mock {
		return
	}
	h.metrics.Fallback(source)
	h.logger.Warn("serving sample data",
		middleware.RequestIDField(ctx),
		zap.String("source", source),
		zap.String("error", errMsg),
	)
}
