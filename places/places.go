package places

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/julienschmidt/httprouter"
	"go.uber.org/zap"

	"tripai/discovery"
	"tripai/metrics"
	"tripai/middleware"
	"tripai/models"
	"tripai/utils"
)

const (
	defaultRadius = 5000
	cacheTTL      = 5 * time.Minute
)

type Handler struct {
	overpass *discovery.OverpassClient
	cache    Cache
	metrics  *metrics.Metrics
	logger   *zap.Logger
}

// NewHandler builds the nearby places API. cache may be nil.
func NewHandler(overpass *discovery.OverpassClient, cache Cache, m *metrics.Metrics, logger *zap.Logger) *Handler {
	return &Handler{overpass: overpass, cache: cache, metrics: m, logger: logger}
}

// GET /api/health
func (h *Handler) Health(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	utils.RespondWithJSON(w, http.StatusOK, utils.M{
		"status":  "healthy",
		"service": "Nearby Places API",
		"message": "Server is running correctly!",
	})
}

// GET /api/nearby/test
func (h *Handler) NearbyTest(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	utils.RespondWithJSON(w, http.StatusOK, SampleResponse())
}

type nearbyInput struct {
	Lat      *float64 `json:"lat"`
	Lon      *float64 `json:"lon"`
	Radius   *float64 `json:"radius"`
	Category *string  `json:"category"`
}

// GET /api/nearby searches around the default location; POST /api/nearby
// takes {lat, lon, radius, category}.
func (h *Handler) Nearby(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	q := models.NearbyQuery{
		Lat:    discovery.DefaultLocation.Lat,
		Lon:    discovery.DefaultLocation.Lon,
		Radius: defaultRadius,
	}

	if r.Method == http.MethodPost {
		body, err := io.ReadAll(io.LimitReader(r.Body, 1<<16))
		if err != nil {
			utils.RespondWithError(w, http.StatusBadRequest, "No data provided")
			return
		}
		var probe map[string]json.RawMessage
		if json.Unmarshal(body, &probe) != nil || len(probe) == 0 {
			utils.RespondWithError(w, http.StatusBadRequest, "No data provided")
			return
		}
		var in nearbyInput
		if err := json.Unmarshal(body, &in); err != nil {
			utils.RespondWithError(w, http.StatusBadRequest, "Invalid request payload")
			return
		}
		if in.Lat != nil {
			q.Lat = *in.Lat
		}
		if in.Lon != nil {
			q.Lon = *in.Lon
		}
		if in.Radius != nil && *in.Radius > 0 {
			q.Radius = int(*in.Radius)
		}
		q.Category = in.Category
	}

	utils.RespondWithJSON(w, http.StatusOK, h.search(r.Context(), q))
}

func (h *Handler) search(ctx context.Context, q models.NearbyQuery) models.NearbyResponse {
	category := ""
	if q.Category != nil {
		category = *q.Category
	}
	key := fmt.Sprintf("nearby:%s:%.4f:%.4f:%d", category, q.Lat, q.Lon, q.Radius)
	if h.cache != nil {
		if data, ok := h.cache.Get(ctx, key); ok {
			var cached models.NearbyResponse
			if json.Unmarshal(data, &cached) == nil {
				return cached
			}
		}
	}

	h.logger.Info("searching nearby places",
		zap.Float64("lat", q.Lat),
		zap.Float64("lon", q.Lon),
		zap.Int("radius", q.Radius),
		zap.String("category", category),
	)
	elements, err := h.overpass.Query(ctx, BuildQuery(category, q.Radius, q.Lat, q.Lon))
	if err != nil {
		h.logger.Warn("overpass failed, serving sample data", middleware.RequestIDField(ctx), zap.Error(err))
		h.metrics.Fallback("overpass")
		return SampleResponse()
	}

	places := make([]models.Place, 0, len(elements))
	for _, e := range elements {
		if p, ok := ParseElement(e); ok {
			places = append(places, p)
		}
	}
	resp := models.NearbyResponse{
		Status:       "success",
		Count:        len(places),
		Places:       places,
		UserLocation: models.LatLon{Lat: q.Lat, Lon: q.Lon},
		Source:       "overpass_api",
	}

	if h.cache != nil {
		if data, err := json.Marshal(resp); err == nil {
			h.cache.Set(ctx, key, data, cacheTTL)
		}
	}
	return resp
}
