package routes

import (
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/julienschmidt/httprouter"

	"tripai/auth"
	"tripai/gateway"
	"tripai/itinerary"
	"tripai/maps"
	"tripai/metrics"
	"tripai/places"
	"tripai/ratelim"
	"tripai/utils"
)

func AddAuthRoutes(router *httprouter.Router, h *auth.Handler, rateLimiter *ratelim.RateLimiter) {
	router.POST("/api/users/login", rateLimiter.Limit(h.Login))
}

func AddGatewayRoutes(router *httprouter.Router, h *gateway.Handler, rateLimiter *ratelim.RateLimiter) {
	router.POST("/api/ai/generate-trip", rateLimiter.Limit(h.GenerateTrip))
}

func AddItineraryRoutes(router *httprouter.Router, h *itinerary.Handler) {
	router.GET("/api/trips/:id", h.GetTrip)
	router.GET("/api/trips/:id/pdf", h.ExportTrip)
	router.POST("/api/trips/export", h.ExportPDF)
}

func AddPlaceRoutes(router *httprouter.Router, h *places.Handler) {
	router.GET("/api/health", h.Health)
	router.GET("/api/nearby", h.Nearby)
	router.POST("/api/nearby", h.Nearby)
	router.GET("/api/nearby/test", h.NearbyTest)
}

func AddMapRoutes(router *httprouter.Router, h *maps.Handler) {
	router.GET("/api/map/config", h.GetMapConfig)
	router.GET("/api/map/weather", h.GetWeather)
	router.POST("/api/map/route", h.CalculateRoute)
	router.GET("/api/map/amenities", h.GetAmenities)
}

func AddUtilityRoutes(router *httprouter.Router, m *metrics.Metrics) {
	router.GET("/api/test", func(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
		utils.RespondWithMessage(w, http.StatusOK, "Server is working!")
	})
	router.GET("/ping", func(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_, _ = w.Write([]byte("pong"))
	})
	router.Handler(http.MethodGet, "/metrics", m.Handler())
}

// AddStaticRoutes serves the built single-page app from dir. Any GET that
// matches neither a route nor a file gets index.html so client-side routing
// works on reload.
func AddStaticRoutes(router *httprouter.Router, dir string) {
	router.NotFound = spaHandler(dir)
}

func spaHandler(dir string) http.Handler {
	index := filepath.Join(dir, "index.html")
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet && r.Method != http.MethodHead {
			http.NotFound(w, r)
			return
		}

		name := filepath.Join(dir, filepath.FromSlash(filepath.Clean("/"+r.URL.Path)))
		if !strings.HasSuffix(r.URL.Path, "/") {
			if info, err := os.Stat(name); err == nil && !info.IsDir() {
				http.ServeFile(w, r, name)
				return
			}
		}
		if _, err := os.Stat(index); err != nil {
			http.NotFound(w, r)
			return
		}
		http.ServeFile(w, r, index)
	})
}
