package routes

import (
	"github.com/julienschmidt/httprouter"

	"tripai/auth"
	"tripai/gateway"
	"tripai/itinerary"
	"tripai/maps"
	"tripai/metrics"
	"tripai/places"
	"tripai/ratelim"
)

// Handlers bundles everything the router dispatches to.
type Handlers struct {
	Auth      *auth.Handler
	Gateway   *gateway.Handler
	Itinerary *itinerary.Handler
	Places    *places.Handler
	Maps      *maps.Handler
	Metrics   *metrics.Metrics
	StaticDir string
}

func RoutesWrapper(router *httprouter.Router, h Handlers, rateLimiter *ratelim.RateLimiter) {
	AddAuthRoutes(router, h.Auth, rateLimiter)
	AddGatewayRoutes(router, h.Gateway, rateLimiter)
	AddItineraryRoutes(router, h.Itinerary)
	AddPlaceRoutes(router, h.Places)
	AddMapRoutes(router, h.Maps)
	AddUtilityRoutes(router, h.Metrics)
	AddStaticRoutes(router, h.StaticDir)
}
