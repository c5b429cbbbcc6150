package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/julienschmidt/httprouter"
	"github.com/redis/go-redis/v9"
	"github.com/rs/cors"
	"go.uber.org/zap"

	"tripai/auth"
	"tripai/config"
	"tripai/db"
	"tripai/discovery"
	"tripai/gateway"
	"tripai/itinerary"
	"tripai/llm"
	"tripai/logging"
	"tripai/maps"
	"tripai/metrics"
	"tripai/middleware"
	"tripai/places"
	"tripai/ratelim"
	"tripai/rdx"
	"tripai/routes"
)

const (
	outboundTimeout = 15 * time.Second
	cacheCleanup    = 10 * time.Minute
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger, err := logging.New(cfg.Environment, cfg.LogLevel)
	if err != nil {
		log.Fatalf("init logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	m := metrics.New()
	ctx := context.Background()

	mongoClient, err := db.Connect(ctx, cfg.MongoURI)
	if err != nil {
		logger.Fatal("MongoDB connection failed", zap.Error(err))
	}
	logger.Info("Connected to MongoDB")

	// Redis is optional; without it trips and Overpass answers live in memory.
	var redisClient *redis.Client
	var trips itinerary.Store
	var placeCache places.Cache
	if cfg.RedisURL != "" {
		redisClient, err = rdx.Connect(ctx, cfg.RedisURL, cfg.RedisPassword)
		if err != nil {
			logger.Fatal("Redis connection failed", zap.Error(err))
		}
		trips = itinerary.NewRedisStore(redisClient, cfg.TripTTL)
		placeCache = rdx.NewCache(redisClient, "tripai:")
		logger.Info("Connected to Redis")
	} else {
		trips = itinerary.NewMemoryStore(cfg.TripTTL)
		placeCache = places.NewMemoryCache(cacheCleanup)
	}

	completer, err := llm.NewGenAIClient(ctx, cfg.LLMAPIKey, cfg.LLMModel, logger)
	if err != nil {
		logger.Fatal("LLM client init failed", zap.Error(err))
	}
	logger.Info("LLM client ready", zap.String("model", completer.Model()))

	overpass := discovery.NewOverpassClient(cfg.OverpassURL, outboundTimeout)

	handlers := routes.Handlers{
		Auth:      auth.NewHandler(auth.NewService(db.NewMongoUserStore(db.UserCollection), logger), m, logger),
		Gateway:   gateway.NewHandler(gateway.NewService(completer, trips, cfg.LLMTemperature, m, logger), logger),
		Itinerary: itinerary.NewHandler(trips, logger),
		Places:    places.NewHandler(overpass, placeCache, m, logger),
		Maps: maps.NewHandler(
			discovery.NewWeatherClient(cfg.OpenMeteoURL, outboundTimeout),
			discovery.NewRouteClient(cfg.OSRMURL, outboundTimeout),
			discovery.NewAmenityClient(overpass),
			m, logger,
		),
		Metrics:   m,
		StaticDir: cfg.StaticDir,
	}

	// login and trip generation share one budget per client address
	rateLimiter := ratelim.NewRateLimiter(20, 5, logger)

	router := httprouter.New()
	routes.RoutesWrapper(router, handlers, rateLimiter)

	// logging → security headers → CORS → router
	corsHandler := cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Content-Type", "Authorization"},
	}).Handler(router)

	handler := middleware.Logging(logger, m)(middleware.SecurityHeaders(corsHandler))

	server := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           handler,
		ReadTimeout:       7 * time.Second,
		WriteTimeout:      90 * time.Second, // generation waits on the LLM
		IdleTimeout:       120 * time.Second,
		ReadHeaderTimeout: 2 * time.Second,
	}

	go func() {
		logger.Info("Server listening", zap.String("addr", server.Addr), zap.String("env", cfg.Environment))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("ListenAndServe error", zap.Error(err))
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	<-sigCh

	logger.Info("Shutdown signal received; shutting down gracefully")
	sctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(sctx); err != nil {
		logger.Error("Graceful shutdown failed", zap.Error(err))
	}

	if err := mongoClient.Disconnect(sctx); err != nil {
		logger.Warn("MongoDB disconnect", zap.Error(err))
	}
	if redisClient != nil {
		if err := redisClient.Close(); err != nil {
			logger.Warn("Redis close", zap.Error(err))
		}
	}
	logger.Info("Server stopped cleanly")
}
