package config

import (
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/pkg/errors"
)

// DefaultMongoURI is used when MONGO_URI is not set.
const DefaultMongoURI = "mongodb://127.0.0.1:27017/tripplanner"

// Config is read once at startup.
type Config struct {
	Port        string `envconfig:"PORT" default:"8000"`
	Environment string `envconfig:"ENVIRONMENT" default:"development"`
	LogLevel    string `envconfig:"LOG_LEVEL" default:"info"`
	StaticDir   string `envconfig:"STATIC_DIR" default:"client/dist"`

	MongoURI string `envconfig:"MONGO_URI" default:"mongodb://127.0.0.1:27017/tripplanner"`

	RedisURL      string        `envconfig:"REDIS_URL"`
	RedisPassword string        `envconfig:"REDIS_PASSWORD"`
	TripTTL       time.Duration `envconfig:"TRIP_TTL" default:"1h"`

	LLMAPIKey      string  `envconfig:"LLM_API_KEY"`
	LLMModel       string  `envconfig:"LLM_MODEL" default:"gemini-2.0-flash"`
	LLMTemperature float32 `envconfig:"LLM_TEMPERATURE" default:"0.8"`

	OverpassURL    string   `envconfig:"OVERPASS_URL" default:"https://overpass-api.de/api/interpreter"`
	OSRMURL        string   `envconfig:"OSRM_URL" default:"https://router.project-osrm.org"`
	OpenMeteoURL   string   `envconfig:"OPEN_METEO_URL" default:"https://api.open-meteo.com"`
	NearbyBaseURLs []string `envconfig:"NEARBY_BASE_URLS" default:"http://localhost:8000,http://127.0.0.1:8000"`
}

// Load reads .env when present and then the process environment.
func Load() (*Config, error) {
	// a missing .env is normal outside local development
	_ = godotenv.Load()

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, errors.Wrap(err, "config")
	}
	if cfg.LLMAPIKey == "" {
		cfg.LLMAPIKey = os.Getenv("OPENAI_API_KEY")
	}
	if strings.TrimSpace(cfg.MongoURI) == "" {
		cfg.MongoURI = DefaultMongoURI
	}
	if cfg.Port == "" {
		cfg.Port = "8000"
	}
	return &cfg, nil
}

// Addr returns the listen address for Port.
func (c *Config) Addr() string {
	if strings.HasPrefix(c.Port, ":") {
		return c.Port
	}
	return ":" + c.Port
}
