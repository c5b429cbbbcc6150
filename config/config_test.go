package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("MONGO_URI", "")
	t.Setenv("PORT", "")
	t.Setenv("LLM_API_KEY", "")
	t.Setenv("OPENAI_API_KEY", "sk-test")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, DefaultMongoURI, cfg.MongoURI)
	assert.Equal(t, ":8000", cfg.Addr())
	assert.Equal(t, "sk-test", cfg.LLMAPIKey)
	assert.Equal(t, time.Hour, cfg.TripTTL)
	assert.InDelta(t, 0.8, cfg.LLMTemperature, 0.0001)
	assert.Equal(t, []string{"http://localhost:8000", "http://127.0.0.1:8000"}, cfg.NearbyBaseURLs)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("MONGO_URI", "mongodb://db:27017/trips")
	t.Setenv("PORT", ":9000")
	t.Setenv("LLM_API_KEY", "primary")
	t.Setenv("OPENAI_API_KEY", "ignored")
	t.Setenv("TRIP_TTL", "15m")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "mongodb://db:27017/trips", cfg.MongoURI)
	assert.Equal(t, ":9000", cfg.Addr())
	assert.Equal(t, "primary", cfg.LLMAPIKey)
	assert.Equal(t, 15*time.Minute, cfg.TripTTL)
}
