package itinerary

import (
	"context"
	"encoding/json"
	"time"

	"github.com/patrickmn/go-cache"
	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"

	"tripai/models"
)

// ErrTripNotFound is returned for unknown or expired trip ids.
var ErrTripNotFound = errors.New("trip not found")

// Store keeps generated trips for a limited time so they can be exported
// after the generation response has been delivered.
type Store interface {
	Save(ctx context.Context, trip models.StoredTrip) error
	Get(ctx context.Context, id string) (*models.StoredTrip, error)
}

const redisKeyPrefix = "trip:"

type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisStore(client *redis.Client, ttl time.Duration) *RedisStore {
	return &RedisStore{client: client, ttl: ttl}
}

func (s *RedisStore) Save(ctx context.Context, trip models.StoredTrip) error {
	data, err := json.Marshal(trip)
	if err != nil {
		return errors.Wrap(err, "encode trip")
	}
	if err := s.client.Set(ctx, redisKeyPrefix+trip.ID, data, s.ttl).Err(); err != nil {
		return errors.Wrap(err, "redis set")
	}
	return nil
}

func (s *RedisStore) Get(ctx context.Context, id string) (*models.StoredTrip, error) {
	data, err := s.client.Get(ctx, redisKeyPrefix+id).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrTripNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "redis get")
	}
	var trip models.StoredTrip
	if err := json.Unmarshal(data, &trip); err != nil {
		return nil, errors.Wrap(err, "decode trip")
	}
	return &trip, nil
}

// MemoryStore is used when no Redis is configured.
type MemoryStore struct {
	cache *cache.Cache
}

func NewMemoryStore(ttl time.Duration) *MemoryStore {
	return &MemoryStore{cache: cache.New(ttl, 2*ttl)}
}

func (s *MemoryStore) Save(_ context.Context, trip models.StoredTrip) error {
	s.cache.Set(trip.ID, trip, cache.DefaultExpiration)
	return nil
}

func (s *MemoryStore) Get(_ context.Context, id string) (*models.StoredTrip, error) {
	v, ok := s.cache.Get(id)
	if !ok {
		return nil, ErrTripNotFound
	}
	trip := v.(models.StoredTrip)
	return &trip, nil
}
