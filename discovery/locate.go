package discovery

import (
	"context"
	"sync"
	"time"

	"github.com/pkg/errors"

	"tripai/models"
)

// Locator resolves the caller's position.
type Locator interface {
	Locate(ctx context.Context) (models.LatLon, error)
}

// LocatorFunc adapts a function to Locator.
type LocatorFunc func(ctx context.Context) (models.LatLon, error)

func (f LocatorFunc) Locate(ctx context.Context) (models.LatLon, error) { return f(ctx) }

// StaticLocator always answers with the same position.
type StaticLocator models.LatLon

func (s StaticLocator) Locate(context.Context) (models.LatLon, error) {
	return models.LatLon(s), nil
}

const (
	locateTimeout = 10 * time.Second
	locateMaxAge  = 60 * time.Second
)

// CachedLocator bounds every lookup by Timeout and reuses a position that is
// at most MaxAge old.
type CachedLocator struct {
	Timeout time.Duration
	MaxAge  time.Duration

	source Locator
	now    func() time.Time

	mu   sync.Mutex
	last *models.LatLon
	at   time.Time
}

func NewCachedLocator(source Locator) *CachedLocator {
	return &CachedLocator{
		Timeout: locateTimeout,
		MaxAge:  locateMaxAge,
		source:  source,
		now:     time.Now,
	}
}

func (c *CachedLocator) Locate(ctx context.Context) (models.LatLon, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.last != nil && c.now().Sub(c.at) <= c.MaxAge {
		return *c.last, nil
	}

	ctx, cancel := context.WithTimeout(ctx, c.Timeout)
	defer cancel()
	pos, err := c.source.Locate(ctx)
	if err != nil {
		return models.LatLon{}, errors.Wrap(err, "locate")
	}
	c.last = &pos
	c.at = c.now()
	return pos, nil
}
