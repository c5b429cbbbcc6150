package discovery

import (
	"context"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// ErrNoBackend is returned when no candidate answers its health check.
var ErrNoBackend = errors.New("cannot connect to any API server")

// Prober finds the first reachable places backend among a list of
// candidates. Nothing is cached; every Probe starts from the top.
type Prober struct {
	client     *resty.Client
	candidates []string
	logger     *zap.Logger
}

func NewProber(candidates []string, timeout time.Duration, logger *zap.Logger) *Prober {
	cleaned := make([]string, 0, len(candidates))
	for _, c := range candidates {
		if c = strings.TrimRight(strings.TrimSpace(c), "/"); c != "" {
			cleaned = append(cleaned, c)
		}
	}
	return &Prober{
		client:     resty.New().SetTimeout(timeout),
		candidates: cleaned,
		logger:     logger,
	}
}

// Probe returns the base URL of the first candidate whose /api/health
// answers with a 2xx status.
func (p *Prober) Probe(ctx context.Context) (string, error) {
	for _, base := range p.candidates {
		resp, err := p.client.R().SetContext(ctx).Get(base + "/api/health")
		if err != nil {
			p.logger.Debug("health probe failed", zap.String("base", base), zap.Error(err))
			if ctx.Err() != nil {
				return "", errors.Wrap(ctx.Err(), "probe")
			}
			continue
		}
		if resp.IsSuccess() {
			return base, nil
		}
		p.logger.Debug("health probe rejected", zap.String("base", base), zap.Int("status", resp.StatusCode()))
	}
	return "", ErrNoBackend
}
