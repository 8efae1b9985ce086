package market

import (
	"context"
	"errors"
	"log/slog"

	"github.com/jonathan/career-compass/internal/types"
)

// Provider resolves market snapshots per career title: cache first, then one
// bounded remote search. Every failure mode degrades to the neutral snapshot
// so a market outage weakens scores instead of aborting a recommendation
// request. Neutral snapshots are never cached, so outages self-heal once the
// service recovers.
type Provider struct {
	cache  *Cache
	client *Client
}

// NewProvider creates a provider over the given cache and search client.
func NewProvider(cache *Cache, client *Client) *Provider {
	return &Provider{cache: cache, client: client}
}

// Fetch returns the market snapshot for title. It never fails; the zero
// snapshot is the degraded result.
func (p *Provider) Fetch(ctx context.Context, title string) types.MarketSnapshot {
	logger := slog.With("component", "market", "operation", "fetch", "title", title)

	if snapshot, ok := p.cache.Get(title); ok {
		return snapshot
	}

	snapshot, err := p.client.Search(ctx, title)
	if err != nil {
		var malformed *MalformedError
		switch {
		case errors.Is(err, ErrMissingCredentials):
			logger.Debug("no market credentials, returning neutral snapshot")
		case errors.As(err, &malformed):
			logger.Error("market service returned malformed data", "error", err)
		default:
			logger.Warn("market service unreachable", "error", err)
		}
		return types.MarketSnapshot{}
	}

	if err := p.cache.Put(title, snapshot); err != nil {
		// A cache write failure costs a duplicate remote call later, nothing more.
		logger.Warn("failed to persist market snapshot", "error", err)
	}

	return snapshot
}
