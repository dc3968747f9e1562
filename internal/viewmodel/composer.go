package viewmodel

import (
	"context"
	"time"

	"github.com/meeplelog/meeplelog/internal/api"
	"github.com/meeplelog/meeplelog/internal/logging"
	"github.com/meeplelog/meeplelog/internal/models"
	"github.com/meeplelog/meeplelog/internal/querycache"
)

// Composer builds page view models from cache-backed resource queries.
type Composer struct {
	api   api.API
	cache *querycache.Cache
	log   logging.Logger
}

func NewComposer(a api.API, cache *querycache.Cache, log logging.Logger) *Composer {
	return &Composer{api: a, cache: cache, log: log}
}

// fetchSettings is on nearly every page; default settings stand in until
// the backend copy arrives so formatting never blocks on it.
func (c *Composer) fetchSettings(ctx context.Context) Resource[models.Settings] {
	s, err := querycache.Fetch(ctx, c.cache, settingsKey(), c.api.GetSettings)
	if err != nil {
		c.log.Warn(ctx, "settings unavailable, using defaults", "err", err)
		return Resource[models.Settings]{Data: models.DefaultSettings(), Err: err}
	}
	return Resource[models.Settings]{Data: s}
}

func (c *Composer) invalidate(ctx context.Context, keys ...querycache.Key) {
	if err := c.cache.Invalidate(ctx, keys...); err != nil {
		// A failed invalidation leaves stale data until TTL expiry; log it
		// rather than failing the mutation that already succeeded.
		c.log.Error(ctx, "cache invalidation failed", "err", err)
	}
}

// elapsed logs slow page compositions.
func (c *Composer) elapsed(ctx context.Context, page string, start time.Time) {
	c.log.Debug(ctx, "page composed", "page", page, "elapsed", time.Since(start))
}
