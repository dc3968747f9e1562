package viewmodel

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/meeplelog/meeplelog/internal/models"
	"github.com/meeplelog/meeplelog/internal/querycache"
)

// SettingsPage backs the settings editor.
type SettingsPage struct {
	Settings    Resource[models.Settings]    `json:"settings"`
	Environment Resource[models.Environment] `json:"environment"`
}

// IsError requires the real settings document here, unlike other pages
// where defaults stand in: the editor must not present defaults as the
// saved state.
func (p SettingsPage) IsError() bool {
	return anyError(p.Settings.Err, p.Environment.Err)
}

func (c *Composer) SettingsPage(ctx context.Context) SettingsPage {
	defer c.elapsed(ctx, "settings", time.Now())

	var page SettingsPage
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		page.Settings = c.fetchSettings(gctx)
		return nil
	})
	g.Go(func() error {
		page.Environment = resolved(querycache.Fetch(gctx, c.cache, environmentKey(), c.api.GetEnvironment))
		return nil
	})
	_ = g.Wait()
	return page
}
