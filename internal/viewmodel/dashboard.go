package viewmodel

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/meeplelog/meeplelog/internal/models"
	"github.com/meeplelog/meeplelog/internal/querycache"
)

// DashboardPage feeds the landing page: aggregate statistics, the settings
// snapshot, and environment info.
type DashboardPage struct {
	Statistics  Resource[models.DashboardStatistics] `json:"statistics"`
	Settings    Resource[models.Settings]            `json:"settings"`
	Environment Resource[models.Environment]         `json:"environment"`
}

// IsError reports whether any required sub-query failed. Settings fall
// back to defaults and do not fail the page.
func (p DashboardPage) IsError() bool {
	return anyError(p.Statistics.Err, p.Environment.Err)
}

// Dashboard issues its three queries in parallel.
func (c *Composer) Dashboard(ctx context.Context) DashboardPage {
	defer c.elapsed(ctx, "dashboard", time.Now())

	var page DashboardPage
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		page.Statistics = resolved(querycache.Fetch(gctx, c.cache, dashboardKey(), c.api.DashboardStatistics))
		return nil
	})
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
