package viewmodel

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/meeplelog/meeplelog/internal/models"
	"github.com/meeplelog/meeplelog/internal/querycache"
)

// LocationListPage backs the locations management view.
type LocationListPage struct {
	Locations Resource[[]models.Location] `json:"locations"`
	Settings  Resource[models.Settings]   `json:"settings"`
}

func (p LocationListPage) IsError() bool { return anyError(p.Locations.Err) }

func (p LocationListPage) IsEmpty() bool {
	return p.Locations.OK() && len(p.Locations.Data) == 0
}

func (c *Composer) LocationList(ctx context.Context) LocationListPage {
	defer c.elapsed(ctx, "locations", time.Now())

	var page LocationListPage
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		page.Locations = resolved(querycache.Fetch(gctx, c.cache, locationsKey(), c.api.ListLocations))
		return nil
	})
	g.Go(func() error {
		page.Settings = c.fetchSettings(gctx)
		return nil
	})
	_ = g.Wait()
	return page
}
