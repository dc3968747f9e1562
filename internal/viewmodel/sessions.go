package viewmodel

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/meeplelog/meeplelog/internal/models"
	"github.com/meeplelog/meeplelog/internal/querycache"
)

// SessionListPage backs the play-log overview. Sessions reference games,
// players and locations by id, so the page carries those lists too for
// display resolution.
type SessionListPage struct {
	Sessions  Resource[[]models.Session]  `json:"sessions"`
	Games     Resource[[]models.Game]     `json:"games"`
	Players   Resource[[]models.Player]   `json:"players"`
	Locations Resource[[]models.Location] `json:"locations"`
	Settings  Resource[models.Settings]   `json:"settings"`
}

// IsError reports whether the page is unrenderable. The lookup lists are
// soft dependencies: if one fails, rows fall back to id display.
func (p SessionListPage) IsError() bool { return anyError(p.Sessions.Err) }

func (p SessionListPage) IsEmpty() bool {
	return p.Sessions.OK() && len(p.Sessions.Data) == 0
}

func (p SessionListPage) GameByID(id string) (models.Game, bool) {
	return gameByID(p.Games, id)
}

func (p SessionListPage) PlayerByID(id string) (models.Player, bool) {
	return playerByID(p.Players, id)
}

func (p SessionListPage) LocationByID(id string) (models.Location, bool) {
	return locationByID(p.Locations, id)
}

func (c *Composer) SessionList(ctx context.Context) SessionListPage {
	defer c.elapsed(ctx, "sessions", time.Now())

	var page SessionListPage
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		page.Sessions = resolved(querycache.Fetch(gctx, c.cache, sessionsKey(), c.api.ListSessions))
		return nil
	})
	g.Go(func() error {
		page.Games = resolved(querycache.Fetch(gctx, c.cache, gamesKey(), c.api.ListGames))
		return nil
	})
	g.Go(func() error {
		page.Players = resolved(querycache.Fetch(gctx, c.cache, playersKey(), c.api.ListPlayers))
		return nil
	})
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
