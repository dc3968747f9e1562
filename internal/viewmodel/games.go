package viewmodel

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/meeplelog/meeplelog/internal/api"
	"github.com/meeplelog/meeplelog/internal/models"
	"github.com/meeplelog/meeplelog/internal/querycache"
)

// GameListPage backs the collection overview.
type GameListPage struct {
	Games    Resource[[]models.Game]   `json:"games"`
	Settings Resource[models.Settings] `json:"settings"`
}

func (p GameListPage) IsError() bool { return anyError(p.Games.Err) }

// IsEmpty reports a settled page with nothing to show.
func (p GameListPage) IsEmpty() bool {
	return p.Games.OK() && len(p.Games.Data) == 0
}

func (c *Composer) GameList(ctx context.Context) GameListPage {
	defer c.elapsed(ctx, "games", time.Now())

	var page GameListPage
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		page.Games = resolved(querycache.Fetch(gctx, c.cache, gamesKey(), c.api.ListGames))
		return nil
	})
	g.Go(func() error {
		page.Settings = c.fetchSettings(gctx)
		return nil
	})
	_ = g.Wait()
	return page
}

// GamePage backs the game detail view. The game itself is the gate: its
// dependent queries only fire once the id is known to resolve.
type GamePage struct {
	Found      bool                            `json:"found"`
	Game       Resource[models.Game]           `json:"game"`
	Statistics Resource[models.GameStatistics] `json:"statistics"`
	Sessions   Resource[[]models.Session]      `json:"sessions"`
	Players    Resource[[]models.Player]       `json:"players"`
	Loans      Resource[[]models.Loan]         `json:"loans"`
	Settings   Resource[models.Settings]       `json:"settings"`
}

func (p GamePage) IsError() bool {
	if !p.Found {
		return false
	}
	return anyError(p.Game.Err, p.Statistics.Err, p.Sessions.Err, p.Players.Err, p.Loans.Err)
}

// PlayerByID resolves a participant reference against the fetched player
// list. Unresolved ids (e.g. a deleted player still referenced by old
// sessions) report ok=false; callers render a fallback.
func (p GamePage) PlayerByID(id string) (models.Player, bool) {
	return playerByID(p.Players, id)
}

func (c *Composer) GamePage(ctx context.Context, id string) GamePage {
	defer c.elapsed(ctx, "game", time.Now())

	page := GamePage{}
	game, err := querycache.Fetch(ctx, c.cache, gameKey(id), func(ctx context.Context) (models.Game, error) {
		return c.api.GetGame(ctx, id)
	})
	if api.IsNotFound(err) {
		// Stale link to a deleted game: guard state, dependents never fire.
		return page
	}
	page.Found = true
	page.Game = resolved(game, err)
	if err != nil {
		page.Statistics = Resource[models.GameStatistics]{Err: errGateNotReady}
		page.Sessions = Resource[[]models.Session]{Err: errGateNotReady}
		page.Players = Resource[[]models.Player]{Err: errGateNotReady}
		page.Loans = Resource[[]models.Loan]{Err: errGateNotReady}
		page.Settings = c.fetchSettings(ctx)
		return page
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		page.Statistics = resolved(querycache.Fetch(gctx, c.cache, gameSubKey(id, "statistics"), func(ctx context.Context) (models.GameStatistics, error) {
			return c.api.GameStatistics(ctx, id)
		}))
		return nil
	})
	g.Go(func() error {
		page.Sessions = resolved(querycache.Fetch(gctx, c.cache, gameSubKey(id, "sessions"), func(ctx context.Context) ([]models.Session, error) {
			return c.api.ListGameSessions(ctx, id)
		}))
		return nil
	})
	g.Go(func() error {
		page.Players = resolved(querycache.Fetch(gctx, c.cache, playersKey(), c.api.ListPlayers))
		return nil
	})
	g.Go(func() error {
		page.Loans = resolved(querycache.Fetch(gctx, c.cache, gameSubKey(id, "loans"), func(ctx context.Context) ([]models.Loan, error) {
			return c.api.ListGameLoans(ctx, id)
		}))
		return nil
	})
	g.Go(func() error {
		page.Settings = c.fetchSettings(gctx)
		return nil
	})
	_ = g.Wait()
	return page
}
