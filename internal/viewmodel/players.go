package viewmodel

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/meeplelog/meeplelog/internal/api"
	"github.com/meeplelog/meeplelog/internal/models"
	"github.com/meeplelog/meeplelog/internal/querycache"
	"github.com/meeplelog/meeplelog/internal/stats"
)

// PlayerListPage backs the player overview.
type PlayerListPage struct {
	Players  Resource[[]models.Player] `json:"players"`
	Settings Resource[models.Settings] `json:"settings"`
}

func (p PlayerListPage) IsError() bool { return anyError(p.Players.Err) }

func (p PlayerListPage) IsEmpty() bool {
	return p.Players.OK() && len(p.Players.Data) == 0
}

func (c *Composer) PlayerList(ctx context.Context) PlayerListPage {
	defer c.elapsed(ctx, "players", time.Now())

	var page PlayerListPage
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		page.Players = resolved(querycache.Fetch(gctx, c.cache, playersKey(), c.api.ListPlayers))
		return nil
	})
	g.Go(func() error {
		page.Settings = c.fetchSettings(gctx)
		return nil
	})
	_ = g.Wait()
	return page
}

// PlayerPage backs the player detail view, gated on the player itself.
type PlayerPage struct {
	Found      bool                              `json:"found"`
	Player     Resource[models.Player]           `json:"player"`
	Statistics Resource[models.PlayerStatistics] `json:"statistics"`
	Sessions   Resource[[]models.Session]        `json:"sessions"`
	Games      Resource[[]models.Game]           `json:"games"`
	// Opponents are the comparison candidates, the full player list.
	Opponents Resource[[]models.Player] `json:"opponents"`
	Settings  Resource[models.Settings] `json:"settings"`
}

func (p PlayerPage) IsError() bool {
	if !p.Found {
		return false
	}
	return anyError(p.Player.Err, p.Statistics.Err, p.Sessions.Err, p.Games.Err)
}

// GameByID resolves a session's game reference for display.
func (p PlayerPage) GameByID(id string) (models.Game, bool) {
	return gameByID(p.Games, id)
}

func (c *Composer) PlayerPage(ctx context.Context, id string) PlayerPage {
	defer c.elapsed(ctx, "player", time.Now())

	page := PlayerPage{}
	player, err := querycache.Fetch(ctx, c.cache, playerKey(id), func(ctx context.Context) (models.Player, error) {
		return c.api.GetPlayer(ctx, id)
	})
	if api.IsNotFound(err) {
		return page
	}
	page.Found = true
	page.Player = resolved(player, err)
	if err != nil {
		page.Statistics = Resource[models.PlayerStatistics]{Err: errGateNotReady}
		page.Sessions = Resource[[]models.Session]{Err: errGateNotReady}
		page.Games = Resource[[]models.Game]{Err: errGateNotReady}
		page.Opponents = Resource[[]models.Player]{Err: errGateNotReady}
		page.Settings = c.fetchSettings(ctx)
		return page
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		page.Statistics = resolved(querycache.Fetch(gctx, c.cache, playerSubKey(id, "statistics"), func(ctx context.Context) (models.PlayerStatistics, error) {
			return c.api.PlayerStatistics(ctx, id)
		}))
		return nil
	})
	g.Go(func() error {
		page.Sessions = resolved(querycache.Fetch(gctx, c.cache, playerSubKey(id, "sessions"), func(ctx context.Context) ([]models.Session, error) {
			return c.api.ListPlayerSessions(ctx, id)
		}))
		return nil
	})
	g.Go(func() error {
		page.Games = resolved(querycache.Fetch(gctx, c.cache, gamesKey(), c.api.ListGames))
		return nil
	})
	g.Go(func() error {
		page.Opponents = resolved(querycache.Fetch(gctx, c.cache, playersKey(), c.api.ListPlayers))
		return nil
	})
	g.Go(func() error {
		page.Settings = c.fetchSettings(gctx)
		return nil
	})
	_ = g.Wait()
	return page
}

// ComparePage puts two players' head-to-head numbers side by side. Both
// players gate the comparison query: a stale link to a deleted player
// reports Found=false instead of an error.
type ComparePage struct {
	Found    bool                           `json:"found"`
	Player   Resource[models.Player]        `json:"player"`
	Opponent Resource[models.Player]        `json:"opponent"`
	Result   Resource[models.CompareResult] `json:"result"`
	Rows     []stats.CompareRow             `json:"rows"`
	Settings Resource[models.Settings]      `json:"settings"`
}

func (p ComparePage) IsError() bool {
	if !p.Found {
		return false
	}
	return anyError(p.Player.Err, p.Opponent.Err, p.Result.Err)
}

func (c *Composer) Compare(ctx context.Context, playerID, opponentID string) ComparePage {
	defer c.elapsed(ctx, "compare", time.Now())

	page := ComparePage{}
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		page.Player = resolved(querycache.Fetch(gctx, c.cache, playerKey(playerID), func(ctx context.Context) (models.Player, error) {
			return c.api.GetPlayer(ctx, playerID)
		}))
		return nil
	})
	g.Go(func() error {
		page.Opponent = resolved(querycache.Fetch(gctx, c.cache, playerKey(opponentID), func(ctx context.Context) (models.Player, error) {
			return c.api.GetPlayer(ctx, opponentID)
		}))
		return nil
	})
	g.Go(func() error {
		page.Settings = c.fetchSettings(gctx)
		return nil
	})
	_ = g.Wait()

	if api.IsNotFound(page.Player.Err) || api.IsNotFound(page.Opponent.Err) {
		return page
	}
	page.Found = true
	if !page.Player.OK() || !page.Opponent.OK() {
		page.Result = Resource[models.CompareResult]{Err: errGateNotReady}
		return page
	}

	page.Result = resolved(querycache.Fetch(ctx, c.cache, compareKey(playerID, opponentID), func(ctx context.Context) (models.CompareResult, error) {
		return c.api.Compare(ctx, playerID, opponentID)
	}))
	if page.Result.OK() {
		page.Rows = stats.CompareRows(page.Result.Data)
	}
	return page
}
