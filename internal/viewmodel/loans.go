package viewmodel

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/meeplelog/meeplelog/internal/models"
	"github.com/meeplelog/meeplelog/internal/querycache"
)

// LoanListPage backs the loans overview. Game lookups resolve the lent
// game's title per row.
type LoanListPage struct {
	Loans    Resource[[]models.Loan]   `json:"loans"`
	Games    Resource[[]models.Game]   `json:"games"`
	Settings Resource[models.Settings] `json:"settings"`
}

func (p LoanListPage) IsError() bool { return anyError(p.Loans.Err) }

func (p LoanListPage) IsEmpty() bool {
	return p.Loans.OK() && len(p.Loans.Data) == 0
}

func (p LoanListPage) GameByID(id string) (models.Game, bool) {
	return gameByID(p.Games, id)
}

func (c *Composer) LoanList(ctx context.Context, activeOnly bool) LoanListPage {
	defer c.elapsed(ctx, "loans", time.Now())

	key := loansKey()
	if activeOnly {
		key = querycache.Key{Resource: "loans", ID: "active"}
	}

	var page LoanListPage
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		page.Loans = resolved(querycache.Fetch(gctx, c.cache, key, func(ctx context.Context) ([]models.Loan, error) {
			return c.api.ListLoans(ctx, activeOnly)
		}))
		return nil
	})
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
