package api

import (
	"context"
	"net/http"
	"net/url"

	"github.com/meeplelog/meeplelog/internal/models"
)

func (c *Client) DashboardStatistics(ctx context.Context) (models.DashboardStatistics, error) {
	var out models.DashboardStatistics
	if err := c.do(ctx, http.MethodGet, "/v1/statistics/dashboard", nil, nil, &out); err != nil {
		return models.DashboardStatistics{}, err
	}
	return out, nil
}

func (c *Client) GameStatistics(ctx context.Context, gameID string) (models.GameStatistics, error) {
	var out models.GameStatistics
	if err := c.do(ctx, http.MethodGet, "/v1/games/"+url.PathEscape(gameID)+"/statistics", nil, nil, &out); err != nil {
		return models.GameStatistics{}, err
	}
	return out, nil
}

func (c *Client) PlayerStatistics(ctx context.Context, playerID string) (models.PlayerStatistics, error) {
	var out models.PlayerStatistics
	if err := c.do(ctx, http.MethodGet, "/v1/players/"+url.PathEscape(playerID)+"/statistics", nil, nil, &out); err != nil {
		return models.PlayerStatistics{}, err
	}
	return out, nil
}

// Compare fetches the head-to-head snapshot between two players.
func (c *Client) Compare(ctx context.Context, playerID, opponentID string) (models.CompareResult, error) {
	q := url.Values{}
	q.Set("player", playerID)
	q.Set("opponent", opponentID)
	var out models.CompareResult
	if err := c.do(ctx, http.MethodGet, "/v1/statistics/compare", q, nil, &out); err != nil {
		return models.CompareResult{}, err
	}
	return out, nil
}
