package api

import (
	"context"
	"net/http"
	"net/url"

	"github.com/meeplelog/meeplelog/internal/models"
)

func (c *Client) ListSessions(ctx context.Context) ([]models.Session, error) {
	var out []models.Session
	if err := c.do(ctx, http.MethodGet, "/v1/sessions", nil, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// ListGameSessions returns the play history of one game.
func (c *Client) ListGameSessions(ctx context.Context, gameID string) ([]models.Session, error) {
	var out []models.Session
	if err := c.do(ctx, http.MethodGet, "/v1/games/"+url.PathEscape(gameID)+"/sessions", nil, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// ListPlayerSessions returns the sessions one player took part in.
func (c *Client) ListPlayerSessions(ctx context.Context, playerID string) ([]models.Session, error) {
	var out []models.Session
	if err := c.do(ctx, http.MethodGet, "/v1/players/"+url.PathEscape(playerID)+"/sessions", nil, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) CreateSession(ctx context.Context, in models.SessionInput) (models.Session, error) {
	var out models.Session
	if err := c.do(ctx, http.MethodPost, "/v1/sessions", nil, in, &out); err != nil {
		return models.Session{}, err
	}
	return out, nil
}

func (c *Client) UpdateSession(ctx context.Context, id string, in models.SessionInput) (models.Session, error) {
	var out models.Session
	if err := c.do(ctx, http.MethodPut, "/v1/sessions/"+url.PathEscape(id), nil, in, &out); err != nil {
		return models.Session{}, err
	}
	return out, nil
}

func (c *Client) DeleteSession(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/v1/sessions/"+url.PathEscape(id), nil, nil, nil)
}
