package api

import (
	"context"
	"io"
	"net/http"
	"net/url"

	"github.com/meeplelog/meeplelog/internal/models"
)

func (c *Client) ListGames(ctx context.Context) ([]models.Game, error) {
	var out []models.Game
	if err := c.do(ctx, http.MethodGet, "/v1/games", nil, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) GetGame(ctx context.Context, id string) (models.Game, error) {
	var out models.Game
	if err := c.do(ctx, http.MethodGet, "/v1/games/"+url.PathEscape(id), nil, nil, &out); err != nil {
		return models.Game{}, err
	}
	return out, nil
}

func (c *Client) CreateGame(ctx context.Context, in models.GameInput) (models.Game, error) {
	var out models.Game
	if err := c.do(ctx, http.MethodPost, "/v1/games", nil, in, &out); err != nil {
		return models.Game{}, err
	}
	return out, nil
}

func (c *Client) UpdateGame(ctx context.Context, id string, in models.GameInput) (models.Game, error) {
	var out models.Game
	if err := c.do(ctx, http.MethodPut, "/v1/games/"+url.PathEscape(id), nil, in, &out); err != nil {
		return models.Game{}, err
	}
	return out, nil
}

func (c *Client) DeleteGame(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/v1/games/"+url.PathEscape(id), nil, nil, nil)
}

// UploadGameImage replaces the game's box image via multipart/form-data and
// returns the updated record.
func (c *Client) UploadGameImage(ctx context.Context, id, filename string, r io.Reader) (models.Game, error) {
	var out models.Game
	if err := c.upload(ctx, "/v1/games/"+url.PathEscape(id)+"/image", "image", filename, r, &out); err != nil {
		return models.Game{}, err
	}
	return out, nil
}
