package api

import (
	"context"
	"io"
	"net/http"
	"net/url"

	"github.com/meeplelog/meeplelog/internal/models"
)

func (c *Client) ListPlayers(ctx context.Context) ([]models.Player, error) {
	var out []models.Player
	if err := c.do(ctx, http.MethodGet, "/v1/players", nil, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) GetPlayer(ctx context.Context, id string) (models.Player, error) {
	var out models.Player
	if err := c.do(ctx, http.MethodGet, "/v1/players/"+url.PathEscape(id), nil, nil, &out); err != nil {
		return models.Player{}, err
	}
	return out, nil
}

func (c *Client) CreatePlayer(ctx context.Context, in models.PlayerInput) (models.Player, error) {
	var out models.Player
	if err := c.do(ctx, http.MethodPost, "/v1/players", nil, in, &out); err != nil {
		return models.Player{}, err
	}
	return out, nil
}

func (c *Client) UpdatePlayer(ctx context.Context, id string, in models.PlayerInput) (models.Player, error) {
	var out models.Player
	if err := c.do(ctx, http.MethodPut, "/v1/players/"+url.PathEscape(id), nil, in, &out); err != nil {
		return models.Player{}, err
	}
	return out, nil
}

func (c *Client) DeletePlayer(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/v1/players/"+url.PathEscape(id), nil, nil, nil)
}

// UploadPlayerImage replaces the player's avatar via multipart/form-data.
func (c *Client) UploadPlayerImage(ctx context.Context, id, filename string, r io.Reader) (models.Player, error) {
	var out models.Player
	if err := c.upload(ctx, "/v1/players/"+url.PathEscape(id)+"/image", "image", filename, r, &out); err != nil {
		return models.Player{}, err
	}
	return out, nil
}
