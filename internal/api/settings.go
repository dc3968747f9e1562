package api

import (
	"context"
	"net/http"

	"github.com/meeplelog/meeplelog/internal/models"
)

func (c *Client) GetSettings(ctx context.Context) (models.Settings, error) {
	var out models.Settings
	if err := c.do(ctx, http.MethodGet, "/v1/settings", nil, nil, &out); err != nil {
		return models.Settings{}, err
	}
	return out, nil
}

// UpdateSettings is the single settings mutation.
func (c *Client) UpdateSettings(ctx context.Context, in models.SettingsInput) (models.Settings, error) {
	var out models.Settings
	if err := c.do(ctx, http.MethodPut, "/v1/settings", nil, in, &out); err != nil {
		return models.Settings{}, err
	}
	return out, nil
}

// GetEnvironment is read-only runtime information (version, flags).
func (c *Client) GetEnvironment(ctx context.Context) (models.Environment, error) {
	var out models.Environment
	if err := c.do(ctx, http.MethodGet, "/v1/environment", nil, nil, &out); err != nil {
		return models.Environment{}, err
	}
	return out, nil
}
