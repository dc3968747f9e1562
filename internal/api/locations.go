package api

import (
	"context"
	"net/http"
	"net/url"

	"github.com/meeplelog/meeplelog/internal/models"
)

func (c *Client) ListLocations(ctx context.Context) ([]models.Location, error) {
	var out []models.Location
	if err := c.do(ctx, http.MethodGet, "/v1/locations", nil, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) CreateLocation(ctx context.Context, in models.LocationInput) (models.Location, error) {
	var out models.Location
	if err := c.do(ctx, http.MethodPost, "/v1/locations", nil, in, &out); err != nil {
		return models.Location{}, err
	}
	return out, nil
}

func (c *Client) UpdateLocation(ctx context.Context, id string, in models.LocationInput) (models.Location, error) {
	var out models.Location
	if err := c.do(ctx, http.MethodPut, "/v1/locations/"+url.PathEscape(id), nil, in, &out); err != nil {
		return models.Location{}, err
	}
	return out, nil
}

func (c *Client) DeleteLocation(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/v1/locations/"+url.PathEscape(id), nil, nil, nil)
}
