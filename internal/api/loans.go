package api

import (
	"context"
	"net/http"
	"net/url"

	"github.com/meeplelog/meeplelog/internal/models"
	"github.com/meeplelog/meeplelog/internal/timex"
)

// ListLoans returns loans, optionally restricted to active ones.
func (c *Client) ListLoans(ctx context.Context, activeOnly bool) ([]models.Loan, error) {
	q := url.Values{}
	if activeOnly {
		q.Set("active", "true")
	}
	var out []models.Loan
	if err := c.do(ctx, http.MethodGet, "/v1/loans", q, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// ListGameLoans returns the loan history of one game.
func (c *Client) ListGameLoans(ctx context.Context, gameID string) ([]models.Loan, error) {
	var out []models.Loan
	if err := c.do(ctx, http.MethodGet, "/v1/games/"+url.PathEscape(gameID)+"/loans", nil, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// CreateLoan lends a game out.
func (c *Client) CreateLoan(ctx context.Context, in models.LoanInput) (models.Loan, error) {
	var out models.Loan
	if err := c.do(ctx, http.MethodPost, "/v1/loans", nil, in, &out); err != nil {
		return models.Loan{}, err
	}
	return out, nil
}

// ReturnLoan marks a loan returned at the given date.
func (c *Client) ReturnLoan(ctx context.Context, id string, returned timex.Time) (models.Loan, error) {
	body := struct {
		ReturnedDate timex.Time `json:"returnedDate"`
	}{ReturnedDate: returned}
	var out models.Loan
	if err := c.do(ctx, http.MethodPut, "/v1/loans/"+url.PathEscape(id)+"/return", nil, body, &out); err != nil {
		return models.Loan{}, err
	}
	return out, nil
}

func (c *Client) DeleteLoan(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/v1/loans/"+url.PathEscape(id), nil, nil, nil)
}
