package viewmodel

import (
	"context"
	"fmt"
	"io"

	"github.com/meeplelog/meeplelog/internal/common"
	"github.com/meeplelog/meeplelog/internal/models"
	"github.com/meeplelog/meeplelog/internal/timex"
)

// ValidationError carries per-field messages for input rejected before it
// reached the backend. It matches errors.Is(err, common.ErrInvalid).
type ValidationError struct {
	Fields models.FieldErrors
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid input: %d field(s) failed validation", len(e.Fields))
}

func (e *ValidationError) Unwrap() error { return common.ErrInvalid }

// Mutations never write to the cache. They invalidate the affected
// subtrees after the backend confirms the change, so the next page
// composition refetches fresh data. List keys double as subtree roots, so
// invalidating "games" also drops every per-game entry beneath it.

func (c *Composer) CreateGame(ctx context.Context, in models.GameInput) (models.Game, error) {
	if fe := in.Validate(); !fe.Valid() {
		return models.Game{}, &ValidationError{Fields: fe}
	}
	game, err := c.api.CreateGame(ctx, in)
	if err != nil {
		return models.Game{}, err
	}
	c.invalidate(ctx, gamesKey(), statisticsKey())
	return game, nil
}

func (c *Composer) UpdateGame(ctx context.Context, id string, in models.GameInput) (models.Game, error) {
	if fe := in.Validate(); !fe.Valid() {
		return models.Game{}, &ValidationError{Fields: fe}
	}
	game, err := c.api.UpdateGame(ctx, id, in)
	if err != nil {
		return models.Game{}, err
	}
	c.invalidate(ctx, gamesKey(), statisticsKey())
	return game, nil
}

func (c *Composer) DeleteGame(ctx context.Context, id string) error {
	if err := c.api.DeleteGame(ctx, id); err != nil {
		return err
	}
	// Deleting a game cascades into its sessions and loans server-side.
	c.invalidate(ctx, gamesKey(), sessionsKey(), loansKey(), statisticsKey())
	return nil
}

func (c *Composer) UploadGameImage(ctx context.Context, id, filename string, r io.Reader) (models.Game, error) {
	game, err := c.api.UploadGameImage(ctx, id, filename, r)
	if err != nil {
		return models.Game{}, err
	}
	c.invalidate(ctx, gamesKey())
	return game, nil
}

func (c *Composer) CreatePlayer(ctx context.Context, in models.PlayerInput) (models.Player, error) {
	if fe := in.Validate(); !fe.Valid() {
		return models.Player{}, &ValidationError{Fields: fe}
	}
	player, err := c.api.CreatePlayer(ctx, in)
	if err != nil {
		return models.Player{}, err
	}
	c.invalidate(ctx, playersKey(), statisticsKey())
	return player, nil
}

func (c *Composer) UpdatePlayer(ctx context.Context, id string, in models.PlayerInput) (models.Player, error) {
	if fe := in.Validate(); !fe.Valid() {
		return models.Player{}, &ValidationError{Fields: fe}
	}
	player, err := c.api.UpdatePlayer(ctx, id, in)
	if err != nil {
		return models.Player{}, err
	}
	c.invalidate(ctx, playersKey(), statisticsKey())
	return player, nil
}

func (c *Composer) DeletePlayer(ctx context.Context, id string) error {
	if err := c.api.DeletePlayer(ctx, id); err != nil {
		return err
	}
	c.invalidate(ctx, playersKey(), sessionsKey(), statisticsKey())
	return nil
}

func (c *Composer) UploadPlayerImage(ctx context.Context, id, filename string, r io.Reader) (models.Player, error) {
	player, err := c.api.UploadPlayerImage(ctx, id, filename, r)
	if err != nil {
		return models.Player{}, err
	}
	c.invalidate(ctx, playersKey())
	return player, nil
}

func (c *Composer) CreateLocation(ctx context.Context, in models.LocationInput) (models.Location, error) {
	if fe := in.Validate(); !fe.Valid() {
		return models.Location{}, &ValidationError{Fields: fe}
	}
	loc, err := c.api.CreateLocation(ctx, in)
	if err != nil {
		return models.Location{}, err
	}
	c.invalidate(ctx, locationsKey())
	return loc, nil
}

func (c *Composer) UpdateLocation(ctx context.Context, id string, in models.LocationInput) (models.Location, error) {
	if fe := in.Validate(); !fe.Valid() {
		return models.Location{}, &ValidationError{Fields: fe}
	}
	loc, err := c.api.UpdateLocation(ctx, id, in)
	if err != nil {
		return models.Location{}, err
	}
	c.invalidate(ctx, locationsKey())
	return loc, nil
}

func (c *Composer) DeleteLocation(ctx context.Context, id string) error {
	if err := c.api.DeleteLocation(ctx, id); err != nil {
		return err
	}
	c.invalidate(ctx, locationsKey(), sessionsKey())
	return nil
}

// Session changes touch almost everything: play counts on games, win
// stats on players, play counts on locations, and every aggregate view.
func (c *Composer) CreateSession(ctx context.Context, in models.SessionInput) (models.Session, error) {
	if fe := in.Validate(); !fe.Valid() {
		return models.Session{}, &ValidationError{Fields: fe}
	}
	session, err := c.api.CreateSession(ctx, in)
	if err != nil {
		return models.Session{}, err
	}
	c.invalidateSessionDependents(ctx)
	return session, nil
}

func (c *Composer) UpdateSession(ctx context.Context, id string, in models.SessionInput) (models.Session, error) {
	if fe := in.Validate(); !fe.Valid() {
		return models.Session{}, &ValidationError{Fields: fe}
	}
	session, err := c.api.UpdateSession(ctx, id, in)
	if err != nil {
		return models.Session{}, err
	}
	// An update may have moved the session off its previous game, players
	// or location; those old references are unknown here, so all dependent
	// subtrees go.
	c.invalidateSessionDependents(ctx)
	return session, nil
}

func (c *Composer) DeleteSession(ctx context.Context, id string) error {
	if err := c.api.DeleteSession(ctx, id); err != nil {
		return err
	}
	c.invalidateSessionDependents(ctx)
	return nil
}

func (c *Composer) invalidateSessionDependents(ctx context.Context) {
	c.invalidate(ctx, sessionsKey(), gamesKey(), playersKey(), locationsKey(), statisticsKey())
}

func (c *Composer) CreateLoan(ctx context.Context, in models.LoanInput) (models.Loan, error) {
	if fe := in.Validate(); !fe.Valid() {
		return models.Loan{}, &ValidationError{Fields: fe}
	}
	loan, err := c.api.CreateLoan(ctx, in)
	if err != nil {
		return models.Loan{}, err
	}
	// Loans set the game's active-loan marker, so the games subtree goes too.
	c.invalidate(ctx, loansKey(), gamesKey())
	return loan, nil
}

func (c *Composer) ReturnLoan(ctx context.Context, id string, returned timex.Time) (models.Loan, error) {
	loan, err := c.api.ReturnLoan(ctx, id, returned)
	if err != nil {
		return models.Loan{}, err
	}
	c.invalidate(ctx, loansKey(), gamesKey())
	return loan, nil
}

func (c *Composer) DeleteLoan(ctx context.Context, id string) error {
	if err := c.api.DeleteLoan(ctx, id); err != nil {
		return err
	}
	c.invalidate(ctx, loansKey(), gamesKey())
	return nil
}

func (c *Composer) UpdateSettings(ctx context.Context, in models.SettingsInput) (models.Settings, error) {
	if fe := in.Validate(); !fe.Valid() {
		return models.Settings{}, &ValidationError{Fields: fe}
	}
	settings, err := c.api.UpdateSettings(ctx, in)
	if err != nil {
		return models.Settings{}, err
	}
	// The shelf-of-shame window lives in settings, so aggregates refresh too.
	c.invalidate(ctx, settingsKey(), statisticsKey())
	return settings, nil
}
