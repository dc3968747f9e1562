package api

import (
	"context"
	"io"

	"github.com/meeplelog/meeplelog/internal/models"
	"github.com/meeplelog/meeplelog/internal/timex"
)

// API is the full accessor surface. Consumers depend on this interface so
// tests can substitute fakes; Client is the HTTP implementation.
type API interface {
	ListGames(ctx context.Context) ([]models.Game, error)
	GetGame(ctx context.Context, id string) (models.Game, error)
	CreateGame(ctx context.Context, in models.GameInput) (models.Game, error)
	UpdateGame(ctx context.Context, id string, in models.GameInput) (models.Game, error)
	DeleteGame(ctx context.Context, id string) error
	UploadGameImage(ctx context.Context, id, filename string, r io.Reader) (models.Game, error)

	ListPlayers(ctx context.Context) ([]models.Player, error)
	GetPlayer(ctx context.Context, id string) (models.Player, error)
	CreatePlayer(ctx context.Context, in models.PlayerInput) (models.Player, error)
	UpdatePlayer(ctx context.Context, id string, in models.PlayerInput) (models.Player, error)
	DeletePlayer(ctx context.Context, id string) error
	UploadPlayerImage(ctx context.Context, id, filename string, r io.Reader) (models.Player, error)

	ListLocations(ctx context.Context) ([]models.Location, error)
	CreateLocation(ctx context.Context, in models.LocationInput) (models.Location, error)
	UpdateLocation(ctx context.Context, id string, in models.LocationInput) (models.Location, error)
	DeleteLocation(ctx context.Context, id string) error

	ListSessions(ctx context.Context) ([]models.Session, error)
	ListGameSessions(ctx context.Context, gameID string) ([]models.Session, error)
	ListPlayerSessions(ctx context.Context, playerID string) ([]models.Session, error)
	CreateSession(ctx context.Context, in models.SessionInput) (models.Session, error)
	UpdateSession(ctx context.Context, id string, in models.SessionInput) (models.Session, error)
	DeleteSession(ctx context.Context, id string) error

	ListLoans(ctx context.Context, activeOnly bool) ([]models.Loan, error)
	ListGameLoans(ctx context.Context, gameID string) ([]models.Loan, error)
	CreateLoan(ctx context.Context, in models.LoanInput) (models.Loan, error)
	ReturnLoan(ctx context.Context, id string, returned timex.Time) (models.Loan, error)
	DeleteLoan(ctx context.Context, id string) error

	GetSettings(ctx context.Context) (models.Settings, error)
	UpdateSettings(ctx context.Context, in models.SettingsInput) (models.Settings, error)
	GetEnvironment(ctx context.Context) (models.Environment, error)

	DashboardStatistics(ctx context.Context) (models.DashboardStatistics, error)
	GameStatistics(ctx context.Context, gameID string) (models.GameStatistics, error)
	PlayerStatistics(ctx context.Context, playerID string) (models.PlayerStatistics, error)
	Compare(ctx context.Context, playerID, opponentID string) (models.CompareResult, error)
}

var _ API = (*Client)(nil)
