package models

import "github.com/meeplelog/meeplelog/internal/timex"

// Aggregate view objects are computed server-side per request and treated as
// immutable snapshots; they live only in the query cache.

// ChartPoint is one bar/slice of a chart.
type ChartPoint struct {
	Label string  `json:"label"`
	Value float64 `json:"value"`
}

// DashboardStatistics feeds the landing page cards and charts.
type DashboardStatistics struct {
	GameCount        int          `json:"gameCount"`
	ExpansionCount   int          `json:"expansionCount"`
	SessionCount     int          `json:"sessionCount"`
	PlayerCount      int          `json:"playerCount"`
	TotalPlayMinutes int          `json:"totalPlayMinutes"`
	MeanPlayMinutes  *float64     `json:"meanPlayMinutes,omitempty"`
	TotalCost        *float64     `json:"totalCost,omitempty"`
	MostPlayed       *GameSummary `json:"mostPlayed,omitempty"`
	PlaysByMonth     []ChartPoint `json:"playsByMonth,omitempty"`
	GamesByState     []ChartPoint `json:"gamesByState,omitempty"`
	// ShelfOfShame lists games unplayed beyond the configured threshold.
	ShelfOfShame []GameSummary `json:"shelfOfShame,omitempty"`
}

// GameStatistics summarizes one game's play history.
type GameStatistics struct {
	GameID           string     `json:"gameId"`
	PlayCount        int        `json:"playCount"`
	TotalPlayMinutes int        `json:"totalPlayMinutes"`
	HighScore        *float64   `json:"highScore,omitempty"`
	AverageScore     *float64   `json:"averageScore,omitempty"`
	LastPlayed       timex.Time `json:"lastPlayed"`
}

// PlayerStatistics summarizes one player's history.
type PlayerStatistics struct {
	PlayerID         string   `json:"playerId"`
	PlayCount        int      `json:"playCount"`
	WinCount         int      `json:"winCount"`
	DistinctGames    int      `json:"distinctGames"`
	TotalPlayMinutes int      `json:"totalPlayMinutes"`
	WinPercentage    *float64 `json:"winPercentage,omitempty"`
}

// CompareMetric is one row of a head-to-head comparison.
type CompareMetric struct {
	Name          string   `json:"name"`
	PlayerValue   *float64 `json:"playerValue,omitempty"`
	OpponentValue *float64 `json:"opponentValue,omitempty"`
}

// CompareResult is the server-computed head-to-head snapshot between two
// players.
type CompareResult struct {
	PlayerID   string          `json:"playerId"`
	OpponentID string          `json:"opponentId"`
	Metrics    []CompareMetric `json:"metrics"`
}
