// Package stats holds the derived-statistics helpers: head-to-head
// comparison and win-rate math. All functions are stateless transforms.
package stats

import (
	"github.com/meeplelog/meeplelog/internal/format"
	"github.com/meeplelog/meeplelog/internal/models"
)

// IsWinningValue reports whether the player's value beats the opponent's.
// Missing values never win, and ties produce no winner in either
// direction.
func IsWinningValue(playerValue, opponentValue *float64) bool {
	if playerValue == nil || opponentValue == nil {
		return false
	}
	return *playerValue > *opponentValue
}

// WinPercentage computes wins/plays as a percentage rounded to the nearest
// 0.5. Zero plays yields nil; no data is not the same as 0%.
func WinPercentage(wins, plays int) *float64 {
	if plays <= 0 {
		return nil
	}
	pct := float64(wins) / float64(plays) * 100
	return format.RoundDecimal(&pct, 0.5)
}

// CompareRow is one metric of a head-to-head view with winner flags
// resolved.
type CompareRow struct {
	Name          string   `json:"name"`
	PlayerValue   *float64 `json:"playerValue,omitempty"`
	OpponentValue *float64 `json:"opponentValue,omitempty"`
	PlayerWins    bool     `json:"playerWins"`
	OpponentWins  bool     `json:"opponentWins"`
}

// CompareRows resolves the winning side per metric of a server comparison
// snapshot.
func CompareRows(r models.CompareResult) []CompareRow {
	rows := make([]CompareRow, 0, len(r.Metrics))
	for _, m := range r.Metrics {
		rows = append(rows, CompareRow{
			Name:          m.Name,
			PlayerValue:   m.PlayerValue,
			OpponentValue: m.OpponentValue,
			PlayerWins:    IsWinningValue(m.PlayerValue, m.OpponentValue),
			OpponentWins:  IsWinningValue(m.OpponentValue, m.PlayerValue),
		})
	}
	return rows
}
