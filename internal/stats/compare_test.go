package stats

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/meeplelog/meeplelog/internal/models"
)

func fptr(v float64) *float64 { return &v }

func TestIsWinningValue_GreaterWins(t *testing.T) {
	require.True(t, IsWinningValue(fptr(10), fptr(5)))
	require.False(t, IsWinningValue(fptr(5), fptr(10)))
}

func TestIsWinningValue_TieHasNoWinner(t *testing.T) {
	// no winner in either direction on equal values
	require.False(t, IsWinningValue(fptr(7), fptr(7)))
	require.False(t, IsWinningValue(fptr(7), fptr(7)))
}

func TestIsWinningValue_SwapSymmetry(t *testing.T) {
	a, b := fptr(3.5), fptr(2.0)
	require.True(t, IsWinningValue(a, b))
	require.False(t, IsWinningValue(b, a))
}

func TestIsWinningValue_NilNeverWins(t *testing.T) {
	require.False(t, IsWinningValue(nil, fptr(1)))
	require.False(t, IsWinningValue(fptr(1), nil))
	require.False(t, IsWinningValue(nil, nil))
}

func TestWinPercentage(t *testing.T) {
	require.Nil(t, WinPercentage(3, 0))

	got := WinPercentage(1, 3)
	require.NotNil(t, got)
	require.InDelta(t, 33.5, *got, 1e-9) // 33.33… rounds to nearest 0.5

	got = WinPercentage(2, 4)
	require.NotNil(t, got)
	require.InDelta(t, 50.0, *got, 1e-9)
}

func TestCompareRows(t *testing.T) {
	r := models.CompareResult{
		PlayerID:   "p1",
		OpponentID: "p2",
		Metrics: []models.CompareMetric{
			{Name: "wins", PlayerValue: fptr(10), OpponentValue: fptr(4)},
			{Name: "plays", PlayerValue: fptr(20), OpponentValue: fptr(20)},
			{Name: "highScore", PlayerValue: nil, OpponentValue: fptr(99)},
		},
	}
	rows := CompareRows(r)
	require.Len(t, rows, 3)

	require.True(t, rows[0].PlayerWins)
	require.False(t, rows[0].OpponentWins)

	require.False(t, rows[1].PlayerWins)
	require.False(t, rows[1].OpponentWins)

	// With one value missing there is no comparison to make, so neither
	// side wins.
	require.False(t, rows[2].PlayerWins)
	require.False(t, rows[2].OpponentWins)
}
