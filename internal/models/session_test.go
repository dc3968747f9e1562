package models

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/meeplelog/meeplelog/internal/timex"
)

func TestPlayerSession_UnmarshalDerivesScoringKind(t *testing.T) {
	var ps PlayerSession
	require.NoError(t, json.Unmarshal([]byte(`{"playerId":"p1","score":42,"won":true,"firstPlay":false}`), &ps))
	require.Equal(t, PlayerSessionScoring, ps.Kind)
	require.NotNil(t, ps.Score)
	require.Equal(t, 42.0, *ps.Score)
	require.True(t, ps.Won)
}

func TestPlayerSession_UnmarshalDerivesNoScoringKind(t *testing.T) {
	var ps PlayerSession
	require.NoError(t, json.Unmarshal([]byte(`{"playerId":"p2","won":false,"firstPlay":true}`), &ps))
	require.Equal(t, PlayerSessionNoScoring, ps.Kind)
	require.Nil(t, ps.Score)
	require.True(t, ps.FirstPlay)
}

func TestPlayerSession_UnmarshalRejectsInconsistentShape(t *testing.T) {
	var ps PlayerSession
	err := json.Unmarshal([]byte(`{"kind":"scoring","playerId":"p3","won":true}`), &ps)
	require.Error(t, err)
	require.Contains(t, err.Error(), "no score")

	err = json.Unmarshal([]byte(`{"kind":"noScoring","playerId":"p4","score":10}`), &ps)
	require.Error(t, err)
}

func TestPlayerSession_MarshalOmitsScoreForNoScoring(t *testing.T) {
	ps := PlayerSession{Kind: PlayerSessionNoScoring, PlayerID: "p1", Won: true}
	b, err := json.Marshal(ps)
	require.NoError(t, err)
	require.False(t, strings.Contains(string(b), "score"), "unexpected score in %s", b)
}

func TestSessionInput_Validate(t *testing.T) {
	score := 10.0
	valid := SessionInput{
		GameID:  "g1",
		Start:   timex.NewTime(time.Date(2024, 5, 1, 19, 0, 0, 0, time.UTC)),
		Minutes: 90,
		PlayerSessions: []PlayerSession{
			{Kind: PlayerSessionScoring, PlayerID: "p1", Score: &score, Won: true},
		},
	}
	require.True(t, valid.Validate().Valid())

	missing := SessionInput{}
	fe := missing.Validate()
	require.False(t, fe.Valid())
	require.Contains(t, fe, "gameId")
	require.Contains(t, fe, "start")
	require.Contains(t, fe, "playerSessions")
}

func TestGameInput_Validate(t *testing.T) {
	in := GameInput{Title: "Brass", State: GameStateOwned}
	require.True(t, in.Validate().Valid())

	bad := GameInput{State: GameState("lost")}
	fe := bad.Validate()
	require.Contains(t, fe, "title")
	require.Contains(t, fe, "state")

	r := -1.0
	badRating := GameInput{Title: "X", State: GameStateOwned, Rating: &r}
	require.Contains(t, badRating.Validate(), "rating")
}

func TestLoanInput_Validate(t *testing.T) {
	loanDate := timex.NewTime(time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC))
	due := timex.NewTime(time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC))
	in := LoanInput{GameID: "g1", PlayerID: "p1", LoanDate: loanDate, DueDate: &due}
	fe := in.Validate()
	require.Contains(t, fe, "dueDate")

	ok := LoanInput{GameID: "g1", PlayerID: "p1", LoanDate: loanDate}
	require.True(t, ok.Validate().Valid())
}
