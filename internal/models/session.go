package models

import (
	"encoding/json"
	"fmt"

	"github.com/meeplelog/meeplelog/internal/timex"
)

// PlayerSessionKind tags the two shapes a participation record can take.
// Scoring games carry a score per player; non-scoring games only record
// won/first-play flags.
type PlayerSessionKind string

const (
	PlayerSessionScoring   PlayerSessionKind = "scoring"
	PlayerSessionNoScoring PlayerSessionKind = "noScoring"
)

// PlayerSession is one player's participation in a Session. It has no
// identity outside its session. The wire format is a flat object with an
// optional "score"; the kind tag is derived at the boundary so the rest of
// the code never has to re-check field presence.
type PlayerSession struct {
	Kind      PlayerSessionKind `json:"kind"`
	PlayerID  string            `json:"playerId"`
	Score     *float64          `json:"score,omitempty"`
	Won       bool              `json:"won"`
	FirstPlay bool              `json:"firstPlay"`
}

type playerSessionWire struct {
	Kind      PlayerSessionKind `json:"kind"`
	PlayerID  string            `json:"playerId"`
	Score     *float64          `json:"score,omitempty"`
	Won       bool              `json:"won"`
	FirstPlay bool              `json:"firstPlay"`
}

func (ps *PlayerSession) UnmarshalJSON(b []byte) error {
	var w playerSessionWire
	if err := json.Unmarshal(b, &w); err != nil {
		return err
	}
	kind := w.Kind
	if kind == "" {
		if w.Score != nil {
			kind = PlayerSessionScoring
		} else {
			kind = PlayerSessionNoScoring
		}
	}
	out := PlayerSession{
		Kind:      kind,
		PlayerID:  w.PlayerID,
		Score:     w.Score,
		Won:       w.Won,
		FirstPlay: w.FirstPlay,
	}
	if err := out.validateShape(); err != nil {
		return err
	}
	*ps = out
	return nil
}

func (ps PlayerSession) MarshalJSON() ([]byte, error) {
	if err := ps.validateShape(); err != nil {
		return nil, err
	}
	return json.Marshal(playerSessionWire(ps))
}

func (ps PlayerSession) validateShape() error {
	switch ps.Kind {
	case PlayerSessionScoring:
		if ps.Score == nil {
			return fmt.Errorf("scoring player session %q has no score", ps.PlayerID)
		}
	case PlayerSessionNoScoring:
		if ps.Score != nil {
			return fmt.Errorf("non-scoring player session %q carries a score", ps.PlayerID)
		}
	default:
		return fmt.Errorf("unknown player session kind %q", ps.Kind)
	}
	return nil
}

// Session records one play of a game.
type Session struct {
	ID             string          `json:"id"`
	GameID         string          `json:"gameId"`
	LocationID     string          `json:"locationId,omitempty"`
	Start          timex.Time      `json:"start"`
	Minutes        int             `json:"minutes"`
	Comment        string          `json:"comment,omitempty"`
	PlayerSessions []PlayerSession `json:"playerSessions"`
}

// SessionInput is the payload for create/update calls.
type SessionInput struct {
	GameID         string          `json:"gameId"`
	LocationID     string          `json:"locationId,omitempty"`
	Start          timex.Time      `json:"start"`
	Minutes        int             `json:"minutes"`
	Comment        string          `json:"comment,omitempty"`
	PlayerSessions []PlayerSession `json:"playerSessions"`
}

func (in SessionInput) Validate() FieldErrors {
	fe := FieldErrors{}
	if in.GameID == "" {
		fe["gameId"] = "game is required"
	}
	if in.Start.IsZero() {
		fe["start"] = "start time is required"
	}
	if in.Minutes < 0 {
		fe["minutes"] = "duration cannot be negative"
	}
	if len(in.PlayerSessions) == 0 {
		fe["playerSessions"] = "at least one player is required"
	}
	for _, ps := range in.PlayerSessions {
		if ps.PlayerID == "" {
			fe["playerSessions"] = "every participant needs a player"
			break
		}
		if err := ps.validateShape(); err != nil {
			fe["playerSessions"] = err.Error()
			break
		}
	}
	return fe
}
