// Package models defines the collection records as the backend emits them,
// plus the input DTOs and their client-side validation.
package models

// GameState classifies where a game sits in the collection.
type GameState string

const (
	GameStateWanted          GameState = "wanted"
	GameStateOwned           GameState = "owned"
	GameStatePreviouslyOwned GameState = "previouslyOwned"
	GameStateNotOwned        GameState = "notOwned"
	GameStateForTrade        GameState = "forTrade"
)

// Range is a min/max pair, e.g. supported player counts or play time.
type Range struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

// GameSummary is the reduced shape used for expansion links.
type GameSummary struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	Image string `json:"image,omitempty"`
}

// Game is a collection entry. Identity is server-assigned.
type Game struct {
	ID          string        `json:"id"`
	Title       string        `json:"title"`
	State       GameState     `json:"state"`
	Image       string        `json:"image,omitempty"`
	Price       *float64      `json:"price,omitempty"`
	Categories  []string      `json:"categories,omitempty"`
	Mechanics   []string      `json:"mechanics,omitempty"`
	PlayerCount Range         `json:"playerCount"`
	PlayTime    Range         `json:"playTime"`
	MinAge      int           `json:"minAge,omitempty"`
	Rating      *float64      `json:"rating,omitempty"`
	Weight      *float64      `json:"weight,omitempty"`
	HasScoring  bool          `json:"hasScoring"`
	BGGID       *int64        `json:"bggId,omitempty"`
	Expansions  []GameSummary `json:"expansions,omitempty"`
	// ActiveLoanID is set while the game is lent out.
	ActiveLoanID string `json:"activeLoanId,omitempty"`
}

// GameInput is the payload for create/update calls.
type GameInput struct {
	Title       string    `json:"title"`
	State       GameState `json:"state"`
	Price       *float64  `json:"price,omitempty"`
	Categories  []string  `json:"categories,omitempty"`
	Mechanics   []string  `json:"mechanics,omitempty"`
	PlayerCount Range     `json:"playerCount"`
	PlayTime    Range     `json:"playTime"`
	MinAge      int       `json:"minAge,omitempty"`
	Rating      *float64  `json:"rating,omitempty"`
	Weight      *float64  `json:"weight,omitempty"`
	HasScoring  bool      `json:"hasScoring"`
	BGGID       *int64    `json:"bggId,omitempty"`
}

var validGameStates = map[GameState]struct{}{
	GameStateWanted:          {},
	GameStateOwned:           {},
	GameStatePreviouslyOwned: {},
	GameStateNotOwned:        {},
	GameStateForTrade:        {},
}

// Validate checks the input before it is allowed near the network.
// It returns a field→message map; an empty map means the input is valid.
func (in GameInput) Validate() FieldErrors {
	fe := FieldErrors{}
	if in.Title == "" {
		fe["title"] = "title is required"
	}
	if _, ok := validGameStates[in.State]; !ok {
		fe["state"] = "unknown game state"
	}
	if in.PlayerCount.Min < 0 || (in.PlayerCount.Max > 0 && in.PlayerCount.Max < in.PlayerCount.Min) {
		fe["playerCount"] = "invalid player count range"
	}
	if in.PlayTime.Min < 0 || (in.PlayTime.Max > 0 && in.PlayTime.Max < in.PlayTime.Min) {
		fe["playTime"] = "invalid play time range"
	}
	if in.Rating != nil && (*in.Rating < 0 || *in.Rating > 10) {
		fe["rating"] = "rating must be between 0 and 10"
	}
	if in.Price != nil && *in.Price < 0 {
		fe["price"] = "price cannot be negative"
	}
	return fe
}

// FieldErrors maps form field names to validation messages.
type FieldErrors map[string]string

// Valid reports whether no field failed validation.
func (fe FieldErrors) Valid() bool { return len(fe) == 0 }
