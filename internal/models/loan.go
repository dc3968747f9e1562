package models

import "github.com/meeplelog/meeplelog/internal/timex"

// Loan tracks a game lent to a player. A nil ReturnedDate means the loan is
// still active.
type Loan struct {
	ID           string      `json:"id"`
	GameID       string      `json:"gameId"`
	PlayerID     string      `json:"playerId"`
	LoanDate     timex.Time  `json:"loanDate"`
	DueDate      *timex.Time `json:"dueDate,omitempty"`
	ReturnedDate *timex.Time `json:"returnedDate,omitempty"`
}

// Active reports whether the game is still out.
func (l Loan) Active() bool { return l.ReturnedDate == nil }

// LoanInput is the payload for lending a game.
type LoanInput struct {
	GameID   string      `json:"gameId"`
	PlayerID string      `json:"playerId"`
	LoanDate timex.Time  `json:"loanDate"`
	DueDate  *timex.Time `json:"dueDate,omitempty"`
}

func (in LoanInput) Validate() FieldErrors {
	fe := FieldErrors{}
	if in.GameID == "" {
		fe["gameId"] = "game is required"
	}
	if in.PlayerID == "" {
		fe["playerId"] = "player is required"
	}
	if in.LoanDate.IsZero() {
		fe["loanDate"] = "loan date is required"
	}
	if in.DueDate != nil && !in.DueDate.IsZero() && in.DueDate.Before(in.LoanDate.Time) {
		fe["dueDate"] = "due date cannot precede the loan date"
	}
	return fe
}
