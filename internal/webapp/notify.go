package webapp

import (
	"github.com/google/uuid"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Notification is a user-facing message produced by the web layer. The
// view-model layer only yields errors and reason codes; turning those into
// worded, localized messages happens here.
type Notification struct {
	ID      string `json:"id"`
	Level   string `json:"level"`
	Reason  string `json:"reason"`
	Message string `json:"message"`
}

const (
	LevelError   = "error"
	LevelWarning = "warning"
	LevelSuccess = "success"
)

func init() {
	for _, m := range []struct{ key, en, nl string }{
		{"backend_unavailable", "The server cannot be reached right now.", "De server is momenteel niet bereikbaar."},
		{"not_found", "That item does not exist (anymore).", "Dit item bestaat niet (meer)."},
		{"invalid_input", "Some fields are not filled in correctly.", "Sommige velden zijn niet juist ingevuld."},
		{"conflict", "This change conflicts with the current state.", "Deze wijziging botst met de huidige situatie."},
		{"internal_error", "Something went wrong. Please try again.", "Er ging iets mis. Probeer het opnieuw."},
		{"saved", "Changes saved.", "Wijzigingen opgeslagen."},
		{"deleted", "Item deleted.", "Item verwijderd."},
	} {
		_ = message.SetString(language.English, m.key, m.en)
		_ = message.SetString(language.Dutch, m.key, m.nl)
	}
}

// notify builds a Notification with a fresh id and the reason's localized
// message. Unknown reasons fall back to the reason code itself.
func notify(lang language.Tag, level, reason string) Notification {
	p := message.NewPrinter(lang)
	return Notification{
		ID:      uuid.NewString(),
		Level:   level,
		Reason:  reason,
		Message: p.Sprintf(reason),
	}
}
