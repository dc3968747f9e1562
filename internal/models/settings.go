package models

// FeatureToggles enables optional parts of the UI.
type FeatureToggles struct {
	Wishlist bool `json:"wishlist"`
	Loans    bool `json:"loans"`
	Prices   bool `json:"prices"`
	// ShelfOfShame flags games unplayed beyond ShelfOfShameMonths.
	ShelfOfShame       bool `json:"shelfOfShame"`
	ShelfOfShameMonths int  `json:"shelfOfShameMonths"`
}

// Settings is process-wide display configuration. It is fetched once,
// cached, and threaded explicitly into every formatting call, never read
// from ambient globals.
type Settings struct {
	DateFormat       string         `json:"dateFormat"`
	TimeFormat       string         `json:"timeFormat"`
	Currency         string         `json:"currency"`
	DecimalSeparator string         `json:"decimalSeparator"`
	Language         string         `json:"language"`
	Features         FeatureToggles `json:"features"`
}

// DefaultSettings is the snapshot used before the backend copy arrives.
func DefaultSettings() Settings {
	return Settings{
		DateFormat:       "yyyy-MM-dd",
		TimeFormat:       "HH:mm",
		Currency:         "€",
		DecimalSeparator: ",",
		Language:         "en",
		Features: FeatureToggles{
			Wishlist:           true,
			Loans:              true,
			Prices:             true,
			ShelfOfShame:       false,
			ShelfOfShameMonths: 6,
		},
	}
}

// SettingsInput is the payload of the single settings update call.
type SettingsInput struct {
	DateFormat       string         `json:"dateFormat"`
	TimeFormat       string         `json:"timeFormat"`
	Currency         string         `json:"currency"`
	DecimalSeparator string         `json:"decimalSeparator"`
	Language         string         `json:"language"`
	Features         FeatureToggles `json:"features"`
}

func (in SettingsInput) Validate() FieldErrors {
	fe := FieldErrors{}
	if in.DateFormat == "" {
		fe["dateFormat"] = "date format is required"
	}
	if in.Language == "" {
		fe["language"] = "language is required"
	}
	if in.Features.ShelfOfShame && in.Features.ShelfOfShameMonths <= 0 {
		fe["shelfOfShameMonths"] = "threshold must be at least one month"
	}
	return fe
}

// Environment is read-only runtime information published by the backend.
type Environment struct {
	Version  string          `json:"version"`
	LogLevel string          `json:"logLevel"`
	Flags    map[string]bool `json:"flags,omitempty"`
}
