package format

import (
	"golang.org/x/text/feature/plural"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// The UI currently ships English and Dutch. Unknown language codes fall
// back to English.
var (
	langEnglish = language.English
	langDutch   = language.Dutch
)

// ParseLanguage maps a settings language code onto a supported tag.
func ParseLanguage(code string) language.Tag {
	tag, err := language.Parse(code)
	if err != nil {
		return langEnglish
	}
	switch {
	case tag == langDutch:
		return langDutch
	default:
		return langEnglish
	}
}

func setPlural(tag language.Tag, key, one, other string) {
	_ = message.Set(tag, key, plural.Selectf(1, "",
		plural.One, one,
		plural.Other, other,
	))
}

func init() {
	// duration units
	setPlural(langEnglish, "%d weeks", "%d week", "%d weeks")
	setPlural(langEnglish, "%d days", "%d day", "%d days")
	setPlural(langEnglish, "%d hours", "%d hour", "%d hours")
	setPlural(langEnglish, "%d minutes", "%d minute", "%d minutes")

	setPlural(langDutch, "%d weeks", "%d week", "%d weken")
	setPlural(langDutch, "%d days", "%d dag", "%d dagen")
	setPlural(langDutch, "%d hours", "%d uur", "%d uur")
	setPlural(langDutch, "%d minutes", "%d minuut", "%d minuten")

	// relative dates
	_ = message.SetString(langEnglish, "today", "today")
	_ = message.SetString(langEnglish, "yesterday", "yesterday")
	setPlural(langEnglish, "%d days ago", "%d day ago", "%d days ago")
	setPlural(langEnglish, "%d weeks ago", "%d week ago", "%d weeks ago")
	setPlural(langEnglish, "%d months ago", "%d month ago", "%d months ago")
	setPlural(langEnglish, "%d years ago", "%d year ago", "%d years ago")

	_ = message.SetString(langDutch, "today", "vandaag")
	_ = message.SetString(langDutch, "yesterday", "gisteren")
	setPlural(langDutch, "%d days ago", "%d dag geleden", "%d dagen geleden")
	setPlural(langDutch, "%d weeks ago", "%d week geleden", "%d weken geleden")
	setPlural(langDutch, "%d months ago", "%d maand geleden", "%d maanden geleden")
	setPlural(langDutch, "%d years ago", "%d jaar geleden", "%d jaar geleden")
}

func printer(tag language.Tag) *message.Printer {
	return message.NewPrinter(tag)
}
