package locale

import "golang.org/x/text/language/display"

// DisplayName is the locale's name in its own language, e.g. "Deutsch (Deutschland)".
func (l Locale) DisplayName() string {
	return display.Self.Name(l.tag)
}

// EnglishName is the locale's name in English, e.g. "German (Germany)".
func (l Locale) EnglishName() string {
	return display.English.Tags().Name(l.tag)
}
