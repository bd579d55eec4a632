package models

import "time"

// FormatOptions is one snapshot of the user-editable formatting inputs.
// Empty strings mean "not set" for Pattern, AMSymbol, PMSymbol and Locale.
type FormatOptions struct {
	Date      time.Time // the instant to render
	DateStyle Style     // verbosity of the date portion
	TimeStyle Style     // verbosity of the time portion
	Pattern   string    // custom pattern, overrides both styles when set
	AMSymbol  string    // replaces the locale's AM designator when set
	PMSymbol  string    // replaces the locale's PM designator when set
	Locale    string    // locale identifier such as "en_US"; empty selects the default locale
}

// DefaultOptions returns the initial snapshot: short date, short time, everything else unset.
func DefaultOptions(now time.Time) FormatOptions {
	return FormatOptions{
		Date:      now,
		DateStyle: StyleShort,
		TimeStyle: StyleShort,
	}
}

// UsesStyles reports whether the rendering is driven by the presets rather than a custom pattern.
func (o FormatOptions) UsesStyles() bool {
	return o.Pattern == ""
}
