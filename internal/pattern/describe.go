package pattern

var fieldNames = map[rune]string{
	'G': "era",
	'y': "year",
	'Y': "week-based year",
	'u': "extended year",
	'U': "cyclic year",
	'Q': "quarter",
	'q': "stand-alone quarter",
	'M': "month",
	'L': "stand-alone month",
	'w': "week of year",
	'W': "week of month",
	'd': "day of month",
	'D': "day of year",
	'F': "day of week in month",
	'E': "day of week",
	'e': "local day of week",
	'c': "stand-alone local day of week",
	'a': "AM/PM marker",
	'h': "hour (1-12)",
	'H': "hour (0-23)",
	'K': "hour (0-11)",
	'k': "hour (1-24)",
	'm': "minute",
	's': "second",
	'S': "fractional second",
	'A': "milliseconds in day",
	'z': "time zone name",
	'Z': "time zone offset (RFC 822 / ISO 8601)",
	'O': "localized GMT offset",
	'v': "generic time zone",
	'V': "time zone ID",
	'X': "ISO 8601 offset (Z for zero)",
	'x': "ISO 8601 offset",
}

// Known reports whether letter is a field the formatter renders. Unknown
// letters are echoed as-is.
func Known(letter rune) bool {
	_, ok := fieldNames[letter]
	return ok
}

// Describe returns a human-readable name for a token.
func Describe(t Token) string {
	if t.Kind == Literal {
		return "literal"
	}
	if !Known(t.Letter) {
		return "unknown field (rendered literally)"
	}
	return fieldNames[t.Letter]
}
