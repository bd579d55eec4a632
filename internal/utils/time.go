package utils

import (
	"fmt"
	"strings"
	"time"

	"github.com/julianstephens/dateformatters/internal/constants"
)

// dateInputLayouts are tried in order by ParseDateInput.
var dateInputLayouts = []string{
	constants.DateInputFormat,
	constants.DateMinuteFormat,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	constants.DateFormat,
}

// LoadLocation loads a timezone location from an IANA timezone name.
// If the timezone is "Local" or empty, it returns the system's local timezone.
func LoadLocation(timezone string) (*time.Location, error) {
	if timezone == "" || timezone == "Local" {
		return time.Local, nil
	}
	return time.LoadLocation(timezone)
}

// ValidateTimezone checks if the timezone name is valid.
func ValidateTimezone(timezone string) bool {
	_, err := LoadLocation(timezone)
	return err == nil
}

// ParseDateInput parses a user-supplied date. It accepts "now", RFC 3339
// and the layouts in dateInputLayouts; values without an offset are read
// in loc. now supplies the current instant so callers control the clock.
func ParseDateInput(input string, loc *time.Location, now time.Time) (time.Time, error) {
	s := strings.TrimSpace(input)
	if s == "" || strings.EqualFold(s, constants.NowKeyword) {
		return now.In(loc), nil
	}

	if t, err := time.Parse(time.RFC3339Nano, s); err == nil {
		return t, nil
	}

	for _, layout := range dateInputLayouts {
		if t, err := time.ParseInLocation(layout, s, loc); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid date %q, use 'now', RFC 3339 or YYYY-MM-DD[ HH:MM[:SS]]", input)
}

// FormatDateInput renders t in the primary layout ParseDateInput accepts.
func FormatDateInput(t time.Time) string {
	return t.Format(constants.DateInputFormat)
}
