package formatter

import (
	"fmt"
	"path"
	"strings"
	"time"
)

// shortZoneName is the zone abbreviation when the tz database has a real
// one ("UTC", "CET"), otherwise the short GMT offset. Numeric abbreviations
// such as "+03" are not names.
func shortZoneName(t time.Time) string {
	name, offset := t.Zone()
	if name == "" || strings.ContainsAny(name, "+-0123456789") {
		return gmtOffset(offset, false)
	}
	return name
}

func longZoneName(t time.Time) string {
	name, offset := t.Zone()
	if offset == 0 {
		switch name {
		case "UTC", "":
			return "Coordinated Universal Time"
		case "GMT":
			return "Greenwich Mean Time"
		}
	}
	return gmtOffset(offset, true)
}

func zoneID(t time.Time) string {
	return t.Location().String()
}

// exemplarCity is the last element of the zone ID, "America/New_York" → "New York".
func exemplarCity(t time.Time) string {
	return strings.ReplaceAll(path.Base(zoneID(t)), "_", " ")
}

// gmtOffset renders the localized GMT format: "GMT", "GMT-8" or "GMT-08:00".
func gmtOffset(offset int, long bool) string {
	if offset == 0 {
		return "GMT"
	}
	sign, h, m, _ := splitOffset(offset)
	if long {
		return fmt.Sprintf("GMT%c%02d:%02d", sign, h, m)
	}
	if m == 0 {
		return fmt.Sprintf("GMT%c%d", sign, h)
	}
	return fmt.Sprintf("GMT%c%d:%02d", sign, h, m)
}

// offsetString renders "+hhmm", or "+hh:mm" when extended.
func offsetString(offset int, extended, withSeconds bool) string {
	sign, h, m, s := splitOffset(offset)
	sep := ""
	if extended {
		sep = ":"
	}
	out := fmt.Sprintf("%c%02d%s%02d", sign, h, sep, m)
	if withSeconds && s != 0 {
		out += fmt.Sprintf("%s%02d", sep, s)
	}
	return out
}

// isoOffset renders the ISO 8601 X/x widths: +hh[mm], +hhmm, +hh:mm,
// +hhmm[ss], +hh:mm[:ss].
func isoOffset(offset, width int) string {
	sign, h, m, _ := splitOffset(offset)
	switch width {
	case 1:
		if m == 0 {
			return fmt.Sprintf("%c%02d", sign, h)
		}
		return fmt.Sprintf("%c%02d%02d", sign, h, m)
	case 2:
		return offsetString(offset, false, false)
	case 3:
		return offsetString(offset, true, false)
	case 4:
		return offsetString(offset, false, true)
	}
	return offsetString(offset, true, true)
}

func splitOffset(offset int) (sign rune, hours, minutes, seconds int) {
	sign = '+'
	if offset < 0 {
		sign = '-'
		offset = -offset
	}
	return sign, offset / 3600, offset % 3600 / 60, offset % 60
}
