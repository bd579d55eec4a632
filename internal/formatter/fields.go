package formatter

import (
	"fmt"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"github.com/julianstephens/dateformatters/internal/locale"
)

type renderer struct {
	t             time.Time
	loc           locale.Locale
	am, pm        string
	formatContext bool // pattern has a day field; month names take their format form
}

func (r renderer) field(letter rune, width int) string {
	t := r.t
	switch letter {
	case 'G':
		ce := t.Year() > 0
		switch {
		case width == 4:
			return r.loc.Era(ce, true)
		case width >= 5:
			return narrow(r.loc.Era(ce, false))
		}
		return r.loc.Era(ce, false)
	case 'y', 'U':
		return year(yearOfEra(t.Year()), width)
	case 'Y':
		isoYear, _ := t.ISOWeek()
		return year(isoYear, width)
	case 'u':
		return pad(t.Year(), width)
	case 'Q', 'q':
		return r.quarter(width)
	case 'M':
		return r.month(width, r.formatContext)
	case 'L':
		return r.month(width, false)
	case 'w':
		_, week := t.ISOWeek()
		return pad(week, width)
	case 'W':
		first := time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
		return pad((t.Day()-1+int(first.Weekday()))/7+1, width)
	case 'd':
		return pad(t.Day(), width)
	case 'D':
		return pad(t.YearDay(), width)
	case 'F':
		return pad((t.Day()-1)/7+1, width)
	case 'E':
		return r.weekday(width)
	case 'e', 'c':
		if width <= 2 {
			return pad(isoWeekday(t.Weekday()), width)
		}
		return r.weekday(width)
	case 'a':
		if t.Hour() < 12 {
			return r.am
		}
		return r.pm
	case 'h':
		h := t.Hour() % 12
		if h == 0 {
			h = 12
		}
		return pad(h, width)
	case 'H':
		return pad(t.Hour(), width)
	case 'K':
		return pad(t.Hour()%12, width)
	case 'k':
		h := t.Hour()
		if h == 0 {
			h = 24
		}
		return pad(h, width)
	case 'm':
		return pad(t.Minute(), width)
	case 's':
		return pad(t.Second(), width)
	case 'S':
		return fraction(t.Nanosecond(), width)
	case 'A':
		ms := ((t.Hour()*60+t.Minute())*60+t.Second())*1000 + t.Nanosecond()/int(time.Millisecond)
		return pad(ms, width)
	case 'z':
		if width >= 4 {
			return longZoneName(t)
		}
		return shortZoneName(t)
	case 'Z':
		_, offset := t.Zone()
		switch {
		case width <= 3:
			return offsetString(offset, false, false)
		case width == 4:
			return gmtOffset(offset, true)
		}
		if offset == 0 {
			return "Z"
		}
		return offsetString(offset, true, false)
	case 'O':
		_, offset := t.Zone()
		return gmtOffset(offset, width >= 4)
	case 'v':
		if width >= 4 {
			return zoneID(t)
		}
		return shortZoneName(t)
	case 'V':
		switch width {
		case 1, 2:
			return zoneID(t)
		case 3:
			return exemplarCity(t)
		}
		return exemplarCity(t) + " Time"
	case 'X', 'x':
		_, offset := t.Zone()
		if letter == 'X' && offset == 0 {
			return "Z"
		}
		return isoOffset(offset, width)
	}
	return strings.Repeat(string(letter), width)
}

func (r renderer) month(width int, formatContext bool) string {
	switch width {
	case 1, 2:
		return pad(int(r.t.Month()), width)
	case 3:
		return r.loc.Month(r.t, true, formatContext)
	case 4:
		return r.loc.Month(r.t, false, formatContext)
	}
	return narrow(r.loc.Month(r.t, false, false))
}

func (r renderer) weekday(width int) string {
	switch {
	case width <= 3:
		return r.loc.Weekday(r.t, true)
	case width == 4:
		return r.loc.Weekday(r.t, false)
	case width == 5:
		return narrow(r.loc.Weekday(r.t, false))
	}
	return firstRunes(r.loc.Weekday(r.t, false), 2)
}

var englishQuarters = [4]string{"1st quarter", "2nd quarter", "3rd quarter", "4th quarter"}

func (r renderer) quarter(width int) string {
	q := (int(r.t.Month())-1)/3 + 1
	switch width {
	case 1, 5:
		return pad(q, 1)
	case 2:
		return pad(q, 2)
	case 4:
		if strings.HasPrefix(r.loc.ID(), "en_") {
			return englishQuarters[q-1]
		}
	}
	return fmt.Sprintf("%s%d", r.loc.QuarterPrefix(), q)
}

// yearOfEra converts an astronomical year to the era-relative year (year 0 is 1 BC).
func yearOfEra(y int) int {
	if y <= 0 {
		return 1 - y
	}
	return y
}

// year renders y for a field of the given width; width 2 truncates to two digits.
func year(y, width int) string {
	if width == 2 {
		return pad(y%100, 2)
	}
	return pad(y, width)
}

func pad(n, width int) string {
	if n < 0 {
		return "-" + pad(-n, width)
	}
	return fmt.Sprintf("%0*d", width, n)
}

// fraction truncates nanoseconds to width digits, right-padding past nine.
func fraction(nanos, width int) string {
	digits := fmt.Sprintf("%09d", nanos)
	if width <= len(digits) {
		return digits[:width]
	}
	return digits + strings.Repeat("0", width-len(digits))
}

func isoWeekday(wd time.Weekday) int {
	if wd == time.Sunday {
		return 7
	}
	return int(wd)
}

func narrow(s string) string {
	r, _ := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return ""
	}
	return string(unicode.ToUpper(r))
}

func firstRunes(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
