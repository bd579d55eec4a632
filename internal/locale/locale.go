// Package locale resolves locale identifiers to the data the formatter needs:
// style patterns, AM/PM designators and localized month and weekday names.
package locale

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/goodsign/monday"
	"golang.org/x/text/language"

	"github.com/julianstephens/dateformatters/internal/models"
	"github.com/julianstephens/dateformatters/internal/pattern"
)

// ErrUnknownLocale is returned when an identifier cannot be matched to any supported locale.
var ErrUnknownLocale = errors.New("unknown locale")

// Locale is a resolved, immutable locale.
type Locale struct {
	def   *definition
	tag   language.Tag
	names monday.Locale
}

var (
	supported []Locale
	byID      = map[string]Locale{}
	matcher   language.Matcher
)

func init() {
	known := map[monday.Locale]bool{}
	for _, l := range monday.ListLocales() {
		known[l] = true
	}

	var tags []language.Tag
	for i := range definitions {
		def := &definitions[i]
		if !known[monday.Locale(def.id)] {
			continue
		}
		tag := language.MustParse(strings.ReplaceAll(def.id, "_", "-"))
		l := Locale{def: def, tag: tag, names: monday.Locale(def.id)}
		supported = append(supported, l)
		byID[def.id] = l
		tags = append(tags, tag)
	}
	matcher = language.NewMatcher(tags)
}

// Supported lists every locale the resolver can return, in table order.
func Supported() []Locale {
	out := make([]Locale, len(supported))
	copy(out, supported)
	return out
}

// Normalize turns POSIX and BCP 47 spellings into a BCP 47 string:
// "en_US.UTF-8" and "en_US@euro" both become "en-US".
func Normalize(identifier string) string {
	id := strings.TrimSpace(identifier)
	if i := strings.IndexAny(id, ".@"); i >= 0 {
		id = id[:i]
	}
	return strings.ReplaceAll(id, "_", "-")
}

// Resolve maps an identifier to the closest supported locale. Exact
// identifiers like "de_DE" are returned directly; others ("de", "de-AT",
// "en-AU") go through language matching and must share the language of the
// locale they match.
func Resolve(identifier string) (Locale, error) {
	if l, ok := byID[strings.TrimSpace(identifier)]; ok {
		return l, nil
	}

	normalized := Normalize(identifier)
	if normalized == "" {
		return Locale{}, fmt.Errorf("%w: empty identifier", ErrUnknownLocale)
	}
	tag, err := language.Parse(normalized)
	if err != nil {
		return Locale{}, fmt.Errorf("%w: %q: %v", ErrUnknownLocale, identifier, err)
	}

	_, index, confidence := matcher.Match(tag)
	if confidence == language.No || index < 0 || index >= len(supported) {
		return Locale{}, fmt.Errorf("%w: %q", ErrUnknownLocale, identifier)
	}
	// The matcher falls back to the first supported tag for languages it has
	// no data for, so only regional and script variants of a table language count.
	want, _ := tag.Base()
	got, _ := supported[index].tag.Base()
	if want != got {
		return Locale{}, fmt.Errorf("%w: %q has no %s data", ErrUnknownLocale, identifier, want)
	}
	return supported[index], nil
}

// MustResolve is Resolve for identifiers known to be valid, such as the
// entries of the built-in table.
func MustResolve(identifier string) Locale {
	l, err := Resolve(identifier)
	if err != nil {
		panic(err)
	}
	return l
}

// FromEnv derives the process default locale from LC_ALL, LC_TIME and LANG,
// in that order. "C" and "POSIX" select the fallback.
func FromEnv(getenv func(string) string, fallback string) string {
	for _, key := range []string{"LC_ALL", "LC_TIME", "LANG"} {
		value := strings.TrimSpace(getenv(key))
		if value == "" {
			continue
		}
		base := value
		if i := strings.IndexAny(base, ".@"); i >= 0 {
			base = base[:i]
		}
		if base == "C" || base == "POSIX" || base == "" {
			return fallback
		}
		return base
	}
	return fallback
}

// ID is the POSIX-style identifier, e.g. "en_US".
func (l Locale) ID() string {
	if l.def == nil {
		return ""
	}
	return l.def.id
}

// Tag is the BCP 47 language tag.
func (l Locale) Tag() language.Tag {
	return l.tag
}

func (l Locale) DatePattern(s models.Style) string {
	if !s.Valid() {
		return ""
	}
	return l.def.date[s]
}

func (l Locale) TimePattern(s models.Style) string {
	if !s.Valid() {
		return ""
	}
	return l.def.time[s]
}

// Glue is the date-time combination pattern for a date style, where {1}
// is the date part and {0} the time part.
func (l Locale) Glue(dateStyle models.Style) string {
	if !dateStyle.Valid() {
		return l.def.glue[models.StyleMedium]
	}
	return l.def.glue[dateStyle]
}

// StylePattern composes the pattern the presets select. Both styles none
// yields an empty pattern.
func (l Locale) StylePattern(dateStyle, timeStyle models.Style) string {
	datePattern := l.DatePattern(dateStyle)
	timePattern := l.TimePattern(timeStyle)
	switch {
	case datePattern == "":
		return timePattern
	case timePattern == "":
		return datePattern
	}
	return pattern.Substitute(l.Glue(dateStyle), timePattern, datePattern)
}

func (l Locale) AMSymbol() string { return l.def.am }
func (l Locale) PMSymbol() string { return l.def.pm }

// QuarterPrefix precedes the digit in abbreviated quarters.
func (l Locale) QuarterPrefix() string { return l.def.quarter }

// Era returns the era designator; ce selects the common era.
func (l Locale) Era(ce, long bool) string {
	idx := 0
	if ce {
		idx = 1
	}
	if long {
		return l.def.longEras[idx]
	}
	return l.def.eras[idx]
}

// Month returns the localized month name. formatContext selects the form
// used next to a day number, which differs from the stand-alone form in
// languages with grammatical case.
func (l Locale) Month(t time.Time, abbreviated, formatContext bool) string {
	layout := "January"
	if abbreviated {
		layout = "Jan"
	}
	if formatContext {
		prefix := strconv.Itoa(t.Day()) + " "
		if s := monday.Format(t, "2 "+layout, l.names); strings.HasPrefix(s, prefix) {
			return strings.TrimPrefix(s, prefix)
		}
	}
	return monday.Format(t, layout, l.names)
}

// Weekday returns the localized weekday name.
func (l Locale) Weekday(t time.Time, abbreviated bool) string {
	if abbreviated {
		return monday.Format(t, "Mon", l.names)
	}
	return monday.Format(t, "Monday", l.names)
}
