package models

import (
	"fmt"
	"strings"
)

// Style is a preset verbosity level for the date or time portion of a rendering.
// Values are ordered from least to most verbose.
type Style int

const (
	StyleNone Style = iota
	StyleShort
	StyleMedium
	StyleLong
	StyleFull
)

// AllStyles lists every style in verbosity order.
var AllStyles = []Style{StyleNone, StyleShort, StyleMedium, StyleLong, StyleFull}

var styleNames = map[Style]string{
	StyleNone:   "none",
	StyleShort:  "short",
	StyleMedium: "medium",
	StyleLong:   "long",
	StyleFull:   "full",
}

func (s Style) String() string {
	if name, ok := styleNames[s]; ok {
		return name
	}
	return fmt.Sprintf("style(%d)", int(s))
}

// Label is the capitalized name shown in pickers.
func (s Style) Label() string {
	name, ok := styleNames[s]
	if !ok {
		return "Unknown"
	}
	return strings.ToUpper(name[:1]) + name[1:]
}

// Valid reports whether s is one of the five defined levels.
func (s Style) Valid() bool {
	_, ok := styleNames[s]
	return ok
}

// ParseStyle parses a style name case-insensitively.
func ParseStyle(s string) (Style, error) {
	needle := strings.ToLower(strings.TrimSpace(s))
	for _, style := range AllStyles {
		if styleNames[style] == needle {
			return style, nil
		}
	}
	return StyleNone, fmt.Errorf("invalid style %q (want one of none, short, medium, long, full)", s)
}

func (s Style) MarshalText() ([]byte, error) {
	if !s.Valid() {
		return nil, fmt.Errorf("invalid style %d", int(s))
	}
	return []byte(s.String()), nil
}

func (s *Style) UnmarshalText(text []byte) error {
	parsed, err := ParseStyle(string(text))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}
