// Package formatter renders dates from a snapshot of formatting options.
package formatter

import (
	"strings"
	"time"

	"github.com/julianstephens/dateformatters/internal/constants"
	"github.com/julianstephens/dateformatters/internal/locale"
	"github.com/julianstephens/dateformatters/internal/logger"
	"github.com/julianstephens/dateformatters/internal/models"
	"github.com/julianstephens/dateformatters/internal/pattern"
)

// Formatter is a fully configured, single-use date formatter. Empty
// Pattern, AMSymbol and PMSymbol fall back to the styles and the locale.
type Formatter struct {
	DateStyle models.Style
	TimeStyle models.Style
	Pattern   string
	AMSymbol  string
	PMSymbol  string
	Locale    locale.Locale

	fallback bool
}

// LocaleFallback reports whether the requested locale identifier did not
// resolve and Locale holds the engine default instead.
func (f Formatter) LocaleFallback() bool {
	return f.fallback
}

// EffectivePattern is the pattern Format renders: the custom pattern when
// set, otherwise the locale's composition of the two styles.
func (f Formatter) EffectivePattern() string {
	if f.Pattern != "" {
		return f.Pattern
	}
	return f.Locale.StylePattern(f.DateStyle, f.TimeStyle)
}

// Piece pairs a pattern token with its rendered text.
type Piece struct {
	Token  pattern.Token
	Output string
}

// Pieces renders t token by token.
func (f Formatter) Pieces(t time.Time) []Piece {
	tokens := pattern.Tokenize(f.EffectivePattern())
	if len(tokens) == 0 {
		return nil
	}

	r := renderer{
		t:             t,
		loc:           f.Locale,
		am:            f.AMSymbol,
		pm:            f.PMSymbol,
		formatContext: pattern.HasField(tokens, "d"),
	}
	if r.am == "" {
		r.am = f.Locale.AMSymbol()
	}
	if r.pm == "" {
		r.pm = f.Locale.PMSymbol()
	}

	pieces := make([]Piece, 0, len(tokens))
	for _, tok := range tokens {
		out := tok.Text
		if tok.Kind == pattern.Field {
			out = r.field(tok.Letter, tok.Width)
		}
		pieces = append(pieces, Piece{Token: tok, Output: out})
	}
	return pieces
}

// Format renders t. It never fails; unknown pattern letters are echoed.
func (f Formatter) Format(t time.Time) string {
	var b strings.Builder
	for _, p := range f.Pieces(t) {
		b.WriteString(p.Output)
	}
	return b.String()
}

// Engine builds a Formatter per call. The default locale is fixed at
// construction so Format depends only on its argument.
type Engine struct {
	defaultLocale locale.Locale
}

// New returns an Engine whose default locale is the given identifier. An
// unresolvable identifier falls back to the built-in default.
func New(defaultLocale string) *Engine {
	l, err := locale.Resolve(defaultLocale)
	if err != nil {
		logger.Warn("Default locale not supported, using fallback", "locale", defaultLocale, "fallback", constants.DefaultLocale, "error", err)
		l = locale.MustResolve(constants.DefaultLocale)
	}
	return &Engine{defaultLocale: l}
}

// DefaultLocale is the locale used when options leave Locale empty.
func (e *Engine) DefaultLocale() locale.Locale {
	return e.defaultLocale
}

// ResolveLocale resolves an identifier the way Format does: empty or
// unresolvable identifiers yield the default locale. The boolean reports
// whether the identifier itself resolved.
func (e *Engine) ResolveLocale(identifier string) (locale.Locale, bool) {
	if identifier == "" {
		return e.defaultLocale, true
	}
	l, err := locale.Resolve(identifier)
	if err != nil {
		return e.defaultLocale, false
	}
	return l, true
}

// Prepare applies the options to a fresh Formatter: styles first, then
// the custom pattern, the AM and PM overrides, and finally the locale.
// It never logs; see Configure.
func (e *Engine) Prepare(opts models.FormatOptions) Formatter {
	f := Formatter{
		DateStyle: opts.DateStyle,
		TimeStyle: opts.TimeStyle,
	}
	if !opts.UsesStyles() {
		f.Pattern = opts.Pattern
	}
	if opts.AMSymbol != "" {
		f.AMSymbol = opts.AMSymbol
	}
	if opts.PMSymbol != "" {
		f.PMSymbol = opts.PMSymbol
	}
	l, ok := e.ResolveLocale(opts.Locale)
	f.Locale = l
	f.fallback = !ok
	return f
}

// Configure is Prepare plus a warning when the locale falls back.
func (e *Engine) Configure(opts models.FormatOptions) Formatter {
	f := e.Prepare(opts)
	if f.LocaleFallback() {
		WarnFallback(opts.Locale, f.Locale)
	}
	return f
}

// WarnFallback logs that identifier was replaced by the default locale.
func WarnFallback(identifier string, used locale.Locale) {
	logger.Warn("Locale not recognized, using default", "locale", identifier, "default", used.ID())
}

// Format renders opts.Date under opts.
func (e *Engine) Format(opts models.FormatOptions) string {
	return e.Configure(opts).Format(opts.Date)
}
