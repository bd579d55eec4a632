package cli

import (
	"fmt"
	"io"
	"time"

	"github.com/julianstephens/dateformatters/internal/config"
	"github.com/julianstephens/dateformatters/internal/formatter"
	"github.com/julianstephens/dateformatters/internal/models"
	"github.com/julianstephens/dateformatters/internal/utils"
)

type Context struct {
	Engine *formatter.Engine
	Config *config.Config
	Now    func() time.Time
	Out    io.Writer
}

// OptionFlags are the inputs shared by every command that renders a date.
// Empty flags fall back to the config file, then to the built-in defaults.
type OptionFlags struct {
	Date      string `help:"Date to format: 'now', RFC 3339, or YYYY-MM-DD[ HH:MM[:SS]]." default:"now"`
	Timezone  string `help:"IANA timezone for dates without an offset, or 'Local'." env:"DATEFORMATTERS_TIMEZONE"`
	Locale    string `help:"Locale identifier such as en_US; empty uses the system locale." env:"DATEFORMATTERS_LOCALE"`
	DateStyle string `help:"Date style: none, short, medium, long or full." name:"date-style"`
	TimeStyle string `help:"Time style: none, short, medium, long or full." name:"time-style"`
	Pattern   string `help:"Custom pattern, e.g. 'EEE, MMM d, yyyy h:mm a'. Overrides both styles." short:"p"`
	AM        string `help:"AM symbol override." name:"am"`
	PM        string `help:"PM symbol override." name:"pm"`
}

// Resolve merges flags over the configured defaults into a snapshot.
func (f OptionFlags) Resolve(ctx *Context) (models.FormatOptions, error) {
	cfg := ctx.Config
	if cfg == nil {
		cfg = config.NewDefault()
	}

	timezone := f.Timezone
	if timezone == "" {
		timezone = cfg.Timezone
	}
	loc, err := utils.LoadLocation(timezone)
	if err != nil {
		return models.FormatOptions{}, fmt.Errorf("invalid timezone %q: %w", timezone, err)
	}

	date, err := utils.ParseDateInput(f.Date, loc, ctx.now())
	if err != nil {
		return models.FormatOptions{}, err
	}

	opts, err := cfg.Options(date)
	if err != nil {
		return models.FormatOptions{}, err
	}

	if f.DateStyle != "" {
		if opts.DateStyle, err = models.ParseStyle(f.DateStyle); err != nil {
			return models.FormatOptions{}, fmt.Errorf("--date-style: %w", err)
		}
	}
	if f.TimeStyle != "" {
		if opts.TimeStyle, err = models.ParseStyle(f.TimeStyle); err != nil {
			return models.FormatOptions{}, fmt.Errorf("--time-style: %w", err)
		}
	}
	if f.Pattern != "" {
		opts.Pattern = f.Pattern
	}
	if f.AM != "" {
		opts.AMSymbol = f.AM
	}
	if f.PM != "" {
		opts.PMSymbol = f.PM
	}
	if f.Locale != "" {
		opts.Locale = f.Locale
	}
	return opts, nil
}

func (ctx *Context) now() time.Time {
	if ctx.Now != nil {
		return ctx.Now()
	}
	return time.Now()
}
