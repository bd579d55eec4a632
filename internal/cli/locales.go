package cli

import (
	"github.com/julianstephens/dateformatters/internal/locale"
	"github.com/julianstephens/dateformatters/internal/models"
)

// LocalesCmd lists the supported locales with a sample rendering of the date.
type LocalesCmd struct {
	Date     string `help:"Date used for the sample column." default:"now"`
	Timezone string `help:"IANA timezone for the sample date, or 'Local'."`
}

func (c *LocalesCmd) Run(ctx *Context) error {
	opts, err := OptionFlags{Date: c.Date, Timezone: c.Timezone}.Resolve(ctx)
	if err != nil {
		return err
	}
	opts.Pattern = ""
	opts.DateStyle = models.StyleMedium
	opts.TimeStyle = models.StyleShort

	defaultID := ctx.Engine.DefaultLocale().ID()
	var rows [][]string
	for _, l := range locale.Supported() {
		opts.Locale = l.ID()
		id := l.ID()
		if id == defaultID {
			id += " *"
		}
		rows = append(rows, []string{id, l.EnglishName(), l.DisplayName(), ctx.Engine.Format(opts)})
	}

	writeTable(ctx, []string{"ID", "NAME", "NATIVE", "SAMPLE"}, rows)
	return nil
}
