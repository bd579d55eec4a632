package cli

import (
	"fmt"

	"github.com/julianstephens/dateformatters/internal/pattern"
)

// ExplainCmd breaks a pattern into tokens and shows what each renders to.
type ExplainCmd struct {
	Pattern  string `arg:"" help:"Pattern to explain, e.g. 'EEE, MMM d'."`
	Date     string `help:"Date to render." default:"now"`
	Timezone string `help:"IANA timezone, or 'Local'."`
	Locale   string `help:"Locale identifier; empty uses the system locale."`
}

func (c *ExplainCmd) Run(ctx *Context) error {
	opts, err := OptionFlags{Date: c.Date, Timezone: c.Timezone, Locale: c.Locale}.Resolve(ctx)
	if err != nil {
		return err
	}
	opts.Pattern = c.Pattern

	f := ctx.Engine.Configure(opts)
	var rows [][]string
	for _, p := range f.Pieces(opts.Date) {
		rows = append(rows, []string{p.Token.String(), pattern.Describe(p.Token), fmt.Sprintf("%q", p.Output)})
	}

	writeTable(ctx, []string{"TOKEN", "MEANING", "OUTPUT"}, rows)
	fmt.Fprintf(ctx.Out, "\n%s\n", f.Format(opts.Date))
	return nil
}
