package cli

import (
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/julianstephens/dateformatters/internal/models"
)

// StylesCmd prints every date style / time style combination.
type StylesCmd struct {
	OptionFlags `embed:""`
}

func (c *StylesCmd) Run(ctx *Context) error {
	opts, err := c.Resolve(ctx)
	if err != nil {
		return err
	}
	// The matrix is about presets; a configured pattern would flatten it
	opts.Pattern = ""

	var rows [][]string
	for _, ds := range models.AllStyles {
		for _, ts := range models.AllStyles {
			opts.DateStyle, opts.TimeStyle = ds, ts
			f := ctx.Engine.Prepare(opts)
			rows = append(rows, []string{ds.String(), ts.String(), f.EffectivePattern(), f.Format(opts.Date)})
		}
	}

	f := ctx.Engine.Configure(opts)
	fmt.Fprintf(ctx.Out, "Locale: %s\n\n", f.Locale.ID())
	writeTable(ctx, []string{"DATE", "TIME", "PATTERN", "RESULT"}, rows)
	return nil
}

// writeTable left-aligns columns by display width so CJK text lines up.
func writeTable(ctx *Context, header []string, rows [][]string) {
	widths := make([]int, len(header))
	for i, h := range header {
		widths[i] = runewidth.StringWidth(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			if w := runewidth.StringWidth(cell); w > widths[i] {
				widths[i] = w
			}
		}
	}

	writeRow := func(cells []string) {
		var b strings.Builder
		for i, cell := range cells {
			if i == len(cells)-1 {
				b.WriteString(cell)
				break
			}
			b.WriteString(runewidth.FillRight(cell, widths[i]))
			b.WriteString("  ")
		}
		fmt.Fprintln(ctx.Out, strings.TrimRight(b.String(), " "))
	}

	writeRow(header)
	for _, row := range rows {
		writeRow(row)
	}
}
