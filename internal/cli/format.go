package cli

import (
	"fmt"

	"github.com/julianstephens/dateformatters/internal/logger"
)

type FormatCmd struct {
	OptionFlags `embed:""`
}

func (c *FormatCmd) Run(ctx *Context) error {
	opts, err := c.Resolve(ctx)
	if err != nil {
		return err
	}

	f := ctx.Engine.Configure(opts)
	logger.Debug("Formatting", "pattern", f.EffectivePattern(), "locale", f.Locale.ID())

	fmt.Fprintln(ctx.Out, f.Format(opts.Date))
	return nil
}
