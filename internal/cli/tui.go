package cli

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/julianstephens/dateformatters/internal/logger"
	"github.com/julianstephens/dateformatters/internal/tui"
)

type TuiCmd struct {
	OptionFlags `embed:""`
}

func (c *TuiCmd) Run(ctx *Context) error {
	opts, err := c.Resolve(ctx)
	if err != nil {
		return err
	}

	logger.Info("Starting TUI", "locale", ctx.Engine.DefaultLocale().ID())
	p := tea.NewProgram(tui.NewModel(ctx.Engine, opts), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running TUI: %w", err)
	}
	return nil
}
