package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/huh"

	"github.com/julianstephens/dateformatters/internal/locale"
	"github.com/julianstephens/dateformatters/internal/models"
	"github.com/julianstephens/dateformatters/internal/utils"
)

func styleOptions() []huh.Option[models.Style] {
	opts := make([]huh.Option[models.Style], 0, len(models.AllStyles))
	for _, s := range models.AllStyles {
		opts = append(opts, huh.NewOption(s.Label(), s))
	}
	return opts
}

func localeSuggestions() []string {
	var ids []string
	for _, l := range locale.Supported() {
		ids = append(ids, l.ID())
	}
	return ids
}

func newForm(fm *FormFields, loc *time.Location) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Date").
				Description("now, RFC 3339 or YYYY-MM-DD HH:MM:SS").
				Value(&fm.Date).
				Validate(func(s string) error {
					if _, err := utils.ParseDateInput(s, loc, time.Now()); err != nil {
						return fmt.Errorf("invalid date, use YYYY-MM-DD HH:MM:SS")
					}
					return nil
				}),
			huh.NewSelect[models.Style]().
				Title("Date style").
				Options(styleOptions()...).
				Inline(true).
				Value(&fm.DateStyle),
			huh.NewSelect[models.Style]().
				Title("Time style").
				Options(styleOptions()...).
				Inline(true).
				Value(&fm.TimeStyle),
			huh.NewInput().
				Title("Date format").
				Placeholder("i.e: EEE, yyyy, MM, dd, hh:mm a").
				Value(&fm.Pattern),
			huh.NewInput().
				Title("AM symbol").
				Placeholder("am").
				Value(&fm.AMSymbol),
			huh.NewInput().
				Title("PM symbol").
				Placeholder("pm").
				Value(&fm.PMSymbol),
			huh.NewInput().
				Title("Locale identifier").
				Placeholder("en_US").
				Suggestions(localeSuggestions()).
				Value(&fm.Locale),
		),
	).WithShowHelp(true)
}
