package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/alecthomas/kong"

	"github.com/julianstephens/dateformatters/internal/cli"
	"github.com/julianstephens/dateformatters/internal/config"
	"github.com/julianstephens/dateformatters/internal/constants"
	"github.com/julianstephens/dateformatters/internal/errors"
	"github.com/julianstephens/dateformatters/internal/formatter"
	"github.com/julianstephens/dateformatters/internal/locale"
	"github.com/julianstephens/dateformatters/internal/logger"
)

var CLI struct {
	Version kong.VersionFlag
	Config  string `help:"Config file path." type:"path" default:"${config_path}" env:"DATEFORMATTERS_CONFIG"`
	Debug   bool   `help:"Log debug output to stderr."`

	Tui     cli.TuiCmd     `cmd:"" help:"Launch the interactive formatter playground." default:"withargs"`
	Format  cli.FormatCmd  `cmd:"" help:"Format a date once and print the result."`
	Styles  cli.StylesCmd  `cmd:"" help:"Show every date style and time style combination."`
	Locales cli.LocalesCmd `cmd:"" help:"List supported locales."`
	Explain cli.ExplainCmd `cmd:"" help:"Break a pattern into its fields."`
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name(constants.AppName),
		kong.Description("Experiment with date styles, patterns, AM/PM symbols and locales"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact:             true,
			NoExpandSubcommands: true,
		}),
		kong.Vars{
			"version":     constants.Version,
			"config_path": constants.DefaultConfigPath,
		},
	)

	cfg, err := config.Load(CLI.Config)
	errors.Fatal(err)

	if err := logger.Init(logger.Config{
		Debug:     CLI.Debug || cfg.Debug,
		ConfigDir: filepath.Dir(CLI.Config),
	}); err != nil {
		// Logging is optional; keep going without a log file
		fmt.Fprintf(os.Stderr, "Warning: logging disabled: %v\n", err)
	}

	defaultLocale := locale.FromEnv(os.Getenv, constants.DefaultLocale)
	logger.Debug("Resolved system locale", "locale", defaultLocale)

	appCtx := &cli.Context{
		Engine: formatter.New(defaultLocale),
		Config: cfg,
		Out:    os.Stdout,
	}

	errors.Fatal(ctx.Run(appCtx))
}
