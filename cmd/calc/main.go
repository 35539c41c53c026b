package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"

	"github.com/comalice/calcx/internal/config"
	"github.com/comalice/calcx/internal/production"
)

var version = "dev"

// Globals are flags shared by every command, plus the process streams.
type Globals struct {
	Config  string           `short:"c" help:"Configuration file path" default:"calc.yaml" type:"path"`
	Verbose bool             `short:"v" help:"Enable verbose logging"`
	Version kong.VersionFlag `name:"version" help:"Show version and exit"`

	In     io.Reader `kong:"-"`
	Out    io.Writer `kong:"-"`
	ErrOut io.Writer `kong:"-"`
}

type CLI struct {
	Globals

	Eval EvalCmd `cmd:"" help:"Press the given keys on a fresh calculator and print the result"`
	Repl ReplCmd `cmd:"" help:"Read keys line by line from stdin and print the display after each change"`
}

// session is what every command needs after configuration is resolved.
type session struct {
	cfg       *config.Config
	logger    *slog.Logger
	formatter *production.Formatter
}

func (g *Globals) setup() (*session, error) {
	if g.In == nil {
		g.In = os.Stdin
	}
	if g.Out == nil {
		g.Out = os.Stdout
	}
	if g.ErrOut == nil {
		g.ErrOut = os.Stderr
	}

	cfg, err := config.Load(g.Config)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	logger := cfg.Logging.NewLogger(g.ErrOut, g.Verbose)
	slog.SetDefault(logger)

	tag, err := cfg.Language()
	if err != nil {
		return nil, fmt.Errorf("parse locale: %w", err)
	}
	return &session{cfg: cfg, logger: logger, formatter: production.NewFormatter(tag)}, nil
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("calc"),
		kong.Description("Four-function calculator driven by key presses."),
		kong.UsageOnError(),
		kong.Vars{"version": version},
	)
	err := ctx.Run(&cli.Globals)
	ctx.FatalIfErrorf(err)
}
