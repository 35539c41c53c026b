package main

import (
	"encoding/json"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/comalice/calcx"
	"github.com/comalice/calcx/internal/core"
	"github.com/comalice/calcx/internal/logfields"
	"github.com/comalice/calcx/internal/primitives"
	"github.com/comalice/calcx/internal/production"
)

// EvalCmd implements the 'eval' command.
type EvalCmd struct {
	Format string   `short:"f" default:"text" help:"Output format (text, yaml or json)" enum:"text,yaml,json"`
	Keys   []string `arg:"" help:"Keys to press, e.g. 12+3= or 1 2 + 3 ="`
}

type evalOutput struct {
	State   calcx.State        `json:"state" yaml:"state"`
	Display production.Display `json:"display" yaml:"display"`
}

// Run executes the eval command.
func (e *EvalCmd) Run(g *Globals) error {
	sess, err := g.setup()
	if err != nil {
		return err
	}

	events, err := primitives.ParseKeys(strings.Join(e.Keys, " "))
	if err != nil {
		return err
	}

	calc := calcx.New()
	for _, event := range events {
		t, err := core.Apply(calc.Store(), event)
		if err != nil {
			return err
		}
		if t.Evaluated && !t.Computed {
			sess.logger.Warn("expression not computable", logfields.Input(event.String()))
		}
	}

	state := calc.State()
	display := sess.formatter.Render(state)
	switch e.Format {
	case "yaml":
		enc := yaml.NewEncoder(g.Out)
		if err := enc.Encode(evalOutput{State: state, Display: display}); err != nil {
			return err
		}
		return enc.Close()
	case "json":
		enc := json.NewEncoder(g.Out)
		enc.SetIndent("", "  ")
		return enc.Encode(evalOutput{State: state, Display: display})
	default:
		_, err := fmt.Fprintln(g.Out, display.String())
		return err
	}
}
