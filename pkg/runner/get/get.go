package get

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/fatih/color"

	"tableflip.dev/retain/pkg/printers"
	"tableflip.dev/retain/pkg/screen"
	"tableflip.dev/retain/pkg/store"
)

// Get prints stored settings.
type Get struct {
	// Names limits the output; empty prints everything.
	Names       []string
	JSON        bool
	ShowHints   bool
	Persistence store.Persistence
	// Out defaults to color.Output.
	Out io.Writer
}

func (g *Get) Do(_ context.Context) error {
	if g.Persistence == nil {
		return errors.New("can not get, no persistence")
	}
	out := g.Out
	if out == nil {
		out = color.Output
	}

	fields, err := g.fields(screen.Bind(g.Persistence))
	if err != nil {
		return err
	}

	if g.JSON {
		m := make(map[string]string, len(fields))
		for _, f := range fields {
			m[f.GetName()] = f.Current()
		}
		b, err := json.MarshalIndent(m, "", "  ")
		if err != nil {
			return err
		}
		_, _ = fmt.Fprintln(out, string(b))
		return nil
	}

	pp := printers.PrettyPrint{ShowHints: g.ShowHints, Out: out}
	pp.TitleWithCount("settings", len(fields))
	pf := make([]printers.Field, 0, len(fields))
	for _, f := range fields {
		pf = append(pf, f)
	}
	pp.Values(pf...)
	return nil
}

func (g *Get) fields(v *screen.Values) ([]screen.Field, error) {
	if len(g.Names) == 0 {
		return v.Fields(), nil
	}
	out := make([]screen.Field, 0, len(g.Names))
	for _, n := range g.Names {
		f, ok := v.Lookup(n)
		if !ok {
			return nil, fmt.Errorf("unknown setting %q", n)
		}
		out = append(out, f)
	}
	return out, nil
}
