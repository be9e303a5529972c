// Package key prints the legend of the symbols used by `retain tree`.
package key

import (
	"context"
	"fmt"
	"io"
	"sort"

	"github.com/fatih/color"

	"tableflip.dev/retain/pkg/glyph"
	"tableflip.dev/retain/pkg/printers"
)

// Key prints the glyph legend.
type Key struct {
	// Out defaults to color.Output.
	Out io.Writer
}

// Do renders the kind and state keys.
func (k *Key) Do(_ context.Context) error {
	out := k.Out
	if out == nil {
		out = color.Output
	}
	pp := printers.PrettyPrint{Out: out}

	all := glyph.Legend()
	sort.Sort(glyph.ByOrder(all))

	var kinds, states []glyph.Glyph
	for _, g := range all {
		if g.State {
			states = append(states, g)
		} else {
			kinds = append(kinds, g)
		}
	}

	_, _ = fmt.Fprintln(out, "")
	pp.Title("Objects")
	pp.Legend(kinds)
	pp.Title("States")
	pp.Legend(states)
	return nil
}
