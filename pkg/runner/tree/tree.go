package tree

import (
	"context"
	"errors"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"

	"tableflip.dev/retain/pkg/platform/headless"
	"tableflip.dev/retain/pkg/printers"
	"tableflip.dev/retain/pkg/render"
	"tableflip.dev/retain/pkg/screen"
	"tableflip.dev/retain/pkg/store"
)

// Tree renders the settings screen into an in-memory toolkit and prints the
// resulting object tree.
type Tree struct {
	ShowHints   bool
	ShowCalls   bool
	Persistence store.Persistence
	// Out defaults to color.Output.
	Out io.Writer
}

func (t *Tree) Do(_ context.Context) error {
	if t.Persistence == nil {
		return errors.New("can not render, no persistence")
	}
	out := t.Out
	if out == nil {
		if fd := os.Stdout.Fd(); !isatty.IsTerminal(fd) && !isatty.IsCygwinTerminal(fd) {
			color.NoColor = true
		}
		out = color.Output
	}

	tk := headless.New()
	root := tk.Root("Settings")
	s := screen.New(screen.Bind(t.Persistence))
	defer s.Close()
	s.Render(render.New(tk, root))

	pp := printers.PrettyPrint{ShowHints: t.ShowHints, Out: out}
	pp.Tree(tk.Tree, root)

	if t.ShowCalls {
		pp.NewLine()
		pp.TitleWithCount("toolkit calls", len(tk.Calls()))
		for _, c := range tk.Calls() {
			_, _ = io.WriteString(out, c.String()+"\n")
		}
	}
	return nil
}
