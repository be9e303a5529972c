package tuigo

import (
	"github.com/marcusolsson/tui-go"

	"tableflip.dev/retain/pkg/platform"
)

// FocusChain moves focus between the usable dropdowns below a root. It is
// recomputed on every move, so widgets created or disabled by later renders
// are picked up.
type FocusChain struct {
	tk   *Toolkit
	root platform.Handle
}

var _ tui.FocusChain = (*FocusChain)(nil)

// NewFocusChain returns a focus chain over the dropdowns below root.
func NewFocusChain(tk *Toolkit, root platform.Handle) *FocusChain {
	return &FocusChain{tk: tk, root: root}
}

// FocusNext implements tui.FocusChain.
func (f *FocusChain) FocusNext(w tui.Widget) tui.Widget {
	ws := f.tk.Focusable(f.root)
	if len(ws) == 0 {
		return nil
	}
	for i, c := range ws {
		if c == w {
			return ws[(i+1)%len(ws)]
		}
	}
	return ws[0]
}

// FocusPrev implements tui.FocusChain.
func (f *FocusChain) FocusPrev(w tui.Widget) tui.Widget {
	ws := f.tk.Focusable(f.root)
	if len(ws) == 0 {
		return nil
	}
	for i, c := range ws {
		if c == w {
			return ws[(i+len(ws)-1)%len(ws)]
		}
	}
	return ws[len(ws)-1]
}

// FocusDefault implements tui.FocusChain.
func (f *FocusChain) FocusDefault() tui.Widget {
	ws := f.tk.Focusable(f.root)
	if len(ws) == 0 {
		return nil
	}
	return ws[0]
}

// Theme returns the styles the toolkit's widgets refer to.
func Theme() *tui.Theme {
	t := tui.NewTheme()
	t.SetStyle("label."+StyleTitle, tui.Style{Bold: tui.DecorationOn})
	t.SetStyle("label."+StyleDisabled, tui.Style{Fg: tui.ColorBlack, Bold: tui.DecorationOff})
	t.SetStyle("label."+StyleHint, tui.Style{Fg: tui.ColorCyan})
	t.SetStyle("table.cell.selected", tui.Style{Reverse: tui.DecorationOn})
	return t
}
