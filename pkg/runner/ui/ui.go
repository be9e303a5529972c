package ui

import (
	"context"
	"errors"
	"os"

	"github.com/marcusolsson/tui-go"
	"github.com/mattn/go-isatty"

	"tableflip.dev/retain/pkg/platform/tuigo"
	"tableflip.dev/retain/pkg/render"
	"tableflip.dev/retain/pkg/screen"
	"tableflip.dev/retain/pkg/store"
)

// UI runs the settings screen on tui-go.
type UI struct {
	Persistence store.Persistence
}

func (d *UI) Do(ctx context.Context) error {
	if d.Persistence == nil {
		return errors.New("classic: no persistence")
	}
	if fd := os.Stdout.Fd(); !isatty.IsTerminal(fd) && !isatty.IsCygwinTerminal(fd) {
		return errors.New("classic: stdout is not a terminal, try `retain tree`")
	}

	tk := tuigo.New()
	rootHandle, rootBox := tk.Root("retain")

	status := tui.NewStatusBar("")
	status.SetPermanentText(`TAB to move, arrows to choose, ESC or 'q' to QUIT`)

	root := tui.NewVBox(
		rootBox,
		tui.NewSpacer(),
		status,
	)

	ui, err := tui.New(root)
	if err != nil {
		return err
	}
	ui.SetTheme(tuigo.Theme())

	values := screen.Bind(d.Persistence)
	s := screen.New(values)
	defer s.Close()
	rctx := render.New(tk, rootHandle)
	s.Render(rctx)

	chain := tuigo.NewFocusChain(tk, rootHandle)
	ui.SetFocusChain(chain)
	if w := chain.FocusDefault(); w != nil {
		w.SetFocused(true)
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	events, err := d.Persistence.Watch(ctx)
	if err != nil {
		return err
	}
	reg := values.Registry()
	go func() {
		for ev := range events {
			ev := ev
			ui.Update(func() {
				if reg.Dispatch(ev) {
					s.Render(rctx)
					status.SetText(ev.Name + " changed elsewhere")
				}
			})
		}
	}()

	ui.SetKeybinding("Esc", func() { ui.Quit() })
	ui.SetKeybinding("q", func() { ui.Quit() })

	return ui.Run()
}
