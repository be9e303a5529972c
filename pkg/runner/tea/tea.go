package teaui

import (
	"context"
	"errors"
	"os"

	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/mattn/go-isatty"

	"tableflip.dev/retain/pkg/store"
)

// Tea runs the settings screen as a Bubble Tea program.
type Tea struct {
	Persistence store.Persistence
}

// Do runs until the user quits or ctx is done.
func (t *Tea) Do(ctx context.Context) error {
	if t.Persistence == nil {
		return errors.New("ui: no persistence")
	}
	if fd := os.Stdout.Fd(); !isatty.IsTerminal(fd) && !isatty.IsCygwinTerminal(fd) {
		return errors.New("ui: stdout is not a terminal, try `retain tree`")
	}
	m := New(t.Persistence)
	m.ctx = ctx
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := p.Run()
	return err
}
