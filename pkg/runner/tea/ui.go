package teaui

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/v2/help"
	"github.com/charmbracelet/bubbles/v2/key"
	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/lipgloss/v2"
	"github.com/muesli/reflow/truncate"
	"github.com/muesli/reflow/wordwrap"

	"tableflip.dev/retain/pkg/platform"
	"tableflip.dev/retain/pkg/platform/headless"
	"tableflip.dev/retain/pkg/platform/objtree"
	"tableflip.dev/retain/pkg/render"
	"tableflip.dev/retain/pkg/screen"
	"tableflip.dev/retain/pkg/settings"
	"tableflip.dev/retain/pkg/store"
	"tableflip.dev/retain/pkg/tui/theme"
)

const (
	defaultWidth = 80
	labelWidth   = 18
)

// Model hosts the settings screen. Components render into an in-memory
// toolkit; View draws that object tree with Lip Gloss.
type Model struct {
	p   store.Persistence
	ctx context.Context

	tk     *headless.Toolkit
	root   platform.Handle
	rctx   *render.Context
	screen *screen.Screen
	reg    *settings.Registry

	focus platform.Handle

	keys  keyMap
	help  help.Model
	theme theme.Theme

	status    string
	statusErr bool

	watchCh     <-chan store.Event
	watchCancel context.CancelFunc

	width  int
	height int
}

// New renders the screen bound to p and returns the model hosting it.
func New(p store.Persistence) *Model {
	tk := headless.New()
	root := tk.Root("retain")
	values := screen.Bind(p)

	m := &Model{
		p:      p,
		ctx:    context.Background(),
		tk:     tk,
		root:   root,
		rctx:   render.New(tk, root),
		screen: screen.New(values),
		reg:    values.Registry(),
		keys:   defaultKeys(),
		help:   help.New(),
		theme:  theme.Default(),
		width:  defaultWidth,
	}
	m.screen.Render(m.rctx)
	if ds := m.dropdowns(); len(ds) > 0 {
		m.focus = ds[0]
	}
	return m
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return startWatchCmd(m.ctx, m.p)
}

type watchStartedMsg struct {
	ch     <-chan store.Event
	cancel context.CancelFunc
	err    error
}

type watchEventMsg struct {
	event store.Event
}

type watchStoppedMsg struct{}

func startWatchCmd(parent context.Context, p store.Persistence) tea.Cmd {
	if p == nil {
		return nil
	}
	return func() tea.Msg {
		ctx, cancel := context.WithCancel(parent)
		ch, err := p.Watch(ctx)
		if err != nil {
			cancel()
			return watchStartedMsg{err: err}
		}
		return watchStartedMsg{ch: ch, cancel: cancel}
	}
}

func (m *Model) waitForWatch() tea.Cmd {
	if m.watchCh == nil {
		return nil
	}
	ch := m.watchCh
	return func() tea.Msg {
		if ev, ok := <-ch; ok {
			return watchEventMsg{event: ev}
		}
		return watchStoppedMsg{}
	}
}

func (m *Model) stopWatch() {
	if m.watchCancel != nil {
		m.watchCancel()
		m.watchCancel = nil
	}
	m.watchCh = nil
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	case watchStartedMsg:
		if msg.err != nil {
			m.setError(fmt.Errorf("watch: %w", msg.err))
			return m, nil
		}
		m.watchCh = msg.ch
		m.watchCancel = msg.cancel
		return m, m.waitForWatch()
	case watchEventMsg:
		if m.reg.Dispatch(msg.event) {
			m.screen.Render(m.rctx)
			m.ensureFocus()
		}
		return m, m.waitForWatch()
	case watchStoppedMsg:
		m.stopWatch()
	case tea.KeyPressMsg:
		return m, m.handleKey(msg)
	}
	return m, nil
}

func (m *Model) handleKey(msg tea.KeyPressMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.stopWatch()
		m.screen.Close()
		return tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	case key.Matches(msg, m.keys.Up):
		m.moveFocus(-1)
	case key.Matches(msg, m.keys.Down):
		m.moveFocus(1)
	case key.Matches(msg, m.keys.Prev):
		m.step(-1)
	case key.Matches(msg, m.keys.Next):
		m.step(1)
	}
	return nil
}

// dropdowns returns every live dropdown in screen order.
func (m *Model) dropdowns() []platform.Handle {
	var out []platform.Handle
	m.tk.Walk(m.root, func(_ int, o *objtree.Object) bool {
		if o.Kind == objtree.KindDropdown {
			out = append(out, o.Handle)
		}
		return true
	})
	return out
}

func (m *Model) moveFocus(delta int) {
	ds := m.dropdowns()
	if len(ds) == 0 {
		m.focus = platform.None
		return
	}
	i := 0
	for j, h := range ds {
		if h == m.focus {
			i = j
			break
		}
	}
	i = (i + delta + len(ds)) % len(ds)
	m.focus = ds[i]
	m.status = ""
}

// ensureFocus moves focus to the first dropdown when the focused one was
// destroyed by the last render.
func (m *Model) ensureFocus() {
	if m.tk.Alive(m.focus) {
		return
	}
	m.focus = platform.None
	if ds := m.dropdowns(); len(ds) > 0 {
		m.focus = ds[0]
	}
}

// step plays the user picking the neighbouring option of the focused
// dropdown.
func (m *Model) step(delta int) {
	o, ok := m.tk.Get(m.focus)
	if !ok || len(o.Options) == 0 {
		return
	}
	next := (o.Selected + delta + len(o.Options)) % len(o.Options)
	if err := m.tk.Choose(o.Handle, next); err != nil {
		if errors.Is(err, headless.ErrNotSelectable) {
			m.setError(fmt.Errorf("%s can not be changed right now", o.Text))
			return
		}
		m.setError(err)
		return
	}
	m.status = fmt.Sprintf("%s: %s", o.Text, o.Options[next])
	m.statusErr = false
	m.ensureFocus()
}

func (m *Model) setError(err error) {
	m.status = err.Error()
	m.statusErr = true
}

// View implements tea.Model.
func (m *Model) View() string {
	width := m.width
	if width <= 0 {
		width = defaultWidth
	}
	inner := width - m.theme.Panel.Frame.GetHorizontalFrameSize()
	if inner < labelWidth+8 {
		inner = labelWidth + 8
	}

	var b strings.Builder
	m.tk.Walk(m.root, func(depth int, o *objtree.Object) bool {
		switch o.Kind {
		case objtree.KindRoot:
			b.WriteString(m.theme.Panel.Title.Render(o.Text))
			b.WriteString("\n")
		case objtree.KindContainer:
			b.WriteString("\n")
			b.WriteString(m.theme.Panel.Section.Render(o.Text))
			b.WriteString("\n")
		case objtree.KindDropdown:
			b.WriteString(m.row(o, inner))
			b.WriteString("\n")
			if o.Handle == m.focus {
				if hint, ok := m.tk.Find(o.Handle, objtree.KindHint); ok {
					wrapped := wordwrap.String(hint.Text, inner-2)
					b.WriteString(m.theme.Row.Hint.Render(indent(wrapped, "  ")))
					b.WriteString("\n")
				}
			}
			return false
		}
		return true
	})

	body := m.theme.Panel.Frame.Width(width).Render(strings.TrimRight(b.String(), "\n"))

	status := m.theme.Footer.Status.Render(m.status)
	if m.statusErr {
		status = m.theme.Footer.Error.Render(m.status)
	}
	footer := lipgloss.JoinVertical(lipgloss.Left, status, m.theme.Footer.Help.Render(m.help.View(m.keys)))
	return lipgloss.JoinVertical(lipgloss.Left, body, footer)
}

func (m *Model) row(o *objtree.Object, width int) string {
	label := truncate.StringWithTail(o.Text, labelWidth, "…")
	label += strings.Repeat(" ", labelWidth-lipgloss.Width(label))

	value := ""
	if o.Selected >= 0 && o.Selected < len(o.Options) {
		value = o.Options[o.Selected]
	}
	value = truncate.StringWithTail(fmt.Sprintf("‹ %s ›", value), uint(width-labelWidth-2), "…")

	cursor := "  "
	if o.Handle == m.focus {
		cursor = "> "
	}

	switch {
	case !o.Enabled:
		return cursor + m.theme.Row.Disabled.Render(label+value)
	case !o.Interactable:
		return cursor + m.theme.Row.Locked.Render(label+value)
	case o.Handle == m.focus:
		return cursor + m.theme.Row.Label.Render(label) + m.theme.Row.Focused.Render(value)
	default:
		return cursor + m.theme.Row.Label.Render(label) + m.theme.Row.Value.Render(value)
	}
}

func indent(s, prefix string) string {
	lines := strings.Split(s, "\n")
	for i, l := range lines {
		lines[i] = prefix + l
	}
	return strings.Join(lines, "\n")
}
