package theme

import (
	"github.com/charmbracelet/lipgloss/v2"
	colorful "github.com/lucasb-eyer/go-colorful"
	"github.com/muesli/termenv"
)

// Theme centralizes Lip Gloss styles for the Bubble Tea host.
type Theme struct {
	Panel   PanelTheme
	Row     RowTheme
	Footer  FooterTheme
	Palette Palette
}

// PanelTheme styles the screen frame and section headings.
type PanelTheme struct {
	Frame   lipgloss.Style
	Title   lipgloss.Style
	Section lipgloss.Style
}

// RowTheme styles one dropdown row.
type RowTheme struct {
	Label    lipgloss.Style
	Value    lipgloss.Style
	Focused  lipgloss.Style
	Disabled lipgloss.Style
	Locked   lipgloss.Style
	Hint     lipgloss.Style
}

// FooterTheme groups styles used by the bottom help/status bar.
type FooterTheme struct {
	Help   lipgloss.Style
	Status lipgloss.Style
	Error  lipgloss.Style
}

// Palette holds the hex colours the styles are derived from.
type Palette struct {
	Accent     string
	Background string
	Foreground string
	Muted      string
}

var (
	darkPalette = Palette{
		Accent:     "#ff87d7",
		Background: "#1c1c1c",
		Foreground: "#e4e4e4",
		Muted:      "#808080",
	}
	lightPalette = Palette{
		Accent:     "#af005f",
		Background: "#ffffff",
		Foreground: "#262626",
		Muted:      "#8a8a8a",
	}
)

// Default returns the theme matching the terminal background.
func Default() Theme {
	return ForBackground(termenv.HasDarkBackground())
}

// ForBackground returns the dark or light theme.
func ForBackground(dark bool) Theme {
	p := lightPalette
	if dark {
		p = darkPalette
	}
	return FromPalette(p)
}

// FromPalette derives every style from p. Widgets that cannot be used right
// now are drawn in the accent colour faded towards the background.
func FromPalette(p Palette) Theme {
	accent := lipgloss.Color(p.Accent)
	muted := lipgloss.Color(p.Muted)
	faded := lipgloss.Color(Blend(p.Accent, p.Background, 0.6))

	label := lipgloss.NewStyle().Foreground(lipgloss.Color(p.Foreground))

	return Theme{
		Panel: PanelTheme{
			Frame: lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(accent).
				Padding(0, 1),
			Title:   lipgloss.NewStyle().Bold(true).Foreground(accent),
			Section: lipgloss.NewStyle().Bold(true).Underline(true),
		},
		Row: RowTheme{
			Label:    label,
			Value:    lipgloss.NewStyle().Foreground(accent),
			Focused:  lipgloss.NewStyle().Foreground(accent).Bold(true).Reverse(true),
			Disabled: lipgloss.NewStyle().Foreground(muted).Strikethrough(true),
			Locked:   lipgloss.NewStyle().Foreground(faded),
			Hint:     lipgloss.NewStyle().Foreground(muted).Italic(true),
		},
		Footer: FooterTheme{
			Help:   lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
			Status: lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
			Error:  lipgloss.NewStyle().Foreground(lipgloss.Color("196")),
		},
		Palette: p,
	}
}

// Blend mixes two hex colours in Lab space; t=0 yields a, t=1 yields b.
// Unparseable input returns a unchanged.
func Blend(a, b string, t float64) string {
	ca, err := colorful.Hex(a)
	if err != nil {
		return a
	}
	cb, err := colorful.Hex(b)
	if err != nil {
		return a
	}
	return ca.BlendLab(cb, t).Clamped().Hex()
}
