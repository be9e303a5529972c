// Package screen is the settings screen: titled sections of dropdowns bound
// to persisted values. Both terminal hosts and the tree command render it.
package screen

import (
	"tableflip.dev/retain/pkg/components/dropdown"
	"tableflip.dev/retain/pkg/components/enumdropdown"
	"tableflip.dev/retain/pkg/components/section"
	"tableflip.dev/retain/pkg/key"
	"tableflip.dev/retain/pkg/platform"
	"tableflip.dev/retain/pkg/render"
	"tableflip.dev/retain/pkg/settings"
)

// Screen keeps its components between passes; each pass pushes the current
// values into them.
type Screen struct {
	values *Values

	difficulty *enumdropdown.Setting[Difficulty]
	assist     *enumdropdown.Setting[Toggle]
	quality    *enumdropdown.Setting[Quality]
	vsync      *enumdropdown.Setting[Toggle]
	frameLimit *dropdown.Setting
	colorMode  *enumdropdown.Setting[ColorMode]
	advanced   *enumdropdown.Setting[Toggle]
	logLevel   *enumdropdown.Setting[LogLevel]

	gameplay *section.Section
	display  *section.Section
	general  *section.Section
	debug    *section.Section

	root    *render.Context
	cancels []func()
}

// New builds the screen for v.
func New(v *Values) *Screen {
	s := &Screen{values: v}

	s.difficulty = bind(s, "Difficulty", Difficulties, v.Difficulty)
	s.assist = bind(s, "Assist mode", Toggles, v.Assist)
	s.quality = bind(s, "Quality", Qualities, v.Quality)
	s.vsync = bind(s, "VSync", Toggles, v.VSync)
	s.colorMode = bind(s, "Color mode", ColorModes, v.ColorMode)
	s.advanced = bind(s, "Show advanced", Toggles, v.Advanced)
	s.logLevel = bind(s, "Log level", LogLevels, v.LogLevel)

	s.frameLimit = dropdown.New(key.Named(v.FrameLimit.GetName()), "Frame limit", v.FrameLimit.GetValue(), FrameLimits,
		func(_ *dropdown.Setting, value string, _ platform.Handle, _ *render.Context) {
			v.FrameLimit.SetValue(value)
			s.refresh()
		})

	s.gameplay = section.New(key.Named("section/gameplay"), "Gameplay", s.difficulty, s.assist)
	s.display = section.New(key.Named("section/display"), "Display", s.quality, s.vsync, s.frameLimit)
	s.general = section.New(key.Named("section/general"), "General", s.colorMode, s.advanced)
	s.debug = section.New(key.Named("section/debug"), "Advanced", s.logLevel)

	s.assist.Inner().SetEnabled(v.Difficulty.GetValue() != Hard)
	s.frameLimit.SetInteractable(v.VSync.GetValue() == Off)
	s.cancels = append(s.cancels,
		v.Difficulty.OnChange(func(d Difficulty) {
			s.assist.Inner().SetEnabled(d != Hard)
		}),
		v.VSync.OnChange(func(t Toggle) {
			s.frameLimit.SetInteractable(t == Off)
		}),
	)
	return s
}

func bind[E comparable](s *Screen, label string, table *enumdropdown.Table[E], v *settings.Stored[E]) *enumdropdown.Setting[E] {
	d := enumdropdown.New(key.Named(v.GetName()), table, v,
		func(*enumdropdown.Setting[E], E, platform.Handle, *render.Context) {
			s.refresh()
		})
	d.Inner().SetLabel(label)
	return d
}

// Values returns the values the screen is bound to.
func (s *Screen) Values() *Values {
	return s.values
}

// Render renders every section into ctx. The advanced section only exists
// while "Show advanced" is on.
func (s *Screen) Render(ctx *render.Context) {
	s.root = ctx
	s.frameLimit.SetValue(s.values.FrameLimit.GetValue())

	render.RenderAll(ctx, s.gameplay, s.display, s.general)
	if s.values.Advanced.GetValue() == On {
		render.Render(ctx, s.debug)
	} else {
		s.debug.Collapse(ctx)
	}
}

// refresh re-renders after a user choice so dependent widgets follow.
func (s *Screen) refresh() {
	if s.root != nil {
		s.Render(s.root)
	}
}

// Close drops the value subscriptions.
func (s *Screen) Close() {
	for _, c := range s.cancels {
		c()
	}
	s.cancels = nil
}
