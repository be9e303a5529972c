package screen

import (
	"fmt"
	"strings"

	"tableflip.dev/retain/pkg/components/enumdropdown"
	"tableflip.dev/retain/pkg/settings"
	"tableflip.dev/retain/pkg/store"
)

type Difficulty int

const (
	Easy Difficulty = iota
	Normal
	Hard
)

type Quality int

const (
	Low Quality = iota
	Medium
	High
	Ultra
)

type Toggle int

const (
	Off Toggle = iota
	On
)

type ColorMode int

const (
	System ColorMode = iota
	Dark
	Light
)

type LogLevel int

const (
	LogError LogLevel = iota
	LogWarn
	LogInfo
	LogDebug
)

var (
	Difficulties = enumdropdown.NewTable(
		enumdropdown.Pair[Difficulty]{Value: Easy, Name: "Easy"},
		enumdropdown.Pair[Difficulty]{Value: Normal, Name: "Normal"},
		enumdropdown.Pair[Difficulty]{Value: Hard, Name: "Hard"},
	)
	Qualities = enumdropdown.NewTable(
		enumdropdown.Pair[Quality]{Value: Low, Name: "Low"},
		enumdropdown.Pair[Quality]{Value: Medium, Name: "Medium"},
		enumdropdown.Pair[Quality]{Value: High, Name: "High"},
		enumdropdown.Pair[Quality]{Value: Ultra, Name: "Ultra"},
	)
	Toggles = enumdropdown.NewTable(
		enumdropdown.Pair[Toggle]{Value: Off, Name: "Off"},
		enumdropdown.Pair[Toggle]{Value: On, Name: "On"},
	)
	ColorModes = enumdropdown.NewTable(
		enumdropdown.Pair[ColorMode]{Value: System, Name: "System"},
		enumdropdown.Pair[ColorMode]{Value: Dark, Name: "Dark"},
		enumdropdown.Pair[ColorMode]{Value: Light, Name: "Light"},
	)
	LogLevels = enumdropdown.NewTable(
		enumdropdown.Pair[LogLevel]{Value: LogError, Name: "Error"},
		enumdropdown.Pair[LogLevel]{Value: LogWarn, Name: "Warn"},
		enumdropdown.Pair[LogLevel]{Value: LogInfo, Name: "Info"},
		enumdropdown.Pair[LogLevel]{Value: LogDebug, Name: "Debug"},
	)

	// FrameLimits are the choices of the free form frame limit setting.
	FrameLimits = []string{"30", "60", "120", "Unlimited"}
)

// Values are the persisted settings shown on the screen.
type Values struct {
	Difficulty *settings.Stored[Difficulty]
	Assist     *settings.Stored[Toggle]
	Quality    *settings.Stored[Quality]
	VSync      *settings.Stored[Toggle]
	FrameLimit *settings.Stored[string]
	ColorMode  *settings.Stored[ColorMode]
	Advanced   *settings.Stored[Toggle]
	LogLevel   *settings.Stored[LogLevel]
}

// Bind binds every value to p.
func Bind(p store.Persistence) *Values {
	return &Values{
		Difficulty: settings.New(p, "difficulty", Normal,
			settings.WithHoverHint("How hard enemies hit and how scarce supplies are.")),
		Assist: settings.New(p, "assist", Off,
			settings.WithHoverHint("Slows time while aiming. Not available on Hard.")),
		Quality: settings.New(p, "quality", High,
			settings.WithHoverHint("Overall rendering quality.")),
		VSync: settings.New(p, "vsync", On,
			settings.WithHoverHint("Waits for the display before presenting a frame.")),
		FrameLimit: settings.New(p, "frame-limit", "60",
			settings.WithHoverHint("Only adjustable with VSync off.")),
		ColorMode: settings.New(p, "color-mode", System),
		Advanced:  settings.New(p, "advanced", Off),
		LogLevel: settings.New(p, "log-level", LogWarn,
			settings.WithHoverHint("Verbosity of the diagnostic log.")),
	}
}

// Fields returns the string level view of every value, in screen order.
func (v *Values) Fields() []Field {
	return []Field{
		enumField[Difficulty]{v.Difficulty, Difficulties},
		enumField[Toggle]{v.Assist, Toggles},
		enumField[Quality]{v.Quality, Qualities},
		enumField[Toggle]{v.VSync, Toggles},
		stringField{v.FrameLimit, FrameLimits},
		enumField[ColorMode]{v.ColorMode, ColorModes},
		enumField[Toggle]{v.Advanced, Toggles},
		enumField[LogLevel]{v.LogLevel, LogLevels},
	}
}

// Registry indexes the values for store event dispatch.
func (v *Values) Registry() *settings.Registry {
	r := settings.NewRegistry()
	for _, f := range v.Fields() {
		r.Add(f)
	}
	return r
}

// Field is a setting as the command line sees it: a name and a choice of
// strings.
type Field interface {
	settings.Entry
	Current() string
	Choices() []string
	Choose(name string) error
}

// Lookup returns the field named name.
func (v *Values) Lookup(name string) (Field, bool) {
	for _, f := range v.Fields() {
		if f.GetName() == name {
			return f, true
		}
	}
	return nil, false
}

type enumField[E comparable] struct {
	*settings.Stored[E]
	table *enumdropdown.Table[E]
}

func (f enumField[E]) Current() string {
	v, err := f.Get()
	if err != nil {
		return f.table.Name(f.Default())
	}
	return f.table.Name(v)
}

func (f enumField[E]) Choices() []string {
	return f.table.Names()
}

func (f enumField[E]) Choose(name string) error {
	if err := check(f.GetName(), name, f.Choices()); err != nil {
		return err
	}
	return f.Set(f.table.Parse(name))
}

type stringField struct {
	*settings.Stored[string]
	choices []string
}

func (f stringField) Current() string {
	v, err := f.Get()
	if err != nil {
		return f.Default()
	}
	return v
}

func (f stringField) Choices() []string {
	return append([]string(nil), f.choices...)
}

func (f stringField) Choose(name string) error {
	if err := check(f.GetName(), name, f.choices); err != nil {
		return err
	}
	return f.Set(name)
}

func check(field, name string, choices []string) error {
	for _, c := range choices {
		if c == name {
			return nil
		}
	}
	return fmt.Errorf("screen: %q is not a valid %s, want one of %s", name, field, strings.Join(choices, ", "))
}
