// Package enumdropdown binds a dropdown to a persisted enum setting. The
// dropdown shows names from a Table; the setting stores enum values.
package enumdropdown

import (
	"tableflip.dev/retain/pkg/components/dropdown"
	"tableflip.dev/retain/pkg/key"
	"tableflip.dev/retain/pkg/platform"
	"tableflip.dev/retain/pkg/render"
	"tableflip.dev/retain/pkg/settings"
)

// OnChange runs after the user picked a value and it was written to the
// setting.
type OnChange[E comparable] func(s *Setting[E], value E, parent platform.Handle, ctx *render.Context)

// Setting renders a dropdown whose selection mirrors config.
type Setting[E comparable] struct {
	config settings.Value[E]
	table  *Table[E]
	inner  *dropdown.Setting
	key    key.Key
}

var (
	_ render.Component = (*Setting[int])(nil)
	_ render.Updater   = (*Setting[int])(nil)
)

// hinted is the retained state of the adapter's own slot.
type hinted struct {
	hint platform.Handle
}

// New binds a dropdown keyed k to config. The label defaults to the config
// name and the options to the table names.
func New[E comparable](k key.Key, table *Table[E], config settings.Value[E], onChange OnChange[E]) *Setting[E] {
	s := &Setting[E]{
		config: config,
		table:  table,
		key:    k,
	}
	s.inner = dropdown.New(k.With("dropdown"), config.GetName(), "", table.Names(),
		func(_ *dropdown.Setting, name string, parent platform.Handle, ctx *render.Context) {
			v := table.Parse(name)
			config.SetValue(v)
			if onChange != nil {
				onChange(s, v, parent, ctx)
			}
		})
	return s
}

// Key implements render.Component.
func (s *Setting[E]) Key() key.Key {
	return s.key
}

// Inner exposes the wrapped dropdown, e.g. to toggle enabled state.
func (s *Setting[E]) Inner() *dropdown.Setting {
	return s.inner
}

// Value returns the display name of the current config value.
func (s *Setting[E]) Value() string {
	return s.table.Name(s.config.GetValue())
}

// Render implements render.Component. The current config value is pushed
// into the dropdown before it renders into its own slot.
func (s *Setting[E]) Render(ctx *render.Context, slot *render.Slot) platform.Handle {
	st := render.Data[hinted](slot)

	s.inner.SetValue(s.Value())
	h := s.inner.Render(ctx, ctx.SlotFor(s.inner.Key()))

	if hint := s.config.GetHoverHint(); hint != "" && st.hint == platform.None {
		if hh, ok := ctx.Toolkit().(platform.HoverHinter); ok {
			st.hint = hh.AddHoverHint(h, hint)
		}
	}
	return h
}

// Update re-reads config and pushes the change to the rendered dropdown.
func (s *Setting[E]) Update(ctx *render.Context) {
	s.inner.SetValue(s.Value())
	s.inner.Update(ctx)
}
