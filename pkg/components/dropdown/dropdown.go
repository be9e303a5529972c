// Package dropdown implements a labelled single-choice setting.
//
// A Setting is a cheap description: build one per render pass or keep one
// around and mutate it. The platform widget, the cached label object and the
// callback target live in the render slot, so a fresh Setting value with the
// same key keeps driving the same widget.
package dropdown

import (
	"tableflip.dev/retain/pkg/held"
	"tableflip.dev/retain/pkg/key"
	"tableflip.dev/retain/pkg/platform"
	"tableflip.dev/retain/pkg/render"
)

// OnSelect is called after the user picked value. parent is the container the
// dropdown was created in.
type OnSelect func(s *Setting, value string, parent platform.Handle, ctx *render.Context)

// Setting is a dropdown component. Each field is applied to the widget on the
// next render only when it is pending.
type Setting struct {
	Label        held.Value[string]
	Enabled      held.Value[bool]
	Interactable held.Value[bool]
	Selected     held.Value[string]
	Options      held.Value[[]string]

	OnSelect OnSelect

	key key.Key
}

var (
	_ render.Component = (*Setting)(nil)
	_ render.Updater   = (*Setting)(nil)
)

// New returns an enabled, interactable dropdown with every field pending.
func New(k key.Key, label, value string, options []string, onSelect OnSelect) *Setting {
	return &Setting{
		Label:        held.Of(label),
		Enabled:      held.Of(true),
		Interactable: held.Of(true),
		Selected:     held.Of(value),
		Options:      held.Of(options),
		OnSelect:     onSelect,
		key:          k,
	}
}

// retained is what a dropdown keeps in its slot between passes.
type retained struct {
	widget platform.Handle
	label  platform.Handle
	// owner is the Setting rendered most recently into the slot; the widget
	// callback reports to it.
	owner *Setting
}

// Key implements render.Component.
func (s *Setting) Key() key.Key {
	return s.key
}

// Value returns the last selected or assigned value.
func (s *Setting) Value() string {
	return s.Selected.Get()
}

// SetValue marks v pending, even when it equals the current value.
func (s *Setting) SetValue(v string) *Setting {
	s.Selected.Set(v)
	return s
}

// SetLabel marks a new label pending.
func (s *Setting) SetLabel(label string) *Setting {
	s.Label.Set(label)
	return s
}

// SetEnabled marks a new enabled state pending.
func (s *Setting) SetEnabled(enabled bool) *Setting {
	s.Enabled.Set(enabled)
	return s
}

// SetInteractable marks a new interactable state pending.
func (s *Setting) SetInteractable(interactable bool) *Setting {
	s.Interactable.Set(interactable)
	return s
}

// SetOptions marks a new option list pending.
func (s *Setting) SetOptions(options []string) *Setting {
	s.Options.Set(options)
	return s
}

// Render implements render.Component.
func (s *Setting) Render(ctx *render.Context, slot *render.Slot) platform.Handle {
	st := render.Data[retained](slot)
	st.owner = s
	tk := ctx.Toolkit()

	if st.widget != platform.None {
		s.apply(tk, st, false)
		return st.widget
	}

	parent := ctx.Parent()
	st.widget = tk.CreateDropdown(parent, s.Label.Get(), s.Selected.Get(), s.Options.Get(), func(v string) {
		owner := st.owner
		owner.Selected.Set(v)
		owner.Selected.Clear()
		if owner.OnSelect != nil {
			owner.OnSelect(owner, v, parent, ctx)
		}
	})
	// Consumed by the constructor call above.
	s.Label.Clear()
	s.Selected.Clear()
	s.Options.Clear()
	s.apply(tk, st, true)
	return st.widget
}

// Update pushes pending fields to the widget bound to s's key in ctx without
// rendering anything else. The key must have been rendered before.
func (s *Setting) Update(ctx *render.Context) {
	if !ctx.Has(s.key) {
		panic("dropdown: update of a key that was never rendered")
	}
	st := render.Data[retained](ctx.SlotFor(s.key))
	st.owner = s
	s.apply(ctx.Toolkit(), st, false)
}

// Widget returns the handle bound to s's key in ctx, if rendered.
func (s *Setting) Widget(ctx *render.Context) (platform.Handle, bool) {
	if !ctx.Has(s.key) {
		return platform.None, false
	}
	st := render.Data[retained](ctx.SlotFor(s.key))
	return st.widget, st.widget != platform.None
}

// apply copies pending fields onto the widget. Right after creation
// (created) the interactable state is applied unconditionally and label,
// value and options are skipped because the constructor consumed them.
func (s *Setting) apply(tk platform.Toolkit, st *retained, created bool) {
	if st.widget == platform.None {
		panic("dropdown: update of a key that was never rendered")
	}
	w := st.widget

	if s.Enabled.IsSet() {
		tk.SetEnabled(w, s.Enabled.Get())
		s.Enabled.Clear()
	}
	// A disabled widget is not kept in sync; pending fields wait.
	if !s.Enabled.Get() {
		return
	}

	if created || s.Interactable.IsSet() {
		tk.SetInteractable(w, s.Interactable.Get())
		s.Interactable.Clear()
	}
	if created {
		return
	}

	if s.Label.IsSet() {
		if st.label == platform.None {
			if l, ok := tk.Label(w); ok {
				st.label = l
			}
		}
		if st.label != platform.None {
			tk.SetText(st.label, s.Label.Get())
		}
		s.Label.Clear()
	}

	// Selection depends on the option list, so both are applied together.
	if s.Selected.IsSet() || s.Options.IsSet() {
		options := s.Options.Get()
		idx := IndexOf(options, s.Selected.Get())
		if s.Options.IsSet() {
			tk.SetOptions(w, options)
		}
		if tk.SelectedIndex(w) != idx {
			tk.SelectIndex(w, idx)
		}
		s.Selected.Clear()
		s.Options.Clear()
	}
}

// IndexOf returns the index of the first option equal to value, or 0.
func IndexOf(options []string, value string) int {
	for i, o := range options {
		if o == value {
			return i
		}
	}
	return 0
}
