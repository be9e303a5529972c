// Package headless is an in-memory toolkit. It keeps a full object tree,
// records every call made against it and lets callers play the user by
// choosing dropdown options. Tests and the terminal hosts build on it.
package headless

import (
	"errors"
	"fmt"

	"tableflip.dev/retain/pkg/platform"
	"tableflip.dev/retain/pkg/platform/objtree"
)

// Operation names recorded in Calls.
const (
	OpCreateContainer = "CreateContainer"
	OpCreateDropdown  = "CreateDropdown"
	OpSetEnabled      = "SetEnabled"
	OpSetInteractable = "SetInteractable"
	OpLabel           = "Label"
	OpSetText         = "SetText"
	OpSetOptions      = "SetOptions"
	OpSelectedIndex   = "SelectedIndex"
	OpSelectIndex     = "SelectIndex"
	OpDestroy         = "Destroy"
	OpAddHoverHint    = "AddHoverHint"
)

// Call is one recorded toolkit invocation.
type Call struct {
	Op     string
	Handle platform.Handle
	Args   []any
}

func (c Call) String() string {
	return fmt.Sprintf("%s(%d %v)", c.Op, c.Handle, c.Args)
}

// Toolkit implements platform.Toolkit and platform.HoverHinter.
// Alive and Children are pure queries and are not recorded.
type Toolkit struct {
	*objtree.Tree

	calls []Call
}

var (
	_ platform.Toolkit     = (*Toolkit)(nil)
	_ platform.HoverHinter = (*Toolkit)(nil)
)

// New returns an empty toolkit.
func New() *Toolkit {
	return &Toolkit{Tree: objtree.New()}
}

// Root creates a top level container, the anchor of a render context.
func (t *Toolkit) Root(title string) platform.Handle {
	o := t.Add(platform.None, objtree.KindRoot)
	o.Text = title
	return o.Handle
}

// Foreign adds an object below parent that no component knows about.
func (t *Toolkit) Foreign(parent platform.Handle, text string) platform.Handle {
	o := t.Add(parent, objtree.KindForeign)
	o.Text = text
	return o.Handle
}

// Calls returns the recorded calls in order.
func (t *Toolkit) Calls() []Call {
	out := make([]Call, len(t.calls))
	copy(out, t.calls)
	return out
}

// Count returns how many recorded calls used op.
func (t *Toolkit) Count(op string) int {
	n := 0
	for _, c := range t.calls {
		if c.Op == op {
			n++
		}
	}
	return n
}

// Reset forgets the recorded calls.
func (t *Toolkit) Reset() {
	t.calls = nil
}

func (t *Toolkit) record(op string, h platform.Handle, args ...any) {
	t.calls = append(t.calls, Call{Op: op, Handle: h, Args: args})
}

// Destroy implements platform.Tree.
func (t *Toolkit) Destroy(h platform.Handle) {
	t.record(OpDestroy, h)
	t.Tree.Destroy(h)
}

// CreateContainer implements platform.Toolkit.
func (t *Toolkit) CreateContainer(parent platform.Handle, title string) platform.Handle {
	o := t.Add(parent, objtree.KindContainer)
	o.Text = title
	t.record(OpCreateContainer, o.Handle, parent, title)
	return o.Handle
}

// CreateDropdown implements platform.Toolkit. The label is a separate child
// object so that it can be resolved through Label.
func (t *Toolkit) CreateDropdown(parent platform.Handle, label, selected string, options []string, onSelect func(string)) platform.Handle {
	o := t.Add(parent, objtree.KindDropdown)
	o.Text = label
	o.Options = append([]string(nil), options...)
	o.Selected = indexOf(o.Options, selected)
	o.OnSelect = onSelect

	l := t.Add(o.Handle, objtree.KindLabel)
	l.Text = label

	t.record(OpCreateDropdown, o.Handle, parent, label, selected, o.Options)
	return o.Handle
}

// SetEnabled implements platform.Toolkit.
func (t *Toolkit) SetEnabled(h platform.Handle, enabled bool) {
	t.record(OpSetEnabled, h, enabled)
	if o, ok := t.Get(h); ok {
		o.Enabled = enabled
	}
}

// SetInteractable implements platform.Toolkit.
func (t *Toolkit) SetInteractable(h platform.Handle, interactable bool) {
	t.record(OpSetInteractable, h, interactable)
	if o, ok := t.Get(h); ok {
		o.Interactable = interactable
	}
}

// Label implements platform.Toolkit.
func (t *Toolkit) Label(h platform.Handle) (platform.Handle, bool) {
	t.record(OpLabel, h)
	l, ok := t.Find(h, objtree.KindLabel)
	if !ok {
		return platform.None, false
	}
	return l.Handle, true
}

// SetText implements platform.Toolkit.
func (t *Toolkit) SetText(h platform.Handle, text string) {
	t.record(OpSetText, h, text)
	if o, ok := t.Get(h); ok {
		o.Text = text
	}
}

// SetOptions implements platform.Toolkit.
func (t *Toolkit) SetOptions(h platform.Handle, options []string) {
	t.record(OpSetOptions, h, options)
	if o, ok := t.Get(h); ok {
		o.Options = append([]string(nil), options...)
		if o.Selected >= len(o.Options) {
			o.Selected = 0
		}
	}
}

// SelectedIndex implements platform.Toolkit.
func (t *Toolkit) SelectedIndex(h platform.Handle) int {
	t.record(OpSelectedIndex, h)
	if o, ok := t.Get(h); ok {
		return o.Selected
	}
	return -1
}

// SelectIndex implements platform.Toolkit. It never fires OnSelect.
func (t *Toolkit) SelectIndex(h platform.Handle, index int) {
	t.record(OpSelectIndex, h, index)
	if o, ok := t.Get(h); ok && index >= 0 && index < len(o.Options) {
		o.Selected = index
	}
}

// AddHoverHint implements platform.HoverHinter.
func (t *Toolkit) AddHoverHint(h platform.Handle, hint string) platform.Handle {
	o := t.Add(h, objtree.KindHint)
	o.Text = hint
	t.record(OpAddHoverHint, o.Handle, h, hint)
	return o.Handle
}

// ErrNotSelectable is returned by Choose when the dropdown does not accept
// user input.
var ErrNotSelectable = errors.New("headless: dropdown is disabled or not interactable")

// Choose plays the user picking option index of the dropdown h. The selection
// is applied and the dropdown's callback runs synchronously.
func (t *Toolkit) Choose(h platform.Handle, index int) error {
	o, ok := t.Get(h)
	if !ok || o.Kind != objtree.KindDropdown {
		return fmt.Errorf("headless: %d is not a live dropdown", h)
	}
	if !o.Enabled || !o.Interactable {
		return ErrNotSelectable
	}
	if index < 0 || index >= len(o.Options) {
		return fmt.Errorf("headless: option %d out of range [0,%d)", index, len(o.Options))
	}
	o.Selected = index
	if o.OnSelect != nil {
		o.OnSelect(o.Options[index])
	}
	return nil
}

func indexOf(options []string, value string) int {
	for i, o := range options {
		if o == value {
			return i
		}
	}
	return 0
}
