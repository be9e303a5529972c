// Package section groups components under a titled container. The container
// anchors a nested render context, so dropping a section tears down every
// widget below it in one step.
package section

import (
	"tableflip.dev/retain/pkg/held"
	"tableflip.dev/retain/pkg/key"
	"tableflip.dev/retain/pkg/platform"
	"tableflip.dev/retain/pkg/render"
)

// Section is a titled container with children.
type Section struct {
	Title    held.Value[string]
	Children []render.Component

	key key.Key
}

var _ render.Component = (*Section)(nil)

// New returns a section keyed k.
func New(k key.Key, title string, children ...render.Component) *Section {
	return &Section{
		Title:    held.Of(title),
		Children: children,
		key:      k,
	}
}

// Key implements render.Component.
func (s *Section) Key() key.Key {
	return s.key
}

// SetTitle marks a new title pending.
func (s *Section) SetTitle(title string) *Section {
	s.Title.Set(title)
	return s
}

// Render implements render.Component. The container is created on the first
// pass only; children always render into the nested context.
func (s *Section) Render(ctx *render.Context, slot *render.Slot) platform.Handle {
	tk := ctx.Toolkit()
	created := false
	child := slot.ChildContext(func() platform.Handle {
		created = true
		return tk.CreateContainer(ctx.Parent(), s.Title.Get())
	})
	if created || s.Title.IsSet() {
		if !created {
			tk.SetText(child.Parent(), s.Title.Get())
		}
		s.Title.Clear()
	}
	render.RenderAll(child, s.Children...)
	return child.Parent()
}

// Context returns the nested context of the section in ctx, if rendered.
func (s *Section) Context(ctx *render.Context) (*render.Context, bool) {
	if !ctx.Has(s.key) {
		return nil, false
	}
	return ctx.SlotFor(s.key).Child()
}

// Collapse destroys the section's container with all its widgets and forgets
// its retained state. The next render starts from scratch.
func (s *Section) Collapse(ctx *render.Context) {
	ctx.DestroySlot(s.key)
}
