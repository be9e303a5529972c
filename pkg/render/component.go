package render

import (
	"tableflip.dev/retain/pkg/key"
	"tableflip.dev/retain/pkg/platform"
)

// Component is anything that can be rendered into a Context. Render decides
// on its own whether this is the first pass for the slot (create) or a later
// one (update) and returns the handle anchoring the component's children.
type Component interface {
	Key() key.Key
	Render(ctx *Context, slot *Slot) platform.Handle
}

// Updater is implemented by components that can push pending changes to an
// already rendered widget without a render pass over their siblings.
type Updater interface {
	Update(ctx *Context)
}

// Render renders c into the slot addressed by its own key.
func Render(ctx *Context, c Component) platform.Handle {
	return c.Render(ctx, ctx.SlotFor(c.Key()))
}

// RenderAll renders a fixed group of components in argument order. First
// renders create platform objects in that order.
func RenderAll(ctx *Context, components ...Component) []platform.Handle {
	out := make([]platform.Handle, len(components))
	for i, c := range components {
		out[i] = Render(ctx, c)
	}
	return out
}

// RenderList renders a homogeneous list in order.
func RenderList[T Component](ctx *Context, components []T) []platform.Handle {
	out := make([]platform.Handle, len(components))
	for i, c := range components {
		out[i] = c.Render(ctx, ctx.SlotFor(c.Key()))
	}
	return out
}
