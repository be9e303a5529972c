// Package render gives components a stable identity and a private retained
// slot across render passes, and owns the lifetime of the platform subtrees
// anchored by nested contexts.
//
// Everything in this package runs on the UI thread. There is no locking.
package render

import (
	"fmt"
	"sort"

	"tableflip.dev/retain/pkg/key"
	"tableflip.dev/retain/pkg/platform"
)

// Slot is the retained state of one keyed node: an opaque value owned by the
// component and an optional nested context for the node's own children.
type Slot struct {
	data    any
	child   *Context
	toolkit platform.Toolkit
}

// Data returns the retained value of type T stored in s, creating a zero T on
// first access. The returned pointer is stable for the lifetime of the slot.
// Asking one slot for two different types is a key collision and panics.
func Data[T any](s *Slot) *T {
	if s.data == nil {
		v := new(T)
		s.data = v
		return v
	}
	v, ok := s.data.(*T)
	if !ok {
		var want T
		panic(fmt.Sprintf("render: slot holds %T, requested %T (key reused by a different component?)", s.data, &want))
	}
	return v
}

// ChildContext returns the nested context of s, calling container to create
// its platform anchor the first time.
func (s *Slot) ChildContext(container func() platform.Handle) *Context {
	if s.child == nil {
		s.child = New(s.toolkit, container())
	}
	return s.child
}

// Child returns the nested context if one was created.
func (s *Slot) Child() (*Context, bool) {
	return s.child, s.child != nil
}

// Context maps keys to slots for the components rendered onto one platform
// container. The container is owned by the caller and must outlive the
// context.
type Context struct {
	toolkit platform.Toolkit
	parent  platform.Handle
	slots   map[key.Key]*Slot
}

// New returns an empty context rendering onto parent.
func New(toolkit platform.Toolkit, parent platform.Handle) *Context {
	return &Context{
		toolkit: toolkit,
		parent:  parent,
		slots:   make(map[key.Key]*Slot),
	}
}

// Parent returns the platform container this context renders onto.
func (c *Context) Parent() platform.Handle {
	return c.parent
}

// Toolkit returns the widget service of the context.
func (c *Context) Toolkit() platform.Toolkit {
	return c.toolkit
}

// SlotFor returns the slot for k, creating it on first use. Repeated calls
// return the same *Slot until the slot is destroyed.
func (c *Context) SlotFor(k key.Key) *Slot {
	s, ok := c.slots[k]
	if !ok {
		s = &Slot{toolkit: c.toolkit}
		c.slots[k] = s
	}
	return s
}

// Has reports whether a slot exists for k.
func (c *Context) Has(k key.Key) bool {
	_, ok := c.slots[k]
	return ok
}

// Len returns the number of slots.
func (c *Context) Len() int {
	return len(c.slots)
}

// Keys returns the keys with a slot, in ascending order.
func (c *Context) Keys() []key.Key {
	keys := make([]key.Key, 0, len(c.slots))
	for k := range c.slots {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}

// ChildContextFor returns the nested context stored in k's slot, creating it
// with a container from factory on first request.
func (c *Context) ChildContextFor(k key.Key, factory func() platform.Handle) *Context {
	return c.SlotFor(k).ChildContext(factory)
}

// DestroySlot removes k's slot. If the slot owns a nested context whose
// container is still alive, that container is destroyed first, taking every
// platform object below it along. Absent keys are ignored.
func (c *Context) DestroySlot(k key.Key) {
	s, ok := c.slots[k]
	if !ok {
		return
	}
	if s.child != nil && c.toolkit.Alive(s.child.parent) {
		c.toolkit.Destroy(s.child.parent)
	}
	delete(c.slots, k)
}

// DestroyTree tears the context down. With includeSelf the root container
// itself is destroyed; otherwise every current platform child of the root is
// destroyed, including objects the context never created. The slot map is
// always cleared. A root that is already dead only clears the slots.
func (c *Context) DestroyTree(includeSelf bool) {
	if c.parent != platform.None && c.toolkit.Alive(c.parent) {
		if includeSelf {
			c.toolkit.Destroy(c.parent)
		} else {
			for _, h := range c.toolkit.Children(c.parent) {
				c.toolkit.Destroy(h)
			}
		}
	}
	clear(c.slots)
}
