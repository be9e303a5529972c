// Package objtree keeps the bookkeeping a toolkit needs for its objects:
// handle allocation, ordered parent/child links and liveness. Objects are
// addressed by handle only; there are no pointers between objects.
package objtree

import (
	"tableflip.dev/retain/pkg/platform"
)

// Kind identifies what an object is.
type Kind int

const (
	KindRoot Kind = iota
	KindContainer
	KindDropdown
	KindLabel
	KindHint
	// KindForeign marks objects created by something other than a component.
	KindForeign
)

func (k Kind) String() string {
	switch k {
	case KindRoot:
		return "root"
	case KindContainer:
		return "container"
	case KindDropdown:
		return "dropdown"
	case KindLabel:
		return "label"
	case KindHint:
		return "hint"
	case KindForeign:
		return "foreign"
	default:
		return "unknown"
	}
}

// Object is a single toolkit object.
type Object struct {
	Handle platform.Handle
	Kind   Kind
	Parent platform.Handle

	Text         string
	Options      []string
	Selected     int
	Enabled      bool
	Interactable bool
	OnSelect     func(string)

	// Widget is backend specific payload, e.g. the tui-go widget.
	Widget any

	children []platform.Handle
}

// Tree owns every object of a toolkit.
type Tree struct {
	last    platform.Handle
	objects map[platform.Handle]*Object
}

// New returns an empty tree.
func New() *Tree {
	return &Tree{objects: make(map[platform.Handle]*Object)}
}

// Add allocates a new object of kind below parent. A None or dead parent
// leaves the object detached.
func (t *Tree) Add(parent platform.Handle, kind Kind) *Object {
	t.last++
	o := &Object{
		Handle:       t.last,
		Kind:         kind,
		Enabled:      true,
		Interactable: true,
	}
	if p, ok := t.objects[parent]; ok {
		o.Parent = parent
		p.children = append(p.children, o.Handle)
	}
	t.objects[o.Handle] = o
	return o
}

// Get returns the live object for h.
func (t *Tree) Get(h platform.Handle) (*Object, bool) {
	o, ok := t.objects[h]
	return o, ok
}

// Alive implements platform.Tree.
func (t *Tree) Alive(h platform.Handle) bool {
	_, ok := t.objects[h]
	return ok
}

// Children implements platform.Tree. The returned slice is a copy.
func (t *Tree) Children(h platform.Handle) []platform.Handle {
	o, ok := t.objects[h]
	if !ok {
		return nil
	}
	out := make([]platform.Handle, len(o.children))
	copy(out, o.children)
	return out
}

// IndexOf returns the position of h among its parent's children, or -1.
func (t *Tree) IndexOf(h platform.Handle) int {
	o, ok := t.objects[h]
	if !ok {
		return -1
	}
	p, ok := t.objects[o.Parent]
	if !ok {
		return -1
	}
	for i, c := range p.children {
		if c == h {
			return i
		}
	}
	return -1
}

// Destroy implements platform.Tree. Children are freed before their parent.
func (t *Tree) Destroy(h platform.Handle) {
	o, ok := t.objects[h]
	if !ok {
		return
	}
	if p, ok := t.objects[o.Parent]; ok {
		for i, c := range p.children {
			if c == h {
				p.children = append(p.children[:i], p.children[i+1:]...)
				break
			}
		}
	}
	t.free(o)
}

func (t *Tree) free(o *Object) {
	for _, c := range o.children {
		if child, ok := t.objects[c]; ok {
			t.free(child)
		}
	}
	o.children = nil
	delete(t.objects, o.Handle)
}

// Walk visits h and its descendants depth first, in child order. Returning
// false from fn skips the descendants of that object.
func (t *Tree) Walk(h platform.Handle, fn func(depth int, o *Object) bool) {
	t.walk(h, 0, fn)
}

func (t *Tree) walk(h platform.Handle, depth int, fn func(int, *Object) bool) {
	o, ok := t.objects[h]
	if !ok {
		return
	}
	if !fn(depth, o) {
		return
	}
	for _, c := range o.children {
		t.walk(c, depth+1, fn)
	}
}

// Find returns the first direct child of h with the given kind.
func (t *Tree) Find(h platform.Handle, kind Kind) (*Object, bool) {
	o, ok := t.objects[h]
	if !ok {
		return nil, false
	}
	for _, c := range o.children {
		if child, ok := t.objects[c]; ok && child.Kind == kind {
			return child, true
		}
	}
	return nil, false
}

// Len returns the number of live objects.
func (t *Tree) Len() int {
	return len(t.objects)
}
