package settings

import (
	"sort"

	"tableflip.dev/retain/pkg/store"
)

// Entry is the type independent view of a registered value.
type Entry interface {
	GetName() string
	GetHoverHint() string
	Reload()
}

// Registry indexes values by name so store events can be routed to them.
// Dispatch must run on the UI thread.
type Registry struct {
	entries map[string]Entry
}

// NewRegistry returns a registry holding entries.
func NewRegistry(entries ...Entry) *Registry {
	r := &Registry{entries: make(map[string]Entry, len(entries))}
	for _, e := range entries {
		r.Add(e)
	}
	return r
}

// Add registers e, replacing any entry with the same name.
func (r *Registry) Add(e Entry) {
	r.entries[e.GetName()] = e
}

// Lookup returns the entry named name.
func (r *Registry) Lookup(name string) (Entry, bool) {
	e, ok := r.entries[name]
	return e, ok
}

// Names returns the registered names in order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.entries))
	for n := range r.entries {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// Dispatch reloads the entries affected by ev and reports whether any was.
func (r *Registry) Dispatch(ev store.Event) bool {
	switch ev.Type {
	case store.EventValueChanged:
		e, ok := r.entries[ev.Name]
		if !ok {
			return false
		}
		e.Reload()
		return true
	case store.EventValuesInvalidated:
		for _, name := range r.Names() {
			r.entries[name].Reload()
		}
		return len(r.entries) > 0
	}
	return false
}
