// Package settings provides persisted configuration values that components
// can bind to.
package settings

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"tableflip.dev/retain/pkg/store"
)

// Value is a named, persisted configuration value.
type Value[V any] interface {
	GetValue() V
	SetValue(v V)
	GetName() string
	GetHoverHint() string
	// OnChange registers fn to run after every change of the value. The
	// returned function unregisters it.
	OnChange(fn func(V)) (cancel func())
}

// Option configures a Stored value.
type Option func(*options)

type options struct {
	hint string
}

// WithHoverHint sets the text shown when hovering a widget bound to the value.
func WithHoverHint(hint string) Option {
	return func(o *options) {
		o.hint = hint
	}
}

// Stored is a Value persisted as JSON under its name.
type Stored[V any] struct {
	p    store.Persistence
	name string
	def  V
	hint string

	nextID    int
	listeners map[int]func(V)
}

var _ Value[int] = (*Stored[int])(nil)

// New binds a value named name in p. def is returned until something is
// stored.
func New[V any](p store.Persistence, name string, def V, opts ...Option) *Stored[V] {
	o := options{}
	for _, opt := range opts {
		opt(&o)
	}
	return &Stored[V]{
		p:         p,
		name:      name,
		def:       def,
		hint:      o.hint,
		listeners: make(map[int]func(V)),
	}
}

// Get reads the stored value. A missing value yields the default and no
// error.
func (s *Stored[V]) Get() (V, error) {
	data, err := s.p.Read(s.name)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return s.def, nil
		}
		return s.def, err
	}
	var v V
	if err := json.Unmarshal(data, &v); err != nil {
		return s.def, fmt.Errorf("settings: decode %s: %w", s.name, err)
	}
	return v, nil
}

// Set stores v and notifies listeners.
func (s *Stored[V]) Set(v V) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("settings: encode %s: %w", s.name, err)
	}
	if err := s.p.Write(s.name, data); err != nil {
		return err
	}
	s.notify(v)
	return nil
}

// GetValue implements Value. Read failures are reported on stderr and yield
// the default.
func (s *Stored[V]) GetValue() V {
	v, err := s.Get()
	if err != nil {
		fmt.Fprintf(os.Stderr, "settings: %s: %v\n", s.name, err)
	}
	return v
}

// SetValue implements Value. Write failures are reported on stderr.
func (s *Stored[V]) SetValue(v V) {
	if err := s.Set(v); err != nil {
		fmt.Fprintf(os.Stderr, "settings: %s: %v\n", s.name, err)
	}
}

// GetName implements Value.
func (s *Stored[V]) GetName() string {
	return s.name
}

// GetHoverHint implements Value.
func (s *Stored[V]) GetHoverHint() string {
	return s.hint
}

// Default returns the value used when nothing is stored.
func (s *Stored[V]) Default() V {
	return s.def
}

// OnChange implements Value.
func (s *Stored[V]) OnChange(fn func(V)) (cancel func()) {
	s.nextID++
	id := s.nextID
	s.listeners[id] = fn
	return func() {
		delete(s.listeners, id)
	}
}

// Reload re-reads the value and notifies listeners, e.g. after another
// process changed it.
func (s *Stored[V]) Reload() {
	s.notify(s.GetValue())
}

func (s *Stored[V]) notify(v V) {
	for _, fn := range s.listeners {
		fn(v)
	}
}
