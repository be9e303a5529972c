package store

import (
	"context"
	"sort"
	"strings"
	"sync"
)

// NewMemory returns a Persistence that keeps values in memory. Writes are
// reported to watchers immediately.
func NewMemory() Persistence {
	return &memory{values: make(map[string][]byte)}
}

type memory struct {
	mu       sync.Mutex
	values   map[string][]byte
	watchers []chan Event
}

func (m *memory) Read(name string) ([]byte, error) {
	name = strings.TrimSpace(name)
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.values[name]
	if !ok {
		return nil, ErrNotFound
	}
	return append([]byte(nil), v...), nil
}

func (m *memory) Write(name string, data []byte) error {
	if _, err := toKey(name); err != nil {
		return err
	}
	// Same name normalization as the disk store.
	name = strings.TrimSpace(name)
	m.mu.Lock()
	m.values[name] = append([]byte(nil), data...)
	m.mu.Unlock()
	m.notify(Event{Type: EventValueChanged, Name: name})
	return nil
}

func (m *memory) Erase(name string) error {
	name = strings.TrimSpace(name)
	m.mu.Lock()
	_, ok := m.values[name]
	delete(m.values, name)
	m.mu.Unlock()
	if !ok {
		return ErrNotFound
	}
	m.notify(Event{Type: EventValueChanged, Name: name})
	return nil
}

func (m *memory) Names(_ context.Context) []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	names := make([]string, 0, len(m.values))
	for n := range m.values {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

func (m *memory) Watch(ctx context.Context) (<-chan Event, error) {
	ch := make(chan Event, 64)
	m.mu.Lock()
	m.watchers = append(m.watchers, ch)
	m.mu.Unlock()

	go func() {
		<-ctx.Done()
		m.mu.Lock()
		defer m.mu.Unlock()
		for i, w := range m.watchers {
			if w == ch {
				m.watchers = append(m.watchers[:i], m.watchers[i+1:]...)
				break
			}
		}
		close(ch)
	}()
	return ch, nil
}

func (m *memory) notify(ev Event) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, w := range m.watchers {
		select {
		case w <- ev:
		default:
		}
	}
}
