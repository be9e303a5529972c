package enumdropdown

// Pair names one enum value.
type Pair[E comparable] struct {
	Value E
	Name  string
}

// Table is a bidirectional enum/name mapping plus the ordered list of names
// shown to the user. Lookups never fail: unknown inputs map to the first
// entry.
type Table[E comparable] struct {
	names  map[E]string
	values map[string]E
	order  []Pair[E]
}

// NewTable builds a table; pairs keep their order as the option list.
func NewTable[E comparable](pairs ...Pair[E]) *Table[E] {
	t := &Table[E]{
		names:  make(map[E]string, len(pairs)),
		values: make(map[string]E, len(pairs)),
		order:  make([]Pair[E], 0, len(pairs)),
	}
	for _, p := range pairs {
		if _, dup := t.names[p.Value]; dup {
			continue
		}
		t.names[p.Value] = p.Name
		t.values[p.Name] = p.Value
		t.order = append(t.order, p)
	}
	return t
}

// Name returns the display name of v, the first name for an unmapped v, or
// "" for an empty table.
func (t *Table[E]) Name(v E) string {
	if n, ok := t.names[v]; ok {
		return n
	}
	if len(t.order) == 0 {
		return ""
	}
	return t.order[0].Name
}

// Parse returns the value named name, the first value for an unknown name,
// or the zero E for an empty table.
func (t *Table[E]) Parse(name string) E {
	if v, ok := t.values[name]; ok {
		return v
	}
	if len(t.order) == 0 {
		var zero E
		return zero
	}
	return t.order[0].Value
}

// Names returns the display names in table order.
func (t *Table[E]) Names() []string {
	out := make([]string, len(t.order))
	for i, p := range t.order {
		out[i] = p.Name
	}
	return out
}

// Len returns the number of entries.
func (t *Table[E]) Len() int {
	return len(t.order)
}
