// Package held tracks "a new value was supplied and has not been applied yet"
// for individual component fields.
package held

// Value wraps a T together with a pending flag. Set marks the value pending,
// Clear consumes it.
//
// Get always returns the last assigned value, pending or not, and the zero
// value if nothing was ever assigned. Components rely on this to read the
// last known state of a field that is not currently pending.
type Value[T any] struct {
	v   T
	set bool
}

// Of returns a Value holding v in the pending state.
func Of[T any](v T) Value[T] {
	return Value[T]{v: v, set: true}
}

// Set stores v and marks it pending.
func (h *Value[T]) Set(v T) {
	h.v = v
	h.set = true
}

// Get returns the last assigned value.
func (h *Value[T]) Get() T {
	return h.v
}

// MustGet returns the pending value and panics if there is none.
func (h *Value[T]) MustGet() T {
	if !h.set {
		panic("held: read of a value that is not pending")
	}
	return h.v
}

// Clear marks the value consumed. It is idempotent.
func (h *Value[T]) Clear() {
	h.set = false
}

// IsSet reports whether a value is pending.
func (h *Value[T]) IsSet() bool {
	return h.set
}
