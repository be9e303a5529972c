// Package key provides the identity values that address a component's
// retained slot inside a render context.
package key

import (
	"fmt"
	"hash/fnv"
	"strconv"
	"sync/atomic"
)

// Key is an opaque, comparable 64 bit identity. Two components rendered into
// the same context with the same Key are the same logical node.
type Key uint64

var next atomic.Uint64

// New returns a process-unique key. Use it when the identity is fixed at
// construction time, e.g. a package level component description.
func New() Key {
	return Key(next.Add(1))
}

// Named returns a key derived from name. The same name always yields the same
// key, across processes.
func Named(name string) Key {
	h := fnv.New64a()
	_, _ = h.Write([]byte(name))
	return Key(h.Sum64())
}

// With derives a child key from k and name.
func (k Key) With(name string) Key {
	h := fnv.New64a()
	var buf [8]byte
	for i := range buf {
		buf[i] = byte(uint64(k) >> (8 * i))
	}
	_, _ = h.Write(buf[:])
	_, _ = h.Write([]byte(name))
	return Key(h.Sum64())
}

// Child derives the key of the i-th element of a list owned by k.
func (k Key) Child(i int) Key {
	return k.With("#" + strconv.Itoa(i))
}

func (k Key) String() string {
	return fmt.Sprintf("%016x", uint64(k))
}
