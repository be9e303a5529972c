package settings

import (
	"testing"

	"tableflip.dev/retain/pkg/store"
)

func TestStoredDefaultsUntilSet(t *testing.T) {
	p := store.NewMemory()
	v := New(p, "difficulty", 1, WithHoverHint("How hard the game is"))

	if got := v.GetValue(); got != 1 {
		t.Fatalf("expected default 1, got %d", got)
	}
	if v.GetName() != "difficulty" || v.GetHoverHint() != "How hard the game is" {
		t.Fatal("name or hint not kept")
	}

	v.SetValue(2)
	if got := v.GetValue(); got != 2 {
		t.Fatalf("expected 2, got %d", got)
	}

	raw, err := p.Read("difficulty")
	if err != nil || string(raw) != "2" {
		t.Fatalf("stored payload %q, %v", raw, err)
	}
}

func TestStoredDecodeErrorFallsBack(t *testing.T) {
	p := store.NewMemory()
	if err := p.Write("theme", []byte("{not json")); err != nil {
		t.Fatal(err)
	}
	v := New(p, "theme", "dark")

	if _, err := v.Get(); err == nil {
		t.Fatal("expected decode error")
	}
	if got := v.GetValue(); got != "dark" {
		t.Fatalf("expected default on decode error, got %q", got)
	}
}

func TestOnChangeAndCancel(t *testing.T) {
	v := New(store.NewMemory(), "volume", 5)

	var seen []int
	cancel := v.OnChange(func(n int) { seen = append(seen, n) })

	v.SetValue(7)
	cancel()
	v.SetValue(9)

	if len(seen) != 1 || seen[0] != 7 {
		t.Fatalf("unexpected notifications %v", seen)
	}
}

func TestRegistryDispatch(t *testing.T) {
	p := store.NewMemory()
	a := New(p, "a", 0)
	b := New(p, "b", "")

	var reloadedA, reloadedB int
	a.OnChange(func(int) { reloadedA++ })
	b.OnChange(func(string) { reloadedB++ })

	r := NewRegistry(a, b)
	if names := r.Names(); len(names) != 2 || names[0] != "a" {
		t.Fatalf("unexpected names %v", names)
	}

	if !r.Dispatch(store.Event{Type: store.EventValueChanged, Name: "a"}) {
		t.Fatal("expected a to be reloaded")
	}
	if r.Dispatch(store.Event{Type: store.EventValueChanged, Name: "missing"}) {
		t.Fatal("unknown names are ignored")
	}
	if !r.Dispatch(store.Event{Type: store.EventValuesInvalidated}) {
		t.Fatal("invalidation reloads everything")
	}
	if reloadedA != 2 || reloadedB != 1 {
		t.Fatalf("reloads a=%d b=%d", reloadedA, reloadedB)
	}

	if _, ok := r.Lookup("b"); !ok {
		t.Fatal("lookup failed")
	}
}
