package render

import (
	"testing"

	"tableflip.dev/retain/pkg/key"
	"tableflip.dev/retain/pkg/platform"
	"tableflip.dev/retain/pkg/platform/headless"
)

// box creates its container once and counts render passes in its slot.
type box struct {
	key   key.Key
	title string
}

type boxState struct {
	handle platform.Handle
	passes int
}

func (b box) Key() key.Key { return b.key }

func (b box) Render(ctx *Context, slot *Slot) platform.Handle {
	st := Data[boxState](slot)
	if st.handle == platform.None {
		st.handle = ctx.Toolkit().CreateContainer(ctx.Parent(), b.title)
	}
	st.passes++
	return st.handle
}

func TestRenderAllPreservesOrderAndReusesHandles(t *testing.T) {
	tk := headless.New()
	root := tk.Root("root")
	ctx := New(tk, root)

	a := box{key: key.Named("a"), title: "A"}
	b := box{key: key.Named("b"), title: "B"}

	first := RenderAll(ctx, a, b)
	if got := tk.Children(root); len(got) != 2 || got[0] != first[0] || got[1] != first[1] {
		t.Fatalf("creation order not preserved: %v vs %v", got, first)
	}

	second := RenderAll(ctx, a, b)
	if first[0] != second[0] || first[1] != second[1] {
		t.Fatal("second pass should reuse handles")
	}
	if n := tk.Count(headless.OpCreateContainer); n != 2 {
		t.Fatalf("expected 2 creations, got %d", n)
	}
	if passes := Data[boxState](ctx.SlotFor(a.key)).passes; passes != 2 {
		t.Fatalf("expected 2 passes, got %d", passes)
	}
}

func TestRenderListUsesElementKeys(t *testing.T) {
	tk := headless.New()
	root := tk.Root("root")
	ctx := New(tk, root)

	list := key.Named("list")
	items := []box{
		{key: list.Child(0), title: "zero"},
		{key: list.Child(1), title: "one"},
		{key: list.Child(2), title: "two"},
	}
	handles := RenderList(ctx, items)
	if len(handles) != 3 || ctx.Len() != 3 {
		t.Fatalf("expected 3 handles and slots, got %d/%d", len(handles), ctx.Len())
	}

	// Dropping the middle element keeps the others bound to their widgets.
	ctx.DestroySlot(items[1].key)
	again := RenderList(ctx, []box{items[0], items[2]})
	if again[0] != handles[0] || again[1] != handles[2] {
		t.Fatal("surviving elements should keep their handles")
	}
}

func TestRenderSingle(t *testing.T) {
	tk := headless.New()
	ctx := New(tk, tk.Root("root"))
	c := box{key: key.New(), title: "only"}

	h := Render(ctx, c)
	if h == platform.None || !tk.Alive(h) {
		t.Fatal("expected a live handle")
	}
	if !ctx.Has(c.Key()) {
		t.Fatal("expected a slot for the component key")
	}
}
