package tuigo

import (
	"testing"

	"github.com/marcusolsson/tui-go"

	"tableflip.dev/retain/pkg/platform/objtree"
)

func TestContainersNestInBoxes(t *testing.T) {
	tk := New()
	root, box := tk.Root("Settings")

	c := tk.CreateContainer(root, "Video")
	tk.CreateDropdown(c, "Quality", "High", []string{"Low", "High"}, nil)

	if box.Length() != 1 {
		t.Fatalf("root box should hold the container, has %d", box.Length())
	}
	if inner := tk.boxOf(c); inner == nil || inner.Length() != 1 {
		t.Fatal("container box should hold the dropdown")
	}
}

func TestDestroyDetachesWidget(t *testing.T) {
	tk := New()
	root, box := tk.Root("Settings")
	a := tk.CreateContainer(root, "A")
	b := tk.CreateContainer(root, "B")

	tk.Destroy(a)

	if tk.Alive(a) || !tk.Alive(b) {
		t.Fatal("wrong object destroyed")
	}
	if box.Length() != 1 {
		t.Fatalf("expected one box left, got %d", box.Length())
	}
	tk.Destroy(a)
	if box.Length() != 1 {
		t.Fatal("destroying a dead handle must be a no-op")
	}
}

func TestSelectIndexIsSilent(t *testing.T) {
	tk := New()
	root, _ := tk.Root("Settings")
	fired := 0
	h := tk.CreateDropdown(root, "Difficulty", "Normal", []string{"Easy", "Normal", "Hard"}, func(string) { fired++ })

	if tk.SelectedIndex(h) != 1 {
		t.Fatalf("initial selection %d", tk.SelectedIndex(h))
	}
	tk.SelectIndex(h, 2)
	tk.SetOptions(h, []string{"Easy", "Normal", "Hard", "Nightmare"})
	if fired != 0 {
		t.Fatal("programmatic changes fired the callback")
	}
	if tk.SelectedIndex(h) != 2 {
		t.Fatalf("selection lost, got %d", tk.SelectedIndex(h))
	}
}

func TestUserSelectionFires(t *testing.T) {
	tk := New()
	root, _ := tk.Root("Settings")
	var got string
	h := tk.CreateDropdown(root, "Difficulty", "Easy", []string{"Easy", "Hard"}, func(v string) { got = v })

	_, d, _ := tk.dropdownOf(h)
	d.table.Select(1)
	if got != "Hard" || tk.SelectedIndex(h) != 1 {
		t.Fatalf("user selection not reported: %q", got)
	}

	got = ""
	tk.SetEnabled(h, false)
	d.table.Select(0)
	if got != "" {
		t.Fatal("disabled dropdown reported a selection")
	}
}

func TestLabelAndHint(t *testing.T) {
	tk := New()
	root, _ := tk.Root("Settings")
	h := tk.CreateDropdown(root, "Difficulty", "Easy", []string{"Easy"}, nil)

	l, ok := tk.Label(h)
	if !ok {
		t.Fatal("label not found")
	}
	tk.SetText(l, "Challenge")
	o, _ := tk.Tree().Get(l)
	if _, isLabel := o.Widget.(*tui.Label); !isLabel || o.Text != "Challenge" {
		t.Fatal("label not updated")
	}

	hint := tk.AddHoverHint(h, "How hard enemies hit")
	_, d, _ := tk.dropdownOf(h)
	if d.box.Length() != 3 {
		t.Fatalf("dropdown box should hold label, table and hint, has %d", d.box.Length())
	}
	tk.Destroy(hint)
	if d.box.Length() != 2 {
		t.Fatal("hint not detached")
	}
	if _, ok := tk.Tree().Find(h, objtree.KindHint); ok {
		t.Fatal("hint still in the tree")
	}
}

func TestFocusChainSkipsUnusable(t *testing.T) {
	tk := New()
	root, _ := tk.Root("Settings")
	a := tk.CreateDropdown(root, "A", "x", []string{"x"}, nil)
	b := tk.CreateDropdown(root, "B", "x", []string{"x"}, nil)
	c := tk.CreateDropdown(root, "C", "x", []string{"x"}, nil)
	tk.SetInteractable(b, false)

	_, da, _ := tk.dropdownOf(a)
	_, dc, _ := tk.dropdownOf(c)

	fc := NewFocusChain(tk, root)
	if fc.FocusDefault() != da.table {
		t.Fatal("default focus should be the first dropdown")
	}
	if fc.FocusNext(da.table) != dc.table {
		t.Fatal("non-interactable dropdown should be skipped")
	}
	if fc.FocusNext(dc.table) != da.table {
		t.Fatal("focus should wrap")
	}
	if fc.FocusPrev(da.table) != dc.table {
		t.Fatal("focus should wrap backwards")
	}
}
