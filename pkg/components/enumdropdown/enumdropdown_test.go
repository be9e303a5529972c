package enumdropdown

import (
	"testing"

	"tableflip.dev/retain/pkg/key"
	"tableflip.dev/retain/pkg/platform"
	"tableflip.dev/retain/pkg/platform/headless"
	"tableflip.dev/retain/pkg/platform/objtree"
	"tableflip.dev/retain/pkg/render"
	"tableflip.dev/retain/pkg/settings"
	"tableflip.dev/retain/pkg/store"
)

type difficulty int

const (
	easy difficulty = iota
	normal
	hard
)

func difficulties() *Table[difficulty] {
	return NewTable(
		Pair[difficulty]{Value: easy, Name: "Easy"},
		Pair[difficulty]{Value: normal, Name: "Normal"},
		Pair[difficulty]{Value: hard, Name: "Hard"},
	)
}

func TestTableLookupsFallBack(t *testing.T) {
	tbl := difficulties()

	if got := tbl.Name(hard); got != "Hard" {
		t.Fatalf("Name(hard) = %q", got)
	}
	if got := tbl.Name(difficulty(42)); got != "Easy" {
		t.Fatalf("unmapped value should name the first entry, got %q", got)
	}
	if got := tbl.Parse("Normal"); got != normal {
		t.Fatalf("Parse(Normal) = %d", got)
	}
	if got := tbl.Parse("Impossible"); got != easy {
		t.Fatalf("unknown name should parse to the first entry, got %d", got)
	}
	if names := tbl.Names(); len(names) != 3 || names[2] != "Hard" {
		t.Fatalf("unexpected names %v", names)
	}
}

func TestEmptyTable(t *testing.T) {
	tbl := NewTable[difficulty]()
	if tbl.Name(hard) != "" {
		t.Fatal("empty table should name nothing")
	}
	if tbl.Parse("Hard") != 0 {
		t.Fatal("empty table should parse to zero")
	}
}

func TestDuplicateValuesKeepFirst(t *testing.T) {
	tbl := NewTable(
		Pair[difficulty]{Value: easy, Name: "Easy"},
		Pair[difficulty]{Value: easy, Name: "Simple"},
	)
	if tbl.Len() != 1 || tbl.Name(easy) != "Easy" {
		t.Fatal("duplicate enum values should be ignored")
	}
}

func setup(t *testing.T) (*headless.Toolkit, *render.Context, *settings.Stored[difficulty]) {
	t.Helper()
	tk := headless.New()
	ctx := render.New(tk, tk.Root("settings"))
	cfg := settings.New(store.NewMemory(), "Difficulty", normal, settings.WithHoverHint("How hard enemies hit"))
	return tk, ctx, cfg
}

func TestRenderShowsConfigValue(t *testing.T) {
	tk, ctx, cfg := setup(t)
	s := New(key.Named("difficulty"), difficulties(), cfg, nil)

	h := render.Render(ctx, s)

	o, ok := tk.Get(h)
	if !ok {
		t.Fatal("dropdown not created")
	}
	if o.Text != "Difficulty" {
		t.Fatalf("label should default to the config name, got %q", o.Text)
	}
	if o.Selected != 1 {
		t.Fatalf("expected Normal selected, got %d", o.Selected)
	}
	if len(o.Options) != 3 {
		t.Fatalf("expected table names as options, got %v", o.Options)
	}
}

func TestStaleConfigValueRendersFirstEntry(t *testing.T) {
	tk, ctx, cfg := setup(t)
	cfg.SetValue(difficulty(99))
	s := New(key.Named("difficulty"), difficulties(), cfg, nil)

	h := render.Render(ctx, s)

	o, _ := tk.Get(h)
	if o.Selected != 0 {
		t.Fatalf("expected fallback to the first entry, got %d", o.Selected)
	}
	if s.Value() != "Easy" {
		t.Fatalf("Value() = %q", s.Value())
	}
}

func TestUserChoiceWritesConfigBeforeCallback(t *testing.T) {
	tk, ctx, cfg := setup(t)

	var got difficulty
	var parent platform.Handle
	s := New(key.Named("difficulty"), difficulties(), cfg,
		func(_ *Setting[difficulty], v difficulty, p platform.Handle, _ *render.Context) {
			if cfg.GetValue() != v {
				t.Errorf("config not written before callback: %d vs %d", cfg.GetValue(), v)
			}
			got = v
			parent = p
		})
	h := render.Render(ctx, s)

	if err := tk.Choose(h, 2); err != nil {
		t.Fatal(err)
	}
	if got != hard || cfg.GetValue() != hard {
		t.Fatalf("callback value %d, config %d", got, cfg.GetValue())
	}
	if parent != ctx.Parent() {
		t.Fatal("callback should receive the container")
	}
}

func TestExternalConfigChangeAppliedOnRender(t *testing.T) {
	tk, ctx, cfg := setup(t)
	s := New(key.Named("difficulty"), difficulties(), cfg, nil)
	h := render.Render(ctx, s)

	cfg.SetValue(hard)
	tk.Reset()
	render.Render(ctx, s)

	if n := tk.Count(headless.OpSelectIndex); n != 1 {
		t.Fatalf("expected the new value to be selected, got %v", tk.Calls())
	}
	o, _ := tk.Get(h)
	if o.Selected != 2 {
		t.Fatalf("expected Hard selected, got %d", o.Selected)
	}

	// Same value again: nothing to select.
	tk.Reset()
	render.Render(ctx, s)
	if n := tk.Count(headless.OpSelectIndex); n != 0 {
		t.Fatalf("unchanged value must not reselect, got %v", tk.Calls())
	}
}

func TestUpdateFollowsConfig(t *testing.T) {
	tk, ctx, cfg := setup(t)
	s := New(key.Named("difficulty"), difficulties(), cfg, nil)
	h := render.Render(ctx, s)

	cfg.SetValue(easy)
	s.Update(ctx)

	o, _ := tk.Get(h)
	if o.Selected != 0 {
		t.Fatalf("expected Easy selected, got %d", o.Selected)
	}
}

func TestHoverHintAttachedOnce(t *testing.T) {
	tk, ctx, cfg := setup(t)
	s := New(key.Named("difficulty"), difficulties(), cfg, nil)

	h := render.Render(ctx, s)
	render.Render(ctx, s)

	if n := tk.Count(headless.OpAddHoverHint); n != 1 {
		t.Fatalf("expected one hover hint, got %d", n)
	}
	hint, ok := tk.Find(h, objtree.KindHint)
	if !ok || hint.Text != "How hard enemies hit" {
		t.Fatal("hint not attached to the dropdown")
	}
}

func TestNoHintWithoutText(t *testing.T) {
	tk := headless.New()
	ctx := render.New(tk, tk.Root("settings"))
	cfg := settings.New(store.NewMemory(), "Difficulty", normal)

	render.Render(ctx, New(key.Named("difficulty"), difficulties(), cfg, nil))
	if n := tk.Count(headless.OpAddHoverHint); n != 0 {
		t.Fatal("no hint expected")
	}
}
