package dropdown

import (
	"testing"

	"tableflip.dev/retain/pkg/key"
	"tableflip.dev/retain/pkg/platform"
	"tableflip.dev/retain/pkg/platform/headless"
	"tableflip.dev/retain/pkg/platform/objtree"
	"tableflip.dev/retain/pkg/render"
)

var difficulties = []string{"Easy", "Normal", "Hard"}

func setup(t *testing.T) (*headless.Toolkit, platform.Handle, *render.Context) {
	t.Helper()
	tk := headless.New()
	root := tk.Root("settings")
	return tk, root, render.New(tk, root)
}

func widget(t *testing.T, tk *headless.Toolkit, h platform.Handle) *objtree.Object {
	t.Helper()
	o, ok := tk.Get(h)
	if !ok {
		t.Fatalf("widget %d is not alive", h)
	}
	return o
}

func TestFirstRenderCreatesOnce(t *testing.T) {
	tk, root, ctx := setup(t)
	d := New(key.Named("difficulty"), "Difficulty", "Normal", difficulties, nil)

	h := render.Render(ctx, d)

	if n := tk.Count(headless.OpCreateDropdown); n != 1 {
		t.Fatalf("expected 1 create, got %d", n)
	}
	if n := tk.Count(headless.OpSetOptions) + tk.Count(headless.OpSelectIndex); n != 0 {
		t.Fatalf("expected no option/selection calls on create, got %v", tk.Calls())
	}
	if n := tk.Count(headless.OpSetEnabled); n != 1 {
		t.Fatalf("expected enabled applied once, got %d", n)
	}
	if n := tk.Count(headless.OpSetInteractable); n != 1 {
		t.Fatalf("expected interactable forced once, got %d", n)
	}

	o := widget(t, tk, h)
	if o.Parent != root {
		t.Fatalf("dropdown parented to %d, want %d", o.Parent, root)
	}
	if o.Selected != 1 {
		t.Fatalf("expected Normal (1) selected, got %d", o.Selected)
	}
	if d.Label.IsSet() || d.Selected.IsSet() || d.Options.IsSet() || d.Enabled.IsSet() || d.Interactable.IsSet() {
		t.Fatal("all fields should be consumed after the first render")
	}
}

func TestSecondRenderWithoutChangesIsIdle(t *testing.T) {
	tk, _, ctx := setup(t)
	d := New(key.Named("difficulty"), "Difficulty", "Normal", difficulties, nil)

	first := render.Render(ctx, d)
	tk.Reset()
	second := render.Render(ctx, d)

	if first != second {
		t.Fatal("second render must reuse the widget")
	}
	if calls := tk.Calls(); len(calls) != 0 {
		t.Fatalf("expected no platform calls, got %v", calls)
	}
}

func TestChangingValueSelectsNewIndexOnce(t *testing.T) {
	tk, _, ctx := setup(t)
	d := New(key.Named("difficulty"), "Difficulty", "Normal", difficulties, nil)
	h := render.Render(ctx, d)
	tk.Reset()

	d.SetValue("Hard")
	render.Render(ctx, d)

	var selects []headless.Call
	for _, c := range tk.Calls() {
		if c.Op == headless.OpSelectIndex {
			selects = append(selects, c)
		}
	}
	if len(selects) != 1 || selects[0].Handle != h || selects[0].Args[0] != 2 {
		t.Fatalf("expected SelectIndex(h, 2) once, got %v", tk.Calls())
	}
	if n := tk.Count(headless.OpSetOptions); n != 0 {
		t.Fatalf("options were not pending, got %d SetOptions", n)
	}
	if got := widget(t, tk, h).Selected; got != 2 {
		t.Fatalf("expected index 2 selected, got %d", got)
	}
	if d.Value() != "Hard" {
		t.Fatalf("Value() = %q", d.Value())
	}
}

func TestUnknownValueSelectsFirstOption(t *testing.T) {
	tk, _, ctx := setup(t)
	d := New(key.Named("difficulty"), "Difficulty", "Hard", difficulties, nil)
	h := render.Render(ctx, d)

	d.SetValue("Impossible")
	render.Render(ctx, d)

	if got := widget(t, tk, h).Selected; got != 0 {
		t.Fatalf("expected fallback to index 0, got %d", got)
	}
}

func TestSameValueSkipsSelectButAppliesOptions(t *testing.T) {
	tk, _, ctx := setup(t)
	d := New(key.Named("difficulty"), "Difficulty", "Normal", difficulties, nil)
	render.Render(ctx, d)
	tk.Reset()

	d.SetValue("Normal")
	render.Render(ctx, d)
	if n := tk.Count(headless.OpSelectIndex); n != 0 {
		t.Fatalf("unchanged index must not be reselected, got %v", tk.Calls())
	}
	if n := tk.Count(headless.OpSetOptions); n != 0 {
		t.Fatalf("options were not pending, got %v", tk.Calls())
	}

	tk.Reset()
	d.SetValue("Normal")
	d.SetOptions([]string{"Easy", "Normal", "Hard", "Nightmare"})
	render.Render(ctx, d)
	if n := tk.Count(headless.OpSetOptions); n != 1 {
		t.Fatalf("expected options replaced once, got %v", tk.Calls())
	}
	if n := tk.Count(headless.OpSelectIndex); n != 0 {
		t.Fatalf("index unchanged, got %v", tk.Calls())
	}
}

func TestOptionsAloneClearValueToo(t *testing.T) {
	tk, _, ctx := setup(t)
	d := New(key.Named("difficulty"), "Difficulty", "Normal", difficulties, nil)
	h := render.Render(ctx, d)

	d.SetOptions([]string{"Normal", "Hard"})
	render.Render(ctx, d)

	if d.Options.IsSet() || d.Selected.IsSet() {
		t.Fatal("value and options are cleared together")
	}
	if got := widget(t, tk, h).Selected; got != 0 {
		t.Fatalf("Normal moved to index 0, got %d", got)
	}
}

func TestDisabledSuppressesOtherFields(t *testing.T) {
	tk, _, ctx := setup(t)
	d := New(key.Named("difficulty"), "Difficulty", "Normal", difficulties, nil)
	h := render.Render(ctx, d)
	tk.Reset()

	d.SetEnabled(false).SetLabel("Level").SetValue("Hard")
	render.Render(ctx, d)

	calls := tk.Calls()
	if len(calls) != 1 || calls[0].Op != headless.OpSetEnabled || calls[0].Args[0] != false {
		t.Fatalf("expected only SetEnabled(false), got %v", calls)
	}
	if d.Enabled.IsSet() {
		t.Fatal("enabled flag should be consumed")
	}
	if !d.Label.IsSet() || !d.Selected.IsSet() {
		t.Fatal("suppressed fields stay pending")
	}

	tk.Reset()
	render.Render(ctx, d)
	if len(tk.Calls()) != 0 {
		t.Fatalf("a disabled widget is not touched, got %v", tk.Calls())
	}

	tk.Reset()
	d.SetEnabled(true)
	render.Render(ctx, d)
	if n := tk.Count(headless.OpSetText); n != 1 {
		t.Fatalf("expected label applied after re-enabling, got %v", tk.Calls())
	}
	if n := tk.Count(headless.OpSelectIndex); n != 1 {
		t.Fatalf("expected value applied after re-enabling, got %v", tk.Calls())
	}
	o := widget(t, tk, h)
	if !o.Enabled || o.Selected != 2 {
		t.Fatalf("unexpected widget state %+v", o)
	}
}

func TestLabelObjectResolvedOnce(t *testing.T) {
	tk, _, ctx := setup(t)
	d := New(key.Named("difficulty"), "Difficulty", "Normal", difficulties, nil)
	h := render.Render(ctx, d)

	d.SetLabel("Level")
	render.Render(ctx, d)
	d.SetLabel("Challenge")
	render.Render(ctx, d)

	if n := tk.Count(headless.OpLabel); n != 1 {
		t.Fatalf("expected a single label lookup, got %d", n)
	}
	label, _ := tk.Find(h, objtree.KindLabel)
	if label.Text != "Challenge" {
		t.Fatalf("label text %q", label.Text)
	}
}

func TestInteractableForcedOnCreate(t *testing.T) {
	tk, _, ctx := setup(t)
	d := New(key.Named("difficulty"), "Difficulty", "Normal", difficulties, nil)
	d.Interactable.Set(false)
	d.Interactable.Clear()

	h := render.Render(ctx, d)
	if n := tk.Count(headless.OpSetInteractable); n != 1 {
		t.Fatalf("interactable must be applied on create even when not pending, got %d", n)
	}
	if err := tk.Choose(h, 0); err != headless.ErrNotSelectable {
		t.Fatalf("expected ErrNotSelectable, got %v", err)
	}
}

func TestUserSelectionRunsCallback(t *testing.T) {
	tk, root, ctx := setup(t)

	var (
		gotValue  string
		gotParent platform.Handle
		gotCtx    *render.Context
		calls     int
	)
	d := New(key.Named("difficulty"), "Difficulty", "Normal", difficulties,
		func(s *Setting, value string, parent platform.Handle, c *render.Context) {
			calls++
			gotValue = value
			gotParent = parent
			gotCtx = c
			if s.Selected.IsSet() {
				t.Error("selected value should already be consumed in the callback")
			}
		})
	h := render.Render(ctx, d)

	if err := tk.Choose(h, 2); err != nil {
		t.Fatalf("choose: %v", err)
	}
	if calls != 1 || gotValue != "Hard" || gotParent != root || gotCtx != ctx {
		t.Fatalf("callback got calls=%d value=%q parent=%d", calls, gotValue, gotParent)
	}
	if d.Value() != "Hard" {
		t.Fatalf("Value() = %q", d.Value())
	}

	tk.Reset()
	render.Render(ctx, d)
	if len(tk.Calls()) != 0 {
		t.Fatalf("a user selection needs no re-apply, got %v", tk.Calls())
	}
}

func TestProgrammaticSelectionDoesNotRunCallback(t *testing.T) {
	_, _, ctx := setup(t)
	calls := 0
	d := New(key.Named("difficulty"), "Difficulty", "Normal", difficulties,
		func(*Setting, string, platform.Handle, *render.Context) { calls++ })
	render.Render(ctx, d)

	d.SetValue("Easy")
	render.Render(ctx, d)
	if calls != 0 {
		t.Fatalf("callback fired %d times for a programmatic change", calls)
	}
}

func TestFreshValuePerPassKeepsWidget(t *testing.T) {
	tk, _, ctx := setup(t)
	k := key.Named("difficulty")

	var lastOwner *Setting
	cb := func(s *Setting, _ string, _ platform.Handle, _ *render.Context) { lastOwner = s }

	first := New(k, "Difficulty", "Normal", difficulties, cb)
	h := render.Render(ctx, first)

	second := New(k, "Difficulty", "Normal", difficulties, cb)
	if got := render.Render(ctx, second); got != h {
		t.Fatal("a new value with the same key must reuse the widget")
	}
	if n := tk.Count(headless.OpCreateDropdown); n != 1 {
		t.Fatalf("expected a single widget, got %d creates", n)
	}

	if err := tk.Choose(h, 0); err != nil {
		t.Fatal(err)
	}
	if lastOwner != second {
		t.Fatal("callback should report to the most recently rendered value")
	}
	if second.Value() != "Easy" {
		t.Fatalf("Value() = %q", second.Value())
	}
}

func TestUpdateAppliesWithoutRenderPass(t *testing.T) {
	tk, _, ctx := setup(t)
	d := New(key.Named("difficulty"), "Difficulty", "Normal", difficulties, nil)
	other := New(key.Named("theme"), "Theme", "Dark", []string{"Dark", "Light"}, nil)
	render.RenderAll(ctx, d, other)
	tk.Reset()

	d.SetValue("Easy")
	d.Update(ctx)

	calls := tk.Calls()
	h, _ := d.Widget(ctx)
	for _, c := range calls {
		if c.Handle != h {
			t.Fatalf("Update touched another widget: %v", c)
		}
	}
	if n := tk.Count(headless.OpSelectIndex); n != 1 {
		t.Fatalf("expected one SelectIndex, got %v", calls)
	}
}

func TestUpdateBeforeRenderPanics(t *testing.T) {
	_, _, ctx := setup(t)
	d := New(key.Named("difficulty"), "Difficulty", "Normal", difficulties, nil)

	defer func() {
		if recover() == nil {
			t.Fatal("expected panic")
		}
		if ctx.Has(d.Key()) || ctx.Len() != 0 {
			t.Fatalf("failed update left a slot behind, %d slots", ctx.Len())
		}
	}()
	d.Update(ctx)
}

func TestWidgetLookup(t *testing.T) {
	_, _, ctx := setup(t)
	d := New(key.Named("difficulty"), "Difficulty", "Normal", difficulties, nil)
	if _, ok := d.Widget(ctx); ok {
		t.Fatal("no widget before the first render")
	}
	h := render.Render(ctx, d)
	if got, ok := d.Widget(ctx); !ok || got != h {
		t.Fatal("Widget should return the bound handle")
	}
}
