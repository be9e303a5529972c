package main

import (
	"fmt"
	"log"

	"github.com/fatih/color"

	"tableflip.dev/retain/pkg/platform"
	"tableflip.dev/retain/pkg/platform/headless"
	"tableflip.dev/retain/pkg/platform/objtree"
	"tableflip.dev/retain/pkg/printers"
	"tableflip.dev/retain/pkg/render"
	"tableflip.dev/retain/pkg/screen"
	"tableflip.dev/retain/pkg/store"
)

// demo renders the settings screen against an in-memory store, plays a few
// user choices and prints the toolkit calls each step caused.
func main() {
	tk := headless.New()
	root := tk.Root("Settings")
	ctx := render.New(tk, root)
	s := screen.New(screen.Bind(store.NewMemory()))
	defer s.Close()

	pp := printers.PrettyPrint{}
	step := func(title string, fn func()) {
		tk.Reset()
		fn()
		pp.TitleWithCount(title, len(tk.Calls()))
		for _, c := range tk.Calls() {
			_, _ = fmt.Fprintln(color.Output, "  "+c.String())
		}
		pp.NewLine()
	}

	step("first render", func() { s.Render(ctx) })
	step("second render, nothing changed", func() { s.Render(ctx) })
	step("choose Hard", func() { choose(tk, root, "Difficulty", "Hard") })
	step("show advanced", func() { choose(tk, root, "Show advanced", "On") })
	step("hide advanced", func() { choose(tk, root, "Show advanced", "Off") })

	pp.Title("final tree")
	pp.Tree(tk.Tree, root)
}

func choose(tk *headless.Toolkit, root platform.Handle, label, value string) {
	var target *objtree.Object
	tk.Walk(root, func(_ int, o *objtree.Object) bool {
		if target == nil && o.Kind == objtree.KindDropdown && o.Text == label {
			target = o
		}
		return target == nil
	})
	if target == nil {
		log.Fatalf("no dropdown %q", label)
	}
	for i, opt := range target.Options {
		if opt == value {
			if err := tk.Choose(target.Handle, i); err != nil {
				log.Fatalf("choose %s=%s: %v", label, value, err)
			}
			return
		}
	}
	log.Fatalf("%q has no option %q", label, value)
}
