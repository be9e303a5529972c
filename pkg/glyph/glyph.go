// Package glyph maps platform objects and their states to the symbols the
// tree printer and the legend use.
package glyph

import (
	"fmt"

	"tableflip.dev/retain/pkg/platform/objtree"
)

type Glyph struct {
	Symbol  string
	Meaning string
	// State marks glyphs describing a widget state rather than a kind.
	State bool
	Order int
}

var kinds = map[objtree.Kind]Glyph{
	objtree.KindRoot:      {Symbol: "◆", Meaning: "root container", Order: 0},
	objtree.KindContainer: {Symbol: "▸", Meaning: "section", Order: 1},
	objtree.KindDropdown:  {Symbol: "●", Meaning: "dropdown", Order: 2},
	objtree.KindLabel:     {Symbol: "⁃", Meaning: "label", Order: 3},
	objtree.KindHint:      {Symbol: "?", Meaning: "hover hint", Order: 4},
	objtree.KindForeign:   {Symbol: "○", Meaning: "object not owned by a component", Order: 5},
}

var (
	Disabled = Glyph{Symbol: "⦵", Meaning: "disabled", State: true, Order: 10}
	Locked   = Glyph{Symbol: "‹", Meaning: "not interactable", State: true, Order: 11}
	Unknown  = Glyph{Symbol: "·", Meaning: "unknown", Order: 99}
)

// ForKind returns the glyph of k.
func ForKind(k objtree.Kind) Glyph {
	if g, ok := kinds[k]; ok {
		return g
	}
	return Unknown
}

// ForObject returns the kind glyph of o followed by its state glyphs.
func ForObject(o *objtree.Object) []Glyph {
	g := []Glyph{ForKind(o.Kind)}
	if !o.Enabled {
		g = append(g, Disabled)
	}
	if !o.Interactable {
		g = append(g, Locked)
	}
	return g
}

// Legend returns every glyph: kinds first, then states.
func Legend() []Glyph {
	out := make([]Glyph, 0, len(kinds)+2)
	for _, g := range kinds {
		out = append(out, g)
	}
	out = append(out, Disabled, Locked)
	return out
}

type ByOrder []Glyph

func (a ByOrder) Len() int           { return len(a) }
func (a ByOrder) Swap(i, j int)      { a[i], a[j] = a[j], a[i] }
func (a ByOrder) Less(i, j int) bool { return a[i].Order < a[j].Order }

func (g Glyph) String() string {
	return fmt.Sprintf("%s %s", g.Symbol, g.Meaning)
}
