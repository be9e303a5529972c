package printers

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"tableflip.dev/retain/pkg/glyph"
	"tableflip.dev/retain/pkg/platform"
	"tableflip.dev/retain/pkg/platform/objtree"
)

// Field is a setting as printed by Values.
type Field interface {
	GetName() string
	GetHoverHint() string
	Current() string
	Choices() []string
}

type PrettyPrint struct {
	ShowHints bool
	// Out defaults to color.Output.
	Out io.Writer
}

func (pp *PrettyPrint) out() io.Writer {
	if pp.Out == nil {
		return color.Output
	}
	return pp.Out
}

func (pp *PrettyPrint) NewLine() {
	_, _ = fmt.Fprintln(pp.out(), "")
}

func (pp *PrettyPrint) Title(title string) {
	t := color.New(color.Bold, color.Underline)
	_, _ = t.Fprintln(pp.out(), title)
}

func (pp *PrettyPrint) TitleWithCount(title string, count int) {
	t := color.New(color.Bold, color.Underline)
	c := color.New(color.Faint)

	_, _ = t.Fprint(pp.out(), title)
	_, _ = c.Fprintf(pp.out(), " - %d", count)

	switch count {
	case 1:
		_, _ = c.Fprintln(pp.out(), " setting")
	default:
		_, _ = c.Fprintln(pp.out(), " settings")
	}
}

// Values prints one row per field: name, current choice and the other
// choices.
func (pp *PrettyPrint) Values(fields ...Field) {
	if len(fields) == 0 {
		f := color.New(color.Faint, color.Italic)
		_, _ = f.Fprint(pp.out(), " none\n\n")
		return
	}

	cur := color.New(color.FgHiYellow, color.Bold)
	faint := color.New(color.Faint)

	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.MaxColWidth = 60
	tbl.Wrap = true
	for _, f := range fields {
		tbl.AddRow(f.GetName(), cur.Sprint(f.Current()), faint.Sprint(strings.Join(f.Choices(), " | ")))
		if pp.ShowHints && f.GetHoverHint() != "" {
			tbl.AddRow("", faint.Sprint(f.GetHoverHint()))
		}
	}
	tbl.RightAlign(0)

	_, _ = fmt.Fprintln(pp.out(), tbl)
}

// Tree prints the objects below root, one per line, indented by depth.
func (pp *PrettyPrint) Tree(tree *objtree.Tree, root platform.Handle) {
	faint := color.New(color.Faint)
	bold := color.New(color.Bold)

	tree.Walk(root, func(depth int, o *objtree.Object) bool {
		var b strings.Builder
		b.WriteString(strings.Repeat("  ", depth))
		for i, g := range glyph.ForObject(o) {
			if i > 0 {
				b.WriteString(" ")
			}
			b.WriteString(g.Symbol)
		}
		b.WriteString(" ")

		switch o.Kind {
		case objtree.KindDropdown:
			b.WriteString(o.Text)
			if o.Selected >= 0 && o.Selected < len(o.Options) {
				b.WriteString(": ")
				b.WriteString(bold.Sprint(o.Options[o.Selected]))
			}
			b.WriteString(faint.Sprintf(" [%s]", strings.Join(o.Options, ", ")))
		case objtree.KindHint:
			if !pp.ShowHints {
				return true
			}
			b.WriteString(faint.Sprint(o.Text))
		case objtree.KindRoot, objtree.KindContainer:
			b.WriteString(bold.Sprint(o.Text))
		default:
			b.WriteString(o.Text)
		}
		b.WriteString(faint.Sprintf("  #%d", o.Handle))
		_, _ = fmt.Fprintln(pp.out(), b.String())
		return true
	})
}

// Legend prints a glyph table.
func (pp *PrettyPrint) Legend(glyphs []glyph.Glyph) {
	bold := color.New(color.Bold)

	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow(bold.Sprint("Glyph"), bold.Sprint("Meaning"))
	for _, g := range glyphs {
		tbl.AddRow(g.Symbol, g.Meaning)
	}
	tbl.RightAlign(0)

	_, _ = fmt.Fprintln(pp.out(), tbl)
}
