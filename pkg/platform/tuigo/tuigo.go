// Package tuigo implements platform.Toolkit on top of tui-go. Containers are
// bordered boxes, dropdowns are a label over a one column table of options.
//
// tui-go is not safe for concurrent use; every method must run on the UI
// goroutine (inside tui.UI.Update when called from elsewhere).
package tuigo

import (
	"github.com/marcusolsson/tui-go"

	"tableflip.dev/retain/pkg/platform"
	"tableflip.dev/retain/pkg/platform/objtree"
)

// Style names registered by Theme.
const (
	StyleDisabled = "disabled"
	StyleHint     = "hint"
	StyleTitle    = "title"
)

// dropdown is the widget payload of a dropdown object.
type dropdown struct {
	box   *tui.Box
	label *tui.Label
	table *tui.Table

	// suppress is set while the toolkit moves the selection itself.
	suppress bool
}

// Toolkit implements platform.Toolkit and platform.HoverHinter.
type Toolkit struct {
	tree *objtree.Tree
}

var (
	_ platform.Toolkit     = (*Toolkit)(nil)
	_ platform.HoverHinter = (*Toolkit)(nil)
)

// New returns an empty toolkit.
func New() *Toolkit {
	return &Toolkit{tree: objtree.New()}
}

// Root creates a top level box. Its widget is what gets handed to tui.New.
func (t *Toolkit) Root(title string) (platform.Handle, *tui.Box) {
	box := tui.NewVBox()
	box.SetTitle(title)
	box.SetBorder(true)
	box.SetSizePolicy(tui.Expanding, tui.Expanding)

	o := t.tree.Add(platform.None, objtree.KindRoot)
	o.Text = title
	o.Widget = box
	return o.Handle, box
}

// Tree exposes the object bookkeeping, e.g. for printing.
func (t *Toolkit) Tree() *objtree.Tree {
	return t.tree
}

// Alive implements platform.Tree.
func (t *Toolkit) Alive(h platform.Handle) bool {
	return t.tree.Alive(h)
}

// Children implements platform.Tree.
func (t *Toolkit) Children(h platform.Handle) []platform.Handle {
	return t.tree.Children(h)
}

// Destroy implements platform.Tree. The widget is detached from its parent
// box before the bookkeeping is dropped.
func (t *Toolkit) Destroy(h platform.Handle) {
	o, ok := t.tree.Get(h)
	if !ok {
		return
	}
	if box, i := t.position(o); box != nil && i >= 0 && i < box.Length() {
		box.Remove(i)
	}
	t.tree.Destroy(h)
}

// position returns the box holding o and o's index inside it. A dropdown box
// holds its table right after the label, which shifts later children by one.
func (t *Toolkit) position(o *objtree.Object) (*tui.Box, int) {
	p, ok := t.tree.Get(o.Parent)
	if !ok {
		return nil, -1
	}
	i := t.tree.IndexOf(o.Handle)
	switch w := p.Widget.(type) {
	case *tui.Box:
		return w, i
	case *dropdown:
		if i > 0 {
			i++
		}
		return w.box, i
	}
	return nil, -1
}

func (t *Toolkit) boxOf(h platform.Handle) *tui.Box {
	o, ok := t.tree.Get(h)
	if !ok {
		return nil
	}
	switch w := o.Widget.(type) {
	case *tui.Box:
		return w
	case *dropdown:
		return w.box
	}
	return nil
}

// CreateContainer implements platform.Toolkit.
func (t *Toolkit) CreateContainer(parent platform.Handle, title string) platform.Handle {
	box := tui.NewVBox()
	box.SetTitle(title)
	box.SetBorder(true)
	box.SetSizePolicy(tui.Expanding, tui.Maximum)

	o := t.tree.Add(parent, objtree.KindContainer)
	o.Text = title
	o.Widget = box
	if pb := t.boxOf(parent); pb != nil {
		pb.Append(box)
	}
	return o.Handle
}

// CreateDropdown implements platform.Toolkit.
func (t *Toolkit) CreateDropdown(parent platform.Handle, label, selected string, options []string, onSelect func(string)) platform.Handle {
	d := &dropdown{
		label: tui.NewLabel(label),
		table: tui.NewTable(1, 0),
	}
	d.label.SetStyleName(StyleTitle)
	d.box = tui.NewVBox(d.label, d.table)
	d.box.SetSizePolicy(tui.Expanding, tui.Maximum)

	o := t.tree.Add(parent, objtree.KindDropdown)
	o.Text = label
	o.Widget = d
	o.OnSelect = onSelect

	l := t.tree.Add(o.Handle, objtree.KindLabel)
	l.Text = label
	l.Widget = d.label

	t.fill(o, d, options)
	t.selectRow(o, d, indexOf(o.Options, selected))

	d.table.OnSelectionChanged(func(tb *tui.Table) {
		if d.suppress || !o.Enabled || !o.Interactable {
			return
		}
		i := tb.Selected()
		if i < 0 || i >= len(o.Options) {
			return
		}
		o.Selected = i
		if o.OnSelect != nil {
			o.OnSelect(o.Options[i])
		}
	})

	if pb := t.boxOf(parent); pb != nil {
		pb.Append(d.box)
	}
	return o.Handle
}

func (t *Toolkit) fill(o *objtree.Object, d *dropdown, options []string) {
	o.Options = append([]string(nil), options...)
	d.table.RemoveRows()
	for _, opt := range o.Options {
		d.table.AppendRow(tui.NewLabel(opt))
	}
}

func (t *Toolkit) selectRow(o *objtree.Object, d *dropdown, i int) {
	d.suppress = true
	d.table.Select(i)
	d.suppress = false
	o.Selected = i
}

func (t *Toolkit) dropdownOf(h platform.Handle) (*objtree.Object, *dropdown, bool) {
	o, ok := t.tree.Get(h)
	if !ok {
		return nil, nil, false
	}
	d, ok := o.Widget.(*dropdown)
	return o, d, ok
}

// SetEnabled implements platform.Toolkit. tui-go has no disabled state, so a
// disabled dropdown is dimmed and loses focus.
func (t *Toolkit) SetEnabled(h platform.Handle, enabled bool) {
	o, d, ok := t.dropdownOf(h)
	if !ok {
		if o, ok := t.tree.Get(h); ok {
			o.Enabled = enabled
		}
		return
	}
	o.Enabled = enabled
	t.restyle(o, d)
}

// SetInteractable implements platform.Toolkit.
func (t *Toolkit) SetInteractable(h platform.Handle, interactable bool) {
	o, d, ok := t.dropdownOf(h)
	if !ok {
		if o, ok := t.tree.Get(h); ok {
			o.Interactable = interactable
		}
		return
	}
	o.Interactable = interactable
	t.restyle(o, d)
}

func (t *Toolkit) restyle(o *objtree.Object, d *dropdown) {
	if o.Enabled && o.Interactable {
		d.label.SetStyleName(StyleTitle)
		return
	}
	d.label.SetStyleName(StyleDisabled)
	d.table.SetFocused(false)
}

// Label implements platform.Toolkit.
func (t *Toolkit) Label(h platform.Handle) (platform.Handle, bool) {
	l, ok := t.tree.Find(h, objtree.KindLabel)
	if !ok {
		return platform.None, false
	}
	return l.Handle, true
}

// SetText implements platform.Toolkit. Containers take the text as title.
func (t *Toolkit) SetText(h platform.Handle, text string) {
	o, ok := t.tree.Get(h)
	if !ok {
		return
	}
	o.Text = text
	switch w := o.Widget.(type) {
	case *tui.Label:
		w.SetText(text)
	case *tui.Box:
		w.SetTitle(text)
	}
}

// SetOptions implements platform.Toolkit.
func (t *Toolkit) SetOptions(h platform.Handle, options []string) {
	o, d, ok := t.dropdownOf(h)
	if !ok {
		return
	}
	sel := o.Selected
	t.fill(o, d, options)
	if sel >= len(o.Options) {
		sel = 0
	}
	// RemoveRows drops the table selection; restore it without firing.
	d.suppress = true
	d.table.Select(-1)
	d.suppress = false
	t.selectRow(o, d, sel)
}

// SelectedIndex implements platform.Toolkit.
func (t *Toolkit) SelectedIndex(h platform.Handle) int {
	o, ok := t.tree.Get(h)
	if !ok {
		return -1
	}
	return o.Selected
}

// SelectIndex implements platform.Toolkit. It never fires the callback.
func (t *Toolkit) SelectIndex(h platform.Handle, index int) {
	o, d, ok := t.dropdownOf(h)
	if !ok || index < 0 || index >= len(o.Options) {
		return
	}
	t.selectRow(o, d, index)
}

// AddHoverHint implements platform.HoverHinter. Terminals have no hover, so
// the hint is a dim line under the widget.
func (t *Toolkit) AddHoverHint(h platform.Handle, hint string) platform.Handle {
	l := tui.NewLabel(hint)
	l.SetStyleName(StyleHint)
	l.SetWordWrap(true)

	o := t.tree.Add(h, objtree.KindHint)
	o.Text = hint
	o.Widget = l
	if b := t.boxOf(h); b != nil {
		b.Append(l)
	}
	return o.Handle
}

// Focusable returns the tables of live, usable dropdowns below h in tree
// order.
func (t *Toolkit) Focusable(h platform.Handle) []tui.Widget {
	var out []tui.Widget
	t.tree.Walk(h, func(_ int, o *objtree.Object) bool {
		if d, ok := o.Widget.(*dropdown); ok && o.Enabled && o.Interactable {
			out = append(out, d.table)
		}
		return true
	})
	return out
}

func indexOf(options []string, value string) int {
	for i, o := range options {
		if o == value {
			return i
		}
	}
	return 0
}
