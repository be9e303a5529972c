// Package platform describes the native widget toolkit the render layer drives.
// The render layer never allocates, draws or frees widgets itself; it asks a
// Toolkit to do so and only keeps the returned Handles.
package platform

// Handle is an opaque reference to a toolkit object.
type Handle uint64

// None is the null handle.
const None Handle = 0

// Tree is the part of a toolkit that owns object lifetime.
type Tree interface {
	// Alive reports whether h still refers to a live object.
	Alive(h Handle) bool
	// Children returns the current direct children of h, including objects
	// that were not created through the render layer.
	Children(h Handle) []Handle
	// Destroy frees h and everything below it. Destroying a dead handle is a
	// no-op.
	Destroy(h Handle)
}

// Toolkit is the widget service used by components.
//
// Implementations must not invoke a dropdown's onSelect callback for
// selections made through SelectIndex; only user input fires it.
type Toolkit interface {
	Tree

	// CreateContainer allocates a titled container below parent.
	CreateContainer(parent Handle, title string) Handle
	// CreateDropdown allocates a labelled dropdown below parent.
	CreateDropdown(parent Handle, label, selected string, options []string, onSelect func(value string)) Handle

	SetEnabled(h Handle, enabled bool)
	SetInteractable(h Handle, interactable bool)

	// Label resolves the text object that displays the label of the
	// dropdown h.
	Label(h Handle) (Handle, bool)
	SetText(h Handle, text string)

	// SetOptions replaces the whole option list of the dropdown h.
	SetOptions(h Handle, options []string)
	SelectedIndex(h Handle) int
	SelectIndex(h Handle, index int)
}

// HoverHinter is implemented by toolkits that can attach a hover hint to an
// object. It returns the handle of the hint object.
type HoverHinter interface {
	AddHoverHint(h Handle, hint string) Handle
}
