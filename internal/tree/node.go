package tree

import (
	"github.com/grindlemire/go-gui/internal/layout"
	"github.com/grindlemire/go-gui/internal/style"
)

// Node is one element in the arena.
type Node struct {
	ID      ID
	Key     string
	Kind    Kind
	Payload Payload

	// Declared style.
	ElementID    string
	Classes      []string
	Declarations []style.Declaration
	Inherit      style.PropertySet

	Focusable bool

	// Computed per frame.
	Style style.Resolved
	Box   layout.Layout

	Parent   int // -1 for the root
	Children []int

	size int // nodes in this subtree
}

// Subject returns what style selectors match against.
func (n *Node) Subject() style.Subject {
	return style.Subject{Kind: n.Kind.String(), ID: n.ElementID, Classes: n.Classes}
}

// Label names the node in logs and errors.
func (n *Node) Label() string {
	label := n.Kind.String()
	switch {
	case n.ElementID != "":
		label += "#" + n.ElementID
	case n.Key != "":
		label += "[" + n.Key + "]"
	}
	return label + n.ID.String()
}
