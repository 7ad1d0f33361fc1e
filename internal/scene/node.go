package scene

import (
	"github.com/grindlemire/go-gui/internal/layout"
	"github.com/grindlemire/go-gui/internal/style"
	"github.com/grindlemire/go-gui/internal/tree"
)

// Node is a retained node. Links are by ID so nodes survive reordering.
type Node struct {
	ID        tree.ID
	Parent    tree.ID // zero for the root
	Children  []tree.ID
	Kind      tree.Kind
	Key       string
	Focusable bool
	Payload   tree.Payload
	Style     style.Resolved
	Box       layout.Layout

	Texture  Handle // zero when the kind has no texture or the box is empty
	Vertices Handle
}

func (n *Node) treeNode() *tree.Node {
	return &tree.Node{
		ID:        n.ID,
		Key:       n.Key,
		Kind:      n.Kind,
		Payload:   n.Payload,
		Focusable: n.Focusable,
		Style:     n.Style,
		Box:       n.Box,
	}
}

// PaintBounds returns the area painting n may touch.
func (n *Node) PaintBounds() layout.Rect {
	return n.treeNode().PaintBounds()
}

// HitTest reports whether p lands on n's own shape.
func (n *Node) HitTest(p layout.Point) bool {
	return n.treeNode().HitTest(p)
}

func (n *Node) handles() []Handle {
	var hs []Handle
	if n.Texture != 0 {
		hs = append(hs, n.Texture)
	}
	if n.Vertices != 0 {
		hs = append(hs, n.Vertices)
	}
	return hs
}
