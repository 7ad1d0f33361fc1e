package scene

import (
	"github.com/grindlemire/go-gui/internal/layout"
	"github.com/grindlemire/go-gui/internal/tree"
)

// View is a read-only window onto the scene for renderers and hit
// testing. It is valid until the scene is next modified.
type View struct {
	s *Scene
}

// View returns a read-only view of the scene.
func (s *Scene) View() View {
	return View{s: s}
}

// Len returns the number of retained nodes.
func (v View) Len() int {
	if v.s == nil {
		return 0
	}
	return len(v.s.nodes)
}

// Viewport returns the frame bounds.
func (v View) Viewport() layout.Rect {
	if v.s == nil {
		return layout.Rect{}
	}
	return v.s.viewport
}

// Root returns the root node.
func (v View) Root() (Node, bool) {
	if v.s == nil || v.s.root == 0 {
		return Node{}, false
	}
	return v.Node(v.s.root)
}

// Node returns a copy of the node with the given ID.
func (v View) Node(id tree.ID) (Node, bool) {
	if v.s == nil {
		return Node{}, false
	}
	n, ok := v.s.nodes[id]
	if !ok {
		return Node{}, false
	}
	return *n, true
}

// Walk visits nodes in paint order, parents before children and earlier
// siblings before later ones. Returning false skips a node's children.
func (v View) Walk(fn func(n *Node, depth int) bool) {
	if v.s == nil || v.s.root == 0 {
		return
	}
	v.walk(v.s.root, 0, fn)
}

func (v View) walk(id tree.ID, depth int, fn func(*Node, int) bool) {
	n := v.s.nodes[id]
	c := *n
	if !fn(&c, depth) {
		return
	}
	for _, child := range n.Children {
		v.walk(child, depth+1, fn)
	}
}

// Path returns the IDs from the root down to id, or nil when id is not
// present.
func (v View) Path(id tree.ID) []tree.ID {
	if v.s == nil {
		return nil
	}
	var rev []tree.ID
	for id != 0 {
		n, ok := v.s.nodes[id]
		if !ok {
			return nil
		}
		rev = append(rev, id)
		id = n.Parent
	}
	out := make([]tree.ID, len(rev))
	for i, id := range rev {
		out[len(rev)-1-i] = id
	}
	return out
}

// Snapshot rebuilds the scene as an immutable tree.
func (s *Scene) Snapshot() *tree.Tree {
	t := tree.New(nil)
	if s.root == 0 {
		return t
	}
	var add func(id tree.ID, parent int)
	add = func(id tree.ID, parent int) {
		n := s.nodes[id]
		i, err := t.Add(parent, tree.Node{
			ID:        n.ID,
			Key:       n.Key,
			Kind:      n.Kind,
			Payload:   n.Payload,
			Focusable: n.Focusable,
			Style:     n.Style,
			Box:       n.Box,
		})
		if err != nil {
			// IDs in the scene are unique.
			panic(err)
		}
		for _, c := range n.Children {
			add(c, i)
		}
	}
	add(s.root, -1)
	return t
}
