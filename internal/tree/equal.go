package tree

import (
	"fmt"
	"slices"
)

// Same reports whether two nodes carry the same identity, content, style
// and box. Parent and child links are not compared.
func Same(a, b *Node) bool {
	return a.ID == b.ID &&
		a.Key == b.Key &&
		a.Kind == b.Kind &&
		a.Focusable == b.Focusable &&
		a.Payload.Equal(b.Payload) &&
		a.Style == b.Style &&
		a.Box == b.Box
}

// Equal reports whether a and b describe the same tree: the same nodes in
// the same shape. When they differ, the returned string names the first
// difference in pre-order.
func Equal(a, b *Tree) (bool, string) {
	if a.Len() != b.Len() {
		return false, fmt.Sprintf("node count %d != %d", a.Len(), b.Len())
	}
	if a.Len() == 0 {
		return true, ""
	}
	return equalAt(a, b, 0, 0)
}

func equalAt(a, b *Tree, i, j int) (bool, string) {
	na, nb := a.Node(i), b.Node(j)
	if !Same(na, nb) {
		return false, fmt.Sprintf("node %s differs from %s", na.Label(), nb.Label())
	}
	if len(na.Children) != len(nb.Children) {
		return false, fmt.Sprintf("node %s has %d children, want %d", na.Label(), len(na.Children), len(nb.Children))
	}
	for k := range na.Children {
		if ok, why := equalAt(a, b, na.Children[k], nb.Children[k]); !ok {
			return false, why
		}
	}
	return true, ""
}

// ChildIDs returns the IDs of node i's children in order.
func (t *Tree) ChildIDs(i int) []ID {
	kids := t.nodes[i].Children
	out := make([]ID, len(kids))
	for k, c := range kids {
		out[k] = t.nodes[c].ID
	}
	return out
}

// Clone returns a deep copy of t's structure. Payload values are shared.
func (t *Tree) Clone() *Tree {
	out := New(t.metrics)
	out.nodes = make([]Node, len(t.nodes))
	for i, n := range t.nodes {
		n.Children = slices.Clone(n.Children)
		n.Classes = slices.Clone(n.Classes)
		n.Declarations = slices.Clone(n.Declarations)
		out.nodes[i] = n
		out.index[n.ID] = i
	}
	return out
}
