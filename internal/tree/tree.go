package tree

import (
	"errors"
	"fmt"

	"github.com/grindlemire/go-gui/internal/text"
)

// ErrDuplicateID is returned by Add when the ID is already in the tree.
var ErrDuplicateID = errors.New("tree: duplicate node id")

// Tree is an arena of nodes. Index 0 is the root.
type Tree struct {
	nodes   []Node
	index   map[ID]int
	metrics text.Metrics
}

// New returns an empty tree that measures text with m. A nil m uses the
// x/image bitmap face.
func New(m text.Metrics) *Tree {
	if m == nil {
		m = text.Basic{}
	}
	return &Tree{index: make(map[ID]int), metrics: m}
}

// Len returns the number of nodes.
func (t *Tree) Len() int {
	if t == nil {
		return 0
	}
	return len(t.nodes)
}

// Root returns the root index, or -1 when the tree is empty.
func (t *Tree) Root() int {
	if t.Len() == 0 {
		return -1
	}
	return 0
}

// Node returns the node at index i.
func (t *Tree) Node(i int) *Node {
	return &t.nodes[i]
}

// Lookup returns the index of id.
func (t *Tree) Lookup(id ID) (int, bool) {
	if t == nil {
		return 0, false
	}
	i, ok := t.index[id]
	return i, ok
}

// Metrics returns the text measurer.
func (t *Tree) Metrics() text.Metrics {
	return t.metrics
}

// Add appends n under parent and returns its index. parent is -1 only for
// the first node. Text payloads are normalized to NFC.
func (t *Tree) Add(parent int, n Node) (int, error) {
	if _, dup := t.index[n.ID]; dup {
		return -1, fmt.Errorf("%w: %s", ErrDuplicateID, n.ID)
	}
	if parent < 0 && len(t.nodes) > 0 {
		return -1, fmt.Errorf("tree: second root %s", n.ID)
	}
	if parent >= len(t.nodes) {
		return -1, fmt.Errorf("tree: parent index %d out of range", parent)
	}

	i := len(t.nodes)
	n.Parent = parent
	n.Children = nil
	n.size = 1
	if n.Kind == KindText {
		n.Payload.Text = text.Normalize(n.Payload.Text)
	}
	t.nodes = append(t.nodes, n)
	t.index[n.ID] = i
	if parent >= 0 {
		t.nodes[parent].Children = append(t.nodes[parent].Children, i)
	}
	for p := parent; p >= 0; p = t.nodes[p].Parent {
		t.nodes[p].size++
	}
	return i, nil
}

// Walk visits nodes in pre-order. Returning false from fn skips the
// node's children.
func (t *Tree) Walk(fn func(i int) bool) {
	if t.Len() == 0 {
		return
	}
	var walk func(i int)
	walk = func(i int) {
		if !fn(i) {
			return
		}
		for _, c := range t.nodes[i].Children {
			walk(c)
		}
	}
	walk(0)
}

// Ancestors returns the indices from i up to the root, i first.
func (t *Tree) Ancestors(i int) []int {
	var out []int
	for ; i >= 0; i = t.nodes[i].Parent {
		out = append(out, i)
	}
	return out
}
