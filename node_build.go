package gui

import (
	"fmt"

	"github.com/grindlemire/go-gui/internal/debug"
	"github.com/grindlemire/go-gui/internal/text"
	"github.com/grindlemire/go-gui/internal/tree"
)

// boundRef is a ref to set once the frame commits.
type boundRef struct {
	ref  *Ref
	node *Node
	id   ID
}

// treeBuilder assigns identities and flattens a *Node tree into the arena.
type treeBuilder struct {
	tree  *tree.Tree
	table *dispatchTable
	refs  []boundRef
}

func buildTree(root *Node, m text.Metrics) (*treeBuilder, error) {
	b := &treeBuilder{tree: tree.New(m), table: newDispatchTable()}
	if root == nil {
		return b, nil
	}
	if err := b.add(root, -1, tree.RootID(root.key, root.kind)); err != nil {
		return nil, err
	}
	return b, nil
}

func (b *treeBuilder) add(n *Node, parent int, id ID) error {
	i, err := b.tree.Add(parent, tree.Node{
		ID:           id,
		Key:          n.key,
		Kind:         n.kind,
		Payload:      n.payload,
		ElementID:    n.elementID,
		Classes:      n.classes,
		Declarations: n.decls,
		Inherit:      n.inherit,
		Focusable:    n.focusable,
	})
	if err != nil {
		return fmt.Errorf("build tree: %w", err)
	}
	b.table.add(id, n.handlers)
	if n.ref != nil {
		b.refs = append(b.refs, boundRef{ref: n.ref, node: n, id: id})
	}
	if len(n.children) == 0 {
		return nil
	}

	sibs := make([]tree.Sibling, len(n.children))
	for k, c := range n.children {
		sibs[k] = tree.Sibling{Key: c.key, Kind: c.kind}
	}
	ids, dups := tree.SiblingIDs(id, sibs)
	if len(dups) > 0 {
		debug.Logger().Warn("gui: duplicate sibling keys, using positions",
			"parent", b.tree.Node(i).Label(), "keys", dups)
	}
	for k, c := range n.children {
		if err := b.add(c, i, ids[k]); err != nil {
			return err
		}
	}
	return nil
}
