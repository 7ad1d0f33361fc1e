package diff_test

import (
	"testing"

	"github.com/grindlemire/go-gui/internal/layout"
	"github.com/grindlemire/go-gui/internal/style"
	"github.com/grindlemire/go-gui/internal/tree"
)

// n describes a node for build.
type n struct {
	key  string
	kind tree.Kind
	text string
	box  layout.Rect
	kids []n
}

func box(r layout.Rect) layout.Layout {
	return layout.Layout{Rect: r, ContentRect: r}
}

// build turns a description into a tree with deterministic IDs.
func build(t *testing.T, root n) *tree.Tree {
	t.Helper()
	tr := tree.New(nil)
	var add func(d n, parent int, id tree.ID)
	add = func(d n, parent int, id tree.ID) {
		i, err := tr.Add(parent, tree.Node{
			ID:      id,
			Key:     d.key,
			Kind:    d.kind,
			Payload: tree.Payload{Text: d.text},
			Style:   style.Default(),
			Box:     box(d.box),
		})
		if err != nil {
			t.Fatalf("Add(%s): %v", id, err)
		}
		for k, c := range d.kids {
			add(c, i, tree.ChildID(id, c.key, c.kind, k))
		}
	}
	add(root, -1, tree.RootID(root.key, root.kind))
	return tr
}

func keyed(keys ...string) []n {
	out := make([]n, len(keys))
	for i, k := range keys {
		out[i] = n{key: k, kind: tree.KindText, text: k, box: layout.NewRect(0, 0, 10, 1)}
	}
	return out
}

func childID(tr *tree.Tree, key string) tree.ID {
	root := tr.Node(tr.Root()).ID
	return tree.ChildID(root, key, tree.KindText, 0)
}
