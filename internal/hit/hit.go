package hit

import (
	"slices"

	"github.com/grindlemire/go-gui/internal/layout"
	"github.com/grindlemire/go-gui/internal/scene"
	"github.com/grindlemire/go-gui/internal/tree"
)

// Test returns the nodes under p, the topmost hit first and the root last.
// Later siblings paint over earlier ones and so are tested first. A clipping
// ancestor hides whatever lies outside its clip, and a hidden node is never
// the primary target, though its visible descendants can be.
func Test(v scene.View, p layout.Point) []tree.ID {
	root, ok := v.Root()
	if !ok {
		return nil
	}
	clip := v.Viewport()
	if !clip.IsEmpty() && !p.In(clip) {
		return nil
	}
	chain := test(v, &root, p)
	slices.Reverse(chain)
	return chain
}

// test returns the chain root-first below n, or nil on a miss.
func test(v scene.View, n *scene.Node, p layout.Point) []tree.ID {
	if n.Box.Clips && !p.In(n.Box.Clip) {
		if n.HitTest(p) {
			return []tree.ID{n.ID}
		}
		return nil
	}
	for i := len(n.Children) - 1; i >= 0; i-- {
		child, ok := v.Node(n.Children[i])
		if !ok {
			continue
		}
		if sub := test(v, &child, p); sub != nil {
			return append([]tree.ID{n.ID}, sub...)
		}
	}
	if n.HitTest(p) {
		return []tree.ID{n.ID}
	}
	return nil
}

// Chain returns id followed by its ancestors up to the root, or nil when
// id is not in the scene.
func Chain(v scene.View, id tree.ID) []tree.ID {
	path := v.Path(id)
	slices.Reverse(path)
	return path
}

// Focusable returns the visible focusable nodes in tree order.
func Focusable(v scene.View) []tree.ID {
	var out []tree.ID
	v.Walk(func(n *scene.Node, _ int) bool {
		if n.Focusable && n.Style.Visible && !n.Box.Rect.IsEmpty() {
			out = append(out, n.ID)
		}
		return true
	})
	return out
}
