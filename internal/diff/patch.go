package diff

import (
	"fmt"
	"strings"

	"github.com/grindlemire/go-gui/internal/layout"
	"github.com/grindlemire/go-gui/internal/style"
	"github.com/grindlemire/go-gui/internal/tree"
)

// Op is the kind of a patch.
type Op uint8

const (
	OpInsert Op = iota + 1
	OpRemove
	OpMove
	OpUpdateStyle
	OpUpdateGeometry
	OpUpdateContent
)

func (o Op) String() string {
	switch o {
	case OpInsert:
		return "insert"
	case OpRemove:
		return "remove"
	case OpMove:
		return "move"
	case OpUpdateStyle:
		return "update-style"
	case OpUpdateGeometry:
		return "update-geometry"
	case OpUpdateContent:
		return "update-content"
	default:
		return fmt.Sprintf("Op(%d)", uint8(o))
	}
}

// Patch is one edit of the retained tree. Which fields are meaningful
// depends on Op:
//
//	Insert          ID Parent Index Kind Key Focusable Style Box Content
//	Remove          ID (the whole subtree goes)
//	Move            ID Parent Index
//	UpdateStyle     ID Style, and Box when Geometric
//	UpdateGeometry  ID Box
//	UpdateContent   ID Content Focusable
//
// Index is the child position at the moment the patch is applied. Parent
// is zero for the root.
type Patch struct {
	Op        Op
	ID        tree.ID
	Parent    tree.ID
	Index     int
	Kind      tree.Kind
	Key       string
	Focusable bool
	Style     style.Resolved
	Box       layout.Layout
	Content   tree.Payload

	// Geometric marks an UpdateStyle whose change can move boxes. Box then
	// holds the new layout and no UpdateGeometry follows for the node.
	Geometric bool
}

func (p Patch) String() string {
	switch p.Op {
	case OpInsert:
		return fmt.Sprintf("insert %s %s under %s at %d", p.Kind, p.ID, p.Parent, p.Index)
	case OpMove:
		return fmt.Sprintf("move %s under %s to %d", p.ID, p.Parent, p.Index)
	case OpUpdateStyle:
		if p.Geometric {
			return fmt.Sprintf("update-style %s (geometric) %v", p.ID, p.Box.Rect)
		}
		return fmt.Sprintf("update-style %s", p.ID)
	case OpUpdateGeometry:
		return fmt.Sprintf("update-geometry %s %v", p.ID, p.Box.Rect)
	default:
		return fmt.Sprintf("%s %s", p.Op, p.ID)
	}
}

// Summary counts patches by op.
type Summary struct {
	Inserts, Removes, Moves, StyleUpdates, GeometryUpdates, ContentUpdates int
}

// Summarize counts patches by op.
func Summarize(patches []Patch) Summary {
	var s Summary
	for _, p := range patches {
		switch p.Op {
		case OpInsert:
			s.Inserts++
		case OpRemove:
			s.Removes++
		case OpMove:
			s.Moves++
		case OpUpdateStyle:
			s.StyleUpdates++
		case OpUpdateGeometry:
			s.GeometryUpdates++
		case OpUpdateContent:
			s.ContentUpdates++
		}
	}
	return s
}

// Total returns the number of patches counted.
func (s Summary) Total() int {
	return s.Inserts + s.Removes + s.Moves + s.StyleUpdates + s.GeometryUpdates + s.ContentUpdates
}

func (s Summary) String() string {
	var parts []string
	add := func(n int, name string) {
		if n > 0 {
			parts = append(parts, fmt.Sprintf("%d %s", n, name))
		}
	}
	add(s.Inserts, "insert")
	add(s.Removes, "remove")
	add(s.Moves, "move")
	add(s.StyleUpdates, "style")
	add(s.GeometryUpdates, "geometry")
	add(s.ContentUpdates, "content")
	if len(parts) == 0 {
		return "no changes"
	}
	return strings.Join(parts, ", ")
}
