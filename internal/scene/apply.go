package scene

import (
	"slices"

	"github.com/grindlemire/go-gui/internal/diff"
	"github.com/grindlemire/go-gui/internal/layout"
	"github.com/grindlemire/go-gui/internal/tree"
)

func (s *Scene) insert(p diff.Patch) error {
	if _, ok := s.nodes[p.ID]; ok {
		return fail(p, "id already present")
	}
	var parent *Node
	if p.Parent == 0 {
		if s.root != 0 {
			return fail(p, "scene already has root %s", s.root)
		}
		if p.Index != 0 {
			return fail(p, "root index %d", p.Index)
		}
	} else {
		var ok bool
		if parent, ok = s.nodes[p.Parent]; !ok {
			return fail(p, "parent %s not present", p.Parent)
		}
		if p.Index < 0 || p.Index > len(parent.Children) {
			return fail(p, "index %d out of range [0,%d]", p.Index, len(parent.Children))
		}
	}

	n := &Node{
		ID:        p.ID,
		Parent:    p.Parent,
		Kind:      p.Kind,
		Key:       p.Key,
		Focusable: p.Focusable,
		Payload:   p.Content,
		Style:     p.Style,
		Box:       p.Box,
	}
	if err := s.allocVertices(p, n); err != nil {
		return err
	}
	if err := s.allocTexture(p, n); err != nil {
		return err
	}

	s.nodes[n.ID] = n
	if parent == nil {
		s.root = n.ID
	} else {
		parent.Children = slices.Insert(parent.Children, p.Index, n.ID)
	}
	s.onUndo(func() {
		delete(s.nodes, n.ID)
		if parent == nil {
			s.root = 0
			return
		}
		parent.Children = slices.DeleteFunc(parent.Children, func(id tree.ID) bool { return id == n.ID })
	})
	s.dirty.Add(n.PaintBounds())
	return nil
}

// allocVertices builds a vertex buffer for n's rect. The previous buffer,
// if any, is retired.
func (s *Scene) allocVertices(p diff.Patch, n *Node) error {
	vb, err := s.backend.CreateVertexBuffer(n.ID, n.Box.Rect)
	if err != nil {
		return &Error{Op: p.Op, ID: p.ID, Reason: "create vertex buffer", Err: err}
	}
	s.tx.created = append(s.tx.created, vb)
	if old := n.Vertices; old != 0 {
		s.tx.release = append(s.tx.release, old)
	}
	n.Vertices = vb
	return nil
}

// allocTexture gives n a texture sized to its content box when its kind
// needs one. The previous texture, if any, is retired.
func (s *Scene) allocTexture(p diff.Patch, n *Node) error {
	if !n.Kind.HasTexture() {
		return nil
	}
	size := n.Box.ContentRect.Size()
	var h Handle
	if size.Width > 0 && size.Height > 0 {
		var err error
		h, err = s.backend.CreateTexture(n.ID, size.Width, size.Height)
		if err != nil {
			return &Error{Op: p.Op, ID: p.ID, Reason: "create texture", Err: err}
		}
		s.tx.created = append(s.tx.created, h)
	}
	if old := n.Texture; old != 0 {
		s.tx.release = append(s.tx.release, old)
	}
	n.Texture = h
	return nil
}

func (s *Scene) remove(p diff.Patch) error {
	n, ok := s.nodes[p.ID]
	if !ok {
		return fail(p, "not present")
	}

	var sub []*Node
	s.walk(n.ID, func(m *Node) bool {
		sub = append(sub, m)
		return true
	})
	for _, m := range sub {
		s.dirty.Add(m.PaintBounds())
		s.tx.release = append(s.tx.release, m.handles()...)
		delete(s.nodes, m.ID)
	}

	var parent *Node
	index := 0
	if n.Parent == 0 {
		s.root = 0
	} else {
		parent = s.nodes[n.Parent]
		index = slices.Index(parent.Children, n.ID)
		parent.Children = slices.Delete(parent.Children, index, index+1)
	}
	s.onUndo(func() {
		for _, m := range sub {
			s.nodes[m.ID] = m
		}
		if parent == nil {
			s.root = n.ID
			return
		}
		parent.Children = slices.Insert(parent.Children, index, n.ID)
	})
	return nil
}

func (s *Scene) move(p diff.Patch) error {
	n, ok := s.nodes[p.ID]
	if !ok {
		return fail(p, "not present")
	}
	if n.Parent == 0 || n.Parent != p.Parent {
		return fail(p, "not a child of %s", p.Parent)
	}
	parent := s.nodes[n.Parent]
	from := slices.Index(parent.Children, n.ID)
	if p.Index < 0 || p.Index >= len(parent.Children) {
		return fail(p, "index %d out of range [0,%d)", p.Index, len(parent.Children))
	}
	parent.Children = slices.Delete(parent.Children, from, from+1)
	parent.Children = slices.Insert(parent.Children, p.Index, n.ID)
	s.onUndo(func() {
		parent.Children = slices.Delete(parent.Children, p.Index, p.Index+1)
		parent.Children = slices.Insert(parent.Children, from, n.ID)
	})
	s.markSubtree(n)
	return nil
}

func (s *Scene) updateStyle(p diff.Patch) error {
	n, ok := s.nodes[p.ID]
	if !ok {
		return fail(p, "not present")
	}
	old := n.Style
	before := n.PaintBounds()
	n.Style = p.Style
	s.onUndo(func() { n.Style = old })
	// A shadow change moves the paint bounds without moving the box.
	s.dirty.Add(before)
	if p.Geometric {
		return s.setBox(p, n, p.Box)
	}
	s.dirty.Add(n.PaintBounds())
	return nil
}

func (s *Scene) updateGeometry(p diff.Patch) error {
	n, ok := s.nodes[p.ID]
	if !ok {
		return fail(p, "not present")
	}
	return s.setBox(p, n, p.Box)
}

func (s *Scene) setBox(p diff.Patch, n *Node, box layout.Layout) error {
	before := n.PaintBounds()
	prevBox, prevTex, prevVerts := n.Box, n.Texture, n.Vertices
	moved := n.Box.Rect != box.Rect
	resize := n.Box.ContentRect.Size() != box.ContentRect.Size()

	n.Box = box
	s.onUndo(func() {
		n.Box = prevBox
		n.Texture = prevTex
		n.Vertices = prevVerts
	})
	if moved {
		if err := s.allocVertices(p, n); err != nil {
			return err
		}
	}
	if resize {
		if err := s.allocTexture(p, n); err != nil {
			return err
		}
	}
	s.dirty.Add(before)
	s.dirty.Add(n.PaintBounds())
	return nil
}

func (s *Scene) updateContent(p diff.Patch) error {
	n, ok := s.nodes[p.ID]
	if !ok {
		return fail(p, "not present")
	}
	before := n.PaintBounds()
	prevPayload, prevFocus := n.Payload, n.Focusable
	n.Payload = p.Content
	n.Focusable = p.Focusable
	s.onUndo(func() {
		n.Payload = prevPayload
		n.Focusable = prevFocus
	})
	s.dirty.Add(before)
	s.dirty.Add(n.PaintBounds())
	return nil
}

func (s *Scene) markSubtree(n *Node) {
	s.walk(n.ID, func(m *Node) bool {
		s.dirty.Add(m.PaintBounds())
		return true
	})
}

// walk visits the subtree at id in paint order. Returning false from fn
// skips the node's children.
func (s *Scene) walk(id tree.ID, fn func(*Node) bool) {
	n, ok := s.nodes[id]
	if !ok {
		return
	}
	if !fn(n) {
		return
	}
	for _, c := range n.Children {
		s.walk(c, fn)
	}
}
