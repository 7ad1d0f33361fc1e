package scene

import (
	"github.com/grindlemire/go-gui/internal/debug"
	"github.com/grindlemire/go-gui/internal/diff"
	"github.com/grindlemire/go-gui/internal/layout"
	"github.com/grindlemire/go-gui/internal/tree"
)

// Scene is the retained scene. It is not safe for concurrent use; the
// engine owns it exclusively.
type Scene struct {
	backend  Backend
	nodes    map[tree.ID]*Node
	root     tree.ID
	viewport layout.Rect
	dirty    *Region

	tx *txn
}

// txn records how to undo the frame in progress.
type txn struct {
	undo    []func()
	created []Handle
	release []Handle
	dirty   *Region
}

// New returns an empty scene backed by b. maxDirty bounds the dirty rect
// count; zero uses DefaultMaxDirtyRects.
func New(b Backend, viewport layout.Rect, maxDirty int) *Scene {
	return &Scene{
		backend:  b,
		nodes:    make(map[tree.ID]*Node),
		viewport: viewport,
		dirty:    NewRegion(viewport, maxDirty),
	}
}

// Len returns the number of retained nodes.
func (s *Scene) Len() int {
	return len(s.nodes)
}

// Viewport returns the frame bounds.
func (s *Scene) Viewport() layout.Rect {
	return s.viewport
}

// SetViewport changes the frame bounds and marks the whole frame dirty.
func (s *Scene) SetViewport(r layout.Rect) {
	s.viewport = r
	s.dirty.reset(r, s.dirty.max)
	s.dirty.SetFull()
}

// Dirty returns a copy of the accumulated dirty region.
func (s *Scene) Dirty() *Region {
	return s.dirty.Clone()
}

// ClearDirty empties the dirty region after a successful present.
func (s *Scene) ClearDirty() {
	s.dirty.Clear()
}

// MarkAll marks the whole frame dirty.
func (s *Scene) MarkAll() {
	s.dirty.SetFull()
}

// InTransaction reports whether Begin was called without a matching
// Commit or Rollback.
func (s *Scene) InTransaction() bool {
	return s.tx != nil
}

// Begin starts a frame transaction. Calling Begin twice is a no-op.
func (s *Scene) Begin() {
	if s.tx != nil {
		return
	}
	s.tx = &txn{dirty: s.dirty.Clone()}
}

// Commit keeps the frame's changes and releases every handle the frame
// retired.
func (s *Scene) Commit() {
	if s.tx == nil {
		return
	}
	tx := s.tx
	s.tx = nil
	for _, h := range tx.release {
		s.backend.Release(h)
	}
	if n := len(tx.release); n > 0 {
		debug.Logger().Debug("scene: released handles", "count", n)
	}
}

// Rollback restores the scene as it was at Begin and releases every
// handle the frame created.
func (s *Scene) Rollback() {
	if s.tx == nil {
		return
	}
	tx := s.tx
	s.tx = nil
	for i := len(tx.undo) - 1; i >= 0; i-- {
		tx.undo[i]()
	}
	for _, h := range tx.created {
		s.backend.Release(h)
	}
	s.dirty = tx.dirty
	debug.Logger().Debug("scene: rolled back", "undone", len(tx.undo), "freed", len(tx.created))
}

// Apply applies one patch. Outside a transaction it runs in its own and
// leaves the scene untouched on error.
func (s *Scene) Apply(p diff.Patch) error {
	if s.tx != nil {
		return s.apply(p)
	}
	return s.ApplyAll([]diff.Patch{p})
}

// ApplyAll applies patches in order and stops at the first error. Inside
// a transaction the caller decides between Commit and Rollback; outside
// one the batch commits on success and rolls back on error.
func (s *Scene) ApplyAll(patches []diff.Patch) error {
	implicit := s.tx == nil
	if implicit {
		s.Begin()
	}
	for _, p := range patches {
		if err := s.apply(p); err != nil {
			if implicit {
				s.Rollback()
			}
			return err
		}
	}
	if implicit {
		s.Commit()
	}
	return nil
}

func (s *Scene) apply(p diff.Patch) error {
	switch p.Op {
	case diff.OpInsert:
		return s.insert(p)
	case diff.OpRemove:
		return s.remove(p)
	case diff.OpMove:
		return s.move(p)
	case diff.OpUpdateStyle:
		return s.updateStyle(p)
	case diff.OpUpdateGeometry:
		return s.updateGeometry(p)
	case diff.OpUpdateContent:
		return s.updateContent(p)
	default:
		return fail(p, "unknown op")
	}
}

func (s *Scene) onUndo(fn func()) {
	s.tx.undo = append(s.tx.undo, fn)
}
