package gui

import (
	"fmt"
	"time"

	"github.com/grindlemire/go-gui/internal/debug"
	"github.com/grindlemire/go-gui/internal/diff"
	"github.com/grindlemire/go-gui/internal/hit"
	"github.com/grindlemire/go-gui/internal/layout"
	"github.com/grindlemire/go-gui/internal/style"
	"github.com/grindlemire/go-gui/internal/tree"
)

// Patch is one edit of the retained scene.
type Patch = diff.Patch

// Summary counts patches by kind.
type Summary = diff.Summary

// FrameResult describes what a frame changed.
type FrameResult struct {
	Patches     []Patch
	Summary     Summary
	Dirty       []Rect
	FullRepaint bool

	// Recovered problems. They never fail a frame.
	StyleErrors  []*StyleError
	LayoutErrors []*LayoutError
}

// Render runs a frame for the tree c renders.
func (e *Engine) Render(c Component) (FrameResult, error) {
	return e.Frame(c.Render())
}

// Frame reconciles root against the previous frame and presents the
// result. A nil root clears the scene.
//
// Style and layout problems are reported in the result and never fail the
// frame. A scene or renderer error rolls the frame back: the retained
// scene and the previous tree stay as they were, so the next frame
// recomputes the same changes.
func (e *Engine) Frame(root *Node) (FrameResult, error) {
	if e == nil {
		panic("gui: Frame on nil Engine")
	}
	e.mu.Lock()
	res, changes, err := e.frame(root)
	table := e.table
	e.mu.Unlock()

	table.notifyFocus(changes)
	return res, err
}

func (e *Engine) frame(root *Node) (FrameResult, []focusChange, error) {
	start := time.Now()
	log := debug.Logger()
	var res FrameResult

	b, err := buildTree(root, e.metrics)
	if err != nil {
		return res, nil, fmt.Errorf("gui: %w", err)
	}
	next := b.tree
	if next.Len() > 0 {
		styles, serrs := style.Resolve(next, e.sheet, style.Options{Workers: e.workers, ParallelThreshold: e.threshold})
		next.SetStyles(styles)
		for _, se := range serrs {
			log.Warn("gui: style declaration dropped", "err", se)
		}
		res.StyleErrors = serrs
		res.LayoutErrors = layout.CalculateWith(next.Layoutable(next.Root()), e.width, e.height,
			layout.Options{Workers: e.workers, ParallelThreshold: e.threshold})
	}

	res.Patches = diff.Diff(e.prev, next)
	res.Summary = diff.Summarize(res.Patches)

	e.scene.Begin()
	if err := e.scene.ApplyAll(res.Patches); err != nil {
		e.scene.Rollback()
		log.Error("gui: frame rolled back", "err", err)
		return res, nil, fmt.Errorf("gui: apply frame: %w", err)
	}
	dirty := e.scene.Dirty()
	if !dirty.IsEmpty() {
		if err := e.renderer.Present(e.scene.View(), dirty); err != nil {
			e.scene.Rollback()
			log.Error("gui: present failed, frame rolled back", "err", err)
			return res, nil, &RendererError{Err: err}
		}
	}
	e.scene.Commit()
	e.scene.ClearDirty()
	res.Dirty = dirty.Rects()
	res.FullRepaint = dirty.Full()

	e.prev = next
	e.table = b.table
	e.bindRefs(b.refs)
	e.focus.update(hit.Focusable(e.scene.View()))
	e.frames++

	log.Debug("gui: frame",
		"n", e.frames,
		"nodes", next.Len(),
		"patches", res.Summary.String(),
		"dirty", len(res.Dirty),
		"full", res.FullRepaint,
		"took", time.Since(start))
	return res, e.focus.drain(), nil
}

// bindRefs points refs at this frame's nodes and clears refs whose node
// is gone.
func (e *Engine) bindRefs(bound []boundRef) {
	live := make(map[*Ref]bool, len(bound))
	for _, br := range bound {
		br.ref.set(br.node, br.id)
		live[br.ref] = true
	}
	for _, r := range e.refs {
		if !live[r] {
			r.clear()
		}
	}
	e.refs = e.refs[:0]
	for _, br := range bound {
		e.refs = append(e.refs, br.ref)
	}
}

// Close removes every node from the scene, releasing all renderer
// resources. Nothing is presented.
func (e *Engine) Close() error {
	e.mu.Lock()
	defer e.mu.Unlock()
	empty := tree.New(e.metrics)
	if err := e.scene.ApplyAll(diff.Diff(e.prev, empty)); err != nil {
		return fmt.Errorf("gui: close: %w", err)
	}
	e.scene.ClearDirty()
	e.prev = empty
	e.table = newDispatchTable()
	e.bindRefs(nil)
	e.focus.update(nil)
	e.focus.drain()
	e.hovered = nil
	e.pressed = nil
	return nil
}
