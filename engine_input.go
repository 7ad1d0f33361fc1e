package gui

import (
	"slices"

	"github.com/grindlemire/go-gui/internal/hit"
	"github.com/grindlemire/go-gui/internal/layout"
)

// HitTest returns the nodes under (x, y), topmost first and the root last.
func (e *Engine) HitTest(x, y int) []ID {
	e.mu.Lock()
	defer e.mu.Unlock()
	return hit.Test(e.scene.View(), layout.Point{X: x, Y: y})
}

// DispatchPointer routes a pointer event through the nodes under it,
// topmost first. Before that, nodes the pointer left and entered get
// PointerLeave and PointerEnter. A left button press and release over the
// same node runs its click handlers unless a pointer handler consumed the
// release. Pressing focuses the innermost
// focusable node under the pointer. PointerEnter and PointerLeave
// input only update hovering; PointerLeave means the pointer left the
// surface. It reports whether a
// handler consumed the event or handled a click.
func (e *Engine) DispatchPointer(ev PointerEvent) bool {
	e.mu.Lock()
	chain := hit.Test(e.scene.View(), layout.Point{X: ev.X, Y: ev.Y})
	table := e.table

	if ev.Action == PointerLeave {
		// The pointer left the surface.
		chain = nil
	}
	left, entered := hoverChanges(e.hovered, chain)
	e.hovered = chain
	var pressed map[ID]bool
	switch ev.Action {
	case PointerDown:
		e.pressed = make(map[ID]bool, len(chain))
		for _, id := range chain {
			e.pressed[id] = true
		}
		for _, id := range chain {
			if e.focus.SetFocus(id) {
				break
			}
		}
	case PointerUp:
		pressed = e.pressed
		e.pressed = nil
	}
	changes := e.focus.drain()
	e.mu.Unlock()

	for _, id := range left {
		table.deliver(id, &Event{Kind: EventPointer, Pointer: withAction(ev, PointerLeave), Target: id})
	}
	for _, id := range entered {
		table.deliver(id, &Event{Kind: EventPointer, Pointer: withAction(ev, PointerEnter), Target: id})
	}
	table.notifyFocus(changes)

	if len(chain) == 0 || ev.Action == PointerEnter {
		return false
	}
	event := &Event{Kind: EventPointer, Pointer: ev, Target: chain[0]}
	consumed := table.route(chain, event)
	if consumed {
		return true
	}
	return ev.Action == PointerUp && ev.Button == ButtonLeft && table.click(chain, pressed)
}

func withAction(ev PointerEvent, a PointerAction) PointerEvent {
	ev.Action = a
	return ev
}

// DispatchKey routes a key event from the focused node up to the root.
// With nothing focused the root alone receives it. It reports whether a
// handler consumed the event.
func (e *Engine) DispatchKey(ev KeyEvent) bool {
	e.mu.Lock()
	view := e.scene.View()
	var chain []ID
	if id := e.focus.Focused(); id != 0 {
		chain = hit.Chain(view, id)
	}
	if len(chain) == 0 {
		if root, ok := view.Root(); ok {
			chain = []ID{root.ID}
		}
	}
	table := e.table
	e.mu.Unlock()

	if len(chain) == 0 {
		return false
	}
	return table.route(chain, &Event{Kind: EventKey, Key: ev, Target: chain[0]})
}

// HandleClicks runs the first binding whose ref's node is under a left
// button release. It reports whether one ran.
func (e *Engine) HandleClicks(ev PointerEvent, bindings ...ClickBinding) bool {
	if ev.Action != PointerUp || ev.Button != ButtonLeft {
		return false
	}
	chain := e.HitTest(ev.X, ev.Y)
	for _, b := range bindings {
		if b.Ref == nil || !b.Ref.IsSet() {
			continue
		}
		if slices.Contains(chain, b.Ref.ID()) {
			b.Fn()
			return true
		}
	}
	return false
}

// Focused returns the focused node, or zero.
func (e *Engine) Focused() ID {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.focus.Focused()
}

// FocusOrder returns the focusable nodes of the last frame in tree order.
func (e *Engine) FocusOrder() []ID {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.focus.Order()
}

// FocusNext moves focus to the next focusable node.
func (e *Engine) FocusNext() ID {
	return e.withFocus(func(f *FocusManager) ID { return f.Next() })
}

// FocusPrev moves focus to the previous focusable node.
func (e *Engine) FocusPrev() ID {
	return e.withFocus(func(f *FocusManager) ID { return f.Prev() })
}

// SetFocus focuses id. It reports false when id is not focusable.
func (e *Engine) SetFocus(id ID) bool {
	ok := false
	e.withFocus(func(f *FocusManager) ID {
		ok = f.SetFocus(id)
		return f.Focused()
	})
	return ok
}

// Blur clears focus.
func (e *Engine) Blur() {
	e.withFocus(func(f *FocusManager) ID {
		f.Blur()
		return 0
	})
}

func (e *Engine) withFocus(fn func(*FocusManager) ID) ID {
	e.mu.Lock()
	id := fn(e.focus)
	changes := e.focus.drain()
	table := e.table
	e.mu.Unlock()

	table.notifyFocus(changes)
	return id
}

// notifyFocus delivers focus and blur notifications to single nodes.
func (dt *dispatchTable) notifyFocus(changes []focusChange) {
	for _, c := range changes {
		dt.deliver(c.id, &Event{Kind: c.kind, Target: c.id})
	}
}
