package gui

import (
	"slices"

	"github.com/grindlemire/go-gui/internal/debug"
)

// focusChange is a pending focus or blur notification.
type focusChange struct {
	id   ID
	kind EventKind
}

// FocusManager tracks which focusable node has keyboard focus. The order is
// the tree order of the visible focusable nodes of the last frame. It does
// NOT automatically handle Tab navigation; the application decides when
// focus moves by calling Next, Prev or SetFocus.
type FocusManager struct {
	order   []ID
	current ID // zero when nothing is focused
	changes []focusChange
}

// NewFocusManager creates an empty FocusManager.
func NewFocusManager() *FocusManager {
	return &FocusManager{}
}

// Focused returns the focused node, or zero.
func (f *FocusManager) Focused() ID {
	return f.current
}

// Order returns the focusable nodes in tree order.
func (f *FocusManager) Order() []ID {
	return slices.Clone(f.order)
}

// SetFocus moves focus to id. It does nothing and returns false when id is
// not focusable.
func (f *FocusManager) SetFocus(id ID) bool {
	if !slices.Contains(f.order, id) {
		return false
	}
	f.moveTo(id)
	return true
}

// Blur clears focus.
func (f *FocusManager) Blur() {
	f.moveTo(0)
}

// Next moves focus to the next focusable node, wrapping at the end.
func (f *FocusManager) Next() ID {
	return f.step(1)
}

// Prev moves focus to the previous focusable node, wrapping at the start.
func (f *FocusManager) Prev() ID {
	return f.step(-1)
}

func (f *FocusManager) step(delta int) ID {
	if len(f.order) == 0 {
		return 0
	}
	i := slices.Index(f.order, f.current)
	switch {
	case i < 0 && delta > 0:
		i = 0
	case i < 0:
		i = len(f.order) - 1
	default:
		i = (i + delta + len(f.order)) % len(f.order)
	}
	f.moveTo(f.order[i])
	return f.current
}

func (f *FocusManager) moveTo(id ID) {
	if id == f.current {
		return
	}
	if f.current != 0 {
		f.changes = append(f.changes, focusChange{id: f.current, kind: EventBlur})
	}
	f.current = id
	if id != 0 {
		f.changes = append(f.changes, focusChange{id: id, kind: EventFocus})
	}
}

// update installs the focus order of a new frame. Focus stays on the same
// node when it survives; otherwise it moves to the first surviving node
// that followed it, wrapping around. With nothing focused the first node
// takes focus.
func (f *FocusManager) update(order []ID) {
	old := f.order
	f.order = order
	if len(order) == 0 {
		if f.current != 0 {
			// The node is gone; there is nothing to blur.
			f.current = 0
		}
		return
	}
	if f.current == 0 {
		f.moveTo(order[0])
		return
	}
	if slices.Contains(order, f.current) {
		return
	}

	next := order[0]
	if at := slices.Index(old, f.current); at >= 0 {
		for k := 1; k < len(old); k++ {
			if id := old[(at+k)%len(old)]; slices.Contains(order, id) {
				next = id
				break
			}
		}
	}
	debug.Logger().Debug("focus: focused node removed", "from", f.current, "to", next)
	// The old node is gone, so only the new one is told.
	f.current = 0
	f.moveTo(next)
}

// drain returns and clears pending notifications.
func (f *FocusManager) drain() []focusChange {
	out := f.changes
	f.changes = nil
	return out
}
