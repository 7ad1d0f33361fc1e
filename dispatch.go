package gui

// handlers are the callbacks attached to one node.
type handlers struct {
	onPointer func(*Event)
	onClick   func()
	onKey     func(*Event)
	onEvent   func(*Event)
	onFocus   func()
	onBlur    func()
}

func (h *handlers) empty() bool {
	return h.onPointer == nil && h.onClick == nil && h.onKey == nil &&
		h.onEvent == nil && h.onFocus == nil && h.onBlur == nil
}

// WithOnPointer sets a handler for pointer events reaching this node,
// including enter and leave.
func WithOnPointer(fn func(*Event)) Option {
	return func(n *Node) {
		n.handlers.onPointer = fn
	}
}

// WithOnClick sets a handler for a left button press and release that
// both land on this node or its descendants. A pointer handler that
// consumes the release suppresses the click.
func WithOnClick(fn func()) Option {
	return func(n *Node) {
		n.handlers.onClick = fn
	}
}

// WithOnKey sets a handler for key events while this node or a descendant
// has focus.
func WithOnKey(fn func(*Event)) Option {
	return func(n *Node) {
		n.handlers.onKey = fn
	}
}

// WithOnEvent sets a handler that sees every event reaching this node,
// after the kind specific handler.
func WithOnEvent(fn func(*Event)) Option {
	return func(n *Node) {
		n.handlers.onEvent = fn
	}
}

// WithOnFocus sets a handler called when this node gains focus.
func WithOnFocus(fn func()) Option {
	return func(n *Node) {
		n.handlers.onFocus = fn
	}
}

// WithOnBlur sets a handler called when this node loses focus.
func WithOnBlur(fn func()) Option {
	return func(n *Node) {
		n.handlers.onBlur = fn
	}
}

// dispatchTable maps node IDs to their handlers for one frame.
type dispatchTable struct {
	entries map[ID]*handlers
}

func newDispatchTable() *dispatchTable {
	return &dispatchTable{entries: make(map[ID]*handlers)}
}

func (dt *dispatchTable) add(id ID, h handlers) {
	if h.empty() {
		return
	}
	dt.entries[id] = &h
}

func (dt *dispatchTable) lookup(id ID) *handlers {
	if dt == nil {
		return nil
	}
	return dt.entries[id]
}

// route delivers ev along chain, target first, and stops once a handler
// consumes it. It reports whether the event was consumed.
func (dt *dispatchTable) route(chain []ID, ev *Event) bool {
	for _, id := range chain {
		dt.deliver(id, ev)
		if ev.consumed {
			return true
		}
	}
	return false
}

// deliver runs the handlers of one node.
func (dt *dispatchTable) deliver(id ID, ev *Event) {
	h := dt.lookup(id)
	if h == nil {
		return
	}
	ev.Current = id
	switch ev.Kind {
	case EventPointer:
		if h.onPointer != nil {
			h.onPointer(ev)
		}
	case EventKey:
		if h.onKey != nil {
			h.onKey(ev)
		}
	case EventFocus:
		if h.onFocus != nil {
			h.onFocus()
		}
	case EventBlur:
		if h.onBlur != nil {
			h.onBlur()
		}
	}
	if h.onEvent != nil && !ev.consumed {
		h.onEvent(ev)
	}
}

// click runs click handlers on the nodes of chain that were also pressed,
// innermost first. It reports whether any handler ran.
func (dt *dispatchTable) click(chain []ID, pressed map[ID]bool) bool {
	clicked := false
	for _, id := range chain {
		if !pressed[id] {
			continue
		}
		if h := dt.lookup(id); h != nil && h.onClick != nil {
			h.onClick()
			clicked = true
		}
	}
	return clicked
}
