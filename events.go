package gui

import "fmt"

// PointerAction is what a pointer did.
type PointerAction uint8

const (
	PointerMove PointerAction = iota
	PointerDown
	PointerUp
	PointerScroll
	// PointerEnter and PointerLeave go to the entered or left node only.
	// The engine synthesizes them when the hovered chain changes; as input
	// they report the pointer entering or leaving the surface.
	PointerEnter
	PointerLeave
)

func (a PointerAction) String() string {
	switch a {
	case PointerMove:
		return "move"
	case PointerDown:
		return "down"
	case PointerUp:
		return "up"
	case PointerScroll:
		return "scroll"
	case PointerEnter:
		return "enter"
	case PointerLeave:
		return "leave"
	default:
		return fmt.Sprintf("PointerAction(%d)", uint8(a))
	}
}

// Button identifies a pointer button.
type Button uint8

const (
	ButtonNone Button = iota
	ButtonLeft
	ButtonMiddle
	ButtonRight
)

// Modifier is a bit set of held modifier keys.
type Modifier uint8

const (
	ModShift Modifier = 1 << iota
	ModCtrl
	ModAlt
	ModMeta
)

// PointerEvent is a pointer input in viewport coordinates.
type PointerEvent struct {
	Action PointerAction
	Button Button
	X, Y   int
	// ScrollX and ScrollY are set for PointerScroll.
	ScrollX, ScrollY int
	Mod              Modifier
}

// Key identifies a non-character key. Character input uses KeyRune.
type Key uint16

const (
	KeyRune Key = iota + 1
	KeyEnter
	KeyTab
	KeyBackspace
	KeyDelete
	KeyEscape
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyHome
	KeyEnd
	KeyPageUp
	KeyPageDown
)

// KeyEvent is a keyboard input.
type KeyEvent struct {
	Key  Key
	Rune rune // set when Key is KeyRune
	Mod  Modifier
}

// EventKind selects which field of an Event is meaningful.
type EventKind uint8

const (
	EventPointer EventKind = iota
	EventKey
	EventFocus
	EventBlur
)

// Event is what handlers receive. Target is the node the event is aimed
// at; Current is the node whose handler is running. Handlers on the chain
// run target first, then each ancestor, until one calls Consume.
type Event struct {
	Kind    EventKind
	Pointer PointerEvent
	Key     KeyEvent
	Target  ID
	Current ID

	consumed bool
}

// Consume stops the event from reaching further ancestors.
func (e *Event) Consume() {
	e.consumed = true
}

// Consumed reports whether a handler consumed the event.
func (e *Event) Consumed() bool {
	return e.consumed
}
