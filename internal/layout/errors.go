package layout

import (
	"errors"
	"fmt"
)

// ErrConstraint is the errors.Is target for every *Error.
var ErrConstraint = errors.New("layout: invalid constraint")

// Error reports a style amount or intrinsic size the engine had to clamp.
// The calculation continues with the clamped value.
type Error struct {
	Node     Layoutable
	Label    string // Node's LayoutLabel, or its type name
	Property string
	Value    float64
	Reason   string
}

func (e *Error) Error() string {
	return fmt.Sprintf("layout: %s: %s = %v: %s", e.Label, e.Property, e.Value, e.Reason)
}

// Unwrap returns ErrConstraint.
func (e *Error) Unwrap() error {
	return ErrConstraint
}

func labelOf(l Layoutable) string {
	if lb, ok := l.(Labeler); ok {
		return lb.LayoutLabel()
	}
	return fmt.Sprintf("%T", l)
}
