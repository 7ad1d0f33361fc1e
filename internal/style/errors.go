package style

import (
	"errors"
	"fmt"
)

// ErrInvalid is the errors.Is target for every *Error.
var ErrInvalid = errors.New("style: invalid value")

// Error reports a declaration that was dropped during resolution.
type Error struct {
	Node     int // index of the node in the resolver input
	Subject  Subject
	Property Property
	Value    Value
	Err      error
}

func (e *Error) Error() string {
	return fmt.Sprintf("style: %s: %s: %s: %v", e.Subject, e.Property, e.Value, e.Err)
}

// Unwrap returns the reason and ErrInvalid.
func (e *Error) Unwrap() []error {
	return []error{e.Err, ErrInvalid}
}
