package scene

import (
	"errors"
	"fmt"

	"github.com/grindlemire/go-gui/internal/diff"
	"github.com/grindlemire/go-gui/internal/tree"
)

// ErrInconsistent is the errors.Is target for every *Error.
var ErrInconsistent = errors.New("scene: patch does not match retained scene")

// Error reports a patch the scene could not apply. It means the patch
// stream and the scene disagree and the frame must be abandoned.
type Error struct {
	Op     diff.Op
	ID     tree.ID
	Reason string
	Err    error // backend failure, if any
}

func (e *Error) Error() string {
	msg := fmt.Sprintf("scene: %s %s: %s", e.Op, e.ID, e.Reason)
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

// Unwrap returns ErrInconsistent and the backend error.
func (e *Error) Unwrap() []error {
	if e.Err != nil {
		return []error{ErrInconsistent, e.Err}
	}
	return []error{ErrInconsistent}
}

func fail(p diff.Patch, format string, args ...any) *Error {
	return &Error{Op: p.Op, ID: p.ID, Reason: fmt.Sprintf(format, args...)}
}
