package gui

import (
	"errors"
	"fmt"

	"github.com/grindlemire/go-gui/internal/layout"
	"github.com/grindlemire/go-gui/internal/scene"
	"github.com/grindlemire/go-gui/internal/style"
)

// StyleError reports a declaration dropped during style resolution. It
// never fails a frame.
type StyleError = style.Error

// LayoutError reports a constraint clamped during layout. It never fails a
// frame.
type LayoutError = layout.Error

// SceneError reports a patch the retained scene could not apply. The frame
// is rolled back.
type SceneError = scene.Error

// errors.Is targets for each error kind.
var (
	ErrStyle    = style.ErrInvalid
	ErrLayout   = layout.ErrConstraint
	ErrScene    = scene.ErrInconsistent
	ErrRenderer = errors.New("gui: renderer failed")
)

// RendererError wraps a failure reported by the renderer while presenting.
// The scene is rolled back, so the next frame reapplies the same changes.
type RendererError struct {
	Err error
}

func (e *RendererError) Error() string {
	return fmt.Sprintf("gui: present: %v", e.Err)
}

// Unwrap returns ErrRenderer and the renderer's error.
func (e *RendererError) Unwrap() []error {
	return []error{ErrRenderer, e.Err}
}
