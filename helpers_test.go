package gui

import (
	"testing"

	"github.com/grindlemire/go-gui/internal/text"
)

// testEngine returns a 200x100 engine presenting to a MockRenderer with
// fixed 8x10 text cells.
func testEngine(t *testing.T, opts ...EngineOption) (*Engine, *MockRenderer) {
	t.Helper()
	mock := NewMockRenderer()
	base := []EngineOption{
		WithViewport(200, 100),
		WithRenderer(mock),
		WithTextMeasurer(text.Mono{CellWidth: 8, CellHeight: 10}),
	}
	e, err := NewEngine(append(base, opts...)...)
	if err != nil {
		t.Fatalf("NewEngine: %v", err)
	}
	return e, mock
}

// column stacks children top to bottom.
func column(children ...*Node) *Node {
	return New(WithDirection(Column), WithChildren(children...))
}

// row is a 20px tall keyed child.
func row(key string, opts ...Option) *Node {
	return New(append([]Option{WithKey(key), WithHeight(20)}, opts...)...)
}

func mustFrame(t *testing.T, e *Engine, root *Node) FrameResult {
	t.Helper()
	res, err := e.Frame(root)
	if err != nil {
		t.Fatalf("Frame: %v", err)
	}
	return res
}
