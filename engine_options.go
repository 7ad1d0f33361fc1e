package gui

import (
	"fmt"
	"log/slog"

	"github.com/grindlemire/go-gui/internal/debug"
)

// EngineOption is a functional option for configuring an Engine.
type EngineOption func(*Engine) error

// WithViewport sets the viewport size in pixels. Default is 800x600.
func WithViewport(width, height int) EngineOption {
	return func(e *Engine) error {
		if width < 0 || height < 0 {
			return fmt.Errorf("viewport %dx%d must not be negative", width, height)
		}
		e.mu.Lock()
		e.width, e.height = width, height
		e.mu.Unlock()
		return nil
	}
}

// WithRenderer sets the renderer frames are presented to.
func WithRenderer(r Renderer) EngineOption {
	return func(e *Engine) error {
		if r == nil {
			return fmt.Errorf("nil renderer")
		}
		e.renderer = r
		return nil
	}
}

// WithSheet sets the style sheet. Rules from a later WithConfig are
// appended to it.
func WithSheet(s *Sheet) EngineOption {
	return func(e *Engine) error {
		if s == nil {
			s = &Sheet{}
		}
		e.sheet = s
		return nil
	}
}

// WithWorkers bounds the goroutines used by style resolution and layout.
// Zero means GOMAXPROCS.
func WithWorkers(n int) EngineOption {
	return func(e *Engine) error {
		if n < 0 {
			return fmt.Errorf("workers must not be negative, got %d", n)
		}
		e.workers = n
		return nil
	}
}

// WithParallelThreshold sets the subtree size from which style resolution
// and measurement run on their own goroutine. Zero keeps the default; a
// negative value disables parallelism.
func WithParallelThreshold(n int) EngineOption {
	return func(e *Engine) error {
		e.threshold = n
		return nil
	}
}

// WithTextMeasurer sets how text is measured for layout.
func WithTextMeasurer(m TextMeasurer) EngineOption {
	return func(e *Engine) error {
		if m == nil {
			return fmt.Errorf("nil text measurer")
		}
		e.metrics = m
		return nil
	}
}

// WithLogger sets the toolkit logger. It is the same process-wide logger
// SetLogger sets: every engine, including ones built earlier, logs to l
// from then on. It is applied when NewEngine runs, not per engine.
func WithLogger(l *slog.Logger) EngineOption {
	return func(e *Engine) error {
		debug.SetLogger(l)
		return nil
	}
}

// WithMaxDirtyRects sets how many separate dirty rectangles a frame may
// collect before the whole frame is repainted. Must be at least 1.
func WithMaxDirtyRects(n int) EngineOption {
	return func(e *Engine) error {
		if n < 1 {
			return fmt.Errorf("max dirty rects must be at least 1, got %d", n)
		}
		e.maxDirty = n
		return nil
	}
}
