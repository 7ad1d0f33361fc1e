package gui

import (
	"sync"

	"github.com/grindlemire/go-gui/internal/debug"
	"github.com/grindlemire/go-gui/internal/layout"
	"github.com/grindlemire/go-gui/internal/scene"
	"github.com/grindlemire/go-gui/internal/text"
	"github.com/grindlemire/go-gui/internal/tree"
)

// Engine runs frames: it turns a *Node tree into patches against the
// retained scene and presents the dirty region. Frame and the Dispatch
// methods serialize on an internal mutex; handlers run after it is
// released, so they may call back into the engine.
type Engine struct {
	mu sync.Mutex

	width, height int
	renderer      Renderer
	sheet         *Sheet
	metrics       text.Metrics
	workers       int
	threshold     int
	maxDirty      int

	scene *scene.Scene
	prev  *tree.Tree
	table *dispatchTable
	refs  []*Ref
	focus *FocusManager

	hovered []ID
	pressed map[ID]bool
	frames  int
}

// Default viewport size used when WithViewport is not given.
const (
	DefaultWidth  = 800
	DefaultHeight = 600
)

// measureCacheSize bounds the default text measurement cache.
const measureCacheSize = 4096

// NewEngine creates an engine. Without WithRenderer it renders into a
// RasterRenderer of the viewport size.
func NewEngine(opts ...EngineOption) (*Engine, error) {
	e := &Engine{
		width:  DefaultWidth,
		height: DefaultHeight,
		sheet:  &Sheet{},
		table:  newDispatchTable(),
		focus:  NewFocusManager(),
	}
	for _, opt := range opts {
		if err := opt(e); err != nil {
			return nil, err
		}
	}
	if e.metrics == nil {
		e.metrics = defaultMetrics()
	}
	if e.renderer == nil {
		e.renderer = NewRasterRenderer(e.width, e.height, e.metrics)
	}
	e.scene = scene.New(e.renderer, e.viewport(), e.maxDirty)
	e.prev = tree.New(e.metrics)
	return e, nil
}

// defaultMetrics measures with the Go regular font through HarfBuzz and
// falls back to the built-in bitmap face.
func defaultMetrics() text.Metrics {
	shaper, err := text.DefaultShaper()
	if err != nil {
		debug.Logger().Warn("gui: text shaper unavailable, using bitmap metrics", "err", err)
		return text.NewCache(text.Basic{}, measureCacheSize)
	}
	return text.NewCache(shaper, measureCacheSize)
}

func (e *Engine) viewport() layout.Rect {
	return layout.NewRect(0, 0, e.width, e.height)
}

// Viewport returns the viewport size.
func (e *Engine) Viewport() (width, height int) {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.width, e.height
}

// Renderer returns the renderer frames are presented to.
func (e *Engine) Renderer() Renderer {
	return e.renderer
}

// Frames returns the number of frames presented.
func (e *Engine) Frames() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.frames
}

// Scene returns a view of the retained scene. It must not be used
// concurrently with Frame.
func (e *Engine) Scene() View {
	return e.scene.View()
}

// Box returns the computed box of a node of the last frame.
func (e *Engine) Box(id ID) (Box, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	n, ok := e.scene.View().Node(id)
	if !ok {
		return Box{}, false
	}
	return n.Box, true
}

// Resize changes the viewport. The next frame lays out against the new
// size and repaints everything.
func (e *Engine) Resize(width, height int) error {
	if err := WithViewport(width, height)(e); err != nil {
		return err
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	e.scene.SetViewport(e.viewport())
	if r, ok := e.renderer.(Resizer); ok {
		r.Resize(width, height)
	}
	return nil
}
