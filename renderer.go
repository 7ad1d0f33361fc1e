package gui

import (
	"github.com/grindlemire/go-gui/internal/raster"
	"github.com/grindlemire/go-gui/internal/scene"
	"github.com/grindlemire/go-gui/internal/text"
)

// Handle is an opaque, non-zero renderer resource id.
type Handle = scene.Handle

// View is a read-only view of the retained scene.
type View = scene.View

// Region is the part of the frame needing repaint.
type Region = scene.Region

// SceneNode is a node of the retained scene.
type SceneNode = scene.Node

// Renderer owns GPU-side resources and draws the retained scene. The
// engine creates and releases resources through the Backend methods and
// calls Present once per frame with the dirty region. A Present error
// aborts the frame.
type Renderer interface {
	scene.Backend
	Present(v View, dirty *Region) error
}

// Resizer is implemented by renderers that need to know about viewport
// changes.
type Resizer interface {
	Resize(width, height int)
}

// TextMeasurer measures text for layout. Renderers should break lines with
// the same measurer.
type TextMeasurer = text.Metrics

// RasterRenderer is the reference software renderer.
type RasterRenderer = raster.Renderer

// NewRasterRenderer returns a software renderer drawing into a width x
// height image. Its Image method exposes the framebuffer.
func NewRasterRenderer(width, height int, m TextMeasurer) *RasterRenderer {
	return raster.New(width, height, raster.WithMetrics(m))
}

var (
	_ Renderer = (*RasterRenderer)(nil)
	_ Resizer  = (*RasterRenderer)(nil)
)
