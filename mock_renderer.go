package gui

import (
	"sync"

	"github.com/grindlemire/go-gui/internal/layout"
	"github.com/grindlemire/go-gui/internal/scene"
)

// MockRenderer is a Renderer for tests. It hands out handles through a
// scene.MemoryBackend and records every present.
type MockRenderer struct {
	*scene.MemoryBackend

	mu       sync.Mutex
	presents []PresentCall
	width    int
	height   int

	// FailPresent, when set, is returned by the next Present and cleared.
	FailPresent error
}

// PresentCall is one recorded call to MockRenderer.Present.
type PresentCall struct {
	Rects []layout.Rect
	Full  bool
	Nodes int
}

// Ensure MockRenderer implements Renderer.
var _ Renderer = (*MockRenderer)(nil)

// NewMockRenderer creates a mock renderer.
func NewMockRenderer() *MockRenderer {
	return &MockRenderer{MemoryBackend: scene.NewMemoryBackend()}
}

// Present records the call.
func (m *MockRenderer) Present(v View, dirty *Region) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.FailPresent; err != nil {
		m.FailPresent = nil
		return err
	}
	m.presents = append(m.presents, PresentCall{Rects: dirty.Rects(), Full: dirty.Full(), Nodes: v.Len()})
	return nil
}

// Resize records the new viewport size.
func (m *MockRenderer) Resize(width, height int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.width, m.height = width, height
}

// Size returns the last size passed to Resize.
func (m *MockRenderer) Size() (width, height int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.width, m.height
}

// Presents returns the recorded presents.
func (m *MockRenderer) Presents() []PresentCall {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]PresentCall, len(m.presents))
	copy(out, m.presents)
	return out
}

// LastPresent returns the most recent present and whether there was one.
func (m *MockRenderer) LastPresent() (PresentCall, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.presents) == 0 {
		return PresentCall{}, false
	}
	return m.presents[len(m.presents)-1], true
}
