package scene

import (
	"fmt"
	"sync"

	"github.com/grindlemire/go-gui/internal/layout"
	"github.com/grindlemire/go-gui/internal/tree"
)

// Handle is an opaque, non-zero renderer resource id.
type Handle uint64

// Backend creates and destroys renderer resources. The Scene is its only
// caller; handles it receives are released exactly once.
type Backend interface {
	CreateTexture(id tree.ID, width, height int) (Handle, error)
	CreateVertexBuffer(id tree.ID, rect layout.Rect) (Handle, error)
	Release(h Handle)
}

// MemoryBackend hands out sequential handles and records their lifetime.
// It is safe for concurrent use.
type MemoryBackend struct {
	mu       sync.Mutex
	next     Handle
	live     map[Handle]tree.ID
	vertices map[Handle]layout.Rect
	released []Handle
	doubles  []Handle

	// FailCreate, when set, is returned by the next create call and then
	// cleared.
	FailCreate error
}

// NewMemoryBackend returns an empty MemoryBackend.
func NewMemoryBackend() *MemoryBackend {
	return &MemoryBackend{live: make(map[Handle]tree.ID), vertices: make(map[Handle]layout.Rect)}
}

func (b *MemoryBackend) create(id tree.ID) (Handle, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if err := b.FailCreate; err != nil {
		b.FailCreate = nil
		return 0, err
	}
	b.next++
	b.live[b.next] = id
	return b.next, nil
}

// CreateTexture implements Backend.
func (b *MemoryBackend) CreateTexture(id tree.ID, width, height int) (Handle, error) {
	if width <= 0 || height <= 0 {
		return 0, fmt.Errorf("texture %dx%d for %s", width, height, id)
	}
	return b.create(id)
}

// CreateVertexBuffer implements Backend.
func (b *MemoryBackend) CreateVertexBuffer(id tree.ID, rect layout.Rect) (Handle, error) {
	h, err := b.create(id)
	if err != nil {
		return 0, err
	}
	b.mu.Lock()
	b.vertices[h] = rect
	b.mu.Unlock()
	return h, nil
}

// Release implements Backend.
func (b *MemoryBackend) Release(h Handle) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if _, ok := b.live[h]; !ok {
		b.doubles = append(b.doubles, h)
		return
	}
	delete(b.live, h)
	delete(b.vertices, h)
	b.released = append(b.released, h)
}

// Live returns the number of handles created and not yet released.
func (b *MemoryBackend) Live() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.live)
}

// Owner returns the node a live handle was created for.
func (b *MemoryBackend) Owner(h Handle) (tree.ID, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	id, ok := b.live[h]
	return id, ok
}

// VertexRect returns the rect a live vertex buffer was built for.
func (b *MemoryBackend) VertexRect(h Handle) (layout.Rect, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	r, ok := b.vertices[h]
	return r, ok
}

// Released returns every released handle in release order.
func (b *MemoryBackend) Released() []Handle {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]Handle(nil), b.released...)
}

// BadReleases returns handles released while not live: double releases
// or handles this backend never issued.
func (b *MemoryBackend) BadReleases() []Handle {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]Handle(nil), b.doubles...)
}
