package gui

import "sync"

// Ref is a reference to a node, set during each frame and read later in
// handlers. Thread-safe.
type Ref struct {
	mu   sync.RWMutex
	id   ID
	node *Node
}

// NewRef creates a new empty Ref.
func NewRef() *Ref {
	return &Ref{}
}

func (r *Ref) set(n *Node, id ID) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.node, r.id = n, id
}

func (r *Ref) clear() {
	r.set(nil, 0)
}

// ID returns the referenced node's ID, or zero if the node was not part of
// the last frame.
func (r *Ref) ID() ID {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.id
}

// Node returns the referenced node, or nil if not yet set.
func (r *Ref) Node() *Node {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.node
}

// IsSet returns true if the ref points at a node of the last frame.
func (r *Ref) IsSet() bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.id != 0
}

// RefMap holds keyed references to nodes created in a loop. Thread-safe.
type RefMap[K comparable] struct {
	mu   sync.RWMutex
	refs map[K]*Ref
}

// NewRefMap creates a new empty RefMap.
func NewRefMap[K comparable]() *RefMap[K] {
	return &RefMap[K]{refs: make(map[K]*Ref)}
}

// Ref returns the ref for key, creating it on first use.
func (m *RefMap[K]) Ref(key K) *Ref {
	m.mu.Lock()
	defer m.mu.Unlock()
	r, ok := m.refs[key]
	if !ok {
		r = NewRef()
		m.refs[key] = r
	}
	return r
}

// Get returns the ID stored for key, or zero.
func (m *RefMap[K]) Get(key K) ID {
	m.mu.RLock()
	r := m.refs[key]
	m.mu.RUnlock()
	if r == nil {
		return 0
	}
	return r.ID()
}

// Len returns the number of keys in the map.
func (m *RefMap[K]) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.refs)
}
