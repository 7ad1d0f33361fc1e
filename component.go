package gui

// Component is the base interface for application roots. Render is called
// once per frame and returns the whole tree.
type Component interface {
	Render() *Node
}

// ComponentFunc adapts a function to Component.
type ComponentFunc func() *Node

// Render implements Component.
func (f ComponentFunc) Render() *Node {
	return f()
}
