// Package gui is the core of a retained-mode GUI toolkit.
//
// An application describes its UI every frame as a tree of *Node values.
// The Engine resolves styles, lays the tree out, diffs it against the
// previous frame and applies the resulting patches to a retained scene that
// owns the renderer's resources. Only the dirty part of the frame is handed
// to the Renderer.
//
//	eng, err := gui.NewEngine(gui.WithViewport(640, 480))
//	if err != nil {
//		return err
//	}
//	res, err := eng.Frame(gui.New(
//		gui.WithDirection(gui.Column),
//		gui.WithChildren(
//			gui.Text("hello", gui.WithClass("title")),
//			gui.New(gui.WithKey("body"), gui.WithFlexGrow(1)),
//		),
//	))
//
// Nodes keep their identity across frames through keys. A keyed node keeps
// its ID wherever it moves among its siblings; unkeyed nodes are identified
// by kind and position.
//
// Input is routed against the retained scene: DispatchPointer hit-tests the
// point and delivers the event from the topmost node up to the root;
// DispatchKey delivers to the focused node and its ancestors.
package gui
