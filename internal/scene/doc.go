// Package scene keeps the retained scene: the renderer-side mirror of the
// last presented tree.
//
// The Scene applies diff patches one at a time, owns every renderer handle
// and accumulates the dirty region for the next present. Patches are
// applied inside a transaction. Commit issues the queued handle releases;
// Rollback restores the previous scene and frees whatever the frame
// allocated, so a failed frame leaves no trace.
package scene
