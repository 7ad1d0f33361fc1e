// Package raster is a software renderer for the retained scene, drawing
// into a github.com/gogpu/gg context.
//
// It follows the same contract as a GPU renderer: handles come from the
// scene through the Backend methods and Present repaints only the dirty
// region, in paint order, clipped the way hit testing clips.
package raster
