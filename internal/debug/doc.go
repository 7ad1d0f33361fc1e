// Package debug holds the process-wide structured logger.
//
// By default every record is discarded. When the GUI_DEBUG environment
// variable names a file path, records at debug level and above are appended
// to that file as text. The root gui package exposes SetLogger and Logger on
// top of this package so internal packages can log without import cycles.
package debug
