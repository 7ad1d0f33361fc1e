// Package text measures strings for layout and painting.
//
// A Metrics implementation reports the advance of a single line and the
// line height at a font size. Measure and Wrap build multi-line extents on
// top of it with greedy word wrapping. Shaper uses go-text HarfBuzz shaping
// over a TrueType font, Basic uses the x/image 7x13 bitmap face, and Mono is
// a fixed-cell measurer for tests. Cache memoizes any Metrics.
//
// All input is normalized to NFC first so that canonically equivalent
// strings measure and compare the same.
package text
