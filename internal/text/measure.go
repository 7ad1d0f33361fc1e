package text

import (
	"strings"

	"golang.org/x/text/unicode/norm"

	"github.com/grindlemire/go-gui/internal/layout"
)

// Metrics measures single lines of text.
type Metrics interface {
	// Advance returns the width in pixels of s set on one line.
	Advance(s string, size float64) int
	// LineHeight returns the height in pixels of one line.
	LineHeight(size float64) int
}

// Normalize returns s in Unicode normalization form C.
func Normalize(s string) string {
	return norm.NFC.String(s)
}

// Wrap splits s into lines. Explicit newlines always break; when maxWidth
// is non-negative, words are packed greedily so no line exceeds it unless a
// single word does.
func Wrap(m Metrics, s string, size float64, maxWidth int) []string {
	s = Normalize(s)
	var out []string
	for _, para := range strings.Split(s, "\n") {
		if maxWidth < 0 || m.Advance(para, size) <= maxWidth {
			out = append(out, para)
			continue
		}
		line := ""
		for _, word := range strings.Fields(para) {
			if line == "" {
				line = word
				continue
			}
			candidate := line + " " + word
			if m.Advance(candidate, size) > maxWidth {
				out = append(out, line)
				line = word
				continue
			}
			line = candidate
		}
		out = append(out, line)
	}
	return out
}

// Measure returns the size of s wrapped to maxWidth (-1 for no limit).
func Measure(m Metrics, s string, size float64, maxWidth int) layout.Size {
	if s == "" {
		return layout.Size{}
	}
	lines := Wrap(m, s, size, maxWidth)
	var w int
	for _, line := range lines {
		w = max(w, m.Advance(line, size))
	}
	return layout.Size{Width: w, Height: len(lines) * m.LineHeight(size)}
}

// Mono gives every rune the same advance regardless of size.
type Mono struct {
	CellWidth  int
	CellHeight int
}

// Advance implements Metrics.
func (m Mono) Advance(s string, _ float64) int {
	return len([]rune(s)) * m.CellWidth
}

// LineHeight implements Metrics.
func (m Mono) LineHeight(float64) int {
	return m.CellHeight
}
