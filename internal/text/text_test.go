package text

import (
	"sync"
	"sync/atomic"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/grindlemire/go-gui/internal/layout"
)

var mono = Mono{CellWidth: 2, CellHeight: 5}

func TestWrap(t *testing.T) {
	type tc struct {
		in       string
		maxWidth int
		want     []string
	}

	tests := map[string]tc{
		"unbounded":         {in: "hello world", maxWidth: -1, want: []string{"hello world"}},
		"fits":              {in: "hello world", maxWidth: 22, want: []string{"hello world"}},
		"breaks at space":   {in: "hello world", maxWidth: 20, want: []string{"hello", "world"}},
		"packs greedily":    {in: "a b c d e", maxWidth: 6, want: []string{"a b", "c d", "e"}},
		"long word alone":   {in: "tiny enormousword x", maxWidth: 8, want: []string{"tiny", "enormousword", "x"}},
		"explicit newlines": {in: "one\ntwo", maxWidth: -1, want: []string{"one", "two"}},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got := Wrap(mono, tt.in, 12, tt.maxWidth)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Wrap() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestMeasure(t *testing.T) {
	type tc struct {
		in       string
		maxWidth int
		want     layout.Size
	}

	tests := map[string]tc{
		"empty":     {in: "", maxWidth: -1, want: layout.Size{}},
		"one line":  {in: "abcd", maxWidth: -1, want: layout.Size{Width: 8, Height: 5}},
		"two lines": {in: "ab\nabcdef", maxWidth: -1, want: layout.Size{Width: 12, Height: 10}},
		"wrapped":   {in: "abc abc abc", maxWidth: 14, want: layout.Size{Width: 14, Height: 10}},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if got := Measure(mono, tt.in, 12, tt.maxWidth); got != tt.want {
				t.Errorf("Measure() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestNormalize(t *testing.T) {
	composed := "caf\u00e9"
	decomposed := "cafe\u0301"
	if Normalize(decomposed) != composed {
		t.Errorf("Normalize(%q) = %q, want %q", decomposed, Normalize(decomposed), composed)
	}
	if got, want := mono.Advance(Normalize(decomposed), 1), mono.Advance(composed, 1); got != want {
		t.Errorf("advance after normalization = %d, want %d", got, want)
	}
}

func TestBasic(t *testing.T) {
	var b Basic
	if got := b.Advance("abc", 13); got != 21 {
		t.Errorf("Advance(abc, 13) = %d, want 21", got)
	}
	if got := b.Advance("abc", 26); got != 42 {
		t.Errorf("Advance(abc, 26) = %d, want 42", got)
	}
	if got := b.LineHeight(13); got != 13 {
		t.Errorf("LineHeight(13) = %d, want 13", got)
	}
}

func TestShaper(t *testing.T) {
	s, err := DefaultShaper()
	if err != nil {
		t.Fatalf("DefaultShaper() error = %v", err)
	}

	short := s.Advance("ab", 16)
	long := s.Advance("abc", 16)
	if short <= 0 || long <= short {
		t.Errorf("Advance(ab) = %d, Advance(abc) = %d; want 0 < ab < abc", short, long)
	}
	if big := s.Advance("abc", 32); big <= long {
		t.Errorf("Advance at 32 = %d, want more than %d at 16", big, long)
	}
	if got := s.Advance("", 16); got != 0 {
		t.Errorf("Advance(\"\") = %d, want 0", got)
	}
	if got, want := s.Advance("cafe\u0301", 16), s.Advance("caf\u00e9", 16); got != want {
		t.Errorf("decomposed advance = %d, want composed %d", got, want)
	}
	if h := s.LineHeight(16); h < 16 || h > 32 {
		t.Errorf("LineHeight(16) = %d, want within [16, 32]", h)
	}
}

func TestShaper_BadFont(t *testing.T) {
	if _, err := NewShaper([]byte("not a font")); err == nil {
		t.Error("NewShaper(garbage) error = nil, want error")
	}
}

type countingMetrics struct {
	Mono
	calls atomic.Int64
}

func (c *countingMetrics) Advance(s string, size float64) int {
	c.calls.Add(1)
	return c.Mono.Advance(s, size)
}

func TestCache(t *testing.T) {
	inner := &countingMetrics{Mono: mono}
	c := NewCache(inner, 2)

	c.Advance("a", 10)
	c.Advance("a", 10)
	if got := inner.calls.Load(); got != 1 {
		t.Errorf("calls after repeat = %d, want 1", got)
	}
	c.Advance("a", 12)
	if got := inner.calls.Load(); got != 2 {
		t.Errorf("calls after new size = %d, want 2", got)
	}
	c.Advance("b", 10)
	if got := c.Len(); got != 1 {
		t.Errorf("Len() after overflow = %d, want 1", got)
	}
	if got := c.LineHeight(10); got != 5 {
		t.Errorf("LineHeight() = %d, want 5", got)
	}
}

func TestCache_Concurrent(t *testing.T) {
	c := NewCache(mono, 0)
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				if got := c.Advance("abc", float64(j%5)); got != 6 {
					t.Errorf("Advance() = %d, want 6", got)
					return
				}
			}
		}()
	}
	wg.Wait()
}
