package text

import (
	"bytes"
	"fmt"
	"sync"

	"github.com/go-text/typesetting/di"
	"github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/language"
	"github.com/go-text/typesetting/shaping"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/math/fixed"
)

// Shaper measures with HarfBuzz shaping over one TrueType font. It is safe
// for concurrent use: the parsed font is shared, while faces and shapers are
// per call.
type Shaper struct {
	font  *font.Font
	pool  sync.Pool
	lang  language.Language
	probe []rune
}

// NewShaper parses ttf.
func NewShaper(ttf []byte) (*Shaper, error) {
	face, err := font.ParseTTF(bytes.NewReader(ttf))
	if err != nil {
		return nil, fmt.Errorf("parse font: %w", err)
	}
	s := &Shaper{
		font:  face.Font,
		lang:  language.NewLanguage("en"),
		probe: []rune("Hg"),
	}
	s.pool.New = func() any { return &shaping.HarfbuzzShaper{} }
	return s, nil
}

var (
	defaultOnce   sync.Once
	defaultShaper *Shaper
	defaultErr    error
)

// DefaultShaper returns a shared Shaper over the Go Regular font.
func DefaultShaper() (*Shaper, error) {
	defaultOnce.Do(func() {
		defaultShaper, defaultErr = NewShaper(goregular.TTF)
	})
	return defaultShaper, defaultErr
}

func (s *Shaper) shape(runes []rune, size float64) shaping.Output {
	in := shaping.Input{
		Text:      runes,
		RunStart:  0,
		RunEnd:    len(runes),
		Direction: di.DirectionLTR,
		Face:      font.NewFace(s.font),
		Size:      fixed.Int26_6(size * 64),
		Script:    scriptOf(runes),
		Language:  s.lang,
	}
	hb := s.pool.Get().(*shaping.HarfbuzzShaper)
	out := hb.Shape(in)
	s.pool.Put(hb)
	return out
}

// Advance implements Metrics.
func (s *Shaper) Advance(str string, size float64) int {
	if str == "" || size <= 0 {
		return 0
	}
	out := s.shape([]rune(Normalize(str)), size)
	return out.Advance.Ceil()
}

// LineHeight implements Metrics.
func (s *Shaper) LineHeight(size float64) int {
	if size <= 0 {
		return 0
	}
	out := s.shape(s.probe, size)
	return out.LineBounds.LineThickness().Ceil()
}

// scriptOf picks the script of the first rune that has one.
func scriptOf(runes []rune) language.Script {
	for _, r := range runes {
		if sc := language.LookupScript(r); sc.Strong() {
			return sc
		}
	}
	return language.Latin
}
