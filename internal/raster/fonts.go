package raster

import (
	"fmt"
	"sync"

	ggtext "github.com/gogpu/gg/text"
	"golang.org/x/image/font/gofont/goregular"
)

// fonts hands out faces of one font source, one per size.
type fonts struct {
	once   sync.Once
	source *ggtext.FontSource
	err    error

	mu    sync.Mutex
	faces map[float64]ggtext.Face
}

func (f *fonts) face(size float64) (ggtext.Face, error) {
	f.once.Do(func() {
		f.source, f.err = ggtext.NewFontSource(goregular.TTF)
		if f.err != nil {
			f.err = fmt.Errorf("raster: load font: %w", f.err)
		}
	})
	if f.err != nil {
		return nil, f.err
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	if face, ok := f.faces[size]; ok {
		return face, nil
	}
	if f.faces == nil {
		f.faces = make(map[float64]ggtext.Face)
	}
	face := f.source.Face(size)
	f.faces[size] = face
	return face, nil
}
