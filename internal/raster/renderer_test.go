package raster

import (
	"image"
	"image/color"
	"testing"

	"github.com/gogpu/gg"

	"github.com/grindlemire/go-gui/internal/diff"
	"github.com/grindlemire/go-gui/internal/layout"
	"github.com/grindlemire/go-gui/internal/scene"
	"github.com/grindlemire/go-gui/internal/style"
	"github.com/grindlemire/go-gui/internal/tree"
)

var (
	red   = style.RGB(255, 0, 0)
	green = style.RGB(0, 255, 0)
	blue  = style.RGB(0, 0, 255)
)

func styled(bg style.Color) style.Resolved {
	st := style.Default()
	st.Background = bg
	return st
}

func boxed(r layout.Rect, border int) layout.Layout {
	b := layout.EdgeAll(border)
	return layout.Layout{Rect: r, ContentRect: r.Inset(b), Border: b}
}

// swatch paints its content rect green.
type swatch struct{}

func (swatch) Measure(int) layout.Size { return layout.Size{} }

func (swatch) PaintBounds(box layout.Rect) layout.Rect { return box }

func (swatch) HitTest(layout.Rect, layout.Point) bool { return false }

func (swatch) Equal(o tree.Content) bool { return o == swatch{} }

func (swatch) Paint(ctx *gg.Context, box layout.Rect) error {
	ctx.SetRGBA(0, 1, 0, 1)
	ctx.DrawRectangle(float64(box.X), float64(box.Y), float64(box.Width), float64(box.Height))
	return ctx.Fill()
}

func assertColor(t *testing.T, img image.Image, x, y int, want style.Color) {
	t.Helper()
	r, g, b, _ := img.At(x, y).RGBA()
	got := [3]int{int(r >> 8), int(g >> 8), int(b >> 8)}
	exp := [3]int{int(want.R), int(want.G), int(want.B)}
	for i := range got {
		if d := got[i] - exp[i]; d > 2 || d < -2 {
			t.Errorf("pixel (%d,%d) = %v, want %v", x, y, got, exp)
			return
		}
	}
}

func TestRenderer_Present(t *testing.T) {
	r := New(40, 40)
	s := scene.New(r, layout.NewRect(0, 0, 40, 40), 0)

	clipped := boxed(layout.NewRect(20, 20, 10, 10), 0)
	clipped.Clips, clipped.Clip = true, clipped.Rect

	err := s.ApplyAll([]diff.Patch{
		{Op: diff.OpInsert, ID: 1, Kind: tree.KindContainer, Style: styled(red), Box: boxed(layout.NewRect(0, 0, 40, 40), 0)},
		{Op: diff.OpInsert, ID: 2, Parent: 1, Index: 0, Kind: tree.KindContainer, Style: func() style.Resolved {
			st := styled(blue)
			st.BorderColor = green
			return st
		}(), Box: boxed(layout.NewRect(2, 2, 10, 10), 1)},
		{Op: diff.OpInsert, ID: 3, Parent: 1, Index: 1, Kind: tree.KindContainer, Style: styled(style.Transparent), Box: clipped},
		{Op: diff.OpInsert, ID: 4, Parent: 3, Index: 0, Kind: tree.KindContainer, Style: styled(blue), Box: boxed(layout.NewRect(25, 25, 15, 15), 0)},
		{Op: diff.OpInsert, ID: 5, Parent: 1, Index: 2, Kind: tree.KindCustom, Style: style.Default(),
			Box: boxed(layout.NewRect(2, 30, 5, 5), 0), Content: tree.Payload{Custom: swatch{}}},
	})
	if err != nil {
		t.Fatalf("ApplyAll: %v", err)
	}
	if err := r.Present(s.View(), s.Dirty()); err != nil {
		t.Fatalf("Present: %v", err)
	}
	s.ClearDirty()

	img := r.Image()
	assertColor(t, img, 15, 1, red)
	assertColor(t, img, 2, 6, green)
	assertColor(t, img, 6, 6, blue)
	assertColor(t, img, 27, 27, blue)
	assertColor(t, img, 35, 35, red)
	assertColor(t, img, 4, 32, green)

	// Repaint only the first box.
	st := styled(green)
	if err := s.Apply(diff.Patch{Op: diff.OpUpdateStyle, ID: 2, Style: st}); err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if err := r.Present(s.View(), s.Dirty()); err != nil {
		t.Fatalf("Present: %v", err)
	}
	img = r.Image()
	assertColor(t, img, 6, 6, green)
	assertColor(t, img, 27, 27, blue)
	if got := r.Presents(); got != 2 {
		t.Errorf("Presents = %d, want 2", got)
	}
}

func TestRenderer_ImagesAndText(t *testing.T) {
	r := New(40, 20)
	s := scene.New(r, layout.NewRect(0, 0, 40, 20), 0)

	src := image.NewRGBA(image.Rect(0, 0, 4, 4))
	for y := range 4 {
		for x := range 4 {
			src.Set(x, y, color.RGBA{B: 255, A: 255})
		}
	}
	txt := style.Default()
	txt.Color = style.Black

	err := s.ApplyAll([]diff.Patch{
		{Op: diff.OpInsert, ID: 1, Kind: tree.KindContainer, Style: styled(style.White), Box: boxed(layout.NewRect(0, 0, 40, 20), 0)},
		{Op: diff.OpInsert, ID: 2, Parent: 1, Kind: tree.KindImage, Style: style.Default(),
			Box: boxed(layout.NewRect(0, 0, 8, 8), 0), Content: tree.Payload{Image: src}},
		{Op: diff.OpInsert, ID: 3, Parent: 1, Index: 1, Kind: tree.KindText, Style: txt,
			Box: boxed(layout.NewRect(10, 0, 30, 20), 0), Content: tree.Payload{Text: "HHHH"}},
	})
	if err != nil {
		t.Fatalf("ApplyAll: %v", err)
	}
	if err := r.Present(s.View(), s.Dirty()); err != nil {
		t.Fatalf("Present: %v", err)
	}

	img := r.Image()
	assertColor(t, img, 4, 4, blue)

	dark := false
	for y := 0; y < 20 && !dark; y++ {
		for x := 10; x < 40; x++ {
			if cr, _, _, _ := img.At(x, y).RGBA(); cr>>8 < 128 {
				dark = true
				break
			}
		}
	}
	if !dark {
		t.Error("text painted no dark pixels")
	}

	tex, _ := s.View().Node(2)
	if _, ok := r.images[tex.Texture]; !ok {
		t.Error("decoded image not cached under the node's texture")
	}
	if err := s.Apply(diff.Patch{Op: diff.OpRemove, ID: 2}); err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if _, ok := r.images[tex.Texture]; ok {
		t.Error("image cache kept a released texture")
	}
}

func TestRenderer_EmptyDirtyIsNoop(t *testing.T) {
	r := New(4, 4)
	s := scene.New(r, layout.NewRect(0, 0, 4, 4), 0)
	if err := r.Present(s.View(), s.Dirty()); err != nil {
		t.Fatalf("Present: %v", err)
	}
	if r.Presents() != 0 {
		t.Error("empty dirty region counted as a present")
	}
}

func TestBorderRects(t *testing.T) {
	got := borderRects(layout.NewRect(0, 0, 10, 6), layout.EdgeTRBL(1, 2, 1, 3))
	want := [4]layout.Rect{
		layout.NewRect(0, 0, 10, 1),
		layout.NewRect(0, 5, 10, 1),
		layout.NewRect(0, 1, 3, 4),
		layout.NewRect(8, 1, 2, 4),
	}
	if got != want {
		t.Errorf("borderRects = %v, want %v", got, want)
	}
}

// red channel of the pixel at (x, y).
func redAt(img image.Image, x, y int) int {
	r, _, _, _ := img.At(x, y).RGBA()
	return int(r >> 8)
}

func TestRenderer_RoundedCornersAndShadow(t *testing.T) {
	r := New(40, 40)
	s := scene.New(r, layout.NewRect(0, 0, 40, 40), 0)

	rounded := styled(blue)
	rounded.BorderRadius = 8
	shadowed := styled(blue)
	shadowed.Shadow = style.Shadow{X: 4, Y: 4, Color: style.Black}

	err := s.ApplyAll([]diff.Patch{
		{Op: diff.OpInsert, ID: 1, Kind: tree.KindContainer, Style: styled(style.Transparent), Box: boxed(layout.NewRect(0, 0, 40, 40), 0)},
		{Op: diff.OpInsert, ID: 2, Parent: 1, Kind: tree.KindContainer, Style: rounded, Box: boxed(layout.NewRect(2, 2, 16, 16), 0)},
		{Op: diff.OpInsert, ID: 3, Parent: 1, Index: 1, Kind: tree.KindContainer, Style: shadowed, Box: boxed(layout.NewRect(20, 20, 10, 10), 0)},
	})
	if err != nil {
		t.Fatalf("ApplyAll: %v", err)
	}
	if err := r.Present(s.View(), s.Dirty()); err != nil {
		t.Fatalf("Present: %v", err)
	}
	s.ClearDirty()

	img := r.Image()
	assertColor(t, img, 2, 2, style.White) // cut corner
	assertColor(t, img, 10, 10, blue)
	assertColor(t, img, 3, 10, blue)
	assertColor(t, img, 25, 25, blue)
	assertColor(t, img, 32, 32, style.Black) // offset shadow past the box
	assertColor(t, img, 22, 32, style.White) // left of the shadow

	// Dropping the shadow repaints the area it covered.
	if err := s.Apply(diff.Patch{Op: diff.OpUpdateStyle, ID: 3, Style: styled(blue)}); err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if err := r.Present(s.View(), s.Dirty()); err != nil {
		t.Fatalf("Present: %v", err)
	}
	assertColor(t, r.Image(), 32, 32, style.White)
}

func TestRenderer_ShadowBlurFallsOff(t *testing.T) {
	r := New(40, 40)
	s := scene.New(r, layout.NewRect(0, 0, 40, 40), 0)

	st := styled(blue)
	st.Shadow = style.Shadow{Blur: 4, Color: style.Black}
	err := s.ApplyAll([]diff.Patch{
		{Op: diff.OpInsert, ID: 1, Kind: tree.KindContainer, Style: styled(style.Transparent), Box: boxed(layout.NewRect(0, 0, 40, 40), 0)},
		{Op: diff.OpInsert, ID: 2, Parent: 1, Kind: tree.KindContainer, Style: st, Box: boxed(layout.NewRect(10, 10, 20, 20), 0)},
	})
	if err != nil {
		t.Fatalf("ApplyAll: %v", err)
	}
	if err := r.Present(s.View(), s.Dirty()); err != nil {
		t.Fatalf("Present: %v", err)
	}

	img := r.Image()
	near, far := redAt(img, 31, 20), redAt(img, 33, 20)
	if near <= 20 || near >= 235 {
		t.Errorf("pixel next to the box = %d, want a partial shadow", near)
	}
	if far <= near {
		t.Errorf("outer blur pixel = %d, want lighter than inner %d", far, near)
	}
	if got := redAt(img, 36, 20); got < 250 {
		t.Errorf("pixel past the blur band = %d, want untouched white", got)
	}
}
