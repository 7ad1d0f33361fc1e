package raster

import (
	"fmt"
	"image"
	"sync"

	"github.com/gogpu/gg"

	"github.com/grindlemire/go-gui/internal/debug"
	"github.com/grindlemire/go-gui/internal/layout"
	"github.com/grindlemire/go-gui/internal/scene"
	"github.com/grindlemire/go-gui/internal/style"
	"github.com/grindlemire/go-gui/internal/text"
	"github.com/grindlemire/go-gui/internal/tree"
)

// Painter is implemented by custom content that draws itself. box is the
// node's content rect.
type Painter interface {
	Paint(ctx *gg.Context, box layout.Rect) error
}

// Renderer paints a retained scene into an in-memory framebuffer.
type Renderer struct {
	*scene.MemoryBackend

	mu       sync.Mutex
	ctx      *gg.Context
	metrics  text.Metrics
	clear    style.Color
	fonts    fonts
	images   map[scene.Handle]*imageEntry
	presents int
}

// imageEntry is the decoded form of an image payload, keyed by the
// node's texture.
type imageEntry struct {
	src image.Image
	buf *gg.ImageBuf
}

// Option configures a Renderer.
type Option func(*Renderer)

// WithMetrics sets the measurer used to break text into lines. It should
// match the one layout measured with.
func WithMetrics(m text.Metrics) Option {
	return func(r *Renderer) {
		if m != nil {
			r.metrics = m
		}
	}
}

// WithClearColor sets the color dirty areas are cleared to before
// repainting.
func WithClearColor(c style.Color) Option {
	return func(r *Renderer) {
		r.clear = c
	}
}

// New returns a renderer with a width x height framebuffer.
func New(width, height int, opts ...Option) *Renderer {
	r := &Renderer{
		MemoryBackend: scene.NewMemoryBackend(),
		ctx:           gg.NewContext(width, height),
		metrics:       text.Basic{},
		clear:         style.White,
		images:        make(map[scene.Handle]*imageEntry),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Resize replaces the framebuffer. The next present must repaint fully.
func (r *Renderer) Resize(width, height int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.ctx = gg.NewContext(width, height)
}

// Image returns the framebuffer.
func (r *Renderer) Image() image.Image {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.ctx.Image()
}

// Presents returns how many presents painted something.
func (r *Renderer) Presents() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.presents
}

// Release frees h and drops anything cached for it.
func (r *Renderer) Release(h scene.Handle) {
	r.mu.Lock()
	delete(r.images, h)
	r.mu.Unlock()
	r.MemoryBackend.Release(h)
}

// Present repaints the dirty part of the framebuffer from v.
func (r *Renderer) Present(v scene.View, dirty *scene.Region) error {
	if dirty == nil || dirty.IsEmpty() {
		return nil
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	rects := dirty.Rects()
	for _, rect := range rects {
		if err := r.repaint(v, rect); err != nil {
			return err
		}
	}
	r.presents++
	debug.Logger().Debug("raster: present", "rects", len(rects), "full", dirty.Full())
	return nil
}

func (r *Renderer) repaint(v scene.View, area layout.Rect) error {
	ctx := r.ctx
	ctx.Push()
	defer ctx.Pop()
	clipTo(ctx, area)

	setColor(ctx, r.clear, 1)
	ctx.DrawRectangle(float64(area.X), float64(area.Y), float64(area.Width), float64(area.Height))
	if err := ctx.Fill(); err != nil {
		return fmt.Errorf("raster: clear %v: %w", area, err)
	}

	root, ok := v.Root()
	if !ok {
		return nil
	}
	return r.paintTree(v, &root, area)
}

// paintTree paints n and then its children, clipping the children when n
// clips.
func (r *Renderer) paintTree(v scene.View, n *scene.Node, area layout.Rect) error {
	if n.PaintBounds().Intersects(area) {
		if err := r.paint(n); err != nil {
			return fmt.Errorf("raster: paint %s: %w", n.ID, err)
		}
	}
	if len(n.Children) == 0 {
		return nil
	}

	childArea := area
	if n.Box.Clips {
		childArea = area.Intersect(n.Box.Clip)
		if childArea.IsEmpty() {
			return nil
		}
		r.ctx.Push()
		defer r.ctx.Pop()
		clipTo(r.ctx, n.Box.Clip)
	}
	for _, id := range n.Children {
		child, ok := v.Node(id)
		if !ok {
			continue
		}
		if err := r.paintTree(v, &child, childArea); err != nil {
			return err
		}
	}
	return nil
}

func (r *Renderer) paint(n *scene.Node) error {
	st := n.Style
	if !st.Visible || st.Opacity <= 0 {
		return nil
	}
	box := n.Box
	radius := st.BorderRadius

	if !st.Shadow.IsZero() {
		if err := paintShadow(r.ctx, box.Rect, radius, st.Shadow, st.Opacity); err != nil {
			return err
		}
	}
	if !st.Background.IsTransparent() {
		if err := fillRounded(r.ctx, box.Rect, radius, st.Background, st.Opacity); err != nil {
			return err
		}
	}
	if !box.Border.IsZero() && !st.BorderColor.IsTransparent() {
		if radius > 0 {
			if err := fillRing(r.ctx, box.Rect, box.Border, radius, st.BorderColor, st.Opacity); err != nil {
				return err
			}
		} else {
			for _, edge := range borderRects(box.Rect, box.Border) {
				if err := fillRect(r.ctx, edge, st.BorderColor, st.Opacity); err != nil {
					return err
				}
			}
		}
	}

	switch n.Kind {
	case tree.KindText:
		return r.paintText(n)
	case tree.KindImage:
		return r.paintImage(n)
	case tree.KindCustom:
		if p, ok := n.Payload.Custom.(Painter); ok {
			return p.Paint(r.ctx, box.ContentRect)
		}
	}
	return nil
}

func (r *Renderer) paintText(n *scene.Node) error {
	st := n.Style
	content := n.Box.ContentRect
	if n.Payload.Text == "" || content.IsEmpty() || st.FontSize <= 0 || st.Color.IsTransparent() {
		return nil
	}
	face, err := r.fonts.face(st.FontSize)
	if err != nil {
		return err
	}

	r.ctx.SetFont(face)
	setColor(r.ctx, st.Color, st.Opacity)
	ascent := face.Metrics().Ascent
	lineHeight := r.metrics.LineHeight(st.FontSize)
	for i, line := range text.Wrap(r.metrics, n.Payload.Text, st.FontSize, content.Width) {
		x := float64(content.X)
		switch w := r.metrics.Advance(line, st.FontSize); st.TextAlign {
		case style.TextAlignCenter:
			x += float64(content.Width-w) / 2
		case style.TextAlignEnd:
			x += float64(content.Width - w)
		}
		y := float64(content.Y+i*lineHeight) + ascent
		r.ctx.DrawString(line, x, y)
	}
	return nil
}

func (r *Renderer) paintImage(n *scene.Node) error {
	src := n.Payload.Image
	content := n.Box.ContentRect
	if src == nil || content.IsEmpty() {
		return nil
	}

	entry, ok := r.images[n.Texture]
	if !ok || entry.src != src {
		entry = &imageEntry{src: src, buf: gg.ImageBufFromImage(src)}
		if n.Texture != 0 {
			r.images[n.Texture] = entry
		}
	}
	r.ctx.DrawImageEx(entry.buf, gg.DrawImageOptions{
		X:         float64(content.X),
		Y:         float64(content.Y),
		DstWidth:  float64(content.Width),
		DstHeight: float64(content.Height),
		Opacity:   n.Style.Opacity,
	})
	return nil
}

func clipTo(ctx *gg.Context, r layout.Rect) {
	ctx.ClipRect(float64(r.X), float64(r.Y), float64(r.Width), float64(r.Height))
}

func setColor(ctx *gg.Context, c style.Color, opacity float64) {
	ctx.SetRGBA(float64(c.R)/255, float64(c.G)/255, float64(c.B)/255, float64(c.A)/255*opacity)
}

func fillRect(ctx *gg.Context, r layout.Rect, c style.Color, opacity float64) error {
	if r.IsEmpty() {
		return nil
	}
	setColor(ctx, c, opacity)
	ctx.DrawRectangle(float64(r.X), float64(r.Y), float64(r.Width), float64(r.Height))
	return ctx.Fill()
}

func fillRounded(ctx *gg.Context, r layout.Rect, radius int, c style.Color, opacity float64) error {
	if radius <= 0 {
		return fillRect(ctx, r, c, opacity)
	}
	if r.IsEmpty() {
		return nil
	}
	setColor(ctx, c, opacity)
	drawRounded(ctx, r, radius)
	return ctx.Fill()
}

// fillRing fills the border band of a rounded box. The inner corners
// are rounded by what is left of radius after the widest border edge.
func fillRing(ctx *gg.Context, box layout.Rect, b layout.Edges, radius int, c style.Color, opacity float64) error {
	if box.IsEmpty() {
		return nil
	}
	ctx.SetFillRule(gg.FillRuleEvenOdd)
	defer ctx.SetFillRule(gg.FillRuleNonZero)

	setColor(ctx, c, opacity)
	drawRounded(ctx, box, radius)
	if inner := box.Inset(b); !inner.IsEmpty() {
		widest := max(b.Top, b.Right, b.Bottom, b.Left)
		drawRounded(ctx, inner, max(0, radius-widest))
	}
	return ctx.Fill()
}

// paintShadow approximates a blurred shadow with Blur+1 nested rounded
// rectangles, each carrying an equal share of the shadow's alpha, so
// coverage falls off toward the outer edge of the blur band. The shadow
// is painted beneath the box, not cut out of it.
func paintShadow(ctx *gg.Context, box layout.Rect, radius int, sh style.Shadow, opacity float64) error {
	base := box.Translate(sh.X, sh.Y).Outset(layout.EdgeAll(sh.Spread))
	if base.IsEmpty() {
		return nil
	}
	layer := float64(sh.Color.A) / 255 * opacity / float64(sh.Blur+1)
	ctx.SetRGBA(float64(sh.Color.R)/255, float64(sh.Color.G)/255, float64(sh.Color.B)/255, layer)

	corner := max(0, radius+sh.Spread)
	for i := sh.Blur; i >= 0; i-- {
		drawRounded(ctx, base.Outset(layout.EdgeAll(i)), corner+i)
		if err := ctx.Fill(); err != nil {
			return err
		}
	}
	return nil
}

func drawRounded(ctx *gg.Context, r layout.Rect, radius int) {
	x, y, w, h := float64(r.X), float64(r.Y), float64(r.Width), float64(r.Height)
	if radius <= 0 {
		ctx.DrawRectangle(x, y, w, h)
		return
	}
	ctx.DrawRoundedRectangle(x, y, w, h, float64(radius))
}

// borderRects splits the border of box into top, bottom, left and right
// bands.
func borderRects(box layout.Rect, b layout.Edges) [4]layout.Rect {
	inner := box.Height - b.Top - b.Bottom
	return [4]layout.Rect{
		layout.NewRect(box.X, box.Y, box.Width, b.Top),
		layout.NewRect(box.X, box.Bottom()-b.Bottom, box.Width, b.Bottom),
		layout.NewRect(box.X, box.Y+b.Top, b.Left, max(inner, 0)),
		layout.NewRect(box.Right()-b.Right, box.Y+b.Top, b.Right, max(inner, 0)),
	}
}
