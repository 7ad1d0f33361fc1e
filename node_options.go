package gui

import (
	"github.com/grindlemire/go-gui/internal/layout"
	"github.com/grindlemire/go-gui/internal/style"
)

// Option configures a Node.
type Option func(*Node)

func decl(p style.Property, v style.Value) Option {
	return func(n *Node) {
		n.decls = append(n.decls, style.Decl(p, v))
	}
}

func length(p style.Property, v layout.Value) Option {
	return decl(p, style.Len(v))
}

func edges(p style.Property, e layout.Edges) Option {
	return decl(p, style.EdgeValues(float64(e.Top), float64(e.Right), float64(e.Bottom), float64(e.Left)))
}

// --- Identity Options ---

// WithKey sets the key that keeps the node's identity when it moves among
// its siblings. Keys must be unique among siblings.
func WithKey(key string) Option {
	return func(n *Node) {
		n.key = key
	}
}

// WithID sets the element id matched by #id selectors.
func WithID(id string) Option {
	return func(n *Node) {
		n.elementID = id
	}
}

// WithClass adds classes matched by .class selectors.
func WithClass(classes ...string) Option {
	return func(n *Node) {
		n.classes = append(n.classes, classes...)
	}
}

// WithRef stores the node's identity in ref after each frame.
func WithRef(ref *Ref) Option {
	return func(n *Node) {
		n.ref = ref
	}
}

// WithChildren appends children.
func WithChildren(children ...*Node) Option {
	return func(n *Node) {
		n.AddChild(children...)
	}
}

// WithFocusable marks the node as able to take keyboard focus.
func WithFocusable(focusable bool) Option {
	return func(n *Node) {
		n.focusable = focusable
	}
}

// --- Style Options ---

// WithStyle appends inline declarations. They apply after every sheet
// rule, in order.
func WithStyle(decls ...Declaration) Option {
	return func(n *Node) {
		n.decls = append(n.decls, decls...)
	}
}

// WithInherit makes the node copy props from its parent in addition to
// the properties that always inherit.
func WithInherit(props ...Property) Option {
	return func(n *Node) {
		n.inherit |= style.SetOf(props...)
	}
}

// --- Dimension Options ---

// WithWidth sets a fixed width in pixels.
func WithWidth(px int) Option {
	return length(style.PropWidth, layout.Fixed(px))
}

// WithWidthPercent sets width as a percentage of the parent's content width.
func WithWidthPercent(percent float64) Option {
	return length(style.PropWidth, layout.Percent(percent))
}

// WithHeight sets a fixed height in pixels.
func WithHeight(px int) Option {
	return length(style.PropHeight, layout.Fixed(px))
}

// WithHeightPercent sets height as a percentage of the parent's content
// height.
func WithHeightPercent(percent float64) Option {
	return length(style.PropHeight, layout.Percent(percent))
}

// WithSize sets both width and height in pixels.
func WithSize(width, height int) Option {
	return func(n *Node) {
		WithWidth(width)(n)
		WithHeight(height)(n)
	}
}

// WithMinWidth sets the minimum width in pixels.
func WithMinWidth(px int) Option {
	return length(style.PropMinWidth, layout.Fixed(px))
}

// WithMinHeight sets the minimum height in pixels.
func WithMinHeight(px int) Option {
	return length(style.PropMinHeight, layout.Fixed(px))
}

// WithMaxWidth sets the maximum width in pixels.
func WithMaxWidth(px int) Option {
	return length(style.PropMaxWidth, layout.Fixed(px))
}

// WithMaxHeight sets the maximum height in pixels.
func WithMaxHeight(px int) Option {
	return length(style.PropMaxHeight, layout.Fixed(px))
}

// --- Container Options ---

// WithDisplay sets how the node places its children.
func WithDisplay(d Display) Option {
	return decl(style.PropDisplay, style.Keyword(displayNames[d]))
}

// WithDirection sets the main axis direction for laying out children.
func WithDirection(d Direction) Option {
	return decl(style.PropDirection, style.Keyword(directionNames[d]))
}

// WithJustify sets how children are distributed along the main axis.
func WithJustify(j Justify) Option {
	return decl(style.PropJustifyContent, style.Keyword(justifyNames[j]))
}

// WithAlign sets how children are positioned on the cross axis.
func WithAlign(a Align) Option {
	return decl(style.PropAlignItems, style.Keyword(alignNames[a]))
}

// WithGap sets the space between children on the main axis.
func WithGap(px int) Option {
	return decl(style.PropGap, style.Num(float64(px)))
}

// WithOverflow sets whether children may extend past the content box.
func WithOverflow(o Overflow) Option {
	return decl(style.PropOverflow, style.Keyword(overflowNames[o]))
}

// --- Flex Item Options ---

// WithFlexGrow sets how much this node grows relative to its siblings.
func WithFlexGrow(factor float64) Option {
	return decl(style.PropFlexGrow, style.Num(factor))
}

// WithFlexShrink sets how much this node shrinks relative to its siblings.
func WithFlexShrink(factor float64) Option {
	return decl(style.PropFlexShrink, style.Num(factor))
}

// WithAlignSelf overrides the parent's AlignItems for this node.
func WithAlignSelf(a Align) Option {
	return decl(style.PropAlignSelf, style.Keyword(alignNames[a]))
}

// --- Box Model Options ---

// WithPadding sets equal padding on all sides.
func WithPadding(px int) Option {
	return edges(style.PropPadding, layout.EdgeAll(px))
}

// WithPaddingTRBL sets padding per side.
func WithPaddingTRBL(top, right, bottom, left int) Option {
	return edges(style.PropPadding, layout.EdgeTRBL(top, right, bottom, left))
}

// WithMargin sets equal margin on all sides.
func WithMargin(px int) Option {
	return edges(style.PropMargin, layout.EdgeAll(px))
}

// WithMarginTRBL sets margin per side.
func WithMarginTRBL(top, right, bottom, left int) Option {
	return edges(style.PropMargin, layout.EdgeTRBL(top, right, bottom, left))
}

// WithBorder sets an equal border width on all sides.
func WithBorder(px int) Option {
	return edges(style.PropBorder, layout.EdgeAll(px))
}

// --- Visual Options ---

// WithColor sets the text color.
func WithColor(c Color) Option {
	return decl(style.PropColor, style.ColorValue(c))
}

// WithBackground sets the background color.
func WithBackground(c Color) Option {
	return decl(style.PropBackground, style.ColorValue(c))
}

// WithBorderColor sets the border color.
func WithBorderColor(c Color) Option {
	return decl(style.PropBorderColor, style.ColorValue(c))
}

// WithBorderRadius rounds the corners of the background and border by r
// pixels.
func WithBorderRadius(r int) Option {
	return decl(style.PropBorderRadius, style.Num(float64(r)))
}

// WithBoxShadow casts a shadow offset by (x, y), softened over blur
// pixels and grown by spread. It extends the node's paint bounds but not
// its box.
func WithBoxShadow(x, y, blur, spread int, c Color) Option {
	return decl(style.PropBoxShadow, style.ShadowValue(style.Shadow{X: x, Y: y, Blur: blur, Spread: spread, Color: c}))
}

// WithFontSize sets the font size in pixels.
func WithFontSize(size float64) Option {
	return decl(style.PropFontSize, style.Num(size))
}

// WithOpacity sets the opacity in [0, 1].
func WithOpacity(o float64) Option {
	return decl(style.PropOpacity, style.Num(o))
}

// WithHidden hides the node. A hidden node keeps its space but is neither
// painted nor hit.
func WithHidden(hidden bool) Option {
	v := "visible"
	if hidden {
		v = "hidden"
	}
	return decl(style.PropVisibility, style.Keyword(v))
}

// WithTextAlign sets horizontal text alignment.
func WithTextAlign(a TextAlign) Option {
	return decl(style.PropTextAlign, style.Keyword(textAlignNames[a]))
}

var (
	displayNames   = map[Display]string{DisplayFlex: "flex", DisplayBlock: "block", DisplayNone: "none"}
	directionNames = map[Direction]string{Row: "row", Column: "column"}
	justifyNames   = map[Justify]string{
		JustifyStart:        "start",
		JustifyEnd:          "end",
		JustifyCenter:       "center",
		JustifySpaceBetween: "space-between",
		JustifySpaceAround:  "space-around",
		JustifySpaceEvenly:  "space-evenly",
	}
	alignNames = map[Align]string{
		AlignAuto:    "auto",
		AlignStart:   "start",
		AlignEnd:     "end",
		AlignCenter:  "center",
		AlignStretch: "stretch",
	}
	overflowNames  = map[Overflow]string{OverflowFit: "fit", OverflowClip: "clip"}
	textAlignNames = map[TextAlign]string{TextAlignStart: "start", TextAlignCenter: "center", TextAlignEnd: "end"}
)
