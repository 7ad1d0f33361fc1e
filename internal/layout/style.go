package layout

// Display selects how a container places its children.
type Display uint8

const (
	DisplayFlex  Display = iota // One flex line along Direction
	DisplayBlock                // Vertical stack, each child stretched across
	DisplayNone                 // Takes no space; the subtree gets empty boxes
)

// Direction specifies the main axis of a flex container.
type Direction uint8

const (
	Row    Direction = iota // Children laid out left-to-right
	Column                  // Children laid out top-to-bottom
)

// Justify specifies how children are distributed along the main axis.
type Justify uint8

const (
	JustifyStart        Justify = iota // Pack at start
	JustifyEnd                         // Pack at end
	JustifyCenter                      // Center children
	JustifySpaceBetween                // Even space between, none at edges
	JustifySpaceAround                 // Even space around each child
	JustifySpaceEvenly                 // Equal space between and at edges
)

// Align specifies how children are positioned on the cross axis.
type Align uint8

const (
	AlignAuto    Align = iota // AlignSelf only: use the parent's AlignItems
	AlignStart                // Align to start of cross axis
	AlignEnd                  // Align to end of cross axis
	AlignCenter               // Center on cross axis
	AlignStretch              // Stretch to fill cross axis
)

// Overflow controls whether children may extend past the content rect.
type Overflow uint8

const (
	// OverflowFit trims child boxes into the parent's content rect.
	OverflowFit Overflow = iota
	// OverflowClip leaves child boxes alone and records the content rect as
	// the clip for painting and hit-testing.
	OverflowClip
)

// Style holds every layout property of a node. It is comparable.
type Style struct {
	Display Display

	// Sizing
	Width     Value
	Height    Value
	MinWidth  Value
	MinHeight Value
	MaxWidth  Value
	MaxHeight Value

	// Container properties
	Direction      Direction
	JustifyContent Justify
	AlignItems     Align
	Gap            int // Space between children on the main axis

	// Item properties
	FlexGrow   float64
	FlexShrink float64
	AlignSelf  Align

	// Box model
	Padding Edges
	Border  Edges
	Margin  Edges

	Overflow Overflow
}

// DefaultStyle returns a Style with the engine defaults.
func DefaultStyle() Style {
	return Style{
		Width:      Auto(),
		Height:     Auto(),
		MinWidth:   Fixed(0),
		MinHeight:  Fixed(0),
		MaxWidth:   Auto(),
		MaxHeight:  Auto(),
		Direction:  Row,
		AlignItems: AlignStretch,
		FlexShrink: 1,
	}
}

func (s Style) isRow() bool {
	return s.Display == DisplayFlex && s.Direction == Row
}

// frame is the space taken by padding and border together.
func (s Style) frame() Edges {
	return s.Padding.Add(s.Border)
}

func (s Style) size(row bool) Value {
	if row {
		return s.Width
	}
	return s.Height
}

func (s Style) minSize(row bool) Value {
	if row {
		return s.MinWidth
	}
	return s.MinHeight
}

func (s Style) maxSize(row bool) Value {
	if row {
		return s.MaxWidth
	}
	return s.MaxHeight
}
