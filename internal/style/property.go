package style

import "fmt"

// Property identifies one style property.
type Property uint8

const (
	PropDisplay Property = iota
	PropWidth
	PropHeight
	PropMinWidth
	PropMinHeight
	PropMaxWidth
	PropMaxHeight
	PropDirection
	PropJustifyContent
	PropAlignItems
	PropAlignSelf
	PropGap
	PropFlexGrow
	PropFlexShrink
	PropPadding
	PropBorder
	PropMargin
	PropOverflow
	PropColor
	PropBackground
	PropBorderColor
	PropFontSize
	PropOpacity
	PropVisibility
	PropTextAlign
	PropBorderRadius
	PropBoxShadow

	propCount
)

var propertyNames = [propCount]string{
	PropDisplay:        "display",
	PropWidth:          "width",
	PropHeight:         "height",
	PropMinWidth:       "min-width",
	PropMinHeight:      "min-height",
	PropMaxWidth:       "max-width",
	PropMaxHeight:      "max-height",
	PropDirection:      "flex-direction",
	PropJustifyContent: "justify-content",
	PropAlignItems:     "align-items",
	PropAlignSelf:      "align-self",
	PropGap:            "gap",
	PropFlexGrow:       "flex-grow",
	PropFlexShrink:     "flex-shrink",
	PropPadding:        "padding",
	PropBorder:         "border-width",
	PropMargin:         "margin",
	PropOverflow:       "overflow",
	PropColor:          "color",
	PropBackground:     "background",
	PropBorderColor:    "border-color",
	PropFontSize:       "font-size",
	PropOpacity:        "opacity",
	PropVisibility:     "visibility",
	PropTextAlign:      "text-align",
	PropBorderRadius:   "border-radius",
	PropBoxShadow:      "box-shadow",
}

func (p Property) String() string {
	if p < propCount {
		return propertyNames[p]
	}
	return fmt.Sprintf("Property(%d)", uint8(p))
}

// PropertyByName looks up a property by its sheet name.
func PropertyByName(name string) (Property, bool) {
	for p, n := range propertyNames {
		if n == name {
			return Property(p), true
		}
	}
	return 0, false
}

// PropertySet is a bit set of properties.
type PropertySet uint64

// SetOf returns the set holding props.
func SetOf(props ...Property) PropertySet {
	var s PropertySet
	for _, p := range props {
		s |= 1 << p
	}
	return s
}

// Has reports whether p is in the set.
func (s PropertySet) Has(p Property) bool {
	return s&(1<<p) != 0
}

// Inherited holds the properties every node copies from its parent before
// its own rules apply.
var Inherited = SetOf(PropColor, PropFontSize, PropTextAlign, PropVisibility)

// Geometric holds the properties that can change a node's box.
var Geometric = SetOf(
	PropDisplay, PropWidth, PropHeight, PropMinWidth, PropMinHeight, PropMaxWidth, PropMaxHeight,
	PropDirection, PropJustifyContent, PropAlignItems, PropAlignSelf, PropGap,
	PropFlexGrow, PropFlexShrink, PropPadding, PropBorder, PropMargin, PropOverflow,
	PropFontSize,
)
