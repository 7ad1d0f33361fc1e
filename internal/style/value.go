package style

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/grindlemire/go-gui/internal/layout"
)

// Kind tags the payload of a Value.
type Kind uint8

const (
	KindNumber Kind = iota + 1
	KindLength
	KindKeyword
	KindColor
	KindEdges
	KindInherit
	KindShadow
)

func (k Kind) String() string {
	switch k {
	case KindNumber:
		return "number"
	case KindLength:
		return "length"
	case KindKeyword:
		return "keyword"
	case KindColor:
		return "color"
	case KindEdges:
		return "edges"
	case KindInherit:
		return "inherit"
	case KindShadow:
		return "shadow"
	default:
		return "invalid"
	}
}

// Value is an unresolved property value.
type Value struct {
	Kind    Kind
	Number  float64
	Length  layout.Value
	Keyword string
	Color   Color
	Edges   [4]float64 // top, right, bottom, left
	Shadow  Shadow
}

// Num returns a number value.
func Num(f float64) Value { return Value{Kind: KindNumber, Number: f} }

// Len returns a length value.
func Len(v layout.Value) Value { return Value{Kind: KindLength, Length: v} }

// Keyword returns a keyword value.
func Keyword(s string) Value { return Value{Kind: KindKeyword, Keyword: s} }

// ColorValue returns a color value.
func ColorValue(c Color) Value { return Value{Kind: KindColor, Color: c} }

// EdgeValues returns a four-sided value in CSS order.
func EdgeValues(top, right, bottom, left float64) Value {
	return Value{Kind: KindEdges, Edges: [4]float64{top, right, bottom, left}}
}

// Inherit returns the value that copies the parent's resolved property.
func Inherit() Value { return Value{Kind: KindInherit} }

func (v Value) String() string {
	switch v.Kind {
	case KindNumber:
		return strconv.FormatFloat(v.Number, 'g', -1, 64)
	case KindLength:
		switch v.Length.Unit {
		case layout.UnitAuto:
			return "auto"
		case layout.UnitPercent:
			return strconv.FormatFloat(v.Length.Amount, 'g', -1, 64) + "%"
		default:
			return strconv.FormatFloat(v.Length.Amount, 'g', -1, 64) + "px"
		}
	case KindKeyword:
		return v.Keyword
	case KindColor:
		return v.Color.String()
	case KindEdges:
		return fmt.Sprintf("%g %g %g %g", v.Edges[0], v.Edges[1], v.Edges[2], v.Edges[3])
	case KindInherit:
		return "inherit"
	case KindShadow:
		return v.Shadow.String()
	default:
		return "<invalid>"
	}
}

// Declaration assigns a value to a property.
type Declaration struct {
	Property Property
	Value    Value
}

// Decl is shorthand for a Declaration literal.
func Decl(p Property, v Value) Declaration {
	return Declaration{Property: p, Value: v}
}

// ParseValue converts a raw value read from a sheet or config into a Value
// suitable for p. raw may be an int, a float64, a string or a list of
// numbers. Domain checks happen at resolution time.
func ParseValue(p Property, raw any) (Value, error) {
	switch r := raw.(type) {
	case int:
		return Num(float64(r)), nil
	case float64:
		return Num(r), nil
	case string:
		return parseString(p, r)
	case []any:
		return parseEdges(r)
	default:
		return Value{}, fmt.Errorf("%s: unsupported value %v (%T)", p, raw, raw)
	}
}

func parseString(p Property, s string) (Value, error) {
	s = strings.TrimSpace(s)
	switch {
	case s == "inherit":
		return Inherit(), nil
	case p == PropBoxShadow:
		return parseShadow(s)
	case s == "auto" && isLength(p):
		return Len(layout.Auto()), nil
	case strings.HasSuffix(s, "%"):
		f, err := strconv.ParseFloat(strings.TrimSuffix(s, "%"), 64)
		if err != nil {
			return Value{}, fmt.Errorf("%s: bad percentage %q", p, s)
		}
		return Len(layout.Percent(f)), nil
	case strings.HasSuffix(s, "px"):
		f, err := strconv.ParseFloat(strings.TrimSuffix(s, "px"), 64)
		if err != nil {
			return Value{}, fmt.Errorf("%s: bad length %q", p, s)
		}
		return Len(layout.Px(f)), nil
	case isColor(p):
		c, err := ParseColor(s)
		if err != nil {
			return Value{}, fmt.Errorf("%s: %w", p, err)
		}
		return ColorValue(c), nil
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return Num(f), nil
	}
	if fields := strings.Fields(s); len(fields) > 1 {
		list := make([]any, len(fields))
		for i, f := range fields {
			n, err := strconv.ParseFloat(strings.TrimSuffix(f, "px"), 64)
			if err != nil {
				return Value{}, fmt.Errorf("%s: bad edge list %q", p, s)
			}
			list[i] = n
		}
		return parseEdges(list)
	}
	return Keyword(s), nil
}

// parseEdges accepts one, two or four numbers in CSS order.
func parseEdges(list []any) (Value, error) {
	nums := make([]float64, len(list))
	for i, item := range list {
		switch n := item.(type) {
		case int:
			nums[i] = float64(n)
		case float64:
			nums[i] = n
		default:
			return Value{}, fmt.Errorf("edge list entry %v is not a number", item)
		}
	}
	switch len(nums) {
	case 1:
		return EdgeValues(nums[0], nums[0], nums[0], nums[0]), nil
	case 2:
		return EdgeValues(nums[0], nums[1], nums[0], nums[1]), nil
	case 4:
		return EdgeValues(nums[0], nums[1], nums[2], nums[3]), nil
	default:
		return Value{}, fmt.Errorf("edge list needs 1, 2 or 4 numbers, got %d", len(nums))
	}
}

func isLength(p Property) bool {
	switch p {
	case PropWidth, PropHeight, PropMinWidth, PropMinHeight, PropMaxWidth, PropMaxHeight:
		return true
	}
	return false
}

func isColor(p Property) bool {
	return p == PropColor || p == PropBackground || p == PropBorderColor
}
