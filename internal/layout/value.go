package layout

import "math"

// Unit specifies how a Value is interpreted.
type Unit uint8

const (
	UnitAuto    Unit = iota // Size determined by content or flex
	UnitFixed               // Absolute pixels
	UnitPercent             // Percentage of the parent's content extent
)

// Value is a dimension that can be fixed, a percentage, or auto.
type Value struct {
	Amount float64
	Unit   Unit
}

// Auto returns a Value computed from content or flex.
func Auto() Value {
	return Value{Unit: UnitAuto}
}

// Fixed returns a Value of n pixels.
func Fixed(n int) Value {
	return Value{Amount: float64(n), Unit: UnitFixed}
}

// Px returns a fixed Value with a fractional amount. The fraction is
// truncated when the value is resolved.
func Px(f float64) Value {
	return Value{Amount: f, Unit: UnitFixed}
}

// Percent returns a Value relative to the parent's content extent, on a
// 0-100 scale.
func Percent(p float64) Value {
	return Value{Amount: p, Unit: UnitPercent}
}

// Resolve computes the integer extent given the available space. Auto
// values resolve to fallback.
func (v Value) Resolve(available, fallback int) int {
	switch v.Unit {
	case UnitFixed:
		return int(v.Amount)
	case UnitPercent:
		return int(float64(available) * v.Amount / 100.0)
	default:
		return fallback
	}
}

// IsAuto reports whether the value is computed from content or flex.
func (v Value) IsAuto() bool {
	return v.Unit == UnitAuto
}

// IsFinite reports whether the amount is a usable number.
func (v Value) IsFinite() bool {
	return !math.IsNaN(v.Amount) && !math.IsInf(v.Amount, 0)
}
