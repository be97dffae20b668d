package flex

import "math"

// Undefined marks an unknown float dimension. All layout arithmetic treats
// NaN as "no value"; it must never leak into committed output.
var Undefined = math.NaN()

// IsUndefined reports whether v carries no value.
func IsUndefined(v float64) bool {
	return math.IsNaN(v)
}

// Unit qualifies how a Value is interpreted against a parent dimension.
type Unit int

const (
	UnitUndefined Unit = iota
	UnitPoint
	UnitPercent
	UnitAuto
)

// Value is a style length: a point length, a percentage of the parent, auto,
// or unset.
type Value struct {
	Value float64
	Unit  Unit
}

var (
	valueUndefined = Value{Value: Undefined, Unit: UnitUndefined}
	valueAuto      = Value{Value: Undefined, Unit: UnitAuto}
	valueZero      = Value{Value: 0, Unit: UnitPoint}
)

// Point returns a fixed length value.
func Point(v float64) Value { return Value{Value: v, Unit: UnitPoint} }

// Percent returns a percentage value.
func Percent(v float64) Value { return Value{Value: v, Unit: UnitPercent} }

// Auto returns the auto value.
func Auto() Value { return valueAuto }

func valueEqual(a, b Value) bool {
	if a.Unit != b.Unit {
		return false
	}
	if a.Unit == UnitUndefined || a.Unit == UnitAuto {
		return true
	}
	return floatsEqual(a.Value, b.Value)
}

// resolveValue turns a style value into points against the parent dimension.
// Percentages against an indefinite parent resolve to Undefined.
func resolveValue(v Value, parentSize float64) float64 {
	switch v.Unit {
	case UnitPoint:
		return v.Value
	case UnitPercent:
		return v.Value * parentSize / 100
	}
	return Undefined
}

// resolveValueMargin is resolveValue with auto treated as zero; auto margins
// are distributed separately during justification.
func resolveValueMargin(v Value, parentSize float64) float64 {
	if v.Unit == UnitAuto {
		return 0
	}
	return resolveValue(v, parentSize)
}

// floatsEqual compares with a small tolerance, treating two undefined values
// as equal.
func floatsEqual(a, b float64) bool {
	if IsUndefined(a) {
		return IsUndefined(b)
	}
	return math.Abs(a-b) < 0.0001
}
