package flex

import "math"

// fmax and fmin mirror C's fmaxf/fminf: an undefined operand yields the other
// one, never NaN. math.Max would propagate the NaN instead.
func fmax(a, b float64) float64 {
	if IsUndefined(a) {
		return b
	}
	if IsUndefined(b) {
		return a
	}
	if a > b {
		return a
	}
	return b
}

func fmin(a, b float64) float64 {
	if IsUndefined(a) {
		return b
	}
	if IsUndefined(b) {
		return a
	}
	if a < b {
		return a
	}
	return b
}

// definedOr substitutes fallback when v is undefined, so percentages resolved
// against an indefinite dimension degrade to the fallback instead of leaking
// NaN into output.
func definedOr(v, fallback float64) float64 {
	if IsUndefined(v) {
		return fallback
	}
	return v
}

func fmod(a, b float64) float64 {
	return math.Mod(a, b)
}
