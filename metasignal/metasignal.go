// Package metasignal provides MetaSignal, the clamped-[0,1] scalar used
// throughout the iB2C runtime for stimulation, inhibition, activity, and
// target rating.
package metasignal

import "math"

// MetaSignal is a real number constrained to [0, 1]. The zero value is LOW.
type MetaSignal float64

const (
	// LOW is the minimum MetaSignal value.
	LOW MetaSignal = 0
	// HIGH is the maximum MetaSignal value.
	HIGH MetaSignal = 1
)

// New clamps v into [0, 1]. Panics if v is NaN or infinite: construction
// requires a finite input, per the algebra's total-order contract.
func New(v float64) MetaSignal {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		panic("metasignal: value must be finite")
	}
	return MetaSignal(clamp01(v))
}

func clamp01(v float64) float64 {
	switch {
	case v < 0:
		return 0
	case v > 1:
		return 1
	default:
		return v
	}
}

// Float64 returns the underlying scalar.
func (m MetaSignal) Float64() float64 { return float64(m) }

// Add returns clamp01(m + other), saturating at HIGH.
func (m MetaSignal) Add(other MetaSignal) MetaSignal {
	return New(float64(m) + float64(other))
}

// AddFloat64 returns clamp01(m + v).
func (m MetaSignal) AddFloat64(v float64) MetaSignal {
	return New(float64(m) + v)
}

// Sub returns clamp01(m - other), saturating at LOW.
func (m MetaSignal) Sub(other MetaSignal) MetaSignal {
	return New(float64(m) - float64(other))
}

// SubFloat64 returns clamp01(m - v).
func (m MetaSignal) SubFloat64(v float64) MetaSignal {
	return New(float64(m) - v)
}

// Mul returns m * other. The product of two values in [0,1] is itself in
// [0,1], so no clamp is required to satisfy the invariant, though New is
// still used defensively against floating point drift at the boundary.
func (m MetaSignal) Mul(other MetaSignal) MetaSignal {
	return New(float64(m) * float64(other))
}

// MulFloat64 returns clamp01(m * v).
func (m MetaSignal) MulFloat64(v float64) MetaSignal {
	return New(float64(m) * v)
}

// Div returns m / other, with division by zero defined as HIGH rather than
// propagating Inf or NaN.
func (m MetaSignal) Div(other MetaSignal) MetaSignal {
	if other == 0 {
		return HIGH
	}
	return New(float64(m) / float64(other))
}

// DivFloat64 returns m / v, with division by zero defined as HIGH.
func (m MetaSignal) DivFloat64(v float64) MetaSignal {
	if v == 0 {
		return HIGH
	}
	return New(float64(m) / v)
}

// Float64DivBy returns v / m, with division by zero defined as HIGH.
func Float64DivBy(v float64, m MetaSignal) MetaSignal {
	if m == 0 {
		return HIGH
	}
	return New(v / float64(m))
}

// Compare returns -1, 0, or 1 per the usual ordering of the underlying
// scalar. It agrees with clamp01 since MetaSignal values are always
// already clamped.
func (m MetaSignal) Compare(other MetaSignal) int {
	switch {
	case m < other:
		return -1
	case m > other:
		return 1
	default:
		return 0
	}
}

// Less reports whether m orders strictly before other.
func (m MetaSignal) Less(other MetaSignal) bool { return m < other }

// Min returns the lesser of a and b.
func Min(a, b MetaSignal) MetaSignal {
	if a < b {
		return a
	}
	return b
}

// Max returns the greater of a and b.
func Max(a, b MetaSignal) MetaSignal {
	if a > b {
		return a
	}
	return b
}
