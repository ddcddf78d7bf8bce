package satmath

import (
	"errors"
	"math"
)

// Inf is the saturating sentinel representing +∞, used for "no bound yet"
// distances and clipped sums/products (spec §7).
const Inf int64 = math.MaxInt64

// ErrNegateInfinity indicates an attempt to negate or subtract against the
// Inf sentinel, which spec §7 explicitly forbids.
var ErrNegateInfinity = errors.New("satmath: cannot negate or subtract infinity")

// IsInf reports whether v is the saturating +∞ sentinel.
func IsInf(v int64) bool {
	return v == Inf
}

// Add returns a+b, saturating to Inf if either operand is Inf or if the sum
// would overflow int64.
func Add(a, b int64) int64 {
	if a == Inf || b == Inf {
		return Inf
	}
	// Overflow check before computing, to avoid UB-adjacent wraparound.
	if b > 0 && a > math.MaxInt64-b {
		return Inf
	}
	if b < 0 && a < math.MinInt64-b {
		// Negative overflow is not representable as Inf; this arithmetic
		// never expects it (all weights are bounded by the horizon), but
		// clamp defensively rather than wrap.
		return math.MinInt64
	}

	return a + b
}

// Sub returns a-b. Returns ErrNegateInfinity if b is Inf (subtraction
// against infinity is forbidden); if a is Inf, the result saturates to Inf.
func Sub(a, b int64) (int64, error) {
	if b == Inf {
		return 0, ErrNegateInfinity
	}
	if a == Inf {
		return Inf, nil
	}

	return Add(a, -b), nil
}

// Negate returns -v. Returns ErrNegateInfinity if v is Inf.
func Negate(v int64) (int64, error) {
	if v == Inf {
		return 0, ErrNegateInfinity
	}

	return -v, nil
}

// Mul returns a*b, saturating to Inf on overflow or if either operand is
// Inf (for non-zero b / a respectively). Used by the horizon computation
// (spec §4.1, H = maxWeight * (|V|-1)).
func Mul(a, b int64) int64 {
	if a == 0 || b == 0 {
		return 0
	}
	if a == Inf || b == Inf {
		return Inf
	}
	result := a * b
	if result/b != a {
		return Inf
	}

	return result
}

// Less reports whether a < b, treating Inf as larger than any finite value
// (the natural order; Inf == Inf compares equal, not less).
func Less(a, b int64) bool {
	return a < b
}
