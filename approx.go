package figuring

import "math"

// DefaultEpsilon is roughly 16*machine-epsilon, the default tolerance used by
// Intersections and SelfIntersections when the caller doesn't need a tighter
// or looser bound.
const DefaultEpsilon = 16 * 2.220446049250313e-16

// Approx reports whether \c x and \c y are equal within a mixed
// absolute/relative tolerance \c eps. Exact equality always succeeds (so NaN
// never compares approximately equal to anything, including itself, by the
// ordinary float rules). The max(1, |x|, |y|) guard degrades gracefully to an
// absolute tolerance near zero and a relative one away from it.
func Approx(x, y, eps float64) bool {
	if x == y {
		return true
	}
	scale := math.Max(1, math.Max(math.Abs(x), math.Abs(y)))
	return math.Abs(x-y) < scale*eps
}

// SnapToInteger returns round(x) when x is within \c eps of its nearest
// integer, else returns \c x unchanged. Used to canonicalize t-values that
// land imperceptibly off 0 or 1 so downstream equality tests succeed.
func SnapToInteger(x, eps float64) float64 {
	r := math.Round(x)
	if Approx(x, r, eps) {
		return r
	}
	return x
}
