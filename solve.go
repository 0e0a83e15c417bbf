package figuring

import "math"

// RootSet is the tri-state result of the polynomial solvers: Indeterminate
// (the polynomial is identically zero — every solution is a root), a finite
// list with zero entries (no roots), or a finite non-empty list of real
// roots. The two empty-looking cases are never collapsed into one another;
// callers must check Indeterminate() before reading Roots().
type RootSet struct {
	indeterminate bool
	roots         []float64
}

// RootsIndeterminate returns the distinguished "infinitely many roots"
// sentinel.
func RootsIndeterminate() RootSet { return RootSet{indeterminate: true} }

// RootsOf wraps a (possibly empty) finite set of roots.
func RootsOf(roots ...float64) RootSet { return RootSet{roots: roots} }

// Indeterminate reports whether the polynomial was identically zero.
func (r RootSet) Indeterminate() bool { return r.indeterminate }

// Roots returns the finite root list. Calling it on an Indeterminate RootSet
// returns nil; check Indeterminate() first.
func (r RootSet) Roots() []float64 { return r.roots }

// SolveLinear solves c1*t + c0 = 0.
func SolveLinear(c0, c1 float64) RootSet {
	if IsZero(c1) {
		if IsZero(c0) {
			return RootsIndeterminate()
		}
		return RootsOf()
	}
	return RootsOf(-c0 / c1)
}

// SolveQuadratic solves c2*t^2 + c1*t + c0 = 0.
//
// When c2 is zero this degrades to the linear case. Otherwise the
// discriminant d = c1^2 - 4*c2*c0 selects zero, one, or two real roots; the
// two-root case uses the sign-of-c1 numerically stable pairing (one root from
// the same-sign quadratic formula, the other recovered from the
// product-of-roots identity c0/c2) to avoid catastrophic cancellation.
func SolveQuadratic(c0, c1, c2 float64) RootSet {
	if IsZero(c2) {
		return SolveLinear(c0, c1)
	}

	d := c1*c1 - 4*c2*c0
	switch {
	case d < 0 && !IsZero(d):
		return RootsOf()
	case IsZero(d):
		return RootsOf(-c1 / (2 * c2))
	}

	sq := math.Sqrt(d)
	var q float64
	if c1 >= 0 {
		q = -0.5 * (c1 + sq)
	} else {
		q = -0.5 * (c1 - sq)
	}
	r1 := q / c2
	r2 := c0 / q
	return RootsOf(r1, r2)
}

// SolveCubic solves c3*t^3 + c2*t^2 + c1*t + c0 = 0.
//
// Degrades to SolveQuadratic when c3 is zero. Otherwise the cubic is
// depressed to monic form and solved via the trigonometric (three real
// roots), repeated-root, or single-real-root Cardano forms selected by the
// sign of Δ = q^2 + 4*p^3.
func SolveCubic(c0, c1, c2, c3 float64) RootSet {
	if IsZero(c3) {
		return SolveQuadratic(c0, c1, c2)
	}

	a0, a1, a2 := c0/c3, c1/c3, c2/c3
	p := 3*a1 - a2*a2
	q := 27*a0 - 9*a1*a2 + 2*a2*a2*a2
	delta := q*q + 4*p*p*p

	unDepress := func(roots ...float64) RootSet {
		for h := range roots {
			roots[h] = (roots[h] - a2) / 3
		}
		return RootsOf(roots...)
	}

	switch {
	case delta < 0 && !IsZero(delta):
		negDelta := -delta
		rc := math.Pow((q*q/4)+(negDelta/4), 1.0/6.0)
		phi := math.Atan2(math.Sqrt(negDelta), -q)
		r0 := 2 * rc * math.Cos(phi/3)
		r1 := 2 * rc * math.Cos((phi+2*math.Pi)/3)
		r2 := 2 * rc * math.Cos((phi-2*math.Pi)/3)
		return unDepress(r0, r1, r2)
	case IsZero(delta):
		if IsZero(q) {
			return unDepress(0)
		}
		rc := math.Cbrt(-q / 2)
		return unDepress(2*rc, -rc)
	default:
		var rc1, rc2 float64
		sq := math.Sqrt(delta)
		if q >= 0 {
			rc2 = math.Cbrt((-q - sq) / 2)
			rc1 = -p / rc2
		} else {
			rc1 = math.Cbrt((-q + sq) / 2)
			rc2 = -p / rc1
		}
		return unDepress(rc1 + rc2)
	}
}
