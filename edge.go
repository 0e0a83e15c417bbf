package figuring

import "fmt"

// Edge is the capability set shared by every parametric curve the
// intersection engine operates on: lines, quadratic beziers, and cubic
// beziers. Degree distinguishes which closed-form solver backs PointAt,
// ExtremePoints, and ParamsForPoint.
type Edge interface {
	// Degree is 1 for a line segment, 2 for a quadratic bezier, 3 for a
	// cubic bezier.
	Degree() int
	// PointAt evaluates the edge at \c t via Bernstein form. \c t is not
	// clamped; callers are expected to stay within [0, 1].
	PointAt(t float64) Pt
	// SplitAt returns the two edges obtained by de Casteljau subdivision
	// at \c t. The shared midpoint is constructed once internally but the
	// two returned edges do not alias it.
	SplitAt(t float64) (Edge, Edge)
	// ExtremePoints returns the endpoints (t=0, t=1) plus every interior
	// t where x'(t)=0 or y'(t)=0, deduplicated.
	ExtremePoints() []ExtremePoint
	// BoundingBox returns the axis-aligned box spanning ExtremePoints.
	BoundingBox() Rectangle
	// DeviationFromLine is the normalized maximum perpendicular distance
	// from the edge to its start->end chord, or +Inf if the edge
	// overshoots the chord's span. Zero for a line.
	DeviationFromLine() float64
	// ParamsForPoint solves for every t with PointAt(t) approximately \c
	// p, within tolerance \c eps. Indeterminate means the edge is
	// point-degenerate at \c p (every t is a solution).
	ParamsForPoint(p Pt, eps float64) RootSet
}

// ExtremePoint pairs a parameter value with the point it maps to.
type ExtremePoint struct {
	T     float64
	Point Pt
}

func (e ExtremePoint) String() string {
	return fmt.Sprintf("ExtremePoint(%s, %v)", HumanFormat(9, e.T), e.Point)
}

// dedupExtremeTs merges t-values within DefaultEpsilon of each other,
// keeping the first occurrence, and returns them sorted ascending.
func dedupExtremeTs(ts []float64) []float64 {
	sorted := append([]float64(nil), ts...)
	insertionSortFloats(sorted)
	out := sorted[:0:0]
	for _, t := range sorted {
		if len(out) > 0 && Approx(out[len(out)-1], t, DefaultEpsilon) {
			continue
		}
		out = append(out, t)
	}
	return out
}

func insertionSortFloats(xs []float64) {
	for i := 1; i < len(xs); i++ {
		for j := i; j > 0 && xs[j-1] > xs[j]; j-- {
			xs[j-1], xs[j] = xs[j], xs[j-1]
		}
	}
}

// Intersection is one recorded intersection between two edges, in each
// edge's own local parameter space.
type Intersection struct {
	T1, T2 float64
	Point  Pt
	Err    float64
}

func (r Intersection) String() string {
	return fmt.Sprintf("Intersection(%s, %s, %v, err=%s)",
		HumanFormat(9, r.T1), HumanFormat(9, r.T2), r.Point, HumanFormat(9, r.Err))
}

// IntersectionSet is the tri-state result of an intersection query: a
// concrete (possibly empty) list of results, or the Indeterminate sentinel
// meaning the two edges share infinitely many points (e.g. overlapping
// collinear segments).
type IntersectionSet struct {
	indeterminate bool
	results       []Intersection
}

// IntersectionsIndeterminate returns the "infinitely many intersections"
// sentinel.
func IntersectionsIndeterminate() IntersectionSet {
	return IntersectionSet{indeterminate: true}
}

// IntersectionsOf wraps a finite (possibly empty) set of intersections.
func IntersectionsOf(results ...Intersection) IntersectionSet {
	return IntersectionSet{results: results}
}

// Indeterminate reports whether the two edges share infinitely many points.
func (s IntersectionSet) Indeterminate() bool { return s.indeterminate }

// Results returns the finite intersection list. Calling it on an
// Indeterminate set returns nil; check Indeterminate() first.
func (s IntersectionSet) Results() []Intersection { return s.results }
