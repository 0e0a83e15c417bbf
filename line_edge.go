package figuring

// Degree implements Edge for Segment: a line segment is always degree 1.
func (Segment) Degree() int { return 1 }

// PointAt implements Edge for Segment via linear interpolation.
func (s Segment) PointAt(t float64) Pt {
	x := float64(s.b.X()) + t*(float64(s.e.X())-float64(s.b.X()))
	y := float64(s.b.Y()) + t*(float64(s.e.Y())-float64(s.b.Y()))
	return PtXy(Length(x), Length(y))
}

// SplitAt implements Edge for Segment via linear interpolation of the
// midpoint.
func (s Segment) SplitAt(t float64) (Edge, Edge) {
	m := s.PointAt(t)
	return SegmentPt(s.b, m), SegmentPt(m, s.e)
}

// ExtremePoints implements Edge for Segment: a line has no interior
// extrema, just its two endpoints.
func (s Segment) ExtremePoints() []ExtremePoint {
	return []ExtremePoint{
		{T: 0, Point: s.b},
		{T: 1, Point: s.e},
	}
}

// DeviationFromLine implements Edge for Segment: a line never deviates
// from its own chord.
func (Segment) DeviationFromLine() float64 { return 0 }

// ParamsForPoint implements Edge for Segment by solving the two linear
// equations x(t)=p.x, y(t)=p.y independently and intersecting the results.
func (s Segment) ParamsForPoint(p Pt, eps float64) RootSet {
	dx := float64(s.e.X() - s.b.X())
	dy := float64(s.e.Y() - s.b.Y())
	xr := SolveLinear(float64(s.b.X())-float64(p.X()), dx)
	yr := SolveLinear(float64(s.b.Y())-float64(p.Y()), dy)
	return intersectAxisRoots(xr, yr, eps)
}

// intersectAxisRoots combines the independent per-axis root sets produced
// by ParamsForPoint into the single tri-state answer the Edge contract
// requires: if either axis is Indeterminate, the other axis' in-range
// roots stand on their own; if both are Indeterminate the point sits
// everywhere on a degenerate edge. Otherwise the roots both axes agree on
// are returned, again limited to [0, 1].
func intersectAxisRoots(xr, yr RootSet, eps float64) RootSet {
	switch {
	case xr.Indeterminate() && yr.Indeterminate():
		return RootsIndeterminate()
	case xr.Indeterminate():
		return RootsOf(inRangeRoots(yr.Roots(), eps)...)
	case yr.Indeterminate():
		return RootsOf(inRangeRoots(xr.Roots(), eps)...)
	}
	var out []float64
	for _, x := range xr.Roots() {
		for _, y := range yr.Roots() {
			if Approx(x, y, eps) {
				out = append(out, SnapToInteger((x+y)/2, eps))
			}
		}
	}
	return RootsOf(inRangeRoots(out, eps)...)
}

func inRangeRoots(roots []float64, eps float64) []float64 {
	out := make([]float64, 0, len(roots))
	for _, r := range roots {
		r = SnapToInteger(r, eps)
		if -eps <= r && r <= 1+eps {
			out = append(out, r)
		}
	}
	return out
}
