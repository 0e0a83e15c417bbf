package figuring

// SelfIntersections finds every t1 < t2 where a cubic bezier crosses itself.
//
// The curve is first cut at its interior extreme points into monotonic
// segments; a curve can only self-intersect across two distinct segments,
// never within one, since a monotonic segment's x and y coordinates are each
// strictly ordered. Each pair of segments is then handed to the ordinary
// two-edge intersection engine, with the shared boundary between adjacent
// segments excluded from one side of the pair so it isn't reported twice.
func SelfIntersections(curve CubicBezier, maxDepth int, epsilon float64, maxIter int) IntersectionSet {
	bounds := monotonicBounds(curve)
	if len(bounds) < 3 {
		return IntersectionsOf()
	}

	type piece struct {
		edge         Edge
		start, ratio float64
	}
	pieces := make([]piece, 0, len(bounds)-1)
	for i := 0; i < len(bounds)-1; i++ {
		lo, hi := bounds[i], bounds[i+1]
		pieces = append(pieces, piece{edge: subEdge(curve, lo, hi), start: lo, ratio: hi - lo})
	}

	var results []Intersection
	for i := 0; i < len(pieces); i++ {
		for j := i + 1; j < len(pieces); j++ {
			si, sj := pieces[i], pieces[j]

			var spi []ExtremePoint
			for _, ep := range si.edge.ExtremePoints() {
				if ep.T == 0 && i != 0 {
					continue
				}
				if ep.T == 1 && j == i+1 {
					continue
				}
				spi = append(spi, ep)
			}

			var spj []ExtremePoint
			for _, ep := range sj.edge.ExtremePoints() {
				if ep.T == 1 {
					spj = append(spj, ep)
				}
			}

			set := intersectSeeded(si.edge, sj.edge, spi, spj, maxDepth, epsilon, maxIter)
			if set.Indeterminate() {
				return IntersectionsIndeterminate()
			}
			for _, r := range set.Results() {
				results = append(results, Intersection{
					T1:    si.start + r.T1*si.ratio,
					T2:    sj.start + r.T2*sj.ratio,
					Point: r.Point,
					Err:   r.Err,
				})
			}
		}
	}

	return Deduplicate(IntersectionsOf(results...), epsilon)
}

// monotonicBounds returns 0, every interior extreme-point t, and 1, sorted
// ascending.
func monotonicBounds(curve CubicBezier) []float64 {
	var bounds []float64
	for _, ep := range curve.ExtremePoints() {
		if ep.T > 0 && ep.T < 1 {
			bounds = append(bounds, ep.T)
		}
	}
	full := make([]float64, 0, len(bounds)+2)
	full = append(full, 0)
	full = append(full, bounds...)
	full = append(full, 1)
	return full
}
