package figuring

// IntersectionsLL computes the exact intersection of two line segments.
//
// With L1 from p to p+d1 and L2 from q to q+d2, a = d1.x*d2.y - d2.x*d1.y.
// a=0 means the lines are parallel; the auxiliary determinants b1, b2 then
// distinguish collinear-overlap (Indeterminate) from disjoint-parallel
// (empty). Otherwise t1=b1/a, t2=b2/a and a single intersection is reported
// iff both lie in [0, 1], as the mean of each segment's PointAt(t).
func IntersectionsLL(l1, l2 Segment) IntersectionSet {
	box1, box2 := l1.BoundingBox(), l2.BoundingBox()
	if !box1.Overlaps(box2) {
		if box1.Contacts(box2) {
			return sharedEndpoints(l1, l2)
		}
		return IntersectionsOf()
	}

	p, q := l1.Begin(), l2.Begin()
	d1 := p.VectorTo(l1.End())
	d2 := q.VectorTo(l2.End())
	pq := q.VectorTo(p)

	d1x, d1y := d1.Units()
	d2x, d2y := d2.Units()
	pqx, pqy := pq.Units()

	a := float64(d1x*d2y - d2x*d1y)
	b1 := float64(d2x*pqy - d2y*pqx)
	b2 := float64(d1x*pqy - d1y*pqx)

	if IsZero(a) {
		if IsZero(b1) || IsZero(b2) {
			return IntersectionsIndeterminate()
		}
		return IntersectionsOf()
	}

	t1, t2 := b1/a, b2/a
	if t1 < 0 || t1 > 1 || t2 < 0 || t2 > 1 {
		return IntersectionsOf()
	}

	p1, p2 := l1.PointAt(t1), l2.PointAt(t2)
	mean := PtXy((p1.X()+p2.X())/2, (p1.Y()+p2.Y())/2)
	return IntersectionsOf(Intersection{T1: t1, T2: t2, Point: mean})
}

// sharedEndpoints handles the bounding-box-contact case: the segments don't
// overlap openly but their closures touch, so the only possible
// intersections are a shared endpoint.
func sharedEndpoints(l1, l2 Segment) IntersectionSet {
	var results []Intersection
	for _, t1v := range []float64{0, 1} {
		p1 := l1.PointAt(t1v)
		for _, t2v := range []float64{0, 1} {
			p2 := l2.PointAt(t2v)
			if IsEqualPair(p1, p2) {
				results = append(results, Intersection{T1: t1v, T2: t2v, Point: p1})
			}
		}
	}
	return IntersectionsOf(results...)
}
