package figuring

import "math"

type taskKind int

const (
	taskPP taskKind = iota
	taskPE
	taskEP
	taskEE
)

// subTask is one entry in the FIFO queue driving Intersections. Depending on
// kind, only a subset of the fields is meaningful:
//
//	PP: t1, t2, p1, p2
//	PE: t1, p1 (the fixed point on edge1) and edge2/t2Lo/t2Hi (the edge2
//	    sub-interval, as both a concrete sub-edge and its global bounds)
//	EP: t2, p2, edge1/t1Lo/t1Hi (symmetric to PE)
//	EE: edge1/t1Lo/t1Hi and edge2/t2Lo/t2Hi
type subTask struct {
	kind  taskKind
	depth int

	t1, t2 float64
	p1, p2 Pt

	edge1      Edge
	t1Lo, t1Hi float64
	edge2      Edge
	t2Lo, t2Hi float64
}

// Intersections finds every intersection between e1 and e2 by adaptive
// subdivision. maxDepth bounds recursion, maxIter bounds total tasks
// processed (negative means unlimited), and epsilon is the tolerance passed
// through to ParamsForPoint and the PP-dedup check. If maxIter is exhausted
// before the queue drains, every still-queued EE/PE/EP task emits its
// current center as an inexact result instead of being silently dropped.
func Intersections(e1, e2 Edge, maxDepth int, epsilon float64, maxIter int) IntersectionSet {
	return intersectSeeded(e1, e2, e1.ExtremePoints(), e2.ExtremePoints(), maxDepth, epsilon, maxIter)
}

// intersectSeeded runs the same FIFO-queue subdivision as Intersections but
// against caller-chosen special-point sets rather than each edge's full
// ExtremePoints. SelfIntersections uses this to avoid double-counting the
// shared boundary between adjacent monotonic segments of a single curve.
func intersectSeeded(e1, e2 Edge, sp1, sp2 []ExtremePoint, maxDepth int, epsilon float64, maxIter int) IntersectionSet {
	queue := make([]subTask, 0, len(sp1)*len(sp2)+len(sp1)+len(sp2)+1)
	for _, a := range sp1 {
		for _, b := range sp2 {
			queue = append(queue, subTask{kind: taskPP, t1: a.T, t2: b.T, p1: a.Point, p2: b.Point})
		}
	}
	for _, a := range sp1 {
		queue = append(queue, subTask{kind: taskPE, t1: a.T, p1: a.Point, edge2: e2, t2Lo: 0, t2Hi: 1})
	}
	for _, b := range sp2 {
		queue = append(queue, subTask{kind: taskEP, t2: b.T, p2: b.Point, edge1: e1, t1Lo: 0, t1Hi: 1})
	}
	queue = append(queue, subTask{kind: taskEE, edge1: e1, t1Lo: 0, t1Hi: 1, edge2: e2, t2Lo: 0, t2Hi: 1})

	bezout := e1.Degree() * e2.Degree()
	var results []Intersection
	iter := 0

	for len(queue) > 0 {
		if maxIter >= 0 && iter >= maxIter {
			for _, t := range queue {
				if r, ok := inexactResult(t); ok {
					results = append(results, r)
				}
			}
			queue = nil
			break
		}
		iter++

		task := queue[0]
		queue = queue[1:]

		var found []Intersection
		var enqueue []subTask
		indeterminate := false

		switch task.kind {
		case taskPP:
			if IsEqualPair(task.p1, task.p2) && !alreadyRecorded(results, task.t1, task.t2, epsilon) {
				found = []Intersection{{T1: task.t1, T2: task.t2, Point: midPt(task.p1, task.p2)}}
			}
		case taskPE:
			found, indeterminate, enqueue = handlePE(task, epsilon, maxDepth)
		case taskEP:
			found, indeterminate, enqueue = handleEP(task, epsilon, maxDepth)
		case taskEE:
			found, indeterminate, enqueue = handleEE(task, epsilon, maxDepth)
		}

		if indeterminate {
			return IntersectionsIndeterminate()
		}

		results = append(results, found...)
		if len(results) > bezout {
			return IntersectionsIndeterminate()
		}
		queue = append(queue, enqueue...)
	}

	return Deduplicate(IntersectionsOf(results...), epsilon)
}

func alreadyRecorded(results []Intersection, t1, t2, eps float64) bool {
	for _, r := range results {
		if Approx(r.T1, t1, eps) && Approx(r.T2, t2, eps) {
			return true
		}
	}
	return false
}

func midPt(a, b Pt) Pt {
	return PtXy((a.X()+b.X())/2, (a.Y()+b.Y())/2)
}

// inexactResult produces the degraded result for an EE/PE/EP task that can't
// be refined further, per spec.md §5: the task's current center, with error
// radius 2^-depth. Used both when maxDepth is reached and when maxIter runs
// out mid-queue. PP tasks carry no such fallback; ok is false for them.
func inexactResult(task subTask) (r Intersection, ok bool) {
	err := math.Pow(2, -float64(task.depth))
	switch task.kind {
	case taskPE:
		mid := (task.t2Lo + task.t2Hi) / 2
		return Intersection{T1: task.t1, T2: mid, Point: task.p1, Err: err}, true
	case taskEP:
		mid := (task.t1Lo + task.t1Hi) / 2
		return Intersection{T1: mid, T2: task.t2, Point: task.p2, Err: err}, true
	case taskEE:
		mid1, mid2 := (task.t1Lo+task.t1Hi)/2, (task.t2Lo+task.t2Hi)/2
		return Intersection{T1: mid1, T2: mid2, Point: task.edge1.PointAt(0.5), Err: err}, true
	default:
		return Intersection{}, false
	}
}

// handlePE processes a point (fixed, from edge1) against an edge2
// sub-interval, per spec.md §4.6's PE case.
func handlePE(task subTask, epsilon float64, maxDepth int) ([]Intersection, bool, []subTask) {
	edge := task.edge2
	box := edge.BoundingBox()

	if box.IsPoint() {
		mid := (task.t2Lo + task.t2Hi) / 2
		p2 := edge.PointAt(0.5)
		if IsEqualPair(task.p1, p2) {
			return []Intersection{{T1: task.t1, T2: mid, Point: midPt(task.p1, p2)}}, false, nil
		}
		return nil, false, nil
	}

	onEdge := box.HasOnEdge(task.p1)
	contained := box.Contains(task.p1)

	var enqueue []subTask
	if onEdge {
		for _, ep := range edge.ExtremePoints() {
			globalT2 := task.t2Lo + ep.T*(task.t2Hi-task.t2Lo)
			enqueue = append(enqueue, subTask{kind: taskPP, depth: task.depth, t1: task.t1, t2: globalT2, p1: task.p1, p2: ep.Point})
		}
	}
	if !onEdge && !contained {
		return nil, false, nil
	}

	if task.depth >= maxDepth {
		r, _ := inexactResult(task)
		return []Intersection{r}, false, enqueue
	}

	roots := edge.ParamsForPoint(task.p1, epsilon)
	if roots.Indeterminate() {
		return nil, true, nil
	}

	var found []Intersection
	for _, r := range roots.Roots() {
		if r > 0 && r < 1 {
			globalT2 := task.t2Lo + r*(task.t2Hi-task.t2Lo)
			found = append(found, Intersection{T1: task.t1, T2: globalT2, Point: task.p1})
		}
	}

	midGlobalT2 := (task.t2Lo + task.t2Hi) / 2
	enqueue = append(enqueue, subTask{kind: taskPP, depth: task.depth + 1, t1: task.t1, t2: midGlobalT2, p1: task.p1, p2: edge.PointAt(0.5)})

	left, right := edge.SplitAt(0.5)
	enqueue = append(enqueue,
		subTask{kind: taskPE, depth: task.depth + 1, t1: task.t1, p1: task.p1, edge2: left, t2Lo: task.t2Lo, t2Hi: midGlobalT2},
		subTask{kind: taskPE, depth: task.depth + 1, t1: task.t1, p1: task.p1, edge2: right, t2Lo: midGlobalT2, t2Hi: task.t2Hi},
	)

	return found, false, enqueue
}

// handleEP is the symmetric twin of handlePE: a fixed point from edge2
// against an edge1 sub-interval.
func handleEP(task subTask, epsilon float64, maxDepth int) ([]Intersection, bool, []subTask) {
	edge := task.edge1
	box := edge.BoundingBox()

	if box.IsPoint() {
		mid := (task.t1Lo + task.t1Hi) / 2
		p1 := edge.PointAt(0.5)
		if IsEqualPair(p1, task.p2) {
			return []Intersection{{T1: mid, T2: task.t2, Point: midPt(p1, task.p2)}}, false, nil
		}
		return nil, false, nil
	}

	onEdge := box.HasOnEdge(task.p2)
	contained := box.Contains(task.p2)

	var enqueue []subTask
	if onEdge {
		for _, ep := range edge.ExtremePoints() {
			globalT1 := task.t1Lo + ep.T*(task.t1Hi-task.t1Lo)
			enqueue = append(enqueue, subTask{kind: taskPP, depth: task.depth, t1: globalT1, t2: task.t2, p1: ep.Point, p2: task.p2})
		}
	}
	if !onEdge && !contained {
		return nil, false, nil
	}

	if task.depth >= maxDepth {
		r, _ := inexactResult(task)
		return []Intersection{r}, false, enqueue
	}

	roots := edge.ParamsForPoint(task.p2, epsilon)
	if roots.Indeterminate() {
		return nil, true, nil
	}

	var found []Intersection
	for _, r := range roots.Roots() {
		if r > 0 && r < 1 {
			globalT1 := task.t1Lo + r*(task.t1Hi-task.t1Lo)
			found = append(found, Intersection{T1: globalT1, T2: task.t2, Point: task.p2})
		}
	}

	midGlobalT1 := (task.t1Lo + task.t1Hi) / 2
	enqueue = append(enqueue, subTask{kind: taskPP, depth: task.depth + 1, t1: midGlobalT1, t2: task.t2, p1: edge.PointAt(0.5), p2: task.p2})

	left, right := edge.SplitAt(0.5)
	enqueue = append(enqueue,
		subTask{kind: taskEP, depth: task.depth + 1, t2: task.t2, p2: task.p2, edge1: left, t1Lo: task.t1Lo, t1Hi: midGlobalT1},
		subTask{kind: taskEP, depth: task.depth + 1, t2: task.t2, p2: task.p2, edge1: right, t1Lo: midGlobalT1, t1Hi: task.t1Hi},
	)

	return found, false, enqueue
}

// handleEE processes a pair of edge sub-intervals, per spec.md §4.6's EE
// case: reduction to PE/EP when a box degenerates to a point, a bounding
// box prefilter, the chord-heuristic early exit, and a nine-way split
// otherwise.
func handleEE(task subTask, epsilon float64, maxDepth int) ([]Intersection, bool, []subTask) {
	box1, box2 := task.edge1.BoundingBox(), task.edge2.BoundingBox()

	if box1.IsPoint() {
		mid := (task.t1Lo + task.t1Hi) / 2
		return nil, false, []subTask{{kind: taskPE, depth: task.depth, t1: mid, p1: task.edge1.PointAt(0.5), edge2: task.edge2, t2Lo: task.t2Lo, t2Hi: task.t2Hi}}
	}
	if box2.IsPoint() {
		mid := (task.t2Lo + task.t2Hi) / 2
		return nil, false, []subTask{{kind: taskEP, depth: task.depth, t2: mid, p2: task.edge2.PointAt(0.5), edge1: task.edge1, t1Lo: task.t1Lo, t1Hi: task.t1Hi}}
	}

	if !box1.Overlaps(box2) {
		return nil, false, nil
	}

	if task.depth >= maxDepth {
		r, _ := inexactResult(task)
		return []Intersection{r}, false, nil
	}

	dev1, dev2 := task.edge1.DeviationFromLine(), task.edge2.DeviationFromLine()
	maxDev := 0.0
	if task.depth > 0 {
		maxDev = math.Min(5e-5*math.Pow(2, float64(task.depth)), 0.1)
	}
	if dev1 < maxDev && dev2 < maxDev {
		chord1 := SegmentPt(task.edge1.PointAt(0), task.edge1.PointAt(1))
		chord2 := SegmentPt(task.edge2.PointAt(0), task.edge2.PointAt(1))
		chordSet := IntersectionsLL(chord1, chord2)
		if chordSet.Indeterminate() {
			if IsZero(dev1) && IsZero(dev2) {
				return nil, true, nil
			}
		} else if len(interiorHits(chordSet)) == 0 {
			return nil, false, nil
		}
	}

	mid1, mid2 := (task.t1Lo+task.t1Hi)/2, (task.t2Lo+task.t2Hi)/2
	leftA, rightA := task.edge1.SplitAt(0.5)
	leftB, rightB := task.edge2.SplitAt(0.5)
	midA, midB := task.edge1.PointAt(0.5), task.edge2.PointAt(0.5)

	enqueue := []subTask{
		{kind: taskPP, depth: task.depth + 1, t1: mid1, t2: mid2, p1: midA, p2: midB},
		{kind: taskPE, depth: task.depth + 1, t1: mid1, p1: midA, edge2: leftB, t2Lo: task.t2Lo, t2Hi: mid2},
		{kind: taskPE, depth: task.depth + 1, t1: mid1, p1: midA, edge2: rightB, t2Lo: mid2, t2Hi: task.t2Hi},
		{kind: taskEP, depth: task.depth + 1, t2: mid2, p2: midB, edge1: leftA, t1Lo: task.t1Lo, t1Hi: mid1},
		{kind: taskEP, depth: task.depth + 1, t2: mid2, p2: midB, edge1: rightA, t1Lo: mid1, t1Hi: task.t1Hi},
		{kind: taskEE, depth: task.depth + 1, edge1: leftA, t1Lo: task.t1Lo, t1Hi: mid1, edge2: leftB, t2Lo: task.t2Lo, t2Hi: mid2},
		{kind: taskEE, depth: task.depth + 1, edge1: leftA, t1Lo: task.t1Lo, t1Hi: mid1, edge2: rightB, t2Lo: mid2, t2Hi: task.t2Hi},
		{kind: taskEE, depth: task.depth + 1, edge1: rightA, t1Lo: mid1, t1Hi: task.t1Hi, edge2: leftB, t2Lo: task.t2Lo, t2Hi: mid2},
		{kind: taskEE, depth: task.depth + 1, edge1: rightA, t1Lo: mid1, t1Hi: task.t1Hi, edge2: rightB, t2Lo: mid2, t2Hi: task.t2Hi},
	}
	return nil, false, enqueue
}

// subEdge returns the portion of e spanning the global parameter interval
// [lo, hi], obtained by splitting at lo and remapping hi into the right
// half's own local parameter space before splitting again.
func subEdge(e Edge, lo, hi float64) Edge {
	if lo <= 0 {
		if hi >= 1 {
			return e
		}
		left, _ := e.SplitAt(hi)
		return left
	}
	_, right := e.SplitAt(lo)
	if hi >= 1 {
		return right
	}
	u := (hi - lo) / (1 - lo)
	left, _ := right.SplitAt(u)
	return left
}

func interiorHits(set IntersectionSet) []Intersection {
	var out []Intersection
	for _, r := range set.Results() {
		if r.T1 > 0 && r.T1 < 1 && r.T2 > 0 && r.T2 < 1 {
			out = append(out, r)
		}
	}
	return out
}
