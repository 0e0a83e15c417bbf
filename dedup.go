package figuring

import "math"

// Deduplicate collapses near-duplicate intersections left behind by
// subdivision: the same crossing is frequently rediscovered from more than
// one seed task, at slightly different (t1, t2) and with different error
// radii. Two results are considered the same crossing when both parameter
// deltas fall under max(sqrt(2)*(sum of their errors), epsilon); of each
// close pair the lower-error result survives, ties favoring the
// lower-indexed one.
func Deduplicate(set IntersectionSet, epsilon float64) IntersectionSet {
	if set.Indeterminate() {
		return set
	}
	results := set.Results()
	removed := make([]bool, len(results))

	for i := 0; i < len(results); i++ {
		if removed[i] {
			continue
		}
		for j := i + 1; j < len(results); j++ {
			if removed[j] {
				continue
			}
			a, b := results[i], results[j]
			tol := math.Max(math.Sqrt2*(a.Err+b.Err), epsilon)
			if math.Abs(a.T1-b.T1) < tol && math.Abs(a.T2-b.T2) < tol {
				if b.Err < a.Err {
					removed[i] = true
					break
				}
				removed[j] = true
			}
		}
	}

	out := make([]Intersection, 0, len(results))
	for i, r := range results {
		if !removed[i] {
			out = append(out, r)
		}
	}
	return IntersectionsOf(out...)
}
