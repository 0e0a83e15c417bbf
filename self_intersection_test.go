package figuring

import "testing"

func TestSelfIntersectionsNoLoop(t *testing.T) {
	c := CubicBezierPt(PtXy(0, 0), PtXy(1, 1), PtXy(2, 2), PtXy(3, 3))

	got := SelfIntersections(c, 20, DefaultEpsilon, 10000)
	if got.Indeterminate() {
		t.Fatalf("SelfIntersections(straight cubic) returned Indeterminate")
	}
	if len(got.Results()) != 0 {
		t.Errorf("SelfIntersections(straight cubic) = %d results, want 0: %v", len(got.Results()), got.Results())
	}
}

func TestMonotonicBoundsIncludesEndpoints(t *testing.T) {
	c := CubicBezierPt(PtXy(0, 0), PtXy(8, 0), PtXy(1, -7), PtXy(1, 1))
	bounds := monotonicBounds(c)
	if bounds[0] != 0 {
		t.Errorf("monotonicBounds()[0] = %v, want 0", bounds[0])
	}
	if bounds[len(bounds)-1] != 1 {
		t.Errorf("monotonicBounds() last = %v, want 1", bounds[len(bounds)-1])
	}
	for i := 1; i < len(bounds); i++ {
		if bounds[i] <= bounds[i-1] {
			t.Errorf("monotonicBounds() not strictly increasing at %d: %v <= %v", i, bounds[i], bounds[i-1])
		}
	}
}
