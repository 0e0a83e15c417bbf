package figuring

import (
	"testing"
)

func TestSegmentEdge(t *testing.T) {
	s := SegmentPt(PtXy(0, 0), PtXy(10, 10))

	if d := s.Degree(); d != 1 {
		t.Errorf("Segment.Degree() failed. %d != 1", d)
	}

	pointAtTests := []struct {
		t    float64
		want Pt
	}{
		{0, PtXy(0, 0)},
		{0.5, PtXy(5, 5)},
		{1, PtXy(10, 10)},
	}
	for h, test := range pointAtTests {
		if got := s.PointAt(test.t); !IsEqualPair(got, test.want) {
			t.Errorf("[%d]Segment.PointAt(%f) failed. %v != %v", h, test.t, got, test.want)
		}
	}

	left, right := s.SplitAt(0.5)
	if !IsEqualPair(left.PointAt(0), PtXy(0, 0)) || !IsEqualPair(left.PointAt(1), PtXy(5, 5)) {
		t.Errorf("Segment.SplitAt(0.5) left failed. %v", left)
	}
	if !IsEqualPair(right.PointAt(0), PtXy(5, 5)) || !IsEqualPair(right.PointAt(1), PtXy(10, 10)) {
		t.Errorf("Segment.SplitAt(0.5) right failed. %v", right)
	}

	eps := s.ExtremePoints()
	if len(eps) != 2 {
		t.Fatalf("Segment.ExtremePoints() length failed. %d != 2", len(eps))
	}

	if dev := s.DeviationFromLine(); !IsZero(dev) {
		t.Errorf("Segment.DeviationFromLine() failed. %f != 0", dev)
	}

	paramsTests := []struct {
		p             Pt
		indeterminate bool
		roots         []float64
	}{
		{PtXy(5, 5), false, []float64{0.5}},
		{PtXy(20, 20), false, nil},
		{PtXy(3, 4), false, nil},
	}
	for h, test := range paramsTests {
		rs := s.ParamsForPoint(test.p, DefaultEpsilon)
		if rs.Indeterminate() != test.indeterminate {
			t.Errorf("[%d]Segment.ParamsForPoint(%v) (indeterminate) failed. %t != %t",
				h, test.p, rs.Indeterminate(), test.indeterminate)
			continue
		}
		checkRoots(t, h, s, rs.Roots(), test.roots)
	}

	degenerate := SegmentPt(PtXy(3, 3), PtXy(3, 3))
	rs := degenerate.ParamsForPoint(PtXy(3, 3), DefaultEpsilon)
	if !rs.Indeterminate() {
		t.Errorf("degenerate Segment.ParamsForPoint() failed. expected Indeterminate")
	}
}

func TestIntersectAxisRoots(t *testing.T) {
	tests := []struct {
		xr, yr        RootSet
		indeterminate bool
		roots         []float64
	}{
		{RootsIndeterminate(), RootsIndeterminate(), true, nil},
		{RootsIndeterminate(), RootsOf(0.25, 0.75), false, []float64{0.25, 0.75}},
		{RootsOf(0.25, 0.75), RootsIndeterminate(), false, []float64{0.25, 0.75}},
		{RootsOf(0.5), RootsOf(0.5), false, []float64{0.5}},
		{RootsOf(0.5), RootsOf(0.75), false, nil},
	}
	for h, test := range tests {
		got := intersectAxisRoots(test.xr, test.yr, DefaultEpsilon)
		if got.Indeterminate() != test.indeterminate {
			t.Errorf("[%d]intersectAxisRoots() (indeterminate) failed. %t != %t",
				h, got.Indeterminate(), test.indeterminate)
			continue
		}
		checkRoots(t, h, dummyStringer("intersectAxisRoots"), got.Roots(), test.roots)
	}
}

type dummyStringer string

func (d dummyStringer) String() string { return string(d) }

func TestInRangeRoots(t *testing.T) {
	in := []float64{-0.5, 0, 0.5, 1, 1.5}
	want := []float64{0, 0.5, 1}
	got := inRangeRoots(in, DefaultEpsilon)
	checkRoots(t, 0, dummyStringer("inRangeRoots"), got, want)
}
