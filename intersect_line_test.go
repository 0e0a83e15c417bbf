package figuring

import "testing"

func TestIntersectionsLL(t *testing.T) {
	tests := []struct {
		a, b          Segment
		indeterminate bool
		results       []Intersection
	}{
		{
			// classic X crossing
			SegmentPt(PtXy(0, 0), PtXy(10, 10)),
			SegmentPt(PtXy(0, 10), PtXy(10, 0)),
			false,
			[]Intersection{{T1: 0.5, T2: 0.5, Point: PtXy(5, 5)}},
		}, {
			// parallel, disjoint
			SegmentPt(PtXy(0, 0), PtXy(10, 0)),
			SegmentPt(PtXy(0, 5), PtXy(10, 5)),
			false,
			nil,
		}, {
			// collinear overlap, diagonal so the bounding boxes openly
			// overlap and the algebraic test actually runs
			SegmentPt(PtXy(0, 0), PtXy(10, 10)),
			SegmentPt(PtXy(5, 5), PtXy(15, 15)),
			true,
			nil,
		}, {
			// non-parallel but out of segment range
			SegmentPt(PtXy(0, 0), PtXy(1, 1)),
			SegmentPt(PtXy(5, 0), PtXy(5, 1)),
			false,
			nil,
		}, {
			// boxes touch at a shared endpoint
			SegmentPt(PtXy(0, 0), PtXy(5, 5)),
			SegmentPt(PtXy(5, 5), PtXy(10, 0)),
			false,
			[]Intersection{{T1: 1, T2: 0, Point: PtXy(5, 5)}},
		}, {
			SegmentPt(PtXy(0, 0), PtXy(3, 3)),
			SegmentPt(PtXy(0, 2), PtXy(2, 2)),
			false,
			[]Intersection{{T1: 2.0 / 3, T2: 1, Point: PtXy(2, 2)}},
		}, {
			SegmentPt(PtXy(0, 0), PtXy(3, 3)),
			SegmentPt(PtXy(0, 0), PtXy(2, 2)),
			true,
			nil,
		}, {
			// boxes touch at a corner, but the shared endpoint was computed
			// along a different arithmetic path so it's close, not bit-
			// identical; still recognized since sharedEndpoints matches
			// approximately
			SegmentPt(PtXy(0, 0), PtXy(5, 5)),
			SegmentPt(PtXy(5, 5+1e-7), PtXy(10, 0)),
			false,
			[]Intersection{{T1: 1, T2: 0, Point: PtXy(5, 5)}},
		},
	}
	for h, test := range tests {
		got := IntersectionsLL(test.a, test.b)
		if got.Indeterminate() != test.indeterminate {
			t.Errorf("[%d]IntersectionsLL() (indeterminate) failed. %t != %t",
				h, got.Indeterminate(), test.indeterminate)
			continue
		}
		if got.Indeterminate() {
			continue
		}
		results := got.Results()
		if len(results) != len(test.results) {
			t.Fatalf("[%d]IntersectionsLL() (length) failed. %v != %v",
				h, results, test.results)
		}
		for i, r := range results {
			want := test.results[i]
			if !IsEqual(r.T1, want.T1) || !IsEqual(r.T2, want.T2) || !IsEqualPair(r.Point, want.Point) {
				t.Errorf("[%d][%d]IntersectionsLL() failed. %v != %v", h, i, r, want)
			}
		}
	}
}
