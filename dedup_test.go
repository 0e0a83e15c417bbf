package figuring

import "testing"

func TestDeduplicate(t *testing.T) {
	tests := []struct {
		name string
		in   []Intersection
		want int
	}{
		{
			"no duplicates",
			[]Intersection{
				{T1: 0.1, T2: 0.1, Point: PtXy(1, 1)},
				{T1: 0.9, T2: 0.9, Point: PtXy(9, 9)},
			},
			2,
		}, {
			"exact duplicate collapses",
			[]Intersection{
				{T1: 0.5, T2: 0.5, Point: PtXy(5, 5)},
				{T1: 0.5, T2: 0.5, Point: PtXy(5, 5)},
			},
			1,
		}, {
			"near duplicate within error radius collapses",
			[]Intersection{
				{T1: 0.500001, T2: 0.5, Point: PtXy(5, 5), Err: 0.01},
				{T1: 0.500002, T2: 0.5, Point: PtXy(5, 5), Err: 0.0},
			},
			1,
		}, {
			"far apart survives despite nonzero err",
			[]Intersection{
				{T1: 0.1, T2: 0.1, Point: PtXy(1, 1), Err: 0.01},
				{T1: 0.9, T2: 0.9, Point: PtXy(9, 9), Err: 0.01},
			},
			2,
		},
	}
	for _, test := range tests {
		got := Deduplicate(IntersectionsOf(test.in...), DefaultEpsilon)
		if got.Indeterminate() {
			t.Errorf("%s: Deduplicate() returned Indeterminate", test.name)
			continue
		}
		if len(got.Results()) != test.want {
			t.Errorf("%s: Deduplicate() = %d results, want %d: %v", test.name, len(got.Results()), test.want, got.Results())
		}
	}
}

func TestDeduplicateLowerErrWins(t *testing.T) {
	in := []Intersection{
		{T1: 0.5, T2: 0.5, Point: PtXy(5, 5), Err: 0.1},
		{T1: 0.5000001, T2: 0.5, Point: PtXy(5, 5), Err: 0.0},
	}
	got := Deduplicate(IntersectionsOf(in...), DefaultEpsilon)
	results := got.Results()
	if len(results) != 1 {
		t.Fatalf("Deduplicate() = %d results, want 1: %v", len(results), results)
	}
	if results[0].Err != 0.0 {
		t.Errorf("Deduplicate() kept Err=%v, want the lower-err survivor (0.0)", results[0].Err)
	}
}

func TestDeduplicateIndeterminatePassesThrough(t *testing.T) {
	got := Deduplicate(IntersectionsIndeterminate(), DefaultEpsilon)
	if !got.Indeterminate() {
		t.Errorf("Deduplicate(Indeterminate) did not stay Indeterminate")
	}
}
