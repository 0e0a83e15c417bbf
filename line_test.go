package figuring

import (
	"math"
	"testing"
)

func TestSegment(t *testing.T) {
	identityTests := []struct {
		a          Segment
		s          string
		begin, end Pt
		length     Length
		angle      Radians
	}{
		{
			SegmentPt(PtXy(5, 0), PtXy(0, 5)),
			"Segment(Point({5, 0}), Point({0, 5}))",
			PtXy(5, 0), PtXy(0, 5),
			7.0710678118655, 3. * math.Pi / 4.,
		}, {
			SegmentPt(PtXy(5, 5), PtXy(0, 5)),
			"Segment(Point({5, 5}), Point({0, 5}))",
			PtXy(5, 5), PtXy(0, 5),
			5, math.Pi,
		}, {
			SegmentPt(PtXy(5, 5), PtXy(Length(math.NaN()), 5)),
			"Segment(Point({5, 5}), Point({NaN, 5}))",
			PtXy(5, 5), PtXy(Length(math.NaN()), 5),
			0, 0,
		}, {
			SegmentFromVector(PtXy(5, 0), VectorIj(-5, 5)),
			"Segment(Point({5, 0}), Point({0, 5}))",
			PtXy(5, 0), PtXy(0, 5),
			7.0710678118655, 3. * math.Pi / 4.,
		},
	}
	for h, test := range identityTests {
		a := test.a
		if s := a.String(); s != test.s {
			t.Errorf("[%d](%s).String() failed. %s != %s",
				h, a, s, test.s)
		}

		tp, terr := test.begin.OrErr()
		if p, err := a.Begin().OrErr(); (err == nil) != (terr == nil) {
			t.Errorf("[%d](%s).Begin() failed (error). %v != %v",
				h, a, err, terr)
		} else if terr == nil && !IsEqualPair(p, tp) {
			t.Errorf("[%d](%s).Begin() failed. %v != %v",
				h, a, p, tp)
		}

		tp, terr = test.end.OrErr()
		if p, err := a.End().OrErr(); (err == nil) != (terr == nil) {
			t.Errorf("[%d](%s).End() failed (error). %v != %v",
				h, a, err, terr)
		} else if terr == nil && !IsEqualPair(p, tp) {
			t.Errorf("[%d](%s).End() failed. %v != %v",
				h, a, p, tp)
		}

		if _, err := a.OrErr(); err == nil {
			if length := a.Length(); !IsEqual(length, test.length) {
				t.Errorf("[%d](%s).Length() failed. %f != %f",
					h, a, length, test.length)
			}
			if angle := a.Angle(); !IsEqual(angle, test.angle) {
				t.Errorf("[%d](%s).Angle() failed. %f != %f",
					h, a, angle, test.angle)
			}
		}
	}

	reverseTests := []struct {
		a Segment
		r Segment
	}{
		{SegmentPt(PtXy(0, 5), PtXy(5, 0)), SegmentPt(PtXy(5, 0), PtXy(0, 5))},
		{SegmentPt(PtXy(20, 5), PtXy(5, 2)), SegmentPt(PtXy(5, 2), PtXy(20, 5))},
	}
	for h, test := range reverseTests {
		a := test.a
		r := a.Reverse()
		if IsEqualPts(a, r) {
			t.Errorf("[%d](%s).Reverse() failed (matched source). %v == %v",
				h, a, r, test.r)
		}
		if !IsEqualPts(r, test.r) {
			t.Errorf("[%d](%s).Reverse() failed. %v == %v",
				h, a, r, test.r)
		}
	}

	errorTests := []struct {
		a     Segment
		isErr bool
	}{
		{SegmentPt(PtXy(0, 0), PtXy(0, 0)), false},
		{SegmentPt(PtXy(120, 12), PtXy(455, 30)), false},
		{SegmentPt(PtXy(0, Length(math.NaN())), PtXy(0, 0)), true},
		{SegmentPt(PtXy(Length(math.Inf(-1)), 3), PtXy(3, 3)), true},
		{SegmentPt(PtXy(3, 3), PtXy(3, Length(math.Inf(1)))), true},
	}
	for h, test := range errorTests {
		a := test.a
		_, err := a.OrErr()
		if (err != nil) != test.isErr {
			t.Errorf("[%d](%v).OrErr() failed. %t != %t. %v",
				h, test.a, (err != nil), test.isErr, err)
		}
	}
}
