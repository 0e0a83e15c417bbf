package figuring

import (
	"math"
	"testing"
)

func TestRectangle(t *testing.T) {
	identityTests := []struct {
		a        Rectangle
		s        string
		min, max Pt
		w, h     Length
	}{
		{
			//0
			RectanglePt(PtXy(2, -2), PtXy(-2, 2)),
			"rect=Polygon(Point({-2, -2}), Point({-2, 2}), Point({2, 2}), Point({2, -2}))",
			PtXy(-2, -2), PtXy(2, 2),
			4, 4,
		},
	}
	for h, test := range identityTests {
		a := test.a
		if s := a.String(); s != test.s {
			t.Errorf("[%d](%s).String() failed. %s != %s",
				h, a, s, test.s)
		}
		if min := a.MinPt(); !IsEqualPair(min, test.min) {
			t.Errorf("[%d](%s).MinPt() failed. %v != %v",
				h, a, min, test.min)
		}
		if max := a.MaxPt(); !IsEqualPair(max, test.max) {
			t.Errorf("[%d](%s).MaxPt() failed. %v != %v",
				h, a, max, test.max)
		}
		if width := a.Width(); !IsEqual(width, test.w) {
			t.Errorf("[%d](%s).Width() failed. %f != %f",
				h, a, width, test.w)
		}
		if height := a.Height(); !IsEqual(height, test.h) {
			t.Errorf("[%d](%s).Height() failed. %f != %f",
				h, a, height, test.h)
		}
		if width, height := a.Dims(); !IsEqual(width, test.w) || !IsEqual(height, test.h) {
			t.Errorf("[%d](%s).Dims() failed. (%f, %f) != (%f, %f)",
				h, a, width, height, test.w, test.h)
		}
	}

	errorTests := []struct {
		a     Rectangle
		isErr bool
	}{
		{RectanglePt(PtXy(1, 1), PtXy(5, 5)), false},
		{RectanglePt(PtXy(-1, -1), PtXy(-5, -5)), false},
		{RectanglePt(PtXy(Length(math.NaN()), 1), PtXy(5, 5)), true},
		{RectanglePt(PtXy(1, 1), PtXy(5, Length(math.NaN()))), true},
		{RectanglePt(PtXy(1, Length(math.Inf(1))), PtXy(5, 5)), true},
		{RectanglePt(PtXy(1, 1), PtXy(Length(math.Inf(-1)), 5)), true},
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

func TestRectangleIsPoint(t *testing.T) {
	tests := []struct {
		a        Rectangle
		isPoint bool
	}{
		{RectanglePt(PtXy(1, 1), PtXy(1, 1)), true},
		{RectanglePt(PtXy(1, 1), PtXy(1, 5)), false},
		{RectanglePt(PtXy(1, 1), PtXy(5, 1)), false},
		{RectanglePt(PtXy(1, 1), PtXy(5, 5)), false},
	}
	for h, test := range tests {
		if got := test.a.IsPoint(); got != test.isPoint {
			t.Errorf("[%d](%v).IsPoint() failed. %t != %t", h, test.a, got, test.isPoint)
		}
	}
}

func TestRectangleContains(t *testing.T) {
	r := RectanglePt(PtXy(0, 0), PtXy(10, 10))
	tests := []struct {
		p    Pt
		want bool
	}{
		{PtXy(5, 5), true},
		{PtXy(0, 5), false},
		{PtXy(5, 0), false},
		{PtXy(10, 10), false},
		{PtXy(-1, 5), false},
		{PtXy(15, 5), false},
	}
	for h, test := range tests {
		if got := r.Contains(test.p); got != test.want {
			t.Errorf("[%d]%v.Contains(%v) failed. %t != %t", h, r, test.p, got, test.want)
		}
	}
}

func TestRectangleHasOnEdge(t *testing.T) {
	r := RectanglePt(PtXy(0, 0), PtXy(10, 10))
	tests := []struct {
		p    Pt
		want bool
	}{
		{PtXy(0, 0), true},
		{PtXy(10, 10), true},
		{PtXy(0, 5), true},
		{PtXy(5, 0), true},
		{PtXy(5, 5), false},
		{PtXy(-1, 5), false},
		{PtXy(15, 15), false},
	}
	for h, test := range tests {
		if got := r.HasOnEdge(test.p); got != test.want {
			t.Errorf("[%d]%v.HasOnEdge(%v) failed. %t != %t", h, r, test.p, got, test.want)
		}
	}
}

func TestRectangleOverlaps(t *testing.T) {
	r := RectanglePt(PtXy(0, 0), PtXy(10, 10))
	tests := []struct {
		o    Rectangle
		want bool
	}{
		{RectanglePt(PtXy(5, 5), PtXy(15, 15)), true},
		{RectanglePt(PtXy(10, 0), PtXy(20, 10)), false},
		{RectanglePt(PtXy(20, 20), PtXy(30, 30)), false},
		{RectanglePt(PtXy(2, 2), PtXy(8, 8)), true},
	}
	for h, test := range tests {
		if got := r.Overlaps(test.o); got != test.want {
			t.Errorf("[%d]%v.Overlaps(%v) failed. %t != %t", h, r, test.o, got, test.want)
		}
	}
}

func TestRectangleContacts(t *testing.T) {
	r := RectanglePt(PtXy(0, 0), PtXy(10, 10))
	tests := []struct {
		o    Rectangle
		want bool
	}{
		{RectanglePt(PtXy(10, 0), PtXy(20, 10)), true},
		{RectanglePt(PtXy(10, 10), PtXy(20, 20)), true},
		{RectanglePt(PtXy(5, 5), PtXy(15, 15)), false},
		{RectanglePt(PtXy(20, 20), PtXy(30, 30)), false},
	}
	for h, test := range tests {
		if got := r.Contacts(test.o); got != test.want {
			t.Errorf("[%d]%v.Contacts(%v) failed. %t != %t", h, r, test.o, got, test.want)
		}
	}
}
