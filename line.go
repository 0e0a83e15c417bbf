package figuring

import (
	"fmt"
)

type Coefficienter interface {
	Coefficients() []float64
}

// Segment represents a line with a fixed slope between two points.
type Segment struct {
	b, e Pt
}

// SegmentPt creates a new segment using the provided points.
func SegmentPt(begin, end Pt) Segment {
	return Segment{
		b: begin,
		e: end,
	}
}

// SegmentFromVector creates a new segment using the provided orgiin and a
// vector to compute the end.
func SegmentFromVector(begin Pt, end Vector) Segment {
	return SegmentPt(begin, begin.Add(end))
}

func (s Segment) Begin() Pt              { return s.b }
func (s Segment) BoundingBox() Rectangle { return RectanglePt(s.b, s.e) }
func (s Segment) End() Pt                { return s.e }
func (s Segment) Length() Length         { return s.b.VectorTo(s.e).Magnitude() }
func (s Segment) Angle() Radians         { return s.b.VectorTo(s.e).Angle() }
func (s Segment) Points() []Pt           { return []Pt{s.b, s.e} }
func (s Segment) OrErr() (Segment, *FloatingPointError) {
	if _, err := s.b.OrErr(); err != nil {
		return s, err
	} else if _, err = s.e.OrErr(); err != nil {
		return s, err
	}
	return s, nil
}
func (s Segment) String() string {
	return fmt.Sprintf("Segment(%v, %v)", s.b, s.e)
}
func (s Segment) Reverse() Segment { return SegmentPt(s.e, s.b) }

func IsEqualPts[T OrderedPtser](a, b T) bool {
	as, bs := a.Points(), b.Points()
	if len(as) != len(bs) {
		return false
	}
	for h := 0; h < len(as); h++ {
		if !IsEqualPair(as[h], bs[h]) {
			return false
		}
	}
	return true
}
