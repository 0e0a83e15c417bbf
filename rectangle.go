package figuring

import "fmt"

type OrderedPtser interface {
	Points() []Pt
}

// Rectangle represents an axis aligned rectangle. The resulting rectangle will
// always be aligned with the X and Y axis.
type Rectangle struct {
	pts [2]Pt
}

func RectanglePt(p1, p2 Pt) Rectangle {
	lx, mx, ly, my := LimitsPts([]Pt{p1, p2})
	return Rectangle{
		pts: [2]Pt{PtXy(lx, ly), PtXy(mx, my)},
	}
}
func (r Rectangle) MinPt() Pt    { return r.pts[0] }
func (r Rectangle) MaxPt() Pt    { return r.pts[1] }
func (r Rectangle) Points() []Pt { return r.pts[:] }
func (r Rectangle) Dims() (Length, Length) {
	return r.pts[0].VectorTo(r.pts[1]).Units()
}
func (r Rectangle) Width() Length {
	w, _ := r.Dims()
	return w
}
func (r Rectangle) Height() Length {
	_, h := r.Dims()
	return h
}
func (r Rectangle) OrErr() (Rectangle, *FloatingPointError) {
	if _, err := r.pts[0].OrErr(); err != nil {
		return r, err
	} else if _, err = r.pts[1].OrErr(); err != nil {
		return r, err
	}
	return r, nil
}
func (r Rectangle) String() string {
	minmax, maxmin := PtXy(r.pts[0].X(), r.pts[1].Y()), PtXy(r.pts[1].X(), r.pts[0].Y())
	return fmt.Sprintf("rect=Polygon(%v, %v, %v, %v)",
		r.pts[0], minmax, r.pts[1], maxmin)
}

// IsPoint reports whether the rectangle has zero width and zero height.
func (r Rectangle) IsPoint() bool {
	w, h := r.Dims()
	return IsZero(float64(w)) && IsZero(float64(h))
}

// Contains reports whether \c p is strictly inside the rectangle on both
// axes. Points on an edge or corner are not contained; see HasOnEdge.
func (r Rectangle) Contains(p Pt) bool {
	min, max := r.MinPt(), r.MaxPt()
	x, y := p.XY()
	return min.X() < x && x < max.X() && min.Y() < y && y < max.Y()
}

// HasOnEdge reports whether \c p lies on one of the four sides of the
// rectangle, corners included.
func (r Rectangle) HasOnEdge(p Pt) bool {
	min, max := r.MinPt(), r.MaxPt()
	x, y := p.XY()
	inX := min.X() <= x && x <= max.X()
	inY := min.Y() <= y && y <= max.Y()
	if !inX || !inY {
		return false
	}
	onVerticalEdge := IsEqual(float64(x), float64(min.X())) || IsEqual(float64(x), float64(max.X()))
	onHorizontalEdge := IsEqual(float64(y), float64(min.Y())) || IsEqual(float64(y), float64(max.Y()))
	return onVerticalEdge || onHorizontalEdge
}

// Overlaps reports whether the two rectangles' interiors intersect on both
// axes. Boxes that only touch (shared edge or corner) do not overlap; see
// Contacts.
func (r Rectangle) Overlaps(o Rectangle) bool {
	rmin, rmax := r.MinPt(), r.MaxPt()
	omin, omax := o.MinPt(), o.MaxPt()
	xOverlap := rmin.X() < omax.X() && omin.X() < rmax.X()
	yOverlap := rmin.Y() < omax.Y() && omin.Y() < rmax.Y()
	return xOverlap && yOverlap
}

// Contacts reports whether the two rectangles touch (their closures
// intersect) without their interiors overlapping.
func (r Rectangle) Contacts(o Rectangle) bool {
	if r.Overlaps(o) {
		return false
	}
	rmin, rmax := r.MinPt(), r.MaxPt()
	omin, omax := o.MinPt(), o.MaxPt()
	xTouch := rmin.X() <= omax.X() && omin.X() <= rmax.X()
	yTouch := rmin.Y() <= omax.Y() && omin.Y() <= rmax.Y()
	return xTouch && yTouch
}
