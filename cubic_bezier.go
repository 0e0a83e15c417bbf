package figuring

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

var MatrixBezierCubic mgl64.Mat4 = mgl64.Mat4{
	1, 0, 0, 0,
	-3, 3, 0, 0,
	3, -6, 3, 0,
	-1, 3, -3, 1,
}

// deCasteljau performs de Casteljau subdivision at \c tf, returning the
// control points of the left and right sub-curves.
//
// https://pomax.github.io/bezierinfo/
func deCasteljau(s []Pt, tf float64) ([]Pt, []Pt) {
	t := Length(tf)
	pts := make([]Pt, len(s))
	copy(pts, s)

	left, right := []Pt{pts[0]}, []Pt{pts[len(pts)-1]}
	for len(pts) > 1 {
		newpts := make([]Pt, len(pts)-1)
		for h := 0; h < len(newpts); h++ {
			x := (1-t)*pts[h].X() + t*pts[h+1].X()
			y := (1-t)*pts[h].Y() + t*pts[h+1].Y()
			newpts[h] = PtXy(x, y)
		}
		left = append(left, newpts[0])
		right = append(right, newpts[len(newpts)-1])
		pts = newpts
	}

	return left, right
}

type BezierCurveType uint

const (
	BEZIER_CURVE_TYPE_PLAIN BezierCurveType = iota
	BEZIER_CURVE_TYPE_LOOP
	BEZIER_CURVE_TYPE_CUSP
	BEZIER_CURVE_TYPE_LOOPEND
	BEZIER_CURVE_TYPE_LOOPBEGIN
	BEZIER_CURVE_TYPE_SINGLEINFLECTION
	BEZIER_CURVE_TYPE_DOUBLEINFLECTION
)

// CubicBezier represents a cubic bezier curve.
type CubicBezier struct {
	pts  [4]Pt
	x, y Cubic
}

// CubicBezierPt creates a new CubicBezier curve based on the provided
// points.
func CubicBezierPt(p1, p2, p3, p4 Pt) CubicBezier {
	px := mgl64.Vec4{float64(p4.X()), float64(p3.X()), float64(p2.X()), float64(p1.X())}
	py := mgl64.Vec4{float64(p4.Y()), float64(p3.Y()), float64(p2.Y()), float64(p1.Y())}
	xs, ys := MatrixBezierCubic.Mul4x1(px), MatrixBezierCubic.Mul4x1(py)
	return CubicBezier{
		pts: [4]Pt{p1, p2, p3, p4},
		x:   CubicFromVec4(xs),
		y:   CubicFromVec4(ys),
	}
}

// AlignOnX rotates, translates, and scales the curve to the X-Axis, with the
// first point on the origin and the last point (1,0). If the last point is at
// zero on the x-axis, it skips the scale operation.
func (curve CubicBezier) AlignOnX() (Vector, Radians, Length, CubicBezier) {
	translate := curve.pts[0].VectorTo(PtOrig)
	pts := TranslatePts(translate, curve.Points())
	theta := -PtOrig.VectorTo(pts[3]).Angle()
	pts = RotatePts(theta, PtOrig, pts)
	scale := pts[3].X()
	if !IsZero(scale) {
		pts = ScalePts(VectorIj(1/scale, 1/scale), pts)
	}

	return translate, theta, scale, CubicBezierPt(pts[0], pts[1], pts[2], pts[3])
}

// ApproxLength treats the curve as \c steps number of line segments and
// returns the sum of the length of all the line segments. It isn't as
// accurate as Length(), but can be much faster for smaller values of \c
// steps.
func (curve CubicBezier) ApproxLength(steps int) Length {
	prev := curve.PointAt(0)
	var sum Length
	for h := 1; h <= steps; h++ {
		t := 1.0 / float64(steps) * float64(h)
		curr := curve.PointAt(t)
		sum += prev.VectorTo(curr).Magnitude()
		prev = curr
	}
	return sum
}

// Degree implements Edge for CubicBezier.
func (CubicBezier) Degree() int { return 3 }

// ExtremePoints implements Edge for CubicBezier. Per axis, solves
// a*t^2 + 2*b*t + c = 0 with a = -s+3c1-3c2+e, b = s-2c1+c2, c = -s+c1,
// falling back to the linear form when a=0.
func (curve CubicBezier) ExtremePoints() []ExtremePoint {
	ts := []float64{0, 1}
	ts = append(ts, cubicAxisExtremes(curve.pts[0].X(), curve.pts[1].X(), curve.pts[2].X(), curve.pts[3].X())...)
	ts = append(ts, cubicAxisExtremes(curve.pts[0].Y(), curve.pts[1].Y(), curve.pts[2].Y(), curve.pts[3].Y())...)
	ts = dedupExtremeTs(ts)
	out := make([]ExtremePoint, 0, len(ts))
	for _, t := range ts {
		out = append(out, ExtremePoint{T: t, Point: curve.PointAt(t)})
	}
	return out
}

func cubicAxisExtremes(s, c1, c2, e Length) []float64 {
	a := float64(-s + 3*c1 - 3*c2 + e)
	b := float64(s - 2*c1 + c2)
	c := float64(-s + c1)
	roots := SolveQuadratic(c, 2*b, a).Roots()
	out := make([]float64, 0, len(roots))
	for _, t := range roots {
		if 0 < t && t < 1 {
			out = append(out, t)
		}
	}
	return out
}

// BoundingBox returns an axis-aligned rectangle that encompasses all the
// extreme points of the curve.
func (curve CubicBezier) BoundingBox() Rectangle {
	eps := curve.ExtremePoints()
	pts := make([]Pt, len(eps))
	for h, ep := range eps {
		pts[h] = ep.Point
	}
	lx, mx, ly, my := LimitsPts(pts)
	return RectanglePt(PtXy(lx, ly), PtXy(mx, my))
}

// DeviationFromLine implements Edge for CubicBezier: the maximum
// perpendicular distance from the curve to its start->end chord, normalized
// by the squared chord length, or +Inf if either control point's
// projection onto the chord overshoots [0, |chord|^2].
func (curve CubicBezier) DeviationFromLine() float64 {
	start, c1, c2, end := curve.pts[0], curve.pts[1], curve.pts[2], curve.pts[3]
	chord := start.VectorTo(end)
	chordLenSq := float64(chord.Dot(chord))
	if IsZero(chordLenSq) {
		return math.Inf(1)
	}

	toC1, toC2 := start.VectorTo(c1), start.VectorTo(c2)
	for _, v := range []Vector{toC1, toC2} {
		proj := float64(chord.Dot(v))
		if proj < 0 || proj > chordLenSq {
			return math.Inf(1)
		}
	}

	c1Cross := float64(chord.Cross(toC1))
	c2Cross := float64(chord.Cross(toC2))

	devAt := func(t float64) float64 {
		raw := 3*t*(1-t)*(1-t)*c1Cross + 3*t*t*(1-t)*c2Cross
		return math.Abs(raw) / chordLenSq
	}

	if IsEqual(c1Cross, c2Cross) {
		return devAt(0.5)
	}

	a := 3 * (c1Cross - c2Cross)
	b := 2*c2Cross - 4*c1Cross
	c := c1Cross
	roots := SolveQuadratic(c, b, a).Roots()

	max := 0.0
	for _, t := range roots {
		if 0 < t && t < 1 {
			if d := devAt(t); d > max {
				max = d
			}
		}
	}
	return max
}

// CurveType returns the type of curve this is. See BezierCurveType for more
// details on return values.
func (curve CubicBezier) CurveType() BezierCurveType {
	// See https://pomax.github.io/bezierinfo/#canonical
	translate := curve.pts[0].VectorTo(PtOrig)
	pts := TranslatePts(translate, curve.Points())

	x2, y2 := pts[1].XY()
	x3, y3 := pts[2].XY()
	x4, y4 := pts[3].XY()

	y42 := y4 / y2
	y32 := y3 / y2

	x43 := (x4 - x2*y42) / (x3 - x2*y32)
	x := float64(x43)
	y := float64(y42 + x43*(1-y32))

	if y > 1 {
		return BEZIER_CURVE_TYPE_SINGLEINFLECTION
	}

	if y <= 1 && x <= 1 {
		c := (-x*x + 2*x + 3) / 4

		if x <= 0 {
			t0loop := (-x*x + 3*x) / 3
			if IsEqual(y, t0loop) {
				return BEZIER_CURVE_TYPE_LOOPBEGIN
			}
			if t0loop < y && y < c {
				return BEZIER_CURVE_TYPE_LOOP
			}
		}

		if 0 <= x && x <= 1.0 {
			t1loop := (math.Sqrt(3)*math.Sqrt(4*x-x*x) - x) / 2
			if IsEqual(y, t1loop) {
				return BEZIER_CURVE_TYPE_LOOPEND
			}
			if t1loop < y && y < c {
				return BEZIER_CURVE_TYPE_LOOP
			}
		}

		if IsEqual(y, c) {
			return BEZIER_CURVE_TYPE_CUSP
		}
		if y > c {
			return BEZIER_CURVE_TYPE_DOUBLEINFLECTION
		}
	}
	return BEZIER_CURVE_TYPE_PLAIN
}

// InflectionPts returns the points where the curvature of the curve switches
// directions.
func (curve CubicBezier) InflectionPts() []float64 {
	_, _, _, ac := curve.AlignOnX()
	// https://pomax.github.io/bezierinfo/#inflections
	a := ac.pts[2].X() * ac.pts[1].Y()
	b := ac.pts[3].X() * ac.pts[1].Y()
	c := ac.pts[1].X() * ac.pts[2].Y()
	d := ac.pts[3].X() * ac.pts[2].Y()

	x := -3*a + 2*b + 3*c - d
	y := 3*a - b - 3*c
	z := c - a

	eq := QuadraticAbc(float64(x), float64(y), float64(z))
	roots := eq.Roots()

	validRoots := make([]float64, 0, len(roots))
	for h := 0; h < len(roots); h++ {
		if 0 <= roots[h] && roots[h] <= 1.0 {
			validRoots = append(validRoots, roots[h])
		}
	}

	return validRoots
}

// Length returns a more accurate approximation than ApproxLength, via
// Legendre-Gauss quadrature.
func (curve CubicBezier) Length() Length {
	// see https://pomax.github.io/bezierinfo/legendre-gauss.html
	z := 1.
	var sum float64
	for h := 0; h < len(legendregauss_weight); h++ {
		C := legendregauss_weight[h]
		T := legendregauss_abscissa[h]
		t := (z/2)*T + (z / 2)

		x := curve.x.FirstDerivative().AtT(t)
		y := curve.y.FirstDerivative().AtT(t)

		sum += C * math.Sqrt(x*x+y*y)
	}

	return Length(sum * (z / 2))
}

// Points provides access to the individual control points of this curve.
// Consider the points readonly.
func (curve CubicBezier) Points() []Pt { return curve.pts[:] }

// PointAt implements Edge for CubicBezier via Bernstein evaluation.
func (curve CubicBezier) PointAt(t float64) Pt {
	x, y := curve.x.AtT(t), curve.y.AtT(t)
	return PtXy(Length(x), Length(y))
}

// ParamsForPoint implements Edge for CubicBezier by solving x(t)=p.x and
// y(t)=p.y independently and intersecting the root sets.
func (curve CubicBezier) ParamsForPoint(p Pt, eps float64) RootSet {
	a, b, c, d := curve.x.Abcd()
	xr := SolveCubic(d-float64(p.X()), c, b, a)
	a, b, c, d = curve.y.Abcd()
	yr := SolveCubic(d-float64(p.Y()), c, b, a)
	return intersectAxisRoots(xr, yr, eps)
}

// SplitAt implements Edge for CubicBezier, splitting the curve into two
// curves covering the same overall shape.
func (curve CubicBezier) SplitAt(t float64) (Edge, Edge) {
	left, right := curve.splitAt(t)
	return left, right
}

func (curve CubicBezier) splitAt(t float64) (CubicBezier, CubicBezier) {
	px := mgl64.Vec4{
		float64(curve.pts[0].X()),
		float64(curve.pts[1].X()),
		float64(curve.pts[2].X()),
		float64(curve.pts[3].X()),
	}
	py := mgl64.Vec4{
		float64(curve.pts[0].Y()),
		float64(curve.pts[1].Y()),
		float64(curve.pts[2].Y()),
		float64(curve.pts[3].Y()),
	}

	z := t - 1
	qa := mgl64.Mat4{
		1, -z, z * z, -(z * z * z),
		0, t, -2 * z * t, 3 * (z * z) * t,
		0, 0, t * t, -3 * z * (t * t),
		0, 0, 0, t * t * t,
	}
	qb := mgl64.Mat4{
		-(z * z * z), 0, 0, 0,
		3 * (z * z) * t, z * z, 0, 0,
		-3 * z * (t * t), -2 * z * t, -z, 0,
		t * t * t, t * t, t, 1,
	}
	pax := qa.Mul4x1(px)
	pay := qa.Mul4x1(py)
	pbx := qb.Mul4x1(px)
	pby := qb.Mul4x1(py)

	return CubicBezierPt(
			PtXy(Length(pax[0]), Length(pay[0])),
			PtXy(Length(pax[1]), Length(pay[1])),
			PtXy(Length(pax[2]), Length(pay[2])),
			PtXy(Length(pax[3]), Length(pay[3])),
		),
		CubicBezierPt(
			PtXy(Length(pbx[0]), Length(pby[0])),
			PtXy(Length(pbx[1]), Length(pby[1])),
			PtXy(Length(pbx[2]), Length(pby[2])),
			PtXy(Length(pbx[3]), Length(pby[3])),
		)
}

// String returns a string representation of the bezier. Format allows the
// curve to be pasted into Geogebra.
func (curve CubicBezier) String() string {
	unknown := 't'
	return fmt.Sprintf("CubicBezier[ Curve(%s, %s, %c, 0, 1) ]",
		curve.x.Text(unknown, false),
		curve.y.Text(unknown, false),
		unknown,
	)
}

// TangentAtT returns the tangent and the normal of the curve for the given
// value of \c t.
func (curve CubicBezier) TangentAtT(t float64) (Vector, Vector) {
	ieq, jeq := curve.x.FirstDerivative(), curve.y.FirstDerivative()
	i, j := ieq.AtT(t), jeq.AtT(t)
	tangent := VectorIj(Length(i), Length(j))
	normal := VectorIj(-Length(j), Length(i))
	return tangent, normal
}
