package figuring

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

var matrixBezierQuadratic = mgl64.Mat3{
	1, 0, 0,
	-2, 2, 0,
	1, -2, 1,
}

// QuadraticBezier is a single quadratic bezier curve, defined by a start
// point, one control point, and an end point.
type QuadraticBezier struct {
	pts  [3]Pt
	x, y Quadratic
}

// QuadraticBezierPt creates a new QuadraticBezier curve from its three
// control points.
func QuadraticBezierPt(p1, p2, p3 Pt) QuadraticBezier {
	px := mgl64.Vec3{float64(p3.X()), float64(p2.X()), float64(p1.X())}
	py := mgl64.Vec3{float64(p3.Y()), float64(p2.Y()), float64(p1.Y())}
	xs, ys := matrixBezierQuadratic.Mul3x1(px), matrixBezierQuadratic.Mul3x1(py)
	return QuadraticBezier{
		pts: [3]Pt{p1, p2, p3},
		x:   QuadraticFromVec3(xs),
		y:   QuadraticFromVec3(ys),
	}
}

// Points provides access to the individual control points. Consider the
// points readonly.
func (curve QuadraticBezier) Points() []Pt { return curve.pts[:] }

// Degree implements Edge for QuadraticBezier.
func (QuadraticBezier) Degree() int { return 2 }

// PointAt implements Edge for QuadraticBezier via Bernstein evaluation.
func (curve QuadraticBezier) PointAt(t float64) Pt {
	x, y := curve.x.AtT(t), curve.y.AtT(t)
	return PtXy(Length(x), Length(y))
}

// SplitAt implements Edge for QuadraticBezier via de Casteljau.
func (curve QuadraticBezier) SplitAt(t float64) (Edge, Edge) {
	left, right := deCasteljau(curve.pts[:], t)
	reverse(right)
	return QuadraticBezierPt(left[0], left[1], left[2]),
		QuadraticBezierPt(right[0], right[1], right[2])
}

func reverse(pts []Pt) {
	for i, j := 0, len(pts)-1; i < j; i, j = i+1, j-1 {
		pts[i], pts[j] = pts[j], pts[i]
	}
}

// ExtremePoints implements Edge for QuadraticBezier. Per axis, the interior
// extremum is at tx = (s-c)/(s-2c+e) where s, c, e are the start, control,
// and end coordinates on that axis.
func (curve QuadraticBezier) ExtremePoints() []ExtremePoint {
	ts := []float64{0, 1}
	ts = append(ts, quadraticAxisExtreme(curve.pts[0].X(), curve.pts[1].X(), curve.pts[2].X())...)
	ts = append(ts, quadraticAxisExtreme(curve.pts[0].Y(), curve.pts[1].Y(), curve.pts[2].Y())...)
	ts = dedupExtremeTs(ts)
	out := make([]ExtremePoint, 0, len(ts))
	for _, t := range ts {
		out = append(out, ExtremePoint{T: t, Point: curve.PointAt(t)})
	}
	return out
}

func quadraticAxisExtreme(s, c, e Length) []float64 {
	denom := float64(s - 2*c + e)
	if IsZero(denom) {
		return nil
	}
	tx := float64(s-c) / denom
	if 0 < tx && tx < 1 {
		return []float64{tx}
	}
	return nil
}

// BoundingBox implements Edge for QuadraticBezier.
func (curve QuadraticBezier) BoundingBox() Rectangle {
	eps := curve.ExtremePoints()
	pts := make([]Pt, len(eps))
	for h, ep := range eps {
		pts[h] = ep.Point
	}
	lx, mx, ly, my := LimitsPts(pts)
	return RectanglePt(PtXy(lx, ly), PtXy(mx, my))
}

// DeviationFromLine implements Edge for QuadraticBezier. Collapses to the
// single closed form |chord x (mid-start)| / |chord|^2, since a quadratic
// bezier's deviation from its chord is always maximized at t=0.5.
func (curve QuadraticBezier) DeviationFromLine() float64 {
	start, mid, end := curve.pts[0], curve.pts[1], curve.pts[2]
	chord := start.VectorTo(end)
	chordLenSq := float64(chord.Dot(chord))
	if IsZero(chordLenSq) {
		return math.Inf(1)
	}
	toMid := start.VectorTo(mid)
	proj := float64(chord.Dot(toMid))
	if proj < 0 || proj > chordLenSq {
		return math.Inf(1)
	}
	return math.Abs(float64(chord.Cross(toMid))) / chordLenSq
}

// ParamsForPoint implements Edge for QuadraticBezier by solving x(t)=p.x
// and y(t)=p.y independently and intersecting the root sets.
func (curve QuadraticBezier) ParamsForPoint(p Pt, eps float64) RootSet {
	a, b, c := curve.x.Abc()
	xr := SolveQuadratic(c-float64(p.X()), b, a)
	a, b, c = curve.y.Abc()
	yr := SolveQuadratic(c-float64(p.Y()), b, a)
	return intersectAxisRoots(xr, yr, eps)
}

// String returns a string representation of the curve. Format allows the
// curve to be pasted into Geogebra.
func (curve QuadraticBezier) String() string {
	unknown := 't'
	return fmt.Sprintf("QuadraticBezier[ Curve(%s, %s, %c, 0, 1) ]",
		curve.x.Text(unknown, false),
		curve.y.Text(unknown, false),
		unknown,
	)
}

// TangentAtT returns the tangent and the normal of the curve for the given
// value of \c t.
func (curve QuadraticBezier) TangentAtT(t float64) (Vector, Vector) {
	ieq, jeq := curve.x.FirstDerivative(), curve.y.FirstDerivative()
	i, j := ieq.AtT(t), jeq.AtT(t)
	tangent := VectorIj(Length(i), Length(j))
	normal := VectorIj(-Length(j), Length(i))
	return tangent, normal
}
