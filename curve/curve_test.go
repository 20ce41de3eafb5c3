package curve

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/gokernel/nurbs/knot"
	"github.com/gokernel/nurbs/numeric"
)

func quarterCircle(tst *testing.T) Curve {
	U := knot.New([]float64{0, 0, 0, 1, 1, 1})
	pts := []numeric.Point3{{X: 1, Y: 0, Z: 0}, {X: 1, Y: 1, Z: 0}, {X: 0, Y: 2, Z: 0}}
	c, err := New(2, U, pts, []float64{1, 1, 2})
	if err != nil {
		tst.Fatalf("setup: %v", err)
	}
	return c
}

func planarCubic(tst *testing.T) Curve {
	n := 6
	U := make([]float64, 0, n+4)
	U = append(U, 0, 0, 0, 0)
	U = append(U, 1.0/3, 2.0/3)
	U = append(U, 1, 1, 1, 1)
	pts := []numeric.Point3{
		{X: 5, Y: 5, Z: 0}, {X: 10, Y: 10, Z: 0}, {X: 20, Y: 15, Z: 0},
		{X: 35, Y: 15, Z: 0}, {X: 45, Y: 10, Z: 0}, {X: 50, Y: 5, Z: 0},
	}
	c, err := New(3, knot.New(U), pts, nil)
	if err != nil {
		tst.Fatalf("setup: %v", err)
	}
	return c
}

func Test_endpointInterpolation01(tst *testing.T) {

	chk.PrintTitle("endpointinterpolation01. clamped curve interpolates P0 and Pn")

	c := quarterCircle(tst)
	p0, err := c.PointAt(c.Domain().T0)
	if err != nil {
		tst.Fatalf("%v", err)
	}
	pn, err := c.PointAt(c.Domain().T1)
	if err != nil {
		tst.Fatalf("%v", err)
	}
	chk.Vector(tst, "C(first)", 1e-12, []float64{p0.X, p0.Y, p0.Z}, []float64{1, 0, 0})
	chk.Vector(tst, "C(last)", 1e-12, []float64{pn.X, pn.Y, pn.Z}, []float64{0, 2, 0})
}

func Test_knotRefinePreservesGeometry01(tst *testing.T) {

	chk.PrintTitle("knotrefinepreservesgeometry01. refine does not move the curve")

	c := planarCubic(tst)
	refined, err := c.KnotRefine([]float64{0.1, 0.25, 0.5, 0.8})
	if err != nil {
		tst.Fatalf("%v", err)
	}
	for _, t := range []float64{0.05, 0.2, 0.4, 0.6, 0.9} {
		p0, err := c.PointAt(t)
		if err != nil {
			tst.Fatalf("%v", err)
		}
		p1, err := refined.PointAt(t)
		if err != nil {
			tst.Fatalf("%v", err)
		}
		chk.Vector(tst, "point", 1e-9, []float64{p0.X, p0.Y, p0.Z}, []float64{p1.X, p1.Y, p1.Z})
	}
}

func Test_bezierDecomposition01(tst *testing.T) {

	chk.PrintTitle("bezierdecomposition01. concatenated beziers reproduce the curve")

	c := planarCubic(tst)
	segs, err := c.DecomposeIntoBeziers(false)
	if err != nil {
		tst.Fatalf("%v", err)
	}
	chk.IntAssert(len(segs), 3)
	for _, t := range []float64{0.1, 1.0 / 3, 0.5, 2.0 / 3, 0.9} {
		want, err := c.PointAt(t)
		if err != nil {
			tst.Fatalf("%v", err)
		}
		for _, seg := range segs {
			dom := seg.Domain()
			if t < dom.T0-numeric.Epsilon || t > dom.T1+numeric.Epsilon {
				continue
			}
			got, err := seg.PointAt(t)
			if err != nil {
				continue
			}
			chk.Vector(tst, "point", 1e-9, []float64{want.X, want.Y, want.Z}, []float64{got.X, got.Y, got.Z})
		}
	}
}

func Test_splitComposition01(tst *testing.T) {

	chk.PrintTitle("splitcomposition01. split at t=0.5 reproduces C(0.5)")

	c := planarCubic(tst)
	want, err := c.PointAt(0.5)
	if err != nil {
		tst.Fatalf("%v", err)
	}
	left, right, err := c.SplitAt(0.5)
	if err != nil {
		tst.Fatalf("%v", err)
	}
	chk.IntAssert(left.Degree(), 3)
	chk.IntAssert(right.Degree(), 3)

	for i := 0; i <= left.p; i++ {
		chk.Scalar(tst, "right leading knot", 1e-12, right.u.At(i), 0.5)
	}
	n := right.u.Len()
	for i := 0; i <= left.p; i++ {
		chk.Scalar(tst, "left trailing knot", 1e-12, left.u.At(left.u.Len()-1-i), 0.5)
	}
	_ = n

	gotLeft, err := left.PointAt(left.Domain().T1)
	if err != nil {
		tst.Fatalf("%v", err)
	}
	gotRight, err := right.PointAt(right.Domain().T0)
	if err != nil {
		tst.Fatalf("%v", err)
	}
	chk.Vector(tst, "left(end)", 1e-9, []float64{gotLeft.X, gotLeft.Y, gotLeft.Z}, []float64{want.X, want.Y, want.Z})
	chk.Vector(tst, "right(start)", 1e-9, []float64{gotRight.X, gotRight.Y, gotRight.Z}, []float64{want.X, want.Y, want.Z})
}

func Test_degreeElevationPreservesGeometry01(tst *testing.T) {

	chk.PrintTitle("degreeelevationpreservesgeometry01. elevation does not move the curve")

	c := planarCubic(tst)
	elevated, err := c.ElevateDegree(5)
	if err != nil {
		tst.Fatalf("%v", err)
	}
	chk.IntAssert(elevated.Degree(), 5)
	for _, t := range []float64{0.0, 0.15, 0.5, 0.77, 1.0} {
		p0, err := c.PointAt(t)
		if err != nil {
			tst.Fatalf("%v", err)
		}
		p1, err := elevated.PointAt(t)
		if err != nil {
			tst.Fatalf("%v", err)
		}
		chk.Vector(tst, "point", 1e-6, []float64{p0.X, p0.Y, p0.Z}, []float64{p1.X, p1.Y, p1.Z})
	}
}

func Test_degreeElevationNoop01(tst *testing.T) {

	chk.PrintTitle("degreeelevationnoop01. target <= current degree returns input unchanged")

	c := planarCubic(tst)
	same, err := c.ElevateDegree(2)
	if err != nil {
		tst.Fatalf("%v", err)
	}
	chk.IntAssert(same.Degree(), c.Degree())
}

func Test_reverseRoundTrip01(tst *testing.T) {

	chk.PrintTitle("reverseroundtrip01. reverse(reverse(C)) == C structurally")

	c := planarCubic(tst)
	rr := c.Reverse().Reverse()
	chk.Vector(tst, "knots", 1e-12, c.u.Slice(), rr.u.Slice())
	for i := 0; i < c.NumControlPoints(); i++ {
		a, b := c.ControlPointHomogeneous(i), rr.ControlPointHomogeneous(i)
		chk.Vector(tst, "ctrl", 1e-12, []float64{a.X, a.Y, a.Z, a.W}, []float64{b.X, b.Y, b.Z, b.W})
	}
}

func Test_weightScalingInvariant01(tst *testing.T) {

	chk.PrintTitle("weightscalinginvariant01. scaling all weights by k leaves the curve unchanged")

	c := quarterCircle(tst)
	scaled := make([]numeric.Point4, c.NumControlPoints())
	for i := 0; i < c.NumControlPoints(); i++ {
		scaled[i] = c.ControlPointHomogeneous(i).Scale(3.0)
	}
	c2, err := NewFromHomogeneous(c.Degree(), c.Knots(), scaled)
	if err != nil {
		tst.Fatalf("%v", err)
	}
	for _, t := range []float64{0, 0.25, 0.5, 0.75, 1} {
		p0, err := c.PointAt(t)
		if err != nil {
			tst.Fatalf("%v", err)
		}
		p1, err := c2.PointAt(t)
		if err != nil {
			tst.Fatalf("%v", err)
		}
		chk.Vector(tst, "point", 1e-10, []float64{p0.X, p0.Y, p0.Z}, []float64{p1.X, p1.Y, p1.Z})
	}
}

func Test_scenarioB_lengthAndDivision(tst *testing.T) {

	chk.PrintTitle("scenarioB. planar cubic length, parameter-at-length round trip")

	c := planarCubic(tst)
	length, err := c.Length()
	if err != nil {
		tst.Fatalf("%v", err)
	}
	if length <= 0 {
		tst.Fatalf("expected a positive length, got %v", length)
	}

	half, err := c.ParameterAtLength(length / 2)
	if err != nil {
		tst.Fatalf("%v", err)
	}
	gotLen, err := c.LengthAt(half)
	if err != nil {
		tst.Fatalf("%v", err)
	}
	chk.Scalar(tst, "length_at(parameter_at_length(L/2))", 1e-6, gotLen, length/2)

	t0, err := c.ParameterAtLength(0)
	if err != nil {
		tst.Fatalf("%v", err)
	}
	chk.Scalar(tst, "parameter_at_length(0)", 1e-12, t0, c.Domain().T0)

	t1, err := c.ParameterAtLength(length * 2)
	if err != nil {
		tst.Fatalf("%v", err)
	}
	chk.Scalar(tst, "parameter_at_length(beyond total)", 1e-12, t1, c.Domain().T1)
}

func Test_closestPoint01(tst *testing.T) {

	chk.PrintTitle("closestpoint01. closest point on a straight line segment")

	line, err := NewLine(numeric.Point3{X: 0, Y: 0, Z: 0}, numeric.Point3{X: 10, Y: 0, Z: 0})
	if err != nil {
		tst.Fatalf("%v", err)
	}
	p, err := line.ClosestPoint(numeric.Point3{X: 4, Y: 3, Z: 0})
	if err != nil {
		tst.Fatalf("%v", err)
	}
	chk.Vector(tst, "closest", 1e-4, []float64{p.X, p.Y, p.Z}, []float64{4, 0, 0})
}

func Test_arcConstruction01(tst *testing.T) {

	chk.PrintTitle("arcconstruction01. quarter-circle arc endpoints and midpoint radius")

	c, err := NewArc(numeric.Point3{}, 2, numeric.Vec3{X: 0, Y: 0, Z: 1}, 0, math.Pi/2)
	if err != nil {
		tst.Fatalf("%v", err)
	}
	p0, err := c.PointAt(c.Domain().T0)
	if err != nil {
		tst.Fatalf("%v", err)
	}
	p1, err := c.PointAt(c.Domain().T1)
	if err != nil {
		tst.Fatalf("%v", err)
	}
	chk.Vector(tst, "start", 1e-9, []float64{p0.X, p0.Y, p0.Z}, []float64{2, 0, 0})
	chk.Vector(tst, "end", 1e-9, []float64{p1.X, p1.Y, p1.Z}, []float64{0, 2, 0})

	mid, err := c.PointAt(c.Domain().Mid())
	if err != nil {
		tst.Fatalf("%v", err)
	}
	chk.Scalar(tst, "mid radius", 1e-9, math.Hypot(mid.X, mid.Y), 2)
}

func Test_arcDegenerate01(tst *testing.T) {

	chk.PrintTitle("arcdegenerate01. zero radius is a geometric impossibility")

	_, err := NewArc(numeric.Point3{}, 0, numeric.Vec3{X: 0, Y: 0, Z: 1}, 0, math.Pi)
	if err == nil {
		tst.Errorf("expected an error for zero radius")
	} else if numeric.ClassifyError(err) != numeric.GeometricImpossibility {
		tst.Errorf("expected GeometricImpossibility, got %v", numeric.ClassifyError(err))
	}
}

func Test_splitNoInteriorDomain01(tst *testing.T) {

	chk.PrintTitle("splitnointeriordomain01. splitting at a domain endpoint fails")

	c := planarCubic(tst)
	_, _, err := c.SplitAt(c.Domain().T0)
	if err == nil {
		tst.Errorf("expected an error splitting at the domain start")
	} else if numeric.ClassifyError(err) != numeric.GeometricImpossibility {
		tst.Errorf("expected GeometricImpossibility, got %v", numeric.ClassifyError(err))
	}
}
