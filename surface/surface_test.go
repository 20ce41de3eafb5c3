package surface

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/gokernel/nurbs/knot"
	"github.com/gokernel/nurbs/numeric"
)

// biquadraticPlane builds a 3x3 biquadratic non-rational surface over the
// flat grid x in [0,20], y in [0,10], z=0 (a convenient Scenario-F style
// fixture for closest-point and bounding-box checks).
func biquadraticPlane(tst *testing.T) Surface {
	U := knot.New([]float64{0, 0, 0, 1, 1, 1})
	V := knot.New([]float64{0, 0, 0, 1, 1, 1})
	grid := [][]numeric.Point3{
		{{X: 0, Y: 0, Z: 0}, {X: 0, Y: 5, Z: 0}, {X: 0, Y: 10, Z: 0}},
		{{X: 10, Y: 0, Z: 0}, {X: 10, Y: 5, Z: 0}, {X: 10, Y: 10, Z: 0}},
		{{X: 20, Y: 0, Z: 0}, {X: 20, Y: 5, Z: 0}, {X: 20, Y: 10, Z: 0}},
	}
	s, err := New(2, 2, U, V, grid, nil)
	if err != nil {
		tst.Fatalf("setup: %v", err)
	}
	return s
}

func Test_surfaceEndpointInterpolation01(tst *testing.T) {

	chk.PrintTitle("surfaceendpointinterpolation01. clamped surface interpolates its four corners")

	s := biquadraticPlane(tst)
	corners := []struct {
		u, v float64
		want numeric.Point3
	}{
		{0, 0, numeric.Point3{X: 0, Y: 0, Z: 0}},
		{0, 1, numeric.Point3{X: 0, Y: 10, Z: 0}},
		{1, 0, numeric.Point3{X: 20, Y: 0, Z: 0}},
		{1, 1, numeric.Point3{X: 20, Y: 10, Z: 0}},
	}
	for _, c := range corners {
		p, err := s.PointAt(c.u, c.v)
		if err != nil {
			tst.Fatalf("%v", err)
		}
		chk.Vector(tst, "corner", 1e-12, []float64{p.X, p.Y, p.Z}, []float64{c.want.X, c.want.Y, c.want.Z})
	}
}

func Test_surfaceBoundingBox01(tst *testing.T) {

	chk.PrintTitle("surfaceboundingbox01. control-point hull bounds a flat biquadratic patch")

	s := biquadraticPlane(tst)
	box := s.BoundingBox()
	lo, hi := box.Diagonal()
	chk.Vector(tst, "min", 1e-12, []float64{lo.X, lo.Y, lo.Z}, []float64{0, 0, 0})
	chk.Vector(tst, "max", 1e-12, []float64{hi.X, hi.Y, hi.Z}, []float64{20, 10, 0})
}

func Test_surfaceIsoCurveMatchesEvaluation01(tst *testing.T) {

	chk.PrintTitle("surfaceisocurvematchesevaluation01. an isocurve samples identically to the surface")

	s := biquadraticPlane(tst)
	iso, err := s.IsoCurve(0.4, DirectionU)
	if err != nil {
		tst.Fatalf("%v", err)
	}
	for _, v := range []float64{0, 0.25, 0.6, 1} {
		want, err := s.PointAt(0.4, v)
		if err != nil {
			tst.Fatalf("%v", err)
		}
		got, err := iso.PointAt(v)
		if err != nil {
			tst.Fatalf("%v", err)
		}
		chk.Vector(tst, "point", 1e-9, []float64{want.X, want.Y, want.Z}, []float64{got.X, got.Y, got.Z})
	}
}

func Test_surfaceRefinePreservesGeometry01(tst *testing.T) {

	chk.PrintTitle("surfacerefinepreservesgeometry01. refining U does not move the surface")

	s := biquadraticPlane(tst)
	refined, err := s.RefineKnots([]float64{0.25, 0.75}, DirectionU)
	if err != nil {
		tst.Fatalf("%v", err)
	}
	for _, u := range []float64{0.1, 0.3, 0.5, 0.9} {
		for _, v := range []float64{0.2, 0.7} {
			p0, err := s.PointAt(u, v)
			if err != nil {
				tst.Fatalf("%v", err)
			}
			p1, err := refined.PointAt(u, v)
			if err != nil {
				tst.Fatalf("%v", err)
			}
			chk.Vector(tst, "point", 1e-9, []float64{p0.X, p0.Y, p0.Z}, []float64{p1.X, p1.Y, p1.Z})
		}
	}
}

func Test_surfaceSplitComposition01(tst *testing.T) {

	chk.PrintTitle("surfacesplitcomposition01. split_u at 0.5 reproduces S(0.5,v)")

	s := biquadraticPlane(tst)
	left, right, err := s.SplitU(0.5)
	if err != nil {
		tst.Fatalf("%v", err)
	}
	for _, v := range []float64{0, 0.3, 1} {
		want, err := s.PointAt(0.5, v)
		if err != nil {
			tst.Fatalf("%v", err)
		}
		gotLeft, err := left.PointAt(left.KnotsU().Last(), v)
		if err != nil {
			tst.Fatalf("%v", err)
		}
		gotRight, err := right.PointAt(right.KnotsU().First(), v)
		if err != nil {
			tst.Fatalf("%v", err)
		}
		chk.Vector(tst, "left edge", 1e-9, []float64{want.X, want.Y, want.Z}, []float64{gotLeft.X, gotLeft.Y, gotLeft.Z})
		chk.Vector(tst, "right edge", 1e-9, []float64{want.X, want.Y, want.Z}, []float64{gotRight.X, gotRight.Y, gotRight.Z})
	}
}

func Test_surfaceNormalIsUnit01(tst *testing.T) {

	chk.PrintTitle("surfacenormalisunit01. evaluate_at(normal) returns a unit vector")

	s := biquadraticPlane(tst)
	n, err := s.EvaluateAt(0.5, 0.5, EvaluateNormal)
	if err != nil {
		tst.Fatalf("%v", err)
	}
	length := math.Sqrt(n.X*n.X + n.Y*n.Y + n.Z*n.Z)
	chk.Scalar(tst, "|normal|", 1e-9, length, 1)
	chk.Scalar(tst, "normal.z", 1e-9, math.Abs(n.Z), 1)
}

func Test_scenarioF_closestPoint01(tst *testing.T) {

	chk.PrintTitle("scenarioF. closest point on a flat patch lies directly beneath the query")

	s := biquadraticPlane(tst)
	p, err := s.ClosestPoint(numeric.Point3{X: 12, Y: 6, Z: 3})
	if err != nil {
		tst.Fatalf("%v", err)
	}
	chk.Vector(tst, "closest", 1e-3, []float64{p.X, p.Y, p.Z}, []float64{12, 6, 0})
}
