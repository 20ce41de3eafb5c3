package sample

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/gokernel/nurbs/curve"
	"github.com/gokernel/nurbs/knot"
	"github.com/gokernel/nurbs/numeric"
)

func quarterCircle(tst *testing.T) curve.Curve {
	U := knot.New([]float64{0, 0, 0, 1, 1, 1})
	pts := []numeric.Point3{{X: 1, Y: 0, Z: 0}, {X: 1, Y: 1, Z: 0}, {X: 0, Y: 1, Z: 0}}
	c, err := curve.New(2, U, pts, []float64{1, 1, 2})
	if err != nil {
		tst.Fatalf("setup: %v", err)
	}
	return c
}

func planarCubic(tst *testing.T) curve.Curve {
	U := knot.New([]float64{0, 0, 0, 0, 1.0 / 3, 2.0 / 3, 1, 1, 1, 1})
	pts := []numeric.Point3{
		{X: 5, Y: 5, Z: 0}, {X: 10, Y: 10, Z: 0}, {X: 20, Y: 15, Z: 0},
		{X: 35, Y: 15, Z: 0}, {X: 45, Y: 10, Z: 0}, {X: 50, Y: 5, Z: 0},
	}
	c, err := curve.New(3, U, pts, nil)
	if err != nil {
		tst.Fatalf("setup: %v", err)
	}
	return c
}

func Test_regularSampleEndpoints01(tst *testing.T) {

	chk.PrintTitle("regularsampleendpoints01. regular sampling always includes both endpoints")

	c := quarterCircle(tst)
	ts, pts, err := RegularSample(c, 9)
	if err != nil {
		tst.Fatalf("%v", err)
	}
	chk.IntAssert(len(ts), 9)
	chk.IntAssert(len(pts), 9)
	chk.Scalar(tst, "t0", 1e-12, ts[0], c.Domain().T0)
	chk.Scalar(tst, "t_last", 1e-12, ts[len(ts)-1], c.Domain().T1)
	for i := 1; i < len(ts); i++ {
		if ts[i] < ts[i-1] {
			tst.Errorf("parameters are not monotone at index %d", i)
		}
	}
}

func Test_regularSampleSingle01(tst *testing.T) {

	chk.PrintTitle("regularsamplesingle01. n=1 returns the domain start")

	c := quarterCircle(tst)
	ts, _, err := RegularSample(c, 1)
	if err != nil {
		tst.Fatalf("%v", err)
	}
	chk.IntAssert(len(ts), 1)
	chk.Scalar(tst, "t0", 1e-12, ts[0], c.Domain().T0)
}

func Test_adaptiveSampleDegree1ReturnsControlPoints01(tst *testing.T) {

	chk.PrintTitle("adaptivesampledegree1returnscontrolpoints01. degree-1 adaptive sample is the control polygon")

	pts := []numeric.Point3{{X: 0, Y: 0, Z: 0}, {X: 5, Y: 1, Z: 0}, {X: 10, Y: 0, Z: 0}}
	c, err := curve.NewPolyline(pts)
	if err != nil {
		tst.Fatalf("setup: %v", err)
	}
	ts, samples, err := AdaptiveSample(c, 1e-4, nil)
	if err != nil {
		tst.Fatalf("%v", err)
	}
	chk.IntAssert(len(ts), 3)
	for i, want := range pts {
		chk.Vector(tst, "point", 1e-9, []float64{samples[i].X, samples[i].Y, samples[i].Z}, []float64{want.X, want.Y, want.Z})
	}
}

func Test_adaptiveSamplePointsOnCurve01(tst *testing.T) {

	chk.PrintTitle("adaptivesamplepointsoncurve01. every adaptive sample is C(t) at its returned parameter")

	c := quarterCircle(tst)
	tol := 1e-3
	ts, pts, err := AdaptiveSample(c, tol, NewDefaultSource())
	if err != nil {
		tst.Fatalf("%v", err)
	}
	if len(ts) < 2 {
		tst.Fatalf("expected at least 2 samples, got %d", len(ts))
	}
	// every generated vertex must lie exactly on the curve (it is C(t) for
	// some returned t); this checks the pairing is self-consistent.
	for i, t := range ts {
		p, err := c.PointAt(t)
		if err != nil {
			tst.Fatalf("%v", err)
		}
		chk.Vector(tst, "point", 1e-9, []float64{pts[i].X, pts[i].Y, pts[i].Z}, []float64{p.X, p.Y, p.Z})
	}
}

func Test_divideByCount01(tst *testing.T) {

	chk.PrintTitle("dividebycount01. divide_by_count produces n equal-length segments")

	c := planarCubic(tst)
	ts, lens, err := DivideByCount(c, 4)
	if err != nil {
		tst.Fatalf("%v", err)
	}
	chk.IntAssert(len(ts), 5)
	total, err := c.Length()
	if err != nil {
		tst.Fatalf("%v", err)
	}
	for i := 1; i < len(lens); i++ {
		chk.Scalar(tst, "segment length", 1e-3, lens[i]-lens[i-1], total/4)
	}
	chk.Scalar(tst, "t0", 1e-12, ts[0], c.Domain().T0)
	chk.Scalar(tst, "t_last", 1e-12, ts[len(ts)-1], c.Domain().T1)
}

func Test_divideByLengthBeyondTotal01(tst *testing.T) {

	chk.PrintTitle("dividebylengthbeyondtotal01. a step longer than the curve returns only the endpoints")

	c := planarCubic(tst)
	total, err := c.Length()
	if err != nil {
		tst.Fatalf("%v", err)
	}
	ts, lens, err := DivideByLength(c, total*10)
	if err != nil {
		tst.Fatalf("%v", err)
	}
	chk.IntAssert(len(ts), 2)
	chk.Scalar(tst, "lens[1]", 1e-9, lens[1], total)
}
