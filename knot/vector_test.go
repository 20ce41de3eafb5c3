package knot

import (
	"testing"

	"github.com/cpmech/gosl/chk"
)

func Test_span01(tst *testing.T) {

	chk.PrintTitle("span01. find span on a clamped quadratic vector")

	// Piegl & Tiller example 2.3: p=2, n=7 (8 control points)
	U := New([]float64{0, 0, 0, 1, 2, 3, 4, 4, 5, 5, 5})
	p, n := 2, 7

	tests := []struct {
		u    float64
		want int
	}{
		{0, 2}, {1, 3}, {2.5, 4}, {5, 7},
	}
	for _, t := range tests {
		got := U.FindSpan(p, n, t.u)
		chk.IntAssert(got, t.want)
	}
}

func Test_multiplicity01(tst *testing.T) {

	chk.PrintTitle("multiplicity01. clamped multiplicities")

	U := New([]float64{0, 0, 0, 0.5, 1, 1, 1})
	chk.IntAssert(U.Multiplicity(0), 3)
	chk.IntAssert(U.Multiplicity(0.5), 1)
	chk.IntAssert(U.Multiplicity(1), 3)
}

func Test_validate01(tst *testing.T) {

	chk.PrintTitle("validate01. clamped cubic with 4 control points")

	U := New([]float64{0, 0, 0, 0, 1, 1, 1, 1})
	if err := U.Validate(3, 4); err != nil {
		tst.Errorf("expected valid knot vector, got: %v", err)
	}

	bad := New([]float64{0, 0, 0, 1, 1, 1})
	if err := bad.Validate(3, 4); err == nil {
		tst.Errorf("expected invalid-length error")
	}
}

func Test_reverse01(tst *testing.T) {

	chk.PrintTitle("reverse01. reverse round trip")

	U := New([]float64{0, 0, 0, 1, 2, 3, 3, 3})
	R := U.Reverse()
	RR := R.Reverse()
	chk.Vector(tst, "U", 1e-15, U.Slice(), RR.Slice())
}

func Test_normalize01(tst *testing.T) {

	chk.PrintTitle("normalize01. rescale onto [0,1]")

	U := New([]float64{2, 2, 2, 4, 6, 8, 8, 8})
	N := U.Normalize()
	chk.Scalar(tst, "first", 1e-15, N.First(), 0)
	chk.Scalar(tst, "last", 1e-15, N.Last(), 1)
}

func Test_interiorknots01(tst *testing.T) {

	chk.PrintTitle("interiorknots01. distinct interior knots")

	U := New([]float64{0, 0, 0, 1, 1, 2, 3, 3, 4, 4, 4})
	ik := U.InteriorKnots()
	chk.Vector(tst, "interior", 1e-15, ik, []float64{1, 2, 3})
}
