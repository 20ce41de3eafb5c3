package numeric

import (
	"testing"

	"github.com/cpmech/gosl/chk"
)

func Test_box01(tst *testing.T) {

	chk.PrintTitle("box01. union and intersect with invalid box")

	a := NewBox(Point3{0, 0, 0}, Point3{1, 1, 1})
	empty := EmptyBox()

	u := a.Union(empty)
	chk.Vector(tst, "union(a, empty).Min", 1e-15, []float64{u.Min.X, u.Min.Y, u.Min.Z}, []float64{0, 0, 0})
	chk.Vector(tst, "union(a, empty).Max", 1e-15, []float64{u.Max.X, u.Max.Y, u.Max.Z}, []float64{1, 1, 1})

	i := a.Intersect(empty)
	if i.IsValid() {
		tst.Errorf("intersect with empty box must stay invalid")
	}
}

func Test_box02(tst *testing.T) {

	chk.PrintTitle("box02. overlap test")

	a := NewBox(Point3{0, 0, 0}, Point3{1, 1, 1})
	b := NewBox(Point3{2, 2, 2}, Point3{3, 3, 3})
	if a.Overlaps(b, Epsilon) {
		tst.Errorf("disjoint boxes must not overlap")
	}
	c := NewBox(Point3{0.5, 0.5, 0.5}, Point3{2, 2, 2})
	if !a.Overlaps(c, Epsilon) {
		tst.Errorf("overlapping boxes must overlap")
	}
}

func Test_binomial01(tst *testing.T) {

	chk.PrintTitle("binomial01. basic binomial coefficients")

	chk.Scalar(tst, "C(4,2)", 1e-15, Binomial(4, 2), 6)
	chk.Scalar(tst, "C(5,0)", 1e-15, Binomial(5, 0), 1)
	chk.Scalar(tst, "C(5,5)", 1e-15, Binomial(5, 5), 1)
	chk.Scalar(tst, "C(5,6)", 1e-15, Binomial(5, 6), 0)
}

func Test_tolerance01(tst *testing.T) {

	chk.PrintTitle("tolerance01. clamp non-positive tolerance")

	chk.Scalar(tst, "clamp(0)", 1e-15, ClampTolerance(0), MaxTolerance)
	chk.Scalar(tst, "clamp(-1)", 1e-15, ClampTolerance(-1), MaxTolerance)
	chk.Scalar(tst, "clamp(1e-9)", 1e-15, ClampTolerance(1e-9), MinTolerance)
}

func Test_collinear01(tst *testing.T) {

	chk.PrintTitle("collinear01. collinearity tolerance")

	a := Point3{0, 0, 0}
	b := Point3{5, 0, 0}
	c := Point3{10, 0, 0}
	if !Collinear(a, b, c, Epsilon) {
		tst.Errorf("a,b,c are collinear")
	}
	d := Point3{5, 1, 0}
	if Collinear(a, d, c, Epsilon) {
		tst.Errorf("a,d,c are not collinear")
	}
}
