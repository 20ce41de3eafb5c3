package curve

import (
	"github.com/gokernel/nurbs/knot"
	"github.com/gokernel/nurbs/numeric"
)

// SplitAt splits the curve at parameter t into two curves of the same
// degree whose union reproduces the original geometry (spec.md §4.2): the
// parameter is inserted with multiplicity p+1, then the knot vector and
// control polygon are partitioned at the resulting span.
func (c Curve) SplitAt(t float64) (left, right Curve, err error) {
	dom := c.u.Domain()
	if t <= dom.T0+numeric.Epsilon || t >= dom.T1-numeric.Epsilon {
		return Curve{}, Curve{}, numeric.Errf(numeric.GeometricImpossibility,
			"split parameter %v leaves no interior domain in %v", t, dom)
	}

	mult := c.u.Multiplicity(t)
	insertCount := c.p + 1 - mult
	refined := c
	if insertCount > 0 {
		toInsert := make([]float64, insertCount)
		for i := range toInsert {
			toInsert[i] = t
		}
		refined, err = c.KnotRefine(toInsert)
		if err != nil {
			return Curve{}, Curve{}, err
		}
	}

	nPrime := len(refined.ctrl) - 1
	s := refined.u.FindSpan(c.p, nPrime, t)
	p := c.p

	Uall := refined.u.Slice()
	leftU := append([]float64(nil), Uall[0:s+1]...)
	rightU := append([]float64(nil), Uall[s-p:]...)

	leftCtrl := append([]numeric.Point4(nil), refined.ctrl[0:s-p]...)
	rightCtrl := append([]numeric.Point4(nil), refined.ctrl[s-p:]...)

	left = newRaw(p, knot.New(leftU), leftCtrl, c.kind)
	right = newRaw(p, knot.New(rightU), rightCtrl, c.kind)
	return left, right, nil
}
