package sample

import (
	"github.com/cpmech/gosl/utl"
	"github.com/gokernel/nurbs/curve"
	"github.com/gokernel/nurbs/numeric"
)

// RegularSample returns n parameter values evenly spaced across the
// curve's domain (t_i = U.first + i*(U.last-U.first)/(n-1)) and their
// corresponding points (spec.md §4.4).
func RegularSample(c curve.Curve, n int) ([]float64, []numeric.Point3, error) {
	if n < 1 {
		return nil, nil, numeric.Errf(numeric.InvalidInput, "sample count must be >= 1, got %d", n)
	}
	dom := c.Domain()
	indices := utl.IntRange(n)
	ts := make([]float64, n)
	pts := make([]numeric.Point3, n)
	if n == 1 {
		ts[0] = dom.T0
	} else {
		for _, i := range indices {
			ts[i] = dom.ParameterAt(float64(i) / float64(n-1))
		}
	}
	for _, i := range indices {
		p, err := c.PointAt(ts[i])
		if err != nil {
			return nil, nil, err
		}
		pts[i] = p
	}
	return ts, pts, nil
}
