package surface

import (
	"math"

	"github.com/gokernel/nurbs/numeric"
	"github.com/gokernel/nurbs/solve"
)

// gridSamplesPerDirection is the regular-grid resolution used to seed the
// minimizer (spec.md §4.3: same two-phase method as curves).
const gridSamplesPerDirection = 16

func clampInterval(t float64, dom numeric.Interval) float64 {
	if t < dom.T0 {
		return dom.T0
	}
	if t > dom.T1 {
		return dom.T1
	}
	return t
}

// ClosestParameter returns (u, v) minimizing ||S(u,v)-p||^2: a coarse
// regular-grid seed refined by the quasi-Newton minimizer (spec.md §4.3).
func (s Surface) ClosestParameter(p numeric.Point3) (float64, float64, error) {
	domU, domV := s.Domain()
	bestU, bestV := domU.T0, domV.T0
	bestD := math.MaxFloat64
	for i := 0; i < gridSamplesPerDirection; i++ {
		uu := domU.ParameterAt(float64(i) / float64(gridSamplesPerDirection-1))
		for j := 0; j < gridSamplesPerDirection; j++ {
			vv := domV.ParameterAt(float64(j) / float64(gridSamplesPerDirection-1))
			pt, err := s.PointAt(uu, vv)
			if err != nil {
				continue
			}
			d := pt.DistanceTo(p)
			if d < bestD {
				bestD, bestU, bestV = d, uu, vv
			}
		}
	}

	objective := func(x []float64) float64 {
		uu := clampInterval(x[0], domU)
		vv := clampInterval(x[1], domV)
		pt, err := s.PointAt(uu, vv)
		if err != nil {
			return math.NaN()
		}
		return pt.Sub(p).LengthSquared()
	}
	gradient := func(x []float64) []float64 {
		uu := clampInterval(x[0], domU)
		vv := clampInterval(x[1], domV)
		ders, err := s.Derivatives(uu, vv, 1)
		if err != nil {
			return []float64{0, 0}
		}
		diff := ders[0][0].Sub(p)
		return []float64{2 * diff.Dot(ders[1][0]), 2 * diff.Dot(ders[0][1])}
	}

	res := solve.Minimize(objective, gradient, []float64{bestU, bestV}, solve.DefaultOptions())
	return clampInterval(res.X[0], domU), clampInterval(res.X[1], domV), nil
}

// ClosestPoint returns S(ClosestParameter(p)).
func (s Surface) ClosestPoint(p numeric.Point3) (numeric.Point3, error) {
	u, v, err := s.ClosestParameter(p)
	if err != nil {
		return numeric.Point3{}, err
	}
	return s.PointAt(u, v)
}
