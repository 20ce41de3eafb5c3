package curve

import (
	"math"

	"github.com/gokernel/nurbs/numeric"
	"github.com/gokernel/nurbs/solve"
)

// closestPointCoarseSamples is the regular-sample resolution used to seed
// the minimizer (spec.md §4.2: "Coarse step: sample the curve regularly
// and pick the sample minimizing squared distance").
const closestPointCoarseSamples = 64

func clampToDomain(t float64, dom numeric.Interval) float64 {
	if t < dom.T0 {
		return dom.T0
	}
	if t > dom.T1 {
		return dom.T1
	}
	return t
}

// ClosestParameter returns the parameter t minimizing ||C(t)-p||^2: a
// coarse regular-sample seed refined by the quasi-Newton minimizer with
// objective f(t) = ||C(t)-p||^2 and gradient f'(t) = 2(C(t)-p).C'(t)
// (spec.md §4.2).
func (c Curve) ClosestParameter(p numeric.Point3) (float64, error) {
	dom := c.u.Domain()
	bestT := dom.T0
	bestD := math.MaxFloat64
	for i := 0; i < closestPointCoarseSamples; i++ {
		t := dom.ParameterAt(float64(i) / float64(closestPointCoarseSamples-1))
		pt, err := c.PointAt(t)
		if err != nil {
			continue
		}
		d := pt.DistanceTo(p)
		if d < bestD {
			bestD, bestT = d, t
		}
	}

	objective := func(x []float64) float64 {
		t := clampToDomain(x[0], dom)
		pt, err := c.PointAt(t)
		if err != nil {
			return math.NaN()
		}
		return pt.Sub(p).LengthSquared()
	}
	gradient := func(x []float64) []float64 {
		t := clampToDomain(x[0], dom)
		pt, err := c.PointAt(t)
		if err != nil {
			return []float64{0}
		}
		tan, err := c.TangentAt(t)
		if err != nil {
			return []float64{0}
		}
		return []float64{2 * pt.Sub(p).Dot(tan)}
	}

	res := solve.Minimize(objective, gradient, []float64{bestT}, solve.DefaultOptions())
	return clampToDomain(res.X[0], dom), nil
}

// ClosestPoint returns C(ClosestParameter(p)).
func (c Curve) ClosestPoint(p numeric.Point3) (numeric.Point3, error) {
	t, err := c.ClosestParameter(p)
	if err != nil {
		return numeric.Point3{}, err
	}
	return c.PointAt(t)
}
