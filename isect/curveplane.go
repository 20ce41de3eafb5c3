package isect

import (
	"sort"

	"github.com/gokernel/nurbs/bvh"
	"github.com/gokernel/nurbs/curve"
	"github.com/gokernel/nurbs/numeric"
	"github.com/gokernel/nurbs/solve"
)

func clampTo(t float64, dom numeric.Interval) float64 {
	if t < dom.T0 {
		return dom.T0
	}
	if t > dom.T1 {
		return dom.T1
	}
	return t
}

// CurvePlane traverses the curve BVH against plane and, for each surviving
// near-planar sub-curve, refines a 1-D minimization of
// plane.SignedDistance(C(t))^2 to locate the crossing parameter (spec.md
// §4.6). Parameters are deduplicated by proximity and returned sorted.
func CurvePlane(c curve.Curve, plane numeric.Plane, tol float64, src bvh.Source) ([]float64, error) {
	tol = numeric.ClampTolerance(tol)
	candidates, err := bvh.PlaneTraverseCurve(c, plane, tol, src)
	if err != nil {
		return nil, err
	}

	var params []float64
	for _, sub := range candidates {
		dom := sub.Domain()
		objective := func(x []float64) float64 {
			t := clampTo(x[0], dom)
			p, err := sub.PointAt(t)
			if err != nil {
				return 0
			}
			d := plane.SignedDistance(p)
			return d * d
		}
		gradient := func(x []float64) []float64 {
			t := clampTo(x[0], dom)
			p, err := sub.PointAt(t)
			if err != nil {
				return []float64{0}
			}
			tan, err := sub.TangentAt(t)
			if err != nil {
				return []float64{0}
			}
			d := plane.SignedDistance(p)
			return []float64{2 * d * plane.Normal.Dot(tan)}
		}
		res := solve.Minimize(objective, gradient, []float64{dom.Mid()}, solve.DefaultOptions())
		t := clampTo(res.X[0], dom)
		p, err := c.PointAt(t)
		if err == nil && abs(plane.SignedDistance(p)) <= tol {
			params = append(params, t)
		}
	}
	return dedupParams(params, tol), nil
}

func abs(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}

func dedupParams(params []float64, tol float64) []float64 {
	if len(params) == 0 {
		return nil
	}
	sort.Float64s(params)
	out := []float64{params[0]}
	for _, t := range params[1:] {
		if t-out[len(out)-1] > tol {
			out = append(out, t)
		}
	}
	return out
}
