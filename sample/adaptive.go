package sample

import (
	"github.com/gokernel/nurbs/curve"
	"github.com/gokernel/nurbs/numeric"
)

// maxAdaptiveDepth bounds the recursive subdivision so no input can drive
// unbounded recursion (spec.md §5: "the adaptive sampler ... must use
// explicit stacks or enforce a documented depth limit (recommended >= 32)").
const maxAdaptiveDepth = 32

// AdaptiveSample samples c so that the resulting polyline approximates the
// curve to within tol: degree-1 curves return their control points and
// interior knots directly; higher-degree curves recurse, probing a
// jittered interior point to decide whether the current span is already
// near-linear (spec.md §4.4). tol <= 0 is silently clamped to
// numeric.MaxTolerance.
func AdaptiveSample(c curve.Curve, tol float64, src Source) ([]float64, []numeric.Point3, error) {
	tol = numeric.ClampTolerance(tol)
	if c.Degree() == 1 {
		return degree1Samples(c)
	}
	if src == nil {
		src = NewDefaultSource()
	}
	dom := c.Domain()
	return adaptiveRecurse(c, dom.T0, dom.T1, tol, src, 0)
}

func degree1Samples(c curve.Curve) ([]float64, []numeric.Point3, error) {
	dom := c.Domain()
	ts := append([]float64{dom.T0}, c.Knots().InteriorKnots()...)
	ts = append(ts, dom.T1)
	pts := make([]numeric.Point3, len(ts))
	for i, t := range ts {
		p, err := c.PointAt(t)
		if err != nil {
			return nil, nil, err
		}
		pts[i] = p
	}
	return ts, pts, nil
}

func adaptiveRecurse(c curve.Curve, start, end, tol float64, src Source, depth int) ([]float64, []numeric.Point3, error) {
	p1, err := c.PointAt(start)
	if err != nil {
		return nil, nil, err
	}
	p3, err := c.PointAt(end)
	if err != nil {
		return nil, nil, err
	}

	if depth >= maxAdaptiveDepth {
		return []float64{start, end}, []numeric.Point3{p1, p3}, nil
	}

	m := start + (end-start)*src.Float64(0.45, 0.55)
	p2, err := c.PointAt(m)
	if err != nil {
		return nil, nil, err
	}

	if numeric.Collinear(p1, p2, p3, tol) && p1.DistanceTo(p3) > tol {
		return []float64{start, end}, []numeric.Point3{p1, p3}, nil
	}

	mid := 0.5 * (start + end)
	leftT, leftP, err := adaptiveRecurse(c, start, mid, tol, src, depth+1)
	if err != nil {
		return nil, nil, err
	}
	rightT, rightP, err := adaptiveRecurse(c, mid, end, tol, src, depth+1)
	if err != nil {
		return nil, nil, err
	}

	ts := append(leftT, rightT[1:]...)
	pts := append(leftP, rightP[1:]...)
	return ts, pts, nil
}
