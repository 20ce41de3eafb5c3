package curve

import (
	"math"

	"github.com/gokernel/nurbs/numeric"
	"gonum.org/v1/gonum/integrate/quad"
)

// gaussLegendrePoints is the fixed quadrature order used to integrate the
// tangent-magnitude over a single Bezier span (spec.md §4.2: "integrating
// each with adaptive Gauss-Legendre quadrature"). A Bezier segment's speed
// is a smooth polynomial-over-polynomial function, so a fixed high-order
// rule converges without needing interval subdivision.
const gaussLegendrePoints = 24

func bezierLength(b Curve) float64 {
	a, last := b.u.First(), b.u.Last()
	if last-a < numeric.Epsilon {
		return 0
	}
	integrand := func(u float64) float64 {
		tan, err := b.TangentAt(u)
		if err != nil {
			return 0
		}
		return tan.Length()
	}
	return quad.Fixed(integrand, a, last, gaussLegendrePoints, quad.Legendre{}, 0)
}

// SegmentLengths decomposes c into Bezier segments and returns each segment
// paired with its arc length, the shared building block behind Length,
// LengthAt, ParameterAtLength and the division routines of sample (spec.md
// §4.2, §4.4).
func (c Curve) SegmentLengths() ([]Curve, []float64, error) {
	segs, err := c.DecomposeIntoBeziers(false)
	if err != nil {
		return nil, nil, err
	}
	lens := make([]float64, len(segs))
	for i, s := range segs {
		lens[i] = bezierLength(s)
	}
	return segs, lens, nil
}

// Length returns the total arc length of the curve over its domain.
func (c Curve) Length() (float64, error) {
	_, lens, err := c.SegmentLengths()
	if err != nil {
		return 0, err
	}
	total := 0.0
	for _, l := range lens {
		total += l
	}
	return total, nil
}

// LengthAt returns the arc length from the domain start to t.
func (c Curve) LengthAt(t float64) (float64, error) {
	dom := c.u.Domain()
	if !dom.Contains(t, numeric.Epsilon) {
		return 0, numeric.Errf(numeric.InvalidInput, "parameter %v outside domain %v", t, dom)
	}
	if t <= dom.T0+numeric.Epsilon {
		return 0, nil
	}
	if t >= dom.T1-numeric.Epsilon {
		return c.Length()
	}
	left, _, err := c.SplitAt(t)
	if err != nil {
		return 0, err
	}
	return left.Length()
}

// ParameterAtLength finds t such that LengthAt(t) == L, bisecting within
// the Bezier segment that the running prefix sum identifies as containing
// L (spec.md §4.2). L <= 0 returns the domain start; L >= Length() returns
// the domain end (spec.md §7: "division by length longer than the total
// curve returns only the endpoints").
func (c Curve) ParameterAtLength(L float64) (float64, error) {
	segs, lens, err := c.SegmentLengths()
	if err != nil {
		return 0, err
	}
	total := 0.0
	for _, l := range lens {
		total += l
	}
	if L <= 0 {
		return c.u.First(), nil
	}
	if L >= total-numeric.Epsilon {
		return c.u.Last(), nil
	}
	prefix := 0.0
	for i, l := range lens {
		if L <= prefix+l || i == len(segs)-1 {
			return bisectParamAtLength(segs[i], L-prefix, l)
		}
		prefix += l
	}
	return c.u.Last(), nil
}

func bisectParamAtLength(seg Curve, target, segLen float64) (float64, error) {
	lo, hi := seg.u.First(), seg.u.Last()
	if target <= 0 {
		return lo, nil
	}
	if target >= segLen {
		return hi, nil
	}
	for i := 0; i < 60; i++ {
		mid := 0.5 * (lo + hi)
		l, err := seg.LengthAt(mid)
		if err != nil {
			return 0, err
		}
		if math.Abs(l-target) < 1e-10 {
			return mid, nil
		}
		if l < target {
			lo = mid
		} else {
			hi = mid
		}
	}
	return 0.5 * (lo + hi), nil
}
