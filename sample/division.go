package sample

import (
	"github.com/gokernel/nurbs/curve"
	"github.com/gokernel/nurbs/numeric"
)

// DivideByCount returns n+1 parameters splitting the curve into n segments
// of equal arc length, paired with their cumulative lengths (spec.md
// §4.4). Both returned slices are monotone non-decreasing and include both
// endpoints.
func DivideByCount(c curve.Curve, n int) ([]float64, []float64, error) {
	if n < 1 {
		return nil, nil, numeric.Errf(numeric.InvalidInput, "division count must be >= 1, got %d", n)
	}
	total, err := c.Length()
	if err != nil {
		return nil, nil, err
	}
	dom := c.Domain()
	ts := make([]float64, n+1)
	lens := make([]float64, n+1)
	ts[0], lens[0] = dom.T0, 0
	for i := 1; i < n; i++ {
		target := total * float64(i) / float64(n)
		t, err := c.ParameterAtLength(target)
		if err != nil {
			return nil, nil, err
		}
		ts[i], lens[i] = t, target
	}
	ts[n], lens[n] = dom.T1, total
	return ts, lens, nil
}

// DivideByLength walks the curve in steps of arc length L, returning the
// parameters and cumulative lengths reached, always including both
// endpoints. A step longer than the curve's total length returns only the
// two endpoints (spec.md §7).
func DivideByLength(c curve.Curve, L float64) ([]float64, []float64, error) {
	if L <= 0 {
		return nil, nil, numeric.Errf(numeric.InvalidInput, "division length must be > 0, got %v", L)
	}
	total, err := c.Length()
	if err != nil {
		return nil, nil, err
	}
	dom := c.Domain()
	if L >= total {
		return []float64{dom.T0, dom.T1}, []float64{0, total}, nil
	}
	ts := []float64{dom.T0}
	lens := []float64{0}
	for target := L; target < total-numeric.Epsilon; target += L {
		t, err := c.ParameterAtLength(target)
		if err != nil {
			return nil, nil, err
		}
		ts = append(ts, t)
		lens = append(lens, target)
	}
	ts = append(ts, dom.T1)
	lens = append(lens, total)
	return ts, lens, nil
}
