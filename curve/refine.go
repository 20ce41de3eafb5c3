package curve

import (
	"sort"

	"github.com/gokernel/nurbs/knot"
	"github.com/gokernel/nurbs/numeric"
)

// KnotRefine inserts the given (already-sorted, possibly repeated) knots,
// each of which must lie within the active domain, and returns a new
// curve with the same degree and domain whose geometry is unchanged
// (Algorithm A5.4, Piegl & Tiller; spec.md §4.2 invariant 3 in §8).
func (c Curve) KnotRefine(ts []float64) (Curve, error) {
	if len(ts) == 0 {
		return c, nil
	}
	x := append([]float64(nil), ts...)
	sort.Float64s(x)
	dom := c.u.Domain()
	for _, u := range x {
		if !dom.Contains(u, numeric.Epsilon) {
			return Curve{}, numeric.Errf(numeric.InvalidInput, "knot to insert %v outside domain %v", u, dom)
		}
	}

	U := c.u.Slice()
	Pw := c.ctrl
	n := len(Pw) - 1
	p := c.p
	m := n + p + 1
	r := len(x) - 1

	a := c.u.FindSpan(p, n, x[0])
	b := c.u.FindSpan(p, n, x[r]) + 1

	Qw := make([]numeric.Point4, n+r+2)
	UQ := make([]float64, m+r+2)

	for j := 0; j <= a-p; j++ {
		Qw[j] = Pw[j]
	}
	for j := b - 1; j <= n; j++ {
		Qw[j+r+1] = Pw[j]
	}
	for j := 0; j <= a; j++ {
		UQ[j] = U[j]
	}
	for j := b + p; j <= m; j++ {
		UQ[j+r+1] = U[j]
	}

	i := b + p - 1
	k := b + p + r
	for j := r; j >= 0; j-- {
		for x[j] <= U[i] && i > a {
			Qw[k-p-1] = Pw[i-p-1]
			UQ[k] = U[i]
			k--
			i--
		}
		Qw[k-p-1] = Qw[k-p]
		for l := 1; l <= p; l++ {
			ind := k - p + l
			alfa := UQ[k+l] - x[j]
			if abs(alfa) < numeric.Epsilon {
				Qw[ind-1] = Qw[ind]
			} else {
				alfa = alfa / (UQ[k+l] - U[i-p+l])
				Qw[ind-1] = Qw[ind-1].Scale(alfa).Add(Qw[ind].Scale(1 - alfa))
			}
		}
		UQ[k] = x[j]
		k--
	}

	return newRaw(p, knot.New(UQ), Qw, c.kind), nil
}

func abs(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}
