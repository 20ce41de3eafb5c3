package curve

import "github.com/gokernel/nurbs/numeric"

// Reverse reverses the control-point list and reverse-maps the knot
// vector (spec.md §4.2). reverse(reverse(C)) reproduces C structurally
// (invariant 7, spec.md §8).
func (c Curve) Reverse() Curve {
	n := len(c.ctrl)
	out := make([]numeric.Point4, n)
	for i := 0; i < n; i++ {
		out[i] = c.ctrl[n-1-i]
	}
	return newRaw(c.p, c.u.Reverse(), out, c.kind)
}
