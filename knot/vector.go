// Package knot implements the ordered, non-decreasing knot vector (C2):
// span lookup, multiplicity, normalization and reversal.
package knot

import (
	"sort"

	"github.com/gokernel/nurbs/numeric"
)

// Vector is an immutable non-decreasing sequence of knots. The zero value
// is not meaningful; build one with New.
type Vector struct {
	u []float64
}

// New copies values into a Vector. It does not validate clamping or
// multiplicity against a degree/control-point count — use Validate for
// that once the owning curve/surface knows p and n.
func New(values []float64) Vector {
	u := make([]float64, len(values))
	copy(u, values)
	return Vector{u: u}
}

// Len returns the number of knots (m+1 in spec.md §3 notation).
func (v Vector) Len() int { return len(v.u) }

// At returns the i-th knot.
func (v Vector) At(i int) float64 { return v.u[i] }

// Slice returns the raw backing values; callers must not mutate the
// returned slice — Vector is value data (spec.md §9).
func (v Vector) Slice() []float64 { return v.u }

// First returns u_0.
func (v Vector) First() float64 { return v.u[0] }

// Last returns u_m.
func (v Vector) Last() float64 { return v.u[len(v.u)-1] }

// Domain returns [First, Last] as an Interval, the clamped curve/surface
// domain in that direction.
func (v Vector) Domain() numeric.Interval {
	return numeric.Interval{T0: v.First(), T1: v.Last()}
}

// Validate checks the invariants of spec.md §3: length m+1 = n+p+2,
// non-decreasing, clamped (first/last knot repeated p+1 times), interior
// multiplicity at most p.
func (v Vector) Validate(p, numControlPoints int) error {
	n := numControlPoints - 1
	want := n + p + 2
	if len(v.u) != want {
		return numeric.Errf(numeric.InvalidInput,
			"knot vector length %d does not match n+p+2=%d (n=%d, p=%d)", len(v.u), want, n, p)
	}
	for i := 1; i < len(v.u); i++ {
		if v.u[i] < v.u[i-1] {
			return numeric.Errf(numeric.InvalidInput, "knot vector is not non-decreasing at index %d", i)
		}
	}
	if v.Multiplicity(v.First()) != p+1 {
		return numeric.Errf(numeric.InvalidInput, "knot vector is not clamped at the start (degree %d)", p)
	}
	if v.Multiplicity(v.Last()) != p+1 {
		return numeric.Errf(numeric.InvalidInput, "knot vector is not clamped at the end (degree %d)", p)
	}
	i := p + 1
	for i <= n {
		u := v.u[i]
		mult := v.Multiplicity(u)
		if mult > p {
			return numeric.Errf(numeric.InvalidInput, "interior knot %v has multiplicity %d > degree %d", u, mult, p)
		}
		i += mult
	}
	return nil
}

// Multiplicity returns how many times u occurs in the vector (within
// numeric.Epsilon).
func (v Vector) Multiplicity(u float64) int {
	count := 0
	for _, x := range v.u {
		if abs(x-u) < numeric.Epsilon {
			count++
		}
	}
	return count
}

// FindSpan locates the span k in [p, n] such that U[k] <= u < U[k+1],
// returning n at the closed right endpoint, per spec.md §4.1. n is the
// index of the last control point (numControlPoints-1).
func (v Vector) FindSpan(p, n int, u float64) int {
	if u >= v.u[n+1] {
		return n
	}
	if u <= v.u[p] {
		return p
	}
	low, high := p, n+1
	mid := (low + high) / 2
	for u < v.u[mid] || u >= v.u[mid+1] {
		if u < v.u[mid] {
			high = mid
		} else {
			low = mid
		}
		mid = (low + high) / 2
	}
	return mid
}

// Normalize rescales the vector onto [0,1], preserving relative spacing.
// Used by decompose_into_beziers(normalize=true).
func (v Vector) Normalize() Vector {
	a, b := v.First(), v.Last()
	span := b - a
	out := make([]float64, len(v.u))
	if span < numeric.Epsilon {
		copy(out, v.u)
		return Vector{u: out}
	}
	for i, x := range v.u {
		out[i] = (x - a) / span
	}
	return Vector{u: out}
}

// Reverse reverse-maps the vector: for U on [a,b], returns a+b-reverse(U),
// per spec.md §4.2 Reverse.
func (v Vector) Reverse() Vector {
	a, b := v.First(), v.Last()
	n := len(v.u)
	out := make([]float64, n)
	for i := 0; i < n; i++ {
		out[i] = a + b - v.u[n-1-i]
	}
	return Vector{u: out}
}

// InteriorKnots returns the distinct interior knots (strictly between
// First and Last), each listed once, in increasing order. Used by Bezier
// decomposition and the degree-1 adaptive-sample fast path.
func (v Vector) InteriorKnots() []float64 {
	var out []float64
	a, b := v.First(), v.Last()
	for _, x := range v.u {
		if x <= a+numeric.Epsilon || x >= b-numeric.Epsilon {
			continue
		}
		if len(out) == 0 || abs(x-out[len(out)-1]) > numeric.Epsilon {
			out = append(out, x)
		}
	}
	return out
}

// Insert returns the sorted merge of base with the knots in extra
// (duplicates kept, so multiplicities stack). curve.KnotRefine builds its
// refined vector directly and does not call it.
func Insert(base []float64, extra []float64) []float64 {
	out := make([]float64, 0, len(base)+len(extra))
	out = append(out, base...)
	out = append(out, extra...)
	sort.Float64s(out)
	return out
}

func abs(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}
