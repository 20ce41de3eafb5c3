// Package curve implements the B-spline/NURBS curve core (C4): evaluation,
// derivatives, knot refinement, Bezier decomposition, splitting, degree
// elevation, arc length and its inverse, closest point, and reverse.
package curve

import (
	"github.com/gokernel/nurbs/knot"
	"github.com/gokernel/nurbs/numeric"
)

// Kind tags how a Curve was constructed (spec.md §9 Design Notes: "a
// tagged variant Curve in {Nurbs, Line, Arc, Polyline}"). Every Kind
// converts to the same internal NURBS representation at construction time
// so query operations never need to dispatch on Kind (no virtual dispatch
// on the hot path).
type Kind int

const (
	KindNurbs Kind = iota
	KindLine
	KindArc
	KindPolyline
)

func (k Kind) String() string {
	switch k {
	case KindLine:
		return "Line"
	case KindArc:
		return "Arc"
	case KindPolyline:
		return "Polyline"
	default:
		return "Nurbs"
	}
}

// Curve is the immutable triple (p, U, {P_i}) of spec.md §3. Every
// operation that "modifies" a curve returns a new Curve; nothing here is
// ever mutated after New returns successfully.
type Curve struct {
	p    int
	u    knot.Vector
	ctrl []numeric.Point4
	kind Kind
}

// Degree returns p.
func (c Curve) Degree() int { return c.p }

// Knots returns the curve's knot vector.
func (c Curve) Knots() knot.Vector { return c.u }

// NumControlPoints returns n+1.
func (c Curve) NumControlPoints() int { return len(c.ctrl) }

// ControlPointAt returns the dehomogenized location of control point i.
func (c Curve) ControlPointAt(i int) numeric.Point3 { return c.ctrl[i].Dehomogenize() }

// ControlPointHomogeneous returns the raw 4-D control point i.
func (c Curve) ControlPointHomogeneous(i int) numeric.Point4 { return c.ctrl[i] }

// Weight returns the weight of control point i.
func (c Curve) Weight(i int) float64 { return c.ctrl[i].W }

// Kind returns how this curve was constructed.
func (c Curve) Kind() Kind { return c.kind }

// Domain returns [U.first, U.last].
func (c Curve) Domain() numeric.Interval { return c.u.Domain() }

// New builds a NURBS curve of degree p from a clamped knot vector and
// Euclidean control points with optional weights (nil means all-ones,
// i.e. a non-rational curve). It rejects malformed input per spec.md §7.
func New(p int, U knot.Vector, controlPoints []numeric.Point3, weights []float64) (Curve, error) {
	if p < 1 {
		return Curve{}, numeric.Errf(numeric.InvalidInput, "degree must be >= 1, got %d", p)
	}
	if len(controlPoints) == 0 {
		return Curve{}, numeric.Errf(numeric.InvalidInput, "control point list is empty")
	}
	if weights != nil && len(weights) != len(controlPoints) {
		return Curve{}, numeric.Errf(numeric.InvalidInput,
			"weights length %d does not match control points length %d", len(weights), len(controlPoints))
	}
	if err := U.Validate(p, len(controlPoints)); err != nil {
		return Curve{}, err
	}
	ctrl := make([]numeric.Point4, len(controlPoints))
	for i, pt := range controlPoints {
		w := 1.0
		if weights != nil {
			w = weights[i]
		}
		if w <= 0 {
			return Curve{}, numeric.Errf(numeric.InvalidInput, "weight %d must be > 0, got %v", i, w)
		}
		ctrl[i] = numeric.NewPoint4(pt, w)
	}
	return Curve{p: p, u: U, ctrl: ctrl, kind: KindNurbs}, nil
}

// newRaw builds a Curve directly from already-homogeneous control points,
// skipping re-validation of weights (used internally by operations that
// derive a new curve from a valid one: refinement, split, elevation,
// reverse, Bezier extraction).
func newRaw(p int, U knot.Vector, ctrl []numeric.Point4, kind Kind) Curve {
	return Curve{p: p, u: U, ctrl: ctrl, kind: kind}
}
