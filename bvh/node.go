// Package bvh implements the lazy bounding-volume subdivision engine (C7):
// an on-demand hierarchy over curves and surfaces used to drive pairwise
// and curve/plane intersection queries (spec.md §4.5).
package bvh

import (
	"math"

	"github.com/gokernel/nurbs/curve"
	"github.com/gokernel/nurbs/numeric"
	"github.com/gokernel/nurbs/sample"
	"github.com/gokernel/nurbs/surface"
)

// Source is the injected PRNG behind the split jitter, shared with the
// adaptive sampler's contract (spec.md §9 Design Notes).
type Source = sample.Source

// CurveNode is a lazy BVH node over a curve sub-range (spec.md §3, §4.5).
// spec.md §9 models a node as "a shared read-only pointer to the curve
// plus a private sub-range"; since curve.Curve is already an immutable
// value (no owning container to alias), the sub-curve produced by SplitAt
// plays that role directly here instead of a separate range record.
type CurveNode struct {
	Curve curve.Curve
	Tol   float64
}

// NewCurveNode builds a root node over the whole curve.
func NewCurveNode(c curve.Curve, tol float64) CurveNode {
	return CurveNode{Curve: c, Tol: numeric.ClampTolerance(tol)}
}

// BoundingBox returns the node's bounding box (its control polygon's box).
func (n CurveNode) BoundingBox() numeric.Box { return n.Curve.BoundingBox() }

// IsEmpty reports whether the node's sub-domain has collapsed to a point.
func (n CurveNode) IsEmpty() bool { return n.Curve.Domain().Length() < numeric.Epsilon }

// IsIndivisible reports whether the node's parameter-domain length is
// below the stored tolerance (spec.md §4.5).
func (n CurveNode) IsIndivisible() bool { return n.Curve.Domain().Length() <= n.Tol }

// Split divides the node at a jittered point near its domain midpoint
// (spec.md §4.5: "a small random jitter to avoid degenerate splits where a
// knot coincides with the midpoint").
func (n CurveNode) Split(src Source) (CurveNode, CurveNode, error) {
	dom := n.Curve.Domain()
	t := dom.ParameterAt(src.Float64(0.45, 0.55))
	left, right, err := n.Curve.SplitAt(t)
	if err != nil {
		return CurveNode{}, CurveNode{}, err
	}
	return NewCurveNode(left, n.Tol), NewCurveNode(right, n.Tol), nil
}

// Yield returns the node's payload.
func (n CurveNode) Yield() curve.Curve { return n.Curve }

// SurfaceNode is a lazy BVH node over a surface sub-patch.
type SurfaceNode struct {
	Surface surface.Surface
	Tol     float64
}

// NewSurfaceNode builds a root node over the whole surface.
func NewSurfaceNode(s surface.Surface, tol float64) SurfaceNode {
	return SurfaceNode{Surface: s, Tol: numeric.ClampTolerance(tol)}
}

func (n SurfaceNode) BoundingBox() numeric.Box { return n.Surface.BoundingBox() }

func (n SurfaceNode) IsEmpty() bool {
	domU, domV := n.Surface.Domain()
	return domU.Length() < numeric.Epsilon || domV.Length() < numeric.Epsilon
}

func (n SurfaceNode) IsIndivisible() bool {
	domU, domV := n.Surface.Domain()
	return math.Max(domU.Length(), domV.Length()) <= n.Tol
}

// Split splits along whichever parameter direction currently has the
// larger domain length, keeping the two children roughly balanced.
func (n SurfaceNode) Split(src Source) (SurfaceNode, SurfaceNode, error) {
	domU, domV := n.Surface.Domain()
	if domU.Length() >= domV.Length() {
		t := domU.ParameterAt(src.Float64(0.45, 0.55))
		left, right, err := n.Surface.SplitU(t)
		if err != nil {
			return SurfaceNode{}, SurfaceNode{}, err
		}
		return NewSurfaceNode(left, n.Tol), NewSurfaceNode(right, n.Tol), nil
	}
	t := domV.ParameterAt(src.Float64(0.45, 0.55))
	bottom, top, err := n.Surface.SplitV(t)
	if err != nil {
		return SurfaceNode{}, SurfaceNode{}, err
	}
	return NewSurfaceNode(bottom, n.Tol), NewSurfaceNode(top, n.Tol), nil
}

func (n SurfaceNode) Yield() surface.Surface { return n.Surface }
