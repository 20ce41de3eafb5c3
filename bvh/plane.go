package bvh

import (
	"math"

	"github.com/gokernel/nurbs/curve"
	"github.com/gokernel/nurbs/numeric"
)

// PlaneTraverseCurve walks the curve BVH against plane, yielding the
// indivisible sub-curves that survive the signed-distance sign test
// (spec.md §4.5): a node is discarded only when both diagonal corners of
// its bounding box lie strictly (beyond tol) on the same side of the
// plane.
func PlaneTraverseCurve(c curve.Curve, plane numeric.Plane, tol float64, src Source) ([]curve.Curve, error) {
	tol = numeric.ClampTolerance(tol)
	stack := []CurveNode{NewCurveNode(c, tol)}
	var out []curve.Curve
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if n.IsEmpty() {
			continue
		}
		lo, hi := n.BoundingBox().Diagonal()
		dLo := plane.SignedDistance(lo)
		dHi := plane.SignedDistance(hi)
		sameSign := (dLo > 0 && dHi > 0) || (dLo < 0 && dHi < 0)
		if sameSign && math.Abs(dLo) > tol && math.Abs(dHi) > tol {
			continue
		}
		if n.IsIndivisible() {
			out = append(out, n.Yield())
			continue
		}
		left, right, err := n.Split(src)
		if err != nil {
			return nil, err
		}
		stack = append(stack, left, right)
	}
	return out, nil
}
