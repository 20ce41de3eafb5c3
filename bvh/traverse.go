package bvh

import (
	"github.com/gokernel/nurbs/curve"
	"github.com/gokernel/nurbs/numeric"
	"github.com/gokernel/nurbs/surface"
)

// CurvePair is a candidate pair of indivisible sub-curves surviving pair
// traversal (spec.md §4.5).
type CurvePair struct{ A, B curve.Curve }

// SurfacePair is the surface analogue of CurvePair.
type SurfacePair struct{ A, B surface.Surface }

// CurveSurfacePair pairs an indivisible sub-curve with an indivisible
// sub-patch.
type CurveSurfacePair struct {
	Curve   curve.Curve
	Surface surface.Surface
}

type curveCurveItem struct{ A, B CurveNode }

// PairTraverseCurves implements the curve x curve pair traversal of
// spec.md §4.5 with an explicit work-stack (spec.md §5: BVH traversal
// storage is O(depth) on an explicit stack, not the native call stack).
func PairTraverseCurves(a, b curve.Curve, tol float64, src Source) ([]CurvePair, error) {
	tol = numeric.ClampTolerance(tol)
	stack := []curveCurveItem{{NewCurveNode(a, tol), NewCurveNode(b, tol)}}
	var out []CurvePair
	for len(stack) > 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if top.A.IsEmpty() || top.B.IsEmpty() {
			continue
		}
		if !top.A.BoundingBox().Overlaps(top.B.BoundingBox(), tol) {
			continue
		}
		aDone, bDone := top.A.IsIndivisible(), top.B.IsIndivisible()
		switch {
		case aDone && bDone:
			out = append(out, CurvePair{A: top.A.Yield(), B: top.B.Yield()})
		case aDone && !bDone:
			bl, br, err := top.B.Split(src)
			if err != nil {
				return nil, err
			}
			stack = append(stack, curveCurveItem{top.A, bl}, curveCurveItem{top.A, br})
		case !aDone && bDone:
			al, ar, err := top.A.Split(src)
			if err != nil {
				return nil, err
			}
			stack = append(stack, curveCurveItem{al, top.B}, curveCurveItem{ar, top.B})
		default:
			al, ar, err := top.A.Split(src)
			if err != nil {
				return nil, err
			}
			bl, br, err := top.B.Split(src)
			if err != nil {
				return nil, err
			}
			stack = append(stack,
				curveCurveItem{al, bl}, curveCurveItem{al, br},
				curveCurveItem{ar, bl}, curveCurveItem{ar, br})
		}
	}
	return out, nil
}

type surfaceSurfaceItem struct{ A, B SurfaceNode }

// PairTraverseSurfaces is the surface x surface analogue of
// PairTraverseCurves (spec.md §4.5).
func PairTraverseSurfaces(a, b surface.Surface, tol float64, src Source) ([]SurfacePair, error) {
	tol = numeric.ClampTolerance(tol)
	stack := []surfaceSurfaceItem{{NewSurfaceNode(a, tol), NewSurfaceNode(b, tol)}}
	var out []SurfacePair
	for len(stack) > 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if top.A.IsEmpty() || top.B.IsEmpty() {
			continue
		}
		if !top.A.BoundingBox().Overlaps(top.B.BoundingBox(), tol) {
			continue
		}
		aDone, bDone := top.A.IsIndivisible(), top.B.IsIndivisible()
		switch {
		case aDone && bDone:
			out = append(out, SurfacePair{A: top.A.Yield(), B: top.B.Yield()})
		case aDone && !bDone:
			bl, br, err := top.B.Split(src)
			if err != nil {
				return nil, err
			}
			stack = append(stack, surfaceSurfaceItem{top.A, bl}, surfaceSurfaceItem{top.A, br})
		case !aDone && bDone:
			al, ar, err := top.A.Split(src)
			if err != nil {
				return nil, err
			}
			stack = append(stack, surfaceSurfaceItem{al, top.B}, surfaceSurfaceItem{ar, top.B})
		default:
			al, ar, err := top.A.Split(src)
			if err != nil {
				return nil, err
			}
			bl, br, err := top.B.Split(src)
			if err != nil {
				return nil, err
			}
			stack = append(stack,
				surfaceSurfaceItem{al, bl}, surfaceSurfaceItem{al, br},
				surfaceSurfaceItem{ar, bl}, surfaceSurfaceItem{ar, br})
		}
	}
	return out, nil
}

type curveSurfaceItem struct {
	A CurveNode
	B SurfaceNode
}

// PairTraverseCurveSurface is the mixed-payload pair traversal of
// spec.md §4.5.
func PairTraverseCurveSurface(c curve.Curve, s surface.Surface, tol float64, src Source) ([]CurveSurfacePair, error) {
	tol = numeric.ClampTolerance(tol)
	stack := []curveSurfaceItem{{NewCurveNode(c, tol), NewSurfaceNode(s, tol)}}
	var out []CurveSurfacePair
	for len(stack) > 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if top.A.IsEmpty() || top.B.IsEmpty() {
			continue
		}
		if !top.A.BoundingBox().Overlaps(top.B.BoundingBox(), tol) {
			continue
		}
		aDone, bDone := top.A.IsIndivisible(), top.B.IsIndivisible()
		switch {
		case aDone && bDone:
			out = append(out, CurveSurfacePair{Curve: top.A.Yield(), Surface: top.B.Yield()})
		case aDone && !bDone:
			bl, br, err := top.B.Split(src)
			if err != nil {
				return nil, err
			}
			stack = append(stack, curveSurfaceItem{top.A, bl}, curveSurfaceItem{top.A, br})
		case !aDone && bDone:
			al, ar, err := top.A.Split(src)
			if err != nil {
				return nil, err
			}
			stack = append(stack, curveSurfaceItem{al, top.B}, curveSurfaceItem{ar, top.B})
		default:
			al, ar, err := top.A.Split(src)
			if err != nil {
				return nil, err
			}
			bl, br, err := top.B.Split(src)
			if err != nil {
				return nil, err
			}
			stack = append(stack,
				curveSurfaceItem{al, bl}, curveSurfaceItem{al, br},
				curveSurfaceItem{ar, bl}, curveSurfaceItem{ar, br})
		}
	}
	return out, nil
}
