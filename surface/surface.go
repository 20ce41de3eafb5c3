// Package surface implements the tensor-product B-spline/NURBS surface
// core (C5): evaluation, derivatives, bi-directional knot refinement,
// iso-curve extraction and splitting.
package surface

import (
	"github.com/gokernel/nurbs/knot"
	"github.com/gokernel/nurbs/numeric"
)

// Direction selects which parameter direction an operation acts on.
type Direction int

const (
	DirectionU Direction = iota
	DirectionV
)

// Surface is the immutable 6-tuple (p_u, p_v, U, V, {Q_ij}) of spec.md §3.
type Surface struct {
	pu, pv int
	u, v   knot.Vector
	ctrl   [][]numeric.Point4 // ctrl[i][j], i=0..n (U direction), j=0..l (V direction)
}

// DegreeU returns p_u.
func (s Surface) DegreeU() int { return s.pu }

// DegreeV returns p_v.
func (s Surface) DegreeV() int { return s.pv }

// KnotsU returns the U-direction knot vector.
func (s Surface) KnotsU() knot.Vector { return s.u }

// KnotsV returns the V-direction knot vector.
func (s Surface) KnotsV() knot.Vector { return s.v }

// NumControlPointsU returns n+1.
func (s Surface) NumControlPointsU() int { return len(s.ctrl) }

// NumControlPointsV returns l+1.
func (s Surface) NumControlPointsV() int { return len(s.ctrl[0]) }

// ControlPointAt returns the dehomogenized location of control point (i,j).
func (s Surface) ControlPointAt(i, j int) numeric.Point3 { return s.ctrl[i][j].Dehomogenize() }

// ControlPointHomogeneous returns the raw 4-D control point (i,j).
func (s Surface) ControlPointHomogeneous(i, j int) numeric.Point4 { return s.ctrl[i][j] }

// Domain returns the (U, V) parameter domains.
func (s Surface) Domain() (numeric.Interval, numeric.Interval) {
	return s.u.Domain(), s.v.Domain()
}

// New builds a tensor-product NURBS surface from a rectangular grid of
// Euclidean control points with optional per-point weights (nil means
// all-ones). Rejects malformed input per spec.md §7: mismatched grid
// dimensions, bad degrees, invalid knot vectors.
func New(pu, pv int, U, V knot.Vector, grid [][]numeric.Point3, weights [][]float64) (Surface, error) {
	if pu < 1 || pv < 1 {
		return Surface{}, numeric.Errf(numeric.InvalidInput, "degrees must be >= 1, got pu=%d pv=%d", pu, pv)
	}
	if len(grid) == 0 || len(grid[0]) == 0 {
		return Surface{}, numeric.Errf(numeric.InvalidInput, "control point grid is empty")
	}
	numV := len(grid[0])
	for i, row := range grid {
		if len(row) != numV {
			return Surface{}, numeric.Errf(numeric.InvalidInput,
				"control point grid is ragged: row %d has %d points, expected %d", i, len(row), numV)
		}
	}
	if weights != nil {
		if len(weights) != len(grid) {
			return Surface{}, numeric.Errf(numeric.InvalidInput, "weights grid row count mismatch")
		}
		for i, row := range weights {
			if len(row) != numV {
				return Surface{}, numeric.Errf(numeric.InvalidInput, "weights grid is ragged at row %d", i)
			}
		}
	}
	if err := U.Validate(pu, len(grid)); err != nil {
		return Surface{}, err
	}
	if err := V.Validate(pv, numV); err != nil {
		return Surface{}, err
	}

	ctrl := make([][]numeric.Point4, len(grid))
	for i, row := range grid {
		ctrl[i] = make([]numeric.Point4, numV)
		for j, pt := range row {
			w := 1.0
			if weights != nil {
				w = weights[i][j]
			}
			if w <= 0 {
				return Surface{}, numeric.Errf(numeric.InvalidInput, "weight (%d,%d) must be > 0, got %v", i, j, w)
			}
			ctrl[i][j] = numeric.NewPoint4(pt, w)
		}
	}
	return Surface{pu: pu, pv: pv, u: U, v: V, ctrl: ctrl}, nil
}

// newRaw builds a Surface directly from an already-homogeneous control
// grid, used internally by refinement and split.
func newRaw(pu, pv int, U, V knot.Vector, ctrl [][]numeric.Point4) Surface {
	return Surface{pu: pu, pv: pv, u: U, v: V, ctrl: ctrl}
}
