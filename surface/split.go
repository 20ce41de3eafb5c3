package surface

import (
	"github.com/gokernel/nurbs/curve"
	"github.com/gokernel/nurbs/numeric"
)

// SplitU splits the surface at parameter t in the U direction, treating
// each V-row as a curve (spec.md §4.3).
func (s Surface) SplitU(t float64) (left, right Surface, err error) {
	numV := len(s.ctrl[0])
	var leftU, rightU curve.Curve
	var leftGrid, rightGrid [][]numeric.Point4
	for j := 0; j < numV; j++ {
		col := make([]numeric.Point4, len(s.ctrl))
		for i := range s.ctrl {
			col[i] = s.ctrl[i][j]
		}
		c, e := curve.NewFromHomogeneous(s.pu, s.u, col)
		if e != nil {
			return Surface{}, Surface{}, e
		}
		lc, rc, e := c.SplitAt(t)
		if e != nil {
			return Surface{}, Surface{}, e
		}
		if j == 0 {
			leftU, rightU = lc, rc
			leftGrid = make([][]numeric.Point4, lc.NumControlPoints())
			rightGrid = make([][]numeric.Point4, rc.NumControlPoints())
			for i := range leftGrid {
				leftGrid[i] = make([]numeric.Point4, numV)
			}
			for i := range rightGrid {
				rightGrid[i] = make([]numeric.Point4, numV)
			}
		}
		for i := 0; i < lc.NumControlPoints(); i++ {
			leftGrid[i][j] = lc.ControlPointHomogeneous(i)
		}
		for i := 0; i < rc.NumControlPoints(); i++ {
			rightGrid[i][j] = rc.ControlPointHomogeneous(i)
		}
	}
	left = newRaw(s.pu, s.pv, leftU.Knots(), s.v, leftGrid)
	right = newRaw(s.pu, s.pv, rightU.Knots(), s.v, rightGrid)
	return left, right, nil
}

// SplitV splits the surface at parameter t in the V direction, treating
// each U-row as a curve (spec.md §4.3).
func (s Surface) SplitV(t float64) (bottom, top Surface, err error) {
	numU := len(s.ctrl)
	var bottomV, topV curve.Curve
	var bottomGrid, topGrid [][]numeric.Point4
	bottomGrid = make([][]numeric.Point4, numU)
	topGrid = make([][]numeric.Point4, numU)
	for i := 0; i < numU; i++ {
		row := make([]numeric.Point4, len(s.ctrl[i]))
		copy(row, s.ctrl[i])
		c, e := curve.NewFromHomogeneous(s.pv, s.v, row)
		if e != nil {
			return Surface{}, Surface{}, e
		}
		lc, rc, e := c.SplitAt(t)
		if e != nil {
			return Surface{}, Surface{}, e
		}
		if i == 0 {
			bottomV, topV = lc, rc
		}
		bottomGrid[i] = make([]numeric.Point4, lc.NumControlPoints())
		for j := 0; j < lc.NumControlPoints(); j++ {
			bottomGrid[i][j] = lc.ControlPointHomogeneous(j)
		}
		topGrid[i] = make([]numeric.Point4, rc.NumControlPoints())
		for j := 0; j < rc.NumControlPoints(); j++ {
			topGrid[i][j] = rc.ControlPointHomogeneous(j)
		}
	}
	bottom = newRaw(s.pu, s.pv, s.u, bottomV.Knots(), bottomGrid)
	top = newRaw(s.pu, s.pv, s.u, topV.Knots(), topGrid)
	return bottom, top, nil
}

// SplitBoth splits at (tu, tv) in both directions at once, defined as
// Split(Split(.,V),U) applied to each half (spec.md §4.3): it returns the
// four quadrants (uLow,vLow), (uHigh,vLow), (uLow,vHigh), (uHigh,vHigh).
func (s Surface) SplitBoth(tu, tv float64) (q00, q01, q10, q11 Surface, err error) {
	bottom, top, err := s.SplitV(tv)
	if err != nil {
		return
	}
	q00, q01, err = bottom.SplitU(tu)
	if err != nil {
		return
	}
	q10, q11, err = top.SplitU(tu)
	return
}
