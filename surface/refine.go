package surface

import (
	"github.com/gokernel/nurbs/curve"
	"github.com/gokernel/nurbs/numeric"
)

// RefineKnots inserts ts into the given direction, treating every opposite-
// direction row (or column) as a curve, refining it independently and
// reassembling the grid (spec.md §4.3). The opposite-direction knot vector
// is unchanged.
func (s Surface) RefineKnots(ts []float64, dir Direction) (Surface, error) {
	switch dir {
	case DirectionU:
		numV := len(s.ctrl[0])
		var newU curve.Curve
		var newGrid [][]numeric.Point4
		for j := 0; j < numV; j++ {
			col := make([]numeric.Point4, len(s.ctrl))
			for i := range s.ctrl {
				col[i] = s.ctrl[i][j]
			}
			c, err := curve.NewFromHomogeneous(s.pu, s.u, col)
			if err != nil {
				return Surface{}, err
			}
			refined, err := c.KnotRefine(ts)
			if err != nil {
				return Surface{}, err
			}
			if j == 0 {
				newU = refined
				newGrid = make([][]numeric.Point4, refined.NumControlPoints())
				for i := range newGrid {
					newGrid[i] = make([]numeric.Point4, numV)
				}
			}
			for i := 0; i < refined.NumControlPoints(); i++ {
				newGrid[i][j] = refined.ControlPointHomogeneous(i)
			}
		}
		return newRaw(s.pu, s.pv, newU.Knots(), s.v, newGrid), nil

	case DirectionV:
		numU := len(s.ctrl)
		var newV curve.Curve
		var newGrid [][]numeric.Point4
		for i := 0; i < numU; i++ {
			row := make([]numeric.Point4, len(s.ctrl[i]))
			copy(row, s.ctrl[i])
			c, err := curve.NewFromHomogeneous(s.pv, s.v, row)
			if err != nil {
				return Surface{}, err
			}
			refined, err := c.KnotRefine(ts)
			if err != nil {
				return Surface{}, err
			}
			if i == 0 {
				newV = refined
				newGrid = make([][]numeric.Point4, numU)
			}
			newGrid[i] = make([]numeric.Point4, refined.NumControlPoints())
			for j := 0; j < refined.NumControlPoints(); j++ {
				newGrid[i][j] = refined.ControlPointHomogeneous(j)
			}
		}
		return newRaw(s.pu, s.pv, s.u, newV.Knots(), newGrid), nil

	default:
		return Surface{}, numeric.Errf(numeric.InvalidInput, "unknown direction %d", dir)
	}
}
