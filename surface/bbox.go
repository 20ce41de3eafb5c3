package surface

import "github.com/gokernel/nurbs/numeric"

// BoundingBox returns the bounding box of the control net, which always
// contains the surface (the convex hull property), matching curve's use
// of the control polygon for the same purpose.
func (s Surface) BoundingBox() numeric.Box {
	pts := make([]numeric.Point3, 0, len(s.ctrl)*len(s.ctrl[0]))
	for _, row := range s.ctrl {
		for _, p := range row {
			pts = append(pts, p.Dehomogenize())
		}
	}
	return numeric.BoxFromPoints(pts)
}
