package curve

import "github.com/gokernel/nurbs/numeric"

// BoundingBox returns the bounding box of the control polygon. This is a
// loose (but cheap and convex-hull-valid) bound: the control polygon
// always contains the curve, which is what the BVH needs.
func (c Curve) BoundingBox() numeric.Box {
	pts := make([]numeric.Point3, len(c.ctrl))
	for i, p := range c.ctrl {
		pts[i] = p.Dehomogenize()
	}
	return numeric.BoxFromPoints(pts)
}
