// Package isect implements the intersection routines (C9): closed-form
// plane-plane, line-plane, line-line and polyline-plane, plus curve-plane
// and curve-curve via the BVH (C7) and the quasi-Newton minimizer (C8)
// (spec.md §4.6).
package isect

import (
	"math"

	"github.com/gokernel/nurbs/numeric"
	"gonum.org/v1/gonum/mat"
)

// Line is an infinite line Origin + s*Dir; Dir need not be unit length —
// |line| (used to normalize LinePlane's parameter) is Dir.Length().
type Line struct {
	Origin numeric.Point3
	Dir    numeric.Vec3
}

func component(v numeric.Vec3, i int) float64 {
	switch i {
	case 0:
		return v.X
	case 1:
		return v.Y
	default:
		return v.Z
	}
}

// PlanePlane intersects two planes, returning a point on the line of
// intersection and its (unit) direction. Parallel planes are reported as
// a numerical failure (spec.md §4.6, §7).
func PlanePlane(p1, p2 numeric.Plane) (origin numeric.Point3, dir numeric.Vec3, err error) {
	d := p1.Normal.Cross(p2.Normal)
	if d.LengthSquared() < numeric.Epsilon {
		return numeric.Point3{}, numeric.Vec3{}, numeric.Errf(numeric.NumericalFailure, "planes are parallel")
	}
	dir = d.Normalize()

	ax := 0
	ad := math.Abs(component(d, 0))
	if math.Abs(component(d, 1)) > ad {
		ax, ad = 1, math.Abs(component(d, 1))
	}
	if math.Abs(component(d, 2)) > ad {
		ax = 2
	}
	var axes []int
	for i := 0; i < 3; i++ {
		if i != ax {
			axes = append(axes, i)
		}
	}
	i0, i1 := axes[0], axes[1]

	n1, n2 := p1.Normal, p2.Normal
	rhs1 := n1.Dot(p1.Origin)
	rhs2 := n2.Dot(p2.Origin)

	A := mat.NewDense(2, 2, []float64{
		component(n1, i0), component(n1, i1),
		component(n2, i0), component(n2, i1),
	})
	b := mat.NewVecDense(2, []float64{rhs1, rhs2})
	x, err := numeric.SolveLinear(A, b)
	if err != nil {
		return numeric.Point3{}, numeric.Vec3{}, err
	}

	var coords [3]float64
	coords[i0] = x.AtVec(0)
	coords[i1] = x.AtVec(1)
	origin = numeric.Point3{X: coords[0], Y: coords[1], Z: coords[2]}
	return origin, dir, nil
}

// LinePlane intersects an infinite line with a plane. t is the normalized
// parameter s/|line|. Reports numerical failure when the line is parallel
// to (or lies within) the plane.
func LinePlane(line Line, plane numeric.Plane) (point numeric.Point3, t float64, err error) {
	length := line.Dir.Length()
	if length < numeric.Epsilon {
		return numeric.Point3{}, 0, numeric.Errf(numeric.InvalidInput, "line direction is degenerate")
	}
	denom := plane.Normal.Dot(line.Dir)
	if math.Abs(denom) < numeric.Epsilon {
		return numeric.Point3{}, 0, numeric.Errf(numeric.NumericalFailure, "line is parallel to the plane")
	}
	s := plane.Normal.Dot(plane.Origin.Sub(line.Origin)) / denom
	point = line.Origin.Add(line.Dir.Scale(s))
	t = s / length
	return point, t, nil
}

// LineLine returns the closest points on two infinite lines and the
// parameters (mu on l1, nu on l2) at which they occur (the classic
// mu/nu formulas). Reports numerical failure when the lines are parallel.
func LineLine(l1, l2 Line) (p1, p2 numeric.Point3, mu, nu float64, err error) {
	d1, d2 := l1.Dir, l2.Dir
	r := l1.Origin.Sub(l2.Origin)
	a := d1.Dot(d1)
	b := d1.Dot(d2)
	c := d2.Dot(d2)
	d := d1.Dot(r)
	e := d2.Dot(r)
	denom := a*c - b*b
	if math.Abs(denom) < numeric.Epsilon {
		return numeric.Point3{}, numeric.Point3{}, 0, 0, numeric.Errf(numeric.NumericalFailure, "lines are parallel")
	}
	mu = (b*e - c*d) / denom
	nu = (a*e - b*d) / denom
	p1 = l1.Origin.Add(d1.Scale(mu))
	p2 = l2.Origin.Add(d2.Scale(nu))
	return p1, p2, mu, nu, nil
}

// PolylineHit is one polyline-plane crossing.
type PolylineHit struct {
	Point   numeric.Point3
	T       float64 // in [0,1] along the segment
	Segment int     // index of the segment (pts[Segment], pts[Segment+1])
}

// PolylinePlane runs LinePlane on every segment of the polyline pts, and
// keeps the hits that fall within the segment (spec.md §4.6).
func PolylinePlane(pts []numeric.Point3, plane numeric.Plane) []PolylineHit {
	var hits []PolylineHit
	for i := 0; i+1 < len(pts); i++ {
		seg := Line{Origin: pts[i], Dir: pts[i+1].Sub(pts[i])}
		point, t, err := LinePlane(seg, plane)
		if err != nil {
			continue
		}
		// seg.Dir spans the whole segment, so t*|Dir| is the position along it
		u := t * seg.Dir.Length()
		if u >= -numeric.Epsilon && u <= 1+numeric.Epsilon {
			hits = append(hits, PolylineHit{Point: point, T: u, Segment: i})
		}
	}
	return hits
}
