package curve

import (
	"math"

	"github.com/gokernel/nurbs/knot"
	"github.com/gokernel/nurbs/numeric"
)

// NewFromHomogeneous builds a Curve directly from already-weighted 4-D
// control points, used by callers that construct control points by basis
// weighting rather than by Euclidean location + weight (surface iso-curve
// extraction, directional knot refinement's row reassembly).
func NewFromHomogeneous(p int, U knot.Vector, ctrl []numeric.Point4) (Curve, error) {
	if p < 1 {
		return Curve{}, numeric.Errf(numeric.InvalidInput, "degree must be >= 1, got %d", p)
	}
	if err := U.Validate(p, len(ctrl)); err != nil {
		return Curve{}, err
	}
	out := make([]numeric.Point4, len(ctrl))
	copy(out, ctrl)
	return newRaw(p, U, out, KindNurbs), nil
}

// NewLine builds a degree-1 NURBS representation of the segment p0-p1
// (spec.md §9 Design Notes: Line is a lossless specialization that converts
// to Nurbs on demand).
func NewLine(p0, p1 numeric.Point3) (Curve, error) {
	U := knot.New([]float64{0, 0, 1, 1})
	c, err := New(1, U, []numeric.Point3{p0, p1}, nil)
	if err != nil {
		return Curve{}, err
	}
	c.kind = KindLine
	return c, nil
}

// NewPolyline builds a degree-1 NURBS curve interpolating pts in order,
// parameterized by chord length and clamped at both ends.
func NewPolyline(pts []numeric.Point3) (Curve, error) {
	if len(pts) < 2 {
		return Curve{}, numeric.Errf(numeric.InvalidInput, "polyline needs at least 2 points, got %d", len(pts))
	}
	chords := make([]float64, len(pts))
	total := 0.0
	for i := 1; i < len(pts); i++ {
		total += pts[i].DistanceTo(pts[i-1])
		chords[i] = total
	}
	U := make([]float64, 0, len(pts)+2)
	U = append(U, 0, 0)
	if total < numeric.Epsilon {
		for i := 1; i < len(pts)-1; i++ {
			U = append(U, float64(i)/float64(len(pts)-1))
		}
	} else {
		for i := 1; i < len(pts)-1; i++ {
			U = append(U, chords[i]/total)
		}
	}
	U = append(U, 1, 1)
	c, err := New(1, knot.New(U), pts, nil)
	if err != nil {
		return Curve{}, err
	}
	c.kind = KindPolyline
	return c, nil
}

// NewArc builds a rational quadratic NURBS representation of a circular
// arc, following Piegl & Tiller Algorithm A7.1 (one Bezier span per <=90
// degree sweep, weighted by cos(half-angle)). Degenerate inputs (zero
// radius, zero-length normal, zero sweep) are reported as a geometric
// impossibility (spec.md §7).
func NewArc(center numeric.Point3, radius float64, normal numeric.Vec3, startAngle, endAngle float64) (Curve, error) {
	if radius <= numeric.Epsilon {
		return Curve{}, numeric.Errf(numeric.GeometricImpossibility, "arc radius must be positive, got %v", radius)
	}
	if normal.LengthSquared() < numeric.Epsilon {
		return Curve{}, numeric.Errf(numeric.GeometricImpossibility, "arc normal must be non-zero")
	}
	sweep := endAngle - startAngle
	if math.Abs(sweep) < numeric.Epsilon {
		return Curve{}, numeric.Errf(numeric.GeometricImpossibility, "arc sweep angle must be non-zero")
	}

	n := normal.Normalize()
	ref := numeric.Vec3{X: 1, Y: 0, Z: 0}
	if math.Abs(n.Dot(ref)) > 1-numeric.Epsilon {
		ref = numeric.Vec3{X: 0, Y: 1, Z: 0}
	}
	xAxis := ref.Sub(n.Scale(n.Dot(ref))).Normalize()
	yAxis := n.Cross(xAxis).Normalize()
	pointAt := func(angle float64) numeric.Point3 {
		return center.
			Add(xAxis.Scale(radius * math.Cos(angle))).
			Add(yAxis.Scale(radius * math.Sin(angle)))
	}
	tangentAt := func(angle float64) numeric.Vec3 {
		return xAxis.Scale(-math.Sin(angle)).Add(yAxis.Scale(math.Cos(angle)))
	}

	numArcs := int(math.Ceil(math.Abs(sweep) / (math.Pi / 2)))
	if numArcs < 1 {
		numArcs = 1
	}
	dTheta := sweep / float64(numArcs)
	halfDTheta := dTheta / 2
	w1 := math.Cos(halfDTheta)

	ctrl := make([]numeric.Point4, 0, 2*numArcs+1)
	uknots := make([]float64, 0, 2*numArcs+4)

	angle := startAngle
	p0 := pointAt(angle)
	t0 := tangentAt(angle)
	ctrl = append(ctrl, numeric.NewPoint4(p0, 1))
	uknots = append(uknots, 0, 0, 0)

	for i := 0; i < numArcs; i++ {
		angle += dTheta
		p2 := pointAt(angle)
		t2 := tangentAt(angle)

		// intersect the two endpoint tangent lines for the mid control point,
		// solved in their XY projection
		denom := t0.X*(-t2.Y) - t0.Y*(-t2.X)
		var p1 numeric.Point3
		if math.Abs(denom) < numeric.Epsilon {
			// the projections are parallel (the arc's plane contains the Z
			// direction): the tangent intersection lies on the ray from the
			// center through the chord midpoint, 1/cos^2(half-angle) as far out
			chordMid := p0.Add(p2.Sub(p0).Scale(0.5))
			p1 = center.Add(chordMid.Sub(center).Scale(1 / (w1 * w1)))
		} else {
			rhs := p2.Sub(p0)
			s := (rhs.X*(-t2.Y) - rhs.Y*(-t2.X)) / denom
			p1 = p0.Add(t0.Scale(s))
		}

		ctrl = append(ctrl, numeric.NewPoint4(p1, w1), numeric.NewPoint4(p2, 1))
		if i+1 < numArcs {
			u := float64(i + 1)
			uknots = append(uknots, u, u)
		}
		p0, t0 = p2, t2
	}
	last := float64(numArcs)
	uknots = append(uknots, last, last, last)

	c, err := NewFromHomogeneous(2, knot.New(uknots).Normalize(), ctrl)
	if err != nil {
		return Curve{}, err
	}
	c.kind = KindArc
	return c, nil
}
