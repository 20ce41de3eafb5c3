package curve

import (
	"github.com/gokernel/nurbs/knot"
	"github.com/gokernel/nurbs/numeric"
)

// elevateBezierOnce raises a single Bezier segment's degree by one, using
// the classic endpoint-preserving formula
//
//	Q_0 = P_0,  Q_{p+1} = P_p,
//	Q_i = (i/(p+1))*P_{i-1} + (1-i/(p+1))*P_i,  i = 1..p
//
// applied directly to the homogeneous control points (valid for rational
// Bezier segments since it is an affine combination).
func elevateBezierOnce(p []numeric.Point4) []numeric.Point4 {
	deg := len(p) - 1
	q := make([]numeric.Point4, deg+2)
	q[0] = p[0]
	q[deg+1] = p[deg]
	for i := 1; i <= deg; i++ {
		t := float64(i) / float64(deg+1)
		q[i] = p[i-1].Scale(t).Add(p[i].Scale(1 - t))
	}
	return q
}

// ElevateDegree raises the curve's degree from p to q >= p, per Algorithm
// A5.9 of Piegl & Tiller. This implementation decomposes the curve into
// full-multiplicity Bezier segments, elevates each segment independently
// (endpoints are exact fixed points of Bezier elevation, so adjacent
// segments still share their joint control point after elevation) and
// reassembles with each interior breakpoint at the new full multiplicity
// q. The result is geometrically identical to the input (spec.md §8
// invariant 6) though not the minimal-knot representation A5.9 would
// produce directly.
//
// If q <= p the curve is returned unchanged (spec.md §4.2, §9 open
// question: q <= p is a no-op, not an error).
func (c Curve) ElevateDegree(q int) (Curve, error) {
	if q <= c.p {
		return c, nil
	}
	t := q - c.p

	segments, err := c.DecomposeIntoBeziers(false)
	if err != nil {
		return Curve{}, err
	}

	elevated := make([][]numeric.Point4, len(segments))
	for si, seg := range segments {
		pts := append([]numeric.Point4(nil), seg.ctrl...)
		for step := 0; step < t; step++ {
			pts = elevateBezierOnce(pts)
		}
		elevated[si] = pts
	}

	// reassemble: segment s contributes q+1 points but shares its first
	// point with the previous segment's last point, same as
	// DecomposeIntoBeziers's inverse.
	totalCtrl := len(elevated)*q + 1
	ctrl := make([]numeric.Point4, totalCtrl)
	for si, pts := range elevated {
		copy(ctrl[si*q:si*q+q+1], pts)
	}

	uknots := make([]float64, 0, (q+1)*2+(len(segments)-1)*q)
	for i := 0; i <= q; i++ {
		uknots = append(uknots, segments[0].u.First())
	}
	for si := 0; si < len(segments)-1; si++ {
		brk := segments[si].u.Last()
		for i := 0; i < q; i++ {
			uknots = append(uknots, brk)
		}
	}
	for i := 0; i <= q; i++ {
		uknots = append(uknots, segments[len(segments)-1].u.Last())
	}

	return newRaw(q, knot.New(uknots), ctrl, c.kind), nil
}
