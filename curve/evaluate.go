package curve

import (
	"github.com/gokernel/nurbs/basis"
	"github.com/gokernel/nurbs/numeric"
)

// PointAt evaluates C(u) for u in the curve's domain, per spec.md §4.2.
func (c Curve) PointAt(u float64) (numeric.Point3, error) {
	if !c.u.Domain().Contains(u, numeric.Epsilon) {
		return numeric.Point3{}, numeric.Errf(numeric.InvalidInput, "parameter %v outside domain %v", u, c.u.Domain())
	}
	n := len(c.ctrl) - 1
	k := c.u.FindSpan(c.p, n, u)
	N := basis.Eval(c.p, c.u, k, u)
	var h numeric.Point4
	for i := 0; i <= c.p; i++ {
		h = h.Add(c.ctrl[k-c.p+i].Scale(N[i]))
	}
	return h.Dehomogenize(), nil
}

// homogeneousDerivatives returns the first d derivatives of the weighted
// curve A(u) = (C(u)*w(u), w(u)) in homogeneous 4-space, row 0 being A(u)
// itself. This is the "A^(k)" and "w^(k)" of spec.md §4.2.
func (c Curve) homogeneousDerivatives(u float64, d int) []numeric.Point4 {
	n := len(c.ctrl) - 1
	k := c.u.FindSpan(c.p, n, u)
	maxD := d
	if maxD > c.p {
		maxD = c.p
	}
	ders := basis.Derivatives(c.p, c.u, k, u, maxD)
	out := make([]numeric.Point4, d+1)
	for kk := 0; kk <= d; kk++ {
		if kk > maxD {
			continue // higher derivatives of a degree-p polynomial vanish
		}
		var h numeric.Point4
		for i := 0; i <= c.p; i++ {
			h = h.Add(c.ctrl[k-c.p+i].Scale(ders[kk][i]))
		}
		out[kk] = h
	}
	return out
}

// Derivatives returns the first d derivatives of C in Euclidean space,
// applying the rational quotient rule (spec.md §4.2). Index 0 is C(u)
// itself, matching the convention that PointAt(u) == Derivatives(u,0)[0].
func (c Curve) Derivatives(u float64, d int) ([]numeric.Point3, error) {
	if !c.u.Domain().Contains(u, numeric.Epsilon) {
		return nil, numeric.Errf(numeric.InvalidInput, "parameter %v outside domain %v", u, c.u.Domain())
	}
	A := c.homogeneousDerivatives(u, d)
	out := make([]numeric.Point3, d+1)
	for kk := 0; kk <= d; kk++ {
		v := numeric.Point3{X: A[kk].X, Y: A[kk].Y, Z: A[kk].Z}
		for i := 1; i <= kk; i++ {
			coeff := numeric.Binomial(kk, i) * A[i].W
			v = v.Sub(out[kk-i].Scale(coeff))
		}
		out[kk] = v.Scale(1 / A[0].W)
	}
	return out, nil
}

// TangentAt returns the (non-normalized) first derivative at u.
func (c Curve) TangentAt(u float64) (numeric.Vec3, error) {
	ders, err := c.Derivatives(u, 1)
	if err != nil {
		return numeric.Vec3{}, err
	}
	return ders[1], nil
}
