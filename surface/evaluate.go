package surface

import (
	"github.com/gokernel/nurbs/basis"
	"github.com/gokernel/nurbs/numeric"
)

// homogeneousDerivatives returns the (d+1)x(d+1) grid of tensor-product
// derivatives of the weighted surface A(u,v) = (S(u,v)*w(u,v), w(u,v)) in
// homogeneous 4-space; entry [k][l] is valid for k<=min(d,pu), l<=min(d,pv).
func (s Surface) homogeneousDerivatives(u, v float64, d int) [][]numeric.Point4 {
	nU := len(s.ctrl) - 1
	nV := len(s.ctrl[0]) - 1
	ku := s.u.FindSpan(s.pu, nU, u)
	kv := s.v.FindSpan(s.pv, nV, v)
	maxDu, maxDv := d, d
	if maxDu > s.pu {
		maxDu = s.pu
	}
	if maxDv > s.pv {
		maxDv = s.pv
	}
	Nu := basis.Derivatives(s.pu, s.u, ku, u, maxDu)
	Nv := basis.Derivatives(s.pv, s.v, kv, v, maxDv)

	Aders := make([][]numeric.Point4, d+1)
	for k := range Aders {
		Aders[k] = make([]numeric.Point4, d+1)
	}
	for k := 0; k <= maxDu; k++ {
		for l := 0; l <= maxDv; l++ {
			var sum numeric.Point4
			for iu := 0; iu <= s.pu; iu++ {
				var temp numeric.Point4
				for iv := 0; iv <= s.pv; iv++ {
					cp := s.ctrl[ku-s.pu+iu][kv-s.pv+iv]
					temp = temp.Add(cp.Scale(Nv[l][iv]))
				}
				sum = sum.Add(temp.Scale(Nu[k][iu]))
			}
			Aders[k][l] = sum
		}
	}
	return Aders
}

// PointAt evaluates S(u,v), per spec.md §4.3.
func (s Surface) PointAt(u, v float64) (numeric.Point3, error) {
	domU, domV := s.Domain()
	if !domU.Contains(u, numeric.Epsilon) || !domV.Contains(v, numeric.Epsilon) {
		return numeric.Point3{}, numeric.Errf(numeric.InvalidInput, "(%v,%v) outside domain (%v,%v)", u, v, domU, domV)
	}
	A := s.homogeneousDerivatives(u, v, 0)
	return A[0][0].Dehomogenize(), nil
}

// Derivatives returns the block SKL[k][l] (k+l<=d) of mixed partial
// derivatives in Euclidean space, applying the bivariate rational quotient
// rule (Piegl & Tiller Algorithm A4.4, spec.md §4.3).
func (s Surface) Derivatives(u, v float64, d int) ([][]numeric.Point3, error) {
	domU, domV := s.Domain()
	if !domU.Contains(u, numeric.Epsilon) || !domV.Contains(v, numeric.Epsilon) {
		return nil, numeric.Errf(numeric.InvalidInput, "(%v,%v) outside domain (%v,%v)", u, v, domU, domV)
	}
	Aders := s.homogeneousDerivatives(u, v, d)
	SKL := make([][]numeric.Point3, d+1)
	for k := range SKL {
		SKL[k] = make([]numeric.Point3, d+1)
	}

	for k := 0; k <= d; k++ {
		for l := 0; l <= d-k; l++ {
			v3 := numeric.Point3{X: Aders[k][l].X, Y: Aders[k][l].Y, Z: Aders[k][l].Z}
			for j := 1; j <= l; j++ {
				v3 = v3.Sub(SKL[k][l-j].Scale(numeric.Binomial(l, j) * Aders[0][j].W))
			}
			for i := 1; i <= k; i++ {
				v3 = v3.Sub(SKL[k-i][l].Scale(numeric.Binomial(k, i) * Aders[i][0].W))
				var v2 numeric.Point3
				for j := 1; j <= l; j++ {
					v2 = v2.Add(SKL[k-i][l-j].Scale(numeric.Binomial(l, j) * Aders[i][j].W))
				}
				v3 = v3.Sub(v2.Scale(numeric.Binomial(k, i)))
			}
			SKL[k][l] = v3.Scale(1 / Aders[0][0].W)
		}
	}
	return SKL, nil
}

// EvaluateMode selects what evaluate_at returns: the point itself, one of
// the two partial derivatives, or the unit normal (spec.md §6).
type EvaluateMode int

const (
	EvaluatePoint EvaluateMode = iota
	EvaluateU
	EvaluateV
	EvaluateNormal
)

// EvaluateAt implements the surface-specific evaluate_at(u,v,mode) entry
// point of spec.md §6.
func (s Surface) EvaluateAt(u, v float64, mode EvaluateMode) (numeric.Point3, error) {
	if mode == EvaluatePoint {
		return s.PointAt(u, v)
	}
	ders, err := s.Derivatives(u, v, 1)
	if err != nil {
		return numeric.Point3{}, err
	}
	switch mode {
	case EvaluateU:
		return ders[1][0], nil
	case EvaluateV:
		return ders[0][1], nil
	case EvaluateNormal:
		return ders[1][0].Cross(ders[0][1]).Normalize(), nil
	default:
		return numeric.Point3{}, numeric.Errf(numeric.InvalidInput, "unknown evaluate mode %d", mode)
	}
}
