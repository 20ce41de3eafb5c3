package surface

import (
	"github.com/gokernel/nurbs/basis"
	"github.com/gokernel/nurbs/curve"
	"github.com/gokernel/nurbs/numeric"
)

// IsoCurve extracts the curve obtained by fixing the parameter t in the
// given direction (spec.md §4.3). Fixing u yields a curve of degree p_v
// whose knot vector is V; fixing v yields a curve of degree p_u whose
// knot vector is U.
func (s Surface) IsoCurve(t float64, dir Direction) (curve.Curve, error) {
	switch dir {
	case DirectionU:
		domU, _ := s.Domain()
		if !domU.Contains(t, numeric.Epsilon) {
			return curve.Curve{}, numeric.Errf(numeric.InvalidInput, "u=%v outside domain %v", t, domU)
		}
		nU := len(s.ctrl) - 1
		ku := s.u.FindSpan(s.pu, nU, t)
		Nu := basis.Eval(s.pu, s.u, ku, t)
		l := len(s.ctrl[0]) - 1
		ctrl := make([]numeric.Point4, l+1)
		for j := 0; j <= l; j++ {
			var sum numeric.Point4
			for i := 0; i <= s.pu; i++ {
				sum = sum.Add(s.ctrl[ku-s.pu+i][j].Scale(Nu[i]))
			}
			ctrl[j] = sum
		}
		return curve.NewFromHomogeneous(s.pv, s.v, ctrl)

	case DirectionV:
		_, domV := s.Domain()
		if !domV.Contains(t, numeric.Epsilon) {
			return curve.Curve{}, numeric.Errf(numeric.InvalidInput, "v=%v outside domain %v", t, domV)
		}
		nV := len(s.ctrl[0]) - 1
		kv := s.v.FindSpan(s.pv, nV, t)
		Nv := basis.Eval(s.pv, s.v, kv, t)
		n := len(s.ctrl) - 1
		ctrl := make([]numeric.Point4, n+1)
		for i := 0; i <= n; i++ {
			var sum numeric.Point4
			for j := 0; j <= s.pv; j++ {
				sum = sum.Add(s.ctrl[i][kv-s.pv+j].Scale(Nv[j]))
			}
			ctrl[i] = sum
		}
		return curve.NewFromHomogeneous(s.pu, s.u, ctrl)

	default:
		return curve.Curve{}, numeric.Errf(numeric.InvalidInput, "unknown direction %d", dir)
	}
}
