package isect

import (
	"sort"

	"github.com/gokernel/nurbs/bvh"
	"github.com/gokernel/nurbs/curve"
	"github.com/gokernel/nurbs/numeric"
	"github.com/gokernel/nurbs/solve"
)

// CurveCurveHit is one curve-curve intersection, located within tol.
type CurveCurveHit struct {
	TA, TB float64
	Point  numeric.Point3
}

// CurveCurve traverses the pairwise curve BVH to generate candidate
// sub-curve pairs; for each candidate it seeds the 2-D minimizer on
// (t0, t1) with objective ||C0(t0)-C1(t1)||^2 and the matching gradient
// (spec.md §4.6), keeping converged hits within tol and deduplicating by
// parameter proximity.
func CurveCurve(a, b curve.Curve, tol float64, src bvh.Source) ([]CurveCurveHit, error) {
	tol = numeric.ClampTolerance(tol)
	pairs, err := bvh.PairTraverseCurves(a, b, tol, src)
	if err != nil {
		return nil, err
	}

	var hits []CurveCurveHit
	for _, pr := range pairs {
		domA, domB := pr.A.Domain(), pr.B.Domain()
		objective := func(x []float64) float64 {
			ta := clampTo(x[0], domA)
			tb := clampTo(x[1], domB)
			pa, errA := pr.A.PointAt(ta)
			pb, errB := pr.B.PointAt(tb)
			if errA != nil || errB != nil {
				return 0
			}
			return pa.Sub(pb).LengthSquared()
		}
		gradient := func(x []float64) []float64 {
			ta := clampTo(x[0], domA)
			tb := clampTo(x[1], domB)
			pa, errA := pr.A.PointAt(ta)
			pb, errB := pr.B.PointAt(tb)
			if errA != nil || errB != nil {
				return []float64{0, 0}
			}
			diff := pa.Sub(pb)
			tanA, _ := pr.A.TangentAt(ta)
			tanB, _ := pr.B.TangentAt(tb)
			return []float64{2 * diff.Dot(tanA), -2 * diff.Dot(tanB)}
		}
		res := solve.Minimize(objective, gradient, []float64{domA.Mid(), domB.Mid()}, solve.DefaultOptions())
		ta := clampTo(res.X[0], domA)
		tb := clampTo(res.X[1], domB)
		pa, errA := a.PointAt(ta)
		pb, errB := b.PointAt(tb)
		if errA != nil || errB != nil {
			continue
		}
		if pa.DistanceTo(pb) <= tol {
			hits = append(hits, CurveCurveHit{TA: ta, TB: tb, Point: pa})
		}
	}
	return dedupHits(hits, tol), nil
}

func dedupHits(hits []CurveCurveHit, tol float64) []CurveCurveHit {
	if len(hits) == 0 {
		return nil
	}
	sort.Slice(hits, func(i, j int) bool {
		if hits[i].TA != hits[j].TA {
			return hits[i].TA < hits[j].TA
		}
		return hits[i].TB < hits[j].TB
	})
	out := []CurveCurveHit{hits[0]}
	for _, h := range hits[1:] {
		last := out[len(out)-1]
		if abs(h.TA-last.TA) > tol || abs(h.TB-last.TB) > tol {
			out = append(out, h)
		}
	}
	return out
}
