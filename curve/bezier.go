package curve

import (
	"github.com/gokernel/nurbs/knot"
	"github.com/gokernel/nurbs/numeric"
)

// DecomposeIntoBeziers raises every interior knot's multiplicity to p via
// KnotRefine, then slices the resulting control polygon into contiguous
// windows of p+1 points, each a Bezier segment of the same degree
// (spec.md §4.2). If normalize is true, each segment's knot vector is
// rescaled onto [0,1].
func (c Curve) DecomposeIntoBeziers(normalize bool) ([]Curve, error) {
	interior := c.u.InteriorKnots()
	var toInsert []float64
	for _, u := range interior {
		mult := c.u.Multiplicity(u)
		for i := mult; i < c.p; i++ {
			toInsert = append(toInsert, u)
		}
	}
	refined := c
	if len(toInsert) > 0 {
		var err error
		refined, err = c.KnotRefine(toInsert)
		if err != nil {
			return nil, err
		}
	}

	numSegments := len(interior) + 1
	segments := make([]Curve, numSegments)
	for s := 0; s < numSegments; s++ {
		lo := s * c.p
		hi := lo + c.p + 1
		ctrl := make([]numeric.Point4, c.p+1)
		copy(ctrl, refined.ctrl[lo:hi])

		ulo := refined.u.At(lo + c.p)
		uhi := refined.u.At(hi)
		uknots := make([]float64, 0, 2*(c.p+1))
		for i := 0; i <= c.p; i++ {
			uknots = append(uknots, ulo)
		}
		for i := 0; i <= c.p; i++ {
			uknots = append(uknots, uhi)
		}
		uv := knot.New(uknots)
		if normalize {
			uv = uv.Normalize()
		}
		segments[s] = newRaw(c.p, uv, ctrl, c.kind)
	}
	return segments, nil
}
