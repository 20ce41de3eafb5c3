package numeric

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// SolveLinear solves a*x = b for small dense systems (the 2x2 system that
// arises in plane-plane intersection; line-line intersection uses closed
// formulas and the minimizer takes no linear solves). It reports
// NumericalFailure when a is singular (parallel planes/lines) rather than
// propagating gonum's own error type, so callers can use ClassifyError.
func SolveLinear(a *mat.Dense, b *mat.VecDense) (*mat.VecDense, error) {
	n, m := a.Dims()
	if n != m {
		return nil, Errf(InvalidInput, "coefficient matrix must be square, got %dx%d", n, m)
	}
	if math.Abs(mat.Det(a)) < Epsilon {
		return nil, Errf(NumericalFailure, "singular system (parallel inputs)")
	}
	var x mat.Dense
	if err := x.Solve(a, b); err != nil {
		return nil, Errf(NumericalFailure, "linear solve failed: %v", err)
	}
	out := mat.NewVecDense(n, nil)
	for i := 0; i < n; i++ {
		out.SetVec(i, x.At(i, 0))
	}
	return out, nil
}
