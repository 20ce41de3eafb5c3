// Package solve implements the unconstrained quasi-Newton (BFGS-style)
// minimizer (C8) that drives intersection and closest-point refinement
// throughout curve and surface (spec.md §4.7). The inverse-Hessian lives in
// a gonum mat.Dense, and floats.Dot/floats.Norm back the search-step-norm
// and directional-derivative checks, matching the dependency wiring of
// SPEC_FULL.md §6.
package solve

import (
	"math"

	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/la"
	"github.com/gokernel/nurbs/numeric"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// Objective is the scalar function being minimized.
type Objective func(x []float64) float64

// Gradient returns the objective's gradient at x.
type Gradient func(x []float64) []float64

// Options configures a Minimize call. The zero value is not usable;
// use DefaultOptions.
type Options struct {
	GradTol float64 // gradient/step-norm tolerance, clamped to >= numeric.Epsilon
	MaxIter int
	Verbose bool // print the inverse-Hessian estimate after every accepted step
}

// DefaultOptions returns tau_g=1e-8, I_max=1000 (spec.md §4.7).
func DefaultOptions() Options {
	return Options{GradTol: 1e-8, MaxIter: 1000}
}

// Result is the record returned by Minimize: the final point, its
// objective/gradient, the inverse-Hessian estimate, the iteration count and
// a termination-reason string callers inspect to distinguish converged,
// stalled and invalid outcomes (spec.md §4.7).
type Result struct {
	X          []float64
	F          float64
	Grad       []float64
	H          *mat.Dense
	Iterations int
	Reason     string
}

// Converged reports whether Reason describes a successful termination
// (gradient/step below tolerance), as opposed to an exhausted budget or an
// invalid intermediate state.
func (r Result) Converged() bool {
	return r.Reason == "step below tolerance" || r.Reason == "converged"
}

func identity(n int) *mat.Dense {
	m := mat.NewDense(n, n, nil)
	for i := 0; i < n; i++ {
		m.Set(i, i, 1)
	}
	return m
}

func denseToSlice(m *mat.Dense) [][]float64 {
	r, c := m.Dims()
	s := la.MatAlloc(r, c)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			s[i][j] = m.At(i, j)
		}
	}
	return s
}

func finiteVec(v []float64) bool {
	for _, x := range v {
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return false
		}
	}
	return true
}

// Minimize runs the BFGS-style loop of spec.md §4.7 from x0.
func Minimize(f Objective, g Gradient, x0 []float64, opts Options) Result {
	n := len(x0)
	tauG := opts.GradTol
	if tauG < numeric.Epsilon {
		tauG = numeric.Epsilon
	}
	maxIter := opts.MaxIter
	if maxIter <= 0 {
		maxIter = 1000
	}

	x := append([]float64(nil), x0...)
	f0 := f(x)
	if math.IsNaN(f0) || math.IsInf(f0, 0) {
		return Result{X: x, F: f0, Reason: "invalid initial value"}
	}
	g0 := g(x)
	H := identity(n)

	iter := 0
	for ; iter < maxIter; iter++ {
		gVec := mat.NewVecDense(n, g0)
		sVec := mat.NewVecDense(n, nil)
		sVec.MulVec(H, gVec)
		s := make([]float64, n)
		for i := 0; i < n; i++ {
			s[i] = -sVec.AtVec(i)
		}
		if !finiteVec(s) {
			return Result{X: x, F: f0, Grad: g0, H: H, Iterations: iter, Reason: "search direction invalid"}
		}
		normS := floats.Norm(s, 2)
		if normS < tauG {
			return Result{X: x, F: f0, Grad: g0, H: H, Iterations: iter, Reason: "step below tolerance"}
		}

		gDotS := floats.Dot(g0, s)
		t := 1.0
		var fNext float64
		accepted := false
		for {
			xNext := make([]float64, n)
			for i := range xNext {
				xNext[i] = x[i] + t*s[i]
			}
			fNext = f(xNext)
			if !math.IsNaN(fNext) && fNext-f0 < 0.1*t*gDotS {
				x = xNext
				accepted = true
				break
			}
			t *= 0.5
			if t*normS < tauG {
				break
			}
		}
		if !accepted {
			return Result{X: x, F: f0, Grad: g0, H: H, Iterations: iter, Reason: "step below tolerance"}
		}

		g1 := g(x)
		if !finiteVec(g1) {
			return Result{X: x, F: fNext, Grad: g0, H: H, Iterations: iter, Reason: "search direction invalid"}
		}
		y := make([]float64, n)
		for i := range y {
			y[i] = g1[i] - g0[i]
		}
		delta := make([]float64, n)
		for i := range delta {
			delta[i] = t * s[i]
		}
		yVec := mat.NewVecDense(n, y)
		deltaVec := mat.NewVecDense(n, delta)
		HyVec := mat.NewVecDense(n, nil)
		HyVec.MulVec(H, yVec)
		ys := floats.Dot(y, delta)

		if math.Abs(ys) > numeric.Epsilon {
			yHy := floats.Dot(y, HyVec.RawVector().Data)
			coeff := (ys + yHy) / (ys * ys)

			var outerDD, outerHyD, outerDHy mat.Dense
			outerDD.Outer(coeff, deltaVec, deltaVec)
			outerHyD.Outer(1/ys, HyVec, deltaVec)
			outerDHy.Outer(1/ys, deltaVec, HyVec)

			var sum mat.Dense
			sum.Add(&outerHyD, &outerDHy)
			H.Add(H, &outerDD)
			H.Sub(H, &sum)
		}

		if opts.Verbose {
			io.Pfgrey("iter %3d: f = %23.15e\n", iter, fNext)
			la.PrintMat("H", denseToSlice(H), "%12.5e", false)
		}

		f0, g0 = fNext, g1
	}
	return Result{X: x, F: f0, Grad: g0, H: H, Iterations: iter, Reason: "iteration budget exhausted"}
}
