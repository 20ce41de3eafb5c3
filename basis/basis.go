// Package basis evaluates the non-rational B-spline basis functions
// N_{i,p}(u) and their derivatives (C3), via the Cox-de Boor recurrence
// (Piegl & Tiller, The NURBS Book, Algorithms A2.2 and A2.3).
package basis

import "github.com/gokernel/nurbs/knot"

// Eval computes the p+1 non-zero basis functions N_{k-p,p}(u) .. N_{k,p}(u)
// at the span k located by knot.Vector.FindSpan, using the triangular
// table recurrence with left/right differences (Algorithm A2.2).
func Eval(p int, U knot.Vector, k int, u float64) []float64 {
	N := make([]float64, p+1)
	left := make([]float64, p+1)
	right := make([]float64, p+1)

	N[0] = 1
	for j := 1; j <= p; j++ {
		left[j] = u - U.At(k+1-j)
		right[j] = U.At(k+j) - u
		saved := 0.0
		for r := 0; r < j; r++ {
			denom := right[r+1] + left[j-r]
			var temp float64
			if denom != 0 {
				temp = N[r] / denom
			}
			N[r] = saved + right[r+1]*temp
			saved = left[j-r] * temp
		}
		N[j] = saved
	}
	return N
}

// Derivatives computes rows 0..d of the non-zero basis function
// derivatives at u, row r holding the r-th derivatives of
// N_{k-p,p} .. N_{k,p}. Row 0 equals Eval's result. d must be <= p;
// requesting more yields zero rows past p, as Piegl & Tiller prescribe.
func Derivatives(p int, U knot.Vector, k int, u float64, d int) [][]float64 {
	ndu := make([][]float64, p+1)
	for i := range ndu {
		ndu[i] = make([]float64, p+1)
	}
	left := make([]float64, p+1)
	right := make([]float64, p+1)

	ndu[0][0] = 1
	for j := 1; j <= p; j++ {
		left[j] = u - U.At(k+1-j)
		right[j] = U.At(k+j) - u
		saved := 0.0
		for r := 0; r < j; r++ {
			ndu[j][r] = right[r+1] + left[j-r]
			denom := ndu[j][r]
			var temp float64
			if denom != 0 {
				temp = ndu[r][j-1] / denom
			}
			ndu[r][j] = saved + right[r+1]*temp
			saved = left[j-r] * temp
		}
		ndu[j][j] = saved
	}

	ders := make([][]float64, d+1)
	for i := range ders {
		ders[i] = make([]float64, p+1)
	}
	for j := 0; j <= p; j++ {
		ders[0][j] = ndu[j][p]
	}

	a := [2][]float64{make([]float64, p+1), make([]float64, p+1)}
	for r := 0; r <= p; r++ {
		s1, s2 := 0, 1
		a[0][0] = 1
		for k2 := 1; k2 <= d; k2++ {
			der := 0.0
			rk, pk := r-k2, p-k2
			if r >= k2 {
				a[s2][0] = a[s1][0] / ndu[pk+1][rk]
				der = a[s2][0] * ndu[rk][pk]
			}
			j1 := 1
			if rk < -1 {
				j1 = -rk
			}
			j2 := k2 - 1
			if r-1 > pk {
				j2 = p - r
			}
			for j := j1; j <= j2; j++ {
				a[s2][j] = (a[s1][j] - a[s1][j-1]) / ndu[pk+1][rk+j]
				der += a[s2][j] * ndu[rk+j][pk]
			}
			if r <= pk {
				a[s2][k2] = -a[s1][k2-1] / ndu[pk+1][r]
				der += a[s2][k2] * ndu[r][pk]
			}
			ders[k2][r] = der
			s1, s2 = s2, s1
		}
	}

	r := float64(p)
	for k2 := 1; k2 <= d; k2++ {
		for j := 0; j <= p; j++ {
			ders[k2][j] *= r
		}
		r *= float64(p - k2)
	}
	return ders
}
