package numeric

import "gonum.org/v1/gonum/stat/combin"

// Binomial returns C(n,k), backing the rational quotient rule of the
// curve and surface Derivatives (Algorithm A4.4 for surfaces), which needs
// binomial coefficients at every call. combin.Binomial already does
// the overflow-safe multiplicative computation; a hand-rolled Pascal's
// triangle buys nothing here.
func Binomial(n, k int) float64 {
	if k < 0 || k > n || n < 0 {
		return 0
	}
	return combin.Binomial(n, k)
}
