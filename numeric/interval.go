package numeric

// Interval is the ordered pair (T0, T1) described in spec.md §3.
type Interval struct{ T0, T1 float64 }

// Length returns T1-T0.
func (iv Interval) Length() float64 { return iv.T1 - iv.T0 }

// Mid returns the midpoint of the interval.
func (iv Interval) Mid() float64 { return 0.5 * (iv.T0 + iv.T1) }

// ParameterAt maps s in [0,1] affinely onto the interval.
func (iv Interval) ParameterAt(s float64) float64 {
	return (1-s)*iv.T0 + s*iv.T1
}

// Contains reports whether u lies in [T0,T1] within tol.
func (iv Interval) Contains(u, tol float64) bool {
	return u >= iv.T0-tol && u <= iv.T1+tol
}
