package numeric

// Point4 is a homogeneous control point (wx, wy, wz, w). Weights w <= 0 are
// rejected at construction (spec.md §3: "Weights w_i = 1 indicate a
// non-rational segment", and w > 0 is required).
type Point4 struct{ X, Y, Z, W float64 }

// NewPoint4 builds a homogeneous point from a Euclidean location and a
// weight, pre-multiplying the coordinates by w as the data model requires.
func NewPoint4(loc Point3, w float64) Point4 {
	return Point4{loc.X * w, loc.Y * w, loc.Z * w, w}
}

// Dehomogenize returns the Euclidean location (x/w, y/w, z/w).
func (p Point4) Dehomogenize() Point3 {
	return Point3{p.X / p.W, p.Y / p.W, p.Z / p.W}
}

// Location is an alias for Dehomogenize read at call sites that care about
// "the point", not "the algebra" (spec.md §3 data model wording).
func (p Point4) Location() Point3 { return p.Dehomogenize() }

// Add returns p+q in homogeneous space (used by basis-weighted sums).
func (p Point4) Add(q Point4) Point4 {
	return Point4{p.X + q.X, p.Y + q.Y, p.Z + q.Z, p.W + q.W}
}

// Scale returns p*k in homogeneous space, including the weight component;
// this is the operation invariant 9 (§8) exercises: scaling every control
// point's weight by a constant k>0 must leave the dehomogenized curve
// unchanged.
func (p Point4) Scale(k float64) Point4 {
	return Point4{p.X * k, p.Y * k, p.Z * k, p.W * k}
}

// ScaleWeight multiplies only the weight, re-deriving the homogeneous
// coordinates so the Euclidean location is preserved (used when a caller
// wants to change rationality without moving the control point).
func ScaleWeight(p Point4, k float64) Point4 {
	loc := p.Dehomogenize()
	return NewPoint4(loc, p.W*k)
}
