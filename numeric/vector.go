package numeric

import "math"

// Point3 is a Euclidean point. Vec3 is an alias used wherever the value is
// conceptually a displacement rather than a location; the two share the
// same operations.
type Point3 struct{ X, Y, Z float64 }

type Vec3 = Point3

// Add returns p+q.
func (p Point3) Add(q Point3) Point3 { return Point3{p.X + q.X, p.Y + q.Y, p.Z + q.Z} }

// Sub returns p-q.
func (p Point3) Sub(q Point3) Point3 { return Point3{p.X - q.X, p.Y - q.Y, p.Z - q.Z} }

// Scale returns p*k.
func (p Point3) Scale(k float64) Point3 { return Point3{p.X * k, p.Y * k, p.Z * k} }

// Dot returns the inner product p.q.
func (p Point3) Dot(q Point3) float64 { return p.X*q.X + p.Y*q.Y + p.Z*q.Z }

// Cross returns p x q.
func (p Point3) Cross(q Point3) Vec3 {
	return Vec3{
		p.Y*q.Z - p.Z*q.Y,
		p.Z*q.X - p.X*q.Z,
		p.X*q.Y - p.Y*q.X,
	}
}

// Length returns the Euclidean norm of p.
func (p Point3) Length() float64 { return math.Sqrt(p.Dot(p)) }

// LengthSquared avoids the sqrt when only comparison is needed (closest
// point search, collinearity checks).
func (p Point3) LengthSquared() float64 { return p.Dot(p) }

// DistanceTo returns ||p-q||.
func (p Point3) DistanceTo(q Point3) float64 { return p.Sub(q).Length() }

// Normalize returns p/||p||; the zero vector is returned unchanged if
// ||p|| < Epsilon rather than dividing by (near) zero.
func (p Point3) Normalize() Vec3 {
	n := p.Length()
	if n < Epsilon {
		return p
	}
	return p.Scale(1 / n)
}

// ApproxEqual reports whether p and q coincide within tol.
func (p Point3) ApproxEqual(q Point3, tol float64) bool {
	return p.Sub(q).LengthSquared() <= tol*tol
}

// Collinear reports whether a, b, c lie on a line within tol: the
// perpendicular distance from b to the line a-c must not exceed tol, used
// by the adaptive sampler's termination test (spec.md §4.4).
func Collinear(a, b, c Point3, tol float64) bool {
	ac := c.Sub(a)
	chord := ac.Length()
	if chord < Epsilon {
		return b.Sub(a).Length() <= tol
	}
	ab := b.Sub(a)
	cross := ab.Cross(ac)
	return cross.Length()/chord <= tol
}
