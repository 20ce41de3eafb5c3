package numeric

// Plane is an infinite plane through Origin with unit Normal. Intersection
// routines (C9) and the BVH plane traversal (C7) both operate on this type,
// so it lives in numeric alongside Box and Interval rather than in isect.
type Plane struct {
	Origin Point3
	Normal Vec3
}

// NewPlane builds a plane, normalizing the supplied normal.
func NewPlane(origin Point3, normal Vec3) Plane {
	return Plane{Origin: origin, Normal: normal.Normalize()}
}

// SignedDistance returns the signed distance from p to the plane, positive
// on the side Normal points toward.
func (pl Plane) SignedDistance(p Point3) float64 {
	return pl.Normal.Dot(p.Sub(pl.Origin))
}
