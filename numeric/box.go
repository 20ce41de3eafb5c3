package numeric

import "math"

// Box is an axis-aligned bounding box. The zero value is not a valid empty
// box (Min/Max would both be the origin); use EmptyBox for the sentinel.
type Box struct {
	Min, Max Point3
	valid    bool
}

// EmptyBox returns the invalid sentinel box (spec.md §3: "is_valid
// predicate distinguishing the empty sentinel from a real box").
func EmptyBox() Box { return Box{} }

// NewBox builds a valid box from two corners, reordering components so Min
// <= Max on every axis.
func NewBox(a, b Point3) Box {
	return Box{
		Min:   Point3{math.Min(a.X, b.X), math.Min(a.Y, b.Y), math.Min(a.Z, b.Z)},
		Max:   Point3{math.Max(a.X, b.X), math.Max(a.Y, b.Y), math.Max(a.Z, b.Z)},
		valid: true,
	}
}

// BoxFromPoints builds the bounding box of a point cloud; an empty slice
// yields the invalid sentinel.
func BoxFromPoints(pts []Point3) Box {
	if len(pts) == 0 {
		return EmptyBox()
	}
	b := NewBox(pts[0], pts[0])
	for _, p := range pts[1:] {
		b = b.ExpandToInclude(p)
	}
	return b
}

// IsValid reports whether b holds real bounds.
func (b Box) IsValid() bool { return b.valid }

// ExpandToInclude grows b to also contain p.
func (b Box) ExpandToInclude(p Point3) Box {
	if !b.valid {
		return NewBox(p, p)
	}
	return NewBox(
		Point3{math.Min(b.Min.X, p.X), math.Min(b.Min.Y, p.Y), math.Min(b.Min.Z, p.Z)},
		Point3{math.Max(b.Max.X, p.X), math.Max(b.Max.Y, p.Y), math.Max(b.Max.Z, p.Z)},
	)
}

// Union returns the smallest box containing both a and b. Union with an
// invalid box returns the other operand unchanged (spec.md §3, §7).
func (a Box) Union(b Box) Box {
	if !a.valid {
		return b
	}
	if !b.valid {
		return a
	}
	return NewBox(
		Point3{math.Min(a.Min.X, b.Min.X), math.Min(a.Min.Y, b.Min.Y), math.Min(a.Min.Z, b.Min.Z)},
		Point3{math.Max(a.Max.X, b.Max.X), math.Max(a.Max.Y, b.Max.Y), math.Max(a.Max.Z, b.Max.Z)},
	)
}

// Intersect returns the overlap of a and b; intersection with an invalid
// box is invalid (spec.md §3).
func (a Box) Intersect(b Box) Box {
	if !a.valid || !b.valid {
		return EmptyBox()
	}
	min := Point3{math.Max(a.Min.X, b.Min.X), math.Max(a.Min.Y, b.Min.Y), math.Max(a.Min.Z, b.Min.Z)}
	max := Point3{math.Min(a.Max.X, b.Max.X), math.Min(a.Max.Y, b.Max.Y), math.Min(a.Max.Z, b.Max.Z)}
	if min.X > max.X || min.Y > max.Y || min.Z > max.Z {
		return EmptyBox()
	}
	return Box{Min: min, Max: max, valid: true}
}

// Overlaps reports whether a and b come within tol of touching, the test
// the BVH pair traversal uses to decide whether to keep descending
// (spec.md §4.5: "bounding boxes do not overlap (within epsilon)").
func (a Box) Overlaps(b Box, tol float64) bool {
	if !a.valid || !b.valid {
		return false
	}
	return a.Min.X-tol <= b.Max.X && b.Min.X-tol <= a.Max.X &&
		a.Min.Y-tol <= b.Max.Y && b.Min.Y-tol <= a.Max.Y &&
		a.Min.Z-tol <= b.Max.Z && b.Min.Z-tol <= a.Max.Z
}

// Diagonal returns the two opposite corners used by the plane-traversal
// sign test (spec.md §4.5).
func (b Box) Diagonal() (Point3, Point3) { return b.Min, b.Max }
