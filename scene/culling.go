package scene

import (
	"github.com/der-antikeks/viewfrustum/math"
)

// ContainsPoint reports whether p lies inside or on the frustum.
func (f *ViewFrustum) ContainsPoint(p math.Vector) bool {
	for _, pl := range f.Planes {
		if pl.ClassifyPoint(p) == math.Front {
			return false
		}
	}

	return true
}

// IntersectsSphere reports whether the sphere touches the frustum. Spheres
// near an edge may be reported as intersecting although they are outside.
func (f *ViewFrustum) IntersectsSphere(center math.Vector, radius float64) bool {
	for _, pl := range f.Planes {
		if pl.DistanceTo(center) > radius {
			return false
		}
	}

	return true
}

/*
	ClassifyBoundary returns Back if b is completely inside the frustum,
	Front if it is completely outside of at least one plane and Clipped
	otherwise.
*/
func (f *ViewFrustum) ClassifyBoundary(b math.Boundary) math.Relation {
	result := math.Back

	for _, pl := range f.Planes {
		// corners of b nearest to and farthest from the outside
		var near, far math.Vector
		for i := 0; i < 3; i++ {
			if pl.Normal[i] >= 0 {
				near[i], far[i] = b.Min[i], b.Max[i]
			} else {
				near[i], far[i] = b.Max[i], b.Min[i]
			}
		}

		if pl.DistanceTo(near) > 0 {
			return math.Front
		}
		if pl.DistanceTo(far) > 0 {
			result = math.Clipped
		}
	}

	return result
}

// IntersectsBoundary reports whether b is at least partly inside the frustum.
func (f *ViewFrustum) IntersectsBoundary(b math.Boundary) bool {
	if !f.BoundingBox.Intersects(b) {
		return false
	}

	return f.ClassifyBoundary(b) != math.Front
}
