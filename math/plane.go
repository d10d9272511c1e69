package math

import (
	"fmt"
	"math"
)

// Relation is the position of a point or volume relative to a plane.
type Relation int

const (
	Front Relation = iota
	Back
	Planar
	Clipped
)

func (r Relation) String() string {
	switch r {
	case Front:
		return "front"
	case Back:
		return "back"
	case Planar:
		return "planar"
	case Clipped:
		return "clipped"
	}

	return fmt.Sprintf("Relation(%d)", int(r))
}

// Plane is the set of points P with Normal·P + D = 0.
// Points with a positive distance lie in front of the plane.
type Plane struct {
	Normal Vector
	D      float64
}

// NewPlane returns the plane through point with the given normal.
func NewPlane(point, normal Vector) Plane {
	normal = normal.Vec3()

	return Plane{
		Normal: normal,
		D:      -point.Vec3().Dot(normal),
	}
}

func (p Plane) String() string {
	return fmt.Sprintf("%v | %5.2f", p.Normal, p.D)
}

func (p Plane) Equals(o Plane, precision int) bool {
	return p.Normal.Equals(o.Normal, precision) && NearlyEquals(p.D, o.D, precisionEpsilon(precision))
}

func (p Plane) Normalize() Plane {
	magnitude := p.Normal.Length()

	return Plane{
		Normal: p.Normal.MulScalar(1.0 / magnitude),
		D:      p.D / magnitude,
	}
}

// DistanceTo is the signed distance for unit normals.
func (p Plane) DistanceTo(point Vector) float64 {
	return p.Normal.Dot(point.Vec3()) + p.D
}

// MemberPoint returns a point on the plane.
func (p Plane) MemberPoint() Vector {
	return p.Normal.MulScalar(-p.D)
}

func (p Plane) ClassifyPoint(point Vector) Relation {
	d := p.DistanceTo(point)

	if d < -RoundingError {
		return Back
	}
	if d > RoundingError {
		return Front
	}

	return Planar
}

/*
	KnownIntersectionWithLine returns the parameter t at which the segment
	a->b meets the plane. The caller must know that the segment is not
	parallel to the plane; otherwise the result is not finite.
*/
func (p Plane) KnownIntersectionWithLine(a, b Vector) float64 {
	dir := b.Sub(a).Vec3()

	return -(p.DistanceTo(a) / p.Normal.Dot(dir))
}

// IntersectionWithLine intersects the infinite line through point along dir.
func (p Plane) IntersectionWithLine(point, dir Vector) (Vector, bool) {
	t2 := p.Normal.Dot(dir.Vec3())
	if t2 == 0 {
		return Vector{}, false
	}

	t := -p.DistanceTo(point) / t2

	return point.Add(dir.MulScalar(t)), true
}

// IntersectionWithPlane returns a point on and the direction of the line
// shared by both planes.
func (p Plane) IntersectionWithPlane(o Plane) (point, dir Vector, ok bool) {
	fn00 := p.Normal.LengthSquared()
	fn01 := p.Normal.Dot(o.Normal)
	fn11 := o.Normal.LengthSquared()
	det := fn00*fn11 - fn01*fn01

	if math.Abs(det) < 0.00000001 {
		return Vector{}, Vector{}, false
	}

	invdet := 1.0 / det
	fc0 := (fn11*-p.D + fn01*o.D) * invdet
	fc1 := (fn00*-o.D + fn01*p.D) * invdet

	dir = p.Normal.Cross(o.Normal)
	point = p.Normal.MulScalar(fc0).Add(o.Normal.MulScalar(fc1)).Vec3()

	return point, dir, true
}

// IntersectionWithPlanes returns the single point shared by all three planes.
func (p Plane) IntersectionWithPlanes(o1, o2 Plane) (Vector, bool) {
	point, dir, ok := p.IntersectionWithPlane(o1)
	if !ok {
		return Vector{}, false
	}

	return o2.IntersectionWithLine(point, dir)
}
