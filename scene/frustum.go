package scene

import (
	m "math"

	"github.com/der-antikeks/viewfrustum/math"
)

// Planes enclosing the view frustum, in visiting order.
const (
	FarPlane = iota
	NearPlane
	LeftPlane
	RightPlane
	BottomPlane
	TopPlane

	PlaneCount
)

// PlaneNames holds the lower case name of each plane index.
var PlaneNames = [PlaneCount]string{"far", "near", "left", "right", "bottom", "top"}

/*
	ViewFrustum is the space visible by a camera. It is enclosed by six
	planes that share eight corner points; a bounding box and a bounding
	sphere around these points are kept alongside.

	Plane normals point outwards, a point is inside the frustum if it lies
	behind every plane. The zero value is an empty frustum. ViewFrustum is
	a plain value and not safe for concurrent mutation.
*/
type ViewFrustum struct {
	CameraPosition math.Vector
	Planes         [PlaneCount]math.Plane
	BoundingBox    math.Boundary

	matrices        [transformSlots]math.Matrix
	boundingRadius  float64
	farNearDistance float64
	boundingCenter  math.Vector
}

// NewViewFrustum creates a view frustum from a projection and/or view matrix.
// With zClipFromZero the depth of the clip space runs from 0 to w (D3D style),
// otherwise from -w to w (OpenGL style).
func NewViewFrustum(mat math.Matrix, zClipFromZero bool) *ViewFrustum {
	f := &ViewFrustum{}
	f.SetFrom(mat, zClipFromZero)

	return f
}

// SetFrom extracts the planes from mat and recalculates the bounding volumes.
func (f *ViewFrustum) SetFrom(mat math.Matrix, zClipFromZero bool) {
	r0, r1, r2, r3 := mat.Row(0), mat.Row(1), mat.Row(2), mat.Row(3)

	f.Planes[LeftPlane] = planeFromRow(r3.Add(r0))
	f.Planes[RightPlane] = planeFromRow(r3.Sub(r0))
	f.Planes[TopPlane] = planeFromRow(r3.Sub(r1))
	f.Planes[BottomPlane] = planeFromRow(r3.Add(r1))
	f.Planes[FarPlane] = planeFromRow(r3.Sub(r2))

	if zClipFromZero {
		f.Planes[NearPlane] = planeFromRow(r2)
	} else {
		f.Planes[NearPlane] = planeFromRow(r3.Add(r2))
	}

	// flip to outward normals of unit length
	for i := range f.Planes {
		l := -1 / m.Sqrt(f.Planes[i].Normal.LengthSquared())
		f.Planes[i].Normal = f.Planes[i].Normal.MulScalar(l)
		f.Planes[i].D *= l
	}

	f.RecalculateBoundingBox()
}

func planeFromRow(r math.Vector) math.Plane {
	return math.Plane{
		Normal: math.Vector{r[0], r[1], r[2], 0},
		D:      r[3],
	}
}

// Transform moves the frustum and the camera position by mat, e.g. to
// follow a camera. Planes are moved with the forward matrix, which is only
// exact for rigid transformations.
func (f *ViewFrustum) Transform(mat math.Matrix) {
	for i := range f.Planes {
		f.Planes[i] = mat.TransformPlane(f.Planes[i])
	}

	f.CameraPosition = mat.TransformPoint(f.CameraPosition)
	f.RecalculateBoundingBox()
}

func (f *ViewFrustum) corner(a, b, c int) math.Vector {
	p, _ := f.Planes[a].IntersectionWithPlanes(f.Planes[b], f.Planes[c])
	return p
}

func (f *ViewFrustum) FarLeftUp() math.Vector     { return f.corner(FarPlane, TopPlane, LeftPlane) }
func (f *ViewFrustum) FarLeftDown() math.Vector   { return f.corner(FarPlane, BottomPlane, LeftPlane) }
func (f *ViewFrustum) FarRightUp() math.Vector    { return f.corner(FarPlane, TopPlane, RightPlane) }
func (f *ViewFrustum) FarRightDown() math.Vector  { return f.corner(FarPlane, BottomPlane, RightPlane) }
func (f *ViewFrustum) NearLeftUp() math.Vector    { return f.corner(NearPlane, TopPlane, LeftPlane) }
func (f *ViewFrustum) NearLeftDown() math.Vector  { return f.corner(NearPlane, BottomPlane, LeftPlane) }
func (f *ViewFrustum) NearRightUp() math.Vector   { return f.corner(NearPlane, TopPlane, RightPlane) }
func (f *ViewFrustum) NearRightDown() math.Vector { return f.corner(NearPlane, BottomPlane, RightPlane) }

// Corners returns all eight corners: near left up, near right up,
// near left down, near right down, far right up, far left down,
// far right down, far left up.
func (f *ViewFrustum) Corners() [8]math.Vector {
	return [8]math.Vector{
		f.NearLeftUp(),
		f.NearRightUp(),
		f.NearLeftDown(),
		f.NearRightDown(),
		f.FarRightUp(),
		f.FarLeftDown(),
		f.FarRightDown(),
		f.FarLeftUp(),
	}
}

func (f *ViewFrustum) Boundary() math.Boundary {
	return f.BoundingBox
}

// RecalculateBoundingBox recalculates the bounding box and sphere from the
// planes. It must be called after Planes was changed directly.
func (f *ViewFrustum) RecalculateBoundingBox() {
	c := f.Corners()

	f.BoundingBox.Reset(c[0])
	for _, p := range c[1:] {
		f.BoundingBox.AddPoint(p)
	}

	f.recalculateBoundingSphere(c)
}

/*
	recalculateBoundingSphere places the center on the view axis, between
	the near and the far plane, so that it is about equally distant to the
	near and far corners. It assumes a symmetric frustum and a far-near
	distance set by the camera; a zero distance yields a non-finite sphere.
*/
func (f *ViewFrustum) recalculateBoundingSphere(c [8]math.Vector) {
	nearLeftUp, nearRightUp := c[0], c[1]
	farRightUp, farLeftUp := c[4], c[7]

	shortlen := nearLeftUp.Sub(nearRightUp).Length()
	longlen := farLeftUp.Sub(farRightUp).Length()

	farlen := f.farNearDistance
	fartocenter := (farlen + (shortlen-longlen)*(shortlen+longlen)/(4*farlen)) / 2
	neartocenter := farlen - fartocenter

	f.boundingCenter = f.CameraPosition.Vec3().Add(f.Planes[NearPlane].Normal.Negate().MulScalar(neartocenter))

	var longest float64
	for _, p := range c {
		if d := p.DistanceToSquared(f.boundingCenter); d > longest {
			longest = d
		}
	}

	// keep NaN visible instead of reporting a zero radius
	if m.IsNaN(f.boundingCenter.LengthSquared()) {
		longest = m.NaN()
	}

	f.boundingRadius = m.Sqrt(longest)
}

// BoundingRadius is the radius of the bounding sphere, which is tighter
// than the sphere around BoundingBox.
func (f *ViewFrustum) BoundingRadius() float64 {
	return f.boundingRadius
}

// BoundingCenter is the center of the bounding sphere. Its placement is
// only verified for symmetric projections.
func (f *ViewFrustum) BoundingCenter() math.Vector {
	return f.boundingCenter
}

// SetFarNearDistance is called by the camera with the distance between
// its near and far plane. It takes effect on the next recalculation.
func (f *ViewFrustum) SetFarNearDistance(distance float64) {
	f.farNearDistance = distance
}

func (f *ViewFrustum) FarNearDistance() float64 {
	return f.farNearDistance
}

/*
	ClipLine clips l to the frustum and reports whether it was clipped.
	Planes are visited in order and each endpoint in front of a plane is
	moved onto it, so later planes see the already clipped segment.
*/
func (f *ViewFrustum) ClipLine(l *math.Line) bool {
	clipped := false

	for _, p := range f.Planes {
		if p.ClassifyPoint(l.Start) == math.Front {
			l.Start = l.Start.Interpolate(l.End, 1-p.KnownIntersectionWithLine(l.Start, l.End))
			clipped = true
		}
		if p.ClassifyPoint(l.End) == math.Front {
			l.End = l.Start.Interpolate(l.End, 1-p.KnownIntersectionWithLine(l.Start, l.End))
			clipped = true
		}
	}

	return clipped
}
