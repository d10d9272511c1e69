package math

import (
	"math"
)

// Boundary is an axis aligned box. The zero value is a box collapsed at
// the origin, NewBoundary returns an empty one.
type Boundary struct {
	Min, Max Vector
}

func NewBoundary() Boundary {
	return Boundary{
		Min: Vector{math.Inf(1), math.Inf(1), math.Inf(1), 0},
		Max: Vector{math.Inf(-1), math.Inf(-1), math.Inf(-1), 0},
	}
}

func BoundaryFromPoints(pts ...Vector) Boundary {
	b := NewBoundary()
	for _, p := range pts {
		b.AddPoint(p)
	}

	return b
}

func (b Boundary) Equals(e Boundary, precision int) bool {
	return b.Min.Equals(e.Min, precision) && b.Max.Equals(e.Max, precision)
}

func (b Boundary) IsEmpty() bool {
	return b.Max[0] < b.Min[0] || b.Max[1] < b.Min[1] || b.Max[2] < b.Min[2]
}

// Reset collapses the box onto p.
func (b *Boundary) Reset(p Vector) {
	b.Min = p.Vec3()
	b.Max = p.Vec3()
}

func (b *Boundary) AddPoint(p Vector) {
	b.Min[0], b.Max[0] = math.Min(b.Min[0], p[0]), math.Max(b.Max[0], p[0])
	b.Min[1], b.Max[1] = math.Min(b.Min[1], p[1]), math.Max(b.Max[1], p[1])
	b.Min[2], b.Max[2] = math.Min(b.Min[2], p[2]), math.Max(b.Max[2], p[2])
}

func (b *Boundary) AddBoundary(a Boundary) {
	if a.IsEmpty() {
		return
	}

	b.AddPoint(a.Max)
	b.AddPoint(a.Min)
}

func (b Boundary) ContainsPoint(p Vector) bool {
	return p[0] >= b.Min[0] && p[0] <= b.Max[0] &&
		p[1] >= b.Min[1] && p[1] <= b.Max[1] &&
		p[2] >= b.Min[2] && p[2] <= b.Max[2]
}

func (b Boundary) Intersects(o Boundary) bool {
	return b.Min[0] <= o.Max[0] && b.Max[0] >= o.Min[0] &&
		b.Min[1] <= o.Max[1] && b.Max[1] >= o.Min[1] &&
		b.Min[2] <= o.Max[2] && b.Max[2] >= o.Min[2]
}

func (b Boundary) Center() Vector {
	return b.Min.Add(b.Max).MulScalar(0.5)
}

func (b Boundary) Size() Vector {
	return b.Max.Sub(b.Min)
}

func (b Boundary) Sphere() (center Vector, radius float64) {
	return b.Center(), b.Size().Length() * 0.5
}

// Corners returns the eight corners, min first and max last.
func (b Boundary) Corners() [8]Vector {
	return [8]Vector{
		{b.Min[0], b.Min[1], b.Min[2], 0},
		{b.Max[0], b.Min[1], b.Min[2], 0},
		{b.Min[0], b.Max[1], b.Min[2], 0},
		{b.Max[0], b.Max[1], b.Min[2], 0},
		{b.Min[0], b.Min[1], b.Max[2], 0},
		{b.Max[0], b.Min[1], b.Max[2], 0},
		{b.Min[0], b.Max[1], b.Max[2], 0},
		{b.Max[0], b.Max[1], b.Max[2], 0},
	}
}
