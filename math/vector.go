package math

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/go-gl/mathgl/mgl64"
)

// Vector is a homogeneous vector. Points and directions of the frustum
// geometry are three dimensional and keep w at zero.
type Vector [4]float64

func (self Vector) String() string {
	return fmt.Sprintf("%5.2f %5.2f %5.2f %5.2f", self[0], self[1], self[2], self[3])
}

func (self Vector) Equals(v Vector, precision int) bool {
	p := precisionEpsilon(precision)

	return (NearlyEquals(self[0], v[0], p) &&
		NearlyEquals(self[1], v[1], p) &&
		NearlyEquals(self[2], v[2], p) &&
		NearlyEquals(self[3], v[3], p))
}

// Vec3 returns a copy with w dropped.
func (self Vector) Vec3() Vector {
	return Vector{self[0], self[1], self[2], 0}
}

func (self Vector) Length() float64 {
	return math.Sqrt(self.LengthSquared())
}

func (self Vector) LengthSquared() float64 {
	return self.Dot(self)
}

func (self Vector) Dot(v Vector) float64 {
	return self[0]*v[0] + self[1]*v[1] + self[2]*v[2] + self[3]*v[3]
}

func (self Vector) Normalize() Vector {
	l := self.Length()
	if l == 0 {
		return self
	}

	return self.MulScalar(1 / l)
}

func (self Vector) Add(v Vector) Vector {
	return Vector{
		self[0] + v[0],
		self[1] + v[1],
		self[2] + v[2],
		self[3] + v[3],
	}
}

func (self Vector) Sub(v Vector) Vector {
	return Vector{
		self[0] - v[0],
		self[1] - v[1],
		self[2] - v[2],
		self[3] - v[3],
	}
}

func (self Vector) MulScalar(s float64) Vector {
	return Vector{
		self[0] * s,
		self[1] * s,
		self[2] * s,
		self[3] * s,
	}
}

func (self Vector) Negate() Vector {
	return self.MulScalar(-1)
}

// Cross ignores w.
func (self Vector) Cross(v Vector) Vector {
	return Vector{
		self[1]*v[2] - self[2]*v[1],
		self[2]*v[0] - self[0]*v[2],
		self[0]*v[1] - self[1]*v[0],
		0,
	}
}

/*
	Interpolate returns the point at d between v and self.
	d=0 yields v, d=1 yields self.
*/
func (self Vector) Interpolate(v Vector, d float64) Vector {
	return v.MulScalar(1 - d).Add(self.MulScalar(d))
}

func (self Vector) DistanceTo(v Vector) float64 {
	return math.Sqrt(self.DistanceToSquared(v))
}

func (self Vector) DistanceToSquared(v Vector) float64 {
	return self.Sub(v).LengthSquared()
}

// IsFinite reports whether no component is NaN or infinite.
func (self Vector) IsFinite() bool {
	return IsFinite(self[0]) && IsFinite(self[1]) && IsFinite(self[2]) && IsFinite(self[3])
}

func VectorFromVec3(v mgl32.Vec3) Vector {
	return Vector{float64(v[0]), float64(v[1]), float64(v[2]), 0}
}

func VectorFromVec3d(v mgl64.Vec3) Vector {
	return Vector{v[0], v[1], v[2], 0}
}

func (self Vector) Vec3d() mgl64.Vec3 {
	return mgl64.Vec3{self[0], self[1], self[2]}
}

func (self Vector) Vec3f() mgl32.Vec3 {
	return mgl32.Vec3{float32(self[0]), float32(self[1]), float32(self[2])}
}
