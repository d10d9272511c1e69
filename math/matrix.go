package math

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/go-gl/mathgl/mgl64"
)

/*	opengl - column first, same memory layout as mgl64.Mat4
	+-          -+ +-           -+ +-          -+
	| 0  4  8 12 | | 00 01 02 03 | | 1  0  0  x |
	| 1  5  9 13 | | 10 11 12 13 | | 0  1  0  y |
	| 2  6 10 14 | | 20 21 22 23 | | 0  0  1  z |
	| 3  7 11 15 | | 30 31 32 33 | | 0  0  0  1 |
	+-          -+ +-           -+ +-          -+

	row i of the mathematical matrix is (m[i], m[4+i], m[8+i], m[12+i])
*/
type Matrix [16]float64

func (self Matrix) String() string {
	r := ""

	for i, n := range self {
		if i > 0 && i%4 == 0 {
			r += "\n"
		}

		r += fmt.Sprintf("%5.2f ", n)
	}

	return r
}

func Identity() Matrix {
	return Matrix(mgl64.Ident4())
}

func MatrixFromMat4(m mgl32.Mat4) Matrix {
	var r Matrix
	for i := range m {
		r[i] = float64(m[i])
	}

	return r
}

func MatrixFromMat4d(m mgl64.Mat4) Matrix {
	return Matrix(m)
}

func (self Matrix) Mat4() mgl32.Mat4 {
	var r mgl32.Mat4
	for i := range self {
		r[i] = float32(self[i])
	}

	return r
}

func (self Matrix) Mat4d() mgl64.Mat4 {
	return mgl64.Mat4(self)
}

// Row returns row i of the matrix as a 4-tuple.
func (self Matrix) Row(i int) Vector {
	return Vector{self[i], self[4+i], self[8+i], self[12+i]}
}

// Transform multiplies the full homogeneous vector.
func (self Matrix) Transform(v Vector) Vector {
	return Vector(self.Mat4d().Mul4x1(mgl64.Vec4(v)))
}

// TransformPoint transforms v as a point with an implicit w of 1.
// The w of the result is the w of v.
func (self Matrix) TransformPoint(v Vector) Vector {
	return Vector{
		self[0]*v[0] + self[4]*v[1] + self[8]*v[2] + self[12],
		self[1]*v[0] + self[5]*v[1] + self[9]*v[2] + self[13],
		self[2]*v[0] + self[6]*v[1] + self[10]*v[2] + self[14],
		v[3],
	}
}

// RotateVector applies only the upper 3x3 part of the matrix.
func (self Matrix) RotateVector(v Vector) Vector {
	return Vector{
		self[0]*v[0] + self[4]*v[1] + self[8]*v[2],
		self[1]*v[0] + self[5]*v[1] + self[9]*v[2],
		self[2]*v[0] + self[6]*v[1] + self[10]*v[2],
		v[3],
	}
}

/*
	TransformPlane moves p with the forward matrix: the member point is
	transformed as a point, the normal is rotated by the upper 3x3 part.
	The normal is not renormalized, so this is only exact for rigid
	transformations.
*/
func (self Matrix) TransformPlane(p Plane) Plane {
	member := self.TransformPoint(p.MemberPoint())
	normal := self.RotateVector(p.Normal.Vec3())

	return Plane{
		Normal: normal,
		D:      -member.Dot(normal),
	}
}

func (self Matrix) Transpose() Matrix {
	return Matrix(self.Mat4d().Transpose())
}

func (self Matrix) Mul(m Matrix) Matrix {
	return Matrix(self.Mat4d().Mul4(m.Mat4d()))
}

func (self Matrix) MulScalar(s float64) Matrix {
	return Matrix(self.Mat4d().Mul(s))
}

func (self Matrix) Determinant() float64 {
	return self.Mat4d().Det()
}

// Inverse returns the identity for singular matrices.
func (self Matrix) Inverse() Matrix {
	if self.Determinant() == 0 {
		return Identity()
	}

	return Matrix(self.Mat4d().Inv())
}

func (self Matrix) Scale(v Vector) Matrix {
	return self.Mul(Matrix(mgl64.Scale3D(v[0], v[1], v[2])))
}

// Rotate rotates by angle radians around the axis v.
func (self Matrix) Rotate(angle float64, v Vector) Matrix {
	return self.Mul(Matrix(mgl64.HomogRotate3D(angle, v.Vec3d().Normalize())))
}

func (self Matrix) Translate(v Vector) Matrix {
	return self.Mul(Matrix(mgl64.Translate3D(v[0], v[1], v[2])))
}

func (self Matrix) ExtractPosition() Vector {
	return Vector{self[12], self[13], self[14], 0}
}

func (self Matrix) Equals(m Matrix, precision int) bool {
	p := precisionEpsilon(precision)

	for i := range self {
		if !NearlyEquals(self[i], m[i], p) {
			return false
		}
	}

	return true
}

// NewViewMatrix returns the world-to-camera matrix of a camera at eye looking at target.
func NewViewMatrix(eye, target, up Vector) Matrix {
	return Matrix(mgl64.LookAtV(eye.Vec3d(), target.Vec3d(), up.Vec3d()))
}

// NewPerspectiveMatrix builds a right handed projection with depth mapped to -w..w.
// fovy is in degrees.
func NewPerspectiveMatrix(fovy, aspect, near, far float64) Matrix {
	return Matrix(mgl64.Perspective(fovy*DEG2RAD, aspect, near, far))
}

// NewPerspectiveMatrixZO is NewPerspectiveMatrix with depth mapped to 0..w.
func NewPerspectiveMatrixZO(fovy, aspect, near, far float64) Matrix {
	m := NewPerspectiveMatrix(fovy, aspect, near, far)
	nmf := near - far
	m[10] = far / nmf
	m[14] = near * far / nmf

	return m
}

func NewFrustumMatrix(left, right, bottom, top, near, far float64) Matrix {
	return Matrix(mgl64.Frustum(left, right, bottom, top, near, far))
}

func NewOrthoMatrix(left, right, bottom, top, near, far float64) Matrix {
	return Matrix(mgl64.Ortho(left, right, bottom, top, near, far))
}

// NewOrthoMatrixZO is NewOrthoMatrix with depth mapped to 0..w.
func NewOrthoMatrixZO(left, right, bottom, top, near, far float64) Matrix {
	m := NewOrthoMatrix(left, right, bottom, top, near, far)
	nmf := near - far
	m[10] = 1 / nmf
	m[14] = near / nmf

	return m
}
