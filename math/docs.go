/*
	3d math for frustum culling

	Vectors, planes and boxes use float64 and ignore the w component of
	Vector unless noted. Matrix is stored column major like OpenGL and
	go-gl/mathgl, so it converts to mgl64.Mat4 without reordering.
*/

package math
