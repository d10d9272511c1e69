/*
	frustumdump prints the planes, corners and bounding volumes of the view
	frustum of a camera. Spheres given as arguments in the form x,y,z,r are
	culled against the frustum and the visible ones printed nearest to the
	eye first.

		frustumdump -fov 60 -aspect 1.6 -eye 0,2,10 1,0,-5,1 40,0,0,2
*/
package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"strconv"
	"strings"

	"github.com/der-antikeks/viewfrustum/math"
	"github.com/der-antikeks/viewfrustum/scene"
)

var errComponents = errors.New("wrong number of components")

type vectorFlag math.Vector

func (f *vectorFlag) String() string {
	return fmt.Sprintf("%v,%v,%v", f[0], f[1], f[2])
}

func (f *vectorFlag) Set(s string) error {
	c, err := parseFloats(s, 3)
	if err != nil {
		return err
	}
	*f = vectorFlag{c[0], c[1], c[2]}
	return nil
}

func parseFloats(s string, n int) ([]float64, error) {
	parts := strings.Split(s, ",")
	if len(parts) != n {
		return nil, fmt.Errorf("%q: expected %d, got %d: %w", s, n, len(parts), errComponents)
	}

	c := make([]float64, n)
	for i, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return nil, fmt.Errorf("%q: %w", s, err)
		}
		c[i] = v
	}
	return c, nil
}

type camera struct {
	fov, aspect float64
	near, far   float64
	ortho       float64 // half height, perspective if zero
	zo          bool

	eye, target, up math.Vector
}

func (c camera) projection() math.Matrix {
	w := c.ortho * c.aspect

	switch {
	case c.ortho != 0 && c.zo:
		return math.NewOrthoMatrixZO(-w, w, -c.ortho, c.ortho, c.near, c.far)
	case c.ortho != 0:
		return math.NewOrthoMatrix(-w, w, -c.ortho, c.ortho, c.near, c.far)
	case c.zo:
		return math.NewPerspectiveMatrixZO(c.fov, c.aspect, c.near, c.far)
	default:
		return math.NewPerspectiveMatrix(c.fov, c.aspect, c.near, c.far)
	}
}

// frustum returns the view frustum of c in world space.
func (c camera) frustum() *scene.ViewFrustum {
	proj := c.projection()
	view := math.NewViewMatrix(c.eye, c.target, c.up)

	f := &scene.ViewFrustum{}
	f.CameraPosition = view.Inverse().ExtractPosition()
	f.SetFarNearDistance(c.far - c.near)
	f.SetFrom(proj.Mul(view), c.zo)
	f.SetTransformMatrix(scene.TransformView, view)
	f.SetTransformMatrix(scene.TransformProjection, proj)

	return f
}

// cull returns the spheres intersecting f, nearest to from first.
func cull(f *scene.ViewFrustum, from math.Vector, spheres []string) ([]string, error) {
	tree := scene.NewSphereTree()
	for i, s := range spheres {
		c, err := parseFloats(s, 4)
		if err != nil {
			return nil, err
		}
		tree.Add(uint(i), math.Vector{c[0], c[1], c[2]}, c[3])
	}

	var visible []string
	for _, id := range tree.VisibleSorted(f, from) {
		visible = append(visible, spheres[id])
	}
	return visible, nil
}

func main() {
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)

	cam := camera{
		eye:    math.Vector{0, 0, 0},
		target: math.Vector{0, 0, -1},
		up:     math.Vector{0, 1, 0},
	}
	flag.Float64Var(&cam.fov, "fov", 45, "vertical field of view in degrees")
	flag.Float64Var(&cam.aspect, "aspect", 4.0/3.0, "aspect ratio")
	flag.Float64Var(&cam.near, "near", 0.1, "near clipping distance")
	flag.Float64Var(&cam.far, "far", 100, "far clipping distance")
	flag.Float64Var(&cam.ortho, "ortho", 0, "orthographic half height, perspective if zero")
	flag.BoolVar(&cam.zo, "zo", false, "clip space depth ranges from zero to one")
	flag.Var((*vectorFlag)(&cam.eye), "eye", "camera position x,y,z")
	flag.Var((*vectorFlag)(&cam.target), "target", "camera target x,y,z")
	flag.Var((*vectorFlag)(&cam.up), "up", "camera up vector x,y,z")
	flag.Parse()

	f := cam.frustum()
	if err := f.Validate(); err != nil {
		log.Println("warning:", err)
	}

	fmt.Println("camera", f.CameraPosition)
	for i, p := range f.Planes {
		fmt.Printf("%-6s %v\n", scene.PlaneNames[i], p)
	}

	corners := []string{"nlu", "nru", "nld", "nrd", "fru", "fld", "frd", "flu"}
	for i, c := range f.Corners() {
		fmt.Printf("%-6s %v\n", corners[i], c)
	}

	fmt.Println("box", f.Boundary())
	fmt.Println("sphere", f.BoundingCenter(), f.BoundingRadius())

	if flag.NArg() == 0 {
		return
	}

	visible, err := cull(f, cam.eye, flag.Args())
	if err != nil {
		log.Fatal(err)
	}
	for _, s := range visible {
		fmt.Println("visible", s)
	}
}
