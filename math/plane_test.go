package math

import (
	"math"
	"testing"
)

func TestPlane_Normalize(t *testing.T) {
	p := Plane{Normal: Vector{0, 3, 4}, D: 10}
	expected := Plane{Normal: Vector{0, 0.6, 0.8}, D: 2}

	if r := p.Normalize(); !r.Equals(expected, 6) {
		t.Errorf("Plane(%v).Normalize() != %v (got %v)", p, expected, r)
	}
}

func TestNewPlane(t *testing.T) {
	p := NewPlane(Vector{0, 0, 5, 1}, Vector{0, 0, 1})

	if !p.Equals(Plane{Normal: Vector{0, 0, 1}, D: -5}, 6) {
		t.Errorf("NewPlane() got %v", p)
	}
	if r := p.MemberPoint(); !r.Equals(Vector{0, 0, 5}, 6) {
		t.Errorf("Plane(%v).MemberPoint() got %v", p, r)
	}
}

func TestPlane_ClassifyPoint(t *testing.T) {
	p := Plane{Normal: Vector{0, 0, 1}, D: -1}

	tests := []struct {
		Point    Vector
		Expected Relation
		Distance float64
	}{
		{Vector{0, 0, 5}, Front, 4},
		{Vector{3, -7, 0}, Back, -1},
		{Vector{9, 9, 1}, Planar, 0},
		{Vector{0, 0, 1.0000001}, Planar, 0.0000001},
		{Vector{0, 0, 1, 1}, Planar, 0},
	}

	for _, c := range tests {
		if r := p.ClassifyPoint(c.Point); r != c.Expected {
			t.Errorf("Plane(%v).ClassifyPoint(%v) != %v (got %v)", p, c.Point, c.Expected, r)
		}
		if r := p.DistanceTo(c.Point); math.Abs(r-c.Distance) > 0.000001 {
			t.Errorf("Plane(%v).DistanceTo(%v) != %v (got %v)", p, c.Point, c.Distance, r)
		}
	}
}

func TestPlane_KnownIntersectionWithLine(t *testing.T) {
	p := Plane{Normal: Vector{1, 0, 0}, D: -2}

	tests := []struct {
		A, B     Vector
		Expected float64
	}{
		{Vector{0, 0, 0}, Vector{4, 0, 0}, 0.5},
		{Vector{4, 1, 1}, Vector{0, 1, 1}, 0.5},
		{Vector{2, 0, 0}, Vector{10, 5, 0}, 0},
		{Vector{-2, 0, 0}, Vector{-1, 0, 0}, 4},
	}

	for _, c := range tests {
		if r := p.KnownIntersectionWithLine(c.A, c.B); !NearlyEquals(r, c.Expected, 0.000001) {
			t.Errorf("Plane(%v).KnownIntersectionWithLine(%v, %v) != %v (got %v)", p, c.A, c.B, c.Expected, r)
		}
	}

	if r := p.KnownIntersectionWithLine(Vector{0, 0, 0}, Vector{0, 1, 0}); IsFinite(r) {
		t.Errorf("parallel segment should not yield a finite parameter (got %v)", r)
	}
}

func TestPlane_IntersectionWithLine(t *testing.T) {
	p := Plane{Normal: Vector{0, 1, 0}, D: -3}

	if r, ok := p.IntersectionWithLine(Vector{1, 0, 1}, Vector{0, 2, 0}); !ok || !r.Equals(Vector{1, 3, 1}, 6) {
		t.Errorf("Plane(%v).IntersectionWithLine() != %v (got %v, %v)", p, Vector{1, 3, 1}, r, ok)
	}
	if _, ok := p.IntersectionWithLine(Vector{1, 0, 1}, Vector{1, 0, 0}); ok {
		t.Errorf("Plane(%v).IntersectionWithLine() parallel should fail", p)
	}
}

func TestPlane_IntersectionWithPlanes(t *testing.T) {
	tests := []struct {
		A, B, C  Plane
		Expected Vector
		Ok       bool
	}{
		{
			Plane{Normal: Vector{1, 0, 0}, D: -1},
			Plane{Normal: Vector{0, 1, 0}, D: -2},
			Plane{Normal: Vector{0, 0, 1}, D: -3},
			Vector{1, 2, 3},
			true,
		}, {
			Plane{Normal: Vector{0, 0, -1}, D: 4},
			Plane{Normal: Vector{1, 0, 0}, D: 0},
			Plane{Normal: Vector{0, 1, 0}, D: 5},
			Vector{0, -5, 4},
			true,
		}, {
			NewPlane(Vector{1, 1, 1}, Vector{1, 1, 0}.Normalize()),
			NewPlane(Vector{1, 1, 1}, Vector{0, 1, 1}.Normalize()),
			NewPlane(Vector{1, 1, 1}, Vector{1, 0, 1}.Normalize()),
			Vector{1, 1, 1},
			true,
		}, {
			Plane{Normal: Vector{1, 0, 0}, D: -1},
			Plane{Normal: Vector{1, 0, 0}, D: -2},
			Plane{Normal: Vector{0, 0, 1}, D: -3},
			Vector{},
			false,
		}, {
			Plane{Normal: Vector{1, 0, 0}, D: -1},
			Plane{Normal: Vector{0, 1, 0}, D: -2},
			Plane{Normal: Vector{1, 1, 0}.Normalize(), D: 0},
			Vector{},
			false,
		},
	}

	for _, c := range tests {
		r, ok := c.A.IntersectionWithPlanes(c.B, c.C)
		if ok != c.Ok || (ok && !r.Equals(c.Expected, 6)) {
			t.Errorf("Plane(%v).IntersectionWithPlanes(%v, %v) != %v, %v (got %v, %v)", c.A, c.B, c.C, c.Expected, c.Ok, r, ok)
		}
	}
}

func BenchmarkPlane_IntersectionWithPlanes(b *testing.B) {
	p1 := Plane{Normal: Vector{1, 0, 0}, D: -1}
	p2 := Plane{Normal: Vector{0, 1, 0}, D: -2}
	p3 := Plane{Normal: Vector{0, 0, 1}, D: -3}

	for i := 0; i < b.N; i++ {
		p1.IntersectionWithPlanes(p2, p3)
	}
}

func TestRelation_String(t *testing.T) {
	tests := []struct {
		R        Relation
		Expected string
	}{
		{Front, "front"},
		{Back, "back"},
		{Planar, "planar"},
		{Clipped, "clipped"},
		{Relation(42), "Relation(42)"},
	}

	for _, c := range tests {
		if r := c.R.String(); r != c.Expected {
			t.Errorf("Relation(%d).String() != %q (got %q)", int(c.R), c.Expected, r)
		}
	}
}

func TestLine(t *testing.T) {
	l := Line{Start: Vector{0, 0, 0}, End: Vector{0, 4, 3}}

	if r := l.Length(); !NearlyEquals(r, 5, 0.000001) {
		t.Errorf("Line(%v).Length() != 5 (got %v)", l, r)
	}
	if r := l.Middle(); !r.Equals(Vector{0, 2, 1.5}, 6) {
		t.Errorf("Line(%v).Middle() got %v", l, r)
	}
	if r := l.Vector(); !r.Equals(Vector{0, 4, 3}, 6) {
		t.Errorf("Line(%v).Vector() got %v", l, r)
	}
}
