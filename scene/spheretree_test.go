package scene

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/der-antikeks/viewfrustum/math"
)

// grid of unit spheres in the y=0 plane, partly inside the unit frustum
func gridTree() (*SphereTree, map[uint]math.Vector) {
	t := NewSphereTree()
	items := map[uint]math.Vector{}

	var id uint
	for x := -20.0; x <= 20; x += 4 {
		for z := -150.0; z <= 10; z += 8 {
			c := math.Vector{x, 0, z}
			t.Add(id, c, 1)
			items[id] = c
			id++
		}
	}

	return t, items
}

func assertEnclosed(t *testing.T, n *sphereNode) {
	t.Helper()
	for _, c := range n.children {
		assert.Same(t, n, c.parent)
		assert.LessOrEqual(t, n.center.DistanceTo(c.center)+c.radius, n.radius+tolerance)
		assertEnclosed(t, c)
	}
}

func TestSphereTree_Empty(t *testing.T) {
	tree := NewSphereTree()

	assert.Equal(t, 0, tree.Len())
	assert.Equal(t, uint(0), tree.Visible(unitFrustum()).Count())
	assert.Empty(t, tree.VisibleSorted(unitFrustum(), math.Vector{}))

	assert.NotPanics(t, func() { tree.Remove(42) })
}

func TestSphereTree_Visible(t *testing.T) {
	f := unitFrustum()
	tree, items := gridTree()

	require.Equal(t, len(items), tree.Len())
	require.Greater(t, len(items), maxChildren)
	assertEnclosed(t, tree.root)

	set := tree.Visible(f)
	visible := 0
	for id, c := range items {
		expected := f.IntersectsSphere(c, 1)
		assert.Equal(t, expected, set.Test(id), "sphere %d at %v", id, c)
		if expected {
			visible++
		}
	}

	assert.NotZero(t, visible)
	assert.Less(t, visible, len(items))
	assert.Equal(t, uint(visible), set.Count())
}

func TestSphereTree_Remove(t *testing.T) {
	f := unitFrustum()
	tree := NewSphereTree()
	tree.Add(1, math.Vector{0, 0, -10}, 1)
	tree.Add(2, math.Vector{0, 0, -20}, 1)

	require.True(t, tree.Visible(f).Test(1))

	tree.Remove(1)
	assert.Equal(t, 1, tree.Len())
	assert.False(t, tree.Visible(f).Test(1))
	assert.True(t, tree.Visible(f).Test(2))

	tree.Remove(2)
	assert.Equal(t, 0, tree.Len())
	assert.Empty(t, tree.root.children)
	assert.Zero(t, tree.root.radius)
}

func TestSphereTree_RemoveAll(t *testing.T) {
	tree, items := gridTree()

	for id := range items {
		tree.Remove(id)
		assertEnclosed(t, tree.root)
	}

	assert.Equal(t, 0, tree.Len())
	assert.Empty(t, tree.root.children)
	assert.Equal(t, uint(0), tree.Visible(unitFrustum()).Count())
}

func TestSphereTree_Update(t *testing.T) {
	f := unitFrustum()
	tree, items := gridTree()

	var id uint
	for i, c := range items {
		if f.ContainsPoint(c) {
			id = i
			break
		}
	}
	require.True(t, tree.Visible(f).Test(id))

	// shrink in place
	tree.Update(id, items[id], 0.5)
	assertEnclosed(t, tree.root)
	assert.True(t, tree.Visible(f).Test(id))

	// behind the camera
	tree.Update(id, math.Vector{0, 0, 50}, 1)
	assertEnclosed(t, tree.root)
	assert.False(t, tree.Visible(f).Test(id))
	assert.Equal(t, len(items), tree.Len())

	// back in front
	tree.Add(id, math.Vector{0, 0, -50}, 1)
	assertEnclosed(t, tree.root)
	assert.True(t, tree.Visible(f).Test(id))
	assert.Equal(t, len(items), tree.Len())
}

func TestSphereTree_UpdateUnknown(t *testing.T) {
	tree := NewSphereTree()
	tree.Update(7, math.Vector{0, 0, -10}, 1)

	assert.Equal(t, 1, tree.Len())
	assert.True(t, tree.Visible(unitFrustum()).Test(7))
}

func TestSphereTree_VisibleSorted(t *testing.T) {
	f := unitFrustum()
	tree := NewSphereTree()
	tree.Add(1, math.Vector{0, 0, -50}, 1)
	tree.Add(2, math.Vector{0, 0, -10}, 1)
	tree.Add(3, math.Vector{0, 0, -300}, 1)
	tree.Add(4, math.Vector{5, 0, -30}, 1)
	tree.Add(5, math.Vector{0, 0, 20}, 1)

	assert.Equal(t, []uint{2, 4, 1}, tree.VisibleSorted(f, math.Vector{}))
	assert.Equal(t, []uint{1, 4, 2}, tree.VisibleSorted(f, math.Vector{0, 0, -60}))
}

func TestMergeSpheres(t *testing.T) {
	cases := []struct {
		AC     math.Vector
		AR     float64
		BC     math.Vector
		BR     float64
		Center math.Vector
		Radius float64
	}{
		{math.Vector{0, 0, 0}, 1, math.Vector{4, 0, 0}, 1, math.Vector{2, 0, 0}, 3},
		{math.Vector{0, 0, 0}, 5, math.Vector{1, 0, 0}, 1, math.Vector{0, 0, 0}, 5},
		{math.Vector{0, 0, 0}, 1, math.Vector{0, 1, 0}, 5, math.Vector{0, 1, 0}, 5},
		{math.Vector{0, 0, 0}, 1, math.Vector{0, 0, 6}, 3, math.Vector{0, 0, 4}, 5},
	}

	for i, c := range cases {
		center, radius := mergeSpheres(c.AC, c.AR, c.BC, c.BR)
		assertVector(t, c.Center, center, tolerance, "case %d", i)
		assert.InDelta(t, c.Radius, radius, tolerance, "case %d", i)
	}
}

func BenchmarkSphereTree_Visible(b *testing.B) {
	f := unitFrustum()
	tree, _ := gridTree()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		tree.Visible(f)
	}
}
