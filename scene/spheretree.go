package scene

import (
	"sort"

	"github.com/der-antikeks/viewfrustum/math"
	"github.com/willf/bitset"
)

// maximum number of children before new nodes are paired into a branch
const maxChildren = 8

/*
	SphereTree is a bounding sphere hierarchy of items identified by id.
	Every branch encloses the spheres of its children, so a branch outside
	of a frustum rejects all of its items at once.
*/
type SphereTree struct {
	root   *sphereNode
	lookup map[uint]*sphereNode
}

type sphereNode struct {
	center math.Vector
	radius float64

	parent   *sphereNode
	children []*sphereNode

	id   uint
	leaf bool
}

func NewSphereTree() *SphereTree {
	return &SphereTree{
		root:   &sphereNode{},
		lookup: map[uint]*sphereNode{},
	}
}

func (t *SphereTree) Len() int {
	return len(t.lookup)
}

// Add inserts or replaces the bounding sphere of id.
func (t *SphereTree) Add(id uint, center math.Vector, radius float64) {
	if _, ok := t.lookup[id]; ok {
		t.Update(id, center, radius)
		return
	}

	n := &sphereNode{
		center: center.Vec3(),
		radius: radius,
		id:     id,
		leaf:   true,
	}
	t.lookup[id] = n
	t.insert(t.root, n)
}

// Update moves the bounding sphere of id. Spheres that stay inside their
// previous extent are refit in place, others are reinserted from the root.
func (t *SphereTree) Update(id uint, center math.Vector, radius float64) {
	n, ok := t.lookup[id]
	if !ok {
		t.Add(id, center, radius)
		return
	}

	center = center.Vec3()
	inside := n.center.DistanceTo(center)+radius <= n.radius

	n.center = center
	n.radius = radius

	if inside {
		t.refit(n.parent)
		return
	}

	t.detach(n)
	t.insert(t.root, n)
}

func (t *SphereTree) Remove(id uint) {
	n, ok := t.lookup[id]
	if !ok {
		return
	}
	delete(t.lookup, id)

	t.detach(n)
}

// insert descends from p into the closest branch enclosing c.
func (t *SphereTree) insert(p, c *sphereNode) {
	for {
		var next *sphereNode
		var mindist float64

		for _, s := range p.children {
			if s.leaf {
				continue
			}
			dist := s.center.DistanceTo(c.center)
			if dist+c.radius <= s.radius && (next == nil || dist < mindist) {
				next, mindist = s, dist
			}
		}

		if next == nil {
			break
		}
		p = next
	}

	if len(p.children) < maxChildren {
		p.addChild(c)
		t.refit(p)
		return
	}

	// pair with the closest child
	sibling := p.children[0]
	mindist := sibling.center.DistanceTo(c.center)
	for _, s := range p.children[1:] {
		if dist := s.center.DistanceTo(c.center); dist < mindist {
			sibling, mindist = s, dist
		}
	}

	branch := &sphereNode{}
	p.removeChild(sibling)
	p.addChild(branch)
	branch.addChild(sibling)
	branch.addChild(c)

	t.refit(branch)
}

// detach removes n from its parent and drops branches left empty.
func (t *SphereTree) detach(n *sphereNode) {
	p := n.parent
	if p == nil {
		return
	}
	p.removeChild(n)

	for p != t.root && len(p.children) == 0 {
		gp := p.parent
		gp.removeChild(p)
		p = gp
	}

	t.refit(p)
}

// refit recalculates the spheres from n up to the root.
func (t *SphereTree) refit(n *sphereNode) {
	for ; n != nil; n = n.parent {
		if len(n.children) == 0 {
			n.center, n.radius = math.Vector{}, 0
			continue
		}

		n.center = n.children[0].center
		n.radius = n.children[0].radius
		for _, c := range n.children[1:] {
			n.center, n.radius = mergeSpheres(n.center, n.radius, c.center, c.radius)
		}
	}
}

func (n *sphereNode) addChild(c *sphereNode) {
	n.children = append(n.children, c)
	c.parent = n
}

func (n *sphereNode) removeChild(c *sphereNode) {
	for i, f := range n.children {
		if f == c {
			copy(n.children[i:], n.children[i+1:])
			n.children[len(n.children)-1] = nil
			n.children = n.children[:len(n.children)-1]
			c.parent = nil
			return
		}
	}
}

// mergeSpheres returns the smallest sphere enclosing both spheres.
func mergeSpheres(ac math.Vector, ar float64, bc math.Vector, br float64) (math.Vector, float64) {
	diff := bc.Sub(ac)
	dist := diff.Length()

	if ar >= dist+br {
		// b inside a
		return ac, ar
	}
	if br >= dist+ar {
		// a inside b
		return bc, br
	}

	radius := (dist + ar + br) * 0.5

	return ac.Add(diff.MulScalar((radius - ar) / dist)), radius
}

// Visible returns the ids of all items whose sphere intersects f.
func (t *SphereTree) Visible(f *ViewFrustum) *bitset.BitSet {
	set := bitset.New(uint(len(t.lookup)))
	if len(t.root.children) > 0 {
		t.visible(f, t.root, set)
	}

	return set
}

func (t *SphereTree) visible(f *ViewFrustum, n *sphereNode, set *bitset.BitSet) {
	switch classifySphere(f, n.center, n.radius) {
	case math.Front:
		return
	case math.Back:
		collect(n, set)
		return
	}

	if n.leaf {
		set.Set(n.id)
		return
	}

	for _, c := range n.children {
		t.visible(f, c, set)
	}
}

func collect(n *sphereNode, set *bitset.BitSet) {
	if n.leaf {
		set.Set(n.id)
		return
	}

	for _, c := range n.children {
		collect(c, set)
	}
}

// classifySphere is Back when fully inside, Front when outside of any plane.
func classifySphere(f *ViewFrustum, center math.Vector, radius float64) math.Relation {
	result := math.Back

	for _, pl := range f.Planes {
		d := pl.DistanceTo(center)
		if d > radius {
			return math.Front
		}
		if d > -radius {
			result = math.Clipped
		}
	}

	return result
}

// VisibleSorted returns the visible ids ordered by the distance of their
// sphere centers to from, nearest first.
func (t *SphereTree) VisibleSorted(f *ViewFrustum, from math.Vector) []uint {
	set := t.Visible(f)
	ids := make([]uint, 0, set.Count())
	zorder := make(map[uint]float64, set.Count())

	for i, ok := set.NextSet(0); ok; i, ok = set.NextSet(i + 1) {
		ids = append(ids, i)
		zorder[i] = t.lookup[i].center.DistanceToSquared(from.Vec3())
	}

	sort.SliceStable(ids, func(a, b int) bool {
		return zorder[ids[a]] < zorder[ids[b]]
	})

	return ids
}
