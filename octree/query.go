package octree

import (
	"math"

	"github.com/golang/geo/r3"
)

// Locate descends to the leaf addressing pos and returns that leaf's
// collection. It performs no bounds check: a position outside the root cube
// still resolves to whichever leaf the octant arithmetic reaches, so
// callers must guarantee containment. The returned slice is shared with the
// tree and must not be modified.
func (t *Octree) Locate(pos r3.Vector) []Entity {
	node := t
	for node.nodeType == InternalNode {
		node = node.childAt(OctantOf(node.center, pos))
	}
	return node.entities
}

// sphereWithinBounds reports whether the node's cube strictly contains the
// whole sphere of the given radius around pos, on all six faces.
func (t *Octree) sphereWithinBounds(pos r3.Vector, radius float64) bool {
	half := t.sideLength / 2
	return pos.X-radius > t.center.X-half && pos.X+radius < t.center.X+half &&
		pos.Y-radius > t.center.Y-half && pos.Y+radius < t.center.Y+half &&
		pos.Z-radius > t.center.Z-half && pos.Z+radius < t.center.Z+half
}

// sphereContains reports whether the sphere of the given radius around pos
// contains the node's entire cube, by testing the farthest corner.
func (t *Octree) sphereContains(pos r3.Vector, radius float64) bool {
	half := t.sideLength / 2
	dx := math.Abs(pos.X-t.center.X) + half
	dy := math.Abs(pos.Y-t.center.Y) + half
	dz := math.Abs(pos.Z-t.center.Z) + half
	return dx*dx+dy*dy+dz*dz < radius*radius
}

// candidateOctants returns the octants of an internal node whose cubes
// could contain a point within radius of pos: the octant holding pos
// itself, plus every mirrored combination of axes on which the sphere
// straddles the splitting plane. If radius exceeds the node's full side
// length, pruning cannot help and all 8 octants are returned. Octants come
// out in a fixed order for a given input, smallest flip first.
func (t *Octree) candidateOctants(pos r3.Vector, radius float64) []Octant {
	if radius > t.sideLength {
		all := make([]Octant, numOctants)
		for i := range all {
			all[i] = Octant(i)
		}
		return all
	}

	own := OctantOf(t.center, pos)
	var flips Octant
	if radius > math.Abs(pos.X-t.center.X) {
		flips |= AxisX.bit()
	}
	if radius > math.Abs(pos.Y-t.center.Y) {
		flips |= AxisY.bit()
	}
	if radius > math.Abs(pos.Z-t.center.Z) {
		flips |= AxisZ.bit()
	}

	octs := make([]Octant, 0, numOctants)
	for mask := Octant(0); mask < numOctants; mask++ {
		if mask&^flips == 0 {
			octs = append(octs, own^mask)
		}
	}
	return octs
}

// CollectWithinRadius returns every entity strictly within radius of pos.
// Leaves partition the population disjointly, so the result holds no
// duplicates; its order is unspecified. A non-positive radius yields an
// empty result.
func (t *Octree) CollectWithinRadius(pos r3.Vector, radius float64) []Entity {
	if radius <= 0 {
		return nil
	}
	return t.collectWithinRadius(pos, radius, nil)
}

func (t *Octree) collectWithinRadius(pos r3.Vector, radius float64, out []Entity) []Entity {
	if t.nodeType == LeafNode {
		if t.sphereContains(pos, radius) {
			// The sphere engulfs the whole cube, no per-entity filtering needed.
			return append(out, t.entities...)
		}
		rr := radius * radius
		for _, e := range t.entities {
			if rr > e.Position().Sub(pos).Norm2() {
				out = append(out, e)
			}
		}
		return out
	}

	for _, oct := range t.candidateOctants(pos, radius) {
		out = t.children[oct].collectWithinRadius(pos, radius, out)
	}
	return out
}
