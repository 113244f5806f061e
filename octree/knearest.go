package octree

import (
	"sort"

	"github.com/golang/geo/r3"
)

// Neighbor pairs an entity with its distance from a query position.
type Neighbor struct {
	Entity   Entity
	Distance float64
}

// KNearest returns up to k entities strictly within maxRadius of pos,
// ascending by distance. Fewer than k are returned when the population
// within maxRadius is smaller; non-positive k or maxRadius yields an empty
// result.
//
// The search is best-first with a shrinking pruning radius: the child cube
// holding pos is searched before its siblings, and once k provisional
// neighbors are known, the distance of the farthest one bounds every
// subsequent descent.
func (t *Octree) KNearest(pos r3.Vector, k int, maxRadius float64) []Neighbor {
	if k <= 0 || maxRadius <= 0 {
		return nil
	}
	return t.kNearest(pos, k, maxRadius)
}

func (t *Octree) kNearest(pos r3.Vector, k int, maxRadius float64) []Neighbor {
	if t.nodeType == LeafNode {
		var found []Neighbor
		for _, e := range t.entities {
			if d := e.Position().Sub(pos).Norm(); d < maxRadius {
				found = append(found, Neighbor{Entity: e, Distance: d})
			}
		}
		sort.SliceStable(found, func(i, j int) bool {
			return found[i].Distance < found[j].Distance
		})
		if len(found) > k {
			found = found[:k]
		}
		return found
	}

	own := OctantOf(t.center, pos)
	best := t.children[own].kNearest(pos, k, maxRadius)
	radius := pruneRadius(best, k, maxRadius)

	// With k neighbors found and the pruning sphere entirely inside the
	// already-searched cube, no sibling can hold anything closer.
	if len(best) == k && t.children[own].sphereWithinBounds(pos, radius) {
		return best
	}

	for _, oct := range t.candidateOctants(pos, radius) {
		if oct == own {
			continue
		}
		best = mergeNeighbors(best, t.children[oct].kNearest(pos, k, radius), k)
		radius = pruneRadius(best, k, radius)
	}
	return best
}

// pruneRadius is the current search bound: the distance of the farthest
// provisional neighbor once k of them are known, the incoming bound until
// then. It never grows over the course of a search.
func pruneRadius(best []Neighbor, k int, maxRadius float64) float64 {
	if len(best) == k {
		return best[len(best)-1].Distance
	}
	return maxRadius
}

// mergeNeighbors merges two ascending neighbor lists, preferring entries
// of a on equal distance, and truncates the result to k.
func mergeNeighbors(a, b []Neighbor, k int) []Neighbor {
	merged := make([]Neighbor, 0, len(a)+len(b))
	var i, j int
	for i < len(a) && j < len(b) {
		if a[i].Distance <= b[j].Distance {
			merged = append(merged, a[i])
			i++
		} else {
			merged = append(merged, b[j])
			j++
		}
	}
	merged = append(merged, a[i:]...)
	merged = append(merged, b[j:]...)
	if len(merged) > k {
		merged = merged[:k]
	}
	return merged
}
