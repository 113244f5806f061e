package octree

import (
	"github.com/pkg/errors"
)

// Split converts a leaf into an internal node with 8 empty children of half
// the side length, positioned so they exactly tile the parent cube, and
// re-inserts the leaf's entities through the ordinary insert path so each
// lands in its octant. Splitting an internal node is the identity.
func (t *Octree) Split() *Octree {
	if t.nodeType == InternalNode {
		return t
	}

	node := *t
	node.nodeType = InternalNode
	node.entities = nil
	node.size = 0

	var kids [numOctants]*Octree
	for i := range kids {
		oct := Octant(i)
		kids[i] = &Octree{
			logger:     t.logger,
			nodeType:   LeafNode,
			center:     t.center.Add(oct.centerOffset(t.sideLength)),
			sideLength: t.sideLength / 2,
		}
	}
	node.children = &kids

	out := &node
	for _, e := range t.entities {
		out = out.insert(e)
	}
	return out
}

// SplitWhere returns a new tree in which every leaf satisfying pred has
// been split; a freshly split leaf's children are re-examined by the same
// call, so one overcrowded leaf may split repeatedly until pred no longer
// holds anywhere beneath it. The predicate is evaluated at leaves only,
// never at internal nodes. minSideLength is the subdivision floor: a split
// that would create children smaller than it fails with a configuration
// error instead of recursing without bound.
func (t *Octree) SplitWhere(pred func(leaf *Octree) bool, minSideLength float64) (*Octree, error) {
	if minSideLength <= 0 {
		return nil, errors.Errorf("invalid minimum side length (%.2f) for splitting", minSideLength)
	}
	return t.splitWhere(pred, minSideLength)
}

func (t *Octree) splitWhere(pred func(leaf *Octree) bool, minSideLength float64) (*Octree, error) {
	if t.nodeType == LeafNode {
		if !pred(t) {
			return t, nil
		}
		if t.sideLength/2 < minSideLength {
			return nil, errors.Errorf(
				"error splitting octree node: children would have side length %v below the minimum %v",
				t.sideLength/2, minSideLength)
		}
		return t.Split().splitWhere(pred, minSideLength)
	}

	out := t
	for i, child := range t.children {
		split, err := child.splitWhere(pred, minSideLength)
		if err != nil {
			return nil, err
		}
		if split != child {
			out = out.replaceChild(Octant(i), split)
		}
	}
	return out, nil
}
