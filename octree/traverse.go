package octree

// Iterate calls fn for every entity under the node and stops early if fn
// returns false. The order is fixed for a given tree value: insertion order
// within a leaf, ascending octant order across children. Iterate may be
// re-invoked any number of times.
func (t *Octree) Iterate(fn func(e Entity) bool) {
	t.iterate(fn)
}

func (t *Octree) iterate(fn func(e Entity) bool) bool {
	if t.nodeType == LeafNode {
		for _, e := range t.entities {
			if !fn(e) {
				return false
			}
		}
		return true
	}
	for _, child := range t.children {
		if !child.iterate(fn) {
			return false
		}
	}
	return true
}

// Entities returns every entity in the tree in traversal order.
func (t *Octree) Entities() []Entity {
	out := make([]Entity, 0, t.size)
	t.Iterate(func(e Entity) bool {
		out = append(out, e)
		return true
	})
	return out
}

// Map rebuilds the tree by re-inserting fn(e) for every contained entity
// into an emptied copy of the current structure, since a transform may move
// an entity into a different leaf. Transformed positions must stay within
// the root cube.
func (t *Octree) Map(fn func(e Entity) Entity) (*Octree, error) {
	out := t.emptied()
	var err error
	t.Iterate(func(e Entity) bool {
		out, err = out.Insert(fn(e))
		return err == nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// emptied returns a copy of the tree with the same subdivision and no
// entities.
func (t *Octree) emptied() *Octree {
	node := *t
	node.size = 0
	if t.nodeType == LeafNode {
		node.entities = nil
		return &node
	}
	var kids [numOctants]*Octree
	for i, child := range t.children {
		kids[i] = child.emptied()
	}
	node.children = &kids
	return &node
}
