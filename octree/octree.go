// Package octree implements a persistent octree spatial index over entities
// positioned in 3D space, with adaptive subdivision, radius-bounded region
// queries and k-nearest-neighbor search.
package octree

import (
	"math"

	"github.com/edaniels/golog"
	"github.com/golang/geo/r3"
	"github.com/pkg/errors"
)

// NodeType represents the possible types of nodes in an octree.
type NodeType uint8

// Each node in the octree is either an internal node which owns exactly 8
// children, one per octant, or a leaf node which holds entities directly.
const (
	LeafNode = NodeType(iota)
	InternalNode
)

// Entity is anything with a position that can be indexed by an Octree. The
// index never reads an entity beyond its position.
type Entity interface {
	Position() r3.Vector
}

// Octree is a persistent spatial index: every mutating operation returns a
// new tree value and leaves the receiver untouched, sharing every subtree
// off the mutated path with the previous version. Any number of readers may
// therefore query one snapshot while a successor version is being built,
// with no coordination.
type Octree struct {
	logger     golog.Logger
	nodeType   NodeType
	center     r3.Vector
	sideLength float64
	size       int
	children   *[numOctants]*Octree // internal nodes only
	entities   []Entity             // leaf nodes only
}

// New creates an empty octree covering the cube of the given side length
// around center. A nil logger falls back to the global one.
func New(center r3.Vector, sideLength float64, logger golog.Logger) (*Octree, error) {
	if sideLength <= 0 {
		return nil, errors.Errorf("invalid side length (%.2f) for octree", sideLength)
	}
	if logger == nil {
		logger = golog.Global()
	}

	return &Octree{
		logger:     logger,
		nodeType:   LeafNode,
		center:     center,
		sideLength: sideLength,
	}, nil
}

// Size returns the number of entities stored under this node.
func (t *Octree) Size() int {
	return t.size
}

// Center returns the center of the node's cube.
func (t *Octree) Center() r3.Vector {
	return t.center
}

// SideLength returns the edge length of the node's cube.
func (t *Octree) SideLength() float64 {
	return t.sideLength
}

// checkPointPlacement reports whether the given point fits in the node's
// cube. The bound is inclusive on all faces.
func (t *Octree) checkPointPlacement(p r3.Vector) bool {
	half := t.sideLength / 2
	return math.Abs(p.X-t.center.X) <= half &&
		math.Abs(p.Y-t.center.Y) <= half &&
		math.Abs(p.Z-t.center.Z) <= half
}

// Insert returns a new tree holding e in addition to everything in the
// receiver. Positions outside the root cube are rejected; below the root,
// placement is pure octant arithmetic. Inserting never deepens the tree:
// entities accumulate in a leaf until it is split explicitly.
func (t *Octree) Insert(e Entity) (*Octree, error) {
	if e == nil {
		t.logger.Debug("no entity given, skipping insertion")
		return t, nil
	}
	if !t.checkPointPlacement(e.Position()) {
		return nil, errors.New("error point is outside the bounds of this octree")
	}
	return t.insert(e), nil
}

// insert is the unchecked recursive insertion path shared with splitting.
func (t *Octree) insert(e Entity) *Octree {
	if t.nodeType == LeafNode {
		node := *t
		node.entities = append(t.entities[:len(t.entities):len(t.entities)], e)
		node.size++
		return &node
	}
	oct := OctantOf(t.center, e.Position())
	return t.replaceChild(oct, t.children[oct].insert(e))
}

// InsertAll folds Insert left to right over entities. Order affects only
// the ordering inside leaf collections, never membership or tree shape.
func (t *Octree) InsertAll(entities ...Entity) (*Octree, error) {
	var err error
	for _, e := range entities {
		if t, err = t.Insert(e); err != nil {
			return nil, err
		}
	}
	return t, nil
}

// childAt returns the child occupying the given octant, or the node itself
// when called on a leaf, so descent loops need not branch on the node
// variant.
func (t *Octree) childAt(oct Octant) *Octree {
	if t.nodeType != InternalNode {
		return t
	}
	return t.children[oct]
}

// replaceChild returns a copy of the node with the child in the given
// octant swapped out and the cached size recomputed. On a leaf it is the
// identity.
func (t *Octree) replaceChild(oct Octant, child *Octree) *Octree {
	if t.nodeType != InternalNode {
		return t
	}
	node := *t
	kids := *t.children
	node.size = t.size - kids[oct].size + child.size
	kids[oct] = child
	node.children = &kids
	return &node
}
