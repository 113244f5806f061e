package octree

import (
	"github.com/golang/geo/r3"
)

// PointEntity is a minimal Entity carrying nothing but a position. It is a
// convenience for populations that have no behavior of their own.
type PointEntity struct {
	pos r3.Vector
}

// NewPointEntity returns an entity fixed at the given position.
func NewPointEntity(pos r3.Vector) *PointEntity {
	return &PointEntity{pos: pos}
}

// Position implements Entity.
func (p *PointEntity) Position() r3.Vector {
	return p.pos
}
