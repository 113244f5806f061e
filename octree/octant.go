package octree

import (
	"github.com/golang/geo/r3"
)

// An Octant addresses one of the 8 equal sub-cubes of a node. The code packs
// three independent axis comparisons into the low three bits:
//
//	bit 2 (0b100): X axis
//	bit 1 (0b010): Y axis
//	bit 0 (0b001): Z axis
//
// A set bit means the position is at or above the node center on that axis,
// so a position exactly on a splitting plane always routes to the upper
// child. The layout is fixed: Opposite depends on each axis being a single
// bit.
type Octant uint8

// Axis selects one coordinate axis of an Octant code.
type Axis uint8

// The three axes of a cube, ordered to match the Octant bit layout.
const (
	AxisX = Axis(iota)
	AxisY
	AxisZ
)

const numOctants = 8

func (a Axis) bit() Octant {
	switch a {
	case AxisX:
		return 0b100
	case AxisY:
		return 0b010
	default:
		return 0b001
	}
}

// OctantOf returns the octant code of pos relative to center.
func OctantOf(center, pos r3.Vector) Octant {
	var o Octant
	if pos.X >= center.X {
		o |= AxisX.bit()
	}
	if pos.Y >= center.Y {
		o |= AxisY.bit()
	}
	if pos.Z >= center.Z {
		o |= AxisZ.bit()
	}
	return o
}

// Opposite returns the octant mirrored across the splitting plane of the
// given axis.
func (o Octant) Opposite(a Axis) Octant {
	return o ^ a.bit()
}

// centerOffset returns the displacement from the center of a parent cube
// with the given side length to the center of the child cube in this
// octant.
func (o Octant) centerOffset(sideLength float64) r3.Vector {
	quarter := sideLength / 4
	offset := r3.Vector{X: -quarter, Y: -quarter, Z: -quarter}
	if o&AxisX.bit() != 0 {
		offset.X = quarter
	}
	if o&AxisY.bit() != 0 {
		offset.Y = quarter
	}
	if o&AxisZ.bit() != 0 {
		offset.Z = quarter
	}
	return offset
}
