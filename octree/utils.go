package octree

import (
	"github.com/golang/geo/r3"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Centroid returns the mean position of all entities in the tree, or the
// zero vector for an empty tree.
func Centroid(t *Octree) r3.Vector {
	xs, ys, zs := components(t)
	if len(xs) == 0 {
		return r3.Vector{}
	}
	return r3.Vector{
		X: stat.Mean(xs, nil),
		Y: stat.Mean(ys, nil),
		Z: stat.Mean(zs, nil),
	}
}

// Bounds returns the axis-aligned bounding box of the tree's population as
// its minimum and maximum corners. The second return is false for an empty
// tree.
func Bounds(t *Octree) (r3.Vector, r3.Vector, bool) {
	xs, ys, zs := components(t)
	if len(xs) == 0 {
		return r3.Vector{}, r3.Vector{}, false
	}
	min := r3.Vector{X: floats.Min(xs), Y: floats.Min(ys), Z: floats.Min(zs)}
	max := r3.Vector{X: floats.Max(xs), Y: floats.Max(ys), Z: floats.Max(zs)}
	return min, max, true
}

func components(t *Octree) (xs, ys, zs []float64) {
	xs = make([]float64, 0, t.size)
	ys = make([]float64, 0, t.size)
	zs = make([]float64, 0, t.size)
	t.Iterate(func(e Entity) bool {
		p := e.Position()
		xs = append(xs, p.X)
		ys = append(ys, p.Y)
		zs = append(zs, p.Z)
		return true
	})
	return xs, ys, zs
}
