// Command octreedump builds an octree over a random population, splits it
// by a leaf capacity predicate and prints the resulting structure along
// with a couple of sample queries.
package main

import (
	"flag"
	"fmt"
	"math/rand"

	"github.com/edaniels/golog"
	"github.com/golang/geo/r3"

	"go.viam.com/spatial/octree"
)

var (
	numEntities = flag.Int("n", 64, "number of random entities to insert")
	sideLength  = flag.Float64("side", 100, "side length of the root cube")
	capacity    = flag.Int("capacity", 8, "leaf capacity used for splitting")
	seed        = flag.Int64("seed", 1, "random seed")
)

func main() {
	flag.Parse()
	logger := golog.NewDevelopmentLogger("octreedump")

	tree, err := octree.New(r3.Vector{}, *sideLength, logger)
	if err != nil {
		logger.Fatal(err)
	}

	r := rand.New(rand.NewSource(*seed))
	for i := 0; i < *numEntities; i++ {
		pos := r3.Vector{
			X: (r.Float64() - 0.5) * *sideLength,
			Y: (r.Float64() - 0.5) * *sideLength,
			Z: (r.Float64() - 0.5) * *sideLength,
		}
		if tree, err = tree.Insert(octree.NewPointEntity(pos)); err != nil {
			logger.Fatal(err)
		}
	}

	tree, err = tree.SplitWhere(func(leaf *octree.Octree) bool {
		return leaf.Size() > *capacity
	}, 1e-6)
	if err != nil {
		logger.Fatal(err)
	}

	fmt.Print(tree.String())

	for _, n := range tree.KNearest(r3.Vector{}, 3, *sideLength) {
		p := n.Entity.Position()
		logger.Infof("near origin: (%.2f %.2f %.2f) at distance %.2f", p.X, p.Y, p.Z, n.Distance)
	}
	within := tree.CollectWithinRadius(r3.Vector{}, *sideLength/4)
	logger.Infof("%d of %d entities within %.2f of origin", len(within), tree.Size(), *sideLength/4)
	centroid := octree.Centroid(tree)
	logger.Infof("population centroid: (%.2f %.2f %.2f)", centroid.X, centroid.Y, centroid.Z)
}
