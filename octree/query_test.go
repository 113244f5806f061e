package octree

import (
	"math/rand"
	"testing"

	"github.com/edaniels/golog"
	"github.com/golang/geo/r3"
	"go.viam.com/test"
)

func TestLocate(t *testing.T) {
	logger := golog.NewTestLogger(t)

	tree, err := New(r3.Vector{}, 8, logger)
	test.That(t, err, test.ShouldBeNil)

	e1 := NewPointEntity(r3.Vector{X: 1, Y: 1, Z: 1})
	e2 := NewPointEntity(r3.Vector{X: -1, Y: -1, Z: -1})
	tree, err = tree.InsertAll(e1, e2)
	test.That(t, err, test.ShouldBeNil)

	// On a single leaf, any position resolves to the whole collection.
	test.That(t, tree.Locate(r3.Vector{X: 3, Y: 3, Z: 3}), test.ShouldResemble, []Entity{e1, e2})

	tree = tree.Split()
	test.That(t, tree.Locate(r3.Vector{X: 1, Y: 1, Z: 1}), test.ShouldResemble, []Entity{e1})
	test.That(t, tree.Locate(r3.Vector{X: -1, Y: -1, Z: -1}), test.ShouldResemble, []Entity{e2})
	test.That(t, tree.Locate(r3.Vector{X: 1, Y: -1, Z: 1}), test.ShouldBeEmpty)
}

func TestSphereWithinBounds(t *testing.T) {
	logger := golog.NewTestLogger(t)

	tree, err := New(r3.Vector{}, 8, logger)
	test.That(t, err, test.ShouldBeNil)

	test.That(t, tree.sphereWithinBounds(r3.Vector{}, 3.9), test.ShouldBeTrue)
	// Touching a face is not strict containment.
	test.That(t, tree.sphereWithinBounds(r3.Vector{}, 4), test.ShouldBeFalse)
	test.That(t, tree.sphereWithinBounds(r3.Vector{X: 3, Y: 0, Z: 0}, 0.5), test.ShouldBeTrue)
	test.That(t, tree.sphereWithinBounds(r3.Vector{X: 3, Y: 0, Z: 0}, 1.5), test.ShouldBeFalse)
}

func TestCandidateOctants(t *testing.T) {
	logger := golog.NewTestLogger(t)

	tree, err := New(r3.Vector{}, 8, logger)
	test.That(t, err, test.ShouldBeNil)
	tree = tree.Split()

	t.Run("sphere clear of all splitting planes", func(t *testing.T) {
		octs := tree.candidateOctants(r3.Vector{X: 1, Y: 1, Z: 1}, 0.5)
		test.That(t, octs, test.ShouldResemble, []Octant{0b111})
	})

	t.Run("sphere straddling every plane", func(t *testing.T) {
		octs := tree.candidateOctants(r3.Vector{X: 1, Y: 1, Z: 1}, 1.5)
		test.That(t, len(octs), test.ShouldEqual, 8)
	})

	t.Run("sphere straddling two planes", func(t *testing.T) {
		octs := tree.candidateOctants(r3.Vector{X: 3, Y: 1, Z: 1}, 2)
		test.That(t, octs, test.ShouldResemble, []Octant{0b111, 0b110, 0b101, 0b100})
	})

	t.Run("radius beyond the side length includes everything", func(t *testing.T) {
		octs := tree.candidateOctants(r3.Vector{X: 1, Y: 1, Z: 1}, 9)
		test.That(t, octs, test.ShouldResemble, []Octant{0, 1, 2, 3, 4, 5, 6, 7})
	})
}

func TestCollectWithinRadius(t *testing.T) {
	logger := golog.NewTestLogger(t)

	t.Run("simple population", func(t *testing.T) {
		tree, err := New(r3.Vector{}, 8, logger)
		test.That(t, err, test.ShouldBeNil)

		near := NewPointEntity(r3.Vector{X: 1, Y: 0, Z: 0})
		mid := NewPointEntity(r3.Vector{X: 0, Y: 2, Z: 0})
		far := NewPointEntity(r3.Vector{X: -3, Y: -3, Z: -3})
		tree, err = tree.InsertAll(near, mid, far)
		test.That(t, err, test.ShouldBeNil)
		tree, err = tree.SplitWhere(func(leaf *Octree) bool { return leaf.Size() > 1 }, 0.5)
		test.That(t, err, test.ShouldBeNil)

		test.That(t, entitySet(tree.CollectWithinRadius(r3.Vector{}, 2.5)),
			test.ShouldResemble, entitySet([]Entity{near, mid}))
		test.That(t, tree.CollectWithinRadius(r3.Vector{}, 0.5), test.ShouldBeEmpty)
		// Strict inequality: an entity exactly at the radius is excluded.
		test.That(t, tree.CollectWithinRadius(r3.Vector{}, 1), test.ShouldBeEmpty)
		test.That(t, tree.CollectWithinRadius(r3.Vector{}, 0), test.ShouldBeEmpty)
		// A negative radius must not act like its absolute value.
		test.That(t, tree.CollectWithinRadius(r3.Vector{}, -2.5), test.ShouldBeEmpty)
	})

	t.Run("matches brute force on random populations", func(t *testing.T) {
		const side = 100.0
		for _, seed := range []int64{0, 1, 2} {
			r := rand.New(rand.NewSource(seed))
			entities := make([]Entity, 200)
			for i := range entities {
				entities[i] = NewPointEntity(randomVector(r, side))
			}

			for _, capacity := range []int{1, 5, 20} {
				tree, err := New(r3.Vector{}, side, logger)
				test.That(t, err, test.ShouldBeNil)
				tree, err = tree.InsertAll(entities...)
				test.That(t, err, test.ShouldBeNil)
				tree, err = tree.SplitWhere(func(leaf *Octree) bool { return leaf.Size() > capacity }, 1e-9)
				test.That(t, err, test.ShouldBeNil)
				validateOctree(t, tree, tree.center, tree.sideLength)

				for _, radius := range []float64{1, 10, 60, 150} {
					pos := randomVector(r, side)
					got := tree.CollectWithinRadius(pos, radius)

					var want []Entity
					for _, e := range entities {
						if e.Position().Sub(pos).Norm() < radius {
							want = append(want, e)
						}
					}
					test.That(t, len(got), test.ShouldEqual, len(want))
					test.That(t, entitySet(got), test.ShouldResemble, entitySet(want))
				}
			}
		}
	})
}

func entitySet(entities []Entity) map[Entity]bool {
	set := make(map[Entity]bool, len(entities))
	for _, e := range entities {
		set[e] = true
	}
	return set
}
