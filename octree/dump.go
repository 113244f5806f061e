package octree

import (
	"fmt"
	"strings"
)

// String renders the tree one node per line with children indented beneath
// their parents. It exists for tracing and debugging only.
func (t *Octree) String() string {
	var sb strings.Builder
	t.dump(&sb, "")
	return sb.String()
}

func (t *Octree) dump(sb *strings.Builder, prefix string) {
	switch t.nodeType {
	case InternalNode:
		fmt.Fprintf(sb, "%sinternal (%.2f %.2f %.2f) | side: %.2f size: %d\n",
			prefix, t.center.X, t.center.Y, t.center.Z, t.sideLength, t.size)
		for _, child := range t.children {
			child.dump(sb, prefix+"-+-")
		}
	case LeafNode:
		fmt.Fprintf(sb, "%sleaf (%.2f %.2f %.2f) | side: %.2f size: %d\n",
			prefix, t.center.X, t.center.Y, t.center.Z, t.sideLength, t.size)
		for _, e := range t.entities {
			p := e.Position()
			fmt.Fprintf(sb, "%s    @ (%.2f %.2f %.2f)\n", prefix, p.X, p.Y, p.Z)
		}
	}
}

// Dump logs the rendered tree line by line through the tree's logger.
func (t *Octree) Dump() {
	for _, line := range strings.Split(strings.TrimRight(t.String(), "\n"), "\n") {
		t.logger.Info(line)
	}
}
