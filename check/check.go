// Package check validates the structural invariants of a randomized
// binary search tree and reports shape statistics for balance-quality
// assertions. It is exported for use by external test suites; the
// library itself never calls it on the hot path.
package check

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/stat"

	"github.com/ajwerner/rbst/abstract"
)

var (
	// ErrParent is returned when a child's parent link does not point
	// at the node holding it.
	ErrParent = errors.New("rbst: parent link mismatch")

	// ErrSize is returned when a node's size is not one plus the
	// sizes of its subtrees.
	ErrSize = errors.New("rbst: subtree size mismatch")

	// ErrOrder is returned when a key is misordered with respect to a
	// child's key.
	ErrOrder = errors.New("rbst: ordering violation")
)

// Structure verifies the size and parent-link invariants of every
// node reachable from the tree's sentinel, the sentinel included. It
// fails fast: the first violation is returned as an error naming the
// offending node's rank and identity and the expected versus actual
// value.
func Structure[K any](t *abstract.Tree[K]) error {
	return structure[K](t.End(), nil, 0)
}

func structure[K any](n, parent *abstract.Node[K], index int) error {
	if n == nil {
		return nil
	}
	left, right := n.Left(), n.Right()
	if err := structure(left, n, index); err != nil {
		return err
	}
	nodeIndex := index + left.Size()
	if n.Parent() != parent {
		return fmt.Errorf("%w: node %d (%p): got %p, want %p",
			ErrParent, nodeIndex, n, n.Parent(), parent)
	}
	if want := 1 + left.Size() + right.Size(); n.Size() != want {
		return fmt.Errorf("%w: node %d (%p): got %d, want %d",
			ErrSize, nodeIndex, n, n.Size(), want)
	}
	return structure(right, n, nodeIndex+1)
}

// Values verifies the ordering invariant of the tree's elements under
// the tree's own comparison function. Like Structure it fails fast on
// the first violation.
func Values[K any](t *abstract.Tree[K]) error {
	return values(t, t.Root(), 0)
}

func values[K any](t *abstract.Tree[K], n *abstract.Node[K], index int) error {
	if n == nil {
		return nil
	}
	left, right := n.Left(), n.Right()
	if err := values(t, left, index); err != nil {
		return err
	}
	nodeIndex := index + left.Size()
	if left != nil && t.Compare(n.Key(), left.Key()) < 0 {
		return fmt.Errorf("%w: node %d (%p) is less than its left child",
			ErrOrder, nodeIndex, n)
	}
	if right != nil && t.Compare(right.Key(), n.Key()) < 0 {
		return fmt.Errorf("%w: node %d (%p) is greater than its right child",
			ErrOrder, nodeIndex, n)
	}
	return values(t, right, nodeIndex+1)
}

// Stats describes the shape of a tree. Depth is 1-based and measured
// from the sentinel, so a tree of n elements holds n+1 counted nodes.
type Stats struct {
	// MaxDepth is the depth of the deepest node.
	MaxDepth int

	// TotalDepth is the sum of the depths of all nodes.
	TotalDepth int

	// AvgDepth is TotalDepth averaged over the counted nodes.
	AvgDepth float64
}

// TreeStats walks the whole tree and returns its shape statistics.
func TreeStats[K any](t *abstract.Tree[K]) Stats {
	depths := appendDepths[K](nil, t.End(), 1)
	var s Stats
	for _, d := range depths {
		if int(d) > s.MaxDepth {
			s.MaxDepth = int(d)
		}
		s.TotalDepth += int(d)
	}
	s.AvgDepth = stat.Mean(depths, nil)
	return s
}

func appendDepths[K any](depths []float64, n *abstract.Node[K], depth int) []float64 {
	if n == nil {
		return depths
	}
	depths = append(depths, float64(depth))
	depths = appendDepths(depths, n.Left(), depth+1)
	return appendDepths(depths, n.Right(), depth+1)
}
