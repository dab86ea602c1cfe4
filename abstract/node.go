// Copyright 2021 Andrew Werner.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or
// implied. See the License for the specific language governing
// permissions and limitations under the License.

// Package abstract implements the node-level algebra of a randomized
// binary search tree. Balance is not maintained through any explicit
// metadata on the nodes; instead every structural mutation makes a
// size-weighted random choice, which keeps the expected depth
// logarithmic for any insertion order.
//
// The package maintains three invariants between mutations:
//
//   - size: a node's size is 1 plus the sizes of its subtrees.
//   - parent: a child's parent link points at the node holding it.
//   - order: keys in the left subtree compare less-than-or-equal to
//     the node's key, keys in the right subtree greater-than-or-equal.
//
// Navigation (Next, Prev, Offset, Index, At) is expressed purely in
// terms of subtree sizes and parent links, so rank queries run in
// expected O(log n) without an auxiliary index.
package abstract

// Node is the structural unit of the tree. It carries the subtree
// size, the parent/left/right links, and the key payload. The
// structural operations never consult the key; ordering enters only
// through the comparison function held by the Tree.
//
// The parent link is a back-reference, not an ownership relation:
// nodes are owned top-down by the Tree that holds them as a
// left-descendant of its sentinel.
type Node[K any] struct {
	left, right, parent *Node[K]
	size                int
	key                 K
}

// NewNode returns a detached unit node carrying key, suitable for
// Allocator implementations that do not recycle nodes.
func NewNode[K any](key K) *Node[K] {
	return &Node[K]{key: key, size: 1}
}

// Key returns the node's key payload.
func (n *Node[K]) Key() K { return n.key }

// Size returns the number of nodes in the subtree rooted at n.
// A nil subtree has size 0.
func (n *Node[K]) Size() int {
	if n == nil {
		return 0
	}
	return n.size
}

// Left returns the left subtree, or nil.
func (n *Node[K]) Left() *Node[K] { return n.left }

// Right returns the right subtree, or nil.
func (n *Node[K]) Right() *Node[K] { return n.right }

// Parent returns the node holding n as a child, or nil if n is not
// attached to anything.
func (n *Node[K]) Parent() *Node[K] { return n.parent }

// First returns the leftmost node of the subtree rooted at n.
func (n *Node[K]) First() *Node[K] {
	for n.left != nil {
		n = n.left
	}
	return n
}

// Last returns the rightmost node of the subtree rooted at n.
func (n *Node[K]) Last() *Node[K] {
	for n.right != nil {
		n = n.right
	}
	return n
}

// Next returns the in-order successor of n, or nil if n is the last
// node. Within a Tree the sentinel follows the last element, so
// callers iterating a Tree see the sentinel rather than nil at the
// high end.
func (n *Node[K]) Next() *Node[K] {
	if n.right != nil {
		return n.right.First()
	}
	for n.parent != nil && n == n.parent.right {
		n = n.parent
	}
	return n.parent
}

// Prev returns the in-order predecessor of n, or nil if n is the
// first node.
func (n *Node[K]) Prev() *Node[K] {
	if n.left != nil {
		return n.left.Last()
	}
	for n.parent != nil && n == n.parent.left {
		n = n.parent
	}
	return n.parent
}

// Offset returns the node d ranks after n in sorted order (before,
// for negative d), or nil if the offset runs past either end of the
// tree. Offset(0) returns n itself. The walk combines subtree-size
// skips with re-biasing at each parent step, so the cost is expected
// O(log n) regardless of |d|.
func (n *Node[K]) Offset(d int) *Node[K] {
	if d > 0 {
		if d <= n.right.Size() {
			return n.right.Offset(d - 1 - n.right.left.Size())
		}
	} else if d < 0 {
		if -d <= n.left.Size() {
			return n.left.Offset(d + 1 + n.left.right.Size())
		}
	} else {
		return n
	}
	if n.parent == nil {
		return nil
	}
	if n == n.parent.left {
		return n.parent.Offset(d - 1 - n.right.Size())
	}
	return n.parent.Offset(d + 1 + n.left.Size())
}

// Index returns the 0-based rank of n in its tree, i.e. the i such
// that root.At(i) == n. It sums left-subtree sizes along the path to
// the root, adding the size delta whenever ascending from a right
// child.
func (n *Node[K]) Index() int {
	index := n.left.Size()
	for ; n.parent != nil; n = n.parent {
		if n == n.parent.right {
			index += n.parent.size - n.size
		}
	}
	return index
}

// At returns the node of rank i within the subtree rooted at n. It
// is the caller's responsibility that 0 <= i < n.Size().
func (n *Node[K]) At(i int) *Node[K] {
	switch ls := n.left.Size(); {
	case i < ls:
		return n.left.At(i)
	case i > ls:
		return n.right.At(i - ls - 1)
	default:
		return n
	}
}
