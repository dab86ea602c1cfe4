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

package abstract

// nodeLess orders two nodes. It is derived from the Tree's key
// comparison and must be kept consistent with it; the structural
// operations below take it as a parameter so that they never touch
// keys themselves.
type nodeLess[K any] func(a, b *Node[K]) bool

// split partitions the subtree rooted at tree around the receiver,
// which acts as the pivot: nodes ordered before the pivot are
// threaded under lesser, the rest under greater. On entry
// lesser.right and greater.left are treated as uninitialized slots
// that split will fill. Subtree sizes are recomputed bottom-up on the
// way back; parent links are rewired as branches are threaded, so
// both halves satisfy the structural invariants on return.
//
// Insert calls split with lesser and greater aliasing the new node
// itself, which lands the two halves in the new node's child slots.
func (n *Node[K]) split(tree, lesser, greater *Node[K], less nodeLess[K]) {
	if less(n, tree) {
		greater.left = tree
		tree.parent = greater
		if tree.left != nil {
			n.split(tree.left, lesser, tree, less)
		} else {
			lesser.right = nil
		}
	} else {
		lesser.right = tree
		tree.parent = lesser
		if tree.right != nil {
			n.split(tree.right, tree, greater, less)
		} else {
			greater.left = nil
		}
	}
	tree.size = 1 + tree.left.Size() + tree.right.Size()
}

// join merges two subtrees where every element of lesser is ordered
// at or before every element of greater. The root of the result is
// chosen at random in proportion to the two sizes: this is the single
// randomization point that makes the tree statistically equivalent to
// one built by inserting all elements in uniformly random order, no
// matter the actual operation history. Either argument may be nil, in
// which case the other is returned unchanged.
func join[K any](lesser, greater *Node[K], src Source) *Node[K] {
	if lesser == nil {
		return greater
	}
	if greater == nil {
		return lesser
	}
	if src.Intn(lesser.size+greater.size) < lesser.size {
		lesser.size += greater.size
		lesser.right = join(lesser.right, greater, src)
		lesser.right.parent = lesser
		return lesser
	}
	greater.size += lesser.size
	greater.left = join(lesser, greater.left, src)
	greater.left.parent = greater
	return greater
}

// insert places the receiver, a fresh unit node, into the subtree
// rooted at node (nil for an empty subtree) with the given parent,
// and returns the new subtree root. At each visited node one random
// draw in [0, size+1) decides whether to stop and become the local
// root, splitting the current subtree into the new node's children;
// the stop probability 1/(size+1) reproduces the distribution of a
// treap with per-node priorities without storing any.
func (n *Node[K]) insert(node, parent *Node[K], less nodeLess[K], src Source) *Node[K] {
	if node == nil || src.Intn(1+node.size) == 0 {
		if node == nil {
			n.left, n.right = nil, nil
			n.size = 1
		} else {
			// Thread both halves into the new node's own child
			// slots: with lesser and greater aliasing n, split
			// leaves the lesser chain in n.right and the greater
			// chain in n.left, so swap them after.
			n.split(node, n, n, less)
			n.left, n.right = n.right, n.left
			n.size = 1 + n.left.Size() + n.right.Size()
		}
		n.parent = parent
		return n
	}
	if less(n, node) {
		node.left = n.insert(node.left, node, less, src)
	} else {
		node.right = n.insert(node.right, node, less, src)
	}
	node.size++
	return node
}

// erase unlinks the receiver from its tree and returns the new root
// of the whole tree, which differs from the old root only if the
// receiver was the root. The receiver's children are joined into a
// replacement subtree, the parent's child slot is redirected to it,
// and sizes are decremented along the path up to the root. The
// receiver is left as a detached unit subtree of size 1, safe to free
// or reuse.
func (n *Node[K]) erase(src Source) *Node[K] {
	parent := n.parent
	child := join(n.left, n.right, src)

	n.parent, n.left, n.right = nil, nil, nil
	n.size = 1

	if child != nil {
		child.parent = parent
	}
	if parent == nil {
		return child
	}
	if parent.left == n {
		parent.left = child
	} else {
		parent.right = child
	}
	parent.size--
	for parent.parent != nil {
		parent = parent.parent
		parent.size--
	}
	return parent
}
