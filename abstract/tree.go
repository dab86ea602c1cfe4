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

// Tree is the root holder. It is itself a node: its left child is
// the data root (nil when empty), its right child and parent are
// always nil, and its size is one more than the root's — the extra
// slot is the sentinel's own logical position, one past the last
// element. Treating the holder as a real, addressable node gives
// Next and Offset clean behavior at the high boundary: stepping past
// the last element lands on the sentinel instead of falling off.
//
// The Tree owns every node reachable from its root, transitively;
// ownership moves wholesale on Swap. A Tree must not be copied once
// it holds nodes, since their parent chains terminate at the
// sentinel's address. Operations on a Tree assume exclusive access:
// intermediate states of a mutation violate the structural
// invariants, and no internal locking is provided.
type Tree[K any] struct {
	sentinel Node[K]
	cfg      config[K]
}

// Init readies an empty tree ordered by cmp. A nil src selects the
// default LCG seeded with DefaultSeed; a nil alloc selects the shared
// pool allocator. Init must be called before any other method and
// must not be called on a tree that still holds nodes.
func (t *Tree[K]) Init(cmp func(K, K) int, src Source, alloc Allocator[K]) {
	t.cfg = makeConfig[K](cmp, src, alloc)
	t.sentinel = Node[K]{size: 1}
}

// Len returns the number of elements held.
func (t *Tree[K]) Len() int { return t.sentinel.size - 1 }

// Root returns the data root, or nil when the tree is empty.
func (t *Tree[K]) Root() *Node[K] { return t.sentinel.left }

// End returns the sentinel, the past-the-end position. It compares
// equal to the result of Next on the last element and of Offset runs
// that land exactly one past the last rank.
func (t *Tree[K]) End() *Node[K] { return &t.sentinel }

// First returns the first element in order, or the sentinel when the
// tree is empty.
func (t *Tree[K]) First() *Node[K] { return t.sentinel.First() }

// Compare compares two keys using the tree's ordering.
func (t *Tree[K]) Compare(a, b K) int { return t.cfg.cmp(a, b) }

// Ordering returns the comparison function ordering the tree.
func (t *Tree[K]) Ordering() func(K, K) int { return t.cfg.cmp }

func (t *Tree[K]) less() nodeLess[K] {
	cmp := t.cfg.cmp
	return func(a, b *Node[K]) bool { return cmp(a.key, b.key) < 0 }
}

// Insert allocates a node for key and inserts it, returning the new
// node. It does not check for an existing equal key; callers wanting
// set semantics must Find first.
func (t *Tree[K]) Insert(key K) *Node[K] {
	n := t.cfg.alloc.New(key)
	t.sentinel.size++
	t.sentinel.left = n.insert(t.sentinel.left, &t.sentinel, t.less(), t.cfg.src)
	return n
}

// Erase unlinks n from the tree and returns it to the allocator.
// Sizes along the path to the root, the sentinel included, are
// maintained by the unlink. n must be a live element of this tree;
// erasing the sentinel or a node of another tree corrupts both.
func (t *Tree[K]) Erase(n *Node[K]) {
	n.erase(t.cfg.src)
	t.cfg.alloc.Free(n)
}

// Find returns the element whose key compares equal to key, or the
// sentinel if there is none.
func (t *Tree[K]) Find(key K) *Node[K] {
	return find(t.Root(), key, t.cfg.cmp, &t.sentinel)
}

// LowerBound returns the first element not less than key, or the
// sentinel.
func (t *Tree[K]) LowerBound(key K) *Node[K] {
	return lowerBound(t.Root(), key, t.cfg.cmp, &t.sentinel)
}

// UpperBound returns the first element strictly greater than key, or
// the sentinel.
func (t *Tree[K]) UpperBound(key K) *Node[K] {
	return upperBound(t.Root(), key, t.cfg.cmp, &t.sentinel)
}

// SetRoot replaces the data root with n, re-parenting n to the
// sentinel and refreshing the sentinel's size. The previous root, if
// any, is abandoned to the caller.
func (t *Tree[K]) SetRoot(n *Node[K]) {
	if n != nil {
		n.parent = &t.sentinel
	}
	t.sentinel.left = n
	t.sentinel.size = 1 + n.Size()
}

// Swap exchanges the entire contents, ordering, random source, and
// allocator of two trees in O(1). Node identities migrate with their
// tree: positions held across a Swap remain valid and now belong to
// the other holder.
func (t *Tree[K]) Swap(o *Tree[K]) {
	if t == o {
		return
	}
	t.cfg, o.cfg = o.cfg, t.cfg
	t.sentinel.left, o.sentinel.left = o.sentinel.left, t.sentinel.left
	t.sentinel.size, o.sentinel.size = o.sentinel.size, t.sentinel.size
	if t.sentinel.left != nil {
		t.sentinel.left.parent = &t.sentinel
	}
	if o.sentinel.left != nil {
		o.sentinel.left.parent = &o.sentinel
	}
}

// CloneFrom replaces the contents of t with a deep copy of src's
// elements, allocated from t's own allocator, and adopts src's
// ordering. The copies are value-equal but identity-distinct: no
// position of src locates an element of t afterwards.
func (t *Tree[K]) CloneFrom(src *Tree[K]) {
	if t == src {
		return
	}
	t.Clear()
	t.cfg.cmp = src.cfg.cmp
	t.SetRoot(t.clone(src.Root(), nil))
}

func (t *Tree[K]) clone(n, parent *Node[K]) *Node[K] {
	if n == nil {
		return nil
	}
	c := t.cfg.alloc.New(n.key)
	c.parent = parent
	c.left = t.clone(n.left, c)
	c.right = t.clone(n.right, c)
	c.size = n.size
	return c
}

// Clear erases all elements, returning every node to the allocator.
func (t *Tree[K]) Clear() {
	t.free(t.Root())
	t.SetRoot(nil)
}

func (t *Tree[K]) free(n *Node[K]) {
	if n == nil {
		return
	}
	t.free(n.left)
	t.free(n.right)
	t.cfg.alloc.Free(n)
}
