package rbst

import "github.com/ajwerner/rbst/abstract"

// Iterator is a position within a Set. It is bidirectional and
// random-access, but unlike a slice index every positional operation
// costs expected O(log n): stepping, signed offsets, rank queries,
// and rank subtraction all navigate the tree through subtree sizes.
//
// An Iterator stays valid across mutations of other elements and
// across Swap (it then belongs to the other set), but erasing the
// element it points at invalidates it. Iterators of different sets
// must not be mixed in Sub or EraseRange.
type Iterator[K any] struct {
	t *abstract.Tree[K]
	n *abstract.Node[K]
}

// Valid reports whether the iterator addresses an element. It is
// false at the past-the-end position and after navigating off either
// boundary.
func (it Iterator[K]) Valid() bool {
	return it.n != nil && it.n != it.t.End()
}

// Key returns the element at the iterator's position. It is illegal
// to call Key on an iterator that is not Valid.
func (it Iterator[K]) Key() K { return it.n.Key() }

// Next advances to the in-order successor. Advancing from the last
// element lands on the past-the-end position.
func (it *Iterator[K]) Next() { it.n = it.n.Next() }

// Prev moves to the in-order predecessor. Moving back from the
// past-the-end position lands on the last element; moving back from
// the first element invalidates the iterator.
func (it *Iterator[K]) Prev() { it.n = it.n.Prev() }

// Offset returns the position d ranks away in sorted order, negative
// d moving backward. Offsets that run past the first element or past
// the end position return an invalid iterator.
func (it Iterator[K]) Offset(d int) Iterator[K] {
	return Iterator[K]{t: it.t, n: it.n.Offset(d)}
}

// At returns the element d ranks away from the iterator's position.
// The target must be a valid element.
func (it Iterator[K]) At(d int) K {
	return it.n.Offset(d).Key()
}

// Index returns the 0-based rank of the iterator's position; the
// past-the-end position has rank Len().
func (it Iterator[K]) Index() int { return it.n.Index() }

// Sub returns the rank difference between it and o, both positions
// of the same set.
func (it Iterator[K]) Sub(o Iterator[K]) int {
	return it.n.Index() - o.n.Index()
}

// Equal reports whether two iterators address the same position.
func (it Iterator[K]) Equal(o Iterator[K]) bool { return it.n == o.n }
