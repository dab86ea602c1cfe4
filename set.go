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

// Package rbst provides an ordered set backed by a randomized binary
// search tree. On top of the usual ordered-set surface it offers
// order statistics: rank-based access (Nth), rank queries on
// positions, and random-access iterators, all in expected O(log n).
//
// Sets are not safe for concurrent use; callers sharing a set across
// goroutines must serialize access, reads included.
package rbst

import "github.com/ajwerner/rbst/abstract"

// Set is an ordered collection of distinct keys. Keys are ordered by
// the comparison function given to New; equal keys (comparison zero)
// are stored at most once.
type Set[K any] struct {
	t abstract.Tree[K]
}

// New returns an empty set ordered by cmp, which must return a
// negative, zero, or positive value for a < b, a == b, a > b
// respectively, and must define a total order.
func New[K any](cmp func(K, K) int, opts ...Option[K]) *Set[K] {
	var o options[K]
	for _, opt := range opts {
		opt(&o)
	}
	s := &Set[K]{}
	s.t.Init(cmp, o.src, o.alloc)
	return s
}

// Len returns the number of elements.
func (s *Set[K]) Len() int { return s.t.Len() }

// Empty reports whether the set holds no elements.
func (s *Set[K]) Empty() bool { return s.t.Len() == 0 }

// Clear removes all elements.
func (s *Set[K]) Clear() { s.t.Clear() }

func (s *Set[K]) iter(n *abstract.Node[K]) Iterator[K] {
	return Iterator[K]{t: &s.t, n: n}
}

// Begin returns the position of the first element in order, or the
// past-the-end position when the set is empty.
func (s *Set[K]) Begin() Iterator[K] { return s.iter(s.t.First()) }

// End returns the past-the-end position.
func (s *Set[K]) End() Iterator[K] { return s.iter(s.t.End()) }

// Insert adds key to the set. If an equal key is already present the
// set is left unchanged and the returned position locates the
// existing element; inserted reports whether a new element was added.
func (s *Set[K]) Insert(key K) (pos Iterator[K], inserted bool) {
	if n := s.t.Find(key); n != s.t.End() {
		return s.iter(n), false
	}
	return s.iter(s.t.Insert(key)), true
}

// Erase removes the element equal to key, reporting how many
// elements were removed (0 or 1).
func (s *Set[K]) Erase(key K) int {
	n := s.t.Find(key)
	if n == s.t.End() {
		return 0
	}
	s.t.Erase(n)
	return 1
}

// EraseAt removes the element at pos, which must be a valid position
// of this set. The position, and any other position addressing the
// same element, is invalidated.
func (s *Set[K]) EraseAt(pos Iterator[K]) {
	s.t.Erase(pos.n)
}

// EraseRange removes the elements in the half-open rank range
// [first, last) and returns how many were removed.
func (s *Set[K]) EraseRange(first, last Iterator[K]) int {
	var removed int
	for !first.Equal(last) {
		cur := first
		first.Next()
		s.t.Erase(cur.n)
		removed++
	}
	return removed
}

// Find returns the position of the element equal to key, or End.
func (s *Set[K]) Find(key K) Iterator[K] { return s.iter(s.t.Find(key)) }

// Contains reports whether an element equal to key is present.
func (s *Set[K]) Contains(key K) bool { return s.t.Find(key) != s.t.End() }

// Count returns how many elements equal key: 0 or 1, since the set
// stores distinct keys.
func (s *Set[K]) Count(key K) int {
	if s.Contains(key) {
		return 1
	}
	return 0
}

// LowerBound returns the position of the first element not less than
// key, or End.
func (s *Set[K]) LowerBound(key K) Iterator[K] { return s.iter(s.t.LowerBound(key)) }

// UpperBound returns the position of the first element strictly
// greater than key, or End.
func (s *Set[K]) UpperBound(key K) Iterator[K] { return s.iter(s.t.UpperBound(key)) }

// EqualRange returns the half-open range of elements equal to key,
// which brackets at most one element.
func (s *Set[K]) EqualRange(key K) (lo, hi Iterator[K]) {
	lo = s.LowerBound(key)
	hi = lo
	if hi.Valid() && s.t.Compare(key, hi.Key()) == 0 {
		hi.Next()
	}
	return lo, hi
}

// Nth returns the position of the element of rank i; Nth(Len())
// returns the past-the-end position. i must be in [0, Len()].
func (s *Set[K]) Nth(i int) Iterator[K] {
	return s.iter(s.t.End().At(i))
}

// Min returns the smallest element, or ok=false when the set is
// empty.
func (s *Set[K]) Min() (_ K, ok bool) {
	if s.Empty() {
		var zero K
		return zero, false
	}
	return s.t.First().Key(), true
}

// Max returns the largest element, or ok=false when the set is
// empty.
func (s *Set[K]) Max() (_ K, ok bool) {
	if s.Empty() {
		var zero K
		return zero, false
	}
	return s.t.End().Prev().Key(), true
}

// Swap exchanges the contents of two sets in O(1). Element
// identities migrate: positions held before the swap remain valid
// and address elements of the other set afterwards.
func (s *Set[K]) Swap(o *Set[K]) { s.t.Swap(&o.t) }

// Clone returns a deep copy of the set. The copy's elements are
// value-equal but identity-distinct: no position of s addresses an
// element of the clone.
func (s *Set[K]) Clone() *Set[K] {
	c := New[K](s.t.Ordering())
	c.t.CloneFrom(&s.t)
	return c
}

// CopyFrom replaces the contents of s with a deep copy of o's
// elements and adopts o's ordering, keeping s's random source and
// allocator.
func (s *Set[K]) CopyFrom(o *Set[K]) { s.t.CloneFrom(&o.t) }

// Equal reports whether a and b hold equal elements in the same
// order, compared with a's ordering.
func Equal[K any](a, b *Set[K]) bool {
	if a == b {
		return true
	}
	if a.Len() != b.Len() {
		return false
	}
	ai, bi := a.Begin(), b.Begin()
	for ai.Valid() {
		if a.t.Compare(ai.Key(), bi.Key()) != 0 {
			return false
		}
		ai.Next()
		bi.Next()
	}
	return true
}

// Compare orders two sets lexicographically under a's ordering.
func Compare[K any](a, b *Set[K]) int {
	if a == b {
		return 0
	}
	ai, bi := a.Begin(), b.Begin()
	for ai.Valid() && bi.Valid() {
		if c := a.t.Compare(ai.Key(), bi.Key()); c != 0 {
			return c
		}
		ai.Next()
		bi.Next()
	}
	switch {
	case bi.Valid():
		return -1
	case ai.Valid():
		return 1
	default:
		return 0
	}
}
