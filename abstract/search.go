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

// The search walks below are driven by a three-way comparison between
// a search key and a node's key. The comparison must be the same
// ordering that built the tree; this is not verified, and searching
// with a different ordering silently returns wrong results without
// corrupting the structure.
//
// Each walk takes a res node returned when the search falls off the
// tree. The Tree passes its own sentinel, which makes "not found"
// come out as the past-the-end position.

// find returns the node under n whose key compares equal to key, or
// res if there is none.
func find[K any](n *Node[K], key K, cmp func(K, K) int, res *Node[K]) *Node[K] {
	for n != nil {
		c := cmp(key, n.key)
		switch {
		case c < 0:
			n = n.left
		case c > 0:
			n = n.right
		default:
			return n
		}
	}
	return res
}

// lowerBound returns the leftmost node under n whose key is not less
// than key, tracking the best candidate on each leftward step, or res
// if every node compares less.
func lowerBound[K any](n *Node[K], key K, cmp func(K, K) int, res *Node[K]) *Node[K] {
	for n != nil {
		if cmp(n.key, key) < 0 {
			n = n.right
		} else {
			res = n
			n = n.left
		}
	}
	return res
}

// upperBound returns the leftmost node under n whose key is strictly
// greater than key, or res if no node is.
func upperBound[K any](n *Node[K], key K, cmp func(K, K) int, res *Node[K]) *Node[K] {
	for n != nil {
		if cmp(key, n.key) < 0 {
			res = n
			n = n.left
		} else {
			n = n.right
		}
	}
	return res
}
