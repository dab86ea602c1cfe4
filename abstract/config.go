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

// DefaultSeed seeds the Source of trees that were not given one.
const DefaultSeed = 1

// config carries the three pluggable capability points of a tree: the
// key ordering, the random source consumed by structural decisions,
// and the node allocator.
type config[K any] struct {
	cmp   func(K, K) int
	src   Source
	alloc Allocator[K]
}

func makeConfig[K any](cmp func(K, K) int, src Source, alloc Allocator[K]) (c config[K]) {
	c.cmp = cmp
	if src == nil {
		src = NewLCG(DefaultSeed)
	}
	c.src = src
	if alloc == nil {
		alloc = newPoolAllocator[K]()
	}
	c.alloc = alloc
	return c
}
