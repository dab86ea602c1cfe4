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

import "sync"

// Allocator controls the node lifecycle for a Tree. New produces a
// detached unit node carrying key; Free takes back a node that the
// tree has fully unlinked. Implementations may pool or arena nodes.
// A node handed to Free must not be reached through any live
// position afterwards.
type Allocator[K any] interface {
	New(key K) *Node[K]
	Free(*Node[K])
}

// poolAllocator is the default Allocator. It recycles nodes through a
// process-wide sync.Pool shared by all trees of the same key type.
type poolAllocator[K any] struct {
	pool *sync.Pool
}

var syncPoolMap sync.Map

func getNodePool[K any]() *sync.Pool {
	var nilNode *Node[K]
	v, ok := syncPoolMap.Load(nilNode)
	if !ok {
		v, _ = syncPoolMap.LoadOrStore(nilNode, &sync.Pool{
			New: func() interface{} {
				return new(Node[K])
			},
		})
	}
	return v.(*sync.Pool)
}

func newPoolAllocator[K any]() poolAllocator[K] {
	return poolAllocator[K]{pool: getNodePool[K]()}
}

func (a poolAllocator[K]) New(key K) *Node[K] {
	n := a.pool.Get().(*Node[K])
	n.key = key
	n.size = 1
	return n
}

func (a poolAllocator[K]) Free(n *Node[K]) {
	*n = Node[K]{}
	a.pool.Put(n)
}
