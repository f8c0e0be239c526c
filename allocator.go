// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package multiset

import (
	"sync"

	"github.com/bitmark-inc/multiset/fault"
)

// Node - a node in the tree
//
// the left and right links own their sub-trees, the up link is a
// non-owning back reference to the owner of this node
type Node struct {
	left   *Node  // left sub-tree
	right  *Node  // right sub-tree
	up     *Node  // points to parent node
	value  Item   // value part for ordering
	count  int    // multiplicity of the value, at least 1 while the node is live
	height int    // cached sub-tree height, zero for a leaf
	gen    uint64 // advanced on free so stale references are detectable
}

// global data for allocator
var m sync.Mutex   // to keep values in sync
var pool *Node     // linked list of reclaimed nodes
var totalNodes int // total nodes created
var freeNodes int  // number of nodes in the pool

// allocate a new node, reuses reclaimed nodes if any are available
func newNode(value Item) *Node {
	m.Lock()
	if nil == pool {
		if 0 != freeNodes {
			fault.Panicf("multiset: node pool corrupt: %d free nodes recorded", freeNodes)
		}
		totalNodes += 1
		m.Unlock()
		return &Node{
			value: value,
			count: 1,
		}
	}
	p := pool
	pool = p.up
	p.value = value
	p.count = 1
	p.height = 0
	p.left = nil
	p.right = nil
	p.up = nil // ensure freelist pointer is cleared
	freeNodes -= 1
	m.Unlock()
	return p
}

// reclaim a node and keep it in a pool
//
// the generation stamp is advanced so that any iterator still holding
// this node treats it as removed, even after the node is reused
func freeNode(node *Node) {
	m.Lock()
	node.up = pool // use as free list pointer

	node.left = nil
	node.right = nil
	node.value = nil
	node.count = 0
	node.height = 0
	node.gen += 1
	freeNodes += 1

	pool = node
	m.Unlock()
}
