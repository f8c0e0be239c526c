// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package multiset

import (
	"github.com/bitmark-inc/multiset/fault"
)

// Delete - remove one instance of a value from the multiset
//
// the node is only structurally removed when its count reaches zero;
// deleting an absent value is a no-op and returns false
func (tree *Tree) Delete(value Item) bool {
	p := search(value, tree.root)
	if nil == p {
		return false
	}
	tree.deleteNode(p)
	return true
}

// DeleteAt - remove one instance of the value the iterator is
// positioned on
//
// a cursor whose node was already structurally removed is stale and
// this becomes a no-op, returning false
func (tree *Tree) DeleteAt(it *Iterator) bool {
	p := it.resolve()
	if nil == p {
		return false
	}
	tree.deleteNode(p)
	return true
}

// internal delete routine
func (tree *Tree) deleteNode(p *Node) {
	p.count -= 1
	if p.count > 0 {
		tree.count -= 1
		return
	}

	// the caches are only recomputed when the cached node itself is
	// going away; a two child node can be neither extreme so the
	// recursive path flags its own removal
	recalcMin := p == tree.minNode
	recalcMax := p == tree.maxNode

	switch p.children() {
	case 0:
		tree.deleteLeaf(p)
	case 1:
		tree.spliceChild(p)
	case 2:
		p.count += 1 // count travels to the predecessor in the swap
		tree.swapPredecessor(p)
	default:
		fault.Panicf("multiset: node %v has more than two children", p.value)
	}

	if recalcMin {
		tree.minNode = tree.root.first()
	}
	if recalcMax {
		tree.maxNode = tree.root.last()
	}
}

// remove a node with no children
func (tree *Tree) deleteLeaf(p *Node) {
	up := p.up
	if nil == up {
		tree.root = nil
	} else if up.left == p {
		up.left = nil
	} else if up.right == p {
		up.right = nil
	} else {
		fault.Panicf("multiset: node %v is not a child of its recorded parent %v", p.value, up.value)
	}

	freeNode(p) // return deleted node to pool
	tree.count -= 1
	tree.nodes -= 1

	if nil != up {
		tree.rebalance(up)
	}
}

// remove a node with exactly one child by promoting the child into
// the removed node's slot
func (tree *Tree) spliceChild(p *Node) {
	child := p.left
	if nil == child {
		child = p.right
	}

	up := p.up
	child.up = up
	if nil == up {
		tree.root = child
	} else if up.left == p {
		up.left = child
	} else if up.right == p {
		up.right = child
	} else {
		fault.Panicf("multiset: node %v is not a child of its recorded parent %v", p.value, up.value)
	}

	freeNode(p) // return deleted node to pool
	tree.count -= 1
	tree.nodes -= 1

	if nil != up {
		tree.rebalance(up)
	}
}

// remove a node with two children
//
// exchange value and count with the in-order predecessor, the largest
// node of the left sub-tree, then delete that node; the predecessor
// has no right child so the recursion ends after one more step
func (tree *Tree) swapPredecessor(p *Node) {
	pred := p.left.last()

	p.value, pred.value = pred.value, p.value
	p.count, pred.count = pred.count, p.count

	tree.deleteNode(pred)
}
