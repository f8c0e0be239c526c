// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package multiset

// Insert - add a value to the multiset
//
// a value equal to one already stored increments that node's count
// and causes no structural change
func (tree *Tree) Insert(value Item) {
	var parent *Node
	goLeft := false
	isMin := true
	isMax := true

	for p := tree.root; nil != p; {
		parent = p
		switch p.value.Compare(value) {
		case +1: // p.value > value
			isMax = false
			goLeft = true
			p = p.left
		case -1: // p.value < value
			isMin = false
			goLeft = false
			p = p.right
		default: // existing entry, merge
			p.count += 1
			tree.count += 1
			return
		}
	}

	q := newNode(value)
	q.up = parent
	if nil == parent {
		tree.root = q
	} else if goLeft {
		parent.left = q
	} else {
		parent.right = q
	}

	// every comparison went the same way, so the new leaf is a new
	// global extreme; an empty tree sets both
	if isMin {
		tree.minNode = q
	}
	if isMax {
		tree.maxNode = q
	}

	tree.count += 1
	tree.nodes += 1

	if nil != parent {
		tree.rebalance(parent)
	}
}
