// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package multiset

import (
	"github.com/bitmark-inc/multiset/fault"
)

// CheckConsistent - verify the structural invariants of the tree
//
// verifies ordering, balance, cached heights, parent links, counts and
// the extrema caches in one walk over every node; intended for tests
// and diagnostic tools, not for per-operation use
func (tree *Tree) CheckConsistent() error {
	if err := checkOrder(tree.root, nil, nil); nil != err {
		return err
	}

	if err := checkStructure(tree.root, nil); nil != err {
		return err
	}

	count, nodes := checkCounts(tree.root)
	if count != tree.count || nodes != tree.nodes {
		return fault.ErrWrongCount
	}
	if (nil == tree.root) != (0 == tree.count) {
		return fault.ErrWrongCount
	}

	if tree.minNode != tree.root.first() || tree.maxNode != tree.root.last() {
		return fault.ErrWrongExtrema
	}

	return nil
}

// ordering within the open interval (min, max)
func checkOrder(p *Node, min Item, max Item) error {
	if nil == p {
		return nil
	}
	if nil != min && p.value.Compare(min) <= 0 {
		return fault.ErrOutOfOrderNode
	}
	if nil != max && p.value.Compare(max) >= 0 {
		return fault.ErrOutOfOrderNode
	}
	if err := checkOrder(p.left, min, p.value); nil != err {
		return err
	}
	return checkOrder(p.right, p.value, max)
}

// parent links, cached heights and the AVL height rule
func checkStructure(p *Node, up *Node) error {
	if nil == p {
		return nil
	}
	if p.up != up {
		return fault.ErrBrokenParentLink
	}
	if p.count < 1 {
		return fault.ErrZeroCountNode
	}

	l := childHeight(p.left)
	r := childHeight(p.right)
	h := l
	if r > h {
		h = r
	}
	if p.height != h {
		return fault.ErrWrongNodeHeight
	}
	if l-r > 1 || r-l > 1 {
		return fault.ErrUnbalancedNode
	}

	if err := checkStructure(p.left, p); nil != err {
		return err
	}
	return checkStructure(p.right, p)
}

// total stored values and distinct nodes in a sub-tree
func checkCounts(p *Node) (int, int) {
	if nil == p {
		return 0, 0
	}
	lc, ln := checkCounts(p.left)
	rc, rn := checkCounts(p.right)
	return p.count + lc + rc, 1 + ln + rn
}
