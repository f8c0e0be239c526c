// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package multiset

import (
	"github.com/bitmark-inc/multiset/fault"
)

// height contribution of a possibly missing child
func childHeight(p *Node) int {
	if nil == p {
		return 0
	}
	return p.height + 1
}

// recompute the cached height from the children
func (p *Node) adjustHeight() {
	l := childHeight(p.left)
	r := childHeight(p.right)
	if l > r {
		p.height = l
	} else {
		p.height = r
	}
}

// positive when the left sub-tree is taller
// in range [-2, 2] during rebalancing, [-1, 1] otherwise
func (p *Node) balanceFactor() int {
	return childHeight(p.left) - childHeight(p.right)
}

// link q into the child slot that p currently occupies, or make q the
// root if p is the root
func (tree *Tree) replaceChild(p *Node, q *Node) {
	up := p.up
	q.up = up
	if nil == up {
		tree.root = q
	} else if up.left == p {
		up.left = q
	} else if up.right == p {
		up.right = q
	} else {
		fault.Panicf("multiset: node %v is not a child of its recorded parent %v", p.value, up.value)
	}
}

// rotateLeft - promote the right child of p into p's position
//
// only the heights of p and the promoted child change
func (tree *Tree) rotateLeft(p *Node) {
	q := p.right
	if nil == q {
		return
	}

	p.right = q.left
	if nil != p.right {
		p.right.up = p
	}

	tree.replaceChild(p, q)

	q.left = p
	p.up = q

	p.adjustHeight()
	q.adjustHeight()
}

// rotateRight - promote the left child of p into p's position
func (tree *Tree) rotateRight(p *Node) {
	q := p.left
	if nil == q {
		return
	}

	p.left = q.right
	if nil != p.left {
		p.left.up = p
	}

	tree.replaceChild(p, q)

	q.right = p
	p.up = q

	p.adjustHeight()
	q.adjustHeight()
}

// rebalance - walk from p up to the root restoring the AVL height rule
//
// the parent is captured before any rotation since a rotation changes
// which node occupies the current level; heights change on every level
// so the walk always continues to the root
func (tree *Tree) rebalance(p *Node) {
	for nil != p {
		up := p.up

		p.adjustHeight()
		switch p.balanceFactor() {
		case 2:
			if nil != p.left && -1 == p.left.balanceFactor() {
				tree.rotateLeft(p.left) // left-right zigzag
			}
			tree.rotateRight(p)
		case -2:
			if nil != p.right && 1 == p.right.balanceFactor() {
				tree.rotateRight(p.right) // right-left zigzag
			}
			tree.rotateLeft(p)
		}

		p = up
	}
}
