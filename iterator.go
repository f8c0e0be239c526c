// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package multiset

// Iterator - a forward cursor over the multiset
//
// the cursor is a non-owning reference into the tree paired with the
// generation of the node it was taken from; when the node has been
// structurally removed behind the cursor the reference no longer
// resolves and the cursor exhausts silently
type Iterator struct {
	node    *Node
	gen     uint64
	repeats int // position within the current node's count, in [1, count]
}

// Iter - cursor over all values in ascending order
func (tree *Tree) Iter() *Iterator {
	return tree.MinIter()
}

// MinIter - cursor positioned at the smallest value
func (tree *Tree) MinIter() *Iterator {
	return newIterator(tree.minNode)
}

// MaxIter - cursor positioned at the largest value
//
// forward-only: it yields the remaining repeats of the maximum entry
// and then exhausts, since the maximum has no in-order successor
func (tree *Tree) MaxIter() *Iterator {
	return newIterator(tree.maxNode)
}

func newIterator(p *Node) *Iterator {
	it := &Iterator{repeats: 1}
	it.set(p)
	return it
}

func (it *Iterator) set(p *Node) {
	it.node = p
	if nil != p {
		it.gen = p.gen
	}
}

// the referenced node, or nil when the cursor is exhausted or stale
func (it *Iterator) resolve() *Node {
	p := it.node
	if nil == p {
		return nil
	}
	if p.gen != it.gen {
		it.node = nil
		return nil
	}
	return p
}

// Next - the next value in ascending order
//
// each entry is yielded once per unit of its count before the cursor
// advances to the in-order successor; the second return value is
// false once the cursor is exhausted
func (it *Iterator) Next() (Item, bool) {
	p := it.resolve()
	if nil == p {
		return nil, false
	}

	value := p.value
	if it.repeats < p.count {
		it.repeats += 1
		return value, true
	}

	it.repeats = 1
	it.advance(p)
	return value, true
}

// advance to the in-order successor of p
func (it *Iterator) advance(p *Node) {
	if nil != p.right {
		it.set(p.right.first())
		return
	}
	// walk upward until arriving from a left-child edge
	for q := p.up; nil != q; p, q = q, q.up {
		if q.left == p {
			it.set(q)
			return
		}
	}
	it.node = nil
}

// internal: lowest node in a sub-tree
func (p *Node) first() *Node {
	if p == nil {
		return nil
	}
	for p.left != nil {
		p = p.left
	}
	return p
}

// internal: highest node in a sub-tree
func (p *Node) last() *Node {
	if p == nil {
		return nil
	}
	for p.right != nil {
		p = p.right
	}
	return p
}
