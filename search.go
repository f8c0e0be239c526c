// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package multiset

// Contains - true if at least one instance of the value is stored
func (tree *Tree) Contains(value Item) bool {
	return nil != search(value, tree.root)
}

func search(value Item, p *Node) *Node {
	for nil != p {
		switch p.value.Compare(value) {
		case +1: // p.value > value
			p = p.left
		case -1: // p.value < value
			p = p.right
		default:
			return p
		}
	}
	return nil
}
