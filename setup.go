// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package multiset

// Item - a value stored in the multiset must provide a total order
type Item interface {
	Compare(interface{}) int // +1/0/-1 when receiver is greater/equal/less
}

// Tree - type to hold the root node of a tree
//
// count is the number of stored values, duplicates included; minNode
// and maxNode are non-owning caches of the extreme nodes and are
// absent exactly when the tree is empty
type Tree struct {
	root    *Node
	count   int
	nodes   int
	minNode *Node
	maxNode *Node
}

// New - create an initially empty tree
func New() *Tree {
	return &Tree{
		root:  nil,
		count: 0,
	}
}

// IsEmpty - true if tree contains no data
func (tree *Tree) IsEmpty() bool {
	return nil == tree.root
}

// Count - number of values currently stored, duplicates included
func (tree *Tree) Count() int {
	return tree.count
}

// Nodes - number of distinct values currently stored
func (tree *Tree) Nodes() int {
	return tree.nodes
}

// Root - return the root node of the tree
func (tree *Tree) Root() *Node {
	return tree.root
}

// Min - the smallest stored value or nil if the tree is empty
func (tree *Tree) Min() Item {
	if nil == tree.minNode {
		return nil
	}
	return tree.minNode.value
}

// Max - the largest stored value or nil if the tree is empty
func (tree *Tree) Max() Item {
	if nil == tree.maxNode {
		return nil
	}
	return tree.maxNode.value
}

// First - the node holding the smallest value or nil if the tree is empty
func (tree *Tree) First() *Node {
	return tree.minNode
}

// Last - the node holding the largest value or nil if the tree is empty
func (tree *Tree) Last() *Node {
	return tree.maxNode
}

// GetChildrenByDepth - returns all children in a specific depth of a tree
func (p *Node) GetChildrenByDepth(depth uint) []*Node {
	nodes := []*Node{}

	if depth == 0 {
		nodes = []*Node{p}
	} else {
		left := p.left
		right := p.right
		if left != nil {
			nodes = append(nodes, left.GetChildrenByDepth(depth-1)...)
		}

		if right != nil {
			nodes = append(nodes, right.GetChildrenByDepth(depth-1)...)
		}
	}
	return nodes
}

// Value - read the value from a node
func (p *Node) Value() Item {
	return p.value
}

// Count - multiplicity of the node's value
func (p *Node) Count() int {
	return p.count
}

// Height - cached height of the node's sub-tree, zero for a leaf
func (p *Node) Height() int {
	return p.height
}

// Parent - return parent node of a node
func (p *Node) Parent() *Node {
	return p.up
}

// Depth - get the depth of a node
func (p *Node) Depth() uint {
	count := uint(0)
	parent := p.up
	for parent != nil {
		count += 1
		parent = parent.up
	}
	return count
}

// number of attached children
func (p *Node) children() int {
	n := 0
	if nil != p.left {
		n += 1
	}
	if nil != p.right {
		n += 1
	}
	return n
}
