// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package multiset

import (
	"fmt"
)

// to control the print routine
type branch int

const (
	root  branch = iota
	left  branch = iota
	right branch = iota
)

// Print - display an ASCII graphic representation of the tree
func (tree *Tree) Print(showCounts bool) int {
	return printTree(tree.root, "", root, showCounts)
}

// internal print - returns the maximum depth of the tree
func printTree(tree *Node, prefix string, br branch, showCounts bool) int {
	if nil == tree {
		return 0
	}
	rd := 0
	ld := 0
	if nil != tree.right {
		t := "       "
		if left == br {
			t = "|      "
		}
		rd = printTree(tree.right, prefix+t, right, showCounts)
	}
	switch br {
	case root:
		fmt.Printf("%s|------+ ", prefix)
	case left:
		fmt.Printf("%s\\------+ ", prefix)
	case right:
		fmt.Printf("%s/------+ ", prefix)
	}
	up := interface{}(nil)
	if nil != tree.up {
		up = tree.up.value
	}
	if showCounts {
		fmt.Printf("%v ×%d ^%v h:%d\n", tree.value, tree.count, up, tree.height)
	} else {
		fmt.Printf("%v ^%v\n", tree.value, up)
	}
	if nil != tree.left {
		t := "       "
		if right == br {
			t = "|      "
		}
		ld = printTree(tree.left, prefix+t, left, showCounts)
	}
	if rd > ld {
		return 1 + rd
	}
	return 1 + ld
}
