// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package multiset_test

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/multiset"
)

type stringItem struct {
	s string
}

func (s stringItem) String() string {
	return s.s
}

func (s stringItem) Compare(x interface{}) int {
	return strings.Compare(s.s, x.(stringItem).s)
}

type intItem int

func (i intItem) Compare(x interface{}) int {
	j := x.(intItem)
	switch {
	case i < j:
		return -1
	case i > j:
		return +1
	}
	return 0
}

func TestListShort(t *testing.T) {
	addList := []stringItem{
		{"4201"}, {"1254"}, {"8608"}, {"1639"}, {"8950"},
		{"6740"},
	}
	doList(t, addList)
}

// to make sure that lots of duplicates only increment the count of a
// single node
func TestListDuplicates(t *testing.T) {
	addList := []stringItem{
		{"1720"}, {"0506"}, {"8382"}, {"6774"}, {"1247"},
		{"1250"}, {"1264"}, {"1258"}, {"1255"}, {"2247"},
		{"2004"}, {"2194"}, {"2644"}, {"2169"}, {"8133"},
		{"2136"}, {"9651"}, {"4079"}, {"1042"}, {"3579"},
		{"1720"}, {"0506"}, {"8382"}, {"6774"}, {"1042"},

		{"1042"}, {"1042"}, {"1042"}, {"1042"}, {"1042"},
		{"1042"}, {"1042"}, {"1042"}, {"1042"}, {"1042"},
		{"1042"}, {"1042"}, {"1042"}, {"1042"}, {"1042"},
	}
	doList(t, addList)

	tree := multiset.New()
	distinct := make(map[string]struct{})
	for _, value := range addList {
		tree.Insert(value)
		distinct[value.String()] = struct{}{}
	}
	if tree.Nodes() != len(distinct) {
		t.Fatalf("nodes: actual: %d  expected: %d", tree.Nodes(), len(distinct))
	}
}

// insert the whole list, then delete a prefix followed by the
// remainder, checking every invariant after every single mutation;
// each stored instance needs exactly one delete
func doList(t *testing.T, addList []stringItem) {

	for i := 0; i <= len(addList); i += 1 {

		tree := multiset.New()
		for n, value := range addList {
			tree.Insert(value)
			if err := tree.CheckConsistent(); nil != err {
				tree.Print(true)
				t.Fatalf("insert: inconsistent tree: %s", err)
			}
			if tree.Count() != n+1 {
				t.Fatalf("count: actual: %d  expected: %d", tree.Count(), n+1)
			}
			if !tree.Contains(value) {
				t.Fatalf("missing value: %q", value)
			}
		}

		for _, value := range addList[:i] {
			if !tree.Delete(value) {
				t.Fatalf("delete: %q not present", value)
			}
			if err := tree.CheckConsistent(); nil != err {
				tree.Print(true)
				t.Fatalf("delete: inconsistent tree: %s", err)
			}
		}
		if tree.Count() != len(addList)-i {
			t.Fatalf("count: actual: %d  expected: %d", tree.Count(), len(addList)-i)
		}

		for _, value := range addList[i:] {
			if !tree.Delete(value) {
				t.Fatalf("delete remainder: %q not present", value)
			}
			if err := tree.CheckConsistent(); nil != err {
				tree.Print(true)
				t.Fatalf("delete remainder: inconsistent tree: %s", err)
			}
		}

		if !tree.IsEmpty() {
			depth := tree.Print(true)
			t.Logf("depth: %d", depth)
			t.Fatal("remaining nodes")
		}
		if 0 != tree.Count() {
			t.Fatalf("remaining count not zero: %d", tree.Count())
		}
		if nil != tree.Min() || nil != tree.Max() {
			t.Fatal("extrema present in empty tree")
		}
	}
}

// delete of a value never inserted must change nothing
func TestDeleteAbsent(t *testing.T) {
	assert := assert.New(t)

	tree := multiset.New()
	for _, value := range []intItem{7, 3, 9, 5} {
		tree.Insert(value)
	}

	assert.False(tree.Delete(intItem(4)), "deleted an absent value")
	assert.Equal(4, tree.Count(), "count changed")
	for _, value := range []intItem{7, 3, 9, 5} {
		assert.True(tree.Contains(value), "lost value %d", value)
	}
	assert.NoError(tree.CheckConsistent())
}

// inserting a value k times needs exactly k deletes, and any further
// delete is a no-op
func TestInsertDeleteRepeats(t *testing.T) {
	assert := assert.New(t)

	const k = 5
	tree := multiset.New()
	for i := 0; i < k; i += 1 {
		tree.Insert(intItem(42))
		assert.Equal(i+1, tree.Count())
	}
	assert.Equal(1, tree.Nodes(), "duplicates created extra nodes")

	for i := 0; i < k; i += 1 {
		assert.True(tree.Contains(intItem(42)), "value gone after %d deletes", i)
		assert.True(tree.Delete(intItem(42)))
		assert.NoError(tree.CheckConsistent())
	}
	assert.False(tree.Contains(intItem(42)), "value still present after %d deletes", k)
	assert.False(tree.Delete(intItem(42)), "deleted from empty tree")
	assert.Equal(0, tree.Count())
}

// the concrete two child deletion scenario: the predecessor of the
// root takes its place
func TestTwoChildDelete(t *testing.T) {
	assert := assert.New(t)

	tree := multiset.New()
	for _, value := range []intItem{2, 1, 3} {
		tree.Insert(value)
	}

	// root=2 with children 1 and 3
	assert.Equal(intItem(2), tree.Root().Value())

	assert.True(tree.Delete(intItem(2)))
	assert.NoError(tree.CheckConsistent())

	root := tree.Root()
	assert.Equal(intItem(1), root.Value(), "predecessor did not replace the root")
	assert.Nil(root.Parent())
	assert.Len(root.GetChildrenByDepth(1), 1, "root child count")
	assert.Equal(intItem(3), root.GetChildrenByDepth(1)[0].Value())

	assert.Equal(2, tree.Count())
	assert.False(tree.Contains(intItem(2)))
}

// ascending, descending and fixed-seed shuffled insertion of 0..999
// must stay consistent throughout and end up with logarithmic height
func TestScaleBalance(t *testing.T) {
	ascending := make([]intItem, 1000)
	for i := range ascending {
		ascending[i] = intItem(i)
	}

	descending := make([]intItem, 1000)
	for i := range descending {
		descending[i] = intItem(999 - i)
	}

	shuffled := make([]intItem, 1000)
	copy(shuffled, ascending)
	rg := rand.New(rand.NewSource(0))
	rg.Shuffle(len(shuffled), func(i int, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})

	for name, order := range map[string][]intItem{
		"ascending":  ascending,
		"descending": descending,
		"shuffled":   shuffled,
	} {
		tree := buildChecked(t, name, order)

		// AVL height for n=1000 is at most 1.44*log2(n), the usual
		// outcome is 10 or 11 (height of a leaf is zero)
		height := tree.Root().Height()
		if height < 9 || height > 13 {
			t.Fatalf("%s: height out of range: %d", name, height)
		}

		if tree.Min().(intItem) != 0 || tree.Max().(intItem) != 999 {
			t.Fatalf("%s: wrong extrema: %v %v", name, tree.Min(), tree.Max())
		}

		n := 0
		it := tree.Iter()
		for value, ok := it.Next(); ok; value, ok = it.Next() {
			if int(value.(intItem)) != n {
				t.Fatalf("%s: out of order: actual: %v  expected: %d", name, value, n)
			}
			n += 1
		}
		if n != 1000 {
			t.Fatalf("%s: iterator yield: actual: %d  expected: 1000", name, n)
		}
	}
}

func buildChecked(t *testing.T, name string, order []intItem) *multiset.Tree {
	tree := multiset.New()
	for _, value := range order {
		tree.Insert(value)
		if err := tree.CheckConsistent(); nil != err {
			t.Fatalf("%s: inconsistent tree: %s", name, err)
		}
	}
	return tree
}

// shuffled insert of 1000 distinct values followed by a differently
// shuffled delete of all of them, consistent after every operation
func TestRandomInterleaving(t *testing.T) {
	values := make([]intItem, 1000)
	for i := range values {
		values[i] = intItem(i)
	}

	rg := rand.New(rand.NewSource(1))
	rg.Shuffle(len(values), func(i int, j int) {
		values[i], values[j] = values[j], values[i]
	})

	tree := buildChecked(t, "interleave insert", values)

	rg.Shuffle(len(values), func(i int, j int) {
		values[i], values[j] = values[j], values[i]
	})

	for _, value := range values {
		if !tree.Delete(value) {
			t.Fatalf("delete: %d not present", value)
		}
		if err := tree.CheckConsistent(); nil != err {
			tree.Print(true)
			t.Fatalf("delete: inconsistent tree: %s", err)
		}
	}

	if !tree.IsEmpty() || 0 != tree.Count() {
		t.Fatalf("tree not empty: count: %d", tree.Count())
	}
	if nil != tree.Min() || nil != tree.Max() {
		t.Fatal("extrema present in empty tree")
	}
	if nil != tree.First() || nil != tree.Last() {
		t.Fatal("extrema nodes present in empty tree")
	}
}

// min/max reads are served from the caches, including after the cached
// node itself is deleted
func TestExtremaTracking(t *testing.T) {
	assert := assert.New(t)

	tree := multiset.New()
	assert.Nil(tree.Min())
	assert.Nil(tree.Max())

	tree.Insert(intItem(5))
	assert.Equal(intItem(5), tree.Min())
	assert.Equal(intItem(5), tree.Max())

	tree.Insert(intItem(3))
	tree.Insert(intItem(8))
	assert.Equal(intItem(3), tree.Min())
	assert.Equal(intItem(8), tree.Max())

	// duplicate of the minimum, then one delete keeps the node alive
	tree.Insert(intItem(3))
	assert.True(tree.Delete(intItem(3)))
	assert.Equal(intItem(3), tree.Min())

	// second delete removes the node and forces a recompute
	assert.True(tree.Delete(intItem(3)))
	assert.Equal(intItem(5), tree.Min())

	assert.True(tree.Delete(intItem(8)))
	assert.Equal(intItem(5), tree.Max())
	assert.NoError(tree.CheckConsistent())
}

func TestGetDepthInTree(t *testing.T) {
	addList := []stringItem{
		{"01"}, {"02"}, {"03"}, {"04"}, {"05"},
		{"06"}, {"07"},
	}

	tree := multiset.New()
	for _, value := range addList {
		tree.Insert(value)
	}

	if d := tree.Root().Depth(); d != 0 {
		t.Fatalf("incorrect root depth: %d", d)
	}

	if d := tree.First().Depth(); d != 2 {
		t.Fatalf("incorrect node depth: %d", d)
	}
}

func TestGetChildrenByDepth(t *testing.T) {
	addList := []stringItem{
		{"01"}, {"02"}, {"03"}, {"04"}, {"05"},
		{"06"}, {"07"},
	}

	tree := multiset.New()
	for _, value := range addList {
		tree.Insert(value)
	}

	if len(tree.Root().GetChildrenByDepth(1)) != 2 {
		t.Fatalf("incorrect children number in depth 1")
	}

	if len(tree.Root().GetChildrenByDepth(2)) != 4 {
		t.Fatalf("incorrect children number in depth 2")
	}
}
