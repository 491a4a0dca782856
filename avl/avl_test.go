// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2026 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl_test

import (
	"bytes"
	"math"
	"math/rand"
	"slices"
	"sort"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bitmark-inc/treelab/avl"
)

func TestListShort(t *testing.T) {
	addList := []int{4201, 1254, 8608, 1639, 8950, 6740}
	doList(t, addList)
	doTraverse(t, addList)
}

// to make sure that lots of duplicates do not increment the node
// count incorrectly
func TestListDuplicates(t *testing.T) {
	addList := []int{
		1720, 506, 8382, 6774, 1247, 1250, 1264, 1258, 1255, 2247,
		2004, 2194, 2644, 2169, 8133, 2136, 9651, 4079, 1042, 3579,
		1720, 506, 8382, 6774, 1042, 1042, 1042, 1042, 1042, 1042,
	}
	doList(t, addList)
	doTraverse(t, addList)
}

func TestListLong(t *testing.T) {
	addList := []int{
		8133, 2136, 9651, 4079, 1042, 3579, 3630, 1427, 5843, 9549,
		5433, 1274, 9034, 4724, 6179, 5072, 9272, 4030, 4205, 3363,
		8582, 1720, 506, 8382, 6774, 3088, 2329, 9039, 6703, 1027,
		7297, 6063, 4156, 1005, 982, 3065, 2553, 795, 8426, 2377,
		877, 9085, 5918, 2581, 7797, 3028, 5880, 3061, 5212, 6539,
		1320, 3581, 3334, 4348, 2934, 8342, 8814, 8736, 1353, 3082,
		9620, 56, 5063, 1245, 7066, 7435, 2999, 7803, 1303, 1697,
		17, 4314, 9926, 7587, 2531, 8123, 5693, 7495, 9975, 5465,
	}
	doList(t, addList)
	doTraverse(t, addList)
}

// build the full tree, then for every split point delete a prefix,
// check, and delete the remainder
func doList(t *testing.T, addList []int) {
	for i := 0; i < len(addList)+1; i += 1 {

		alreadyDeleted := make(map[int]struct{})

		tree := avl.New[int]()
		for _, key := range addList {
			tree.Insert(key)
		}

		if err := tree.Check(); nil != err {
			dump(t, tree)
			t.Fatalf("add: inconsistent tree: %s", err)
		}

	delete_items:
		for _, key := range addList[:i] {
			if _, ok := alreadyDeleted[key]; ok {
				continue delete_items
			}
			alreadyDeleted[key] = struct{}{}
			if r := tree.Delete(key); avl.Deleted != r {
				t.Fatalf("delete: %d returned: %s", key, r)
			}
		}

		if err := tree.Check(); nil != err {
			dump(t, tree)
			t.Fatalf("delete: inconsistent tree: %s", err)
		}

	delete_remainder:
		for _, key := range addList[i:] {
			if _, ok := alreadyDeleted[key]; ok {
				continue delete_remainder
			}
			alreadyDeleted[key] = struct{}{}
			if r := tree.Delete(key); avl.Deleted != r {
				t.Fatalf("delete: %d returned: %s", key, r)
			}
		}
		if !tree.IsEmpty() {
			dump(t, tree)
			t.Fatal("remainder: remaining nodes")
		}
		if 0 != tree.Size() {
			t.Fatalf("remaining count not zero: %d", tree.Size())
		}
	}
}

// traverse the tree forwards and backwards
func doTraverse(t *testing.T, addList []int) {
	unique := make(map[int]struct{})
	tree := avl.New[int]()
	for _, key := range addList {
		unique[key] = struct{}{}
		tree.Insert(key)
	}

	expected := make([]int, 0, len(unique))
	for key := range unique {
		expected = append(expected, key)
	}
	sort.Ints(expected)

	assert.Equal(t, expected, tree.Keys(), "forward traversal")

	reverse := make([]int, 0, len(expected))
	for key := range tree.Reverse() {
		reverse = append(reverse, key)
	}
	slices.Reverse(reverse)
	assert.Equal(t, expected, reverse, "reverse traversal")
	assert.Equal(t, len(expected), tree.Size(), "tree count")

	lo, ok := tree.Min()
	require.True(t, ok)
	assert.Equal(t, expected[0], lo, "min")
	hi, ok := tree.Max()
	require.True(t, ok)
	assert.Equal(t, expected[len(expected)-1], hi, "max")
}

func dump[K any](t *testing.T, tree *avl.Tree[K]) {
	var b bytes.Buffer
	depth := tree.Print(&b, true)
	t.Logf("depth: %d\n%s", depth, b.String())
}

func TestSmallTreeMetrics(t *testing.T) {
	tree := avl.New[int]()
	for _, key := range []int{5, 3, 8, 1, 4, 7, 9} {
		assert.Equal(t, avl.Inserted, tree.Insert(key), "insert: %d", key)
	}

	assert.Equal(t, 7, tree.Size(), "size")
	assert.Equal(t, 37, avl.Checksum(tree), "checksum")
	bound := int(math.Ceil(1.44 * math.Log2(9)))
	assert.LessOrEqual(t, tree.Height(), bound, "height")
	assert.Equal(t, 3, tree.Height(), "perfect tree height")
	assert.InDelta(t, 17.0/7.0, tree.AverageDepth(), 1e-9, "average depth")
	assert.Equal(t, []int{1, 2, 4}, tree.LevelCounts(), "level counts")
	assert.True(t, tree.IsBalanced())
}

func TestAscendingInsertThenDeleteTwoChildNode(t *testing.T) {
	tree := avl.New[int]()
	for _, key := range []int{10, 20, 30, 40, 50} {
		tree.Insert(key)
	}

	assert.Equal(t, 3, tree.Height(), "height")
	assert.Equal(t, []int{10, 20, 30, 40, 50}, tree.Keys(), "in order")
	assert.Equal(t, 1, tree.Depth(20), "20 is the root")

	assert.Equal(t, avl.Deleted, tree.Delete(20))
	assert.Equal(t, []int{10, 30, 40, 50}, tree.Keys(), "in order after delete")
	assert.NoError(t, tree.Check())
	assert.Equal(t, 3, tree.Height(), "height after delete")
	assert.Equal(t, 1, tree.Depth(40), "40 rotated to the root")
	assert.False(t, tree.Contains(20))
}

func TestInsertExistingKeyIsNoOp(t *testing.T) {
	tree := avl.New[int]()
	for _, key := range []int{50, 20, 70, 10} {
		tree.Insert(key)
	}
	var before bytes.Buffer
	tree.Print(&before, true)

	assert.Equal(t, avl.AlreadyPresent, tree.Insert(20))
	assert.Equal(t, 4, tree.Size())

	var after bytes.Buffer
	tree.Print(&after, true)
	assert.Equal(t, before.String(), after.String(), "shape changed")
	assert.Equal(t, uint64(4), tree.Stats().Insertions)
}

func TestDeleteAbsentKeyIsNoOp(t *testing.T) {
	tree := avl.New[int]()
	assert.Equal(t, avl.NotFound, tree.Delete(1), "empty tree")

	for _, key := range []int{50, 20, 70} {
		tree.Insert(key)
	}
	assert.Equal(t, avl.NotFound, tree.Delete(60))
	assert.Equal(t, []int{20, 50, 70}, tree.Keys())
	assert.Equal(t, uint64(0), tree.Stats().Deletions)
}

func TestInsertDeleteRoundTrip(t *testing.T) {
	r := rand.New(rand.NewSource(1234))
	tree := avl.New[int]()
	for i := 0; i < 500; i += 1 {
		tree.Insert(r.Intn(2000))
	}

	for i := 0; i < 200; i += 1 {
		key := r.Intn(2000)
		if tree.Contains(key) {
			continue
		}
		keys := tree.Keys()
		size := tree.Size()
		sum := avl.Checksum(tree)

		require.Equal(t, avl.Inserted, tree.Insert(key))
		require.Equal(t, avl.Deleted, tree.Delete(key))

		assert.Equal(t, keys, tree.Keys(), "keys after round trip")
		assert.Equal(t, size, tree.Size(), "size after round trip")
		assert.Equal(t, sum, avl.Checksum(tree), "checksum after round trip")
		require.NoError(t, tree.Check())
	}
}

// every insertion order of a small key set followed by every deletion
// order must leave an empty tree
func TestAllPermutations(t *testing.T) {
	for n := 1; n <= 6; n += 1 {
		keys := make([]int, n)
		for i := range keys {
			keys[i] = (i + 1) * 10
		}
		inserts := permutations(keys)
		deletes := inserts
		if 6 == n && testing.Short() {
			deletes = deletes[:24]
		}

		for _, insertOrder := range inserts {
			for _, deleteOrder := range deletes {
				tree := avl.New[int]()
				for _, key := range insertOrder {
					tree.Insert(key)
				}
				if !tree.IsBalanced() {
					t.Fatalf("insert %v: unbalanced", insertOrder)
				}
				for j, key := range deleteOrder {
					if avl.Deleted != tree.Delete(key) {
						t.Fatalf("insert %v delete %v: %d not found", insertOrder, deleteOrder, key)
					}
					if err := tree.Check(); nil != err {
						t.Fatalf("insert %v delete %v step %d: %s", insertOrder, deleteOrder, j, err)
					}
				}
				if !tree.IsEmpty() || 0 != tree.Size() {
					t.Fatalf("insert %v delete %v: tree not empty", insertOrder, deleteOrder)
				}
			}
		}
	}
}

// Heap's algorithm
func permutations(keys []int) [][]int {
	a := slices.Clone(keys)
	result := [][]int{slices.Clone(a)}
	c := make([]int, len(a))
	for i := 0; i < len(a); {
		if c[i] < i {
			if 0 == i%2 {
				a[0], a[i] = a[i], a[0]
			} else {
				a[c[i]], a[i] = a[i], a[c[i]]
			}
			result = append(result, slices.Clone(a))
			c[i] += 1
			i = 0
		} else {
			c[i] = 0
			i += 1
		}
	}
	return result
}

func TestRandomTree(t *testing.T) {
	randomTree(t, 2200, 2000, 1)
	randomTree(t, 3400, 2760, 2)
	randomTree(t, 5467, 1234, 3)
}

func randomTree(t *testing.T, total int, toDelete int, seed int64) {
	r := rand.New(rand.NewSource(seed))

	tree := avl.New[int]()
	d := make([]int, toDelete)
	unique := make(map[int]struct{})
	for i := 0; i < total; i += 1 {
		key := r.Intn(10000)
		if i < len(d) {
			d[i] = key
		}
		unique[key] = struct{}{}
		tree.Insert(key)
	}
	require.Equal(t, len(unique), tree.Size())
	require.NoError(t, tree.Check())

	bound := 1.45 * math.Log2(float64(tree.Size()+2))
	assert.LessOrEqual(t, float64(tree.Height()), bound, "AVL height bound")

	for _, key := range d {
		tree.Delete(key)
		delete(unique, key)
		if err := tree.Check(); nil != err {
			dump(t, tree)
			t.Fatalf("delete %d: inconsistent tree: %s", key, err)
		}
	}
	assert.Equal(t, len(unique), tree.Size())
	for key := range unique {
		assert.True(t, tree.Contains(key), "missing: %d", key)
	}
}

func TestRotationStatistics(t *testing.T) {
	tree := avl.New[int]()
	for key := 1; key <= 7; key += 1 {
		tree.Insert(key)
	}
	s := tree.Stats()
	assert.Equal(t, uint64(7), s.Insertions)
	assert.Equal(t, uint64(4), s.InsertSingle, "RR rotations")
	assert.Equal(t, uint64(0), s.InsertDouble)
	assert.InDelta(t, 4.0/7.0, s.InsertRatio(), 1e-9)

	tree.ResetStats()
	tree.Clear()
	tree.Insert(3)
	tree.Insert(1)
	tree.Insert(2)
	assert.Equal(t, uint64(1), tree.Stats().InsertDouble, "LR rotation")
	assert.Equal(t, 1, tree.Depth(2), "LR root")

	tree.ResetStats()
	tree.Clear()
	tree.Insert(1)
	tree.Insert(3)
	tree.Insert(2)
	assert.Equal(t, uint64(1), tree.Stats().InsertDouble, "RL rotation")
	assert.Equal(t, 1, tree.Depth(2), "RL root")
}

// deletion that rotates about a balanced pivot keeps the height
func TestDeleteRotationAboutBalancedPivot(t *testing.T) {
	tree := avl.New[int]()
	for _, key := range []int{2, 1, 4, 3, 5} {
		tree.Insert(key)
	}
	require.Equal(t, 3, tree.Height())

	assert.Equal(t, avl.Deleted, tree.Delete(1))
	assert.NoError(t, tree.Check())
	assert.Equal(t, 3, tree.Height(), "height unchanged")
	assert.Equal(t, 1, tree.Depth(4))
	assert.Equal(t, 2, tree.Depth(2))
	assert.Equal(t, 3, tree.Depth(3))
	assert.Equal(t, uint64(1), tree.Stats().DeleteSingle)

	var b bytes.Buffer
	tree.Print(&b, true)
	assert.Contains(t, b.String(), "4 -1", "new root is left heavy")
	assert.Contains(t, b.String(), "2 +1", "old root is right heavy")
}

func TestInOrderIsRestartableAndStoppable(t *testing.T) {
	tree := avl.New[int]()
	for _, key := range []int{8, 3, 10, 1, 6, 14, 4, 7, 13} {
		tree.Insert(key)
	}

	first := []int{}
	for key := range tree.InOrder() {
		first = append(first, key)
	}
	second := []int{}
	for key := range tree.InOrder() {
		second = append(second, key)
	}
	assert.Equal(t, first, second)
	assert.True(t, sort.IntsAreSorted(first))

	partial := []int{}
	for key := range tree.InOrder() {
		if key > 6 {
			break
		}
		partial = append(partial, key)
	}
	assert.Equal(t, []int{1, 3, 4, 6}, partial)

	empty := avl.New[int]()
	for range empty.InOrder() {
		t.Fatal("empty tree yielded a key")
	}
	_, ok := empty.Min()
	assert.False(t, ok)
	assert.Equal(t, 0.0, empty.AverageDepth())
	assert.Equal(t, 0, empty.Height())
	assert.Equal(t, 0, avl.Checksum(empty))
}

func TestCustomOrder(t *testing.T) {
	tree := avl.NewFunc(func(a string, b string) int {
		return strings.Compare(b, a) // descending
	})
	for _, key := range []string{"kiwi", "apple", "pear", "fig", "banana"} {
		tree.Insert(key)
	}
	assert.Equal(t, []string{"pear", "kiwi", "fig", "banana", "apple"}, tree.Keys())
	assert.Equal(t, avl.AlreadyPresent, tree.Insert("fig"))
	assert.Equal(t, avl.Deleted, tree.Delete("kiwi"))
	assert.NoError(t, tree.Check())
}

func TestFloatChecksum(t *testing.T) {
	tree := avl.New[float64]()
	for _, key := range []float64{0.5, 1.25, 2.25} {
		tree.Insert(key)
	}
	assert.InDelta(t, 4.0, avl.Checksum(tree), 1e-12)
}

func TestGuardedConcurrentAccess(t *testing.T) {
	g := avl.NewGuarded(avl.New[int]())

	var wg sync.WaitGroup
	for w := 0; w < 4; w += 1 {
		wg.Add(1)
		go func(base int) {
			defer wg.Done()
			for i := 0; i < 250; i += 1 {
				g.Insert(base*1000 + i)
				g.Contains(i)
			}
		}(w)
	}
	wg.Wait()

	assert.Equal(t, 1000, g.Size())
	g.View(func(tree *avl.Tree[int]) {
		assert.NoError(t, tree.Check())
	})

	for w := 0; w < 4; w += 1 {
		wg.Add(1)
		go func(base int) {
			defer wg.Done()
			for i := 0; i < 250; i += 2 {
				g.Delete(base*1000 + i)
			}
		}(w)
	}
	wg.Wait()
	assert.Equal(t, 500, len(g.Keys()))
}

func TestStringers(t *testing.T) {
	assert.Equal(t, "Inserted", avl.Inserted.String())
	assert.Equal(t, "AlreadyPresent", avl.AlreadyPresent.String())
	assert.Equal(t, "Deleted", avl.Deleted.String())
	assert.Equal(t, "NotFound", avl.NotFound.String())
	assert.Equal(t, "-1", avl.LeftHeavy.String())
	assert.Equal(t, "*invalid*", avl.Balance(2).String())
}
