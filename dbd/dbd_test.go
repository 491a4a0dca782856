// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2026 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package dbd_test

import (
	"math"
	"math/rand"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/treelab/dbd"
)

func TestAscendingInsert(t *testing.T) {
	type step struct {
		key        int
		levels     int
		height     int
		horizontal int
	}
	steps := []step{
		{1, 1, 1, 0},
		{2, 1, 2, 1},
		{3, 2, 2, 0},
		{4, 2, 3, 1},
		{5, 2, 3, 1},
		{6, 2, 4, 2},
		{7, 3, 3, 0},
	}

	tree := dbd.New[int]()
	for _, s := range steps {
		assert.True(t, tree.Insert(s.key), "insert: %d", s.key)
		assert.Equal(t, s.levels, tree.Levels(), "levels after: %d", s.key)
		assert.Equal(t, s.height, tree.Height(), "height after: %d", s.key)
		assert.Equal(t, s.horizontal, tree.HorizontalLinks(), "horizontal links after: %d", s.key)
		assert.True(t, tree.IsValid(), "valid after: %d", s.key)
	}
	assert.Equal(t, []int{1, 2, 3, 4, 5, 6, 7}, tree.Keys())
	assert.Equal(t, []int{1, 2, 4}, tree.LevelCounts(), "perfect after seven")
	assert.InDelta(t, 17.0/7.0, tree.AverageDepth(), 1e-9)
}

func TestDescendingInsert(t *testing.T) {
	tree := dbd.New[int]()
	tree.Insert(3)
	tree.Insert(2)
	assert.Equal(t, 1, tree.Levels(), "two keys share a page")
	assert.Equal(t, 1, tree.HorizontalLinks())

	tree.Insert(1)
	assert.Equal(t, 2, tree.Levels(), "page split")
	assert.Equal(t, 0, tree.HorizontalLinks())
	assert.Equal(t, []int{2, 1}, tree.LevelCounts())
	assert.True(t, tree.IsValid())
}

func TestDuplicateInsertIsNoOp(t *testing.T) {
	tree := dbd.New[int]()
	for _, key := range []int{5, 1, 9} {
		tree.Insert(key)
	}
	assert.False(t, tree.Insert(9))
	assert.Equal(t, 3, tree.Size())
	assert.Equal(t, 15, dbd.Checksum(tree))
	assert.True(t, tree.Contains(1))
	assert.False(t, tree.Contains(2))
}

func TestRandomInsert(t *testing.T) {
	r := rand.New(rand.NewSource(1000))
	tree := dbd.New[int]()
	unique := make(map[int]struct{})
	for i := 0; i < 1000; i += 1 {
		key := 1 + r.Intn(5000)
		_, seen := unique[key]
		assert.Equal(t, !seen, tree.Insert(key), "insert: %d", key)
		unique[key] = struct{}{}
	}

	expected := make([]int, 0, len(unique))
	sum := 0
	for key := range unique {
		expected = append(expected, key)
		sum += key
	}
	sort.Ints(expected)

	assert.Equal(t, expected, tree.Keys())
	assert.Equal(t, len(expected), tree.Size())
	assert.Equal(t, sum, dbd.Checksum(tree))
	assert.True(t, tree.IsValid())

	n := float64(tree.Size())
	assert.LessOrEqual(t, tree.Levels(), int(math.Log2(n+1)), "levels bound")
	assert.LessOrEqual(t, tree.Height(), 2*tree.Levels(), "height bound")
}

func TestEmptyTree(t *testing.T) {
	tree := dbd.New[string]()
	assert.True(t, tree.IsEmpty())
	assert.Equal(t, 0, tree.Levels())
	assert.Equal(t, 0.0, tree.AverageDepth())
	assert.Empty(t, tree.LevelCounts())
	assert.True(t, tree.IsValid())
}
