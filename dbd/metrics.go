// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2026 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package dbd

import (
	"cmp"
	"iter"

	"golang.org/x/exp/constraints"
)

// InOrder - keys in ascending order
func (tree *Tree[K]) InOrder() iter.Seq[K] {
	return func(yield func(K) bool) {
		inOrder(tree.root, yield)
	}
}

func inOrder[K cmp.Ordered](p *node[K], yield func(K) bool) bool {
	if nil == p {
		return true
	}
	return inOrder(p.left, yield) && yield(p.key) && inOrder(p.right, yield)
}

// Keys - all keys in ascending order
func (tree *Tree[K]) Keys() []K {
	keys := make([]K, 0, tree.count)
	for key := range tree.InOrder() {
		keys = append(keys, key)
	}
	return keys
}

// Levels - number of B-tree levels, horizontal links do not descend
func (tree *Tree[K]) Levels() int {
	return levels(tree.root)
}

func levels[K cmp.Ordered](p *node[K]) int {
	if nil == p {
		return 0
	}
	right := levels(p.right)
	if !p.horizontal {
		right += 1
	}
	return max(1+levels(p.left), right)
}

// Height - number of nodes on the longest root to leaf path, every
// link counted as a step
func (tree *Tree[K]) Height() int {
	return height(tree.root)
}

func height[K cmp.Ordered](p *node[K]) int {
	if nil == p {
		return 0
	}
	return 1 + max(height(p.left), height(p.right))
}

// AverageDepth - mean level of all nodes counting every link, root is
// level 1
func (tree *Tree[K]) AverageDepth() float64 {
	if 0 == tree.count {
		return 0
	}
	return float64(sumDepths(tree.root, 1)) / float64(tree.count)
}

func sumDepths[K cmp.Ordered](p *node[K], level int) int {
	if nil == p {
		return 0
	}
	return level + sumDepths(p.left, level+1) + sumDepths(p.right, level+1)
}

// LevelCounts - number of nodes at each depth, root first
func (tree *Tree[K]) LevelCounts() []int {
	counts := make([]int, tree.Height())
	var count func(p *node[K], depth int)
	count = func(p *node[K], depth int) {
		if nil == p {
			return
		}
		counts[depth] += 1
		count(p.left, depth+1)
		count(p.right, depth+1)
	}
	count(tree.root, 0)
	return counts
}

// HorizontalLinks - number of horizontal right links
func (tree *Tree[K]) HorizontalLinks() int {
	n := 0
	var count func(p *node[K])
	count = func(p *node[K]) {
		if nil == p {
			return
		}
		if p.horizontal {
			n += 1
		}
		count(p.left)
		count(p.right)
	}
	count(tree.root)
	return n
}

// IsValid - check search order, no two consecutive horizontal links
// and every leaf on the same B-tree level
func (tree *Tree[K]) IsValid() bool {
	first := true
	var previous K
	for key := range tree.InOrder() {
		if !first && previous >= key {
			return false
		}
		first = false
		previous = key
	}
	_, ok := valid(tree.root)
	return ok
}

// internal: returns B-tree levels below and including p
func valid[K cmp.Ordered](p *node[K]) (int, bool) {
	if nil == p {
		return 0, true
	}
	if p.horizontal && (nil == p.right || p.right.horizontal) {
		return 0, false
	}
	l, ok := valid(p.left)
	if !ok {
		return 0, false
	}
	r, ok := valid(p.right)
	if !ok {
		return 0, false
	}
	if !p.horizontal {
		r += 1
	}
	if l+1 != r {
		return 0, false
	}
	return r, true
}

// Checksum - sum of all keys
func Checksum[K interface {
	cmp.Ordered
	constraints.Integer | constraints.Float
}](tree *Tree[K]) K {
	sum := K(0)
	for key := range tree.InOrder() {
		sum += key
	}
	return sum
}
