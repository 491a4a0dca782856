// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2026 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"golang.org/x/exp/constraints"
)

// Number - keys that can be summed by Checksum
type Number interface {
	constraints.Integer | constraints.Float
}

// Height - number of nodes on the longest root to leaf path
func (tree *Tree[K]) Height() int {
	return height(tree.root)
}

func height[K any](p *node[K]) int {
	if nil == p {
		return 0
	}
	return 1 + max(height(p.left), height(p.right))
}

// AverageDepth - mean level of all nodes, counting the root as level 1
// zero for an empty tree
func (tree *Tree[K]) AverageDepth() float64 {
	if 0 == tree.count {
		return 0
	}
	return float64(sumDepths(tree.root, 1)) / float64(tree.count)
}

func sumDepths[K any](p *node[K], level int) int {
	if nil == p {
		return 0
	}
	return level + sumDepths(p.left, level+1) + sumDepths(p.right, level+1)
}

// LevelCounts - number of nodes on each level, index 0 is the root level
func (tree *Tree[K]) LevelCounts() []int {
	counts := make([]int, tree.Height())
	countLevels(tree.root, 0, counts)
	return counts
}

func countLevels[K any](p *node[K], level int, counts []int) {
	if nil == p {
		return
	}
	counts[level] += 1
	countLevels(p.left, level+1, counts)
	countLevels(p.right, level+1, counts)
}

// Checksum - sum of all keys in the tree
func Checksum[K Number](tree *Tree[K]) K {
	return checksum(tree.root)
}

func checksum[K Number](p *node[K]) K {
	if nil == p {
		return 0
	}
	return p.key + checksum(p.left) + checksum(p.right)
}
