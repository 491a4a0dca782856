// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2026 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package optimal

import (
	"cmp"
	"iter"

	"golang.org/x/exp/constraints"

	"github.com/bitmark-inc/treelab/fault"
)

type node[K cmp.Ordered] struct {
	left   *node[K]
	right  *node[K]
	key    K
	weight int
}

// Tree - a weighted search tree, immutable once built
type Tree[K cmp.Ordered] struct {
	root  *node[K]
	count int
}

// Size - number of nodes in the tree
func (tree *Tree[K]) Size() int {
	return tree.count
}

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

// Root - key at the root, false for an empty tree
func (tree *Tree[K]) Root() (K, bool) {
	if nil == tree.root {
		var zero K
		return zero, false
	}
	return tree.root.key, true
}

// Height - number of nodes on the longest root to leaf path
func (tree *Tree[K]) Height() int {
	return height(tree.root)
}

func height[K cmp.Ordered](p *node[K]) int {
	if nil == p {
		return 0
	}
	return 1 + max(height(p.left), height(p.right))
}

// TotalWeight - sum of all node weights
func (tree *Tree[K]) TotalWeight() int {
	return totalWeight(tree.root)
}

func totalWeight[K cmp.Ordered](p *node[K]) int {
	if nil == p {
		return 0
	}
	return p.weight + totalWeight(p.left) + totalWeight(p.right)
}

// WeightedHeight - sum of weight × level over all nodes, root is level 1
func (tree *Tree[K]) WeightedHeight() int {
	return weightedHeight(tree.root, 1)
}

func weightedHeight[K cmp.Ordered](p *node[K], level int) int {
	if nil == p {
		return 0
	}
	return p.weight*level + weightedHeight(p.left, level+1) + weightedHeight(p.right, level+1)
}

// WeightedAverageHeight - weighted height divided by the total weight
func (tree *Tree[K]) WeightedAverageHeight() float64 {
	total := tree.TotalWeight()
	if 0 == total {
		return 0
	}
	return float64(tree.WeightedHeight()) / float64(total)
}

// IsSearchTree - verify strict ascending order of an in-order walk
func (tree *Tree[K]) IsSearchTree() bool {
	first := true
	var previous K
	for key := range tree.InOrder() {
		if !first && previous >= key {
			return false
		}
		first = false
		previous = key
	}
	return true
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

// internal: common validation of the builder inputs
func validate[K cmp.Ordered](keys []K, weights []int) error {
	if 0 == len(keys) {
		return fault.ErrEmptyWeights
	}
	if len(keys) != len(weights) {
		return fault.ErrMismatchedWeights
	}
	for _, w := range weights {
		if w < 0 {
			return fault.ErrNegativeWeight
		}
	}
	return nil
}
