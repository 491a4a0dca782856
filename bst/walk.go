// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2026 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bst

import (
	"cmp"
	"iter"

	"golang.org/x/exp/constraints"
)

// InOrder - keys left to right
func (tree *Tree[K]) InOrder() iter.Seq[K] {
	return func(yield func(K) bool) {
		walk(tree.root, inOrder, yield)
	}
}

// PreOrder - keys top to bottom, root first
func (tree *Tree[K]) PreOrder() iter.Seq[K] {
	return func(yield func(K) bool) {
		walk(tree.root, preOrder, yield)
	}
}

// PostOrder - keys bottom to top, root last
func (tree *Tree[K]) PostOrder() iter.Seq[K] {
	return func(yield func(K) bool) {
		walk(tree.root, postOrder, yield)
	}
}

// Keys - all keys in ascending order
func (tree *Tree[K]) Keys() []K {
	keys := make([]K, 0, tree.count)
	for key := range tree.InOrder() {
		keys = append(keys, key)
	}
	return keys
}

type order int

const (
	preOrder order = iota
	inOrder
	postOrder
)

// internal: returns false once yield asks to stop
func walk[K cmp.Ordered](p *node[K], o order, yield func(K) bool) bool {
	if nil == p {
		return true
	}
	if preOrder == o && !yield(p.key) {
		return false
	}
	if !walk(p.left, o, yield) {
		return false
	}
	if inOrder == o && !yield(p.key) {
		return false
	}
	if !walk(p.right, o, yield) {
		return false
	}
	if postOrder == o && !yield(p.key) {
		return false
	}
	return true
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

// AverageDepth - mean level of all nodes, root is level 1
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
