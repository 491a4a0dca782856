// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2026 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"cmp"
)

// CompareFunc - total order on keys: negative if a < b, zero if
// equal, positive if a > b
type CompareFunc[K any] func(a K, b K) int

// Balance - cached height difference of a node: height(right) - height(left)
type Balance int8

// the three legal balance states
const (
	LeftHeavy  Balance = -1
	Balanced   Balance = 0
	RightHeavy Balance = +1
)

// String - printable balance
func (b Balance) String() string {
	switch b {
	case LeftHeavy:
		return "-1"
	case Balanced:
		return "0"
	case RightHeavy:
		return "+1"
	default:
		return "*invalid*"
	}
}

// a node in the tree
type node[K any] struct {
	left    *node[K] // left sub-tree
	right   *node[K] // right sub-tree
	key     K        // key part for ordering
	balance Balance  // -1, 0, +1
}

// Tree - type to hold the root node of a tree
type Tree[K any] struct {
	root    *node[K]
	count   int
	compare CompareFunc[K]
	stats   Stats
}

// New - create an initially empty tree for a naturally ordered key
func New[K cmp.Ordered]() *Tree[K] {
	return NewFunc[K](cmp.Compare[K])
}

// NewFunc - create an initially empty tree using a custom ordering
func NewFunc[K any](compare CompareFunc[K]) *Tree[K] {
	if nil == compare {
		panic("avl: nil compare function")
	}
	return &Tree[K]{
		root:    nil,
		count:   0,
		compare: compare,
	}
}

// IsEmpty - true if tree contains no data
func (tree *Tree[K]) IsEmpty() bool {
	return nil == tree.root
}

// Size - number of nodes currently in the tree
func (tree *Tree[K]) Size() int {
	return tree.count
}

// Clear - discard all nodes, statistics are retained
func (tree *Tree[K]) Clear() {
	tree.root = nil
	tree.count = 0
}
