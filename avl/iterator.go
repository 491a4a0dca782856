// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2026 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"iter"
)

// InOrder - ascending sequence of keys
//
// the sequence is lazy and can be ranged over any number of times;
// the tree must not be modified while a range is in progress
func (tree *Tree[K]) InOrder() iter.Seq[K] {
	return func(yield func(K) bool) {
		stack := make([]*node[K], 0, 32)
		p := tree.root
		for nil != p || len(stack) > 0 {
			for nil != p {
				stack = append(stack, p)
				p = p.left
			}
			p = stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			if !yield(p.key) {
				return
			}
			p = p.right
		}
	}
}

// Reverse - descending sequence of keys
func (tree *Tree[K]) Reverse() iter.Seq[K] {
	return func(yield func(K) bool) {
		stack := make([]*node[K], 0, 32)
		p := tree.root
		for nil != p || len(stack) > 0 {
			for nil != p {
				stack = append(stack, p)
				p = p.right
			}
			p = stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			if !yield(p.key) {
				return
			}
			p = p.left
		}
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
