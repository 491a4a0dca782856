// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2026 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Contains - true if the key is present in the tree
func (tree *Tree[K]) Contains(key K) bool {
	p := tree.root
	for nil != p {
		switch c := tree.compare(key, p.key); {
		case c < 0:
			p = p.left
		case c > 0:
			p = p.right
		default:
			return true
		}
	}
	return false
}

// Depth - level of the node holding key (root = 1), or zero if the
// key is absent
func (tree *Tree[K]) Depth(key K) int {
	level := 1
	for p := tree.root; nil != p; level += 1 {
		switch c := tree.compare(key, p.key); {
		case c < 0:
			p = p.left
		case c > 0:
			p = p.right
		default:
			return level
		}
	}
	return 0
}

// Min - lowest key, false if the tree is empty
func (tree *Tree[K]) Min() (K, bool) {
	if nil == tree.root {
		var zero K
		return zero, false
	}
	return tree.root.first().key, true
}

// Max - highest key, false if the tree is empty
func (tree *Tree[K]) Max() (K, bool) {
	if nil == tree.root {
		var zero K
		return zero, false
	}
	return tree.root.last().key, true
}

// internal: lowest node in a sub-tree
func (p *node[K]) first() *node[K] {
	for nil != p.left {
		p = p.left
	}
	return p
}

// internal: highest node in a sub-tree
func (p *node[K]) last() *node[K] {
	for nil != p.right {
		p = p.right
	}
	return p
}
