// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2026 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package dbd

import (
	"cmp"
)

type node[K cmp.Ordered] struct {
	left  *node[K]
	right *node[K]
	key   K

	// the right link is horizontal
	horizontal bool
}

// Tree - root of a symmetric binary B-tree
type Tree[K cmp.Ordered] struct {
	root  *node[K]
	count int
}

// New - create an initially empty tree
func New[K cmp.Ordered]() *Tree[K] {
	return &Tree[K]{}
}

// IsEmpty - true if tree contains no data
func (tree *Tree[K]) IsEmpty() bool {
	return nil == tree.root
}

// Size - number of nodes currently in the tree
func (tree *Tree[K]) Size() int {
	return tree.count
}

// Insert - add a key, false if the key was already present
func (tree *Tree[K]) Insert(key K) bool {
	root, inserted, _, _ := insert(tree.root, key)
	tree.root = root
	if inserted {
		tree.count += 1
	}
	return inserted
}

// internal: returns the new subtree root, whether a node was added
// and the vertical and horizontal growth signals
func insert[K cmp.Ordered](p *node[K], key K) (*node[K], bool, bool, bool) {
	if nil == p {
		return &node[K]{key: key}, true, true, false
	}

	switch {
	case key < p.key:
		left, inserted, vertical, _ := insert(p.left, key)
		p.left = left
		if !vertical {
			return p, inserted, false, false
		}
		if !p.horizontal {
			// the risen left child becomes the page head with p as
			// its horizontal right neighbour
			q := p.left
			p.left = q.right
			q.right = p
			q.horizontal = true
			return q, inserted, false, true
		}
		// page of three: p rises, both neighbours drop one level
		p.horizontal = false
		return p, inserted, true, false

	case key > p.key:
		right, inserted, vertical, horizontal := insert(p.right, key)
		p.right = right
		if vertical {
			p.horizontal = true
			return p, inserted, false, true
		}
		if !horizontal {
			return p, inserted, false, false
		}
		if !p.horizontal {
			// horizontal link one level down
			return p, inserted, false, false
		}
		// two consecutive horizontal links: the middle node rises
		q := p.right
		p.horizontal = false
		q.horizontal = false
		p.right = q.left
		q.left = p
		return q, inserted, true, false

	default:
		return p, false, false, false
	}
}

// Contains - true if the key is present
func (tree *Tree[K]) Contains(key K) bool {
	p := tree.root
	for nil != p {
		switch {
		case key < p.key:
			p = p.left
		case key > p.key:
			p = p.right
		default:
			return true
		}
	}
	return false
}
