// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2026 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bst

import (
	"cmp"
	"slices"

	"github.com/bitmark-inc/treelab/fault"
)

// a node in the tree
type node[K cmp.Ordered] struct {
	left  *node[K]
	right *node[K]
	key   K
}

// Tree - root of a search tree
type Tree[K cmp.Ordered] struct {
	root  *node[K]
	count int
}

// New - create an initially empty tree
func New[K cmp.Ordered]() *Tree[K] {
	return &Tree[K]{}
}

// ISDP - build a perfectly balanced tree from strictly ascending keys
func ISDP[K cmp.Ordered](keys []K) (*Tree[K], error) {
	for i := 1; i < len(keys); i += 1 {
		if keys[i-1] >= keys[i] {
			return nil, fault.ErrUnsortedKeys
		}
	}
	return &Tree[K]{
		root:  isdp(keys, 0, len(keys)-1),
		count: len(keys),
	}, nil
}

// the middle element (upper median) becomes the root of [l, r]
func isdp[K cmp.Ordered](keys []K, l int, r int) *node[K] {
	if l > r {
		return nil
	}
	m := (l + r + 1) / 2
	return &node[K]{
		key:   keys[m],
		left:  isdp(keys, l, m-1),
		right: isdp(keys, m+1, r),
	}
}

// ISDPFrom - sort and de-duplicate a copy of keys, then build with ISDP
func ISDPFrom[K cmp.Ordered](keys []K) *Tree[K] {
	sorted := slices.Clone(keys)
	slices.Sort(sorted)
	sorted = slices.Compact(sorted)
	tree, _ := ISDP(sorted) // cannot fail on sorted unique keys
	return tree
}

// IsEmpty - true if tree contains no data
func (tree *Tree[K]) IsEmpty() bool {
	return nil == tree.root
}

// Size - number of nodes currently in the tree
func (tree *Tree[K]) Size() int {
	return tree.count
}

// Add - recursive insert, false if the key was already present
func (tree *Tree[K]) Add(key K) bool {
	added := false
	tree.root, added = add(tree.root, key)
	if added {
		tree.count += 1
	}
	return added
}

func add[K cmp.Ordered](p *node[K], key K) (*node[K], bool) {
	if nil == p {
		return &node[K]{key: key}, true
	}
	added := false
	switch {
	case key < p.key:
		p.left, added = add(p.left, key)
	case key > p.key:
		p.right, added = add(p.right, key)
	}
	return p, added
}

// AddIterative - insert by walking the link slots down from the root,
// false if the key was already present
func (tree *Tree[K]) AddIterative(key K) bool {
	pp := &tree.root
	for nil != *pp {
		switch p := *pp; {
		case key < p.key:
			pp = &p.left
		case key > p.key:
			pp = &p.right
		default:
			return false
		}
	}
	*pp = &node[K]{key: key}
	tree.count += 1
	return true
}

// Delete - remove a key, a node with two children is replaced by its
// in-order predecessor; false if the key was not present
func (tree *Tree[K]) Delete(key K) bool {
	pp := &tree.root
search:
	for nil != *pp {
		switch p := *pp; {
		case key < p.key:
			pp = &p.left
		case key > p.key:
			pp = &p.right
		default:
			break search
		}
	}
	q := *pp
	if nil == q {
		return false
	}

	switch {
	case nil == q.left:
		*pp = q.right
	case nil == q.right:
		*pp = q.left
	default:
		r := q.left
		if nil == r.right {
			r.right = q.right
		} else {
			s := q
			for nil != r.right {
				s = r
				r = r.right
			}
			s.right = r.left
			r.left = q.left
			r.right = q.right
		}
		*pp = r
	}
	tree.count -= 1
	return true
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
