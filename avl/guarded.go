// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2026 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"sync"
)

// Guarded - a tree that may be shared between go routines
//
// mutations hold the write lock, queries share the read lock
type Guarded[K any] struct {
	sync.RWMutex
	tree *Tree[K]
}

// NewGuarded - wrap a tree, the tree must not be used directly afterwards
func NewGuarded[K any](tree *Tree[K]) *Guarded[K] {
	return &Guarded[K]{
		tree: tree,
	}
}

// Insert - locked insert
func (g *Guarded[K]) Insert(key K) InsertResult {
	g.Lock()
	defer g.Unlock()
	return g.tree.Insert(key)
}

// Delete - locked delete
func (g *Guarded[K]) Delete(key K) DeleteResult {
	g.Lock()
	defer g.Unlock()
	return g.tree.Delete(key)
}

// Contains - shared lookup
func (g *Guarded[K]) Contains(key K) bool {
	g.RLock()
	defer g.RUnlock()
	return g.tree.Contains(key)
}

// Size - shared count
func (g *Guarded[K]) Size() int {
	g.RLock()
	defer g.RUnlock()
	return g.tree.Size()
}

// Keys - snapshot of all keys in ascending order
func (g *Guarded[K]) Keys() []K {
	g.RLock()
	defer g.RUnlock()
	return g.tree.Keys()
}

// View - run a read-only function against the tree under the read lock
func (g *Guarded[K]) View(f func(tree *Tree[K])) {
	g.RLock()
	defer g.RUnlock()
	f(g.tree)
}
