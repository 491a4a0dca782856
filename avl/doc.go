// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2026 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package avl - an AVL balanced search tree of ordered keys
//
// Note: an individual tree is not thread safe, so either access only
//       in a single go routine or wrap it in a Guarded tree which
//       serialises writers behind a RWMutex.
//
// The base algorithm was described in an old book by Niklaus Wirth
// called Algorithms + Data Structures = Programs.
//
// Each node caches its balance factor (height of the right sub-tree
// minus height of the left sub-tree) and the recursive insert and
// delete routines return a "height changed" flag to their caller so
// that rebalancing stops as soon as the height of a sub-tree is
// unchanged.
//
// Keys are unique; inserting an existing key is a no-op and deleting
// an absent key reports NotFound.  When a node with two children is
// deleted its key is replaced by the in-order predecessor and the
// predecessor node is unlinked instead.
package avl
