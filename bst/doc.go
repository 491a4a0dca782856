// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2026 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package bst - unbalanced binary search trees used as a baseline
// against the AVL tree
//
// A tree is either built perfectly balanced from a sorted slice (ISDP)
// or grown one key at a time in arrival order (a random search tree).
// Duplicate keys are ignored.
package bst
