// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2026 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package dbd - symmetric binary B-tree (a B-tree of order one)
//
// Every node is either vertically linked to its parent, one level
// below it, or horizontally linked as the right neighbour on the same
// level.  Only right links may be horizontal and two horizontal links
// never follow one another, so each level holds pages of one or two
// keys.
//
// Insertion reports two growth signals to the caller:
//
//	vertical   the subtree root has risen and must be absorbed by the parent
//	horizontal a horizontal link appeared just below the parent
package dbd
