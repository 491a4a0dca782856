// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2026 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package optimal - weighted search trees
//
// Knuth builds the search tree of minimum weighted path length using
// the weight (AW), path (AP) and root (AR) matrices, restricting the
// root search for [i, j] to AR[i][j-1] .. AR[i+1][j].
//
// A1 and A2 are the approximately optimal heuristics: A1 inserts keys
// in order of descending weight, A2 splits recursively at the weight
// median.
package optimal
