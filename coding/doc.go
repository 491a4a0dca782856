// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2026 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package coding - Shannon and Fano prefix codes over byte streams
//
// Symbols are bytes; a code assigns each symbol that occurs in the
// input a string of '0' and '1' characters.  Codes are listed in order
// of descending symbol probability.
package coding
