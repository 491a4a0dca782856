// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2026 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// maintain the on-disk archive of experiment reports
//
// This maintains a LevelDB database split into a series of pools.
// Each pool is defined by a prefix byte that is obtained from the
// prefix tag in the struct defining the available pools.
//
// Notes:
// 1. each separate pool has a single byte prefix
// 2. ++        = concatenation of byte data
// 3. kind      = report kind as UTF-8 bytes, e.g. "rotations"
// 4. timestamp = Unix nanoseconds as big endian uint64 (8 bytes)
// 5. count     = big endian uint64 (8 bytes)
//
// Reports:
//
//	R ++ kind ++ 0x00 ++ timestamp  - one stored report
//	                                  data: JSON encoded report table
//	N ++ kind                       - number of reports of a kind
//	                                  data: count
//
// Testing:
//
//	Z ++ key                        - testing data
package storage
