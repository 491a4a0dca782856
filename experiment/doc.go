// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2026 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package experiment - workloads that exercise the trees and codes and
// summarise them as report tables
//
// Every workload that builds an AVL tree verifies it with Check before
// reporting, so a returned table always describes valid trees.
package experiment
