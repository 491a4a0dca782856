// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2026 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package keygen - workload inputs: integer key sequences, weights and
// sample text for the coding experiments
package keygen
