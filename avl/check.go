// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2026 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"fmt"

	"github.com/bitmark-inc/treelab/fault"
)

// IsBalanced - recompute every sub-tree height from scratch and verify
// that the height difference is within ±1 and equal to the cached
// balance at every node
func (tree *Tree[K]) IsBalanced() bool {
	_, ok := checkBalance(tree.root)
	return ok
}

// internal: returns the true height and the result of the check
func checkBalance[K any](p *node[K]) (int, bool) {
	if nil == p {
		return 0, true
	}
	lh, ok := checkBalance(p.left)
	if !ok {
		return 0, false
	}
	rh, ok := checkBalance(p.right)
	if !ok {
		return 0, false
	}
	d := rh - lh
	if d < -1 || d > 1 || Balance(d) != p.balance {
		return 0, false
	}
	return 1 + max(lh, rh), true
}

// Check - full consistency check: strict key order, balance and node count
func (tree *Tree[K]) Check() error {
	n := 0
	var previous K
	for key := range tree.InOrder() {
		if n > 0 && tree.compare(previous, key) >= 0 {
			return fmt.Errorf("%w: %v is not below %v", fault.ErrOrderViolation, previous, key)
		}
		previous = key
		n += 1
	}
	if n != tree.count {
		return fmt.Errorf("%w: counted: %d  expected: %d", fault.ErrCountMismatch, n, tree.count)
	}
	if !tree.IsBalanced() {
		return fault.ErrBalanceViolation
	}
	return nil
}
