// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2026 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// The four rotations restructure a sub-tree whose root p is out of
// balance by two levels and return the new local root.  The caller
// re-links the result into its own child slot.

// single LL rotation: p is left heavy, its left child q has balance <= 0
//
// returns true if the sub-tree height was reduced by one; false only
// when q was balanced, which can only occur during deletion
func rotateLL[K any](p *node[K]) (*node[K], bool) {
	q := p.left
	shrank := true
	if Balanced == q.balance {
		q.balance = RightHeavy
		p.balance = LeftHeavy
		shrank = false
	} else {
		q.balance = Balanced
		p.balance = Balanced
	}
	p.left = q.right
	q.right = p
	return q, shrank
}

// single RR rotation: mirror of LL
func rotateRR[K any](p *node[K]) (*node[K], bool) {
	q := p.right
	shrank := true
	if Balanced == q.balance {
		q.balance = LeftHeavy
		p.balance = RightHeavy
		shrank = false
	} else {
		q.balance = Balanced
		p.balance = Balanced
	}
	p.right = q.left
	q.left = p
	return q, shrank
}

// double LR rotation: p is left heavy, its left child q is right heavy
// and q's right child r becomes the new local root
func rotateLR[K any](p *node[K]) *node[K] {
	q := p.left
	r := q.right

	if LeftHeavy == r.balance {
		p.balance = RightHeavy
	} else {
		p.balance = Balanced
	}
	if RightHeavy == r.balance {
		q.balance = LeftHeavy
	} else {
		q.balance = Balanced
	}
	r.balance = Balanced

	q.right = r.left
	p.left = r.right
	r.left = q
	r.right = p
	return r
}

// double RL rotation: mirror of LR
func rotateRL[K any](p *node[K]) *node[K] {
	q := p.right
	r := q.left

	if RightHeavy == r.balance {
		p.balance = LeftHeavy
	} else {
		p.balance = Balanced
	}
	if LeftHeavy == r.balance {
		q.balance = RightHeavy
	} else {
		q.balance = Balanced
	}
	r.balance = Balanced

	q.left = r.right
	p.right = r.left
	r.right = q
	r.left = p
	return r
}
