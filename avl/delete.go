// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2026 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// DeleteResult - outcome of a delete
type DeleteResult int

// possible delete outcomes
const (
	Deleted DeleteResult = iota
	NotFound
)

// String - printable delete result
func (r DeleteResult) String() string {
	switch r {
	case Deleted:
		return "Deleted"
	case NotFound:
		return "NotFound"
	default:
		return "*unknown*"
	}
}

// Delete - removes a specific key from the tree
func (tree *Tree[K]) Delete(key K) DeleteResult {
	root, result, _ := tree.delete(key, tree.root)
	tree.root = root
	if Deleted == result {
		tree.count -= 1
		tree.stats.Deletions += 1
	}
	return result
}

// internal delete routine
// returns the possibly updated sub-tree root and whether its height shrank
func (tree *Tree[K]) delete(key K, p *node[K]) (*node[K], DeleteResult, bool) {
	if nil == p { // key not in tree
		return nil, NotFound, false
	}

	result := NotFound
	shrank := false
	switch c := tree.compare(key, p.key); {
	case c < 0: // key < p.key
		p.left, result, shrank = tree.delete(key, p.left)
		if shrank {
			p, shrank = tree.balanceLeft(p)
		}
	case c > 0: // key > p.key
		p.right, result, shrank = tree.delete(key, p.right)
		if shrank {
			p, shrank = tree.balanceRight(p)
		}
	default: // found: delete p
		if nil == p.right {
			return p.left, Deleted, true
		}
		if nil == p.left {
			return p.right, Deleted, true
		}

		// two children: promote the in-order predecessor
		left, predecessor, h := tree.removeMax(p.left)
		p.left = left
		p.key = predecessor.key
		result = Deleted
		shrank = h
		if shrank {
			p, shrank = tree.balanceLeft(p)
		}
	}
	return p, result, shrank
}

// delete: unlink the rightmost node of a sub-tree, the returned node
// is detached and has no children
func (tree *Tree[K]) removeMax(p *node[K]) (*node[K], *node[K], bool) {
	if nil != p.right {
		right, last, shrank := tree.removeMax(p.right)
		p.right = right
		if shrank {
			p, shrank = tree.balanceRight(p)
		}
		return p, last, shrank
	}
	left := p.left
	p.left = nil
	return left, p, true
}

// delete: tree balancer
// left branch has shrunk
func (tree *Tree[K]) balanceLeft(p *node[K]) (*node[K], bool) {
	switch p.balance {
	case LeftHeavy:
		p.balance = Balanced
		return p, true
	case Balanced:
		p.balance = RightHeavy
		return p, false
	}

	// balance = +1, rebalance
	if p.right.balance >= Balanced {
		tree.stats.single(deletePhase)
		return rotateRR(p)
	}
	tree.stats.double(deletePhase)
	return rotateRL(p), true
}

// delete: tree balancer
// right branch has shrunk
func (tree *Tree[K]) balanceRight(p *node[K]) (*node[K], bool) {
	switch p.balance {
	case RightHeavy:
		p.balance = Balanced
		return p, true
	case Balanced:
		p.balance = LeftHeavy
		return p, false
	}

	// balance = -1, rebalance
	if p.left.balance <= Balanced {
		tree.stats.single(deletePhase)
		return rotateLL(p)
	}
	tree.stats.double(deletePhase)
	return rotateLR(p), true
}
