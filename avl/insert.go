// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2026 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// InsertResult - outcome of an insert
type InsertResult int

// possible insert outcomes
const (
	Inserted InsertResult = iota
	AlreadyPresent
)

// String - printable insert result
func (r InsertResult) String() string {
	switch r {
	case Inserted:
		return "Inserted"
	case AlreadyPresent:
		return "AlreadyPresent"
	default:
		return "*unknown*"
	}
}

// Insert - insert a new key into the tree
//
// an existing key leaves the tree untouched
func (tree *Tree[K]) Insert(key K) InsertResult {
	root, result, _ := tree.insert(key, tree.root)
	tree.root = root
	if Inserted == result {
		tree.count += 1
		tree.stats.Insertions += 1
	}
	return result
}

// internal routine for insert
// returns the possibly updated sub-tree root and whether its height grew
func (tree *Tree[K]) insert(key K, p *node[K]) (*node[K], InsertResult, bool) {
	if nil == p { // insert new node
		return &node[K]{key: key, balance: Balanced}, Inserted, true
	}

	result := AlreadyPresent
	grew := false
	switch c := tree.compare(key, p.key); {
	case c < 0: // key < p.key
		p.left, result, grew = tree.insert(key, p.left)
		if grew {
			p, grew = tree.leftGrown(p)
		}
	case c > 0: // key > p.key
		p.right, result, grew = tree.insert(key, p.right)
		if grew {
			p, grew = tree.rightGrown(p)
		}
	default:
		// already present
	}
	return p, result, grew
}

// insert: left branch has grown
func (tree *Tree[K]) leftGrown(p *node[K]) (*node[K], bool) {
	switch p.balance {
	case RightHeavy:
		p.balance = Balanced
		return p, false
	case Balanced:
		p.balance = LeftHeavy
		return p, true
	}

	// balance == -1, rebalance
	if LeftHeavy == p.left.balance {
		p, _ = rotateLL(p)
		tree.stats.single(insertPhase)
	} else {
		p = rotateLR(p)
		tree.stats.double(insertPhase)
	}
	return p, false
}

// insert: right branch has grown
func (tree *Tree[K]) rightGrown(p *node[K]) (*node[K], bool) {
	switch p.balance {
	case LeftHeavy:
		p.balance = Balanced
		return p, false
	case Balanced:
		p.balance = RightHeavy
		return p, true
	}

	// balance == +1, rebalance
	if RightHeavy == p.right.balance {
		p, _ = rotateRR(p)
		tree.stats.single(insertPhase)
	} else {
		p = rotateRL(p)
		tree.stats.double(insertPhase)
	}
	return p, false
}
