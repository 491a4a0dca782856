// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2026 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Stats - running totals of operations and rotations performed on a tree
type Stats struct {
	Insertions   uint64 `json:"insertions"`
	Deletions    uint64 `json:"deletions"`
	InsertSingle uint64 `json:"insertSingle"` // LL or RR during insert
	InsertDouble uint64 `json:"insertDouble"` // LR or RL during insert
	DeleteSingle uint64 `json:"deleteSingle"`
	DeleteDouble uint64 `json:"deleteDouble"`
}

// which operation triggered a rotation
type phase int

const (
	insertPhase phase = iota
	deletePhase
)

func (s *Stats) single(p phase) {
	if insertPhase == p {
		s.InsertSingle += 1
	} else {
		s.DeleteSingle += 1
	}
}

func (s *Stats) double(p phase) {
	if insertPhase == p {
		s.InsertDouble += 1
	} else {
		s.DeleteDouble += 1
	}
}

// InsertRotations - total rotations caused by inserts
func (s Stats) InsertRotations() uint64 {
	return s.InsertSingle + s.InsertDouble
}

// DeleteRotations - total rotations caused by deletes
func (s Stats) DeleteRotations() uint64 {
	return s.DeleteSingle + s.DeleteDouble
}

// InsertRatio - rotations per successful insert, zero if none
func (s Stats) InsertRatio() float64 {
	if 0 == s.Insertions {
		return 0
	}
	return float64(s.InsertRotations()) / float64(s.Insertions)
}

// DeleteRatio - rotations per successful delete, zero if none
func (s Stats) DeleteRatio() float64 {
	if 0 == s.Deletions {
		return 0
	}
	return float64(s.DeleteRotations()) / float64(s.Deletions)
}

// Stats - snapshot of the tree's statistics
func (tree *Tree[K]) Stats() Stats {
	return tree.stats
}

// ResetStats - zero all statistics
func (tree *Tree[K]) ResetStats() {
	tree.stats = Stats{}
}
