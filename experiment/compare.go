// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2026 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package experiment

import (
	"fmt"

	"github.com/bitmark-inc/treelab/avl"
	"github.com/bitmark-inc/treelab/bst"
	"github.com/bitmark-inc/treelab/dbd"
	"github.com/bitmark-inc/treelab/fault"
	"github.com/bitmark-inc/treelab/keygen"
	"github.com/bitmark-inc/treelab/report"
)

// Summary - the common characteristics of a search tree
type Summary struct {
	Tree         string  `json:"tree"`
	Size         int     `json:"size"`
	Checksum     int     `json:"checksum"`
	Height       int     `json:"height"`
	AverageDepth float64 `json:"averageDepth"`
	Levels       int     `json:"levels"`
}

// Compare - build a perfectly balanced tree, a random search tree, an
// AVL tree and a symmetric binary B-tree from the same n keys
func (e *Experiment) Compare(source keygen.Source, n int) ([]Summary, *report.Table, error) {
	if n <= 0 {
		return nil, nil, fault.ErrInvalidCount
	}
	keys, err := source.Keys(n)
	if nil != err {
		return nil, nil, err
	}

	b := e.newBar(3*len(keys)+1, "compare")

	random := bst.New[int]()
	balanced := avl.New[int]()
	binaryB := dbd.New[int]()
	for _, key := range keys {
		random.AddIterative(key)
		b.add(1)
		balanced.Insert(key)
		b.add(1)
		binaryB.Insert(key)
		b.add(1)
	}
	perfect := bst.ISDPFrom(keys)
	b.add(1)
	b.finish()

	if err := balanced.Check(); nil != err {
		e.errorf("avl check: %s", err)
		return nil, nil, err
	}
	if !binaryB.IsValid() {
		e.errorf("dbd tree is not a valid symmetric binary B-tree")
		return nil, nil, fault.ErrOrderViolation
	}

	summaries := []Summary{
		{
			Tree:         "ISDP",
			Size:         perfect.Size(),
			Checksum:     bst.Checksum(perfect),
			Height:       perfect.Height(),
			AverageDepth: perfect.AverageDepth(),
			Levels:       perfect.Height(),
		},
		{
			Tree:         "RST",
			Size:         random.Size(),
			Checksum:     bst.Checksum(random),
			Height:       random.Height(),
			AverageDepth: random.AverageDepth(),
			Levels:       random.Height(),
		},
		{
			Tree:         "AVL",
			Size:         balanced.Size(),
			Checksum:     avl.Checksum(balanced),
			Height:       balanced.Height(),
			AverageDepth: balanced.AverageDepth(),
			Levels:       balanced.Height(),
		},
		{
			Tree:         "DBD",
			Size:         binaryB.Size(),
			Checksum:     dbd.Checksum(binaryB),
			Height:       binaryB.Height(),
			AverageDepth: binaryB.AverageDepth(),
			Levels:       binaryB.Levels(),
		},
	}

	t := report.New(KindCompare, fmt.Sprintf("n=%d", n),
		"tree", "size", "checksum", "height", "average depth", "levels",
	)
	for _, s := range summaries {
		t.Add(s.Tree, s.Size, s.Checksum, s.Height, s.AverageDepth, s.Levels)
		e.debugf("%+v", s)
	}
	t.Note("ISDP: perfectly balanced, RST: random search tree, DBD: symmetric binary B-tree")

	return summaries, t, nil
}
