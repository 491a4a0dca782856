// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2026 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package experiment

import (
	"fmt"
	"io"

	"github.com/bitmark-inc/treelab/avl"
	"github.com/bitmark-inc/treelab/fault"
	"github.com/bitmark-inc/treelab/report"
)

// BuildAVL - insert keys in order, then delete the listed keys,
// printing the tree to w after each phase when w is not nil
func (e *Experiment) BuildAVL(w io.Writer, keys []int, deletes []int) (*avl.Tree[int], *report.Table, error) {
	if 0 == len(keys) {
		return nil, nil, fault.ErrInvalidCount
	}

	tree := avl.New[int]()
	for _, key := range keys {
		if avl.AlreadyPresent == tree.Insert(key) {
			e.debugf("duplicate: %d", key)
		}
	}
	if err := tree.Check(); nil != err {
		return nil, nil, err
	}

	t := report.New(KindAVL, fmt.Sprintf("AVL tree of %d keys", len(keys)),
		"phase", "size", "checksum", "height", "average depth", "balanced",
	)
	t.Add("insert", tree.Size(), avl.Checksum(tree), tree.Height(), tree.AverageDepth(), tree.IsBalanced())

	if nil != w {
		fmt.Fprintln(w, "after insert:")
		tree.Print(w, true)
	}

	if len(deletes) > 0 {
		missing := 0
		for _, key := range deletes {
			if avl.NotFound == tree.Delete(key) {
				missing += 1
			}
		}
		if err := tree.Check(); nil != err {
			return nil, nil, err
		}
		t.Add("delete", tree.Size(), avl.Checksum(tree), tree.Height(), tree.AverageDepth(), tree.IsBalanced())
		if missing > 0 {
			t.Note("%d keys to delete were not present", missing)
		}
		if nil != w {
			fmt.Fprintln(w, "after delete:")
			tree.Print(w, true)
		}
	}

	stats := tree.Stats()
	t.Note("rotations: insert %d  delete %d", stats.InsertRotations(), stats.DeleteRotations())
	return tree, t, nil
}
