// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2026 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package experiment

import (
	"fmt"
	"math"

	"github.com/bitmark-inc/treelab/fault"
	"github.com/bitmark-inc/treelab/optimal"
	"github.com/bitmark-inc/treelab/report"
)

// WeightedSummary - characteristics of a weighted search tree
type WeightedSummary struct {
	Tree                  string  `json:"tree"`
	Size                  int     `json:"size"`
	Checksum              int     `json:"checksum"`
	Height                int     `json:"height"`
	WeightedAverageHeight float64 `json:"weightedAverageHeight"`
}

// Weighted - compare the optimal tree with the A1 and A2 heuristics on
// strictly ascending keys and their weights
func (e *Experiment) Weighted(keys []int, weights []int) ([]WeightedSummary, *optimal.Matrices, *report.Table, error) {
	knuth, m, err := optimal.Knuth(keys, weights)
	if nil != err {
		return nil, nil, nil, err
	}
	a1, err := optimal.A1(keys, weights)
	if nil != err {
		return nil, nil, nil, err
	}
	a2, err := optimal.A2(keys, weights)
	if nil != err {
		return nil, nil, nil, err
	}

	// the matrix value must agree with the tree built from it
	if math.Abs(m.Ratio()-knuth.WeightedAverageHeight()) > 1e-9 {
		e.errorf("AP/AW: %f  tree: %f", m.Ratio(), knuth.WeightedAverageHeight())
		return nil, nil, nil, fault.ErrMatrixMismatch
	}

	summaries := make([]WeightedSummary, 0, 3)
	for _, x := range []struct {
		name string
		tree *optimal.Tree[int]
	}{
		{"OST", knuth},
		{"A1", a1},
		{"A2", a2},
	} {
		summaries = append(summaries, WeightedSummary{
			Tree:                  x.name,
			Size:                  x.tree.Size(),
			Checksum:              optimal.Checksum(x.tree),
			Height:                x.tree.Height(),
			WeightedAverageHeight: x.tree.WeightedAverageHeight(),
		})
	}

	t := report.New(KindWeighted, fmt.Sprintf("n=%d", len(keys)),
		"tree", "size", "checksum", "height", "weighted average height",
	)
	for _, s := range summaries {
		t.Add(s.Tree, s.Size, s.Checksum, s.Height, s.WeightedAverageHeight)
	}
	n := m.N()
	t.Note("AP[0,%d]/AW[0,%d] = %d/%d = %.2f", n, n, m.AP[0][n], m.AW[0][n], m.Ratio())
	e.infof("weighted: n: %d  ratio: %f", n, m.Ratio())

	return summaries, m, t, nil
}

// MatrixTable - one of the Knuth matrices as a table, upper triangle
// only
func MatrixTable(name string, matrix [][]int) *report.Table {
	headers := make([]string, len(matrix)+1)
	headers[0] = "i\\j"
	for j := range matrix {
		headers[j+1] = fmt.Sprint(j)
	}
	t := report.New(KindWeighted, "matrix "+name, headers...)
	for i, row := range matrix {
		cells := make([]interface{}, len(row)+1)
		cells[0] = i
		for j, v := range row {
			if j >= i {
				cells[j+1] = v
			} else {
				cells[j+1] = ""
			}
		}
		t.Add(cells...)
	}
	return t
}
